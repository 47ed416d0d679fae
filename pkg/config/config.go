// Package config loads the settings shared by the statcard CLI and service.
//
// Settings come from a TOML or YAML file, chosen by extension, laid over
// [Default]. Keys that a file omits keep their default value:
//
//	[server]
//	addr = ":8080"
//
//	[cache]
//	backend = "redis"
//	redis.addr = "localhost:6379"
//
//	[card]
//	themes = ["light", "dark"]
//	font = "baloo_2"
package config

import (
	"path/filepath"
	"time"

	"github.com/matzehuels/statcard/pkg/cache"
	"github.com/matzehuels/statcard/pkg/httputil"
	"github.com/matzehuels/statcard/pkg/integrations/leetcode"
	"github.com/matzehuels/statcard/pkg/integrations/nanofont"
)

// Cache backends.
const (
	BackendNone  = "none"
	BackendFile  = "file"
	BackendRedis = "redis"
	BackendMongo = "mongo"
)

// File is the full configuration.
type File struct {
	Server ServerConfig `toml:"server" yaml:"server"`
	Cache  CacheConfig  `toml:"cache" yaml:"cache"`
	Fetch  FetchConfig  `toml:"fetch" yaml:"fetch"`
	Card   CardConfig   `toml:"card" yaml:"card"`
}

// ServerConfig configures the HTTP service.
type ServerConfig struct {
	Addr           string        `toml:"addr" yaml:"addr"`
	ReadTimeout    time.Duration `toml:"read_timeout" yaml:"read_timeout"`
	WriteTimeout   time.Duration `toml:"write_timeout" yaml:"write_timeout"`
	RequestTimeout time.Duration `toml:"request_timeout" yaml:"request_timeout"`
	// MaxAge is the Cache-Control max-age of served cards.
	MaxAge time.Duration `toml:"max_age" yaml:"max_age"`
}

// CacheConfig selects and configures the card cache.
type CacheConfig struct {
	Backend string        `toml:"backend" yaml:"backend"`
	Dir     string        `toml:"dir" yaml:"dir"`
	Prefix  string        `toml:"prefix" yaml:"prefix"`
	FontTTL time.Duration `toml:"font_ttl" yaml:"font_ttl"`
	Redis   RedisConfig   `toml:"redis" yaml:"redis"`
	Mongo   MongoConfig   `toml:"mongo" yaml:"mongo"`
}

// RedisConfig configures the redis backend.
type RedisConfig struct {
	Addr     string `toml:"addr" yaml:"addr"`
	Password string `toml:"password" yaml:"password"`
	DB       int    `toml:"db" yaml:"db"`
}

// MongoConfig configures the mongo backend.
type MongoConfig struct {
	URI        string `toml:"uri" yaml:"uri"`
	Database   string `toml:"database" yaml:"database"`
	Collection string `toml:"collection" yaml:"collection"`
}

// FetchConfig configures the upstream clients.
type FetchConfig struct {
	Timeout     time.Duration `toml:"timeout" yaml:"timeout"`
	Strict      bool          `toml:"strict" yaml:"strict"`
	BaseURL     string        `toml:"base_url" yaml:"base_url"`
	FontBaseURL string        `toml:"font_base_url" yaml:"font_base_url"`
}

// CardConfig holds the product defaults applied to every card unless a
// request overrides them.
type CardConfig struct {
	Width     int      `toml:"width" yaml:"width"`
	Height    int      `toml:"height" yaml:"height"`
	Themes    []string `toml:"themes" yaml:"themes"`
	Font      string   `toml:"font" yaml:"font"`
	Animation bool     `toml:"animation" yaml:"animation"`
}

// Default returns the built-in configuration.
func Default() *File {
	return &File{
		Server: ServerConfig{
			Addr:           ":8080",
			ReadTimeout:    10 * time.Second,
			WriteTimeout:   30 * time.Second,
			RequestTimeout: 20 * time.Second,
			MaxAge:         time.Hour,
		},
		Cache: CacheConfig{
			Backend: BackendFile,
			FontTTL: cache.TTLFont,
			Mongo: MongoConfig{
				Database:   "statcard",
				Collection: "cache",
			},
		},
		Fetch: FetchConfig{
			Timeout:     15 * time.Second,
			BaseURL:     leetcode.DefaultBaseURL,
			FontBaseURL: nanofont.DefaultBaseURL,
		},
		Card: CardConfig{
			Width:     500,
			Height:    200,
			Themes:    []string{"light", "dark"},
			Font:      "baloo_2",
			Animation: true,
		},
	}
}

// CacheDir returns the configured cache directory, or ~/.cache/statcard.
func (c CacheConfig) CacheDir() (string, error) {
	if c.Dir != "" {
		return c.Dir, nil
	}
	return httputil.DefaultDir()
}

// CardDir is where the file backend stores rendered cards.
func (c CacheConfig) CardDir() (string, error) {
	dir, err := c.CacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "cards"), nil
}

// HTTPDir is where fetched font payloads are stored.
func (c CacheConfig) HTTPDir() (string, error) {
	dir, err := c.CacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "http"), nil
}
