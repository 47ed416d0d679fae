package config

import (
	"github.com/matzehuels/statcard/pkg/core/theme"
	"github.com/matzehuels/statcard/pkg/errors"
	"github.com/matzehuels/statcard/pkg/fonts"
)

// MaxThemes is the number of themes a card can carry: one unconditional
// theme, or a light/dark pair.
const MaxThemes = 2

// Validate reports the first invalid setting as an INVALID_CONFIG error.
func (f *File) Validate() error {
	if f.Server.Addr == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "server.addr is empty")
	}
	for name, d := range map[string]int64{
		"server.read_timeout":    int64(f.Server.ReadTimeout),
		"server.write_timeout":   int64(f.Server.WriteTimeout),
		"server.request_timeout": int64(f.Server.RequestTimeout),
		"server.max_age":         int64(f.Server.MaxAge),
		"cache.font_ttl":         int64(f.Cache.FontTTL),
		"fetch.timeout":          int64(f.Fetch.Timeout),
	} {
		if d < 0 {
			return errors.New(errors.ErrCodeInvalidConfig, "%s must not be negative", name)
		}
	}

	switch f.Cache.Backend {
	case BackendNone, BackendFile:
	case BackendRedis:
		if f.Cache.Redis.Addr == "" {
			return errors.New(errors.ErrCodeInvalidConfig, "cache.redis.addr is required for the redis backend")
		}
	case BackendMongo:
		m := f.Cache.Mongo
		if m.URI == "" || m.Database == "" || m.Collection == "" {
			return errors.New(errors.ErrCodeInvalidConfig, "cache.mongo needs uri, database and collection")
		}
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "unknown cache backend %q", f.Cache.Backend)
	}

	if f.Fetch.BaseURL == "" || f.Fetch.FontBaseURL == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "fetch.base_url and fetch.font_base_url are required")
	}
	return f.Card.Validate()
}

// Validate checks the card defaults against the catalogs.
func (c CardConfig) Validate() error {
	if err := errors.ValidateDimension("card.width", c.Width); err != nil {
		return err
	}
	if err := errors.ValidateDimension("card.height", c.Height); err != nil {
		return err
	}
	if len(c.Themes) > MaxThemes {
		return errors.New(errors.ErrCodeInvalidConfig, "card.themes has %d entries (max %d)", len(c.Themes), MaxThemes)
	}
	for _, name := range c.Themes {
		if _, err := theme.Lookup(name); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "card.themes: unknown theme %q", name)
		}
	}
	if c.Font != "" {
		if _, err := fonts.Lookup(c.Font); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "card.font: unknown font %q", c.Font)
		}
	}
	return nil
}
