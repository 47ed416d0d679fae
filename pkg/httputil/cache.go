package httputil

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"time"
)

// ErrExpired is returned by [Cache.Get] when an entry exists but is older
// than the cache TTL. The stale file is left in place; callers refetch and
// overwrite it with [Cache.Set].
var ErrExpired = errors.New("cache entry expired")

// Cache stores JSON-encoded values as files named by the SHA-256 of their key.
//
// Entries expire by file modification time; a TTL of 0 disables expiry.
// A single Cache is not goroutine-safe, but several instances (or
// processes) may share a directory since each write replaces a whole file.
//
// Use [Cache.Namespace] to keep unrelated payloads apart:
//
//	fonts := c.Namespace("font:")
//	fonts.Set("baloo_2", payload) // stored under "font:baloo_2"
type Cache struct {
	dir    string
	ttl    time.Duration
	prefix string
}

// NewCache creates a Cache in dir, creating the directory if needed.
// An empty dir selects the default ~/.cache/statcard/.
func NewCache(dir string, ttl time.Duration) (*Cache, error) {
	if dir == "" {
		d, err := DefaultDir()
		if err != nil {
			return nil, err
		}
		dir = d
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Cache{dir: dir, ttl: ttl}, nil
}

// DefaultDir returns ~/.cache/statcard.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", "statcard"), nil
}

// Dir returns the cache directory.
func (c *Cache) Dir() string { return c.dir }

// TTL returns the entry lifetime. Zero means entries never expire.
func (c *Cache) TTL() time.Duration { return c.ttl }

// Get unmarshals the entry for key into v.
//
// It returns (true, nil) on a fresh hit, (false, nil) when no entry exists
// and (false, ErrExpired) when the entry is stale. Other errors come from the
// filesystem or from json.Unmarshal, in which case v may be partially set.
func (c *Cache) Get(key string, v any) (bool, error) {
	path := c.keyPath(c.prefix + key)
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if c.ttl > 0 && time.Since(info.ModTime()) > c.ttl {
		return false, ErrExpired
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return false, err
	}
	return true, json.Unmarshal(data, v)
}

// Set marshals v and writes it under key, resetting the entry's age.
func (c *Cache) Set(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return os.WriteFile(c.keyPath(c.prefix+key), data, 0o644)
}

// Namespace returns a view of the same directory and TTL whose keys are
// prefixed with prefix. Namespaces nest: c.Namespace("a:").Namespace("b:")
// uses the prefix "a:b:".
func (c *Cache) Namespace(prefix string) *Cache {
	return &Cache{
		dir:    c.dir,
		ttl:    c.ttl,
		prefix: c.prefix + prefix,
	}
}

func (c *Cache) keyPath(key string) string {
	h := sha256.Sum256([]byte(key))
	return filepath.Join(c.dir, hex.EncodeToString(h[:]))
}
