// Package cache provides the byte caches behind the card renderer.
//
// All backends implement [Cache]:
//   - [NullCache]: never stores anything (caching disabled)
//   - [FileCache]: one JSON file per entry, for the CLI
//   - [RedisCache]: shared cache for multi-instance deployments
//   - [MongoCache]: document cache with a TTL index
//
// Keys are built by a [Keyer] so that the CLI and the HTTP service agree on
// them. A rendered card is keyed by the fingerprint of its configuration:
//
//	key := keyer.CardKey(cfg.Fingerprint())
//	if data, hit, _ := c.Get(ctx, key); hit {
//	    return data
//	}
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"
)

// Cache stores opaque byte values with a time-to-live.
//
// Get reports a miss as (nil, false, nil); errors are reserved for backend
// failures. A ttl of 0 passed to Set means the entry does not expire.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Default lifetimes per entry type.
const (
	// TTLCard matches the Cache-Control max-age of served cards.
	TTLCard = time.Hour
	// TTLProfile bounds how stale fetched statistics may be.
	TTLProfile = 10 * time.Minute
	// TTLFont applies to font payloads, which change rarely.
	TTLFont = 7 * 24 * time.Hour
)

// Key types, reported to observability hooks.
const (
	KeyTypeCard    = "card"
	KeyTypeProfile = "profile"
	KeyTypeHTTP    = "http"
)

// Keyer builds cache keys.
type Keyer interface {
	// HTTPKey keys a raw upstream response within a namespace.
	HTTPKey(namespace, key string) string
	// ProfileKey keys the fetched statistics of a user.
	ProfileKey(username string) string
	// CardKey keys a rendered card by its configuration fingerprint.
	CardKey(fingerprint string) string
}

// DefaultKeyer is the Keyer used unless a deployment needs scoping.
type DefaultKeyer struct{}

// NewDefaultKeyer returns a DefaultKeyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

func (DefaultKeyer) HTTPKey(namespace, key string) string {
	return "http:" + namespace + ":" + key
}

func (DefaultKeyer) ProfileKey(username string) string {
	return hashKey(KeyTypeProfile, username)
}

func (DefaultKeyer) CardKey(fingerprint string) string {
	return hashKey(KeyTypeCard, fingerprint)
}

// KeyType returns the key type prefix of a key built by DefaultKeyer, or
// "unknown".
func KeyType(key string) string {
	for _, t := range []string{KeyTypeCard, KeyTypeProfile, KeyTypeHTTP} {
		if len(key) > len(t) && key[:len(t)+1] == t+":" {
			return t
		}
	}
	return "unknown"
}

// hashKey returns prefix:sha256(json(parts)).
func hashKey(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	return fmt.Sprintf("%s:%s", prefix, Hash(data))
}

// Hash returns the hex SHA-256 of data.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
