package pipeline

import (
	"context"
	stderrors "errors"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/statcard/pkg/cache"
	"github.com/matzehuels/statcard/pkg/core/stats"
)

// Fetcher loads a user's statistics.
type Fetcher interface {
	FetchProfile(ctx context.Context, username string) (*stats.Profile, error)
}

// FetcherFunc adapts a function to the Fetcher interface.
type FetcherFunc func(ctx context.Context, username string) (*stats.Profile, error)

// FetchProfile calls fn(ctx, username).
func (fn FetcherFunc) FetchProfile(ctx context.Context, username string) (*stats.Profile, error) {
	return fn(ctx, username)
}

// CachedFetcher stores fetched profiles for cache.TTLProfile so that cards
// differing only in styling share one upstream fetch.
type CachedFetcher struct {
	Fetcher Fetcher
	Cache   cache.Cache
	Keyer   cache.Keyer
	Logger  *log.Logger
}

var _ Fetcher = (*CachedFetcher)(nil)

// NewCachedFetcher wraps f. A nil keyer uses cache.DefaultKeyer; a nil cache
// disables caching.
func NewCachedFetcher(f Fetcher, c cache.Cache, keyer cache.Keyer, logger *log.Logger) *CachedFetcher {
	if c == nil {
		c = cache.NewNullCache()
	}
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &CachedFetcher{Fetcher: f, Cache: c, Keyer: keyer, Logger: logger}
}

// FetchProfile implements Fetcher.
func (f *CachedFetcher) FetchProfile(ctx context.Context, username string) (*stats.Profile, error) {
	key := f.Keyer.ProfileKey(username)

	var p stats.Profile
	err := cache.GetJSON(ctx, f.Cache, key, &p)
	if err == nil {
		return &p, nil
	}
	if !stderrors.Is(err, cache.ErrCacheMiss) {
		f.Logger.Warn("profile cache read failed", "user", username, "err", err)
	}

	fetched, err := f.Fetcher.FetchProfile(ctx, username)
	if err != nil {
		return nil, err
	}
	if err := cache.SetJSON(ctx, f.Cache, key, fetched, cache.TTLProfile); err != nil {
		f.Logger.Warn("profile cache write failed", "user", username, "err", err)
	}
	return fetched, nil
}
