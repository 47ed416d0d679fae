package config

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/statcard/pkg/cache"
	"github.com/matzehuels/statcard/pkg/core/stats"
	"github.com/matzehuels/statcard/pkg/core/theme"
	"github.com/matzehuels/statcard/pkg/errors"
	"github.com/matzehuels/statcard/pkg/fonts"
	"github.com/matzehuels/statcard/pkg/httputil"
	"github.com/matzehuels/statcard/pkg/integrations/leetcode"
	"github.com/matzehuels/statcard/pkg/integrations/nanofont"
	"github.com/matzehuels/statcard/pkg/pipeline"
)

// Open connects the configured card cache. The result reports to the
// observability cache hooks. The caller must Close it.
func (c CacheConfig) Open(ctx context.Context) (cache.Cache, error) {
	var (
		backend cache.Cache
		err     error
	)
	switch c.Backend {
	case BackendNone:
		backend = cache.NewNullCache()
	case BackendFile, "":
		var dir string
		if dir, err = c.CardDir(); err == nil {
			backend, err = cache.NewFileCache(dir)
		}
	case BackendRedis:
		backend, err = cache.NewRedisCache(ctx, cache.RedisConfig{
			Addr:     c.Redis.Addr,
			Password: c.Redis.Password,
			DB:       c.Redis.DB,
		})
	case BackendMongo:
		backend, err = cache.NewMongoCache(ctx, cache.MongoConfig{
			URI:        c.Mongo.URI,
			Database:   c.Mongo.Database,
			Collection: c.Mongo.Collection,
		})
	default:
		return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown cache backend %q", c.Backend)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "open %s cache", c.Backend)
	}
	return cache.Observed(backend), nil
}

// Keyer returns the key builder, scoped by Prefix when set.
func (c CacheConfig) Keyer() cache.Keyer {
	if c.Prefix == "" {
		return cache.NewDefaultKeyer()
	}
	return cache.NewScopedKeyer(nil, c.Prefix)
}

// HTTPCache opens the on-disk cache for font payloads. It returns nil when
// caching is disabled.
func (c CacheConfig) HTTPCache() (*httputil.Cache, error) {
	if c.Backend == BackendNone {
		return nil, nil
	}
	dir, err := c.HTTPDir()
	if err != nil {
		return nil, err
	}
	return httputil.NewCache(dir, c.FontTTL)
}

// Generator wires the LeetCode and font clients into a pipeline.Generator.
// Profiles are cached in profiles when it is non-nil.
func (f *File) Generator(profiles cache.Cache, logger *log.Logger) (*pipeline.Generator, error) {
	httpCache, err := f.Cache.HTTPCache()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "open font cache")
	}

	var fetcher pipeline.Fetcher = leetcode.NewClient(
		leetcode.WithBaseURL(f.Fetch.BaseURL),
		leetcode.WithLogger(logger),
	)
	if profiles != nil {
		fetcher = pipeline.NewCachedFetcher(fetcher, profiles, f.Cache.Keyer(), logger)
	}
	if timeout := f.Fetch.Timeout; timeout > 0 {
		inner := fetcher
		fetcher = pipeline.FetcherFunc(func(ctx context.Context, username string) (*stats.Profile, error) {
			ctx, cancel := context.WithTimeout(ctx, timeout)
			defer cancel()
			return inner.FetchProfile(ctx, username)
		})
	}
	resolver := nanofont.NewClient(httpCache, nanofont.WithBaseURL(f.Fetch.FontBaseURL))
	return pipeline.NewGenerator(fetcher, resolver, logger), nil
}

// CardFor returns the pipeline config for username with the card
// defaults and fetch strictness applied.
func (f *File) CardFor(username string) (pipeline.Config, error) {
	cfg, err := f.Card.Apply(pipeline.NewConfig(username))
	if err != nil {
		return cfg, err
	}
	return cfg.WithStrict(f.Fetch.Strict), nil
}

// Apply returns cfg with the card defaults applied.
func (c CardConfig) Apply(cfg pipeline.Config) (pipeline.Config, error) {
	cfg = cfg.WithWidth(c.Width).WithHeight(c.Height).WithAnimation(c.Animation)
	cfg, err := ApplyThemes(cfg, c.Themes)
	if err != nil {
		return cfg, err
	}
	return ApplyFont(cfg, c.Font)
}

// ApplyThemes sets the themes named in names: one name applies
// unconditionally, two names are a light theme followed by a dark theme.
// Unknown names report INVALID_THEME.
func ApplyThemes(cfg pipeline.Config, names []string) (pipeline.Config, error) {
	ts := make([]theme.Theme, 0, len(names))
	for _, name := range names {
		t, err := theme.Lookup(name)
		if err != nil {
			return cfg, err
		}
		ts = append(ts, t)
	}
	switch len(ts) {
	case 0:
		return cfg, nil
	case 1:
		return cfg.WithTheme(ts[0]), nil
	case 2:
		return cfg.WithLightTheme(ts[0]).WithDarkTheme(ts[1]), nil
	default:
		return cfg, errors.New(errors.ErrCodeInvalidTheme, "at most %d themes, got %d", MaxThemes, len(ts))
	}
}

// ApplyFont sets the font named name. An empty name removes the font.
// Unknown names report INVALID_FONT.
func ApplyFont(cfg pipeline.Config, name string) (pipeline.Config, error) {
	if name == "" {
		return cfg.WithoutFont(), nil
	}
	f, err := fonts.Lookup(name)
	if err != nil {
		return cfg, err
	}
	return cfg.WithFont(f), nil
}
