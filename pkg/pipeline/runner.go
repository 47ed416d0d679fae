package pipeline

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/singleflight"

	"github.com/matzehuels/statcard/pkg/cache"
	"github.com/matzehuels/statcard/pkg/core/stats"
)

// DefaultRenderTimeout bounds a shared render when Runner.Timeout is unset.
const DefaultRenderTimeout = 30 * time.Second

// Runner renders cards through a cache.
//
// Cards are keyed by Keyer.CardKey(cfg.Fingerprint()). Concurrent renders of
// the same key share one Generate call. The shared call is detached from the
// cancellation of any single caller and bounded by Timeout instead; a caller
// whose context ends stops waiting without failing the others. Cards built
// from the default profile are never stored, so a transient upstream failure
// does not outlive the request that saw it.
type Runner struct {
	Generator *Generator
	Cache     cache.Cache
	Keyer     cache.Keyer
	Logger    *log.Logger
	Timeout   time.Duration

	group singleflight.Group
}

// Result is the outcome of Runner.Render.
type Result struct {
	SVG      string
	Profile  *stats.Profile
	CacheHit bool
	Fallback bool
	Duration time.Duration
}

// NewRunner creates a runner. A nil cache disables caching; a nil keyer uses
// cache.DefaultKeyer; a nil logger uses log.Default().
func NewRunner(g *Generator, c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Generator: g,
		Cache:     c,
		Keyer:     keyer,
		Logger:    logger,
		Timeout:   DefaultRenderTimeout,
	}
}

// Render returns the card for cfg, from the cache when possible.
func (r *Runner) Render(ctx context.Context, cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	start := time.Now()
	key := r.Keyer.CardKey(cfg.Fingerprint())

	var cached Card
	switch err := cache.GetJSON(ctx, r.Cache, key, &cached); {
	case err == nil:
		r.Logger.Debug("card cache hit", "user", cfg.Username())
		return &Result{
			SVG:      cached.SVG,
			Profile:  cached.Profile,
			CacheHit: true,
			Duration: time.Since(start),
		}, nil
	case !stderrors.Is(err, cache.ErrCacheMiss):
		r.Logger.Warn("card cache read failed", "user", cfg.Username(), "err", err)
	}

	ch := r.group.DoChan(key, func() (any, error) {
		timeout := r.Timeout
		if timeout <= 0 {
			timeout = DefaultRenderTimeout
		}
		rctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeout)
		defer cancel()

		card, err := r.Generator.Generate(rctx, cfg)
		if err != nil {
			return nil, err
		}
		if !card.Fallback {
			if err := cache.SetJSON(rctx, r.Cache, key, card, cache.TTLCard); err != nil {
				r.Logger.Warn("card cache write failed", "user", cfg.Username(), "err", err)
			}
		}
		return card, nil
	})

	var res singleflight.Result
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res = <-ch:
	}
	if res.Err != nil {
		return nil, res.Err
	}

	card := res.Val.(*Card)
	r.Logger.Info("rendered card",
		"user", cfg.Username(),
		"fallback", card.Fallback,
		"shared", res.Shared,
		"duration", time.Since(start))
	return &Result{
		SVG:      card.SVG,
		Profile:  card.Profile,
		Fallback: card.Fallback,
		Duration: time.Since(start),
	}, nil
}
