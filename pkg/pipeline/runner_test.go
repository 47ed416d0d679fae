package pipeline

import (
	"context"
	stderrors "errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/matzehuels/statcard/pkg/cache"
	"github.com/matzehuels/statcard/pkg/core/stats"
	"github.com/matzehuels/statcard/pkg/core/theme"
	"github.com/matzehuels/statcard/pkg/errors"
)

func countingFetcher(calls *atomic.Int32, p *stats.Profile) Fetcher {
	return FetcherFunc(func(context.Context, string) (*stats.Profile, error) {
		calls.Add(1)
		return p, nil
	})
}

func newFileCache(t *testing.T) cache.Cache {
	t.Helper()
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestRunnerCachesCards(t *testing.T) {
	var calls atomic.Int32
	g := NewGenerator(countingFetcher(&calls, aliceProfile()), nil, quiet)
	r := NewRunner(g, newFileCache(t), nil, quiet)
	ctx := context.Background()
	cfg := NewConfig("alice").WithLightTheme(theme.Light).WithDarkTheme(theme.Dark)

	first, err := r.Render(ctx, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if first.CacheHit {
		t.Error("first render should miss")
	}

	second, err := r.Render(ctx, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if !second.CacheHit {
		t.Error("second render should hit")
	}
	if second.SVG != first.SVG {
		t.Error("cached SVG differs from rendered SVG")
	}
	if second.Profile == nil || second.Profile.Username != "alice" {
		t.Errorf("cached profile = %+v", second.Profile)
	}
	if n := calls.Load(); n != 1 {
		t.Errorf("fetches = %d, want 1", n)
	}

	if _, err := r.Render(ctx, cfg.WithAnimation(true)); err != nil {
		t.Fatal(err)
	}
	if n := calls.Load(); n != 2 {
		t.Errorf("a different config should render again, fetches = %d", n)
	}
}

func TestRunnerSkipsFallbackCards(t *testing.T) {
	var calls atomic.Int32
	g := NewGenerator(FetcherFunc(func(context.Context, string) (*stats.Profile, error) {
		calls.Add(1)
		return nil, stderrors.New("upstream down")
	}), nil, quiet)
	r := NewRunner(g, newFileCache(t), nil, quiet)

	for range 2 {
		res, err := r.Render(context.Background(), NewConfig("alice"))
		if err != nil {
			t.Fatal(err)
		}
		if !res.Fallback || res.CacheHit {
			t.Errorf("result = fallback %v, hit %v", res.Fallback, res.CacheHit)
		}
	}
	if n := calls.Load(); n != 2 {
		t.Errorf("fallback cards must not be cached, fetches = %d", n)
	}
}

func TestRunnerSingleflight(t *testing.T) {
	release := make(chan struct{})
	var calls atomic.Int32
	g := NewGenerator(FetcherFunc(func(context.Context, string) (*stats.Profile, error) {
		calls.Add(1)
		<-release
		return aliceProfile(), nil
	}), nil, quiet)
	r := NewRunner(g, nil, nil, quiet)

	const n = 8
	var wg sync.WaitGroup
	results := make([]*Result, n)
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := r.Render(context.Background(), NewConfig("alice"))
			if err != nil {
				t.Error(err)
				return
			}
			results[i] = res
		}()
	}

	// Let every goroutine join the in-flight call before it completes.
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	if c := calls.Load(); c != 1 {
		t.Errorf("fetches = %d, want 1", c)
	}
	for i, res := range results {
		if res == nil || res.SVG != results[0].SVG {
			t.Errorf("result %d differs", i)
		}
	}
}

func TestRunnerInvalidConfig(t *testing.T) {
	r := NewRunner(NewGenerator(nil, nil, quiet), nil, nil, quiet)
	if _, err := r.Render(context.Background(), NewConfig("").WithWidth(0)); !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("error = %v, want INVALID_CONFIG", err)
	}
}

func TestRunnerStrictError(t *testing.T) {
	g := NewGenerator(FetcherFunc(func(context.Context, string) (*stats.Profile, error) {
		return nil, stderrors.New("boom")
	}), nil, quiet)
	r := NewRunner(g, newFileCache(t), nil, quiet)

	res, err := r.Render(context.Background(), NewConfig("alice").WithStrict(true))
	if res != nil || !errors.Is(err, errors.ErrCodeFetch) {
		t.Errorf("Render() = %v, %v; want FETCH_FAILED", res, err)
	}
}

func TestRunnerIgnoresUndecodableEntry(t *testing.T) {
	var calls atomic.Int32
	c := newFileCache(t)
	g := NewGenerator(countingFetcher(&calls, aliceProfile()), nil, quiet)
	r := NewRunner(g, c, nil, quiet)
	cfg := NewConfig("alice")

	key := r.Keyer.CardKey(cfg.Fingerprint())
	if err := c.Set(context.Background(), key, []byte("<svg/>"), time.Hour); err != nil {
		t.Fatal(err)
	}

	res, err := r.Render(context.Background(), cfg)
	if err != nil {
		t.Fatal(err)
	}
	if res.CacheHit || calls.Load() != 1 {
		t.Error("an undecodable entry should be treated as a miss")
	}
}

func TestRunnerSharedRenderOutlivesCancelledCaller(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})
	var fetchErr atomic.Value
	g := NewGenerator(FetcherFunc(func(ctx context.Context, _ string) (*stats.Profile, error) {
		close(entered)
		<-release
		if err := ctx.Err(); err != nil {
			fetchErr.Store(err)
		}
		return aliceProfile(), nil
	}), nil, quiet)
	r := NewRunner(g, newFileCache(t), nil, quiet)
	cfg := NewConfig("alice").WithStrict(true)

	ctx, cancel := context.WithCancel(context.Background())
	firstErr := make(chan error, 1)
	go func() {
		_, err := r.Render(ctx, cfg)
		firstErr <- err
	}()
	<-entered

	type outcome struct {
		res *Result
		err error
	}
	second := make(chan outcome, 1)
	go func() {
		res, err := r.Render(context.Background(), cfg)
		second <- outcome{res, err}
	}()
	// Let the second caller join the in-flight render.
	time.Sleep(50 * time.Millisecond)

	cancel()
	if err := <-firstErr; !stderrors.Is(err, context.Canceled) {
		t.Errorf("cancelled caller error = %v, want context.Canceled", err)
	}

	close(release)
	got := <-second
	if got.err != nil {
		t.Fatalf("live caller error = %v", got.err)
	}
	if got.res.Fallback || got.res.SVG == "" {
		t.Errorf("live caller result = %+v", got.res)
	}
	if err := fetchErr.Load(); err != nil {
		t.Errorf("shared fetch saw cancellation: %v", err)
	}
}

func TestRunnerTimeoutBoundsSharedRender(t *testing.T) {
	g := NewGenerator(FetcherFunc(func(ctx context.Context, _ string) (*stats.Profile, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	}), nil, quiet)
	r := NewRunner(g, nil, nil, quiet)
	r.Timeout = 20 * time.Millisecond

	_, err := r.Render(context.Background(), NewConfig("alice").WithStrict(true))
	if !stderrors.Is(err, context.DeadlineExceeded) {
		t.Errorf("error = %v, want context.DeadlineExceeded", err)
	}
}
