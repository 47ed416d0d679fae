// Package observability lets statcard report what it is doing without
// depending on a metrics or tracing backend.
//
// Three hook sets cover the interesting events of a render: [PipelineHooks]
// (profile fetch and card render), [CacheHooks] (card, profile and font
// cache traffic) and [HTTPHooks] (calls to LeetCode and the font host).
// Every set starts out as a no-op. A binary installs real hooks once at
// startup; libraries only ever read them:
//
//	observability.Pipeline().OnFetchStart(ctx, username)
//	p, err := fetch(ctx, username)
//	observability.Pipeline().OnFetchComplete(ctx, username, false, time.Since(start), err)
//
// [LogHooks] reports every event to a charmbracelet logger and is what
// `statcard --verbose` installs.
package observability

import (
	"context"
	"sync"
	"time"
)

// PipelineHooks receives events from card generation.
type PipelineHooks interface {
	// OnFetchStart and OnFetchComplete bracket a profile fetch. fallback is
	// true when the default profile replaced a failed fetch.
	OnFetchStart(ctx context.Context, username string)
	OnFetchComplete(ctx context.Context, username string, fallback bool, duration time.Duration, err error)

	// OnRenderStart and OnRenderComplete bracket the layout and serialization
	// of one card. size is the SVG length in bytes.
	OnRenderStart(ctx context.Context, username string, extensions []string)
	OnRenderComplete(ctx context.Context, username string, size int, duration time.Duration, err error)
}

// CacheHooks receives events from cache operations. keyType is one of the
// values returned by cache.KeyType.
type CacheHooks interface {
	OnCacheHit(ctx context.Context, keyType string)
	OnCacheMiss(ctx context.Context, keyType string)
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// HTTPHooks receives events from upstream HTTP calls.
type HTTPHooks interface {
	OnRequest(ctx context.Context, method, host, path string)
	OnResponse(ctx context.Context, method, host, path string, statusCode int, duration time.Duration)
	// OnError is called for transport failures only; error statuses arrive
	// through OnResponse.
	OnError(ctx context.Context, method, host, path string, err error)
}

// NoopPipelineHooks ignores every pipeline event.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnFetchStart(context.Context, string)                                {}
func (NoopPipelineHooks) OnFetchComplete(context.Context, string, bool, time.Duration, error) {}
func (NoopPipelineHooks) OnRenderStart(context.Context, string, []string)                     {}
func (NoopPipelineHooks) OnRenderComplete(context.Context, string, int, time.Duration, error) {}

// NoopCacheHooks ignores every cache event.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// NoopHTTPHooks ignores every HTTP event.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string, string)                      {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, string, int, time.Duration) {}
func (NoopHTTPHooks) OnError(context.Context, string, string, string, error)                 {}

// registry holds the installed hook sets.
type registry struct {
	mu       sync.RWMutex
	pipeline PipelineHooks
	cache    CacheHooks
	http     HTTPHooks
}

var hooks = newRegistry()

func newRegistry() *registry {
	return &registry{
		pipeline: NoopPipelineHooks{},
		cache:    NoopCacheHooks{},
		http:     NoopHTTPHooks{},
	}
}

func (r *registry) update(fn func(*registry)) {
	r.mu.Lock()
	fn(r)
	r.mu.Unlock()
}

func (r *registry) snapshot() (PipelineHooks, CacheHooks, HTTPHooks) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.pipeline, r.cache, r.http
}

// SetPipelineHooks installs h. A nil h is ignored.
func SetPipelineHooks(h PipelineHooks) {
	if h != nil {
		hooks.update(func(r *registry) { r.pipeline = h })
	}
}

// SetCacheHooks installs h. A nil h is ignored.
func SetCacheHooks(h CacheHooks) {
	if h != nil {
		hooks.update(func(r *registry) { r.cache = h })
	}
}

// SetHTTPHooks installs h. A nil h is ignored.
func SetHTTPHooks(h HTTPHooks) {
	if h != nil {
		hooks.update(func(r *registry) { r.http = h })
	}
}

// Pipeline returns the installed pipeline hooks.
func Pipeline() PipelineHooks {
	p, _, _ := hooks.snapshot()
	return p
}

// Cache returns the installed cache hooks.
func Cache() CacheHooks {
	_, c, _ := hooks.snapshot()
	return c
}

// HTTP returns the installed HTTP hooks.
func HTTP() HTTPHooks {
	_, _, h := hooks.snapshot()
	return h
}

// Reset restores the no-op hooks. Tests use it to undo registrations.
func Reset() {
	fresh := newRegistry()
	hooks.update(func(r *registry) {
		r.pipeline, r.cache, r.http = fresh.pipeline, fresh.cache, fresh.http
	})
}
