package observability

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// LogHooks reports every event to a logger at debug level, and errors at
// warn level. It implements PipelineHooks, CacheHooks and HTTPHooks.
type LogHooks struct {
	Logger *log.Logger
}

// NewLogHooks returns LogHooks writing to logger, or to log.Default() when
// logger is nil.
func NewLogHooks(logger *log.Logger) *LogHooks {
	if logger == nil {
		logger = log.Default()
	}
	return &LogHooks{Logger: logger}
}

// Register installs h as the pipeline, cache and HTTP hooks.
func (h *LogHooks) Register() {
	SetPipelineHooks(h)
	SetCacheHooks(h)
	SetHTTPHooks(h)
}

func (h *LogHooks) OnFetchStart(_ context.Context, username string) {
	h.Logger.Debug("fetching profile", "user", username)
}

func (h *LogHooks) OnFetchComplete(_ context.Context, username string, fallback bool, d time.Duration, err error) {
	if err != nil {
		h.Logger.Warn("profile fetch failed", "user", username, "fallback", fallback, "duration", d, "error", err)
		return
	}
	h.Logger.Debug("fetched profile", "user", username, "duration", d)
}

func (h *LogHooks) OnRenderStart(_ context.Context, username string, extensions []string) {
	h.Logger.Debug("rendering card", "user", username, "extensions", extensions)
}

func (h *LogHooks) OnRenderComplete(_ context.Context, username string, size int, d time.Duration, err error) {
	if err != nil {
		h.Logger.Warn("render failed", "user", username, "duration", d, "error", err)
		return
	}
	h.Logger.Debug("rendered card", "user", username, "bytes", size, "duration", d)
}

func (h *LogHooks) OnCacheHit(_ context.Context, keyType string) {
	h.Logger.Debug("cache hit", "type", keyType)
}

func (h *LogHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.Logger.Debug("cache miss", "type", keyType)
}

func (h *LogHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.Logger.Debug("cache set", "type", keyType, "bytes", size)
}

func (h *LogHooks) OnRequest(_ context.Context, method, host, path string) {
	h.Logger.Debug("request", "method", method, "host", host, "path", path)
}

func (h *LogHooks) OnResponse(_ context.Context, method, host, path string, status int, d time.Duration) {
	h.Logger.Debug("response", "method", method, "host", host, "path", path, "status", status, "duration", d)
}

func (h *LogHooks) OnError(_ context.Context, method, host, path string, err error) {
	h.Logger.Warn("request failed", "method", method, "host", host, "path", path, "error", err)
}

var (
	_ PipelineHooks = (*LogHooks)(nil)
	_ CacheHooks    = (*LogHooks)(nil)
	_ HTTPHooks     = (*LogHooks)(nil)
)
