// Package server exposes card rendering over HTTP.
//
// Routes:
//
//	GET /          health check, "up and running!"
//	GET /leetcode  the card for the query in ParseQuery, as image/svg+xml
//	GET /themes    the theme catalog as JSON
//	GET /fonts     the font catalog as JSON
//
// Failures are answered with a plain-text message and the status from
// errors.HTTPStatus. A failed render never produces a partial SVG.
package server

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/statcard/pkg/buildinfo"
	"github.com/matzehuels/statcard/pkg/config"
	"github.com/matzehuels/statcard/pkg/core/theme"
	"github.com/matzehuels/statcard/pkg/errors"
	"github.com/matzehuels/statcard/pkg/fonts"
	"github.com/matzehuels/statcard/pkg/pipeline"
)

// Health is the body of GET /.
const Health = "up and running!"

// Server serves cards rendered by a pipeline.Runner.
type Server struct {
	runner *pipeline.Runner
	cfg    *config.File
	logger *log.Logger
	router chi.Router
}

// New creates a server. A nil cfg uses config.Default(); a nil logger uses
// log.Default().
func New(runner *pipeline.Runner, cfg *config.File, logger *log.Logger) *Server {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{runner: runner, cfg: cfg, logger: logger}
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(middleware.RealIP)
	r.Use(logRequests(s.logger))
	r.Use(middleware.Recoverer)
	if d := s.cfg.Server.RequestTimeout; d > 0 {
		r.Use(middleware.Timeout(d))
	}

	r.Get("/", s.handleHealth)
	r.Get("/leetcode", s.handleCard)
	r.Get("/themes", s.handleThemes)
	r.Get("/fonts", s.handleFonts)
	return r
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe serves on cfg.Server.Addr until ctx is cancelled, then
// shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Server.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.cfg.Server.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is cancelled.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:      s,
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
		BaseContext:  func(net.Listener) context.Context { return ctx },
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.Serve(ln) }()
	s.logger.Info("listening", "addr", ln.Addr().String(), "version", buildinfo.Version)

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errc; err != nil && !stderrors.Is(err, http.ErrServerClosed) {
		return err
	}
	s.logger.Info("server stopped")
	return nil
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprint(w, Health)
}

func (s *Server) handleCard(w http.ResponseWriter, r *http.Request) {
	base, err := s.cfg.Card.Apply(pipeline.NewConfig(""))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	cfg, err := ParseQuery(r.URL.Query(), base.WithStrict(s.cfg.Fetch.Strict))
	if err != nil {
		s.fail(w, r, err)
		return
	}

	res, err := s.runner.Render(r.Context(), cfg)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	h := w.Header()
	h.Set("Content-Type", "image/svg+xml")
	if res.Fallback {
		h.Set("Cache-Control", "no-store")
	} else {
		h.Set("Cache-Control", fmt.Sprintf("public, max-age=%d", int(s.cfg.Server.MaxAge.Seconds())))
	}
	if res.CacheHit {
		h.Set("X-Cache", "HIT")
	} else {
		h.Set("X-Cache", "MISS")
	}
	fmt.Fprint(w, res.SVG)
}

type themeInfo struct {
	Name string `json:"name"`
	CSS  string `json:"css"`
}

func (s *Server) handleThemes(w http.ResponseWriter, r *http.Request) {
	all := theme.All()
	out := make([]themeInfo, len(all))
	for i, t := range all {
		out[i] = themeInfo{Name: t.Name, CSS: t.CSS()}
	}
	s.writeJSON(w, r, out)
}

func (s *Server) handleFonts(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, r, fonts.All())
}

func (s *Server) writeJSON(w http.ResponseWriter, r *http.Request, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		s.fail(w, r, errors.Wrap(errors.ErrCodeInternal, err, "encode response"))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := errors.HTTPStatus(err)
	if stderrors.Is(err, context.DeadlineExceeded) {
		status = http.StatusGatewayTimeout
	}
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "id", RequestID(r.Context()), "path", r.URL.Path, "err", err)
	} else {
		s.logger.Debug("request rejected", "id", RequestID(r.Context()), "path", r.URL.Path, "err", err)
	}
	http.Error(w, errors.UserMessage(err), status)
}
