package server

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vango-dev/outlet/pkg/browser"
	"github.com/vango-dev/outlet/pkg/content"
	"github.com/vango-dev/outlet/pkg/dom"
	"github.com/vango-dev/outlet/pkg/middleware"
	"github.com/vango-dev/outlet/pkg/render"
	"github.com/vango-dev/outlet/pkg/router"
)

// Paths served by the server.
const (
	WebSocketPath = "/_outlet/ws"
	ClientPath    = render.DefaultClientScript
	HealthPath    = "/healthz"
)

//go:embed client.js
var clientJS []byte

// Server serves the document shell, the navigation client and live
// sessions.
type Server struct {
	config   *Config
	mux      chi.Router
	upgrader websocket.Upgrader
	metrics  *Metrics
	logger   *slog.Logger

	mu       sync.Mutex
	sessions map[string]*Session

	httpServer *http.Server
}

// New creates a server for cfg.
func New(cfg *Config) *Server {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	cfg = cfg.withDefaults()

	s := &Server{
		config: cfg,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin:     cfg.CheckOrigin,
		},
		metrics:  NewMetrics(cfg.Registry),
		logger:   cfg.Logger.With("component", "server"),
		sessions: make(map[string]*Session),
	}
	s.mux = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(middleware.Logger(s.logger))
	r.Use(middleware.Tracing(s.config.Tracer))

	r.Get(HealthPath, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte("ok"))
	})
	r.Get(ClientPath, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/javascript; charset=utf-8")
		w.Header().Set("Cache-Control", "public, max-age=300")
		w.Write(clientJS)
	})
	r.Get(WebSocketPath, s.handleWebSocket)
	if s.config.MetricsPath != "" {
		r.Handle(s.config.MetricsPath, promhttp.HandlerFor(s.config.Registry, promhttp.HandlerOpts{}))
	}
	r.Get("/*", s.handlePage)
	return r
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// Metrics returns the server's collectors.
func (s *Server) Metrics() *Metrics {
	return s.metrics
}

// newRouter builds a router over the site's routes with the server's
// logging, tracing and metrics attached.
func (s *Server) newRouter(outlet *dom.Node, win router.Window, logger *slog.Logger, observers ...func(router.Event)) *router.Router {
	opts := []router.Option{
		router.WithAppTitle(s.config.AppTitle),
		router.WithLogger(logger),
		router.WithObserver(s.metrics.Observe),
	}
	if s.config.Tracer != nil {
		opts = append(opts, router.WithTracer(s.config.Tracer))
	}
	for _, fn := range observers {
		opts = append(opts, router.WithObserver(fn))
	}
	return router.New(outlet, win, s.config.Routes, opts...)
}

// RenderPath renders path headlessly and returns the document title, the
// outlet HTML and the HTTP status of the result. The status is 404 when
// only the not-found fallback matched or the view's content is missing,
// and 500 when the view failed to load for any other reason.
func (s *Server) RenderPath(ctx context.Context, path string) (title, html string, status int, err error) {
	outlet := dom.NewElement("div")
	win := browser.NewMemory(path)

	var failed error
	rt := s.newRouter(outlet, win, s.logger, func(ev router.Event) {
		if ev.Kind == router.EventFailed {
			failed = ev.Err
		}
	})

	rt.Start(ctx)
	rt.Wait()
	rt.Inspect(func(o *dom.Node) {
		html, err = render.NewRenderer(render.RendererConfig{}).RenderChildren(o)
	})
	rt.Stop()

	return win.Title(), html, s.status(path, win.Location(), failed), err
}

// status maps the outcome of a headless render to an HTTP status.
func (s *Server) status(path, location string, failed error) int {
	switch {
	case errors.Is(failed, content.ErrNotFound):
		return http.StatusNotFound
	case failed != nil:
		return http.StatusInternalServerError
	}
	resolved, ok := s.config.Routes.Resolve(location)
	if !ok || (resolved.Key == router.NotFoundKey && path != router.NotFoundKey) {
		return http.StatusNotFound
	}
	return http.StatusOK
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Path
	title, html, status, err := s.RenderPath(r.Context(), path)
	if err != nil {
		s.logger.Error("render page", "path", path, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := render.RenderPage(&buf, render.PageData{
		Title:       title,
		OutletHTML:  html,
		Path:        path,
		StyleSheets: s.config.StyleSheets,
	}); err != nil {
		s.logger.Error("render shell", "path", path, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")
	if path == "" {
		path = router.RootPath
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.metrics.wsError("upgrade")
		s.logger.Warn("websocket upgrade failed", "error", err)
		return
	}

	sess := newSession(s, conn, path)
	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()
	s.metrics.sessionOpened()
	sess.logger.Debug("session opened", "path", path)

	sess.run()
}

func (s *Server) removeSession(sess *Session) {
	s.mu.Lock()
	_, ok := s.sessions[sess.ID]
	delete(s.sessions, sess.ID)
	s.mu.Unlock()
	if ok {
		s.metrics.sessionClosed()
	}
}

// SessionCount returns the number of open sessions.
func (s *Server) SessionCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// ListenAndServe serves until ctx is done, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	s.httpServer = &http.Server{
		Addr:              s.config.Address,
		Handler:           s,
		ReadHeaderTimeout: s.config.ReadHeaderTimeout,
		IdleTimeout:       s.config.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", "address", s.config.Address)
		errCh <- s.httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		s.logger.Info("shutting down...")
		return s.Shutdown(context.Background())
	}
}

// Shutdown closes every session and stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.config.ShutdownTimeout)
	defer cancel()

	s.mu.Lock()
	sessions := make([]*Session, 0, len(s.sessions))
	for _, sess := range s.sessions {
		sessions = append(sessions, sess)
	}
	s.mu.Unlock()
	for _, sess := range sessions {
		sess.Close()
	}

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			s.logger.Error("shutdown error", "error", err)
			return err
		}
	}
	s.logger.Info("server shutdown complete")
	return nil
}
