// Package server exposes the local entity store and the sync engine over
// HTTP for the canvas editor and the canvasync CLI.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/Brommah/contentfinal-sub002/internal/server/handlers"
	"github.com/Brommah/contentfinal-sub002/internal/server/middleware"
	syncsvc "github.com/Brommah/contentfinal-sub002/internal/sync"
)

// Deps are the services behind the HTTP surface.
type Deps struct {
	Logger    *slog.Logger
	Entities  handlers.EntityStore
	Sync      syncsvc.Service
	Conflicts syncsvc.ConflictService
	// Settings may be nil; configuration then lives only in memory
	Settings handlers.SettingsStore
	// Canvas stores connections, comments and members; nil disables those routes
	Canvas      handlers.CanvasStore
	WorkspaceID string
	// Events serves the progress websocket; nil disables the endpoint
	Events  http.Handler
	Version string
	// SyncRateLimit - запросов в минуту на клиента для запуска синхронизации
	SyncRateLimit int
}

// Server is the HTTP daemon.
type Server struct {
	httpServer *http.Server
	limiter    *middleware.RateLimiter
	logger     *slog.Logger
}

// New builds the router and an unstarted server listening on addr.
func New(addr string, d Deps) *Server {
	handler, limiter := NewRouter(d)
	return &Server{
		httpServer: &http.Server{
			Addr:              addr,
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		},
		limiter: limiter,
		logger:  d.Logger,
	}
}

// NewRouter registers every route. The returned limiter must be stopped
// by the caller.
func NewRouter(d Deps) (http.Handler, *middleware.RateLimiter) {
	rate := d.SyncRateLimit
	if rate <= 0 {
		rate = 30
	}
	limiter := middleware.NewRateLimiter(rate, time.Minute, d.Logger)

	health := handlers.NewHealthHandler(d.Logger, d.Version, d.Sync.IsConfigured)
	entities := handlers.NewEntityHandler(d.Logger, d.Entities)
	sync := handlers.NewSyncHandler(d.Logger, d.Sync, d.Entities, d.Settings)
	conflicts := handlers.NewConflictHandler(d.Logger, d.Conflicts)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/health", health.Health)

	mux.HandleFunc("GET /api/v1/entities", entities.List)
	mux.HandleFunc("POST /api/v1/entities", entities.Create)
	mux.HandleFunc("GET /api/v1/entities/{id}", entities.Get)
	mux.HandleFunc("PUT /api/v1/entities/{id}", entities.Upsert)
	mux.HandleFunc("DELETE /api/v1/entities/{id}", entities.Delete)

	if d.Canvas != nil {
		canvas := handlers.NewCanvasHandler(d.Logger, d.Canvas, d.Entities, d.WorkspaceID)
		mux.HandleFunc("GET /api/v1/connections", canvas.ListConnections)
		mux.HandleFunc("PUT /api/v1/connections/{id}", canvas.UpsertConnection)
		mux.HandleFunc("DELETE /api/v1/connections/{id}", canvas.DeleteConnection)
		mux.HandleFunc("GET /api/v1/entities/{id}/comments", canvas.ListComments)
		mux.HandleFunc("POST /api/v1/entities/{id}/comments", canvas.AddComment)
		mux.HandleFunc("GET /api/v1/users/{id}", canvas.GetUser)
		mux.HandleFunc("PUT /api/v1/users/{id}", canvas.UpsertUser)
	}

	mux.HandleFunc("GET /api/v1/sync/config", sync.GetConfig)
	mux.HandleFunc("POST /api/v1/sync/config", sync.Configure)
	mux.HandleFunc("DELETE /api/v1/sync/config", sync.Disable)
	mux.HandleFunc("GET /api/v1/sync/status", sync.Status)
	mux.HandleFunc("GET /api/v1/sync/conflicts", conflicts.List)

	// Запуск синхронизации и разрешение конфликтов обращаются к удаленному API
	mux.Handle("POST /api/v1/sync/push", limiter.Limit(http.HandlerFunc(sync.Push)))
	mux.Handle("POST /api/v1/sync/pull", limiter.Limit(http.HandlerFunc(sync.Pull)))
	mux.Handle("POST /api/v1/sync/conflicts/{id}/resolve", limiter.Limit(http.HandlerFunc(conflicts.Resolve)))
	mux.Handle("POST /api/v1/sync/conflicts/resolve-all", limiter.Limit(http.HandlerFunc(conflicts.ResolveAll)))

	if d.Events != nil {
		mux.Handle("GET /api/v1/sync/events", d.Events)
	}

	var handler http.Handler = mux
	handler = middleware.RequestLogger(d.Logger, "/api/v1/health")(handler)
	handler = middleware.Recover(d.Logger)(handler)
	return handler, limiter
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, shutdownTimeout time.Duration) error {
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.httpServer.Addr, err)
	}
	return s.Serve(ctx, ln, shutdownTimeout)
}

// Serve is Run on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener, shutdownTimeout time.Duration) error {
	defer s.limiter.Stop()

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("HTTP server listening", "addr", ln.Addr().String())
		errCh <- s.httpServer.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server failed: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	s.logger.Info("Shutting down HTTP server")
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}
