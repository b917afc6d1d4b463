// Package server exposes the themed palette service over HTTP.
package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"palette-api/internal/themes"
	"palette-api/internal/ui"
)

// ThemeService is the part of themes.Service the HTTP layer needs.
type ThemeService interface {
	Generate(ctx context.Context, theme, clientID string) (themes.Result, error)
}

// Options configures the HTTP surface.
type Options struct {
	Addr       string
	CORSOrigin string
	TrustXFF   bool
}

// Server serves the palette API.
type Server struct {
	opts    Options
	themes  ThemeService
	handler http.Handler
	now     func() time.Time

	httpServer *http.Server
}

// NewServer builds the router and middleware chain around svc.
func NewServer(opts Options, svc ThemeService) *Server {
	s := &Server{
		opts:   opts,
		themes: svc,
		now:    time.Now,
	}

	mux := http.NewServeMux()
	mux.Handle("POST /api/generate-theme-palette", instrument("generate-theme-palette", http.HandlerFunc(s.handleThemePalette)))
	mux.Handle("GET /api/health", instrument("health", http.HandlerFunc(s.handleHealth)))

	s.handler = withRequestID(withAccessLog(opts.TrustXFF, withCORS(opts.CORSOrigin, mux)))
	return s
}

// Handler returns the full middleware chain, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Start listens on the configured address and serves until ctx is done.
func (s *Server) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.opts.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.opts.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is done, then drains in-flight
// requests.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	s.httpServer = &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		// model calls may take up to their own timeout
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	ui.LogStatus("success", "API listening on "+ln.Addr().String())

	done := make(chan struct{})
	go func() {
		defer close(done)
		s.watchShutdown(ctx)
	}()

	if err := s.httpServer.Serve(ln); err != nil && err != http.ErrServerClosed {
		return err
	}
	<-done
	return nil
}

// watchShutdown monitors context for cancellation
func (s *Server) watchShutdown(ctx context.Context) {
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		ui.LogStatus("warning", "API shutdown: "+err.Error())
	}
}
