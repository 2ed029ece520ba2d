// Package rest serves the FoodHub HTTP API of the dev backend.
package rest

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/dmitrijs2005/foodhub/internal/logging"
	"github.com/go-chi/chi/v5"
)

// UserService is what the handlers need from the users package.
type UserService interface {
	SignUp(ctx context.Context, name, email, password string) (string, error)
	SignIn(ctx context.Context, email, password string) (string, error)
	OAuth(ctx context.Context, provider, providerToken string) (string, error)
}

type HTTPServer struct {
	address string
	users   UserService
	menu    []string
	logger  logging.Logger
}

func NewHTTPServer(addr string, l logging.Logger, us UserService, menu []string) *HTTPServer {
	return &HTTPServer{
		address: addr,
		logger:  l.With("module", "http_server"),
		users:   us,
		menu:    menu,
	}
}

// Handler returns the routed API with its middleware chain.
func (s *HTTPServer) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(requestIDMiddleware, s.recoveryMiddleware, s.loggingMiddleware)

	r.Get("/food", s.Food)
	r.Route("/auth", func(r chi.Router) {
		r.Post("/signup", s.SignUp)
		r.Post("/login", s.SignIn)
		r.Post("/oauth", s.OAuth)
	})

	return r
}

// Run listens on the configured address and serves until ctx ends, then
// shuts down gracefully.
func (s *HTTPServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

func (s *HTTPServer) Serve(ctx context.Context, listen net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", listen.Addr().String())

	if err := srv.Serve(listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	<-done
	return nil
}
