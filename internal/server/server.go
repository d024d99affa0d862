package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/careercompass/compass/internal/app"
	"github.com/careercompass/compass/internal/common"
	"github.com/careercompass/compass/internal/interfaces"
)

// Server wraps the HTTP server and the advisor pipeline.
type Server struct {
	config           *common.Config
	advisor          interfaces.AdvisorService
	logger           *common.Logger
	geminiConfigured bool
	server           *http.Server
}

// NewServer creates a new HTTP REST API server.
func NewServer(a *app.App) *Server {
	s := &Server{
		config:           a.Config,
		advisor:          a.Advisor,
		logger:           a.Logger,
		geminiConfigured: a.ReasoningClient != nil,
	}

	mux := http.NewServeMux()
	s.registerRoutes(mux)

	handler := applyMiddleware(mux, a.Logger)

	host := a.Config.Server.Host
	port := a.Config.Server.Port

	s.server = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", host, port),
		Handler:      handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Handler returns the HTTP handler for testing.
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

// Start starts the HTTP server (blocking).
func (s *Server) Start() error {
	s.logger.Info().
		Str("addr", s.server.Addr).
		Msg("Starting REST API server")
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
