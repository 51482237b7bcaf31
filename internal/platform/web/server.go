package web

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/tui-mines/internal/config"
)

// ServerConfig holds configuration for the HTTP server.
type ServerConfig struct {
	// Address is the host:port to listen on (e.g., ":8080").
	Address string
	// AllowedOrigins lists CORS origins; empty allows any.
	AllowedOrigins []string
	Hub            HubConfig
	Presets        config.Presets
}

// DefaultServerConfig returns a config with sensible defaults.
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Address: ":8080",
		Hub:     DefaultHubConfig(),
		Presets: config.DefaultPresets(),
	}
}

// Server exposes the hub over HTTP.
type Server struct {
	config   ServerConfig
	hub      *Hub
	presets  config.Presets
	upgrader websocket.Upgrader
	logger   *log.Logger
	handler  http.Handler
}

// NewServer creates a server with its own hub.
func NewServer(cfg ServerConfig, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "mines-http",
		})
	}

	s := &Server{
		config:  cfg,
		hub:     NewHub(cfg.Hub, logger),
		presets: cfg.Presets,
		logger:  logger,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
	s.handler = Wrap(s.routes(), CORS(cfg.AllowedOrigins...), Logging(logger))
	return s
}

func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /presets", s.handlePresets)
	mux.HandleFunc("POST /sessions", s.handleCreate)
	mux.HandleFunc("GET /sessions/{id}", s.handleGet)
	mux.HandleFunc("DELETE /sessions/{id}", s.handleDelete)
	mux.HandleFunc("POST /sessions/{id}/reveal", s.handleCell((*Hub).Reveal))
	mux.HandleFunc("POST /sessions/{id}/flag", s.handleCell((*Hub).Flag))
	mux.HandleFunc("POST /sessions/{id}/restart", s.handleRestart)
	mux.HandleFunc("GET /sessions/{id}/ws", s.handleWS)
	return mux
}

// Handler returns the routes wrapped in middleware.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Hub returns the session hub.
func (s *Server) Hub() *Hub {
	return s.hub
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.config.Address,
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.logger.Info("starting HTTP server", "address", s.config.Address)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		return s.hub.RunJanitor(ctx)
	})
	g.Go(func() error {
		<-ctx.Done()
		s.logger.Info("shutting down HTTP server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
