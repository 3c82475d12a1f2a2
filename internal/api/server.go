package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/srw3804/daily-birthdays/internal/config"
	"github.com/srw3804/daily-birthdays/internal/wiki"
)

// Server exposes published fragments and on-demand extraction over HTTP.
type Server struct {
	router chi.Router
	client *wiki.Client
	log    *slog.Logger
	cfg    config.Config
}

// NewServer creates and configures the HTTP server.
func NewServer(client *wiki.Client, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{client: client, log: log, cfg: cfg}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	r.Get("/health", s.handleHealth)
	r.Get("/birthdays/{page}", s.handlePage)
	r.Get("/api/birthdays/{month}/{day}", s.handleGenerate)

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
