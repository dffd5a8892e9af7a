// Package server serves a built deck for live preview.
package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dgallion1/orgdeck/internal/pipeline"
)

// Server is the preview HTTP server.
type Server struct {
	router   chi.Router
	pipeline *pipeline.Pipeline
	log      *slog.Logger
}

// New creates and configures the HTTP server. Static files are served from
// the pipeline's output directory.
func New(p *pipeline.Pipeline, log *slog.Logger) *Server {
	s := &Server{
		pipeline: p,
		log:      log,
	}
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

	r.Route("/api", func(r chi.Router) {
		r.Get("/deck", s.handleDeck)
		r.Get("/builds", s.handleBuilds)
		r.Get("/builds/{buildID}", s.handleBuild)
		r.Post("/rebuild", s.handleRebuild)
	})

	r.Handle("/*", http.FileServer(http.Dir(s.pipeline.Config().Output)))

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
