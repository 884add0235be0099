// ABOUTME: Read-mostly HTTP JSON API over the trainer repository.
// ABOUTME: Routes are mounted on a chi router; Run serves until the context ends.
package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/harperreed/trainer/internal/ai"
	"github.com/harperreed/trainer/internal/storage"
)

const shutdownTimeout = 5 * time.Second

// Server holds dependencies for HTTP handlers.
type Server struct {
	repo    *storage.Repository
	trainer *ai.Trainer
	apiKey  string
	router  chi.Router
	now     func() time.Time
}

// New creates a Server with all routes configured. trainer may be nil, in
// which case /api/recommendations serves only the cache. A non-empty apiKey
// is required on mutating routes.
func New(repo *storage.Repository, trainer *ai.Trainer, apiKey string) *Server {
	s := &Server{
		repo:    repo,
		trainer: trainer,
		apiKey:  apiKey,
		router:  chi.NewRouter(),
		now:     time.Now,
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(middleware.Recoverer)
	s.router.Use(RequestLogging)
	s.router.Use(CORS)

	s.router.Get("/healthz", s.handleHealth)

	s.router.Route("/api", func(r chi.Router) {
		r.Get("/workouts", s.handleListWorkouts)
		r.Get("/workouts/{id}", s.handleGetWorkout)
		r.With(s.writeGuards()...).Delete("/workouts/{id}", s.handleDeleteWorkout)
		r.Get("/exercises", s.handleListExercises)
		r.Get("/progress", s.handleProgress)
		r.Get("/dashboard", s.handleDashboard)
		r.Get("/stats", s.handleStats)
		r.Get("/recommendations", s.handleRecommendations)
		r.Get("/session", s.handleSession)
	})
}

func (s *Server) writeGuards() []func(http.Handler) http.Handler {
	guards := []func(http.Handler) http.Handler{SameOrigin}
	if s.apiKey != "" {
		guards = append(guards, APIKeyAuth(s.apiKey))
	}
	return guards
}

// Run listens on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", addr).Msg("http api listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
