package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	applicationapi "github.com/careerforge/careerforge-api/internal/api/application"
	"github.com/careerforge/careerforge-api/internal/api/docs"
	interviewapi "github.com/careerforge/careerforge-api/internal/api/interview"
	"github.com/careerforge/careerforge-api/internal/api/middleware"
	resumeapi "github.com/careerforge/careerforge-api/internal/api/resume"
	roadmapapi "github.com/careerforge/careerforge-api/internal/api/roadmap"
)

// Handlers groups the per-domain handlers wired by the builder.
type Handlers struct {
	Resume      *resumeapi.Handler
	Interview   *interviewapi.Handler
	Roadmap     *roadmapapi.Handler
	Application *applicationapi.Handler
}

// SetupRouter creates and configures the HTTP router
func SetupRouter(h Handlers, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS)
	// Generation calls can take a while; the ceiling is generous on purpose.
	r.Use(chimiddleware.Timeout(180 * time.Second))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})

	docs.RegisterRoutes(r)

	resumeapi.RegisterRoutes(r, h.Resume)
	interviewapi.RegisterRoutes(r, h.Interview)
	roadmapapi.RegisterRoutes(r, h.Roadmap)
	applicationapi.RegisterRoutes(r, h.Application)

	return r
}
