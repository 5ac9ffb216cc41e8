package resume

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers resume routes
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Route("/resume", func(r chi.Router) {
		r.Post("/generate", h.GenerateResume)
		r.Post("/", h.SaveResume)
		r.Get("/", h.ListResumes)
		r.Get("/{id}", h.GetResume)
		r.Delete("/{id}", h.DeleteResume)
	})
}

func pagination(r *http.Request) (skip, limit int) {
	skip, _ = strconv.Atoi(r.URL.Query().Get("skip"))
	limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return skip, limit
}
