package roadmap

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers roadmap routes
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Post("/roadmap", h.GenerateRoadmap)
}
