package application

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers application-tracker routes
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Route("/applications", func(r chi.Router) {
		r.Post("/", h.CreateApplication)
		r.Post("/import", h.ImportApplication)
		r.Get("/", h.ListApplications)
		r.Get("/{id}", h.GetApplication)
		r.Patch("/{id}", h.UpdateApplication)
		r.Delete("/{id}", h.DeleteApplication)
		r.Get("/{id}/prep-questions", h.PrepQuestions)
	})
}
