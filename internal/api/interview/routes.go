package interview

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers interview routes
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Route("/interview", func(r chi.Router) {
		r.Post("/role-questions", h.RoleQuestions)
		r.Post("/prep-questions", h.PrepQuestions)
		r.Post("/feedback", h.Feedback)

		r.Route("/sessions", func(r chi.Router) {
			r.Post("/", h.StartSession)
			r.Get("/{id}", h.GetSession)
			r.Post("/{id}/answers", h.SubmitAnswer)
			r.Post("/{id}/complete", h.CompleteSession)
		})
	})
}
