package resume

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"github.com/careerforge/careerforge-api/internal/api/respond"
	"github.com/careerforge/careerforge-api/internal/entity"
	"github.com/careerforge/careerforge-api/internal/pkg/logger"
)

type Handler struct {
	usecase ResumeUsecase
}

func NewHandler(usecase ResumeUsecase) *Handler {
	return &Handler{usecase: usecase}
}

// GenerateResume handles POST /resume/generate - tailor a resume to a job description
func (h *Handler) GenerateResume(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "GenerateResume")

	var req entity.GenerateResumeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(ctx, w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	result, err := h.usecase.GenerateResume(ctx, &req)
	if err != nil {
		respond.UsecaseError(ctx, w, err)
		return
	}

	ctxzap.Info(ctx, "resume generated",
		zap.Int("failed_sections", len(result.FailedSections)))

	respond.JSON(w, http.StatusOK, entity.GenerateResumeResponse{
		Success:        true,
		Resume:         result.Resume,
		FailedSections: result.FailedSections,
	})
}

// SaveResume handles POST /resume - save a resume under a title
func (h *Handler) SaveResume(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "SaveResume")

	var req entity.SaveResumeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(ctx, w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	doc, err := h.usecase.SaveResume(ctx, &req)
	if err != nil {
		respond.UsecaseError(ctx, w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, doc)
}

// GetResume handles GET /resume/{id}
func (h *Handler) GetResume(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "GetResume")

	doc, err := h.usecase.GetResume(ctx, chi.URLParam(r, "id"))
	if err != nil {
		respond.UsecaseError(ctx, w, err)
		return
	}

	respond.JSON(w, http.StatusOK, doc)
}

// ListResumes handles GET /resume
func (h *Handler) ListResumes(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "ListResumes")
	skip, limit := pagination(r)

	docs, err := h.usecase.ListResumes(ctx, skip, limit)
	if err != nil {
		respond.UsecaseError(ctx, w, err)
		return
	}

	respond.JSON(w, http.StatusOK, docs)
}

// DeleteResume handles DELETE /resume/{id}
func (h *Handler) DeleteResume(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "DeleteResume")

	if err := h.usecase.DeleteResume(ctx, chi.URLParam(r, "id")); err != nil {
		respond.UsecaseError(ctx, w, err)
		return
	}

	respond.JSON(w, http.StatusOK, map[string]bool{"success": true})
}
