package application

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/careerforge/careerforge-api/internal/api/respond"
	"github.com/careerforge/careerforge-api/internal/entity"
	"github.com/careerforge/careerforge-api/internal/pkg/logger"
)

type Handler struct {
	usecase ApplicationUsecase
}

func NewHandler(usecase ApplicationUsecase) *Handler {
	return &Handler{usecase: usecase}
}

// CreateApplication handles POST /applications
func (h *Handler) CreateApplication(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "CreateApplication")

	var req entity.CreateApplicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(ctx, w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	app, err := h.usecase.CreateApplication(ctx, &req)
	if err != nil {
		respond.UsecaseError(ctx, w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, app)
}

// ImportApplication handles POST /applications/import - create from a posting URL
func (h *Handler) ImportApplication(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "ImportApplication")

	var req entity.ImportApplicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(ctx, w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	app, err := h.usecase.ImportApplication(ctx, &req)
	if err != nil {
		respond.UsecaseError(ctx, w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, app)
}

// ListApplications handles GET /applications
func (h *Handler) ListApplications(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "ListApplications")

	status := entity.ApplicationStatus(r.URL.Query().Get("status"))
	skip, _ := strconv.Atoi(r.URL.Query().Get("skip"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	apps, err := h.usecase.ListApplications(ctx, status, skip, limit)
	if err != nil {
		respond.UsecaseError(ctx, w, err)
		return
	}

	respond.JSON(w, http.StatusOK, apps)
}

// GetApplication handles GET /applications/{id}
func (h *Handler) GetApplication(w http.ResponseWriter, r *http.Request) {
	ctx := logger.AddFields(r.Context(),
		zap.String("application_id", chi.URLParam(r, "id")),
		zap.String("action", "GetApplication"),
	)

	app, err := h.usecase.GetApplication(ctx, chi.URLParam(r, "id"))
	if err != nil {
		respond.UsecaseError(ctx, w, err)
		return
	}

	respond.JSON(w, http.StatusOK, app)
}

// UpdateApplication handles PATCH /applications/{id}
func (h *Handler) UpdateApplication(w http.ResponseWriter, r *http.Request) {
	appID := chi.URLParam(r, "id")
	ctx := logger.AddFields(r.Context(),
		zap.String("application_id", appID),
		zap.String("action", "UpdateApplication"),
	)

	var req entity.UpdateApplicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(ctx, w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	app, err := h.usecase.UpdateApplication(ctx, appID, &req)
	if err != nil {
		respond.UsecaseError(ctx, w, err)
		return
	}

	respond.JSON(w, http.StatusOK, app)
}

// DeleteApplication handles DELETE /applications/{id}
func (h *Handler) DeleteApplication(w http.ResponseWriter, r *http.Request) {
	ctx := logger.AddFields(r.Context(),
		zap.String("application_id", chi.URLParam(r, "id")),
		zap.String("action", "DeleteApplication"),
	)

	if err := h.usecase.DeleteApplication(ctx, chi.URLParam(r, "id")); err != nil {
		respond.UsecaseError(ctx, w, err)
		return
	}

	respond.JSON(w, http.StatusOK, map[string]bool{"success": true})
}

// PrepQuestions handles GET /applications/{id}/prep-questions
func (h *Handler) PrepQuestions(w http.ResponseWriter, r *http.Request) {
	appID := chi.URLParam(r, "id")
	ctx := logger.AddFields(r.Context(),
		zap.String("application_id", appID),
		zap.String("action", "ApplicationPrepQuestions"),
	)

	categories, err := h.usecase.PrepQuestions(ctx, appID)
	if err != nil {
		respond.UsecaseError(ctx, w, err)
		return
	}

	respond.JSON(w, http.StatusOK, map[string]any{
		"success":    true,
		"categories": categories,
	})
}
