package roadmap

import (
	"encoding/json"
	"net/http"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"github.com/careerforge/careerforge-api/internal/api/respond"
	"github.com/careerforge/careerforge-api/internal/entity"
	"github.com/careerforge/careerforge-api/internal/pkg/logger"
)

type Handler struct {
	usecase RoadmapUsecase
}

func NewHandler(usecase RoadmapUsecase) *Handler {
	return &Handler{usecase: usecase}
}

// GenerateRoadmap handles POST /roadmap - build a career roadmap
func (h *Handler) GenerateRoadmap(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "GenerateRoadmap")

	var req entity.GenerateRoadmapRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(ctx, w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	roadmap, err := h.usecase.GenerateRoadmap(ctx, &req)
	if err != nil {
		respond.UsecaseError(ctx, w, err)
		return
	}

	ctxzap.Info(ctx, "roadmap delivered", zap.Int("steps", len(roadmap.Roadmap.Steps)))

	respond.JSON(w, http.StatusOK, entity.RoadmapResponse{
		Success: true,
		Roadmap: *roadmap,
	})
}
