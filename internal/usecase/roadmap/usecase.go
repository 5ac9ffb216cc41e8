package roadmap

import (
	"context"
	"fmt"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"github.com/careerforge/careerforge-api/internal/entity"
	"github.com/careerforge/careerforge-api/internal/pkg/validator"
)

// RoadmapUsecase implements career roadmap generation
type RoadmapUsecase struct {
	validator *validator.Validator
	llm       GenerationConnector
}

func NewUsecase(validator *validator.Validator, llm GenerationConnector) *RoadmapUsecase {
	return &RoadmapUsecase{
		validator: validator,
		llm:       llm,
	}
}

// GenerateRoadmap builds a career roadmap. When a job description is
// supplied, company and role are extracted from it in a preliminary call and
// attached by the assembler; the roadmap call itself never fills them in. A
// failed extraction is absorbed: the roadmap is still generated, just
// without the job info.
func (uc *RoadmapUsecase) GenerateRoadmap(ctx context.Context, req *entity.GenerateRoadmapRequest) (*entity.CareerRoadmap, error) {
	if err := uc.validator.ValidateGenerateRoadmap(req); err != nil {
		return nil, err
	}

	var info entity.JobInfo
	if req.JobDescription != "" {
		extracted := uc.llm.ExtractJobInfo(ctx, req.JobDescription)
		if extracted.Failed() {
			ctxzap.Warn(ctx, "job info extraction failed, continuing without it",
				zap.Error(extracted.Err()))
		} else {
			info = extracted.Value()
		}
	}

	result := uc.llm.GenerateRoadmap(ctx, req.CurrentRole, req.Experience,
		req.CareerGoal, req.Timeline, req.JobDescription)
	if result.Failed() {
		return nil, fmt.Errorf("generate roadmap: %w", result.Err())
	}

	roadmap := result.Value()
	ctxzap.Info(ctx, "roadmap generated", zap.Int("steps", len(roadmap.Steps)))

	return &entity.CareerRoadmap{
		Company: info.Company,
		Role:    info.Role,
		Roadmap: roadmap,
	}, nil
}
