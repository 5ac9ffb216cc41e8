package roadmap

import (
	"context"

	"github.com/careerforge/careerforge-api/internal/entity"
)

type RoadmapUsecase interface {
	GenerateRoadmap(ctx context.Context, req *entity.GenerateRoadmapRequest) (*entity.CareerRoadmap, error)
}
