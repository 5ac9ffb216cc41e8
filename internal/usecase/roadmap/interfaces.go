package roadmap

import (
	"context"

	"github.com/careerforge/careerforge-api/internal/entity"
	"github.com/careerforge/careerforge-api/internal/generation"
)

type GenerationConnector interface {
	ExtractJobInfo(ctx context.Context, jobDescription string) generation.Result[entity.JobInfo]
	GenerateRoadmap(ctx context.Context, currentRole, experience, careerGoal, timeline, jobDescription string) generation.Result[entity.Roadmap]
}
