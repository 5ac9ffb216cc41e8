package application

import (
	"context"

	"github.com/careerforge/careerforge-api/internal/entity"
	"github.com/careerforge/careerforge-api/internal/generation"
)

type JobPostConnector interface {
	FetchPosting(ctx context.Context, url string) (string, error)
}

type GenerationConnector interface {
	ExtractJobInfo(ctx context.Context, jobDescription string) generation.Result[entity.JobInfo]
	GeneratePrepQuestions(ctx context.Context, jobDescription string) generation.Result[[]entity.PrepCategory]
}
