package interview

import (
	"context"

	"github.com/careerforge/careerforge-api/internal/entity"
	"github.com/careerforge/careerforge-api/internal/generation"
)

type GenerationConnector interface {
	GenerateRoleQuestions(ctx context.Context, role, difficulty string) generation.Result[[]entity.InterviewQuestion]
	GeneratePrepQuestions(ctx context.Context, jobDescription string) generation.Result[[]entity.PrepCategory]
	GenerateFeedback(ctx context.Context, review entity.AnswerReview) generation.Result[string]
	ExtractJobInfo(ctx context.Context, jobDescription string) generation.Result[entity.JobInfo]
}
