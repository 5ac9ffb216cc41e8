package interview

import (
	"context"

	"github.com/careerforge/careerforge-api/internal/entity"
)

type InterviewUsecase interface {
	GenerateRoleQuestions(ctx context.Context, req *entity.RoleQuestionsRequest) ([]entity.InterviewQuestion, error)
	GeneratePrepQuestions(ctx context.Context, req *entity.PrepQuestionsRequest) ([]entity.AssembledPrepCategory, error)
	GenerateFeedback(ctx context.Context, req *entity.FeedbackRequest) ([]entity.AnswerFeedback, error)
	StartSession(ctx context.Context, req *entity.StartSessionRequest) (*entity.InterviewSession, error)
	GetSession(ctx context.Context, id string) (*entity.InterviewSession, error)
	SubmitAnswer(ctx context.Context, id string, req *entity.SubmitSessionAnswerRequest) (*entity.InterviewSession, error)
	CompleteSession(ctx context.Context, id string) (*entity.InterviewSession, error)
}
