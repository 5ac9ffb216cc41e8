package resume

import (
	"context"

	"github.com/careerforge/careerforge-api/internal/entity"
)

type ResumeUsecase interface {
	GenerateResume(ctx context.Context, req *entity.GenerateResumeRequest) (*entity.GeneratedResume, error)
	SaveResume(ctx context.Context, req *entity.SaveResumeRequest) (*entity.ResumeDocument, error)
	GetResume(ctx context.Context, id string) (*entity.ResumeDocument, error)
	ListResumes(ctx context.Context, skip, limit int) ([]*entity.ResumeDocument, error)
	DeleteResume(ctx context.Context, id string) error
}
