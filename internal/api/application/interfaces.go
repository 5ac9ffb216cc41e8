package application

import (
	"context"

	"github.com/careerforge/careerforge-api/internal/entity"
)

type ApplicationUsecase interface {
	CreateApplication(ctx context.Context, req *entity.CreateApplicationRequest) (*entity.Application, error)
	ImportApplication(ctx context.Context, req *entity.ImportApplicationRequest) (*entity.Application, error)
	GetApplication(ctx context.Context, id string) (*entity.Application, error)
	ListApplications(ctx context.Context, status entity.ApplicationStatus, skip, limit int) ([]*entity.Application, error)
	UpdateApplication(ctx context.Context, id string, req *entity.UpdateApplicationRequest) (*entity.Application, error)
	DeleteApplication(ctx context.Context, id string) error
	PrepQuestions(ctx context.Context, id string) ([]entity.AssembledPrepCategory, error)
}
