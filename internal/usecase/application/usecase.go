package application

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"github.com/careerforge/careerforge-api/internal/entity"
	"github.com/careerforge/careerforge-api/internal/pkg/validator"
	"github.com/careerforge/careerforge-api/internal/repository"
)

// ApplicationUsecase implements job-application tracking
type ApplicationUsecase struct {
	appRepo   repository.ApplicationRepository
	validator *validator.Validator
	jobPosts  JobPostConnector
	llm       GenerationConnector
}

func NewUsecase(
	appRepo repository.ApplicationRepository,
	validator *validator.Validator,
	jobPosts JobPostConnector,
	llm GenerationConnector,
) *ApplicationUsecase {
	return &ApplicationUsecase{
		appRepo:   appRepo,
		validator: validator,
		jobPosts:  jobPosts,
		llm:       llm,
	}
}

func (uc *ApplicationUsecase) CreateApplication(ctx context.Context, req *entity.CreateApplicationRequest) (*entity.Application, error) {
	if err := uc.validator.ValidateCreateApplication(req); err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = entity.StatusWishlist
	}

	app := entity.Application{
		ID:             uuid.New().String(),
		Company:        req.Company,
		Role:           req.Role,
		URL:            req.URL,
		JobDescription: req.JobDescription,
		Notes:          req.Notes,
		Status:         status,
	}
	if status == entity.StatusApplied {
		now := time.Now().UTC()
		app.AppliedAt = &now
	}

	created, err := uc.appRepo.Create(ctx, app)
	if err != nil {
		return nil, fmt.Errorf("create application: %w", err)
	}

	ctxzap.Info(ctx, "application created",
		zap.String("application_id", created.ID),
		zap.String("company", created.Company),
	)
	return created, nil
}

// ImportApplication creates an application from a job posting URL: the
// posting is fetched and reduced to text, company and role are extracted
// from it, and the text is stored as the application's job description.
func (uc *ApplicationUsecase) ImportApplication(ctx context.Context, req *entity.ImportApplicationRequest) (*entity.Application, error) {
	if err := uc.validator.ValidateImportApplication(req); err != nil {
		return nil, err
	}

	posting, err := uc.jobPosts.FetchPosting(ctx, req.URL)
	if err != nil {
		return nil, fmt.Errorf("fetch job posting: %w", err)
	}

	info := uc.llm.ExtractJobInfo(ctx, posting)
	if info.Failed() {
		return nil, fmt.Errorf("extract job info: %w", info.Err())
	}

	company := info.Value().Company
	role := info.Value().Role
	if company == "" {
		company = "Unknown company"
	}
	if role == "" {
		role = "Unknown role"
	}

	app := entity.Application{
		ID:             uuid.New().String(),
		Company:        company,
		Role:           role,
		URL:            req.URL,
		JobDescription: posting,
		Status:         entity.StatusWishlist,
	}

	created, err := uc.appRepo.Create(ctx, app)
	if err != nil {
		return nil, fmt.Errorf("create imported application: %w", err)
	}

	ctxzap.Info(ctx, "application imported",
		zap.String("application_id", created.ID),
		zap.String("url", req.URL),
	)
	return created, nil
}

func (uc *ApplicationUsecase) GetApplication(ctx context.Context, id string) (*entity.Application, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("%w: invalid application ID format", entity.ErrInvalidParameter)
	}
	return uc.appRepo.Get(ctx, id)
}

func (uc *ApplicationUsecase) ListApplications(ctx context.Context, status entity.ApplicationStatus, skip, limit int) ([]*entity.Application, error) {
	if status != "" && !status.IsValid() {
		return nil, fmt.Errorf("%w: unknown status %q", entity.ErrInvalidStatus, status)
	}
	apps, err := uc.appRepo.List(ctx, status, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	return apps, nil
}

// UpdateApplication applies a partial update: only the fields present in the
// request change. Moving to the applied status stamps appliedAt once.
func (uc *ApplicationUsecase) UpdateApplication(ctx context.Context, id string, req *entity.UpdateApplicationRequest) (*entity.Application, error) {
	if err := uc.validator.ValidateUpdateApplication(req); err != nil {
		return nil, err
	}
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("%w: invalid application ID format", entity.ErrInvalidParameter)
	}

	app, err := uc.appRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Status != nil {
		if *req.Status == entity.StatusApplied && app.Status != entity.StatusApplied && app.AppliedAt == nil {
			now := time.Now().UTC()
			app.AppliedAt = &now
		}
		app.Status = *req.Status
	}
	if req.Notes != nil {
		app.Notes = *req.Notes
	}

	updated, err := uc.appRepo.Update(ctx, *app)
	if err != nil {
		return nil, fmt.Errorf("update application: %w", err)
	}

	ctxzap.Info(ctx, "application updated",
		zap.String("application_id", updated.ID),
		zap.String("status", string(updated.Status)),
	)
	return updated, nil
}

func (uc *ApplicationUsecase) DeleteApplication(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: invalid application ID format", entity.ErrInvalidParameter)
	}
	if err := uc.appRepo.Delete(ctx, id); err != nil {
		return err
	}
	ctxzap.Info(ctx, "application deleted", zap.String("application_id", id))
	return nil
}

// PrepQuestions generates interview prep questions from a tracked
// application's stored job description. Questions come back in the same
// assembled shape as /interview/prep-questions, answer slots included.
func (uc *ApplicationUsecase) PrepQuestions(ctx context.Context, id string) ([]entity.AssembledPrepCategory, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("%w: invalid application ID format", entity.ErrInvalidParameter)
	}

	app, err := uc.appRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if app.JobDescription == "" {
		return nil, fmt.Errorf("%w: application has no job description", entity.ErrMissingField)
	}

	result := uc.llm.GeneratePrepQuestions(ctx, app.JobDescription)
	if result.Failed() {
		return nil, fmt.Errorf("generate prep questions: %w", result.Err())
	}
	return entity.AssemblePrepCategories(result.Value()), nil
}
