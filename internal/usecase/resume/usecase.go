package resume

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"github.com/careerforge/careerforge-api/internal/entity"
	"github.com/careerforge/careerforge-api/internal/generation"
	"github.com/careerforge/careerforge-api/internal/pkg/validator"
	"github.com/careerforge/careerforge-api/internal/repository"
)

// ResumeUsecase implements resume tailoring and saved-resume management
type ResumeUsecase struct {
	resumeRepo repository.ResumeRepository
	validator  *validator.Validator
	llm        GenerationConnector
}

func NewUsecase(
	resumeRepo repository.ResumeRepository,
	validator *validator.Validator,
	llm GenerationConnector,
) *ResumeUsecase {
	return &ResumeUsecase{
		resumeRepo: resumeRepo,
		validator:  validator,
		llm:        llm,
	}
}

// sectionPatch applies one generated section to the assembled resume.
type sectionPatch func(*entity.Resume)

// GenerateResume runs the full tailoring pipeline: a planning call decides
// which sections to generate, each section is generated independently, and
// the assembled document carries the caller's basics untouched. A failed
// plan fails the whole request; a failed section only omits that section.
func (uc *ResumeUsecase) GenerateResume(ctx context.Context, req *entity.GenerateResumeRequest) (*entity.GeneratedResume, error) {
	if err := uc.validator.ValidateGenerateResume(req); err != nil {
		return nil, err
	}

	planResult := uc.llm.PlanResumeSections(ctx, req.JobDescription)
	if planResult.Failed() {
		return nil, fmt.Errorf("plan resume sections: %w", planResult.Err())
	}
	plan := planResult.Value()

	ctxzap.Info(ctx, "resume plan ready", zap.Int("sections", len(plan)))

	sections, failures := generation.AssembleSections(ctx, plan,
		func(ctx context.Context, task generation.SectionTask) generation.Result[sectionPatch] {
			return uc.generateSection(ctx, task.Section, req)
		})

	// Basics always come from the caller's profile, never from generation.
	assembled := entity.Resume{Basics: req.Profile.Basics}
	for _, section := range sections {
		section.Value(&assembled)
	}

	failed := make([]string, 0, len(failures))
	for _, failure := range failures {
		failed = append(failed, failure.Name)
	}

	ctxzap.Info(ctx, "resume assembled",
		zap.Int("generated_sections", len(sections)),
		zap.Int("failed_sections", len(failed)),
	)

	return &entity.GeneratedResume{Resume: assembled, FailedSections: failed}, nil
}

func (uc *ResumeUsecase) generateSection(ctx context.Context, section string, req *entity.GenerateResumeRequest) generation.Result[sectionPatch] {
	jd := req.JobDescription

	switch section {
	case entity.SectionWork:
		result := uc.llm.GenerateWorkSection(ctx, jd, req.Profile.Work)
		if result.Failed() {
			return generation.FailFrom[sectionPatch](result.Err())
		}
		value := result.Value()
		return generation.Ok(sectionPatch(func(r *entity.Resume) { r.Work = value }))
	case entity.SectionEducation:
		result := uc.llm.GenerateEducationSection(ctx, jd, req.Profile.Education)
		if result.Failed() {
			return generation.FailFrom[sectionPatch](result.Err())
		}
		value := result.Value()
		return generation.Ok(sectionPatch(func(r *entity.Resume) { r.Education = value }))
	case entity.SectionSkills:
		result := uc.llm.GenerateSkillsSection(ctx, jd, req.Profile.Skills)
		if result.Failed() {
			return generation.FailFrom[sectionPatch](result.Err())
		}
		value := result.Value()
		return generation.Ok(sectionPatch(func(r *entity.Resume) { r.Skills = value }))
	case entity.SectionProjects:
		result := uc.llm.GenerateProjectsSection(ctx, jd, req.Profile.Projects)
		if result.Failed() {
			return generation.FailFrom[sectionPatch](result.Err())
		}
		value := result.Value()
		return generation.Ok(sectionPatch(func(r *entity.Resume) { r.Projects = value }))
	case entity.SectionCertificates:
		result := uc.llm.GenerateCertificatesSection(ctx, jd, req.Profile.Certificates)
		if result.Failed() {
			return generation.FailFrom[sectionPatch](result.Err())
		}
		value := result.Value()
		return generation.Ok(sectionPatch(func(r *entity.Resume) { r.Certificates = value }))
	default:
		return generation.Fail[sectionPatch](generation.FailureSchema,
			fmt.Errorf("no generator for section %q", section))
	}
}

// SaveResume persists a resume under a caller-chosen title.
func (uc *ResumeUsecase) SaveResume(ctx context.Context, req *entity.SaveResumeRequest) (*entity.ResumeDocument, error) {
	if err := uc.validator.ValidateSaveResume(req); err != nil {
		return nil, err
	}

	doc := entity.ResumeDocument{
		ID:     uuid.New().String(),
		Title:  req.Title,
		Resume: req.Resume,
	}

	saved, err := uc.resumeRepo.Save(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("save resume: %w", err)
	}

	ctxzap.Info(ctx, "resume saved", zap.String("resume_id", saved.ID))
	return saved, nil
}

func (uc *ResumeUsecase) GetResume(ctx context.Context, id string) (*entity.ResumeDocument, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("%w: invalid resume ID format", entity.ErrInvalidParameter)
	}
	return uc.resumeRepo.Get(ctx, id)
}

func (uc *ResumeUsecase) ListResumes(ctx context.Context, skip, limit int) ([]*entity.ResumeDocument, error) {
	docs, err := uc.resumeRepo.List(ctx, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("list resumes: %w", err)
	}
	return docs, nil
}

func (uc *ResumeUsecase) DeleteResume(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: invalid resume ID format", entity.ErrInvalidParameter)
	}
	if err := uc.resumeRepo.Delete(ctx, id); err != nil {
		return err
	}
	ctxzap.Info(ctx, "resume deleted", zap.String("resume_id", id))
	return nil
}
