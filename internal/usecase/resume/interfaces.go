package resume

import (
	"context"

	"github.com/careerforge/careerforge-api/internal/entity"
	"github.com/careerforge/careerforge-api/internal/generation"
)

type GenerationConnector interface {
	PlanResumeSections(ctx context.Context, jobDescription string) generation.Result[[]generation.SectionTask]
	GenerateWorkSection(ctx context.Context, jobDescription string, current []entity.WorkEntry) generation.Result[[]entity.WorkEntry]
	GenerateEducationSection(ctx context.Context, jobDescription string, current []entity.EducationEntry) generation.Result[[]entity.EducationEntry]
	GenerateSkillsSection(ctx context.Context, jobDescription string, current []entity.SkillGroup) generation.Result[[]entity.SkillGroup]
	GenerateProjectsSection(ctx context.Context, jobDescription string, current []entity.ProjectEntry) generation.Result[[]entity.ProjectEntry]
	GenerateCertificatesSection(ctx context.Context, jobDescription string, current []entity.CertificateEntry) generation.Result[[]entity.CertificateEntry]
}
