package roadmap

import (
	"context"
	"errors"
	"testing"

	"github.com/careerforge/careerforge-api/internal/entity"
	"github.com/careerforge/careerforge-api/internal/generation"
	"github.com/careerforge/careerforge-api/internal/pkg/validator"
)

type fakeConnector struct {
	infoCalls    int
	roadmapCalls int
	info         generation.Result[entity.JobInfo]
	roadmap      generation.Result[entity.Roadmap]
}

func (f *fakeConnector) ExtractJobInfo(ctx context.Context, jd string) generation.Result[entity.JobInfo] {
	f.infoCalls++
	return f.info
}

func (f *fakeConnector) GenerateRoadmap(ctx context.Context, currentRole, experience, careerGoal, timeline, jd string) generation.Result[entity.Roadmap] {
	f.roadmapCalls++
	return f.roadmap
}

func validRoadmap() entity.Roadmap {
	return entity.Roadmap{
		Title:         "Path to Senior",
		Start:         "Mid-level Engineer",
		Goal:          "Senior Engineer",
		EstimatedTime: "12 months",
		Steps:         []entity.RoadmapStep{{Title: "Step 1", Summary: "Do the work", EstimatedTime: "6 months"}},
	}
}

func TestGenerateRoadmapValidatesInputFirst(t *testing.T) {
	fake := &fakeConnector{}
	uc := NewUsecase(validator.New(), fake)

	_, err := uc.GenerateRoadmap(context.Background(), &entity.GenerateRoadmapRequest{})
	if err == nil {
		t.Fatal("expected validation error")
	}
	var fieldErrs entity.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		t.Fatalf("expected ValidationErrors, got %T", err)
	}
	if fake.infoCalls+fake.roadmapCalls != 0 {
		t.Error("connector called before validation passed")
	}
}

func TestGenerateRoadmapSkipsExtractionWithoutJobDescription(t *testing.T) {
	fake := &fakeConnector{roadmap: generation.Ok(validRoadmap())}
	uc := NewUsecase(validator.New(), fake)

	result, err := uc.GenerateRoadmap(context.Background(), &entity.GenerateRoadmapRequest{
		CurrentRole: "Dev", Experience: "3 years", CareerGoal: "Senior Dev",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fake.infoCalls != 0 {
		t.Errorf("extraction called %d times without a job description, want 0", fake.infoCalls)
	}
	if result.Company != "" || result.Role != "" {
		t.Errorf("job info should be empty, got %q/%q", result.Company, result.Role)
	}
}

func TestGenerateRoadmapAttachesExtractedJobInfo(t *testing.T) {
	fake := &fakeConnector{
		info:    generation.Ok(entity.JobInfo{Company: "Acme", Role: "Staff Engineer"}),
		roadmap: generation.Ok(validRoadmap()),
	}
	uc := NewUsecase(validator.New(), fake)

	result, err := uc.GenerateRoadmap(context.Background(), &entity.GenerateRoadmapRequest{
		CurrentRole: "Dev", Experience: "3 years", CareerGoal: "Staff",
		JobDescription: "Acme hires a staff engineer",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Company != "Acme" || result.Role != "Staff Engineer" {
		t.Errorf("job info not attached: %q/%q", result.Company, result.Role)
	}
}

func TestGenerateRoadmapAbsorbsExtractionFailure(t *testing.T) {
	fake := &fakeConnector{
		info:    generation.Fail[entity.JobInfo](generation.FailureSchema, errors.New("not JSON")),
		roadmap: generation.Ok(validRoadmap()),
	}
	uc := NewUsecase(validator.New(), fake)

	result, err := uc.GenerateRoadmap(context.Background(), &entity.GenerateRoadmapRequest{
		CurrentRole: "Dev", Experience: "3 years", CareerGoal: "Staff",
		JobDescription: "jd",
	})
	if err != nil {
		t.Fatalf("extraction failure must not fail the request: %v", err)
	}
	if result.Company != "" {
		t.Errorf("company should be empty after failed extraction, got %q", result.Company)
	}
	if result.Roadmap.Title == "" {
		t.Error("roadmap missing")
	}
}

func TestGenerateRoadmapFailsWhenGenerationFails(t *testing.T) {
	fake := &fakeConnector{
		roadmap: generation.Fail[entity.Roadmap](generation.FailureTransport, errors.New("provider down")),
	}
	uc := NewUsecase(validator.New(), fake)

	_, err := uc.GenerateRoadmap(context.Background(), &entity.GenerateRoadmapRequest{
		CurrentRole: "Dev", Experience: "3 years", CareerGoal: "Staff",
	})
	if err == nil {
		t.Fatal("expected error")
	}
	var genErr *generation.Error
	if !errors.As(err, &genErr) || genErr.Kind != generation.FailureTransport {
		t.Errorf("expected transport generation.Error, got %v", err)
	}
}
