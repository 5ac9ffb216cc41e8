package application

import (
	"context"
	"errors"
	"testing"

	"github.com/careerforge/careerforge-api/internal/entity"
	"github.com/careerforge/careerforge-api/internal/generation"
	"github.com/careerforge/careerforge-api/internal/pkg/validator"
)

type fakeAppRepo struct {
	apps map[string]*entity.Application
}

func newFakeAppRepo() *fakeAppRepo {
	return &fakeAppRepo{apps: make(map[string]*entity.Application)}
}

func (r *fakeAppRepo) Create(ctx context.Context, app entity.Application) (*entity.Application, error) {
	stored := app
	r.apps[app.ID] = &stored
	return &stored, nil
}

func (r *fakeAppRepo) Get(ctx context.Context, id string) (*entity.Application, error) {
	app, ok := r.apps[id]
	if !ok {
		return nil, entity.ErrApplicationNotFound
	}
	copied := *app
	return &copied, nil
}

func (r *fakeAppRepo) List(ctx context.Context, status entity.ApplicationStatus, skip, limit int) ([]*entity.Application, error) {
	out := make([]*entity.Application, 0, len(r.apps))
	for _, app := range r.apps {
		if status == "" || app.Status == status {
			out = append(out, app)
		}
	}
	return out, nil
}

func (r *fakeAppRepo) Update(ctx context.Context, app entity.Application) (*entity.Application, error) {
	if _, ok := r.apps[app.ID]; !ok {
		return nil, entity.ErrApplicationNotFound
	}
	stored := app
	r.apps[app.ID] = &stored
	return &stored, nil
}

func (r *fakeAppRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.apps[id]; !ok {
		return entity.ErrApplicationNotFound
	}
	delete(r.apps, id)
	return nil
}

type fakeJobPosts struct {
	calls   int
	posting string
	err     error
}

func (f *fakeJobPosts) FetchPosting(ctx context.Context, url string) (string, error) {
	f.calls++
	return f.posting, f.err
}

type fakeLLM struct {
	info     generation.Result[entity.JobInfo]
	prepCats generation.Result[[]entity.PrepCategory]
}

func (f *fakeLLM) ExtractJobInfo(ctx context.Context, jd string) generation.Result[entity.JobInfo] {
	return f.info
}

func (f *fakeLLM) GeneratePrepQuestions(ctx context.Context, jd string) generation.Result[[]entity.PrepCategory] {
	return f.prepCats
}

func newTestUsecase(repo *fakeAppRepo, posts *fakeJobPosts, llm *fakeLLM) *ApplicationUsecase {
	return NewUsecase(repo, validator.New(), posts, llm)
}

func TestCreateApplicationDefaultsStatus(t *testing.T) {
	uc := newTestUsecase(newFakeAppRepo(), &fakeJobPosts{}, &fakeLLM{})

	app, err := uc.CreateApplication(context.Background(), &entity.CreateApplicationRequest{
		Company: "Acme", Role: "Engineer",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if app.Status != entity.StatusWishlist {
		t.Errorf("status = %q, want wishlist", app.Status)
	}
	if app.AppliedAt != nil {
		t.Error("appliedAt must not be set for wishlist applications")
	}
}

func TestCreateApplicationStampsAppliedAt(t *testing.T) {
	uc := newTestUsecase(newFakeAppRepo(), &fakeJobPosts{}, &fakeLLM{})

	app, err := uc.CreateApplication(context.Background(), &entity.CreateApplicationRequest{
		Company: "Acme", Role: "Engineer", Status: entity.StatusApplied,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if app.AppliedAt == nil {
		t.Error("appliedAt should be stamped when created as applied")
	}
}

func TestImportApplication(t *testing.T) {
	posts := &fakeJobPosts{posting: "Acme Corp hires a Senior Go Engineer in Berlin."}
	llm := &fakeLLM{info: generation.Ok(entity.JobInfo{Company: "Acme Corp", Role: "Senior Go Engineer"})}
	uc := newTestUsecase(newFakeAppRepo(), posts, llm)

	app, err := uc.ImportApplication(context.Background(),
		&entity.ImportApplicationRequest{URL: "https://example.com/job"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if app.Company != "Acme Corp" || app.Role != "Senior Go Engineer" {
		t.Errorf("job info not applied: %q/%q", app.Company, app.Role)
	}
	if app.JobDescription != posts.posting {
		t.Error("posting text not stored as job description")
	}
	if app.Status != entity.StatusWishlist {
		t.Errorf("imported application status = %q, want wishlist", app.Status)
	}
}

func TestImportApplicationRejectsBadURL(t *testing.T) {
	posts := &fakeJobPosts{}
	uc := newTestUsecase(newFakeAppRepo(), posts, &fakeLLM{})

	tests := []string{"", "not-a-url", "ftp://example.com/job", "/relative/path"}
	for _, url := range tests {
		_, err := uc.ImportApplication(context.Background(), &entity.ImportApplicationRequest{URL: url})
		if err == nil {
			t.Errorf("URL %q accepted, want validation error", url)
		}
	}
	if posts.calls != 0 {
		t.Errorf("fetch attempted %d times for invalid URLs, want 0", posts.calls)
	}
}

func TestUpdateApplicationPartial(t *testing.T) {
	repo := newFakeAppRepo()
	uc := newTestUsecase(repo, &fakeJobPosts{}, &fakeLLM{})

	app, err := uc.CreateApplication(context.Background(), &entity.CreateApplicationRequest{
		Company: "Acme", Role: "Engineer", Notes: "original notes",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	applied := entity.StatusApplied
	updated, err := uc.UpdateApplication(context.Background(), app.ID,
		&entity.UpdateApplicationRequest{Status: &applied})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Status != entity.StatusApplied {
		t.Errorf("status = %q, want applied", updated.Status)
	}
	if updated.Notes != "original notes" {
		t.Errorf("notes changed on a status-only update: %q", updated.Notes)
	}
	if updated.AppliedAt == nil {
		t.Error("appliedAt not stamped on transition to applied")
	}

	// An empty patch is rejected.
	if _, err := uc.UpdateApplication(context.Background(), app.ID,
		&entity.UpdateApplicationRequest{}); err == nil {
		t.Error("empty update accepted, want validation error")
	}
}

func TestPrepQuestionsAttachAnswerSlots(t *testing.T) {
	repo := newFakeAppRepo()
	uc := newTestUsecase(repo, &fakeJobPosts{}, &fakeLLM{
		prepCats: generation.Ok([]entity.PrepCategory{
			{Category: "Behavioral", Questions: []entity.InterviewQuestion{
				{Question: "Tell me about a conflict", Difficulty: entity.DifficultyMedium},
				{Question: "Describe a failure", Difficulty: entity.DifficultyMedium},
			}},
		}),
	})

	app, err := uc.CreateApplication(context.Background(), &entity.CreateApplicationRequest{
		Company: "Acme", Role: "Engineer", JobDescription: "jd",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	categories, err := uc.PrepQuestions(context.Background(), app.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(categories) != 1 || len(categories[0].Questions) != 2 {
		t.Fatalf("unexpected shape: %+v", categories)
	}
	for _, q := range categories[0].Questions {
		if q.UserAnswer != "" {
			t.Errorf("userAnswer must start empty, got %q", q.UserAnswer)
		}
	}
}

func TestPrepQuestionsRequiresJobDescription(t *testing.T) {
	repo := newFakeAppRepo()
	uc := newTestUsecase(repo, &fakeJobPosts{}, &fakeLLM{
		prepCats: generation.Ok([]entity.PrepCategory{{Category: "Behavioral"}}),
	})

	app, err := uc.CreateApplication(context.Background(), &entity.CreateApplicationRequest{
		Company: "Acme", Role: "Engineer",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := uc.PrepQuestions(context.Background(), app.ID); !errors.Is(err, entity.ErrMissingField) {
		t.Errorf("err = %v, want ErrMissingField for application without job description", err)
	}
}
