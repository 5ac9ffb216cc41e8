package llm

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/careerforge/careerforge-api/internal/config"
	"github.com/careerforge/careerforge-api/internal/entity"
	"github.com/careerforge/careerforge-api/internal/generation"
)

func testConnector(client generation.Client) *Connector {
	return newConnectorWithClient(config.LLMConfig{
		Model:           "test-model",
		MaxOutputTokens: 1024,
		Temperature:     0.7,
	}, client)
}

func respond(responses ...string) (generation.Client, *int) {
	calls := 0
	client := generation.ClientFunc(func(ctx context.Context, req generation.Request) (string, error) {
		idx := calls
		calls++
		if idx >= len(responses) {
			idx = len(responses) - 1
		}
		return responses[idx], nil
	})
	return client, &calls
}

func TestPlanResumeSectionsRejectsBadPlans(t *testing.T) {
	tests := []struct {
		name     string
		response string
	}{
		{"over budget", `[{"section":"work","weight":50},{"section":"skills","weight":40}]`},
		{"duplicate section", `[{"section":"work","weight":20},{"section":"work","weight":20}]`},
		{"unknown section", `[{"section":"references","weight":20}]`},
		{"weight too small", `[{"section":"work","weight":5}]`},
		{"empty plan", `[]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := respond(tt.response)
			result := testConnector(client).PlanResumeSections(context.Background(), "jd")
			if !result.Failed() {
				t.Fatal("expected failure, got success")
			}
			if result.Err().Kind != generation.FailureSchema {
				t.Errorf("kind = %v, want FailureSchema", result.Err().Kind)
			}
		})
	}
}

func TestPlanResumeSectionsAcceptsValidPlan(t *testing.T) {
	client, calls := respond(`[{"section":"work","weight":40},{"section":"skills","weight":25}]`)

	result := testConnector(client).PlanResumeSections(context.Background(), "jd")
	if result.Failed() {
		t.Fatalf("unexpected failure: %v", result.Err())
	}
	if *calls != 1 {
		t.Errorf("provider called %d times, want exactly 1", *calls)
	}

	plan := result.Value()
	if len(plan) != 2 || plan[0].Section != entity.SectionWork || plan[0].Weight != 40 {
		t.Errorf("unexpected plan: %+v", plan)
	}
}

func TestGenerateSkillsSectionTwoStage(t *testing.T) {
	var requests []generation.Request
	client := generation.ClientFunc(func(ctx context.Context, req generation.Request) (string, error) {
		requests = append(requests, req)
		if len(requests) == 1 {
			return "Go\nPostgreSQL\nDocker", nil
		}
		return `[{"name":"Languages","keywords":["Go","Rust"]},{"name":"Infra","keywords":["Docker"]}]`, nil
	})

	result := testConnector(client).GenerateSkillsSection(context.Background(), "jd", nil)
	if result.Failed() {
		t.Fatalf("unexpected failure: %v", result.Err())
	}
	if len(requests) != 2 {
		t.Fatalf("provider called %d times, want 2", len(requests))
	}
	if requests[0].Schema != nil {
		t.Error("extraction stage must be schema-free")
	}
	if requests[1].Schema == nil {
		t.Error("formatting stage must be schema-bound")
	}

	groups := result.Value()
	if len(groups) != 2 {
		t.Fatalf("got %d groups, want 2", len(groups))
	}
	// Rust was never extracted from the job description, so it cannot survive.
	for _, kw := range groups[0].Keywords {
		if kw == "Rust" {
			t.Error("out-of-vocabulary keyword kept")
		}
	}
	if len(groups[0].Keywords) != 1 || groups[0].Keywords[0] != "Go" {
		t.Errorf("unexpected keywords: %v", groups[0].Keywords)
	}
}

func TestGenerateSkillsSectionEmptyExtraction(t *testing.T) {
	client, calls := respond("   ")

	result := testConnector(client).GenerateSkillsSection(context.Background(), "jd", nil)
	if !result.Failed() {
		t.Fatal("expected failure on empty extraction")
	}
	if *calls != 1 {
		t.Errorf("formatting stage ran after failed extraction, calls = %d", *calls)
	}
}

func TestGenerateRoleQuestionsCount(t *testing.T) {
	question := map[string]string{
		"question":     "Q",
		"type":         "Technical",
		"difficulty":   entity.DifficultyMedium,
		"hint":         "H",
		"sampleAnswer": "A",
	}

	makeResponse := func(n int) string {
		arr := make([]map[string]string, n)
		for i := range arr {
			arr[i] = question
		}
		b, _ := json.Marshal(arr)
		return string(b)
	}

	tests := []struct {
		name   string
		count  int
		wantOK bool
	}{
		{"exactly five", 5, true},
		{"too few", 4, false},
		{"too many", 6, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := respond(makeResponse(tt.count))
			result := testConnector(client).GenerateRoleQuestions(context.Background(), "role", entity.DifficultyMedium)
			if result.Failed() == tt.wantOK {
				t.Errorf("Failed() = %v, wantOK = %v (err: %v)", result.Failed(), tt.wantOK, result.Err())
			}
		})
	}
}

func TestGenerateRoleQuestionsRejectsEmptyFields(t *testing.T) {
	blank := map[string]string{
		"question":     "",
		"type":         "   ",
		"difficulty":   entity.DifficultyMedium,
		"hint":         "",
		"sampleAnswer": "",
	}
	arr := make([]map[string]string, entity.RoleQuestionCount)
	for i := range arr {
		arr[i] = blank
	}
	b, _ := json.Marshal(arr)

	client, _ := respond(string(b))
	result := testConnector(client).GenerateRoleQuestions(context.Background(), "role", entity.DifficultyMedium)
	if !result.Failed() {
		t.Fatal("questions with blank text fields must not validate")
	}
	if result.Err().Kind != generation.FailureSchema {
		t.Errorf("kind = %v, want FailureSchema", result.Err().Kind)
	}
}

func TestGenerateRoadmapGlobalBudget(t *testing.T) {
	// Each string stays inside the per-string limit, but the document as a
	// whole overflows the global budget.
	filler := strings.Repeat("x", entity.RoadmapMaxStringChars-10)
	steps := make([]entity.RoadmapStep, 8)
	for i := range steps {
		steps[i] = entity.RoadmapStep{
			Title:         filler,
			Summary:       filler,
			EstimatedTime: "1 month",
			Resources: []entity.RoadmapResource{
				{Name: filler, Purpose: filler, Details: filler},
			},
			Suggestions: []string{filler, filler, filler},
		}
	}
	oversized, _ := json.Marshal(entity.Roadmap{
		Title: "t", Start: "s", Goal: "g", EstimatedTime: "1 year", Steps: steps,
	})

	client, _ := respond(string(oversized))
	result := testConnector(client).GenerateRoadmap(context.Background(), "Dev", "2 years", "Lead", "", "")
	if !result.Failed() {
		t.Fatal("expected failure for oversized roadmap")
	}
	if result.Err().Kind != generation.FailureSchema {
		t.Errorf("kind = %v, want FailureSchema", result.Err().Kind)
	}
	if !strings.Contains(result.Err().Err.Error(), "limit") {
		t.Errorf("error should mention the limit: %v", result.Err())
	}
}

func TestGenerateFeedbackUnwrapsPayload(t *testing.T) {
	client, _ := respond(`{"feedback":"Solid answer with a clear outcome."}`)

	result := testConnector(client).GenerateFeedback(context.Background(),
		entity.AnswerReview{Question: "Q", Answer: "A"})
	if result.Failed() {
		t.Fatalf("unexpected failure: %v", result.Err())
	}
	if result.Value() != "Solid answer with a clear outcome." {
		t.Errorf("unexpected feedback: %q", result.Value())
	}
}
