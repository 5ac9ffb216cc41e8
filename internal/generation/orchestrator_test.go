package generation

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestValidatePlan(t *testing.T) {
	allowed := []string{"work", "education", "skills", "projects"}

	cases := []struct {
		name    string
		plan    []SectionTask
		wantErr bool
	}{
		{
			name: "valid plan",
			plan: []SectionTask{{Section: "work", Weight: 40}, {Section: "skills", Weight: 25}, {Section: "education", Weight: 20}},
		},
		{
			name:    "empty plan",
			plan:    nil,
			wantErr: true,
		},
		{
			name:    "unknown section",
			plan:    []SectionTask{{Section: "basics", Weight: 20}},
			wantErr: true,
		},
		{
			name:    "duplicate section",
			plan:    []SectionTask{{Section: "work", Weight: 20}, {Section: "work", Weight: 20}},
			wantErr: true,
		},
		{
			name:    "weight below minimum",
			plan:    []SectionTask{{Section: "work", Weight: 9}},
			wantErr: true,
		},
		{
			name:    "weight above maximum",
			plan:    []SectionTask{{Section: "work", Weight: 51}},
			wantErr: true,
		},
		{
			name:    "budget exceeded",
			plan:    []SectionTask{{Section: "work", Weight: 50}, {Section: "skills", Weight: 36}},
			wantErr: true,
		},
		{
			name: "budget boundary",
			plan: []SectionTask{{Section: "work", Weight: 50}, {Section: "skills", Weight: 35}},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidatePlan(tc.plan, allowed)
			if tc.wantErr && err == nil {
				t.Error("expected plan to be rejected")
			}
			if !tc.wantErr && err != nil {
				t.Errorf("expected plan to be accepted, got: %v", err)
			}
		})
	}
}

func TestAssembleSectionsIsolatesFailures(t *testing.T) {
	plan := []SectionTask{
		{Section: "work", Weight: 30},
		{Section: "skills", Weight: 25},
		{Section: "education", Weight: 20},
	}

	generate := func(ctx context.Context, task SectionTask) Result[string] {
		if task.Section == "skills" {
			return Fail[string](FailureSchema, errors.New("malformed section"))
		}
		return Ok("content for " + task.Section)
	}

	sections, failures := AssembleSections(context.Background(), plan, generate)

	if len(sections) != 2 {
		t.Fatalf("expected 2 successful sections, got %d", len(sections))
	}
	if sections[0].Name != "work" || sections[1].Name != "education" {
		t.Errorf("sections must keep plan order, got %q then %q", sections[0].Name, sections[1].Name)
	}
	if len(failures) != 1 || failures[0].Name != "skills" {
		t.Fatalf("expected exactly the skills section to fail, got %+v", failures)
	}
	if failures[0].Err.Kind != FailureSchema {
		t.Errorf("failure kind should be preserved, got %s", failures[0].Err.Kind)
	}
}

func TestAssembleSectionsAllFail(t *testing.T) {
	plan := []SectionTask{{Section: "work", Weight: 30}, {Section: "skills", Weight: 25}}

	generate := func(ctx context.Context, task SectionTask) Result[string] {
		return Fail[string](FailureTransport, fmt.Errorf("%s unavailable", task.Section))
	}

	sections, failures := AssembleSections(context.Background(), plan, generate)

	if len(sections) != 0 {
		t.Errorf("expected no sections, got %d", len(sections))
	}
	if len(failures) != 2 {
		t.Errorf("expected every section recorded as failed, got %d", len(failures))
	}
}

func TestAssembleSectionsRunsEverySection(t *testing.T) {
	plan := []SectionTask{
		{Section: "work", Weight: 20},
		{Section: "skills", Weight: 20},
		{Section: "projects", Weight: 20},
	}

	var calls []string
	generate := func(ctx context.Context, task SectionTask) Result[int] {
		calls = append(calls, task.Section)
		if task.Section == "work" {
			return Fail[int](FailureTransport, errors.New("boom"))
		}
		return Ok(len(task.Section))
	}

	AssembleSections(context.Background(), plan, generate)

	if len(calls) != 3 {
		t.Errorf("an early failure must not stop later sections; got calls %v", calls)
	}
}
