package respond

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/careerforge/careerforge-api/internal/entity"
	"github.com/careerforge/careerforge-api/internal/generation"
)

func TestUsecaseErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{
			"validation errors",
			entity.ValidationErrors{{Field: "jobDescription", Message: "must not be empty"}},
			400,
		},
		{
			"wrapped validation errors",
			fmt.Errorf("generate resume: %w",
				entity.ValidationErrors{{Field: "role", Message: "must not be empty"}}),
			400,
		},
		{
			"schema generation failure",
			&generation.Error{Kind: generation.FailureSchema, Err: errors.New("not JSON")},
			502,
		},
		{
			"transport generation failure",
			fmt.Errorf("plan: %w",
				&generation.Error{Kind: generation.FailureTransport, Err: errors.New("timeout")}),
			502,
		},
		{"application not found", entity.ErrApplicationNotFound, 404},
		{"session not found", fmt.Errorf("get: %w", entity.ErrSessionNotFound), 404},
		{"invalid parameter", entity.ErrInvalidParameter, 400},
		{"session completed", entity.ErrSessionCompleted, 409},
		{"unknown error", errors.New("disk full"), 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			UsecaseError(context.Background(), rec, tt.err)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}

			var body entity.ErrorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("response is not JSON: %v", err)
			}
			if body.Success {
				t.Error("success flag must be false on errors")
			}
			if body.Error == "" {
				t.Error("error message missing")
			}
		})
	}
}

func TestValidationErrorsCarryDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	UsecaseError(context.Background(), rec, entity.ValidationErrors{
		{Field: "jobDescription", Message: "must not be empty"},
		{Field: "profile.basics.name", Message: "must not be empty"},
	})

	var body entity.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	if len(body.Details) != 2 {
		t.Errorf("got %d details, want 2", len(body.Details))
	}
}

func TestGenerationFailureStaysGeneric(t *testing.T) {
	rec := httptest.NewRecorder()
	UsecaseError(context.Background(), rec,
		&generation.Error{Kind: generation.FailureSchema, Err: errors.New("$.weight: integer 90 outside range")})

	var body entity.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	if body.Error != "generation failed" {
		t.Errorf("error = %q, want generic message", body.Error)
	}
	if len(body.Details) != 0 {
		t.Error("generation failures must not carry field details")
	}
}
