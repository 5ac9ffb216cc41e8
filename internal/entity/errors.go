package entity

import (
	"errors"
	"fmt"
	"strings"
)

// Domain errors
var (
	// Application errors
	ErrApplicationNotFound = errors.New("application not found")
	ErrInvalidStatus       = errors.New("invalid application status")

	// Resume errors
	ErrResumeNotFound = errors.New("resume not found")

	// Interview session errors
	ErrSessionNotFound  = errors.New("interview session not found")
	ErrSessionCompleted = errors.New("interview session is already completed")
	ErrQuestionNotFound = errors.New("question not found in session")

	// Validation errors
	ErrMissingField     = errors.New("required field is missing")
	ErrInvalidParameter = errors.New("invalid parameter")

	// Generation errors
	ErrGenerationFailed = errors.New("generation failed")
)

// FieldError is one field-level complaint returned with 400 responses.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors carries every field-level complaint for a request so the
// caller can fix them in one pass.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	parts := make([]string, 0, len(v))
	for _, fe := range v {
		parts = append(parts, fmt.Sprintf("%s: %s", fe.Field, fe.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
