// Package respond holds the response helpers shared by all API handlers:
// JSON encoding and the single mapping from usecase errors to HTTP statuses.
package respond

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"github.com/careerforge/careerforge-api/internal/entity"
	"github.com/careerforge/careerforge-api/internal/generation"
)

func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func Error(ctx context.Context, w http.ResponseWriter, status int, message string, err error) {
	ctxzap.Error(ctx, message, zap.Error(err))
	JSON(w, status, entity.ErrorResponse{
		Success: false,
		Error:   message,
	})
}

// UsecaseError maps a usecase error to the uniform failure shape.
// Input-validation failures carry field-level details; generation failures
// stay generic so provider internals never leak to the caller.
func UsecaseError(ctx context.Context, w http.ResponseWriter, err error) {
	var fieldErrs entity.ValidationErrors
	if errors.As(err, &fieldErrs) {
		ctxzap.Warn(ctx, "request validation failed", zap.Error(err))
		JSON(w, http.StatusBadRequest, entity.ErrorResponse{
			Success: false,
			Error:   "validation failed",
			Details: fieldErrs,
		})
		return
	}

	var genErr *generation.Error
	if errors.As(err, &genErr) {
		ctxzap.Error(ctx, "generation failed",
			zap.String("failure_kind", genErr.Kind.String()),
			zap.Error(genErr.Err),
		)
		Error(ctx, w, http.StatusBadGateway, "generation failed", err)
		return
	}

	switch {
	case errors.Is(err, entity.ErrApplicationNotFound),
		errors.Is(err, entity.ErrResumeNotFound),
		errors.Is(err, entity.ErrSessionNotFound),
		errors.Is(err, entity.ErrQuestionNotFound):
		Error(ctx, w, http.StatusNotFound, "resource not found", err)
	case errors.Is(err, entity.ErrInvalidParameter),
		errors.Is(err, entity.ErrMissingField),
		errors.Is(err, entity.ErrInvalidStatus):
		Error(ctx, w, http.StatusBadRequest, "invalid parameter", err)
	case errors.Is(err, entity.ErrSessionCompleted):
		Error(ctx, w, http.StatusConflict, "session already completed", err)
	default:
		Error(ctx, w, http.StatusInternalServerError, "internal server error", err)
	}
}
