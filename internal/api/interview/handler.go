package interview

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"github.com/careerforge/careerforge-api/internal/api/respond"
	"github.com/careerforge/careerforge-api/internal/entity"
	"github.com/careerforge/careerforge-api/internal/pkg/logger"
)

type Handler struct {
	usecase InterviewUsecase
}

func NewHandler(usecase InterviewUsecase) *Handler {
	return &Handler{usecase: usecase}
}

// RoleQuestions handles POST /interview/role-questions
func (h *Handler) RoleQuestions(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "RoleQuestions")

	var req entity.RoleQuestionsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(ctx, w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	questions, err := h.usecase.GenerateRoleQuestions(ctx, &req)
	if err != nil {
		respond.UsecaseError(ctx, w, err)
		return
	}

	respond.JSON(w, http.StatusOK, entity.RoleQuestionsResponse{
		Success:   true,
		Questions: questions,
	})
}

// PrepQuestions handles POST /interview/prep-questions
func (h *Handler) PrepQuestions(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "PrepQuestions")

	var req entity.PrepQuestionsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(ctx, w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	categories, err := h.usecase.GeneratePrepQuestions(ctx, &req)
	if err != nil {
		respond.UsecaseError(ctx, w, err)
		return
	}

	respond.JSON(w, http.StatusOK, entity.PrepQuestionsResponse{
		Success:    true,
		Categories: categories,
	})
}

// Feedback handles POST /interview/feedback
func (h *Handler) Feedback(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "Feedback")

	var req entity.FeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(ctx, w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	feedback, err := h.usecase.GenerateFeedback(ctx, &req)
	if err != nil {
		respond.UsecaseError(ctx, w, err)
		return
	}

	ctxzap.Info(ctx, "feedback delivered", zap.Int("answers", len(feedback)))

	respond.JSON(w, http.StatusOK, entity.FeedbackResponse{
		Success:  true,
		Feedback: feedback,
	})
}

// StartSession handles POST /interview/sessions
func (h *Handler) StartSession(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "StartSession")

	var req entity.StartSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(ctx, w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	session, err := h.usecase.StartSession(ctx, &req)
	if err != nil {
		respond.UsecaseError(ctx, w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, entity.SessionResponse{
		Success: true,
		Session: session,
	})
}

// GetSession handles GET /interview/sessions/{id}
func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	ctx := logger.AddFields(r.Context(),
		zap.String("session_id", chi.URLParam(r, "id")),
		zap.String("action", "GetSession"),
	)

	session, err := h.usecase.GetSession(ctx, chi.URLParam(r, "id"))
	if err != nil {
		respond.UsecaseError(ctx, w, err)
		return
	}

	respond.JSON(w, http.StatusOK, entity.SessionResponse{
		Success: true,
		Session: session,
	})
}

// SubmitAnswer handles POST /interview/sessions/{id}/answers
func (h *Handler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "id")
	ctx := logger.AddFields(r.Context(),
		zap.String("session_id", sessionID),
		zap.String("action", "SubmitAnswer"),
	)

	var req entity.SubmitSessionAnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(ctx, w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	session, err := h.usecase.SubmitAnswer(ctx, sessionID, &req)
	if err != nil {
		respond.UsecaseError(ctx, w, err)
		return
	}

	respond.JSON(w, http.StatusOK, entity.SessionResponse{
		Success: true,
		Session: session,
	})
}

// CompleteSession handles POST /interview/sessions/{id}/complete
func (h *Handler) CompleteSession(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "id")
	ctx := logger.AddFields(r.Context(),
		zap.String("session_id", sessionID),
		zap.String("action", "CompleteSession"),
	)

	session, err := h.usecase.CompleteSession(ctx, sessionID)
	if err != nil {
		respond.UsecaseError(ctx, w, err)
		return
	}

	respond.JSON(w, http.StatusOK, entity.SessionResponse{
		Success: true,
		Session: session,
	})
}
