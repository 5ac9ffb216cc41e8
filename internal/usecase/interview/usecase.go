package interview

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"github.com/careerforge/careerforge-api/internal/entity"
	"github.com/careerforge/careerforge-api/internal/pkg/validator"
	"github.com/careerforge/careerforge-api/internal/repository"
)

// InterviewUsecase implements question generation, answer feedback and
// mock-interview sessions
type InterviewUsecase struct {
	sessionRepo repository.InterviewSessionRepository
	validator   *validator.Validator
	llm         GenerationConnector
}

func NewUsecase(
	sessionRepo repository.InterviewSessionRepository,
	validator *validator.Validator,
	llm GenerationConnector,
) *InterviewUsecase {
	return &InterviewUsecase{
		sessionRepo: sessionRepo,
		validator:   validator,
		llm:         llm,
	}
}

// GenerateRoleQuestions produces a fixed-size question set for a role.
func (uc *InterviewUsecase) GenerateRoleQuestions(ctx context.Context, req *entity.RoleQuestionsRequest) ([]entity.InterviewQuestion, error) {
	if err := uc.validator.ValidateRoleQuestions(req); err != nil {
		return nil, err
	}

	result := uc.llm.GenerateRoleQuestions(ctx, req.Role, entity.DifficultyMedium)
	if result.Failed() {
		return nil, fmt.Errorf("generate role questions: %w", result.Err())
	}

	ctxzap.Info(ctx, "role questions generated", zap.Int("count", len(result.Value())))
	return result.Value(), nil
}

// GeneratePrepQuestions produces categorized questions from a job
// description. Every question comes back with an empty answer slot; the
// provider never populates answers on the caller's behalf.
func (uc *InterviewUsecase) GeneratePrepQuestions(ctx context.Context, req *entity.PrepQuestionsRequest) ([]entity.AssembledPrepCategory, error) {
	if err := uc.validator.ValidatePrepQuestions(req); err != nil {
		return nil, err
	}

	result := uc.llm.GeneratePrepQuestions(ctx, req.JobDescription)
	if result.Failed() {
		return nil, fmt.Errorf("generate prep questions: %w", result.Err())
	}

	assembled := entity.AssemblePrepCategories(result.Value())
	ctxzap.Info(ctx, "prep questions generated", zap.Int("categories", len(assembled)))
	return assembled, nil
}

// GenerateFeedback reviews each submitted answer in order. A blank answer is
// replaced by the no-answer sentinel before review, and feedback is always a
// single line.
func (uc *InterviewUsecase) GenerateFeedback(ctx context.Context, req *entity.FeedbackRequest) ([]entity.AnswerFeedback, error) {
	if err := uc.validator.ValidateFeedback(req); err != nil {
		return nil, err
	}

	feedback := make([]entity.AnswerFeedback, 0, len(req.Questions))
	for _, review := range req.Questions {
		review.Answer = answerOrSentinel(review.Answer)

		result := uc.llm.GenerateFeedback(ctx, review)
		if result.Failed() {
			return nil, fmt.Errorf("generate feedback for %q: %w", review.Question, result.Err())
		}

		feedback = append(feedback, entity.AnswerFeedback{
			Question: review.Question,
			Feedback: flattenFeedback(result.Value()),
		})
	}

	ctxzap.Info(ctx, "feedback generated", zap.Int("answers", len(feedback)))
	return feedback, nil
}

// StartSession creates a mock-interview session. The question set comes from
// the role when one is given; with only a job description, the role is
// extracted from it first.
func (uc *InterviewUsecase) StartSession(ctx context.Context, req *entity.StartSessionRequest) (*entity.InterviewSession, error) {
	if err := uc.validator.ValidateStartSession(req); err != nil {
		return nil, err
	}

	role := req.Role
	if role == "" {
		info := uc.llm.ExtractJobInfo(ctx, req.JobDescription)
		if info.Failed() {
			return nil, fmt.Errorf("extract role from job description: %w", info.Err())
		}
		role = info.Value().Role
		if role == "" {
			return nil, fmt.Errorf("%w: job description does not state a role", entity.ErrInvalidParameter)
		}
	}

	result := uc.llm.GenerateRoleQuestions(ctx, role, entity.DifficultyMedium)
	if result.Failed() {
		return nil, fmt.Errorf("generate session questions: %w", result.Err())
	}

	questions := make([]entity.SessionQuestion, 0, len(result.Value()))
	for _, q := range result.Value() {
		questions = append(questions, entity.SessionQuestion{InterviewQuestion: q})
	}

	session := entity.InterviewSession{
		ID:             uuid.New().String(),
		Role:           role,
		JobDescription: req.JobDescription,
		Status:         entity.SessionStatusActive,
		Questions:      questions,
	}

	created, err := uc.sessionRepo.Create(ctx, session)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	ctxzap.Info(ctx, "interview session started",
		zap.String("session_id", created.ID),
		zap.Int("questions", len(created.Questions)),
	)
	return created, nil
}

func (uc *InterviewUsecase) GetSession(ctx context.Context, id string) (*entity.InterviewSession, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("%w: invalid session ID format", entity.ErrInvalidParameter)
	}
	return uc.sessionRepo.Get(ctx, id)
}

// SubmitAnswer records the caller's answer to one session question.
func (uc *InterviewUsecase) SubmitAnswer(ctx context.Context, id string, req *entity.SubmitSessionAnswerRequest) (*entity.InterviewSession, error) {
	if err := uc.validator.ValidateSubmitSessionAnswer(req); err != nil {
		return nil, err
	}
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("%w: invalid session ID format", entity.ErrInvalidParameter)
	}

	session, err := uc.sessionRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.Status != entity.SessionStatusActive {
		return nil, entity.ErrSessionCompleted
	}
	if req.QuestionIndex >= len(session.Questions) {
		return nil, fmt.Errorf("%w: question index %d out of range", entity.ErrQuestionNotFound, req.QuestionIndex)
	}

	session.Questions[req.QuestionIndex].UserAnswer = req.Answer

	updated, err := uc.sessionRepo.Update(ctx, *session)
	if err != nil {
		return nil, fmt.Errorf("update session: %w", err)
	}
	return updated, nil
}

// CompleteSession closes the session and generates feedback for every
// question. Feedback failures are absorbed per question: the session still
// completes, the affected questions just carry no feedback.
func (uc *InterviewUsecase) CompleteSession(ctx context.Context, id string) (*entity.InterviewSession, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("%w: invalid session ID format", entity.ErrInvalidParameter)
	}

	session, err := uc.sessionRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.Status != entity.SessionStatusActive {
		return nil, entity.ErrSessionCompleted
	}

	for i := range session.Questions {
		review := entity.AnswerReview{
			Question: session.Questions[i].Question,
			Answer:   answerOrSentinel(session.Questions[i].UserAnswer),
		}

		result := uc.llm.GenerateFeedback(ctx, review)
		if result.Failed() {
			ctxzap.Warn(ctx, "feedback generation failed for session question",
				zap.Int("question_index", i),
				zap.Error(result.Err()),
			)
			continue
		}
		session.Questions[i].Feedback = flattenFeedback(result.Value())
	}

	now := time.Now().UTC()
	session.Status = entity.SessionStatusCompleted
	session.CompletedAt = &now

	updated, err := uc.sessionRepo.Update(ctx, *session)
	if err != nil {
		return nil, fmt.Errorf("complete session: %w", err)
	}

	ctxzap.Info(ctx, "interview session completed", zap.String("session_id", updated.ID))
	return updated, nil
}
