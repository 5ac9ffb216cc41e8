package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/careerforge/careerforge-api/internal/entity"
)

// InterviewSessionRepository defines the interface for mock-interview
// session persistence
type InterviewSessionRepository interface {
	Create(ctx context.Context, session entity.InterviewSession) (*entity.InterviewSession, error)
	Get(ctx context.Context, id string) (*entity.InterviewSession, error)
	Update(ctx context.Context, session entity.InterviewSession) (*entity.InterviewSession, error)
	List(ctx context.Context, skip, limit int) ([]*entity.InterviewSession, error)
}

var _ InterviewSessionRepository = &InterviewSessionPostgres{}

// InterviewSessionPostgres stores sessions with the question list as JSONB
type InterviewSessionPostgres struct {
	db *pgxpool.Pool
}

func NewInterviewSessionPostgres(db *pgxpool.Pool) *InterviewSessionPostgres {
	return &InterviewSessionPostgres{db: db}
}

const sessionColumns = `id, role, job_description, status, questions, created_at, completed_at`

func (r *InterviewSessionPostgres) Create(ctx context.Context, session entity.InterviewSession) (*entity.InterviewSession, error) {
	sessionID, err := parseUUID(session.ID)
	if err != nil {
		return nil, fmt.Errorf("parse session ID: %w", err)
	}

	questions, err := json.Marshal(session.Questions)
	if err != nil {
		return nil, fmt.Errorf("marshal session questions: %w", err)
	}

	row := r.db.QueryRow(ctx, `
		INSERT INTO interview_sessions (id, role, job_description, status, questions)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+sessionColumns,
		sessionID, session.Role, session.JobDescription, session.Status, questions,
	)

	created, err := scanSession(row)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	return created, nil
}

func (r *InterviewSessionPostgres) Get(ctx context.Context, id string) (*entity.InterviewSession, error) {
	sessionID, err := parseUUID(id)
	if err != nil {
		return nil, fmt.Errorf("parse session ID: %w", err)
	}

	row := r.db.QueryRow(ctx,
		`SELECT `+sessionColumns+` FROM interview_sessions WHERE id = $1`, sessionID)

	session, err := scanSession(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entity.ErrSessionNotFound
		}
		return nil, fmt.Errorf("get session: %w", err)
	}
	return session, nil
}

func (r *InterviewSessionPostgres) Update(ctx context.Context, session entity.InterviewSession) (*entity.InterviewSession, error) {
	sessionID, err := parseUUID(session.ID)
	if err != nil {
		return nil, fmt.Errorf("parse session ID: %w", err)
	}

	questions, err := json.Marshal(session.Questions)
	if err != nil {
		return nil, fmt.Errorf("marshal session questions: %w", err)
	}

	row := r.db.QueryRow(ctx, `
		UPDATE interview_sessions
		SET status = $2, questions = $3, completed_at = $4
		WHERE id = $1
		RETURNING `+sessionColumns,
		sessionID, session.Status, questions, session.CompletedAt,
	)

	updated, err := scanSession(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entity.ErrSessionNotFound
		}
		return nil, fmt.Errorf("update session: %w", err)
	}
	return updated, nil
}

func (r *InterviewSessionPostgres) List(ctx context.Context, skip, limit int) ([]*entity.InterviewSession, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+sessionColumns+` FROM interview_sessions
		ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		limit, skip,
	)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	sessions := make([]*entity.InterviewSession, 0)
	for rows.Next() {
		session, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		sessions = append(sessions, session)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	return sessions, nil
}

func scanSession(row pgx.Row) (*entity.InterviewSession, error) {
	var (
		session     entity.InterviewSession
		id          pgtype.UUID
		questions   []byte
		createdAt   pgtype.Timestamptz
		completedAt pgtype.Timestamptz
	)

	err := row.Scan(&id, &session.Role, &session.JobDescription, &session.Status,
		&questions, &createdAt, &completedAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(questions, &session.Questions); err != nil {
		return nil, fmt.Errorf("unmarshal session questions: %w", err)
	}

	session.ID = uuid.UUID(id.Bytes).String()
	session.CreatedAt = createdAt.Time
	if completedAt.Valid {
		t := completedAt.Time
		session.CompletedAt = &t
	}
	return &session, nil
}
