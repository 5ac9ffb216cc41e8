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

// ResumeRepository defines the interface for saved-resume persistence
type ResumeRepository interface {
	Save(ctx context.Context, doc entity.ResumeDocument) (*entity.ResumeDocument, error)
	Get(ctx context.Context, id string) (*entity.ResumeDocument, error)
	List(ctx context.Context, skip, limit int) ([]*entity.ResumeDocument, error)
	Delete(ctx context.Context, id string) error
}

var _ ResumeRepository = &ResumePostgres{}

// ResumePostgres stores saved resumes with the document as JSONB
type ResumePostgres struct {
	db *pgxpool.Pool
}

func NewResumePostgres(db *pgxpool.Pool) *ResumePostgres {
	return &ResumePostgres{db: db}
}

func (r *ResumePostgres) Save(ctx context.Context, doc entity.ResumeDocument) (*entity.ResumeDocument, error) {
	docID, err := parseUUID(doc.ID)
	if err != nil {
		return nil, fmt.Errorf("parse resume ID: %w", err)
	}

	document, err := json.Marshal(doc.Resume)
	if err != nil {
		return nil, fmt.Errorf("marshal resume document: %w", err)
	}

	row := r.db.QueryRow(ctx, `
		INSERT INTO resumes (id, title, document)
		VALUES ($1, $2, $3)
		RETURNING id, title, document, created_at`,
		docID, doc.Title, document,
	)

	saved, err := scanResume(row)
	if err != nil {
		return nil, fmt.Errorf("save resume: %w", err)
	}
	return saved, nil
}

func (r *ResumePostgres) Get(ctx context.Context, id string) (*entity.ResumeDocument, error) {
	docID, err := parseUUID(id)
	if err != nil {
		return nil, fmt.Errorf("parse resume ID: %w", err)
	}

	row := r.db.QueryRow(ctx,
		`SELECT id, title, document, created_at FROM resumes WHERE id = $1`, docID)

	doc, err := scanResume(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entity.ErrResumeNotFound
		}
		return nil, fmt.Errorf("get resume: %w", err)
	}
	return doc, nil
}

func (r *ResumePostgres) List(ctx context.Context, skip, limit int) ([]*entity.ResumeDocument, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, title, document, created_at FROM resumes
		ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		limit, skip,
	)
	if err != nil {
		return nil, fmt.Errorf("list resumes: %w", err)
	}
	defer rows.Close()

	docs := make([]*entity.ResumeDocument, 0)
	for rows.Next() {
		doc, err := scanResume(rows)
		if err != nil {
			return nil, fmt.Errorf("scan resume: %w", err)
		}
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list resumes: %w", err)
	}
	return docs, nil
}

func (r *ResumePostgres) Delete(ctx context.Context, id string) error {
	docID, err := parseUUID(id)
	if err != nil {
		return fmt.Errorf("parse resume ID: %w", err)
	}

	tag, err := r.db.Exec(ctx, `DELETE FROM resumes WHERE id = $1`, docID)
	if err != nil {
		return fmt.Errorf("delete resume: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entity.ErrResumeNotFound
	}
	return nil
}

func scanResume(row pgx.Row) (*entity.ResumeDocument, error) {
	var (
		doc       entity.ResumeDocument
		id        pgtype.UUID
		document  []byte
		createdAt pgtype.Timestamptz
	)

	if err := row.Scan(&id, &doc.Title, &document, &createdAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(document, &doc.Resume); err != nil {
		return nil, fmt.Errorf("unmarshal resume document: %w", err)
	}

	doc.ID = uuid.UUID(id.Bytes).String()
	doc.CreatedAt = createdAt.Time
	return &doc, nil
}
