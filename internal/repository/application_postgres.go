package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/careerforge/careerforge-api/internal/entity"
)

// ApplicationRepository defines the interface for application persistence
type ApplicationRepository interface {
	Create(ctx context.Context, app entity.Application) (*entity.Application, error)
	Get(ctx context.Context, id string) (*entity.Application, error)
	List(ctx context.Context, status entity.ApplicationStatus, skip, limit int) ([]*entity.Application, error)
	Update(ctx context.Context, app entity.Application) (*entity.Application, error)
	Delete(ctx context.Context, id string) error
}

var _ ApplicationRepository = &ApplicationPostgres{}

// ApplicationPostgres implements ApplicationRepository using PostgreSQL
type ApplicationPostgres struct {
	db *pgxpool.Pool
}

func NewApplicationPostgres(db *pgxpool.Pool) *ApplicationPostgres {
	return &ApplicationPostgres{db: db}
}

const applicationColumns = `id, company, role, url, job_description, notes, status, applied_at, created_at, updated_at`

func (r *ApplicationPostgres) Create(ctx context.Context, app entity.Application) (*entity.Application, error) {
	appID, err := parseUUID(app.ID)
	if err != nil {
		return nil, fmt.Errorf("parse application ID: %w", err)
	}

	row := r.db.QueryRow(ctx, `
		INSERT INTO applications (id, company, role, url, job_description, notes, status, applied_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+applicationColumns,
		appID, app.Company, app.Role, app.URL, app.JobDescription, app.Notes, app.Status, app.AppliedAt,
	)

	created, err := scanApplication(row)
	if err != nil {
		return nil, fmt.Errorf("create application: %w", err)
	}
	return created, nil
}

func (r *ApplicationPostgres) Get(ctx context.Context, id string) (*entity.Application, error) {
	appID, err := parseUUID(id)
	if err != nil {
		return nil, fmt.Errorf("parse application ID: %w", err)
	}

	row := r.db.QueryRow(ctx,
		`SELECT `+applicationColumns+` FROM applications WHERE id = $1`, appID)

	app, err := scanApplication(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entity.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("get application: %w", err)
	}
	return app, nil
}

func (r *ApplicationPostgres) List(ctx context.Context, status entity.ApplicationStatus, skip, limit int) ([]*entity.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications`
	args := []any{}
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, status)
	}
	query += fmt.Sprintf(` ORDER BY created_at DESC LIMIT %d OFFSET %d`, limit, skip)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	defer rows.Close()

	apps := make([]*entity.Application, 0)
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, fmt.Errorf("scan application: %w", err)
		}
		apps = append(apps, app)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	return apps, nil
}

func (r *ApplicationPostgres) Update(ctx context.Context, app entity.Application) (*entity.Application, error) {
	appID, err := parseUUID(app.ID)
	if err != nil {
		return nil, fmt.Errorf("parse application ID: %w", err)
	}

	row := r.db.QueryRow(ctx, `
		UPDATE applications
		SET company = $2, role = $3, url = $4, job_description = $5,
		    notes = $6, status = $7, applied_at = $8, updated_at = now()
		WHERE id = $1
		RETURNING `+applicationColumns,
		appID, app.Company, app.Role, app.URL, app.JobDescription, app.Notes, app.Status, app.AppliedAt,
	)

	updated, err := scanApplication(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entity.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("update application: %w", err)
	}
	return updated, nil
}

func (r *ApplicationPostgres) Delete(ctx context.Context, id string) error {
	appID, err := parseUUID(id)
	if err != nil {
		return fmt.Errorf("parse application ID: %w", err)
	}

	tag, err := r.db.Exec(ctx, `DELETE FROM applications WHERE id = $1`, appID)
	if err != nil {
		return fmt.Errorf("delete application: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entity.ErrApplicationNotFound
	}
	return nil
}

func scanApplication(row pgx.Row) (*entity.Application, error) {
	var (
		app       entity.Application
		id        pgtype.UUID
		appliedAt pgtype.Timestamptz
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)

	err := row.Scan(&id, &app.Company, &app.Role, &app.URL, &app.JobDescription,
		&app.Notes, &app.Status, &appliedAt, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	app.ID = uuid.UUID(id.Bytes).String()
	if appliedAt.Valid {
		t := appliedAt.Time
		app.AppliedAt = &t
	}
	app.CreatedAt = createdAt.Time
	app.UpdatedAt = updatedAt.Time
	return &app, nil
}

func parseUUID(id string) (pgtype.UUID, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return pgtype.UUID{}, err
	}
	return pgtype.UUID{Bytes: parsed, Valid: true}, nil
}
