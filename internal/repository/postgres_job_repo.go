package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"jobboard/internal/model"

	"github.com/jackc/pgx/v5"
)

type postgresJobRepository struct {
	db DBTX
}

// NewPostgresJobRepository creates a JobRepository backed by PostgreSQL.
// The company sub-document is stored in a JSONB column.
func NewPostgresJobRepository(db DBTX) JobRepository {
	return &postgresJobRepository{db: db}
}

const jobColumns = `id, title, type, description, company, created_at, updated_at`

// Create inserts a new job and assigns its ID
func (r *postgresJobRepository) Create(ctx context.Context, job *model.Job) error {
	company, err := json.Marshal(job.Company)
	if err != nil {
		return fmt.Errorf("failed to encode company: %w", err)
	}

	job.ID = model.NewID()
	sql := `INSERT INTO jobs (` + jobColumns + `)
            VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err = r.db.Exec(ctx, sql, job.ID, job.Title, job.Type, job.Description, company, job.CreatedAt, job.UpdatedAt)
	if err != nil {
		job.ID = ""
		return fmt.Errorf("failed to create job: %w", err)
	}
	return nil
}

// FindAll retrieves every job in insertion order
func (r *postgresJobRepository) FindAll(ctx context.Context) ([]model.Job, error) {
	sql := `SELECT ` + jobColumns + ` FROM jobs ORDER BY created_at ASC, id ASC`
	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("failed to query jobs: %w", err)
	}
	defer rows.Close()

	jobs := make([]model.Job, 0)
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan job row: %w", err)
		}
		jobs = append(jobs, *job)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating job rows: %w", err)
	}
	return jobs, nil
}

// FindByID retrieves a job by its ID
func (r *postgresJobRepository) FindByID(ctx context.Context, id string) (*model.Job, error) {
	sql := `SELECT ` + jobColumns + ` FROM jobs WHERE id = $1`
	job, err := scanJob(r.db.QueryRow(ctx, sql, id))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find job by ID: %w", err)
	}
	return job, nil
}

// Update overwrites the mutable fields of an existing job
func (r *postgresJobRepository) Update(ctx context.Context, job *model.Job) error {
	company, err := json.Marshal(job.Company)
	if err != nil {
		return fmt.Errorf("failed to encode company: %w", err)
	}

	sql := `UPDATE jobs
            SET title = $1, type = $2, description = $3, company = $4, updated_at = $5
            WHERE id = $6`
	cmdTag, err := r.db.Exec(ctx, sql, job.Title, job.Type, job.Description, company, job.UpdatedAt, job.ID)
	if err != nil {
		return fmt.Errorf("failed to update job: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a job from the database
func (r *postgresJobRepository) Delete(ctx context.Context, id string) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete job: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *postgresJobRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM jobs`); err != nil {
		return fmt.Errorf("failed to delete jobs: %w", err)
	}
	return nil
}

func (r *postgresJobRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM jobs`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count jobs: %w", err)
	}
	return n, nil
}

func scanJob(row rowScanner) (*model.Job, error) {
	job := &model.Job{}
	var company []byte
	err := row.Scan(&job.ID, &job.Title, &job.Type, &job.Description, &company, &job.CreatedAt, &job.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if len(company) > 0 {
		if err := json.Unmarshal(company, &job.Company); err != nil {
			return nil, fmt.Errorf("failed to decode company: %w", err)
		}
	}
	return job, nil
}
