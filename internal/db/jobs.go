package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const jobColumns = `id, supervisor_id, title, company, location_name, description,
	        wage_type, wage_amount, required_date, duration_hours, expires_at,
	        laborers_required, laborers_applied, status, is_listed, created_at`

func scanJob(row pgx.Row) (*JobPosting, error) {
	var p JobPosting
	err := row.Scan(&p.ID, &p.SupervisorID, &p.Title, &p.Company, &p.LocationName,
		&p.Description, &p.WageType, &p.WageAmount, &p.RequiredDate, &p.DurationHours,
		&p.ExpiresAt, &p.LaborersRequired, &p.LaborersApplied, &p.Status, &p.IsListed,
		&p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// JobPostingCreateInput holds the fields a supervisor submits for a new posting
type JobPostingCreateInput struct {
	SupervisorID     uuid.UUID
	Title            string
	Company          string
	LocationName     string
	Description      string
	WageType         string
	WageAmount       int64
	RequiredDate     time.Time
	DurationHours    int
	LaborersRequired int
	ExpiresAt        *time.Time // nil means creation time + DefaultPostingLifetime
}

// CreateJobPosting persists a new posting as open and listed with zero applicants.
// Wage compliance is the caller's responsibility; the store never rejects on wage.
func (db *DB) CreateJobPosting(ctx context.Context, input *JobPostingCreateInput) (*JobPosting, error) {
	expiresAt := time.Now().Add(DefaultPostingLifetime)
	if input.ExpiresAt != nil {
		expiresAt = *input.ExpiresAt
	}

	row := db.pool.QueryRow(ctx,
		`INSERT INTO jobs (supervisor_id, title, company, location_name, description,
		                   wage_type, wage_amount, required_date, duration_hours,
		                   expires_at, laborers_required, laborers_applied, status, is_listed)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, 0, 'open', TRUE)
		 RETURNING `+jobColumns,
		input.SupervisorID, input.Title, input.Company, input.LocationName,
		input.Description, input.WageType, input.WageAmount, input.RequiredDate,
		input.DurationHours, expiresAt, input.LaborersRequired,
	)

	posting, err := scanJob(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create job posting: %w", err)
	}
	return posting, nil
}

// GetJobPosting retrieves a posting by ID, or nil if it doesn't exist
func (db *DB) GetJobPosting(ctx context.Context, id uuid.UUID) (*JobPosting, error) {
	posting, err := scanJob(db.pool.QueryRow(ctx,
		`SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get job posting: %w", err)
	}
	return posting, nil
}

// ExpireOverdueJobs flips open postings past their expiry to expired.
// Called lazily from the feed path rather than a background sweep.
func (db *DB) ExpireOverdueJobs(ctx context.Context) (int64, error) {
	result, err := db.pool.Exec(ctx,
		`UPDATE jobs SET status = 'expired' WHERE status = 'open' AND expires_at <= NOW()`)
	if err != nil {
		return 0, fmt.Errorf("failed to expire overdue jobs: %w", err)
	}
	return result.RowsAffected(), nil
}

// ListOpenJobs returns the public feed: open, listed, unexpired postings,
// newest first. Overdue postings are expired before the read.
func (db *DB) ListOpenJobs(ctx context.Context) ([]JobPosting, error) {
	if _, err := db.ExpireOverdueJobs(ctx); err != nil {
		return nil, err
	}

	rows, err := db.pool.Query(ctx,
		`SELECT `+jobColumns+`
		 FROM jobs
		 WHERE status = 'open' AND is_listed = TRUE AND expires_at > NOW()
		 ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list open jobs: %w", err)
	}
	defer rows.Close()

	var postings []JobPosting
	for rows.Next() {
		posting, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan job posting: %w", err)
		}
		postings = append(postings, *posting)
	}
	return postings, nil
}

// ListSupervisorJobs returns all of a supervisor's postings, newest first,
// regardless of status or listing flag
func (db *DB) ListSupervisorJobs(ctx context.Context, supervisorID uuid.UUID) ([]JobPosting, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+jobColumns+`
		 FROM jobs WHERE supervisor_id = $1
		 ORDER BY created_at DESC`,
		supervisorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list supervisor jobs: %w", err)
	}
	defer rows.Close()

	var postings []JobPosting
	for rows.Next() {
		posting, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan job posting: %w", err)
		}
		postings = append(postings, *posting)
	}
	return postings, nil
}

// SetJobListing toggles the visibility flag. Status is untouched: workers
// already booked on an unlisted job stay booked.
func (db *DB) SetJobListing(ctx context.Context, jobID uuid.UUID, listed bool) error {
	result, err := db.pool.Exec(ctx,
		`UPDATE jobs SET is_listed = $2 WHERE id = $1`, jobID, listed)
	if err != nil {
		return fmt.Errorf("failed to toggle job listing: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("job not found: %s", jobID)
	}
	return nil
}

// DelistJobPosting soft-deletes a posting. The row is retained so existing
// applications and bookings remain resolvable.
func (db *DB) DelistJobPosting(ctx context.Context, jobID uuid.UUID) error {
	result, err := db.pool.Exec(ctx,
		`UPDATE jobs SET status = 'delisted', is_listed = FALSE WHERE id = $1`, jobID)
	if err != nil {
		return fmt.Errorf("failed to delist job posting: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("job not found: %s", jobID)
	}
	return nil
}
