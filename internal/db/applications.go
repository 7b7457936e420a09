package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const applicationColumns = `id, job_id, labor_id, supervisor_id, status, applied_at`

func scanApplication(row pgx.Row) (*JobApplication, error) {
	var a JobApplication
	err := row.Scan(&a.ID, &a.JobID, &a.LaborID, &a.SupervisorID, &a.Status, &a.AppliedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// FindApplication retrieves the application for a (job, worker) pair,
// or nil if the worker has never applied
func (db *DB) FindApplication(ctx context.Context, jobID, laborID uuid.UUID) (*JobApplication, error) {
	app, err := scanApplication(db.pool.QueryRow(ctx,
		`SELECT `+applicationColumns+`
		 FROM job_applications WHERE job_id = $1 AND labor_id = $2`,
		jobID, laborID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find application: %w", err)
	}
	return app, nil
}

// GetApplication retrieves an application by ID, or nil if not found
func (db *DB) GetApplication(ctx context.Context, id uuid.UUID) (*JobApplication, error) {
	app, err := scanApplication(db.pool.QueryRow(ctx,
		`SELECT `+applicationColumns+` FROM job_applications WHERE id = $1`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get application: %w", err)
	}
	return app, nil
}

// ListWorkerApplications returns a worker's applications, newest first
func (db *DB) ListWorkerApplications(ctx context.Context, laborID uuid.UUID) ([]JobApplication, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+applicationColumns+`
		 FROM job_applications WHERE labor_id = $1
		 ORDER BY applied_at DESC`,
		laborID)
	if err != nil {
		return nil, fmt.Errorf("failed to list worker applications: %w", err)
	}
	defer rows.Close()

	var apps []JobApplication
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan application: %w", err)
		}
		apps = append(apps, *app)
	}
	return apps, nil
}

// ListJobApplications returns every application for a posting, newest first
func (db *DB) ListJobApplications(ctx context.Context, jobID uuid.UUID) ([]JobApplication, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+applicationColumns+`
		 FROM job_applications WHERE job_id = $1
		 ORDER BY applied_at DESC`,
		jobID)
	if err != nil {
		return nil, fmt.Errorf("failed to list job applications: %w", err)
	}
	defer rows.Close()

	var apps []JobApplication
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan application: %w", err)
		}
		apps = append(apps, *app)
	}
	return apps, nil
}

// ConfirmApply executes the success path of an application as one
// transaction: a conditional capacity increment, the confirmed
// application row, the denormalized booking snapshot, and the
// filled/unlisted flip when the last slot goes.
//
// The increment's WHERE clause re-checks capacity under the transaction,
// so two concurrent applies to a one-slot job cannot both commit. A nil,
// nil, nil return means the posting had no spare capacity (or was no
// longer open); the caller reports that as a job-full failure.
func (db *DB) ConfirmApply(ctx context.Context, jobID, laborID uuid.UUID) (*JobApplication, *Booking, error) {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	// Guarded increment: zero rows means capacity was gone.
	var job JobPosting
	err = tx.QueryRow(ctx,
		`UPDATE jobs
		 SET laborers_applied = laborers_applied + 1
		 WHERE id = $1 AND status = 'open' AND laborers_applied < laborers_required
		 RETURNING `+jobColumns,
		jobID,
	).Scan(&job.ID, &job.SupervisorID, &job.Title, &job.Company, &job.LocationName,
		&job.Description, &job.WageType, &job.WageAmount, &job.RequiredDate,
		&job.DurationHours, &job.ExpiresAt, &job.LaborersRequired, &job.LaborersApplied,
		&job.Status, &job.IsListed, &job.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil, nil
		}
		return nil, nil, fmt.Errorf("failed to claim job slot: %w", err)
	}

	app, err := scanApplication(tx.QueryRow(ctx,
		`INSERT INTO job_applications (job_id, labor_id, supervisor_id, status)
		 VALUES ($1, $2, $3, 'confirmed')
		 RETURNING `+applicationColumns,
		jobID, laborID, job.SupervisorID))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create application: %w", err)
	}

	booking, err := insertBookingSnapshot(ctx, tx, &job, laborID)
	if err != nil {
		return nil, nil, err
	}

	if job.LaborersApplied >= job.LaborersRequired {
		_, err = tx.Exec(ctx,
			`UPDATE jobs SET status = 'filled', is_listed = FALSE WHERE id = $1`, jobID)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to mark job filled: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, nil, fmt.Errorf("failed to commit application: %w", err)
	}
	return app, booking, nil
}

// ReviewApplication resolves a pending application. Approval claims a
// slot with the same guarded increment the primary path uses and writes
// the booking snapshot; rejection only flips the status. A nil, nil, nil
// return on approval means the posting had no spare capacity.
func (db *DB) ReviewApplication(ctx context.Context, applicationID uuid.UUID, approve bool) (*JobApplication, *Booking, error) {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	if !approve {
		app, err := scanApplication(tx.QueryRow(ctx,
			`UPDATE job_applications SET status = 'rejected'
			 WHERE id = $1 AND status = 'pending'
			 RETURNING `+applicationColumns,
			applicationID))
		if err != nil {
			if err == pgx.ErrNoRows {
				return nil, nil, fmt.Errorf("pending application not found: %s", applicationID)
			}
			return nil, nil, fmt.Errorf("failed to reject application: %w", err)
		}
		if err := tx.Commit(ctx); err != nil {
			return nil, nil, fmt.Errorf("failed to commit rejection: %w", err)
		}
		return app, nil, nil
	}

	app, err := scanApplication(tx.QueryRow(ctx,
		`UPDATE job_applications SET status = 'confirmed'
		 WHERE id = $1 AND status = 'pending'
		 RETURNING `+applicationColumns,
		applicationID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil, fmt.Errorf("pending application not found: %s", applicationID)
		}
		return nil, nil, fmt.Errorf("failed to confirm application: %w", err)
	}

	var job JobPosting
	err = tx.QueryRow(ctx,
		`UPDATE jobs
		 SET laborers_applied = laborers_applied + 1
		 WHERE id = $1 AND status = 'open' AND laborers_applied < laborers_required
		 RETURNING `+jobColumns,
		app.JobID,
	).Scan(&job.ID, &job.SupervisorID, &job.Title, &job.Company, &job.LocationName,
		&job.Description, &job.WageType, &job.WageAmount, &job.RequiredDate,
		&job.DurationHours, &job.ExpiresAt, &job.LaborersRequired, &job.LaborersApplied,
		&job.Status, &job.IsListed, &job.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil, nil
		}
		return nil, nil, fmt.Errorf("failed to claim job slot: %w", err)
	}

	booking, err := insertBookingSnapshot(ctx, tx, &job, app.LaborID)
	if err != nil {
		return nil, nil, err
	}

	if job.LaborersApplied >= job.LaborersRequired {
		_, err = tx.Exec(ctx,
			`UPDATE jobs SET status = 'filled', is_listed = FALSE WHERE id = $1`, job.ID)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to mark job filled: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, nil, fmt.Errorf("failed to commit review: %w", err)
	}
	return app, booking, nil
}

func insertBookingSnapshot(ctx context.Context, tx pgx.Tx, job *JobPosting, laborID uuid.UUID) (*Booking, error) {
	booking, err := scanBooking(tx.QueryRow(ctx,
		`INSERT INTO bookings (job_id, labor_id, supervisor_id, job_title, location_name,
		                       job_date, duration_hours, wage_amount, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, 'confirmed')
		 RETURNING `+bookingColumns,
		job.ID, laborID, job.SupervisorID, job.Title, job.LocationName,
		job.RequiredDate, job.DurationHours, job.WageAmount))
	if err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}
	return booking, nil
}
