package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const bookingColumns = `id, job_id, labor_id, supervisor_id, job_title, location_name,
	        job_date, duration_hours, wage_amount, status, created_at`

func scanBooking(row pgx.Row) (*Booking, error) {
	var b Booking
	err := row.Scan(&b.ID, &b.JobID, &b.LaborID, &b.SupervisorID, &b.JobTitle,
		&b.LocationName, &b.JobDate, &b.DurationHours, &b.WageAmount, &b.Status,
		&b.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// GetBooking retrieves a booking by ID, or nil if it doesn't exist
func (db *DB) GetBooking(ctx context.Context, id uuid.UUID) (*Booking, error) {
	booking, err := scanBooking(db.pool.QueryRow(ctx,
		`SELECT `+bookingColumns+` FROM bookings WHERE id = $1`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	return booking, nil
}

// ListWorkerBookings returns a worker's confirmed bookings by job date,
// newest work day first
func (db *DB) ListWorkerBookings(ctx context.Context, laborID uuid.UUID) ([]Booking, error) {
	return db.listBookings(ctx,
		`SELECT `+bookingColumns+`
		 FROM bookings WHERE labor_id = $1 AND status = 'confirmed'
		 ORDER BY job_date DESC`,
		laborID)
}

// ListSupervisorBookings returns a supervisor's confirmed bookings by
// creation time, newest first
func (db *DB) ListSupervisorBookings(ctx context.Context, supervisorID uuid.UUID) ([]Booking, error) {
	return db.listBookings(ctx,
		`SELECT `+bookingColumns+`
		 FROM bookings WHERE supervisor_id = $1 AND status = 'confirmed'
		 ORDER BY created_at DESC`,
		supervisorID)
}

// ListConfirmedBookingsForWorker returns every confirmed booking for a
// worker with no ordering guarantee. The eligibility engine uses it to
// total hours inside a week window.
func (db *DB) ListConfirmedBookingsForWorker(ctx context.Context, laborID uuid.UUID) ([]Booking, error) {
	return db.listBookings(ctx,
		`SELECT `+bookingColumns+`
		 FROM bookings WHERE labor_id = $1 AND status = 'confirmed'`,
		laborID)
}

func (db *DB) listBookings(ctx context.Context, query string, arg any) ([]Booking, error) {
	rows, err := db.pool.Query(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	defer rows.Close()

	var bookings []Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan booking: %w", err)
		}
		bookings = append(bookings, *booking)
	}
	return bookings, nil
}

// CancelBooking flips a confirmed booking to cancelled. This is the only
// mutation the ledger allows.
func (db *DB) CancelBooking(ctx context.Context, bookingID uuid.UUID) error {
	result, err := db.pool.Exec(ctx,
		`UPDATE bookings SET status = 'cancelled'
		 WHERE id = $1 AND status = 'confirmed'`,
		bookingID)
	if err != nil {
		return fmt.Errorf("failed to cancel booking: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("confirmed booking not found: %s", bookingID)
	}
	return nil
}
