// Package eligibility decides whether a worker may be matched to a job
// slot and executes the booking when they may.
package eligibility

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jonathan/laborlink/internal/db"
)

// WeeklyHourCap is the enforced ceiling on a worker's confirmed hours
// within any single week.
const WeeklyHourCap = 50

// WeeklyHourAdvisory is the soft threshold above which a confirmation
// carries a warning flag. It never blocks a booking.
const WeeklyHourAdvisory = 45

// Store is the storage surface the engine consumes
type Store interface {
	FindApplication(ctx context.Context, jobID, laborID uuid.UUID) (*db.JobApplication, error)
	ListConfirmedBookingsForWorker(ctx context.Context, laborID uuid.UUID) ([]db.Booking, error)

	// ConfirmApply commits the application, booking, and capacity
	// increment as one transaction. All-nil means capacity was gone.
	ConfirmApply(ctx context.Context, jobID, laborID uuid.UUID) (*db.JobApplication, *db.Booking, error)
}

// Confirmation is the result of a successful application
type Confirmation struct {
	Application *db.JobApplication `json:"application"`
	Booking     *db.Booking        `json:"booking"`

	// ProjectedWeeklyHours is the worker's confirmed hours for the
	// booking's week, this booking included.
	ProjectedWeeklyHours int `json:"projected_weekly_hours"`

	// NearWeeklyLimit is set when the projected total passes the
	// advisory threshold. Callers may warn; the booking stands.
	NearWeeklyLimit bool `json:"near_weekly_limit"`
}

// Engine runs the application eligibility checks
type Engine struct {
	store Store
}

// New creates an eligibility engine backed by the given store
func New(store Store) *Engine {
	return &Engine{store: store}
}

// TryApply decides whether the worker may take a slot on the posting
// and, when they may, books it.
//
// Checks run in order and short-circuit: duplicate application, weekly
// safety cap, capacity. Failures come back as typed errors whose
// messages are shown to the worker verbatim. Retrying after a success
// is safe: the duplicate check answers AlreadyApplied and nothing is
// written twice.
func (e *Engine) TryApply(ctx context.Context, job *db.JobPosting, laborID uuid.UUID) (*Confirmation, error) {
	if job.Status != db.JobStatusOpen || job.IsExpired() {
		return nil, &ErrJobUnavailable{Status: job.Status}
	}

	existing, err := e.store.FindApplication(ctx, job.ID, laborID)
	if err != nil {
		return nil, fmt.Errorf("failed to check for existing application: %w", err)
	}
	if existing != nil {
		return nil, &ErrAlreadyApplied{}
	}

	bookings, err := e.store.ListConfirmedBookingsForWorker(ctx, laborID)
	if err != nil {
		return nil, fmt.Errorf("failed to load worker bookings: %w", err)
	}
	projected := WeeklyHours(bookings, job.RequiredDate) + job.DurationHours
	if projected > WeeklyHourCap {
		return nil, &ErrWeeklyLimitExceeded{ProjectedHours: projected}
	}

	// Cheap pre-check on the caller's snapshot. The store re-checks
	// under its transaction, so a stale snapshot can't over-book.
	if job.LaborersApplied >= job.LaborersRequired {
		return nil, &ErrJobFull{}
	}

	app, booking, err := e.store.ConfirmApply(ctx, job.ID, laborID)
	if err != nil {
		return nil, fmt.Errorf("failed to book job: %w", err)
	}
	if app == nil {
		// Lost the race for the last slot.
		return nil, &ErrJobFull{}
	}

	return &Confirmation{
		Application:          app,
		Booking:              booking,
		ProjectedWeeklyHours: projected,
		NearWeeklyLimit:      projected > WeeklyHourAdvisory,
	}, nil
}
