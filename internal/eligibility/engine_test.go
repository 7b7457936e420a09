package eligibility

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/laborlink/internal/db"
)

// fakeStore is an in-memory Store for engine tests. capacity is the
// number of ConfirmApply calls that will still succeed; it models the
// guarded increment racing with other workers.
type fakeStore struct {
	existing []db.JobApplication
	bookings []db.Booking
	capacity int

	confirmCalls int
	findErr      error
	listErr      error
	confirmErr   error
}

func (f *fakeStore) FindApplication(_ context.Context, jobID, laborID uuid.UUID) (*db.JobApplication, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	for i := range f.existing {
		if f.existing[i].JobID == jobID && f.existing[i].LaborID == laborID {
			return &f.existing[i], nil
		}
	}
	return nil, nil
}

func (f *fakeStore) ListConfirmedBookingsForWorker(_ context.Context, _ uuid.UUID) ([]db.Booking, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.bookings, nil
}

func (f *fakeStore) ConfirmApply(_ context.Context, jobID, laborID uuid.UUID) (*db.JobApplication, *db.Booking, error) {
	f.confirmCalls++
	if f.confirmErr != nil {
		return nil, nil, f.confirmErr
	}
	if f.capacity <= 0 {
		return nil, nil, nil
	}
	f.capacity--
	app := &db.JobApplication{
		ID:      uuid.New(),
		JobID:   jobID,
		LaborID: laborID,
		Status:  db.ApplicationStatusConfirmed,
	}
	booking := &db.Booking{
		ID:      uuid.New(),
		JobID:   jobID,
		LaborID: laborID,
		Status:  db.BookingStatusConfirmed,
	}
	return app, booking, nil
}

func openJob(requiredDate time.Time, durationHours, required, applied int) *db.JobPosting {
	return &db.JobPosting{
		ID:               uuid.New(),
		SupervisorID:     uuid.New(),
		Title:            "Warehouse shift",
		WageType:         db.WageTypeHourly,
		WageAmount:       70,
		RequiredDate:     requiredDate,
		DurationHours:    durationHours,
		ExpiresAt:        time.Now().Add(24 * time.Hour),
		LaborersRequired: required,
		LaborersApplied:  applied,
		Status:           db.JobStatusOpen,
		IsListed:         true,
	}
}

func confirmedBooking(jobDate time.Time, hours int) db.Booking {
	return db.Booking{
		ID:            uuid.New(),
		JobDate:       jobDate,
		DurationHours: hours,
		Status:        db.BookingStatusConfirmed,
	}
}

func TestTryApply_Success(t *testing.T) {
	store := &fakeStore{capacity: 1}
	engine := New(store)
	job := openJob(time.Date(2026, 1, 14, 0, 0, 0, 0, time.UTC), 8, 3, 0)

	conf, err := engine.TryApply(context.Background(), job, uuid.New())
	require.NoError(t, err)
	require.NotNil(t, conf)
	assert.Equal(t, db.ApplicationStatusConfirmed, conf.Application.Status)
	assert.Equal(t, job.ID, conf.Booking.JobID)
	assert.Equal(t, 8, conf.ProjectedWeeklyHours)
	assert.False(t, conf.NearWeeklyLimit)
}

func TestTryApply_DuplicateApplication(t *testing.T) {
	job := openJob(time.Date(2026, 1, 14, 0, 0, 0, 0, time.UTC), 8, 3, 1)
	laborID := uuid.New()
	store := &fakeStore{
		capacity: 2,
		existing: []db.JobApplication{{JobID: job.ID, LaborID: laborID, Status: db.ApplicationStatusConfirmed}},
	}
	engine := New(store)

	conf, err := engine.TryApply(context.Background(), job, laborID)
	assert.Nil(t, conf)

	var dup *ErrAlreadyApplied
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "You have already applied for this job!", err.Error())
	assert.Zero(t, store.confirmCalls, "duplicate must short-circuit before any write")
}

func TestTryApply_WeeklyLimit(t *testing.T) {
	wednesday := time.Date(2026, 1, 14, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		bookedHours   []int
		jobHours      int
		wantErr       bool
		wantProjected int
		wantNearLimit bool
	}{
		{
			name:          "48 booked plus 5 rejects at 53",
			bookedHours:   []int{12, 12, 12, 12},
			jobHours:      5,
			wantErr:       true,
			wantProjected: 53,
		},
		{
			name:          "40 booked plus 10 lands on the cap and passes",
			bookedHours:   []int{10, 10, 10, 10},
			jobHours:      10,
			wantProjected: 50,
			wantNearLimit: true,
		},
		{
			name:          "44 plus 2 passes just over the advisory threshold",
			bookedHours:   []int{12, 12, 12, 8},
			jobHours:      2,
			wantProjected: 46,
			wantNearLimit: true,
		},
		{
			name:          "light week stays clear of the advisory",
			bookedHours:   []int{8, 8},
			jobHours:      8,
			wantProjected: 24,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeStore{capacity: 1}
			for i, hours := range tt.bookedHours {
				store.bookings = append(store.bookings,
					confirmedBooking(wednesday.AddDate(0, 0, i), hours))
			}
			engine := New(store)
			job := openJob(wednesday, tt.jobHours, 5, 0)

			conf, err := engine.TryApply(context.Background(), job, uuid.New())
			if tt.wantErr {
				var limit *ErrWeeklyLimitExceeded
				require.ErrorAs(t, err, &limit)
				assert.Equal(t, tt.wantProjected, limit.ProjectedHours)
				assert.Zero(t, store.confirmCalls)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantProjected, conf.ProjectedWeeklyHours)
			assert.Equal(t, tt.wantNearLimit, conf.NearWeeklyLimit)
		})
	}
}

func TestTryApply_OtherWeekBookingsIgnored(t *testing.T) {
	wednesday := time.Date(2026, 1, 14, 0, 0, 0, 0, time.UTC)
	store := &fakeStore{
		capacity: 1,
		bookings: []db.Booking{
			// Heavy load, but all of it the week before.
			confirmedBooking(wednesday.AddDate(0, 0, -7), 12),
			confirmedBooking(wednesday.AddDate(0, 0, -8), 12),
			confirmedBooking(wednesday.AddDate(0, 0, -9), 12),
			confirmedBooking(wednesday.AddDate(0, 0, -10), 12),
		},
	}
	engine := New(store)
	job := openJob(wednesday, 10, 2, 0)

	conf, err := engine.TryApply(context.Background(), job, uuid.New())
	require.NoError(t, err)
	assert.Equal(t, 10, conf.ProjectedWeeklyHours)
}

func TestTryApply_JobFull(t *testing.T) {
	store := &fakeStore{capacity: 0}
	engine := New(store)
	job := openJob(time.Date(2026, 1, 14, 0, 0, 0, 0, time.UTC), 8, 2, 2)

	conf, err := engine.TryApply(context.Background(), job, uuid.New())
	assert.Nil(t, conf)

	var full *ErrJobFull
	require.ErrorAs(t, err, &full)
	assert.Zero(t, store.confirmCalls, "full snapshot must not reach the store")
}

func TestTryApply_LosesCapacityRace(t *testing.T) {
	// Snapshot shows a free slot, but the store's guarded increment
	// finds none: another worker took it in between.
	store := &fakeStore{capacity: 0}
	engine := New(store)
	job := openJob(time.Date(2026, 1, 14, 0, 0, 0, 0, time.UTC), 8, 2, 1)

	conf, err := engine.TryApply(context.Background(), job, uuid.New())
	assert.Nil(t, conf)

	var full *ErrJobFull
	require.ErrorAs(t, err, &full)
	assert.Equal(t, 1, store.confirmCalls)
}

func TestTryApply_LastSlotOneWinner(t *testing.T) {
	// Two workers both see the last slot; store capacity lets only one through.
	store := &fakeStore{capacity: 1}
	engine := New(store)
	job := openJob(time.Date(2026, 1, 14, 0, 0, 0, 0, time.UTC), 8, 3, 2)

	first, err := engine.TryApply(context.Background(), job, uuid.New())
	require.NoError(t, err)
	require.NotNil(t, first)

	second, err := engine.TryApply(context.Background(), job, uuid.New())
	assert.Nil(t, second)
	var full *ErrJobFull
	require.ErrorAs(t, err, &full)
}

func TestTryApply_Unavailable(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*db.JobPosting)
	}{
		{"filled", func(j *db.JobPosting) { j.Status = db.JobStatusFilled }},
		{"delisted", func(j *db.JobPosting) { j.Status = db.JobStatusDelisted }},
		{"expired status", func(j *db.JobPosting) { j.Status = db.JobStatusExpired }},
		{"past expiry but still open", func(j *db.JobPosting) { j.ExpiresAt = time.Now().Add(-time.Hour) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeStore{capacity: 1}
			engine := New(store)
			job := openJob(time.Date(2026, 1, 14, 0, 0, 0, 0, time.UTC), 8, 3, 0)
			tt.mutate(job)

			conf, err := engine.TryApply(context.Background(), job, uuid.New())
			assert.Nil(t, conf)
			var unavailable *ErrJobUnavailable
			require.ErrorAs(t, err, &unavailable)
			assert.Zero(t, store.confirmCalls)
		})
	}
}

func TestTryApply_StoreErrors(t *testing.T) {
	boom := errors.New("connection reset")
	job := openJob(time.Date(2026, 1, 14, 0, 0, 0, 0, time.UTC), 8, 3, 0)

	tests := []struct {
		name  string
		store *fakeStore
	}{
		{"find fails", &fakeStore{findErr: boom}},
		{"list fails", &fakeStore{listErr: boom}},
		{"confirm fails", &fakeStore{capacity: 1, confirmErr: boom}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := New(tt.store)
			conf, err := engine.TryApply(context.Background(), job, uuid.New())
			assert.Nil(t, conf)
			require.ErrorIs(t, err, boom)
		})
	}
}
