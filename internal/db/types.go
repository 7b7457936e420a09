package db

import (
	"time"

	"github.com/google/uuid"
)

// DefaultPostingLifetime is how long a posting stays live when the
// supervisor doesn't pick an expiry.
const DefaultPostingLifetime = 7 * 24 * time.Hour

// MaxShiftHours caps a single posting's duration (worker-safety policy).
const MaxShiftHours = 12

// DefaultMinWagePerHour is the fallback hourly floor used when the
// rate_policy table has not been seeded yet.
const DefaultMinWagePerHour = 60

// Job status constants
const (
	JobStatusOpen     = "open"
	JobStatusFilled   = "filled"
	JobStatusExpired  = "expired"
	JobStatusDelisted = "delisted"
)

// Wage type constants
const (
	WageTypeHourly = "hourly"
	WageTypeDaily  = "daily"
)

// Application status constants
const (
	ApplicationStatusPending   = "pending"
	ApplicationStatusConfirmed = "confirmed"
	ApplicationStatusRejected  = "rejected"
)

// Booking status constants
const (
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

// User role constants
const (
	RoleLabor      = "labor"
	RoleSupervisor = "supervisor"
)

// JobPosting represents a supervisor's published job opportunity
type JobPosting struct {
	ID           uuid.UUID `json:"id"`
	SupervisorID uuid.UUID `json:"supervisor_id"`
	Title        string    `json:"title"`
	Company      string    `json:"company,omitempty"`
	LocationName string    `json:"location_name"`
	Description  string    `json:"description"`

	// Wage terms
	WageType   string `json:"wage_type"` // 'hourly' or 'daily'
	WageAmount int64  `json:"wage_amount"`

	// Schedule
	RequiredDate  time.Time `json:"required_date"`
	DurationHours int       `json:"duration_hours"`
	ExpiresAt     time.Time `json:"expires_at"`

	// Capacity: LaborersApplied never exceeds LaborersRequired
	LaborersRequired int `json:"laborers_required"`
	LaborersApplied  int `json:"laborers_applied"`

	Status    string    `json:"status"`
	IsListed  bool      `json:"is_listed"`
	CreatedAt time.Time `json:"created_at"`
}

// IsExpired reports whether the posting is past its expiry time
func (p *JobPosting) IsExpired() bool {
	return !time.Now().Before(p.ExpiresAt)
}

// RemainingSlots returns how many workers the posting can still accept
func (p *JobPosting) RemainingSlots() int {
	remaining := p.LaborersRequired - p.LaborersApplied
	if remaining < 0 {
		return 0
	}
	return remaining
}

// JobApplication represents a worker's request to fill one slot of a posting
type JobApplication struct {
	ID           uuid.UUID `json:"id"`
	JobID        uuid.UUID `json:"job_id"`
	LaborID      uuid.UUID `json:"labor_id"`
	SupervisorID uuid.UUID `json:"supervisor_id"`
	Status       string    `json:"status"` // 'pending', 'confirmed', 'rejected'
	AppliedAt    time.Time `json:"applied_at"`
}

// Booking is a confirmed work assignment. Fields are snapshotted from the
// posting at confirmation time so history stays readable even if the
// posting is later deleted or edited.
type Booking struct {
	ID           uuid.UUID `json:"id"`
	JobID        uuid.UUID `json:"job_id"`
	LaborID      uuid.UUID `json:"labor_id"`
	SupervisorID uuid.UUID `json:"supervisor_id"`

	JobTitle      string    `json:"job_title"`
	LocationName  string    `json:"location_name"`
	JobDate       time.Time `json:"job_date"`
	DurationHours int       `json:"duration_hours"`
	WageAmount    int64     `json:"wage_amount"`

	Status    string    `json:"status"` // 'confirmed' or 'cancelled'
	CreatedAt time.Time `json:"created_at"`
}

// RatePolicy is the singleton minimum-wage record
type RatePolicy struct {
	MinWagePerHour int64     `json:"min_wage_per_hour"`
	LastUpdated    time.Time `json:"last_updated"`
}

// User represents a worker or supervisor profile
type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone,omitempty"`
	Role         string    `json:"role"` // 'labor' or 'supervisor'
	PasswordHash string    `json:"-"`    // Never serialize to JSON
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
