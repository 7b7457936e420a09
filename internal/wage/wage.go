// Package wage validates posting wages against the minimum-wage policy.
package wage

import (
	"fmt"

	"github.com/jonathan/laborlink/internal/db"
)

// ErrBelowMinimum indicates a posting's wage does not meet the floor.
// The message states the shortfall so the supervisor knows how much to add.
type ErrBelowMinimum struct {
	Required  int64
	Offered   int64
	Shortfall int64
}

func (e *ErrBelowMinimum) Error() string {
	return fmt.Sprintf("Wage is below the legal minimum: offered %d, required at least %d (short by %d).",
		e.Offered, e.Required, e.Shortfall)
}

// RequiredMinimum returns the lowest acceptable wage amount for the
// given terms. An hourly wage must meet the floor directly; a daily
// wage must cover the floor across the stated duration.
func RequiredMinimum(wageType string, durationHours int, minWagePerHour int64) int64 {
	if wageType == db.WageTypeDaily {
		return minWagePerHour * int64(durationHours)
	}
	return minWagePerHour
}

// Check validates a proposed wage. It returns nil when the wage meets
// the floor (boundary inclusive) and *ErrBelowMinimum otherwise.
// The check runs only at posting creation; later policy changes do not
// re-open existing postings.
func Check(wageType string, wageAmount int64, durationHours int, minWagePerHour int64) error {
	required := RequiredMinimum(wageType, durationHours, minWagePerHour)
	if wageAmount < required {
		return &ErrBelowMinimum{
			Required:  required,
			Offered:   wageAmount,
			Shortfall: required - wageAmount,
		}
	}
	return nil
}
