package eligibility

import (
	"time"

	"github.com/jonathan/laborlink/internal/db"
)

// WeekBounds returns the inclusive bounds of the week containing date:
// Monday 00:00:00 through Sunday 23:59:59.999, in date's location.
func WeekBounds(date time.Time) (start, end time.Time) {
	// time.Weekday numbers Sunday 0; shift so Monday opens the week.
	daysSinceMonday := (int(date.Weekday()) + 6) % 7

	y, m, d := date.AddDate(0, 0, -daysSinceMonday).Date()
	start = time.Date(y, m, d, 0, 0, 0, 0, date.Location())
	end = start.AddDate(0, 0, 7).Add(-time.Millisecond)
	return start, end
}

// InWeek reports whether t falls inside the week containing date
func InWeek(t, date time.Time) bool {
	start, end := WeekBounds(date)
	return !t.Before(start) && !t.After(end)
}

// WeeklyHours totals the duration of confirmed bookings whose job date
// falls in the same week as targetDate
func WeeklyHours(bookings []db.Booking, targetDate time.Time) int {
	total := 0
	for _, b := range bookings {
		if b.Status != db.BookingStatusConfirmed {
			continue
		}
		if InWeek(b.JobDate, targetDate) {
			total += b.DurationHours
		}
	}
	return total
}
