package eligibility

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/laborlink/internal/db"
)

func TestWeekBounds(t *testing.T) {
	tests := []struct {
		name      string
		date      time.Time
		wantStart time.Time
	}{
		{
			name:      "midweek wednesday",
			date:      time.Date(2026, 1, 14, 15, 30, 0, 0, time.UTC), // Wednesday
			wantStart: time.Date(2026, 1, 12, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "monday maps to itself",
			date:      time.Date(2026, 1, 12, 0, 0, 0, 0, time.UTC),
			wantStart: time.Date(2026, 1, 12, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "sunday belongs to the preceding monday",
			date:      time.Date(2026, 1, 18, 23, 59, 0, 0, time.UTC),
			wantStart: time.Date(2026, 1, 12, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "saturday",
			date:      time.Date(2026, 1, 17, 8, 0, 0, 0, time.UTC),
			wantStart: time.Date(2026, 1, 12, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := WeekBounds(tt.date)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantStart.AddDate(0, 0, 7).Add(-time.Millisecond), end)
			assert.Equal(t, time.Monday, start.Weekday())
		})
	}
}

func TestInWeek(t *testing.T) {
	anchor := time.Date(2026, 1, 14, 12, 0, 0, 0, time.UTC) // Wednesday

	assert.True(t, InWeek(time.Date(2026, 1, 12, 0, 0, 0, 0, time.UTC), anchor), "monday start is inside")
	assert.True(t, InWeek(time.Date(2026, 1, 18, 23, 0, 0, 0, time.UTC), anchor), "sunday evening is inside")
	assert.False(t, InWeek(time.Date(2026, 1, 19, 0, 0, 0, 0, time.UTC), anchor), "next monday is outside")
	assert.False(t, InWeek(time.Date(2026, 1, 11, 23, 0, 0, 0, time.UTC), anchor), "previous sunday is outside")
}

func TestWeeklyHours(t *testing.T) {
	target := time.Date(2026, 1, 14, 0, 0, 0, 0, time.UTC)

	bookings := []db.Booking{
		{JobDate: time.Date(2026, 1, 12, 0, 0, 0, 0, time.UTC), DurationHours: 8, Status: db.BookingStatusConfirmed},
		{JobDate: time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC), DurationHours: 10, Status: db.BookingStatusConfirmed},
		// Cancelled bookings never count toward the cap.
		{JobDate: time.Date(2026, 1, 16, 0, 0, 0, 0, time.UTC), DurationHours: 12, Status: db.BookingStatusCancelled},
		// Next week.
		{JobDate: time.Date(2026, 1, 20, 0, 0, 0, 0, time.UTC), DurationHours: 6, Status: db.BookingStatusConfirmed},
	}

	assert.Equal(t, 18, WeeklyHours(bookings, target))
	assert.Equal(t, 6, WeeklyHours(bookings, time.Date(2026, 1, 20, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 0, WeeklyHours(nil, target))
}
