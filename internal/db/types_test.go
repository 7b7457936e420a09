package db

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestJobPostingIsExpired(t *testing.T) {
	future := JobPosting{ExpiresAt: time.Now().Add(time.Hour)}
	assert.False(t, future.IsExpired())

	past := JobPosting{ExpiresAt: time.Now().Add(-time.Minute)}
	assert.True(t, past.IsExpired())
}

func TestJobPostingRemainingSlots(t *testing.T) {
	tests := []struct {
		name     string
		required int
		applied  int
		want     int
	}{
		{"untouched posting", 5, 0, 5},
		{"partially filled", 5, 3, 2},
		{"at capacity", 5, 5, 0},
		{"over capacity clamps to zero", 5, 6, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := JobPosting{LaborersRequired: tt.required, LaborersApplied: tt.applied}
			assert.Equal(t, tt.want, p.RemainingSlots())
		})
	}
}
