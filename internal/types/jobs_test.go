//nolint:revive // types is a standard Go package name pattern
package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validCreateJobRequest() CreateJobRequest {
	return CreateJobRequest{
		Title:            "Warehouse loading crew",
		LocationName:     "Dock 4",
		WageType:         "hourly",
		WageAmount:       75,
		RequiredDate:     time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC),
		DurationHours:    8,
		LaborersRequired: 4,
	}
}

func TestCreateJobRequest_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*CreateJobRequest)
		wantErr bool
	}{
		{
			name:   "valid hourly posting",
			mutate: func(_ *CreateJobRequest) {},
		},
		{
			name:   "valid daily posting",
			mutate: func(r *CreateJobRequest) { r.WageType = "daily"; r.WageAmount = 600 },
		},
		{
			name:    "missing title",
			mutate:  func(r *CreateJobRequest) { r.Title = "" },
			wantErr: true,
		},
		{
			name:    "missing location",
			mutate:  func(r *CreateJobRequest) { r.LocationName = "" },
			wantErr: true,
		},
		{
			name:    "unknown wage type",
			mutate:  func(r *CreateJobRequest) { r.WageType = "weekly" },
			wantErr: true,
		},
		{
			name:    "zero wage",
			mutate:  func(r *CreateJobRequest) { r.WageAmount = 0 },
			wantErr: true,
		},
		{
			name:    "negative wage",
			mutate:  func(r *CreateJobRequest) { r.WageAmount = -10 },
			wantErr: true,
		},
		{
			name:    "missing required date",
			mutate:  func(r *CreateJobRequest) { r.RequiredDate = time.Time{} },
			wantErr: true,
		},
		{
			name:    "zero duration",
			mutate:  func(r *CreateJobRequest) { r.DurationHours = 0 },
			wantErr: true,
		},
		{
			name:    "duration past the shift cap",
			mutate:  func(r *CreateJobRequest) { r.DurationHours = 13 },
			wantErr: true,
		},
		{
			name:   "duration at the shift cap",
			mutate: func(r *CreateJobRequest) { r.DurationHours = 12 },
		},
		{
			name:    "zero laborers required",
			mutate:  func(r *CreateJobRequest) { r.LaborersRequired = 0 },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreateJobRequest()
			tt.mutate(&req)

			err := req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestToggleListingRequest_Validation(t *testing.T) {
	listed := true
	unlist := false

	assert.NoError(t, (&ToggleListingRequest{IsListed: &listed}).Validate())
	// A false pointer is still a present value, not a missing field.
	assert.NoError(t, (&ToggleListingRequest{IsListed: &unlist}).Validate())
	assert.Error(t, (&ToggleListingRequest{}).Validate())
}

func TestReviewApplicationRequest_Validation(t *testing.T) {
	assert.NoError(t, (&ReviewApplicationRequest{Status: "confirmed"}).Validate())
	assert.NoError(t, (&ReviewApplicationRequest{Status: "rejected"}).Validate())
	assert.Error(t, (&ReviewApplicationRequest{Status: "pending"}).Validate())
	assert.Error(t, (&ReviewApplicationRequest{}).Validate())
}
