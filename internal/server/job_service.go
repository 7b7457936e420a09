package server

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jonathan/laborlink/internal/db"
	"github.com/jonathan/laborlink/internal/types"
	"github.com/jonathan/laborlink/internal/wage"
)

// JobService owns the posting lifecycle: creation with the wage floor
// check, the public feed with lazy expiry, listing visibility, and the
// supervisor's soft delete.
type JobService struct {
	db *db.DB
}

// NewJobService creates a new JobService backed by the given database
func NewJobService(database *db.DB) *JobService {
	return &JobService{db: database}
}

// Create validates the posting's wage against the current minimum-wage
// policy and persists it. Rejection is a hard error with the shortfall
// in the message; wages are never silently clamped.
func (s *JobService) Create(ctx context.Context, supervisorID uuid.UUID, req *types.CreateJobRequest) (*db.JobPosting, error) {
	policy, err := s.db.GetRatePolicy(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load rate policy: %w", err)
	}

	if err := wage.Check(req.WageType, req.WageAmount, req.DurationHours, policy.MinWagePerHour); err != nil {
		return nil, err
	}

	posting, err := s.db.CreateJobPosting(ctx, &db.JobPostingCreateInput{
		SupervisorID:     supervisorID,
		Title:            req.Title,
		Company:          req.Company,
		LocationName:     req.LocationName,
		Description:      req.Description,
		WageType:         req.WageType,
		WageAmount:       req.WageAmount,
		RequiredDate:     req.RequiredDate,
		DurationHours:    req.DurationHours,
		LaborersRequired: req.LaborersRequired,
		ExpiresAt:        req.ExpiresAt,
	})
	if err != nil {
		return nil, err
	}
	return posting, nil
}

// ListOpen returns the public feed
func (s *JobService) ListOpen(ctx context.Context) ([]db.JobPosting, error) {
	return s.db.ListOpenJobs(ctx)
}

// Get returns a posting by ID
func (s *JobService) Get(ctx context.Context, jobID uuid.UUID) (*db.JobPosting, error) {
	posting, err := s.db.GetJobPosting(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if posting == nil {
		return nil, &ErrJobNotFound{JobID: jobID}
	}
	return posting, nil
}

// ListForSupervisor returns every posting a supervisor has created
func (s *JobService) ListForSupervisor(ctx context.Context, supervisorID uuid.UUID) ([]db.JobPosting, error) {
	return s.db.ListSupervisorJobs(ctx, supervisorID)
}

// ToggleListing flips feed visibility on a posting the caller owns.
// Delisted postings can't be re-listed.
func (s *JobService) ToggleListing(ctx context.Context, supervisorID, jobID uuid.UUID, listed bool) (*db.JobPosting, error) {
	posting, err := s.Get(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if posting.SupervisorID != supervisorID {
		return nil, &ErrForbidden{Reason: "only the posting's supervisor may change its listing"}
	}
	if posting.Status == db.JobStatusDelisted {
		return nil, &ErrForbidden{Reason: "deleted postings cannot be re-listed"}
	}

	if err := s.db.SetJobListing(ctx, jobID, listed); err != nil {
		return nil, err
	}
	posting.IsListed = listed
	return posting, nil
}

// Delete soft-deletes a posting the caller owns. The record stays so
// existing applications and bookings keep resolving.
func (s *JobService) Delete(ctx context.Context, supervisorID, jobID uuid.UUID) error {
	posting, err := s.Get(ctx, jobID)
	if err != nil {
		return err
	}
	if posting.SupervisorID != supervisorID {
		return &ErrForbidden{Reason: "only the posting's supervisor may delete it"}
	}

	return s.db.DelistJobPosting(ctx, jobID)
}
