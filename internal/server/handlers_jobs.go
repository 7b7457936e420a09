package server

import (
	"encoding/json"
	"net/http"

	"github.com/jonathan/laborlink/internal/db"
	"github.com/jonathan/laborlink/internal/types"
)

// ListJobsResponse represents the public feed response
type ListJobsResponse struct {
	Jobs  []db.JobPosting `json:"jobs"`
	Count int             `json:"count"`
}

// handleListJobs returns the public feed of open, listed postings.
// Overdue postings are expired on the way through.
func (s *Server) handleListJobs(w http.ResponseWriter, r *http.Request) {
	jobs, err := s.jobService.ListOpen(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, ListJobsResponse{Jobs: jobs, Count: len(jobs)})
}

// handleGetJob retrieves a posting by ID
func (s *Server) handleGetJob(w http.ResponseWriter, r *http.Request) {
	jobID, ok := s.pathUUID(w, r, "id")
	if !ok {
		return
	}

	posting, err := s.jobService.Get(r.Context(), jobID)
	if err != nil {
		s.domainError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, posting)
}

// handleCreateJob creates a posting for the calling supervisor.
// The wage floor check runs before anything is persisted.
func (s *Server) handleCreateJob(w http.ResponseWriter, r *http.Request) {
	user, ok := s.requireRole(w, r, db.RoleSupervisor)
	if !ok {
		return
	}

	var req types.CreateJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	posting, err := s.jobService.Create(r.Context(), user.ID, &req)
	if err != nil {
		s.domainError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusCreated, posting)
}

// handleListSupervisorJobs lists every posting the caller has created
func (s *Server) handleListSupervisorJobs(w http.ResponseWriter, r *http.Request) {
	user, ok := s.requireRole(w, r, db.RoleSupervisor)
	if !ok {
		return
	}

	jobs, err := s.jobService.ListForSupervisor(r.Context(), user.ID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, ListJobsResponse{Jobs: jobs, Count: len(jobs)})
}

// handleToggleListing flips a posting's feed visibility
func (s *Server) handleToggleListing(w http.ResponseWriter, r *http.Request) {
	user, ok := s.requireRole(w, r, db.RoleSupervisor)
	if !ok {
		return
	}

	jobID, ok := s.pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req types.ToggleListingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	posting, err := s.jobService.ToggleListing(r.Context(), user.ID, jobID, *req.IsListed)
	if err != nil {
		s.domainError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, posting)
}

// handleDeleteJob soft-deletes a posting the caller owns
func (s *Server) handleDeleteJob(w http.ResponseWriter, r *http.Request) {
	user, ok := s.requireRole(w, r, db.RoleSupervisor)
	if !ok {
		return
	}

	jobID, ok := s.pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := s.jobService.Delete(r.Context(), user.ID, jobID); err != nil {
		s.domainError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// handleApply runs the eligibility checks and books a slot for the
// calling worker. Failure messages go to the worker verbatim.
func (s *Server) handleApply(w http.ResponseWriter, r *http.Request) {
	user, ok := s.requireRole(w, r, db.RoleLabor)
	if !ok {
		return
	}

	jobID, ok := s.pathUUID(w, r, "id")
	if !ok {
		return
	}

	posting, err := s.jobService.Get(r.Context(), jobID)
	if err != nil {
		s.domainError(w, err)
		return
	}

	confirmation, err := s.engine.TryApply(r.Context(), posting, user.ID)
	if err != nil {
		s.domainError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusCreated, confirmation)
}
