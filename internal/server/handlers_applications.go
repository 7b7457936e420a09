package server

import (
	"encoding/json"
	"net/http"

	"github.com/jonathan/laborlink/internal/db"
	"github.com/jonathan/laborlink/internal/types"
)

// ListApplicationsResponse wraps application listings
type ListApplicationsResponse struct {
	Applications []db.JobApplication `json:"applications"`
	Count        int                 `json:"count"`
}

// handleListApplications returns the calling worker's application history
func (s *Server) handleListApplications(w http.ResponseWriter, r *http.Request) {
	user, ok := s.requireRole(w, r, db.RoleLabor)
	if !ok {
		return
	}

	apps, err := s.db.ListWorkerApplications(r.Context(), user.ID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, ListApplicationsResponse{Applications: apps, Count: len(apps)})
}

// handleListJobApplications returns every application for a posting the
// caller owns
func (s *Server) handleListJobApplications(w http.ResponseWriter, r *http.Request) {
	user, ok := s.requireRole(w, r, db.RoleSupervisor)
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
	if posting.SupervisorID != user.ID {
		s.domainError(w, &ErrForbidden{Reason: "only the posting's supervisor may view its applications"})
		return
	}

	apps, err := s.db.ListJobApplications(r.Context(), jobID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, ListApplicationsResponse{Applications: apps, Count: len(apps)})
}

// handleReviewApplication resolves a pending application. Approval
// claims a slot and writes the booking snapshot; a full posting turns
// the approval into a job-full conflict.
func (s *Server) handleReviewApplication(w http.ResponseWriter, r *http.Request) {
	user, ok := s.requireRole(w, r, db.RoleSupervisor)
	if !ok {
		return
	}

	applicationID, ok := s.pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req types.ReviewApplicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	existing, err := s.db.GetApplication(r.Context(), applicationID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if existing == nil {
		s.errorResponse(w, http.StatusNotFound, "Application not found")
		return
	}
	if existing.SupervisorID != user.ID {
		s.domainError(w, &ErrForbidden{Reason: "only the posting's supervisor may review its applications"})
		return
	}

	approve := req.Status == db.ApplicationStatusConfirmed
	app, booking, err := s.db.ReviewApplication(r.Context(), applicationID, approve)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if approve && app == nil {
		s.errorResponse(w, http.StatusConflict,
			"Sorry, this job has reached its maximum number of applicants.")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"application": app,
		"booking":     booking,
	})
}
