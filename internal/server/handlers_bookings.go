package server

import (
	"net/http"

	"github.com/jonathan/laborlink/internal/db"
)

// ListBookingsResponse wraps booking ledger reads
type ListBookingsResponse struct {
	Bookings []db.Booking `json:"bookings"`
	Count    int          `json:"count"`
}

// handleListBookings returns the caller's side of the booking ledger:
// workers see their confirmed bookings by job date, supervisors theirs
// by creation time.
func (s *Server) handleListBookings(w http.ResponseWriter, r *http.Request) {
	user, ok := s.currentUser(w, r)
	if !ok {
		return
	}

	var (
		bookings []db.Booking
		err      error
	)
	if user.Role == db.RoleSupervisor {
		bookings, err = s.db.ListSupervisorBookings(r.Context(), user.ID)
	} else {
		bookings, err = s.db.ListWorkerBookings(r.Context(), user.ID)
	}
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, ListBookingsResponse{Bookings: bookings, Count: len(bookings)})
}

// handleCancelBooking cancels a confirmed booking the calling worker owns
func (s *Server) handleCancelBooking(w http.ResponseWriter, r *http.Request) {
	user, ok := s.requireRole(w, r, db.RoleLabor)
	if !ok {
		return
	}

	bookingID, ok := s.pathUUID(w, r, "id")
	if !ok {
		return
	}

	booking, err := s.db.GetBooking(r.Context(), bookingID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if booking == nil {
		s.errorResponse(w, http.StatusNotFound, "Booking not found")
		return
	}
	if booking.LaborID != user.ID {
		s.domainError(w, &ErrForbidden{Reason: "only the booked worker may cancel this booking"})
		return
	}

	if err := s.db.CancelBooking(r.Context(), bookingID); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "cancelled"})
}
