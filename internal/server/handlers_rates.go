package server

import "net/http"

// handleGetRates exposes the current minimum-wage policy for the
// wage-fairness display
func (s *Server) handleGetRates(w http.ResponseWriter, r *http.Request) {
	policy, err := s.db.GetRatePolicy(r.Context())
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, policy)
}
