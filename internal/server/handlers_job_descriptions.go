package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/portfolioai/internal/types"
)

// handleSaveJobDescription creates or updates a job description. The request
// carries an optional id: absent on first save, present on later saves so
// edits update the same row.
func (s *Server) handleSaveJobDescription(w http.ResponseWriter, r *http.Request) {
	var req types.SaveJobDescriptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, validationMessage(err))
		return
	}
	userID, _ := uuid.Parse(req.UserID)

	if req.ID != "" {
		id, _ := uuid.Parse(req.ID)
		jd, err := s.db.UpdateJobDescription(r.Context(), id, req.Title, req.Content)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Database error: "+err.Error())
			return
		}
		if jd == nil {
			writeError(w, http.StatusNotFound, "Job description not found")
			return
		}
		writeJSON(w, http.StatusOK, jd)
		return
	}

	jd, err := s.db.CreateJobDescription(r.Context(), userID, req.Title, req.Content)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, jd)
}

// handleLatestJobDescription returns the most recent job description for a
// user, or 404 when the user has none.
func (s *Server) handleLatestJobDescription(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(r.PathValue("user_id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid user ID format")
		return
	}

	jd, err := s.db.GetLatestJobDescription(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if jd == nil {
		writeError(w, http.StatusNotFound, "No job descriptions for user")
		return
	}
	writeJSON(w, http.StatusOK, jd)
}
