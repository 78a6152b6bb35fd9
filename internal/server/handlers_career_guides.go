package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/portfolioai/internal/types"
)

// handleGenerateCareerGuide produces a career guide for a resume and job
// description pair.
func (s *Server) handleGenerateCareerGuide(w http.ResponseWriter, r *http.Request) {
	var req types.GenerateCareerGuideRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, validationMessage(err))
		return
	}
	userID, _ := uuid.Parse(req.UserID)
	resumeID, _ := uuid.Parse(req.ResumeID)
	jobDescriptionID, _ := uuid.Parse(req.JobDescriptionID)

	resume, jd, ok := s.loadGenerationInputs(w, r, resumeID, jobDescriptionID)
	if !ok {
		return
	}

	content, err := s.llm.CareerGuide(r.Context(), resume.Content, jd.Title, jd.Content)
	if err != nil {
		writeError(w, http.StatusBadGateway, "Career guide generation failed: "+err.Error())
		return
	}

	guide, err := s.db.CreateCareerGuide(r.Context(), userID, jobDescriptionID, resumeID, content)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, guide)
}

// handleListCareerGuides returns a user's career guides, most recent first.
func (s *Server) handleListCareerGuides(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(r.PathValue("user_id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid user ID format")
		return
	}

	guides, err := s.db.ListCareerGuides(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, guides)
}
