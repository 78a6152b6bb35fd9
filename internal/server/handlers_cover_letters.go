package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/portfolioai/internal/db"
	"github.com/jonathan/portfolioai/internal/types"
)

// loadGenerationInputs fetches the resume and job description a generation
// call references, writing the error response itself when either is missing
// or the resume has no analyzed content yet.
func (s *Server) loadGenerationInputs(w http.ResponseWriter, r *http.Request, resumeID, jobDescriptionID uuid.UUID) (*db.Resume, *db.JobDescription, bool) {
	resume, err := s.db.GetResume(r.Context(), resumeID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return nil, nil, false
	}
	if resume == nil {
		writeError(w, http.StatusNotFound, "Resume not found")
		return nil, nil, false
	}
	if resume.Content == nil {
		writeError(w, http.StatusConflict, "Resume is still processing; no profile content available yet")
		return nil, nil, false
	}

	jd, err := s.db.GetJobDescription(r.Context(), jobDescriptionID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return nil, nil, false
	}
	if jd == nil {
		writeError(w, http.StatusNotFound, "Job description not found")
		return nil, nil, false
	}
	return resume, jd, true
}

// handleGenerateCoverLetter produces a cover letter for a resume and job
// description pair.
func (s *Server) handleGenerateCoverLetter(w http.ResponseWriter, r *http.Request) {
	var req types.GenerateCoverLetterRequest
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

	content, err := s.llm.CoverLetter(r.Context(), resume.Content, jd.Title, jd.Content)
	if err != nil {
		writeError(w, http.StatusBadGateway, "Cover letter generation failed: "+err.Error())
		return
	}

	letter, err := s.db.CreateCoverLetter(r.Context(), userID, jobDescriptionID, resumeID, content)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, letter)
}

// handleListCoverLetters returns a user's cover letters, most recent first.
func (s *Server) handleListCoverLetters(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(r.PathValue("user_id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid user ID format")
		return
	}

	letters, err := s.db.ListCoverLetters(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, letters)
}
