package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/portfolioai/internal/types"
)

// handleListResumes returns a user's resume-equivalent profile records, most
// recent first.
func (s *Server) handleListResumes(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(r.PathValue("user_id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid user ID format")
		return
	}

	resumes, err := s.db.ListResumes(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, resumes)
}

// handleOptimizeResume rewrites a resume against a job description and
// stores the result.
func (s *Server) handleOptimizeResume(w http.ResponseWriter, r *http.Request) {
	var req types.OptimizeRequest
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

	content, err := s.llm.Optimize(r.Context(), resume.Content, jd.Title, jd.Content)
	if err != nil {
		writeError(w, http.StatusBadGateway, "Optimization failed: "+err.Error())
		return
	}

	optimized, err := s.db.CreateOptimizedResume(r.Context(), userID, resumeID, jobDescriptionID, content)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, optimized)
}
