package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/portfolioai/internal/types"
)

// handleStartInterview creates a mock interview session with LLM-generated
// questions for the job description.
func (s *Server) handleStartInterview(w http.ResponseWriter, r *http.Request) {
	var req types.StartInterviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, validationMessage(err))
		return
	}
	userID, _ := uuid.Parse(req.UserID)
	jobDescriptionID, _ := uuid.Parse(req.JobDescriptionID)

	jd, err := s.db.GetJobDescription(r.Context(), jobDescriptionID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if jd == nil {
		writeError(w, http.StatusNotFound, "Job description not found")
		return
	}

	questions, err := s.llm.InterviewQuestions(r.Context(), jd.Title, jd.Content)
	if err != nil {
		writeError(w, http.StatusBadGateway, "Question generation failed: "+err.Error())
		return
	}

	id, err := s.db.CreateInterviewSession(r.Context(), userID, jobDescriptionID, questions)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"id":        id,
		"questions": questions,
	})
}

// handleInterviewAnswer records one answer. Answers must arrive strictly in
// order; the final answer triggers scoring.
func (s *Server) handleInterviewAnswer(w http.ResponseWriter, r *http.Request) {
	var req types.InterviewAnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, validationMessage(err))
		return
	}
	interviewID, _ := uuid.Parse(req.InterviewID)

	session, err := s.db.GetInterviewSession(r.Context(), interviewID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if session == nil {
		writeError(w, http.StatusNotFound, "Interview session not found")
		return
	}
	if session.Status.Terminal() {
		writeError(w, http.StatusConflict, "Interview already completed")
		return
	}
	if req.QuestionIndex != len(session.Answers) {
		writeError(w, http.StatusConflict,
			fmt.Sprintf("expected answer for question %d, got %d", len(session.Answers), req.QuestionIndex))
		return
	}
	if req.QuestionIndex >= len(session.Questions) {
		writeError(w, http.StatusConflict, "All questions already answered")
		return
	}

	answers := append(session.Answers, req.Answer)

	if len(answers) < len(session.Questions) {
		if err := s.db.UpdateInterviewAnswers(r.Context(), interviewID, answers, types.StatusInProgress); err != nil {
			writeError(w, http.StatusInternalServerError, "Database error: "+err.Error())
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"status":        types.StatusInProgress,
			"next_question": session.Questions[len(answers)],
		})
		return
	}

	// Final answer: score the full transcript.
	if err := s.db.UpdateInterviewAnswers(r.Context(), interviewID, answers, types.StatusCompleted); err != nil {
		writeError(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	jd, err := s.db.GetJobDescription(r.Context(), session.JobDescriptionID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	jobTitle := ""
	if jd != nil {
		jobTitle = jd.Title
	}

	result, err := s.llm.ScoreInterview(r.Context(), jobTitle, session.Questions, answers)
	if err != nil {
		writeError(w, http.StatusBadGateway, "Scoring failed: "+err.Error())
		return
	}

	if _, err := s.db.CreateInterviewScore(r.Context(), interviewID, result.Score, result.Feedback); err != nil {
		writeError(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status":   types.StatusCompleted,
		"score":    result.Score,
		"feedback": result.Feedback,
	})
}

// handleListInterviews returns a user's interview sessions, most recent
// first.
func (s *Server) handleListInterviews(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(r.PathValue("user_id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid user ID format")
		return
	}

	sessions, err := s.db.ListInterviewSessions(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, sessions)
}
