package server

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"github.com/google/uuid"

	"github.com/jonathan/portfolioai/internal/chat"
	"github.com/jonathan/portfolioai/internal/db"
	"github.com/jonathan/portfolioai/internal/schemas"
	"github.com/jonathan/portfolioai/internal/types"
)

// chatRegistry holds live chat intake sessions keyed by portfolio id. The
// question/answer cursor lives here; only the session's existence and its
// current question are persisted.
type chatRegistry struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*chatSession
}

type chatSession struct {
	userID uuid.UUID
	title  string
	intake *chat.Intake
}

func newChatRegistry() *chatRegistry {
	return &chatRegistry{sessions: make(map[uuid.UUID]*chatSession)}
}

func (r *chatRegistry) put(id uuid.UUID, s *chatSession) {
	r.mu.Lock()
	r.sessions[id] = s
	r.mu.Unlock()
}

func (r *chatRegistry) get(id uuid.UUID) *chatSession {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sessions[id]
}

func (r *chatRegistry) remove(id uuid.UUID) {
	r.mu.Lock()
	delete(r.sessions, id)
	r.mu.Unlock()
}

// handleChatStart opens a chat intake session and returns the first
// question.
func (s *Server) handleChatStart(w http.ResponseWriter, r *http.Request) {
	var req types.ChatStartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, validationMessage(err))
		return
	}
	userID, _ := uuid.Parse(req.UserID)

	portfolioID, err := s.db.CreatePortfolio(r.Context(), &db.Portfolio{
		UserID: userID,
		Title:  req.Title,
		Method: "chat",
		Status: types.StatusInProgress,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	intake := chat.NewIntake()
	question, _ := intake.Current()

	if _, err := s.db.CreateChatSession(r.Context(), portfolioID, question); err != nil {
		writeError(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	s.chats.put(portfolioID, &chatSession{userID: userID, title: req.Title, intake: intake})

	writeJSON(w, http.StatusCreated, map[string]any{
		"status":        types.StatusInProgress,
		"portfolio_id":  portfolioID,
		"next_question": question,
	})
}

// handleChatAnswer records one answer. While questions remain it returns the
// next one; on the final answer it persists the assembled profile and starts
// portfolio generation.
func (s *Server) handleChatAnswer(w http.ResponseWriter, r *http.Request) {
	var req types.ChatAnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, validationMessage(err))
		return
	}
	portfolioID, _ := uuid.Parse(req.PortfolioID)

	session := s.chats.get(portfolioID)
	if session == nil {
		writeError(w, http.StatusNotFound, "Chat session not found")
		return
	}

	if err := session.intake.Submit(req.Answer); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if !session.intake.Completed() {
		question, _ := session.intake.Current()
		if err := s.db.UpdateChatSession(r.Context(), portfolioID, question, types.StatusInProgress); err != nil {
			writeError(w, http.StatusInternalServerError, "Database error: "+err.Error())
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"status":        types.StatusInProgress,
			"portfolio_id":  portfolioID,
			"next_question": question,
		})
		return
	}

	profile, err := session.intake.Profile()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if _, err := s.db.CreateResume(r.Context(), &db.Resume{
		UserID:      session.userID,
		PortfolioID: &portfolioID,
		Title:       session.title,
		Source:      "chat",
		Status:      types.StatusCompleted,
		Content:     profile,
	}); err != nil {
		writeError(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if err := s.db.UpdateChatSession(r.Context(), portfolioID, "", types.StatusCompleted); err != nil {
		writeError(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	s.chats.remove(portfolioID)

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), generationTimeout)
		defer cancel()
		s.generatePortfolioContent(ctx, portfolioID, profile)
	}()

	writeJSON(w, http.StatusOK, map[string]any{
		"status":       types.StatusCompleted,
		"portfolio_id": portfolioID,
	})
}

// handleSubmitChatProfile persists a client-assembled structured record as a
// resume-equivalent profile source.
func (s *Server) handleSubmitChatProfile(w http.ResponseWriter, r *http.Request) {
	var req types.ChatProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, validationMessage(err))
		return
	}
	doc, err := json.Marshal(req.Content)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid content payload")
		return
	}
	if err := schemas.ValidateStructuredProfile(doc); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	userID, _ := uuid.Parse(req.UserID)

	id, err := s.db.CreateResume(r.Context(), &db.Resume{
		UserID:  userID,
		Title:   req.Title,
		Source:  "chat",
		Status:  types.StatusCompleted,
		Content: &req.Content,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"id": id})
}
