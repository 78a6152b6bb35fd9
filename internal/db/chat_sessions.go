package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/portfolioai/internal/types"
)

// ChatSession represents a persisted chat intake session. The live
// question/answer cursor is held server-side in memory; the row exists so
// history views can show when a chat-based portfolio was built.
type ChatSession struct {
	ID              uuid.UUID    `json:"id"`
	PortfolioID     uuid.UUID    `json:"portfolio_id"`
	CurrentQuestion string       `json:"current_question"`
	Status          types.Status `json:"status"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
}

// CreateChatSession inserts a new chat session row and returns its ID.
func (db *DB) CreateChatSession(ctx context.Context, portfolioID uuid.UUID, currentQuestion string) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO chat_sessions (portfolio_id, current_question, status)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		portfolioID, currentQuestion, types.StatusInProgress,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create chat session: %w", err)
	}
	return id, nil
}

// UpdateChatSession advances the persisted cursor for a chat session.
func (db *DB) UpdateChatSession(ctx context.Context, portfolioID uuid.UUID, currentQuestion string, status types.Status) error {
	_, err := db.pool.Exec(ctx,
		`UPDATE chat_sessions
		 SET current_question = $2, status = $3, updated_at = NOW()
		 WHERE portfolio_id = $1`,
		portfolioID, currentQuestion, status,
	)
	if err != nil {
		return fmt.Errorf("failed to update chat session: %w", err)
	}
	return nil
}
