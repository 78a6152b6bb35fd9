package chat

import (
	"context"
	"fmt"

	"github.com/jonathan/portfolioai/internal/api"
	"github.com/jonathan/portfolioai/internal/types"
)

// Remote drives a server-held chat session. The server owns the question
// script and the completion decision; this side only relays answers and
// tracks the session id.
type Remote struct {
	client      *api.Client
	portfolioID string
	done        bool
}

// NewRemote creates a remote chat session driver.
func NewRemote(client *api.Client) *Remote {
	return &Remote{client: client}
}

// Start opens the session and returns the first question.
func (r *Remote) Start(ctx context.Context, userID, title string) (string, error) {
	turn, err := r.client.StartChat(ctx, &types.ChatStartRequest{UserID: userID, Title: title})
	if err != nil {
		return "", err
	}
	if turn.Kind != api.ChatTurnNext {
		return "", fmt.Errorf("chat session completed before any answer")
	}
	r.portfolioID = turn.PortfolioID
	return turn.NextQuestion, nil
}

// Answer relays one answer. It returns the next question, or ok=false once
// the server signals completion.
func (r *Remote) Answer(ctx context.Context, answer string) (next string, ok bool, err error) {
	if r.done {
		return "", false, ErrCompleted
	}
	if r.portfolioID == "" {
		return "", false, fmt.Errorf("chat session not started")
	}
	turn, err := r.client.AnswerChat(ctx, &types.ChatAnswerRequest{PortfolioID: r.portfolioID, Answer: answer})
	if err != nil {
		return "", false, err
	}
	switch turn.Kind {
	case api.ChatTurnCompleted:
		r.done = true
		return "", false, nil
	case api.ChatTurnNext:
		return turn.NextQuestion, true, nil
	default:
		return "", false, fmt.Errorf("unknown chat turn kind %d", turn.Kind)
	}
}

// PortfolioID returns the server-side session id, available after Start.
func (r *Remote) PortfolioID() string {
	return r.portfolioID
}

// Completed reports whether the server has signalled completion.
func (r *Remote) Completed() bool {
	return r.done
}
