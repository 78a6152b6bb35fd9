package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/portfolioai/internal/types"
)

// InterviewSession represents a mock interview session row. Questions and
// answers are stored as JSON arrays; answers are appended strictly in order.
type InterviewSession struct {
	ID               uuid.UUID    `json:"id"`
	UserID           uuid.UUID    `json:"user_id"`
	JobDescriptionID uuid.UUID    `json:"job_description_id"`
	Questions        []string     `json:"questions"`
	Answers          []string     `json:"answers"`
	Status           types.Status `json:"status"`
	CreatedAt        time.Time    `json:"created_at"`
	UpdatedAt        time.Time    `json:"updated_at"`
}

// InterviewScore represents the LLM-produced score for a completed interview.
type InterviewScore struct {
	ID          uuid.UUID `json:"id"`
	InterviewID uuid.UUID `json:"interview_id"`
	Score       int       `json:"score"`
	Feedback    string    `json:"feedback"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateInterviewSession inserts a new interview session and returns its ID.
func (db *DB) CreateInterviewSession(ctx context.Context, userID, jobDescriptionID uuid.UUID, questions []string) (uuid.UUID, error) {
	questionsJSON, err := json.Marshal(questions)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal questions: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO interview_sessions (user_id, job_description_id, questions, answers, status)
		 VALUES ($1, $2, $3, '[]', $4)
		 RETURNING id`,
		userID, jobDescriptionID, questionsJSON, types.StatusInProgress,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create interview session: %w", err)
	}
	return id, nil
}

// GetInterviewSession retrieves an interview session by ID. Returns nil when not found.
func (db *DB) GetInterviewSession(ctx context.Context, id uuid.UUID) (*InterviewSession, error) {
	var s InterviewSession
	var questionsJSON, answersJSON []byte
	err := db.pool.QueryRow(ctx,
		`SELECT id, user_id, job_description_id, questions, answers, status, created_at, updated_at
		 FROM interview_sessions WHERE id = $1`,
		id,
	).Scan(&s.ID, &s.UserID, &s.JobDescriptionID, &questionsJSON, &answersJSON, &s.Status,
		&s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get interview session: %w", err)
	}
	if err := json.Unmarshal(questionsJSON, &s.Questions); err != nil {
		return nil, fmt.Errorf("failed to unmarshal questions: %w", err)
	}
	if err := json.Unmarshal(answersJSON, &s.Answers); err != nil {
		return nil, fmt.Errorf("failed to unmarshal answers: %w", err)
	}
	return &s, nil
}

// UpdateInterviewAnswers stores the answer list and status for a session.
func (db *DB) UpdateInterviewAnswers(ctx context.Context, id uuid.UUID, answers []string, status types.Status) error {
	answersJSON, err := json.Marshal(answers)
	if err != nil {
		return fmt.Errorf("failed to marshal answers: %w", err)
	}
	_, err = db.pool.Exec(ctx,
		`UPDATE interview_sessions SET answers = $2, status = $3, updated_at = NOW() WHERE id = $1`,
		id, answersJSON, status,
	)
	if err != nil {
		return fmt.Errorf("failed to update interview answers: %w", err)
	}
	return nil
}

// CreateInterviewScore inserts the score for a completed interview.
func (db *DB) CreateInterviewScore(ctx context.Context, interviewID uuid.UUID, score int, feedback string) (*InterviewScore, error) {
	var s InterviewScore
	err := db.pool.QueryRow(ctx,
		`INSERT INTO interview_scores (interview_id, score, feedback)
		 VALUES ($1, $2, $3)
		 RETURNING id, interview_id, score, feedback, created_at`,
		interviewID, score, feedback,
	).Scan(&s.ID, &s.InterviewID, &s.Score, &s.Feedback, &s.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create interview score: %w", err)
	}
	return &s, nil
}

// ListInterviewSessions retrieves all interview sessions for a user, most recent first.
func (db *DB) ListInterviewSessions(ctx context.Context, userID uuid.UUID) ([]InterviewSession, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, user_id, job_description_id, questions, answers, status, created_at, updated_at
		 FROM interview_sessions WHERE user_id = $1 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list interview sessions: %w", err)
	}
	defer rows.Close()

	var sessions []InterviewSession
	for rows.Next() {
		var s InterviewSession
		var questionsJSON, answersJSON []byte
		if err := rows.Scan(&s.ID, &s.UserID, &s.JobDescriptionID, &questionsJSON, &answersJSON,
			&s.Status, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan interview session: %w", err)
		}
		if err := json.Unmarshal(questionsJSON, &s.Questions); err != nil {
			return nil, fmt.Errorf("failed to unmarshal questions: %w", err)
		}
		if err := json.Unmarshal(answersJSON, &s.Answers); err != nil {
			return nil, fmt.Errorf("failed to unmarshal answers: %w", err)
		}
		sessions = append(sessions, s)
	}
	return sessions, nil
}
