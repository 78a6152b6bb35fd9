package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CoverLetter represents a generated cover letter row.
type CoverLetter struct {
	ID               uuid.UUID `json:"id"`
	UserID           uuid.UUID `json:"user_id"`
	JobDescriptionID uuid.UUID `json:"job_description_id"`
	ResumeID         uuid.UUID `json:"resume_id"`
	Content          string    `json:"content"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// CreateCoverLetter inserts a new cover letter and returns it.
func (db *DB) CreateCoverLetter(ctx context.Context, userID, jobDescriptionID, resumeID uuid.UUID, content string) (*CoverLetter, error) {
	var cl CoverLetter
	err := db.pool.QueryRow(ctx,
		`INSERT INTO cover_letters (user_id, job_description_id, resume_id, content)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, user_id, job_description_id, resume_id, content, created_at, updated_at`,
		userID, jobDescriptionID, resumeID, content,
	).Scan(&cl.ID, &cl.UserID, &cl.JobDescriptionID, &cl.ResumeID, &cl.Content, &cl.CreatedAt, &cl.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create cover letter: %w", err)
	}
	return &cl, nil
}

// GetCoverLetter retrieves a cover letter by ID. Returns nil when not found.
func (db *DB) GetCoverLetter(ctx context.Context, id uuid.UUID) (*CoverLetter, error) {
	var cl CoverLetter
	err := db.pool.QueryRow(ctx,
		`SELECT id, user_id, job_description_id, resume_id, content, created_at, updated_at
		 FROM cover_letters WHERE id = $1`,
		id,
	).Scan(&cl.ID, &cl.UserID, &cl.JobDescriptionID, &cl.ResumeID, &cl.Content, &cl.CreatedAt, &cl.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get cover letter: %w", err)
	}
	return &cl, nil
}

// ListCoverLetters retrieves all cover letters for a user, most recent first.
func (db *DB) ListCoverLetters(ctx context.Context, userID uuid.UUID) ([]CoverLetter, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, user_id, job_description_id, resume_id, content, created_at, updated_at
		 FROM cover_letters WHERE user_id = $1 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list cover letters: %w", err)
	}
	defer rows.Close()

	var letters []CoverLetter
	for rows.Next() {
		var cl CoverLetter
		if err := rows.Scan(&cl.ID, &cl.UserID, &cl.JobDescriptionID, &cl.ResumeID, &cl.Content,
			&cl.CreatedAt, &cl.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan cover letter: %w", err)
		}
		letters = append(letters, cl)
	}
	return letters, nil
}
