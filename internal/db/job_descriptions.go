package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// JobDescription represents a job description row.
type JobDescription struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateJobDescription inserts a new job description and returns it.
func (db *DB) CreateJobDescription(ctx context.Context, userID uuid.UUID, title, content string) (*JobDescription, error) {
	var jd JobDescription
	err := db.pool.QueryRow(ctx,
		`INSERT INTO job_descriptions (user_id, title, content)
		 VALUES ($1, $2, $3)
		 RETURNING id, user_id, title, content, created_at, updated_at`,
		userID, title, content,
	).Scan(&jd.ID, &jd.UserID, &jd.Title, &jd.Content, &jd.CreatedAt, &jd.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create job description: %w", err)
	}
	return &jd, nil
}

// UpdateJobDescription updates an existing job description in place. The id
// is stable across edits; a save with an existing id never creates a new row.
func (db *DB) UpdateJobDescription(ctx context.Context, id uuid.UUID, title, content string) (*JobDescription, error) {
	var jd JobDescription
	err := db.pool.QueryRow(ctx,
		`UPDATE job_descriptions
		 SET title = $2, content = $3, updated_at = NOW()
		 WHERE id = $1
		 RETURNING id, user_id, title, content, created_at, updated_at`,
		id, title, content,
	).Scan(&jd.ID, &jd.UserID, &jd.Title, &jd.Content, &jd.CreatedAt, &jd.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update job description: %w", err)
	}
	return &jd, nil
}

// GetJobDescription retrieves a job description by ID. Returns nil when not found.
func (db *DB) GetJobDescription(ctx context.Context, id uuid.UUID) (*JobDescription, error) {
	var jd JobDescription
	err := db.pool.QueryRow(ctx,
		`SELECT id, user_id, title, content, created_at, updated_at
		 FROM job_descriptions WHERE id = $1`,
		id,
	).Scan(&jd.ID, &jd.UserID, &jd.Title, &jd.Content, &jd.CreatedAt, &jd.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get job description: %w", err)
	}
	return &jd, nil
}

// GetLatestJobDescription retrieves the most recently updated job description
// for a user. Returns nil when the user has none.
func (db *DB) GetLatestJobDescription(ctx context.Context, userID uuid.UUID) (*JobDescription, error) {
	var jd JobDescription
	err := db.pool.QueryRow(ctx,
		`SELECT id, user_id, title, content, created_at, updated_at
		 FROM job_descriptions WHERE user_id = $1
		 ORDER BY updated_at DESC LIMIT 1`,
		userID,
	).Scan(&jd.ID, &jd.UserID, &jd.Title, &jd.Content, &jd.CreatedAt, &jd.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get latest job description: %w", err)
	}
	return &jd, nil
}
