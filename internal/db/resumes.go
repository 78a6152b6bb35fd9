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

// Resume represents a resume-equivalent profile record. Source is "resume"
// for uploaded files and "chat" for records assembled by the chat intake flow.
type Resume struct {
	ID          uuid.UUID                `json:"id"`
	UserID      uuid.UUID                `json:"user_id"`
	PortfolioID *uuid.UUID               `json:"portfolio_id,omitempty"`
	Title       string                   `json:"title"`
	FileName    string                   `json:"file_name,omitempty"`
	Source      string                   `json:"source"`
	Status      types.Status             `json:"status"`
	Content     *types.StructuredProfile `json:"content,omitempty"`
	RawText     string                   `json:"-"`
	CreatedAt   time.Time                `json:"created_at"`
	UpdatedAt   time.Time                `json:"updated_at"`
}

// CreateResume inserts a new resume record and returns its ID.
func (db *DB) CreateResume(ctx context.Context, r *Resume) (uuid.UUID, error) {
	var contentJSON []byte
	if r.Content != nil {
		var err error
		contentJSON, err = json.Marshal(r.Content)
		if err != nil {
			return uuid.Nil, fmt.Errorf("failed to marshal resume content: %w", err)
		}
	}

	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO resumes (user_id, portfolio_id, title, file_name, source, status, content, raw_text)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id`,
		r.UserID, r.PortfolioID, r.Title, r.FileName, r.Source, r.Status, contentJSON, r.RawText,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create resume: %w", err)
	}
	return id, nil
}

// UpdateResumeContent stores the structured content for a resume and moves it
// to the given status.
func (db *DB) UpdateResumeContent(ctx context.Context, id uuid.UUID, status types.Status, content *types.StructuredProfile) error {
	contentJSON, err := json.Marshal(content)
	if err != nil {
		return fmt.Errorf("failed to marshal resume content: %w", err)
	}
	_, err = db.pool.Exec(ctx,
		`UPDATE resumes SET status = $2, content = $3, updated_at = NOW() WHERE id = $1`,
		id, status, contentJSON,
	)
	if err != nil {
		return fmt.Errorf("failed to update resume content: %w", err)
	}
	return nil
}

// UpdateResumeStatus moves a resume to the given status.
func (db *DB) UpdateResumeStatus(ctx context.Context, id uuid.UUID, status types.Status) error {
	_, err := db.pool.Exec(ctx,
		`UPDATE resumes SET status = $2, updated_at = NOW() WHERE id = $1`,
		id, status,
	)
	if err != nil {
		return fmt.Errorf("failed to update resume status: %w", err)
	}
	return nil
}

// GetResume retrieves a resume by ID. Returns nil when not found.
func (db *DB) GetResume(ctx context.Context, id uuid.UUID) (*Resume, error) {
	var r Resume
	var contentJSON []byte
	err := db.pool.QueryRow(ctx,
		`SELECT id, user_id, portfolio_id, title, COALESCE(file_name, ''), source, status,
		        content, COALESCE(raw_text, ''), created_at, updated_at
		 FROM resumes WHERE id = $1`,
		id,
	).Scan(&r.ID, &r.UserID, &r.PortfolioID, &r.Title, &r.FileName, &r.Source, &r.Status,
		&contentJSON, &r.RawText, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get resume: %w", err)
	}
	if len(contentJSON) > 0 {
		var content types.StructuredProfile
		if err := json.Unmarshal(contentJSON, &content); err == nil {
			r.Content = &content
		}
	}
	return &r, nil
}

// ListResumes retrieves all resumes for a user, most recent first.
func (db *DB) ListResumes(ctx context.Context, userID uuid.UUID) ([]Resume, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, user_id, portfolio_id, title, COALESCE(file_name, ''), source, status,
		        content, created_at, updated_at
		 FROM resumes WHERE user_id = $1 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list resumes: %w", err)
	}
	defer rows.Close()

	var resumes []Resume
	for rows.Next() {
		var r Resume
		var contentJSON []byte
		if err := rows.Scan(&r.ID, &r.UserID, &r.PortfolioID, &r.Title, &r.FileName, &r.Source,
			&r.Status, &contentJSON, &r.CreatedAt, &r.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan resume: %w", err)
		}
		if len(contentJSON) > 0 {
			var content types.StructuredProfile
			if err := json.Unmarshal(contentJSON, &content); err == nil {
				r.Content = &content
			}
		}
		resumes = append(resumes, r)
	}
	return resumes, nil
}

// OptimizedResume represents an LLM-optimized rendition of a resume for a
// specific job description.
type OptimizedResume struct {
	ID               uuid.UUID `json:"id"`
	UserID           uuid.UUID `json:"user_id"`
	ResumeID         uuid.UUID `json:"resume_id"`
	JobDescriptionID uuid.UUID `json:"job_description_id"`
	Content          string    `json:"content"`
	CreatedAt        time.Time `json:"created_at"`
}

// CreateOptimizedResume inserts a new optimized resume and returns it.
func (db *DB) CreateOptimizedResume(ctx context.Context, userID, resumeID, jobDescriptionID uuid.UUID, content string) (*OptimizedResume, error) {
	var o OptimizedResume
	err := db.pool.QueryRow(ctx,
		`INSERT INTO optimized_resumes (user_id, resume_id, job_description_id, content)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, user_id, resume_id, job_description_id, content, created_at`,
		userID, resumeID, jobDescriptionID, content,
	).Scan(&o.ID, &o.UserID, &o.ResumeID, &o.JobDescriptionID, &o.Content, &o.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create optimized resume: %w", err)
	}
	return &o, nil
}
