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

// Portfolio represents a generated portfolio site record. Method is "resume"
// or "chat" depending on the profile source that produced it.
type Portfolio struct {
	ID               uuid.UUID                `json:"id"`
	UserID           uuid.UUID                `json:"user_id"`
	Title            string                   `json:"title"`
	Method           string                   `json:"method"`
	Status           types.Status             `json:"status"`
	Content          *types.StructuredProfile `json:"content,omitempty"`
	HTML             string                   `json:"html,omitempty"`
	CSS              string                   `json:"css,omitempty"`
	ResumeID         *uuid.UUID               `json:"resume_id,omitempty"`
	JobDescriptionID *uuid.UUID               `json:"job_description_id,omitempty"`
	CreatedAt        time.Time                `json:"created_at"`
	UpdatedAt        time.Time                `json:"updated_at"`
}

// CreatePortfolio inserts a new portfolio record and returns its ID.
func (db *DB) CreatePortfolio(ctx context.Context, p *Portfolio) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO portfolios (user_id, title, method, status, resume_id, job_description_id)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`,
		p.UserID, p.Title, p.Method, p.Status, p.ResumeID, p.JobDescriptionID,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create portfolio: %w", err)
	}
	return id, nil
}

// CompletePortfolio stores generated content and marks the portfolio completed.
func (db *DB) CompletePortfolio(ctx context.Context, id uuid.UUID, content *types.StructuredProfile, html, css string) error {
	contentJSON, err := json.Marshal(content)
	if err != nil {
		return fmt.Errorf("failed to marshal portfolio content: %w", err)
	}
	_, err = db.pool.Exec(ctx,
		`UPDATE portfolios
		 SET status = $2, content = $3, html = $4, css = $5, updated_at = NOW()
		 WHERE id = $1`,
		id, types.StatusCompleted, contentJSON, html, css,
	)
	if err != nil {
		return fmt.Errorf("failed to complete portfolio: %w", err)
	}
	return nil
}

// FailPortfolio marks a portfolio as failed.
func (db *DB) FailPortfolio(ctx context.Context, id uuid.UUID) error {
	_, err := db.pool.Exec(ctx,
		`UPDATE portfolios SET status = $2, updated_at = NOW() WHERE id = $1`,
		id, types.StatusFailed,
	)
	if err != nil {
		return fmt.Errorf("failed to mark portfolio failed: %w", err)
	}
	return nil
}

// GetPortfolio retrieves a portfolio by ID. Returns nil when not found.
func (db *DB) GetPortfolio(ctx context.Context, id uuid.UUID) (*Portfolio, error) {
	var p Portfolio
	var contentJSON []byte
	err := db.pool.QueryRow(ctx,
		`SELECT id, user_id, title, method, status, content, COALESCE(html, ''), COALESCE(css, ''),
		        resume_id, job_description_id, created_at, updated_at
		 FROM portfolios WHERE id = $1`,
		id,
	).Scan(&p.ID, &p.UserID, &p.Title, &p.Method, &p.Status, &contentJSON, &p.HTML, &p.CSS,
		&p.ResumeID, &p.JobDescriptionID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get portfolio: %w", err)
	}
	if len(contentJSON) > 0 {
		var content types.StructuredProfile
		if err := json.Unmarshal(contentJSON, &content); err == nil {
			p.Content = &content
		}
	}
	return &p, nil
}

// ListPortfolios retrieves all portfolios for a user, most recent first.
// Content, HTML and CSS are omitted; use GetPortfolio for the full record.
func (db *DB) ListPortfolios(ctx context.Context, userID uuid.UUID) ([]Portfolio, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, user_id, title, method, status, resume_id, job_description_id, created_at, updated_at
		 FROM portfolios WHERE user_id = $1 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list portfolios: %w", err)
	}
	defer rows.Close()

	var portfolios []Portfolio
	for rows.Next() {
		var p Portfolio
		if err := rows.Scan(&p.ID, &p.UserID, &p.Title, &p.Method, &p.Status,
			&p.ResumeID, &p.JobDescriptionID, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan portfolio: %w", err)
		}
		portfolios = append(portfolios, p)
	}
	return portfolios, nil
}

// ExportPortfolio retrieves just the html/css payload of a completed
// portfolio. Returns empty strings when the portfolio does not exist.
func (db *DB) ExportPortfolio(ctx context.Context, id uuid.UUID) (html, css string, found bool, err error) {
	err = db.pool.QueryRow(ctx,
		`SELECT COALESCE(html, ''), COALESCE(css, '') FROM portfolios WHERE id = $1`,
		id,
	).Scan(&html, &css)
	if err != nil {
		if err == pgx.ErrNoRows {
			return "", "", false, nil
		}
		return "", "", false, fmt.Errorf("failed to export portfolio: %w", err)
	}
	return html, css, true, nil
}
