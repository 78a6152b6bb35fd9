package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CareerGuide represents a generated career guide row.
type CareerGuide struct {
	ID               uuid.UUID `json:"id"`
	UserID           uuid.UUID `json:"user_id"`
	JobDescriptionID uuid.UUID `json:"job_description_id"`
	ResumeID         uuid.UUID `json:"resume_id"`
	Content          string    `json:"content"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// CreateCareerGuide inserts a new career guide and returns it.
func (db *DB) CreateCareerGuide(ctx context.Context, userID, jobDescriptionID, resumeID uuid.UUID, content string) (*CareerGuide, error) {
	var cg CareerGuide
	err := db.pool.QueryRow(ctx,
		`INSERT INTO career_guides (user_id, job_description_id, resume_id, content)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, user_id, job_description_id, resume_id, content, created_at, updated_at`,
		userID, jobDescriptionID, resumeID, content,
	).Scan(&cg.ID, &cg.UserID, &cg.JobDescriptionID, &cg.ResumeID, &cg.Content, &cg.CreatedAt, &cg.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create career guide: %w", err)
	}
	return &cg, nil
}

// GetCareerGuide retrieves a career guide by ID. Returns nil when not found.
func (db *DB) GetCareerGuide(ctx context.Context, id uuid.UUID) (*CareerGuide, error) {
	var cg CareerGuide
	err := db.pool.QueryRow(ctx,
		`SELECT id, user_id, job_description_id, resume_id, content, created_at, updated_at
		 FROM career_guides WHERE id = $1`,
		id,
	).Scan(&cg.ID, &cg.UserID, &cg.JobDescriptionID, &cg.ResumeID, &cg.Content, &cg.CreatedAt, &cg.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get career guide: %w", err)
	}
	return &cg, nil
}

// ListCareerGuides retrieves all career guides for a user, most recent first.
func (db *DB) ListCareerGuides(ctx context.Context, userID uuid.UUID) ([]CareerGuide, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, user_id, job_description_id, resume_id, content, created_at, updated_at
		 FROM career_guides WHERE user_id = $1 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list career guides: %w", err)
	}
	defer rows.Close()

	var guides []CareerGuide
	for rows.Next() {
		var cg CareerGuide
		if err := rows.Scan(&cg.ID, &cg.UserID, &cg.JobDescriptionID, &cg.ResumeID, &cg.Content,
			&cg.CreatedAt, &cg.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan career guide: %w", err)
		}
		guides = append(guides, cg)
	}
	return guides, nil
}
