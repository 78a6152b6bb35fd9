package workflow

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/jonathan/portfolioai/internal/api"
	"github.com/jonathan/portfolioai/internal/render"
	"github.com/jonathan/portfolioai/internal/types"
)

// History fetches previously generated artifacts and drives the per-row
// view, export, and regenerate operations. Lists come back most recent
// first from the backend; Latest* recomputes the maximum by creation time
// rather than trusting the order.
type History struct {
	client *api.Client

	mu       sync.Mutex
	inFlight map[string]bool
}

// NewHistory creates a history viewer over the backend client.
func NewHistory(client *api.Client) *History {
	return &History{client: client, inFlight: make(map[string]bool)}
}

// Portfolios lists a user's portfolios.
func (h *History) Portfolios(ctx context.Context, userID string) ([]api.Portfolio, error) {
	return h.client.ListPortfolios(ctx, userID)
}

// LatestPortfolio returns the most recently created portfolio, or nil when
// the user has none.
func (h *History) LatestPortfolio(ctx context.Context, userID string) (*api.Portfolio, error) {
	portfolios, err := h.client.ListPortfolios(ctx, userID)
	if err != nil {
		return nil, err
	}
	idx := latestIndex(len(portfolios), func(i int) string { return portfolios[i].CreatedAt })
	if idx < 0 {
		return nil, nil
	}
	return &portfolios[idx], nil
}

// Resumes lists a user's resume-equivalent profile records.
func (h *History) Resumes(ctx context.Context, userID string) ([]api.Resume, error) {
	return h.client.ListResumes(ctx, userID)
}

// CoverLetters lists a user's cover letters.
func (h *History) CoverLetters(ctx context.Context, userID string) ([]api.CoverLetter, error) {
	return h.client.ListCoverLetters(ctx, userID)
}

// Interviews lists a user's mock interview sessions.
func (h *History) Interviews(ctx context.Context, userID string) ([]api.Interview, error) {
	return h.client.ListInterviews(ctx, userID)
}

// CareerGuides lists a user's career guides.
func (h *History) CareerGuides(ctx context.Context, userID string) ([]api.CareerGuide, error) {
	return h.client.ListCareerGuides(ctx, userID)
}

// ExportPortfolio fetches a portfolio's export payload, inlines the
// stylesheet into the markup, and writes a single self-contained HTML file
// under dir. It returns the written path.
func (h *History) ExportPortfolio(ctx context.Context, id, dir string) (string, error) {
	export, err := h.client.ExportPortfolio(ctx, id)
	if err != nil {
		return "", err
	}
	html, err := render.InlineCSS(export.HTML, export.CSS)
	if err != nil {
		return "", fmt.Errorf("inline stylesheet: %w", err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, "portfolio-"+id+".html")
	if err := os.WriteFile(path, []byte(html), 0o644); err != nil {
		return "", err
	}
	return path, nil
}

// RegeneratePortfolio re-issues the generation call with the row's original
// linkage ids. The backend creates a new row; the original is kept as
// history. At most one regeneration per row may be in flight.
func (h *History) RegeneratePortfolio(ctx context.Context, row api.Portfolio, resumeID, jobDescriptionID string) (*api.Portfolio, error) {
	release, err := h.acquire(row.ID)
	if err != nil {
		return nil, err
	}
	defer release()
	return h.client.GeneratePortfolio(ctx, &types.GeneratePortfolioRequest{
		UserID:           row.UserID,
		Title:            row.Title,
		ResumeID:         resumeID,
		JobDescriptionID: jobDescriptionID,
	})
}

// RegenerateCoverLetter re-issues cover letter generation for a row.
func (h *History) RegenerateCoverLetter(ctx context.Context, userID string, row api.CoverLetter) (*api.CoverLetter, error) {
	release, err := h.acquire(row.ID)
	if err != nil {
		return nil, err
	}
	defer release()
	return h.client.GenerateCoverLetter(ctx, &types.GenerateCoverLetterRequest{
		UserID:           userID,
		JobDescriptionID: row.JobDescriptionID,
		ResumeID:         row.ResumeID,
	})
}

// RegenerateCareerGuide re-issues career guide generation for a row.
func (h *History) RegenerateCareerGuide(ctx context.Context, userID string, row api.CareerGuide) (*api.CareerGuide, error) {
	release, err := h.acquire(row.ID)
	if err != nil {
		return nil, err
	}
	defer release()
	return h.client.GenerateCareerGuide(ctx, &types.GenerateCareerGuideRequest{
		UserID:           userID,
		JobDescriptionID: row.JobDescriptionID,
		ResumeID:         row.ResumeID,
	})
}

// acquire marks a row's regeneration as in flight and returns the release.
func (h *History) acquire(rowID string) (func(), error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.inFlight[rowID] {
		return nil, fmt.Errorf("row %s: %w", rowID, ErrActionInFlight)
	}
	h.inFlight[rowID] = true
	return func() {
		h.mu.Lock()
		delete(h.inFlight, rowID)
		h.mu.Unlock()
	}, nil
}

// latestIndex returns the index with the maximum creation timestamp, or -1
// for an empty list. Timestamps that fail to parse sort last.
func latestIndex(n int, createdAt func(i int) string) int {
	best := -1
	var bestTime time.Time
	for i := 0; i < n; i++ {
		t, err := time.Parse(time.RFC3339, createdAt(i))
		if err != nil {
			continue
		}
		if best == -1 || t.After(bestTime) {
			best = i
			bestTime = t
		}
	}
	if best == -1 && n > 0 {
		return 0
	}
	return best
}
