package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/portfolioai/internal/db"
	"github.com/jonathan/portfolioai/internal/extract"
	"github.com/jonathan/portfolioai/internal/llm"
	"github.com/jonathan/portfolioai/internal/render"
	"github.com/jonathan/portfolioai/internal/types"
)

// maxUploadBytes caps resume uploads at 10 MB.
const maxUploadBytes = 10 << 20

// errUploadTooLarge marks an upload over maxUploadBytes.
var errUploadTooLarge = errors.New("file exceeds the 10 MB upload limit")

// readUploadFile reads an uploaded file in full. Files over maxUploadBytes
// are rejected, not truncated.
func readUploadFile(file io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes+1))
	if err != nil {
		return nil, err
	}
	if len(data) > maxUploadBytes {
		return nil, errUploadTooLarge
	}
	return data, nil
}

// generationTimeout bounds one background generation run end to end.
const generationTimeout = 5 * time.Minute

// handleUploadResume accepts a multipart resume upload, creates the
// portfolio and resume rows, and kicks off processing in the background.
// The response carries the ids the client polls with.
func (s *Server) handleUploadResume(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid multipart form: "+err.Error())
		return
	}

	userID, err := uuid.Parse(r.FormValue("user_id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid user_id")
		return
	}
	title := r.FormValue("title")
	if title == "" {
		writeError(w, http.StatusBadRequest, "title is required")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "file is required")
		return
	}
	defer func() { _ = file.Close() }()

	data, err := readUploadFile(file)
	if err != nil {
		if errors.Is(err, errUploadTooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to read file: "+err.Error())
		return
	}

	rawText, err := extract.ResumeText(header.Filename, data)
	if err != nil {
		if errors.Is(err, extract.ErrUnsupportedFormat) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusUnprocessableEntity, "Failed to extract text: "+err.Error())
		return
	}

	portfolioID, err := s.db.CreatePortfolio(r.Context(), &db.Portfolio{
		UserID: userID,
		Title:  title,
		Method: "resume",
		Status: types.StatusProcessing,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	resumeID, err := s.db.CreateResume(r.Context(), &db.Resume{
		UserID:      userID,
		PortfolioID: &portfolioID,
		Title:       title,
		FileName:    header.Filename,
		Source:      "resume",
		Status:      types.StatusProcessing,
		RawText:     rawText,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	go s.processUploadedResume(resumeID, portfolioID, rawText)

	writeJSON(w, http.StatusAccepted, map[string]any{
		"resume_id":    resumeID,
		"portfolio_id": portfolioID,
		"status":       types.StatusProcessing,
	})
}

// processUploadedResume runs resume analysis and portfolio generation after
// the upload response has been sent.
func (s *Server) processUploadedResume(resumeID, portfolioID uuid.UUID, rawText string) {
	ctx, cancel := context.WithTimeout(context.Background(), generationTimeout)
	defer cancel()

	profile, err := s.llm.AnalyzeResume(ctx, rawText)
	if err != nil {
		log.Printf("resume %s: analysis failed: %v", resumeID, err)
		if err := s.db.UpdateResumeStatus(ctx, resumeID, types.StatusFailed); err != nil {
			log.Printf("resume %s: failed to record status: %v", resumeID, err)
		}
		if err := s.db.FailPortfolio(ctx, portfolioID); err != nil {
			log.Printf("portfolio %s: failed to record status: %v", portfolioID, err)
		}
		return
	}

	if err := s.db.UpdateResumeContent(ctx, resumeID, types.StatusCompleted, profile); err != nil {
		log.Printf("resume %s: failed to store content: %v", resumeID, err)
	}

	s.generatePortfolioContent(ctx, portfolioID, profile)
}

// generatePortfolioContent produces the narrative sections, renders the
// site, and marks the portfolio completed or failed.
func (s *Server) generatePortfolioContent(ctx context.Context, portfolioID uuid.UUID, profile *types.StructuredProfile) {
	sections, err := s.llm.GenerateSections(ctx, profile)
	if err != nil {
		log.Printf("portfolio %s: section generation failed: %v", portfolioID, err)
		if err := s.db.FailPortfolio(ctx, portfolioID); err != nil {
			log.Printf("portfolio %s: failed to record status: %v", portfolioID, err)
		}
		return
	}

	html, css, err := render.Portfolio(llm.DisplayName(profile), sections.AboutMe, sections.SkillsSummary, profile)
	if err != nil {
		log.Printf("portfolio %s: render failed: %v", portfolioID, err)
		if err := s.db.FailPortfolio(ctx, portfolioID); err != nil {
			log.Printf("portfolio %s: failed to record status: %v", portfolioID, err)
		}
		return
	}

	if err := s.db.CompletePortfolio(ctx, portfolioID, profile, html, css); err != nil {
		log.Printf("portfolio %s: failed to store content: %v", portfolioID, err)
		return
	}
	log.Printf("portfolio %s: generation completed", portfolioID)
}

// handleGeneratePortfolio creates a portfolio from an existing profile
// source. The profile comes from the referenced resume record, or from the
// inline chat_data payload for chat-derived profiles.
func (s *Server) handleGeneratePortfolio(w http.ResponseWriter, r *http.Request) {
	var req types.GeneratePortfolioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	userID, _ := uuid.Parse(req.UserID)
	resumeID, _ := uuid.Parse(req.ResumeID)
	jobDescriptionID, _ := uuid.Parse(req.JobDescriptionID)

	resume, err := s.db.GetResume(r.Context(), resumeID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if resume == nil {
		writeError(w, http.StatusNotFound, "Resume not found")
		return
	}

	profile := req.ChatData
	if profile == nil {
		profile = resume.Content
	}
	if profile == nil {
		writeError(w, http.StatusConflict, "Resume is still processing; no profile content available yet")
		return
	}

	title := req.Title
	if title == "" {
		title = resume.Title
	}

	portfolioID, err := s.db.CreatePortfolio(r.Context(), &db.Portfolio{
		UserID:           userID,
		Title:            title,
		Method:           resume.Source,
		Status:           types.StatusProcessing,
		ResumeID:         &resumeID,
		JobDescriptionID: &jobDescriptionID,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), generationTimeout)
		defer cancel()
		s.generatePortfolioContent(ctx, portfolioID, profile)
	}()

	portfolio, err := s.db.GetPortfolio(r.Context(), portfolioID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	writeJSON(w, http.StatusAccepted, portfolio)
}

// handleGetPortfolio returns the full portfolio record.
func (s *Server) handleGetPortfolio(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid portfolio ID format")
		return
	}

	portfolio, err := s.db.GetPortfolio(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if portfolio == nil {
		writeError(w, http.StatusNotFound, "Portfolio not found")
		return
	}
	writeJSON(w, http.StatusOK, portfolio)
}

// handleListPortfolios returns a user's portfolios, most recent first.
func (s *Server) handleListPortfolios(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(r.PathValue("user_id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid user ID format")
		return
	}

	portfolios, err := s.db.ListPortfolios(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, portfolios)
}

// handleExportPortfolio returns the html/css payload of a completed
// portfolio.
func (s *Server) handleExportPortfolio(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid portfolio ID format")
		return
	}

	html, css, found, err := s.db.ExportPortfolio(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if !found {
		writeError(w, http.StatusNotFound, "Portfolio not found")
		return
	}
	if html == "" {
		writeError(w, http.StatusConflict, "Portfolio has no generated content yet")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"html": html, "css": css})
}
