package api

import (
	"context"
	"errors"
	"net/url"

	"github.com/jonathan/portfolioai/internal/types"
)

// JobDescription mirrors the backend job description record.
type JobDescription struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// SaveJobDescription creates or updates a job description. Pass id as empty
// for the first save; later saves reuse the id the backend handed out.
func (c *Client) SaveJobDescription(ctx context.Context, userID, id, title, content string) (*JobDescription, error) {
	req := &types.SaveJobDescriptionRequest{ID: id, UserID: userID, Title: title, Content: content}
	var jd JobDescription
	if err := c.postJSON(ctx, "save job description", "/api/job-descriptions", req, &jd); err != nil {
		return nil, err
	}
	return &jd, nil
}

// LatestJobDescription fetches the most recent job description for a user.
// Returns nil when the user has none.
func (c *Client) LatestJobDescription(ctx context.Context, userID string) (*JobDescription, error) {
	var jd JobDescription
	err := c.getJSON(ctx, "get latest job description", "/api/job-descriptions/"+url.PathEscape(userID)+"/latest", &jd)
	if err != nil {
		var apiErr *Error
		if errors.As(err, &apiErr) && apiErr.Status == 404 {
			return nil, nil
		}
		return nil, err
	}
	return &jd, nil
}

// UploadResult is the response to a resume upload.
type UploadResult struct {
	ResumeID    string       `json:"resume_id"`
	PortfolioID string       `json:"portfolio_id"`
	Status      types.Status `json:"status"`
}

// UploadResume uploads a resume file; processing continues out of band.
func (c *Client) UploadResume(ctx context.Context, userID, title, fileName string, file []byte) (*UploadResult, error) {
	fields := map[string]string{"user_id": userID, "title": title}
	var res UploadResult
	if err := c.postMultipart(ctx, "upload resume", "/api/portfolios/resume", fields, "file", fileName, file, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// SubmitChatProfile persists a chat-derived structured record as a
// resume-equivalent profile source.
func (c *Client) SubmitChatProfile(ctx context.Context, req *types.ChatProfileRequest) (string, error) {
	var res struct {
		ID string `json:"id"`
	}
	if err := c.postJSON(ctx, "submit chat profile", "/api/resumes/chat", req, &res); err != nil {
		return "", err
	}
	return res.ID, nil
}

// Resume mirrors the backend resume record for list views.
type Resume struct {
	ID          string       `json:"id"`
	UserID      string       `json:"user_id"`
	PortfolioID string       `json:"portfolio_id,omitempty"`
	Title       string       `json:"title"`
	FileName    string       `json:"file_name,omitempty"`
	Source      string       `json:"source"`
	Status      types.Status `json:"status"`
	CreatedAt   string       `json:"created_at"`
}

// ListResumes fetches a user's resumes, most recent first.
func (c *Client) ListResumes(ctx context.Context, userID string) ([]Resume, error) {
	var resumes []Resume
	if err := c.getJSON(ctx, "list resumes", "/api/resumes/"+url.PathEscape(userID), &resumes); err != nil {
		return nil, err
	}
	return resumes, nil
}

// OptimizedResume mirrors the backend optimized resume record.
type OptimizedResume struct {
	ID               string `json:"id"`
	ResumeID         string `json:"resume_id"`
	JobDescriptionID string `json:"job_description_id"`
	Content          string `json:"content"`
	CreatedAt        string `json:"created_at"`
}

// OptimizeResume requests an LLM-optimized rendition of a resume.
func (c *Client) OptimizeResume(ctx context.Context, req *types.OptimizeRequest) (*OptimizedResume, error) {
	var res OptimizedResume
	if err := c.postJSON(ctx, "optimize resume", "/api/resumes/optimize", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Portfolio mirrors the backend portfolio record.
type Portfolio struct {
	ID        string       `json:"id"`
	UserID    string       `json:"user_id"`
	Title     string       `json:"title"`
	Method    string       `json:"method"`
	Status    types.Status `json:"status"`
	HTML      string       `json:"html,omitempty"`
	CSS       string       `json:"css,omitempty"`
	CreatedAt string       `json:"created_at"`
}

// GeneratePortfolio requests portfolio generation for a profile source.
func (c *Client) GeneratePortfolio(ctx context.Context, req *types.GeneratePortfolioRequest) (*Portfolio, error) {
	var res Portfolio
	if err := c.postJSON(ctx, "generate portfolio", "/api/portfolios/generate", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// ListPortfolios fetches a user's portfolios, most recent first.
func (c *Client) ListPortfolios(ctx context.Context, userID string) ([]Portfolio, error) {
	var portfolios []Portfolio
	if err := c.getJSON(ctx, "list portfolios", "/api/users/"+url.PathEscape(userID)+"/portfolios", &portfolios); err != nil {
		return nil, err
	}
	return portfolios, nil
}

// GetPortfolio fetches the full portfolio record.
func (c *Client) GetPortfolio(ctx context.Context, id string) (*Portfolio, error) {
	var p Portfolio
	if err := c.getJSON(ctx, "get portfolio", "/api/portfolios/"+url.PathEscape(id), &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Export is a portfolio export payload.
type Export struct {
	HTML string `json:"html"`
	CSS  string `json:"css"`
}

// ExportPortfolio fetches the html/css payload of a portfolio.
func (c *Client) ExportPortfolio(ctx context.Context, id string) (*Export, error) {
	var e Export
	if err := c.getJSON(ctx, "export portfolio", "/api/portfolios/"+url.PathEscape(id)+"/export", &e); err != nil {
		return nil, err
	}
	return &e, nil
}

// CoverLetter mirrors the backend cover letter record.
type CoverLetter struct {
	ID               string `json:"id"`
	JobDescriptionID string `json:"job_description_id"`
	ResumeID         string `json:"resume_id"`
	Content          string `json:"content"`
	CreatedAt        string `json:"created_at"`
}

// GenerateCoverLetter requests cover letter generation.
func (c *Client) GenerateCoverLetter(ctx context.Context, req *types.GenerateCoverLetterRequest) (*CoverLetter, error) {
	var res CoverLetter
	if err := c.postJSON(ctx, "generate cover letter", "/api/cover-letters/generate", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// ListCoverLetters fetches a user's cover letters, most recent first.
func (c *Client) ListCoverLetters(ctx context.Context, userID string) ([]CoverLetter, error) {
	var letters []CoverLetter
	if err := c.getJSON(ctx, "list cover letters", "/api/cover-letters/"+url.PathEscape(userID), &letters); err != nil {
		return nil, err
	}
	return letters, nil
}

// InterviewSession is the response to starting an interview.
type InterviewSession struct {
	ID        string   `json:"id"`
	Questions []string `json:"questions"`
}

// StartInterview starts a mock interview session.
func (c *Client) StartInterview(ctx context.Context, req *types.StartInterviewRequest) (*InterviewSession, error) {
	var res InterviewSession
	if err := c.postJSON(ctx, "start interview", "/api/interviews/start", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// InterviewTurnKind discriminates interview answer outcomes.
type InterviewTurnKind int

// Interview turn outcomes.
const (
	InterviewTurnNext InterviewTurnKind = iota
	InterviewTurnScored
)

// InterviewTurn is the tagged result of submitting an answer: either the
// next question or, after the final answer, the score.
type InterviewTurn struct {
	Kind         InterviewTurnKind
	NextQuestion string
	Score        int
	Feedback     string
}

// SubmitInterviewAnswer submits one answer; answers must arrive in order.
func (c *Client) SubmitInterviewAnswer(ctx context.Context, req *types.InterviewAnswerRequest) (*InterviewTurn, error) {
	var res struct {
		Status       string `json:"status"`
		NextQuestion string `json:"next_question,omitempty"`
		Score        *int   `json:"score,omitempty"`
		Feedback     string `json:"feedback,omitempty"`
	}
	if err := c.postJSON(ctx, "submit interview answer", "/api/interviews/answer", req, &res); err != nil {
		return nil, err
	}
	if res.Score != nil {
		return &InterviewTurn{Kind: InterviewTurnScored, Score: *res.Score, Feedback: res.Feedback}, nil
	}
	return &InterviewTurn{Kind: InterviewTurnNext, NextQuestion: res.NextQuestion}, nil
}

// Interview mirrors a stored mock interview session.
type Interview struct {
	ID               string       `json:"id"`
	UserID           string       `json:"user_id"`
	JobDescriptionID string       `json:"job_description_id"`
	Questions        []string     `json:"questions"`
	Answers          []string     `json:"answers"`
	Status           types.Status `json:"status"`
	CreatedAt        string       `json:"created_at"`
}

// ListInterviews fetches a user's interview sessions, most recent first.
func (c *Client) ListInterviews(ctx context.Context, userID string) ([]Interview, error) {
	var interviews []Interview
	if err := c.getJSON(ctx, "list interviews", "/api/interviews/"+url.PathEscape(userID), &interviews); err != nil {
		return nil, err
	}
	return interviews, nil
}

// CareerGuide mirrors the backend career guide record.
type CareerGuide struct {
	ID               string `json:"id"`
	JobDescriptionID string `json:"job_description_id"`
	ResumeID         string `json:"resume_id"`
	Content          string `json:"content"`
	CreatedAt        string `json:"created_at"`
}

// GenerateCareerGuide requests career guide generation.
func (c *Client) GenerateCareerGuide(ctx context.Context, req *types.GenerateCareerGuideRequest) (*CareerGuide, error) {
	var res CareerGuide
	if err := c.postJSON(ctx, "generate career guide", "/api/career-guides/generate", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// ListCareerGuides fetches a user's career guides, most recent first.
func (c *Client) ListCareerGuides(ctx context.Context, userID string) ([]CareerGuide, error) {
	var guides []CareerGuide
	if err := c.getJSON(ctx, "list career guides", "/api/career-guides/"+url.PathEscape(userID), &guides); err != nil {
		return nil, err
	}
	return guides, nil
}

// ChatTurnKind discriminates remote chat turn outcomes.
type ChatTurnKind int

// Chat turn outcomes.
const (
	ChatTurnNext ChatTurnKind = iota
	ChatTurnCompleted
)

// ChatTurn is the tagged result of a remote chat exchange: the next question
// text, or completion with the portfolio id.
type ChatTurn struct {
	Kind         ChatTurnKind
	NextQuestion string
	PortfolioID  string
}

// StartChat opens a server-held chat session for portfolio creation.
func (c *Client) StartChat(ctx context.Context, req *types.ChatStartRequest) (*ChatTurn, error) {
	return c.chatTurn(ctx, "start chat", "/api/portfolios/chat/start", req)
}

// AnswerChat submits an answer to the server-held chat session.
func (c *Client) AnswerChat(ctx context.Context, req *types.ChatAnswerRequest) (*ChatTurn, error) {
	return c.chatTurn(ctx, "answer chat", "/api/portfolios/chat/answer", req)
}

func (c *Client) chatTurn(ctx context.Context, op, path string, req any) (*ChatTurn, error) {
	var res struct {
		Status       string `json:"status"`
		NextQuestion string `json:"next_question,omitempty"`
		PortfolioID  string `json:"portfolio_id,omitempty"`
	}
	if err := c.postJSON(ctx, op, path, req, &res); err != nil {
		return nil, err
	}
	if res.Status == "completed" {
		return &ChatTurn{Kind: ChatTurnCompleted, PortfolioID: res.PortfolioID}, nil
	}
	return &ChatTurn{Kind: ChatTurnNext, NextQuestion: res.NextQuestion, PortfolioID: res.PortfolioID}, nil
}

// Register creates a user account and returns the auth response.
func (c *Client) Register(ctx context.Context, req *types.RegisterRequest) (*types.LoginResponse, error) {
	var res types.LoginResponse
	if err := c.postJSON(ctx, "register", "/api/auth/register", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Login authenticates and returns the auth response.
func (c *Client) Login(ctx context.Context, req *types.LoginRequest) (*types.LoginResponse, error) {
	var res types.LoginResponse
	if err := c.postJSON(ctx, "login", "/api/auth/login", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}
