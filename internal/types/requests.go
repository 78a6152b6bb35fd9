package types

import (
	"github.com/go-playground/validator/v10"
)

// SaveJobDescriptionRequest is the body for POST /api/job-descriptions. ID is
// empty on the first save; later saves carry the id the backend handed out so
// edits update the same row.
type SaveJobDescriptionRequest struct {
	ID      string `json:"id,omitempty" validate:"omitempty,uuid"`
	UserID  string `json:"user_id" validate:"required,uuid"`
	Title   string `json:"title" validate:"required,min=1"`
	Content string `json:"content" validate:"required,min=1"`
}

// ChatProfileRequest is the body for POST /api/resumes/chat. Content carries
// the structured record assembled by the chat intake flow.
type ChatProfileRequest struct {
	UserID  string            `json:"user_id" validate:"required,uuid"`
	Title   string            `json:"title" validate:"required,min=1"`
	Content StructuredProfile `json:"content"`
}

// OptimizeRequest is the body for POST /api/resumes/optimize.
type OptimizeRequest struct {
	UserID           string `json:"user_id" validate:"required,uuid"`
	JobDescriptionID string `json:"job_description_id" validate:"required,uuid"`
	ResumeID         string `json:"resume_id" validate:"required,uuid"`
}

// GeneratePortfolioRequest is the body for POST /api/portfolios/generate.
// ChatData is set when the profile source is the chat flow.
type GeneratePortfolioRequest struct {
	UserID           string             `json:"user_id" validate:"required,uuid"`
	Title            string             `json:"title"`
	ResumeID         string             `json:"resume_id" validate:"required,uuid"`
	JobDescriptionID string             `json:"job_description_id" validate:"required,uuid"`
	ChatData         *StructuredProfile `json:"chat_data,omitempty"`
}

// GenerateCoverLetterRequest is the body for POST /api/cover-letters/generate.
type GenerateCoverLetterRequest struct {
	UserID           string `json:"user_id" validate:"required,uuid"`
	JobDescriptionID string `json:"job_description_id" validate:"required,uuid"`
	ResumeID         string `json:"resume_id" validate:"required,uuid"`
}

// StartInterviewRequest is the body for POST /api/interviews/start.
type StartInterviewRequest struct {
	UserID           string `json:"user_id" validate:"required,uuid"`
	JobDescriptionID string `json:"job_description_id" validate:"required,uuid"`
}

// InterviewAnswerRequest is the body for POST /api/interviews/answer.
type InterviewAnswerRequest struct {
	InterviewID   string `json:"interview_id" validate:"required,uuid"`
	QuestionIndex int    `json:"question_index" validate:"min=0"`
	Answer        string `json:"answer" validate:"required,min=1"`
}

// GenerateCareerGuideRequest is the body for POST /api/career-guides/generate.
type GenerateCareerGuideRequest struct {
	UserID           string `json:"user_id" validate:"required,uuid"`
	JobDescriptionID string `json:"job_description_id" validate:"required,uuid"`
	ResumeID         string `json:"resume_id" validate:"required,uuid"`
}

// ChatStartRequest is the body for POST /api/portfolios/chat/start.
type ChatStartRequest struct {
	UserID string `json:"user_id" validate:"required,uuid"`
	Title  string `json:"title" validate:"required,min=1"`
}

// ChatAnswerRequest is the body for POST /api/portfolios/chat/answer.
type ChatAnswerRequest struct {
	PortfolioID string `json:"portfolio_id" validate:"required,uuid"`
	Answer      string `json:"answer" validate:"required,min=1"`
}

var validate = validator.New()

// Validate validates the SaveJobDescriptionRequest using the validator.
func (r *SaveJobDescriptionRequest) Validate() error { return validate.Struct(r) }

// Validate validates the ChatProfileRequest using the validator.
func (r *ChatProfileRequest) Validate() error { return validate.Struct(r) }

// Validate validates the OptimizeRequest using the validator.
func (r *OptimizeRequest) Validate() error { return validate.Struct(r) }

// Validate validates the GeneratePortfolioRequest using the validator.
func (r *GeneratePortfolioRequest) Validate() error { return validate.Struct(r) }

// Validate validates the GenerateCoverLetterRequest using the validator.
func (r *GenerateCoverLetterRequest) Validate() error { return validate.Struct(r) }

// Validate validates the StartInterviewRequest using the validator.
func (r *StartInterviewRequest) Validate() error { return validate.Struct(r) }

// Validate validates the InterviewAnswerRequest using the validator.
func (r *InterviewAnswerRequest) Validate() error { return validate.Struct(r) }

// Validate validates the GenerateCareerGuideRequest using the validator.
func (r *GenerateCareerGuideRequest) Validate() error { return validate.Struct(r) }

// Validate validates the ChatStartRequest using the validator.
func (r *ChatStartRequest) Validate() error { return validate.Struct(r) }

// Validate validates the ChatAnswerRequest using the validator.
func (r *ChatAnswerRequest) Validate() error { return validate.Struct(r) }
