// Package types provides type definitions for structured data used throughout the PortfolioAI system.
package types

// StructuredProfile is the canonical structured form of a user's profile,
// produced either by LLM resume analysis or by the chat intake flow.
type StructuredProfile struct {
	Name           string           `json:"Name,omitempty"`
	AboutMe        string           `json:"About Me"`
	Skills         []string         `json:"Skills"`
	WorkExperience []WorkExperience `json:"Work Experience"`
	Projects       []Project        `json:"Projects"`
	Education      []Education      `json:"Education"`
}

// WorkExperience represents a single job entry.
type WorkExperience struct {
	Company     string `json:"Company"`
	Designation string `json:"Designation"`
	Duration    string `json:"Duration"`
	Description string `json:"Description"`
}

// Project represents a single project entry.
type Project struct {
	Name        string `json:"Name"`
	Description string `json:"Description"`
}

// Education represents a single education entry.
type Education struct {
	Degree      string `json:"Degree"`
	Institution string `json:"Institution"`
	Board       string `json:"Board"`
	Description string `json:"Description"`
}

// Status represents the processing state of a backend-generated artifact.
type Status string

// Artifact statuses. Transitions are driven entirely by the backend;
// clients only observe them via refetch.
const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
)

// Terminal reports whether the status is a final state.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusFailed
}
