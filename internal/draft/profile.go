package draft

import (
	"time"

	"github.com/jonathan/portfolioai/internal/types"
)

// Handle references a resume-equivalent profile record held by the backend.
type Handle struct {
	ResumeID    string       `json:"resume_id"`
	PortfolioID string       `json:"portfolio_id,omitempty"`
	Status      types.Status `json:"status"`
	FileName    string       `json:"file_name,omitempty"`
}

// JobDescriptionDraft is the local job description state, saved or not.
type JobDescriptionDraft struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// ProfileDraft is the full client-side profile state. ResumeRef and ChatRef
// are mutually exclusive: exactly one source of truth at a time.
type ProfileDraft struct {
	ResumeRef        *Handle              `json:"resume_ref,omitempty"`
	ChatRef          *Handle              `json:"chat_ref,omitempty"`
	JobDescription   *JobDescriptionDraft `json:"job_description,omitempty"`
	JobDescriptionID string               `json:"job_description_id,omitempty"`
	LastUpdated      time.Time            `json:"last_updated,omitempty"`
}

// LoadProfile assembles the profile draft from the individual storage keys.
func (s *Store) LoadProfile() ProfileDraft {
	var d ProfileDraft
	var resumeRef, chatRef Handle
	if s.Load(KeyResumeData, &resumeRef) && resumeRef.ResumeID != "" {
		d.ResumeRef = &resumeRef
	}
	var jd JobDescriptionDraft
	if s.Load(KeyJobDescription, &jd) {
		d.JobDescription = &jd
	}
	if s.Load(KeyChatData, &chatRef) && chatRef.ResumeID != "" {
		d.ChatRef = &chatRef
	}
	s.Load(KeyJobDescriptionID, &d.JobDescriptionID)
	s.Load(KeyLastUpdated, &d.LastUpdated)

	// Mutual exclusion holds even if stale state left both keys populated;
	// the resume source wins and the chat key is dropped.
	if d.ResumeRef != nil && d.ChatRef != nil {
		d.ChatRef = nil
		s.Clear(KeyChatData)
	}
	return d
}

// SetResumeSource stores a resume handle as the active profile source and
// clears any chat handle.
func (s *Store) SetResumeSource(h Handle) {
	s.Save(KeyResumeData, h)
	s.Clear(KeyChatData)
	s.touch()
}

// SetChatSource stores a chat handle as the active profile source and clears
// any resume handle.
func (s *Store) SetChatSource(h Handle) {
	s.Save(KeyChatData, h)
	s.Clear(KeyResumeData)
	s.touch()
}

// SetJobDescription stores the job description draft and, when saved
// backend-side, its id.
func (s *Store) SetJobDescription(jd JobDescriptionDraft, id string) {
	s.Save(KeyJobDescription, jd)
	if id != "" {
		s.Save(KeyJobDescriptionID, id)
	}
	s.touch()
}

// ClearJobDescription resets the local job description state. History rows
// on the backend are untouched.
func (s *Store) ClearJobDescription() {
	s.Clear(KeyJobDescription)
	s.Clear(KeyJobDescriptionID)
	s.touch()
}

// Reset drops the whole profile draft.
func (s *Store) Reset() {
	for _, key := range []string{KeyResumeData, KeyChatData, KeyJobDescription, KeyJobDescriptionID, KeyLastUpdated} {
		s.Clear(key)
	}
}

func (s *Store) touch() {
	s.Save(KeyLastUpdated, time.Now().UTC())
}
