// Package workflow implements the profile flow: it reconciles the two
// mutually exclusive profile sources (resume upload and chat intake), tracks
// job description completeness, and gates the five generation actions behind
// the completeness predicate.
package workflow

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/jonathan/portfolioai/internal/api"
	"github.com/jonathan/portfolioai/internal/draft"
	"github.com/jonathan/portfolioai/internal/types"
)

// Session identifies the user the coordinator acts for. It is injected
// explicitly rather than read from ambient state.
type Session struct {
	UserID string
	Title  string
}

// Notifier receives user-facing outcome messages. Backend error detail is
// passed through verbatim when available.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// LogNotifier writes notifications to the process log.
type LogNotifier struct{}

// Success logs a success notification.
func (LogNotifier) Success(msg string) { log.Printf("[notify] %s", msg) }

// Error logs an error notification.
func (LogNotifier) Error(msg string) { log.Printf("[notify] error: %s", msg) }

// Coordinator errors.
var (
	ErrIncomplete       = errors.New("profile incomplete: provide a profile source and save a job description")
	ErrActionInFlight   = errors.New("action already in flight")
	ErrEmptyField       = errors.New("title and content must not be empty")
	ErrNoProfileSource  = errors.New("no profile source available")
	ErrMissingID        = errors.New("response did not include an id")
	ErrUnknownAction    = errors.New("unknown action")
	ErrChatNotPersisted = errors.New("chat profile was not persisted")
)

// Coordinator drives the profile flow for one session.
type Coordinator struct {
	session  Session
	client   *api.Client
	store    *draft.Store
	notifier Notifier

	mu          sync.Mutex
	states      map[Action]ActionState
	chatProfile *types.StructuredProfile
}

// NewCoordinator creates a coordinator bound to a session, backend client,
// and draft store.
func NewCoordinator(session Session, client *api.Client, store *draft.Store, notifier Notifier) *Coordinator {
	if notifier == nil {
		notifier = LogNotifier{}
	}
	return &Coordinator{
		session:  session,
		client:   client,
		store:    store,
		notifier: notifier,
		states:   make(map[Action]ActionState),
	}
}

// Draft returns the current profile draft.
func (c *Coordinator) Draft() draft.ProfileDraft {
	return c.store.LoadProfile()
}

// IsComplete reports whether a profile source exists and a job description
// has been saved. Every generation action is gated on this predicate.
func (c *Coordinator) IsComplete() bool {
	d := c.store.LoadProfile()
	hasSource := d.ResumeRef != nil || d.ChatRef != nil
	return hasSource && d.JobDescriptionID != ""
}

// OnResumeUploaded records an uploaded resume as the active profile source.
// Any chat-derived source is dropped.
func (c *Coordinator) OnResumeUploaded(h draft.Handle) {
	c.store.SetResumeSource(h)
	c.mu.Lock()
	c.chatProfile = nil
	c.mu.Unlock()
	c.notifier.Success(fmt.Sprintf("resume %q uploaded", h.FileName))
}

// OnChatCompleted persists a chat-derived structured record as a
// resume-equivalent profile source. The draft is only mutated after the
// backend accepts the record.
func (c *Coordinator) OnChatCompleted(ctx context.Context, profile *types.StructuredProfile) error {
	req := &types.ChatProfileRequest{
		UserID:  c.session.UserID,
		Title:   c.session.Title,
		Content: *profile,
	}
	if err := req.Validate(); err != nil {
		return err
	}
	id, err := c.client.SubmitChatProfile(ctx, req)
	if err != nil {
		c.notifier.Error(errMessage(err))
		return err
	}
	if id == "" {
		c.notifier.Error(ErrChatNotPersisted.Error())
		return ErrChatNotPersisted
	}
	c.store.SetChatSource(draft.Handle{ResumeID: id, Status: types.StatusCompleted})
	c.mu.Lock()
	c.chatProfile = profile
	c.mu.Unlock()
	c.notifier.Success("chat profile saved")
	return nil
}

// SaveJobDescription validates and saves the job description, storing the
// returned id. The same id is reused on later saves, so edits update the
// existing record instead of creating a new one. A response without an id
// leaves the completeness predicate false.
func (c *Coordinator) SaveJobDescription(ctx context.Context, title, content string) (string, error) {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(content) == "" {
		return "", ErrEmptyField
	}
	existing := c.store.LoadProfile().JobDescriptionID
	jd, err := c.client.SaveJobDescription(ctx, c.session.UserID, existing, title, content)
	if err != nil {
		c.notifier.Error(errMessage(err))
		return "", err
	}
	if jd.ID == "" {
		c.store.SetJobDescription(draft.JobDescriptionDraft{Title: title, Content: content}, "")
		c.notifier.Error("job description saved but no id returned")
		return "", fmt.Errorf("save job description: %w", ErrMissingID)
	}
	c.store.SetJobDescription(draft.JobDescriptionDraft{Title: title, Content: content}, jd.ID)
	c.notifier.Success("job description saved")
	return jd.ID, nil
}

// ClearJobDescription resets the local job description draft. Saved backend
// rows are kept as history.
func (c *Coordinator) ClearJobDescription() {
	c.store.ClearJobDescription()
}

// Reset drops the whole local draft.
func (c *Coordinator) Reset() {
	c.store.Reset()
	c.mu.Lock()
	c.chatProfile = nil
	c.mu.Unlock()
}

// activeResumeID resolves the resume-equivalent id of the current profile
// source, preferring the resume source.
func (c *Coordinator) activeResumeID(d draft.ProfileDraft) (string, error) {
	switch {
	case d.ResumeRef != nil:
		return d.ResumeRef.ResumeID, nil
	case d.ChatRef != nil:
		return d.ChatRef.ResumeID, nil
	default:
		return "", ErrNoProfileSource
	}
}

// errMessage extracts the backend's error detail for notifications, falling
// back to the full error text.
func errMessage(err error) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return err.Error()
}
