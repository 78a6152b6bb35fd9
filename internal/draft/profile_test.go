package draft

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/portfolioai/internal/types"
)

func TestProfileDraft_SourcesAreMutuallyExclusive(t *testing.T) {
	s := newTestStore(t)

	s.SetChatSource(Handle{ResumeID: "chat-1", Status: types.StatusCompleted})
	d := s.LoadProfile()
	require.NotNil(t, d.ChatRef)
	assert.Nil(t, d.ResumeRef)

	s.SetResumeSource(Handle{ResumeID: "res-1", Status: types.StatusProcessing, FileName: "cv.pdf"})
	d = s.LoadProfile()
	require.NotNil(t, d.ResumeRef)
	assert.Nil(t, d.ChatRef)
	assert.Equal(t, "res-1", d.ResumeRef.ResumeID)
	assert.Equal(t, "cv.pdf", d.ResumeRef.FileName)

	s.SetChatSource(Handle{ResumeID: "chat-2", Status: types.StatusCompleted})
	d = s.LoadProfile()
	require.NotNil(t, d.ChatRef)
	assert.Nil(t, d.ResumeRef)
	assert.Equal(t, "chat-2", d.ChatRef.ResumeID)
}

func TestProfileDraft_StaleDoubleSourceResolvedToResume(t *testing.T) {
	s := newTestStore(t)

	// Write both keys directly, bypassing the setters.
	s.Save(KeyResumeData, Handle{ResumeID: "res-1"})
	s.Save(KeyChatData, Handle{ResumeID: "chat-1"})

	d := s.LoadProfile()
	require.NotNil(t, d.ResumeRef)
	assert.Nil(t, d.ChatRef)

	// The chat key was dropped, not just hidden.
	var h Handle
	assert.False(t, s.Load(KeyChatData, &h))
}

func TestProfileDraft_JobDescription(t *testing.T) {
	s := newTestStore(t)

	s.SetJobDescription(JobDescriptionDraft{Title: "SRE", Content: "keep things up"}, "")
	d := s.LoadProfile()
	require.NotNil(t, d.JobDescription)
	assert.Empty(t, d.JobDescriptionID, "unsaved draft has no id")

	s.SetJobDescription(JobDescriptionDraft{Title: "SRE", Content: "keep things up"}, "jd-1")
	d = s.LoadProfile()
	assert.Equal(t, "jd-1", d.JobDescriptionID)
	assert.False(t, d.LastUpdated.IsZero())

	s.ClearJobDescription()
	d = s.LoadProfile()
	assert.Nil(t, d.JobDescription)
	assert.Empty(t, d.JobDescriptionID)
}

func TestProfileDraft_Reset(t *testing.T) {
	s := newTestStore(t)
	s.SetResumeSource(Handle{ResumeID: "res-1"})
	s.SetJobDescription(JobDescriptionDraft{Title: "t", Content: "c"}, "jd-1")

	s.Reset()

	d := s.LoadProfile()
	assert.Nil(t, d.ResumeRef)
	assert.Nil(t, d.ChatRef)
	assert.Nil(t, d.JobDescription)
	assert.Empty(t, d.JobDescriptionID)
	assert.True(t, d.LastUpdated.IsZero())
}
