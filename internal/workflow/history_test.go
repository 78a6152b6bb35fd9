package workflow

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/portfolioai/internal/api"
	"github.com/jonathan/portfolioai/internal/types"
)

func TestLatestIndex(t *testing.T) {
	tests := []struct {
		name  string
		times []string
		want  int
	}{
		{name: "empty", times: nil, want: -1},
		{name: "single", times: []string{"2026-01-01T00:00:00Z"}, want: 0},
		{
			name:  "latest is not first",
			times: []string{"2026-01-01T00:00:00Z", "2026-03-01T00:00:00Z", "2026-02-01T00:00:00Z"},
			want:  1,
		},
		{
			name:  "unparseable timestamps sort last",
			times: []string{"yesterday", "2026-01-01T00:00:00Z"},
			want:  1,
		},
		{
			name:  "all unparseable falls back to first",
			times: []string{"yesterday", "last week"},
			want:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := latestIndex(len(tt.times), func(i int) string { return tt.times[i] })
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLatestPortfolio(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id":"p1","created_at":"2026-01-01T00:00:00Z"},
			{"id":"p3","created_at":"2026-03-01T00:00:00Z"},
			{"id":"p2","created_at":"2026-02-01T00:00:00Z"}
		]`))
	}))
	defer ts.Close()

	h := NewHistory(api.NewClient(ts.URL))
	p, err := h.LatestPortfolio(context.Background(), "u1")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "p3", p.ID)
}

func TestLatestPortfolio_NoneIsNil(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer ts.Close()

	h := NewHistory(api.NewClient(ts.URL))
	p, err := h.LatestPortfolio(context.Background(), "u1")
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestInterviews(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/interviews/u1", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id":"i2","status":"completed","questions":["Q1","Q2"],"answers":["A1","A2"],"created_at":"2026-02-01T00:00:00Z"},
			{"id":"i1","status":"in_progress","questions":["Q1","Q2"],"answers":["A1"],"created_at":"2026-01-01T00:00:00Z"}
		]`))
	}))
	defer ts.Close()

	h := NewHistory(api.NewClient(ts.URL))
	interviews, err := h.Interviews(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, interviews, 2)
	assert.Equal(t, "i2", interviews[0].ID)
	assert.Equal(t, types.StatusCompleted, interviews[0].Status)
	assert.Len(t, interviews[1].Answers, 1)
}

func TestExportPortfolio_WritesInlinedFile(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/portfolios/p1/export", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"html":"<html><head><title>T</title></head><body><p>hi</p></body></html>","css":"p{color:red}"}`))
	}))
	defer ts.Close()

	dir := t.TempDir()
	h := NewHistory(api.NewClient(ts.URL))
	path, err := h.ExportPortfolio(context.Background(), "p1", dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "portfolio-p1.html"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, "p{color:red}")
	assert.Less(t, strings.Index(out, "p{color:red}"), strings.Index(out, "</head>"),
		"stylesheet must be inlined before the closing head tag")
	assert.Contains(t, out, "<p>hi</p>")
}

func TestRegenerate_NewRowAndSingleFlight(t *testing.T) {
	var bodies []string
	block := make(chan struct{})
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		buf := make([]byte, 1<<10)
		n, _ := r.Body.Read(buf)
		bodies = append(bodies, string(buf[:n]))
		<-block
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"cl-2","content":"new letter"}`))
	}))
	defer ts.Close()

	h := NewHistory(api.NewClient(ts.URL))
	row := api.CoverLetter{ID: "cl-1", JobDescriptionID: testJDID, ResumeID: testResID}

	done := make(chan error, 1)
	go func() {
		_, err := h.RegenerateCoverLetter(context.Background(), testUserID, row)
		done <- err
	}()

	// Wait until the first call holds the row, then a second call must be
	// rejected rather than queued.
	require.Eventually(t, func() bool {
		h.mu.Lock()
		defer h.mu.Unlock()
		return h.inFlight["cl-1"]
	}, time.Second, 5*time.Millisecond)

	_, err := h.RegenerateCoverLetter(context.Background(), testUserID, row)
	assert.ErrorIs(t, err, ErrActionInFlight)

	close(block)
	require.NoError(t, <-done)

	// After release the row can be regenerated again.
	got, err := h.RegenerateCoverLetter(context.Background(), testUserID, row)
	require.NoError(t, err)
	assert.Equal(t, "cl-2", got.ID, "regeneration produces a new row")
	assert.Contains(t, bodies[0], testJDID)
}
