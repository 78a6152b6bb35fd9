package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/portfolioai/internal/types"
)

func TestClient_DecodesSuccessResponse(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/portfolios/p1", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"p1","title":"Mine","status":"completed"}`))
	}))
	defer ts.Close()

	c := NewClient(ts.URL)
	p, err := c.GetPortfolio(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, "p1", p.ID)
	assert.Equal(t, "Mine", p.Title)
	assert.Equal(t, types.StatusCompleted, p.Status)
}

func TestClient_SurfacesBackendErrorVerbatim(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"error":"Resume is still processing; no profile content available yet"}`))
	}))
	defer ts.Close()

	c := NewClient(ts.URL)
	_, err := c.GetPortfolio(context.Background(), "p1")
	require.Error(t, err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.Status)
	assert.Equal(t, "Resume is still processing; no profile content available yet", apiErr.Message)
}

func TestClient_GenericErrorWithoutPayload(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer ts.Close()

	c := NewClient(ts.URL)
	_, err := c.GetPortfolio(context.Background(), "p1")
	require.Error(t, err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "HTTP status 502", apiErr.Message)
}

func TestClient_TimeoutHasDistinctMessage(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	c := NewClient(ts.URL, WithTimeout(20*time.Millisecond))
	_, err := c.GetPortfolio(context.Background(), "p1")
	require.Error(t, err)

	assert.ErrorIs(t, err, ErrTimeout)
	assert.Contains(t, err.Error(), "request timed out")
	assert.NotContains(t, err.Error(), "request failed")
}

func TestClient_MalformedResponseShape(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`"not an object"`))
	}))
	defer ts.Close()

	c := NewClient(ts.URL)
	_, err := c.GetPortfolio(context.Background(), "p1")
	require.Error(t, err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "unexpected response shape", apiErr.Message)
}

func TestClient_AuthTokenAttached(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{}`))
	}))
	defer ts.Close()

	c := NewClient(ts.URL, WithAuthToken("tok-123"))
	_, err := c.GetPortfolio(context.Background(), "p1")
	require.NoError(t, err)
}

func TestClient_UploadResumeMultipart(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "u1", r.FormValue("user_id"))
		assert.Equal(t, "My Portfolio", r.FormValue("title"))

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer func() { _ = file.Close() }()
		assert.Equal(t, "cv.pdf", header.Filename)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		_, _ = w.Write([]byte(`{"resume_id":"r1","portfolio_id":"p1","status":"processing"}`))
	}))
	defer ts.Close()

	c := NewClient(ts.URL)
	res, err := c.UploadResume(context.Background(), "u1", "My Portfolio", "cv.pdf", []byte("%PDF-fake"))
	require.NoError(t, err)
	assert.Equal(t, "r1", res.ResumeID)
	assert.Equal(t, "p1", res.PortfolioID)
	assert.Equal(t, types.StatusProcessing, res.Status)
}
