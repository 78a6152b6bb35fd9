package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/portfolioai/internal/types"
)

func TestPortfolio_RendersAllSections(t *testing.T) {
	profile := &types.StructuredProfile{
		Name:   "Jane Doe",
		Skills: []string{"Go", "Postgres"},
		WorkExperience: []types.WorkExperience{
			{Company: "Acme", Designation: "Engineer", Duration: "2019-2022", Description: "Built things"},
		},
		Projects: []types.Project{
			{Name: "PortfolioSite", Description: "A site"},
		},
		Education: []types.Education{
			{Degree: "BSc", Institution: "MIT"},
		},
	}

	html, css, err := Portfolio("Jane Doe", "<p>Hi, I build things.</p>", "Strong in Go and Postgres.", profile)
	require.NoError(t, err)
	assert.Empty(t, css, "stylesheet ships inside the page")

	assert.Contains(t, html, "<title>Jane Doe")
	assert.Contains(t, html, "<p>Hi, I build things.</p>", "generated paragraphs must not be escaped")
	assert.Contains(t, html, "Strong in Go and Postgres.")
	assert.Contains(t, html, "Acme")
	assert.Contains(t, html, "Engineer")
	assert.Contains(t, html, "2019-2022")
	assert.Contains(t, html, "PortfolioSite")
	assert.Contains(t, html, "BSc")
	assert.Contains(t, html, "MIT")
	assert.Contains(t, html, "<style>")
}

func TestPortfolio_EscapesProfileFields(t *testing.T) {
	profile := &types.StructuredProfile{
		Skills: []string{"<script>alert(1)</script>"},
	}

	html, _, err := Portfolio("T", "about", "", profile)
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>alert(1)</script>")
	assert.Contains(t, html, "&lt;script&gt;")
}

func TestPortfolio_EmptySectionsOmitted(t *testing.T) {
	profile := &types.StructuredProfile{Name: "Jane"}

	html, _, err := Portfolio("Jane", "about", "", profile)
	require.NoError(t, err)
	assert.NotContains(t, html, "Work Experience")
	assert.NotContains(t, html, "Projects")
	assert.NotContains(t, html, "Education")
}

func TestInlineCSS_InsertedBeforeClosingHead(t *testing.T) {
	html := "<html><head><title>T</title></head><body><p>hi</p></body></html>"
	out, err := InlineCSS(html, "p{color:red}")
	require.NoError(t, err)

	styleAt := strings.Index(out, "p{color:red}")
	headEnd := strings.Index(out, "</head>")
	require.GreaterOrEqual(t, styleAt, 0)
	require.GreaterOrEqual(t, headEnd, 0)
	assert.Less(t, styleAt, headEnd)
	assert.Contains(t, out, "<p>hi</p>", "body is left untouched")
}

func TestInlineCSS_NoHeadPrepends(t *testing.T) {
	out, err := InlineCSS("<p>hi</p>", "p{color:red}")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "<style>"), "style block is prepended")
	assert.Contains(t, out, "p{color:red}")
	assert.Contains(t, out, "<p>hi</p>")
}

func TestInlineCSS_EmptyStylesheetIsNoop(t *testing.T) {
	html := "<html><head></head><body></body></html>"
	out, err := InlineCSS(html, "  ")
	require.NoError(t, err)
	assert.Equal(t, html, out)
}
