// Package render turns structured portfolio content into the final HTML page
// and prepares exported documents.
package render

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"time"

	"github.com/jonathan/portfolioai/internal/types"
)

//go:embed portfolio.html.tmpl
var portfolioTemplate string

var tmpl = template.Must(template.New("portfolio").Parse(portfolioTemplate))

// PageData is the template context for a portfolio page.
type PageData struct {
	Title             string
	AboutMe           template.HTML
	Skills            []string
	SkillsDescription string
	WorkExperience    []types.WorkExperience
	Projects          []types.Project
	Education         []types.Education
	Year              int
}

// Portfolio renders the portfolio page for a profile plus generated
// narrative sections. Returns the page HTML; CSS ships inline in the
// template, so the separate css payload is empty.
func Portfolio(title, aboutMe, skillsDescription string, profile *types.StructuredProfile) (html, css string, err error) {
	data := PageData{
		Title: title,
		// AboutMe may contain simple HTML paragraphs produced by the LLM.
		AboutMe:           template.HTML(aboutMe), //nolint:gosec // model output is display-only, instructed plain text/paragraphs
		Skills:            profile.Skills,
		SkillsDescription: skillsDescription,
		WorkExperience:    profile.WorkExperience,
		Projects:          profile.Projects,
		Education:         profile.Education,
		Year:              time.Now().Year(),
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", "", fmt.Errorf("failed to render portfolio template: %w", err)
	}
	return buf.String(), "", nil
}
