package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/portfolioai/internal/types"
)

func TestParseAnswers_FullScenario(t *testing.T) {
	answers := []string{
		"Jane Doe",
		"Engineer | Acme | 2019-2022 | Built things",
		"Python, Go\nRust",
		"PortfolioSite | A site",
		"BSc | MIT | | ",
	}

	profile := ParseAnswers(answers)
	require.NotNil(t, profile)

	assert.Equal(t, "Jane Doe", profile.Name)
	assert.Equal(t, "Jane Doe", profile.AboutMe)
	assert.Equal(t, []types.WorkExperience{
		{Company: "Engineer", Designation: "Acme", Duration: "2019-2022", Description: "Built things"},
	}, profile.WorkExperience)
	assert.Equal(t, []string{"Python", "Go", "Rust"}, profile.Skills)
	assert.Equal(t, []types.Project{{Name: "PortfolioSite", Description: "A site"}}, profile.Projects)
	assert.Equal(t, []types.Education{{Degree: "BSc", Institution: "MIT"}}, profile.Education)
}

func TestParseAnswers_EmptyInput(t *testing.T) {
	profile := ParseAnswers(nil)
	require.NotNil(t, profile)

	assert.Empty(t, profile.Name)
	assert.Empty(t, profile.Skills)
	assert.Empty(t, profile.WorkExperience)
	assert.Empty(t, profile.Projects)
	assert.Empty(t, profile.Education)
}

func TestParseWorkExperience(t *testing.T) {
	tests := []struct {
		name   string
		answer string
		want   []types.WorkExperience
	}{
		{
			name:   "multiple entries",
			answer: "Acme | Engineer | 2019-2022 | Built things; Globex | Lead | 2022-now | Leads things",
			want: []types.WorkExperience{
				{Company: "Acme", Designation: "Engineer", Duration: "2019-2022", Description: "Built things"},
				{Company: "Globex", Designation: "Lead", Duration: "2022-now", Description: "Leads things"},
			},
		},
		{
			name:   "entry with fewer than three fields is dropped",
			answer: "Acme | Engineer; Globex | Lead | 2022",
			want: []types.WorkExperience{
				{Company: "Globex", Designation: "Lead", Duration: "2022"},
			},
		},
		{
			name:   "no valid entries",
			answer: "just some free text",
			want:   []types.WorkExperience{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseWorkExperience(tt.answer))
		})
	}
}

func TestParseSkills(t *testing.T) {
	tests := []struct {
		name   string
		answer string
		want   []string
	}{
		{name: "comma separated", answer: "Go, Python, SQL", want: []string{"Go", "Python", "SQL"}},
		{name: "newline separated", answer: "Go\nPython", want: []string{"Go", "Python"}},
		{name: "mixed with empties", answer: "Go,,\n, Python ", want: []string{"Go", "Python"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseSkills(tt.answer))
		})
	}
}

func TestParseProjects(t *testing.T) {
	got := parseProjects("Site | My site; CLI")
	assert.Equal(t, []types.Project{
		{Name: "Site", Description: "My site"},
		{Name: "CLI"},
	}, got)
}

func TestParseEducation_ShortForms(t *testing.T) {
	got := parseEducation("BSc; MSc | MIT; PhD | MIT | Board | Thesis work")
	assert.Equal(t, []types.Education{
		{Degree: "BSc"},
		{Degree: "MSc", Institution: "MIT"},
		{Degree: "PhD", Institution: "MIT", Board: "Board", Description: "Thesis work"},
	}, got)
}
