package chat

import (
	"regexp"
	"strings"

	"github.com/jonathan/portfolioai/internal/types"
)

// Answer slots used by the parser. The slot layout is part of the external
// contract for chat-derived profiles and must not shift: slot 0 feeds both
// the display name and the About Me section.
const (
	slotAbout = iota
	slotWorkExperience
	slotSkills
	slotProjects
	slotEducation
)

var skillsSeparator = regexp.MustCompile(`[\n,]`)

// ParseAnswers maps ordered chat answers into a structured profile using
// fixed field positions: entries split on ";", fields on "|", missing fields
// become empty strings.
func ParseAnswers(answers []string) *types.StructuredProfile {
	profile := &types.StructuredProfile{
		Skills:         []string{},
		WorkExperience: []types.WorkExperience{},
		Projects:       []types.Project{},
		Education:      []types.Education{},
	}

	if answer, ok := slot(answers, slotAbout); ok {
		profile.Name = answer
		profile.AboutMe = answer
	}
	if answer, ok := slot(answers, slotWorkExperience); ok {
		profile.WorkExperience = parseWorkExperience(answer)
	}
	if answer, ok := slot(answers, slotSkills); ok {
		profile.Skills = parseSkills(answer)
	}
	if answer, ok := slot(answers, slotProjects); ok {
		profile.Projects = parseProjects(answer)
	}
	if answer, ok := slot(answers, slotEducation); ok {
		profile.Education = parseEducation(answer)
	}
	return profile
}

func slot(answers []string, idx int) (string, bool) {
	if idx >= len(answers) {
		return "", false
	}
	answer := strings.TrimSpace(answers[idx])
	return answer, answer != ""
}

// parseWorkExperience splits "Company|Designation|Duration|Description; ..."
// entries. Entries with fewer than three fields are dropped.
func parseWorkExperience(answer string) []types.WorkExperience {
	var entries []types.WorkExperience
	for _, item := range strings.Split(answer, ";") {
		parts := splitFields(item)
		if len(parts) < 3 {
			continue
		}
		entry := types.WorkExperience{
			Company:     parts[0],
			Designation: parts[1],
			Duration:    parts[2],
		}
		if len(parts) > 3 {
			entry.Description = parts[3]
		}
		entries = append(entries, entry)
	}
	if entries == nil {
		return []types.WorkExperience{}
	}
	return entries
}

// parseSkills splits on comma or newline, trims, and drops empty tokens.
func parseSkills(answer string) []string {
	var skills []string
	for _, token := range skillsSeparator.Split(answer, -1) {
		token = strings.TrimSpace(token)
		if token != "" {
			skills = append(skills, token)
		}
	}
	if skills == nil {
		return []string{}
	}
	return skills
}

// parseProjects splits "Name|Description; ..." entries.
func parseProjects(answer string) []types.Project {
	var projects []types.Project
	for _, item := range strings.Split(answer, ";") {
		parts := splitFields(item)
		if len(parts) == 0 || parts[0] == "" {
			continue
		}
		project := types.Project{Name: parts[0]}
		if len(parts) > 1 {
			project.Description = parts[1]
		}
		projects = append(projects, project)
	}
	if projects == nil {
		return []types.Project{}
	}
	return projects
}

// parseEducation splits "Degree|Institution|Board|Description; ..." entries.
// Shorter forms (just a degree, degree+institution, ...) are accepted.
func parseEducation(answer string) []types.Education {
	var education []types.Education
	for _, item := range strings.Split(answer, ";") {
		parts := splitFields(item)
		if len(parts) == 0 || parts[0] == "" {
			continue
		}
		entry := types.Education{Degree: parts[0]}
		if len(parts) > 1 {
			entry.Institution = parts[1]
		}
		if len(parts) > 2 {
			entry.Board = parts[2]
		}
		if len(parts) > 3 {
			entry.Description = parts[3]
		}
		education = append(education, entry)
	}
	if education == nil {
		return []types.Education{}
	}
	return education
}

func splitFields(item string) []string {
	item = strings.TrimSpace(item)
	if item == "" {
		return nil
	}
	parts := strings.Split(item, "|")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
