package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/portfolioai/internal/schemas"
	"github.com/jonathan/portfolioai/internal/types"
)

// DefaultInterviewQuestions is how many questions a mock interview gets.
const DefaultInterviewQuestions = 5

// Service implements PortfolioAI's content generation on top of a Client.
type Service struct {
	client Client
}

// NewService creates a content generation service.
func NewService(client Client) *Service {
	return &Service{client: client}
}

// AnalyzeResume structures raw resume text into a profile. The model output
// is schema-validated before being trusted.
func (s *Service) AnalyzeResume(ctx context.Context, resumeText string) (*types.StructuredProfile, error) {
	raw, err := s.client.GenerateJSON(ctx, analyzeResumePrompt(resumeText), TierStandard)
	if err != nil {
		return nil, fmt.Errorf("resume analysis failed: %w", err)
	}

	var profile types.StructuredProfile
	if err := json.Unmarshal([]byte(raw), &profile); err != nil {
		// Fallback: models sometimes wrap the object in prose
		extracted, ok := ExtractJSONObject(raw)
		if !ok {
			return nil, fmt.Errorf("resume analysis did not return valid JSON: %w", err)
		}
		if err := json.Unmarshal([]byte(extracted), &profile); err != nil {
			return nil, fmt.Errorf("resume analysis did not return valid JSON: %w", err)
		}
		raw = extracted
	}

	if err := schemas.ValidateStructuredProfile([]byte(raw)); err != nil {
		return nil, fmt.Errorf("resume analysis returned unexpected shape: %w", err)
	}
	return &profile, nil
}

// SectionContent holds the generated narrative pieces of a portfolio.
type SectionContent struct {
	AboutMe       string
	SkillsSummary string
}

// GenerateSections produces the narrative portfolio sections. The two
// independent LLM calls run concurrently.
func (s *Service) GenerateSections(ctx context.Context, profile *types.StructuredProfile) (*SectionContent, error) {
	var content SectionContent
	profileJSON := marshalProfile(profile)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		text, err := s.client.GenerateContent(ctx, aboutMePrompt(profileJSON), TierStandard)
		if err != nil {
			return fmt.Errorf("about-me generation failed: %w", err)
		}
		content.AboutMe = text
		return nil
	})
	if len(profile.Skills) > 0 {
		g.Go(func() error {
			text, err := s.client.GenerateContent(ctx, skillsSummaryPrompt(profile.Skills), TierLite)
			if err != nil {
				return fmt.Errorf("skills summary generation failed: %w", err)
			}
			content.SkillsSummary = text
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &content, nil
}

// Optimize rewrites a resume against a job description.
func (s *Service) Optimize(ctx context.Context, profile *types.StructuredProfile, jobTitle, jobContent string) (string, error) {
	text, err := s.client.GenerateContent(ctx, optimizePrompt(marshalProfile(profile), jobTitle, jobContent), TierAdvanced)
	if err != nil {
		return "", fmt.Errorf("resume optimization failed: %w", err)
	}
	return text, nil
}

// CoverLetter writes a cover letter for a profile and job description.
func (s *Service) CoverLetter(ctx context.Context, profile *types.StructuredProfile, jobTitle, jobContent string) (string, error) {
	text, err := s.client.GenerateContent(ctx, coverLetterPrompt(marshalProfile(profile), jobTitle, jobContent), TierStandard)
	if err != nil {
		return "", fmt.Errorf("cover letter generation failed: %w", err)
	}
	return text, nil
}

// InterviewQuestions generates mock interview questions for a job description.
func (s *Service) InterviewQuestions(ctx context.Context, jobTitle, jobContent string) ([]string, error) {
	raw, err := s.client.GenerateJSON(ctx, interviewQuestionsPrompt(jobTitle, jobContent, DefaultInterviewQuestions), TierLite)
	if err != nil {
		return nil, fmt.Errorf("interview question generation failed: %w", err)
	}

	var questions []string
	if err := json.Unmarshal([]byte(raw), &questions); err != nil {
		return nil, fmt.Errorf("interview questions were not a JSON array: %w", err)
	}
	if len(questions) == 0 {
		return nil, fmt.Errorf("interview question generation returned no questions")
	}
	return questions, nil
}

// InterviewResult is the scored outcome of a completed interview.
type InterviewResult struct {
	Score    int    `json:"score"`
	Feedback string `json:"feedback"`
}

// ScoreInterview scores a completed set of interview answers.
func (s *Service) ScoreInterview(ctx context.Context, jobTitle string, questions, answers []string) (*InterviewResult, error) {
	raw, err := s.client.GenerateJSON(ctx, scoreInterviewPrompt(jobTitle, questions, answers), TierAdvanced)
	if err != nil {
		return nil, fmt.Errorf("interview scoring failed: %w", err)
	}

	var result InterviewResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return nil, fmt.Errorf("interview score was not valid JSON: %w", err)
	}
	if result.Score < 0 || result.Score > 100 {
		return nil, fmt.Errorf("interview score out of range: %d", result.Score)
	}
	return &result, nil
}

// CareerGuide writes a personalized career guide.
func (s *Service) CareerGuide(ctx context.Context, profile *types.StructuredProfile, jobTitle, jobContent string) (string, error) {
	text, err := s.client.GenerateContent(ctx, careerGuidePrompt(marshalProfile(profile), jobTitle, jobContent), TierAdvanced)
	if err != nil {
		return "", fmt.Errorf("career guide generation failed: %w", err)
	}
	return text, nil
}

var namePattern = regexp.MustCompile(`^[Hh]i[,.! ]*([A-Za-z ]+)[,.! ]*`)

// DisplayName picks the portfolio title: the profile name when present,
// otherwise a name-like phrase extracted from the About Me text.
func DisplayName(profile *types.StructuredProfile) string {
	if profile.Name != "" {
		return profile.Name
	}
	about := strings.TrimSpace(profile.AboutMe)
	if about == "" {
		return "Portfolio"
	}
	if m := namePattern.FindStringSubmatch(about); m != nil {
		return strings.TrimSpace(m[1])
	}
	words := strings.Fields(about)
	if len(words) > 2 {
		words = words[:2]
	}
	return strings.Join(words, " ")
}
