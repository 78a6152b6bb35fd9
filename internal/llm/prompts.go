package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Prompt builders for PortfolioAI content generation. Every prompt asks for
// display-ready output: no markdown, no preamble, no code fences.

const plainTextRules = "Do NOT include any introductory or instructional text. " +
	"Do NOT include Markdown, asterisks, or bold/italic formatting. " +
	"Return only the content to be displayed, as plain text or simple HTML paragraphs."

func analyzeResumePrompt(resumeText string) string {
	return "Analyze the following resume and structure it into a professional portfolio. " +
		"Return ONLY a valid JSON object with these sections: About Me, Skills, Work Experience, Projects, Education. " +
		"Work Experience entries have fields Company, Designation, Duration, Description. " +
		"Projects have Name and Description. Education entries have Degree, Institution, Board, Description. " +
		"Do NOT include any markdown, explanation, or code blocks.\n\n" +
		"Resume text:\n" + resumeText
}

func aboutMePrompt(profileJSON string) string {
	return "Write a detailed, engaging About Me section for a portfolio website, " +
		"based on the following information about the person: " + profileJSON + "\n" + plainTextRules
}

func skillsSummaryPrompt(skills []string) string {
	return "Given this list of skills, write a short, human-like summary (1-2 sentences) " +
		"describing the person's skills for a portfolio website. Skills: " + strings.Join(skills, ", ") + "\n" +
		"Do NOT include any introductory or instructional text. " +
		"Do NOT include Markdown, asterisks, or bold/italic formatting. " +
		"Do NOT return a list or bullet points. Do NOT repeat the skill names. " +
		"Return only a plain text summary."
}

func optimizePrompt(profileJSON, jobTitle, jobContent string) string {
	return "Rewrite the following resume so it is optimized for the job description below. " +
		"Keep every claim truthful to the source resume; reorder, reword, and emphasize to match the role. " +
		"Return the full optimized resume as plain text.\n\n" +
		"Resume:\n" + profileJSON + "\n\nJob title: " + jobTitle + "\nJob description:\n" + jobContent +
		"\n\n" + plainTextRules
}

func coverLetterPrompt(profileJSON, jobTitle, jobContent string) string {
	return "Write a professional cover letter for the job below, grounded in the candidate profile. " +
		"Three to four paragraphs, confident but not boastful.\n\n" +
		"Candidate profile:\n" + profileJSON + "\n\nJob title: " + jobTitle + "\nJob description:\n" + jobContent +
		"\n\n" + plainTextRules
}

func interviewQuestionsPrompt(jobTitle, jobContent string, count int) string {
	return fmt.Sprintf("Generate %d interview questions for a candidate applying to the role below. "+
		"Mix behavioral and role-specific technical questions. "+
		"Return ONLY a JSON array of question strings, no markdown.\n\n"+
		"Job title: %s\nJob description:\n%s", count, jobTitle, jobContent)
}

func scoreInterviewPrompt(jobTitle string, questions, answers []string) string {
	var sb strings.Builder
	sb.WriteString("Score this mock interview for the role of " + jobTitle + ". ")
	sb.WriteString(`Return ONLY a JSON object {"score": <0-100 integer>, "feedback": "<2-3 sentence summary>"}, no markdown.` + "\n\n")
	for i, q := range questions {
		answer := ""
		if i < len(answers) {
			answer = answers[i]
		}
		fmt.Fprintf(&sb, "Q%d: %s\nA%d: %s\n", i+1, q, i+1, answer)
	}
	return sb.String()
}

func careerGuidePrompt(profileJSON, jobTitle, jobContent string) string {
	return "Write a personalized career guide for the candidate below who wants the following role. " +
		"Cover: skill gaps against the role, concrete learning resources, a 90-day plan, and longer-term positioning.\n\n" +
		"Candidate profile:\n" + profileJSON + "\n\nTarget role: " + jobTitle + "\nJob description:\n" + jobContent +
		"\n\n" + plainTextRules
}

// marshalProfile renders a profile value for prompt embedding. Falls back to
// fmt formatting when marshaling fails, which keeps prompts usable.
func marshalProfile(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(b)
}
