// Package chat implements the question-and-answer profile intake flow: a
// fixed question script, a linear state machine over the answers, and the
// parser that turns the ordered answers into a structured profile.
package chat

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jonathan/portfolioai/internal/types"
)

// DefaultQuestions is the built-in intake script. The order is significant:
// the parser reads answers by position, not by question text.
var DefaultQuestions = []string{
	"What is your full name?",
	"Tell me about your work experience (Company|Designation|Duration|Description, separate entries with ';').",
	"List your top skills (comma or newline separated).",
	"Tell me about your projects (Name|Description, separate entries with ';').",
	"Tell me about your education (Degree|Institution|Board|Description, separate entries with ';').",
	"Anything else you would like on your portfolio?",
}

// Intake errors.
var (
	ErrEmptyAnswer = errors.New("answer must not be empty")
	ErrCompleted   = errors.New("intake already completed")
	ErrIncomplete  = errors.New("intake not yet completed")
)

// Intake is a linear question/answer state machine. It advances one question
// per answer and completes exactly once, after the final answer.
type Intake struct {
	questions []string
	answers   []string
	completed bool
}

// NewIntake creates an intake over the default question script.
func NewIntake() *Intake {
	return NewIntakeWithQuestions(DefaultQuestions)
}

// NewIntakeWithQuestions creates an intake over a custom script, for flows
// where the backend supplies the questions.
func NewIntakeWithQuestions(questions []string) *Intake {
	qs := make([]string, len(questions))
	copy(qs, questions)
	return &Intake{questions: qs}
}

// Questions returns the full script.
func (it *Intake) Questions() []string {
	qs := make([]string, len(it.questions))
	copy(qs, it.questions)
	return qs
}

// Current returns the question awaiting an answer, or false when the intake
// has completed.
func (it *Intake) Current() (string, bool) {
	if it.completed {
		return "", false
	}
	return it.questions[len(it.answers)], true
}

// Progress reports answered and total question counts.
func (it *Intake) Progress() (answered, total int) {
	return len(it.answers), len(it.questions)
}

// Submit records an answer to the current question and advances. Blank
// answers are rejected without advancing. The final answer flips the intake
// to completed; further submissions fail with ErrCompleted.
func (it *Intake) Submit(answer string) error {
	if it.completed {
		return ErrCompleted
	}
	if strings.TrimSpace(answer) == "" {
		return fmt.Errorf("question %d: %w", len(it.answers)+1, ErrEmptyAnswer)
	}
	it.answers = append(it.answers, answer)
	if len(it.answers) == len(it.questions) {
		it.completed = true
	}
	return nil
}

// Completed reports whether every question has been answered.
func (it *Intake) Completed() bool {
	return it.completed
}

// Profile assembles the structured profile from the recorded answers. It is
// only available once the intake has completed.
func (it *Intake) Profile() (*types.StructuredProfile, error) {
	if !it.completed {
		return nil, ErrIncomplete
	}
	return ParseAnswers(it.answers), nil
}

// Answers returns a copy of the answers recorded so far.
func (it *Intake) Answers() []string {
	answers := make([]string, len(it.answers))
	copy(answers, it.answers)
	return answers
}
