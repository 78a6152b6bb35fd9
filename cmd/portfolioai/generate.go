package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/portfolioai/internal/api"
	"github.com/jonathan/portfolioai/internal/types"
	"github.com/jonathan/portfolioai/internal/workflow"
)

var generateCmd = &cobra.Command{
	Use:       "generate {optimize|portfolio|cover-letter|interview|career-guide}",
	Short:     "Run a generation action",
	Long:      `Run one of the generation actions. All of them require an uploaded resume or completed chat profile plus a saved job description.`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"optimize", "portfolio", "cover-letter", "interview", "career-guide"},
	RunE:      runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&clientTitle, "title", "", "Portfolio title")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	coord, _, err := newCoordinator()
	if err != nil {
		return err
	}

	result, err := coord.TriggerAction(cmd.Context(), workflow.Action(args[0]))
	if err != nil {
		return err
	}

	switch result.Action {
	case workflow.ActionOptimize:
		fmt.Printf("Optimized resume %s:\n\n%s\n", result.OptimizedResume.ID, result.OptimizedResume.Content)
	case workflow.ActionPortfolio:
		fmt.Printf("Portfolio %s is generating (status %s). Run 'portfolioai portfolios' to check on it.\n",
			result.Portfolio.ID, result.Portfolio.Status)
	case workflow.ActionCoverLetter:
		fmt.Printf("Cover letter %s:\n\n%s\n", result.CoverLetter.ID, result.CoverLetter.Content)
	case workflow.ActionInterview:
		return runInterview(cmd, result.Interview)
	case workflow.ActionCareerGuide:
		fmt.Printf("Career guide %s:\n\n%s\n", result.CareerGuide.ID, result.CareerGuide.Content)
	}
	return nil
}

// runInterview walks the newly started interview session question by
// question and prints the score after the final answer.
func runInterview(cmd *cobra.Command, session *api.InterviewSession) error {
	if len(session.Questions) == 0 {
		return fmt.Errorf("interview session %s has no questions", session.ID)
	}

	client := newAPIClient()
	reader := bufio.NewReader(os.Stdin)

	fmt.Printf("Mock interview started (%d questions).\n", len(session.Questions))
	question := session.Questions[0]
	for i := range session.Questions {
		fmt.Printf("\nQ%d: %s\n> ", i+1, question)
		line, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("failed to read answer: %w", err)
		}

		turn, err := client.SubmitInterviewAnswer(cmd.Context(), &types.InterviewAnswerRequest{
			InterviewID:   session.ID,
			QuestionIndex: i,
			Answer:        strings.TrimSpace(line),
		})
		if err != nil {
			return err
		}

		switch turn.Kind {
		case api.InterviewTurnScored:
			fmt.Printf("\nScore: %d/100\n%s\n", turn.Score, turn.Feedback)
			return nil
		case api.InterviewTurnNext:
			question = turn.NextQuestion
		}
	}
	return nil
}
