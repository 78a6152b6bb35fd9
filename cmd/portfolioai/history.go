package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/portfolioai/internal/workflow"
)

var exportDir string

var portfoliosCmd = &cobra.Command{
	Use:   "portfolios",
	Short: "List generated portfolios",
	RunE:  runListPortfolios,
}

var resumesCmd = &cobra.Command{
	Use:   "resumes",
	Short: "List profile records",
	RunE:  runListResumes,
}

var coverLettersCmd = &cobra.Command{
	Use:   "cover-letters",
	Short: "List generated cover letters",
	RunE:  runListCoverLetters,
}

var interviewsCmd = &cobra.Command{
	Use:   "interviews",
	Short: "List mock interview sessions",
	RunE:  runListInterviews,
}

var careerGuidesCmd = &cobra.Command{
	Use:   "career-guides",
	Short: "List generated career guides",
	RunE:  runListCareerGuides,
}

var exportCmd = &cobra.Command{
	Use:   "export [portfolio-id]",
	Short: "Export a portfolio as a self-contained HTML file",
	Long:  `Export a portfolio's generated markup with its stylesheet inlined. With no argument the most recently created portfolio is exported.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportDir, "out", ".", "Directory to write the exported file to")

	rootCmd.AddCommand(portfoliosCmd)
	rootCmd.AddCommand(resumesCmd)
	rootCmd.AddCommand(coverLettersCmd)
	rootCmd.AddCommand(interviewsCmd)
	rootCmd.AddCommand(careerGuidesCmd)
	rootCmd.AddCommand(exportCmd)
}

func runListPortfolios(cmd *cobra.Command, _ []string) error {
	userID, err := resolveUserID()
	if err != nil {
		return err
	}
	history := workflow.NewHistory(newAPIClient())
	portfolios, err := history.Portfolios(cmd.Context(), userID)
	if err != nil {
		return err
	}
	if len(portfolios) == 0 {
		fmt.Println("No portfolios yet.")
		return nil
	}
	for _, p := range portfolios {
		fmt.Printf("%s  %-12s  %-8s  %s\n", p.ID, p.Status, p.Method, p.Title)
	}
	return nil
}

func runListResumes(cmd *cobra.Command, _ []string) error {
	userID, err := resolveUserID()
	if err != nil {
		return err
	}
	history := workflow.NewHistory(newAPIClient())
	resumes, err := history.Resumes(cmd.Context(), userID)
	if err != nil {
		return err
	}
	if len(resumes) == 0 {
		fmt.Println("No profile records yet.")
		return nil
	}
	for _, r := range resumes {
		fmt.Printf("%s  %-12s  %-8s  %s\n", r.ID, r.Status, r.Source, r.Title)
	}
	return nil
}

func runListCoverLetters(cmd *cobra.Command, _ []string) error {
	userID, err := resolveUserID()
	if err != nil {
		return err
	}
	history := workflow.NewHistory(newAPIClient())
	letters, err := history.CoverLetters(cmd.Context(), userID)
	if err != nil {
		return err
	}
	if len(letters) == 0 {
		fmt.Println("No cover letters yet.")
		return nil
	}
	for _, l := range letters {
		fmt.Printf("%s  created %s\n", l.ID, l.CreatedAt)
	}
	return nil
}

func runListInterviews(cmd *cobra.Command, _ []string) error {
	userID, err := resolveUserID()
	if err != nil {
		return err
	}
	history := workflow.NewHistory(newAPIClient())
	interviews, err := history.Interviews(cmd.Context(), userID)
	if err != nil {
		return err
	}
	if len(interviews) == 0 {
		fmt.Println("No interview sessions yet.")
		return nil
	}
	for _, s := range interviews {
		fmt.Printf("%s  %-12s  answered %d/%d\n", s.ID, s.Status, len(s.Answers), len(s.Questions))
	}
	return nil
}

func runListCareerGuides(cmd *cobra.Command, _ []string) error {
	userID, err := resolveUserID()
	if err != nil {
		return err
	}
	history := workflow.NewHistory(newAPIClient())
	guides, err := history.CareerGuides(cmd.Context(), userID)
	if err != nil {
		return err
	}
	if len(guides) == 0 {
		fmt.Println("No career guides yet.")
		return nil
	}
	for _, g := range guides {
		fmt.Printf("%s  created %s\n", g.ID, g.CreatedAt)
	}
	return nil
}

func runExport(cmd *cobra.Command, args []string) error {
	history := workflow.NewHistory(newAPIClient())

	var portfolioID string
	if len(args) == 1 {
		portfolioID = args[0]
	} else {
		userID, err := resolveUserID()
		if err != nil {
			return err
		}
		latest, err := history.LatestPortfolio(cmd.Context(), userID)
		if err != nil {
			return err
		}
		if latest == nil {
			return fmt.Errorf("no portfolios to export")
		}
		portfolioID = latest.ID
	}

	path, err := history.ExportPortfolio(cmd.Context(), portfolioID, exportDir)
	if err != nil {
		return err
	}
	fmt.Printf("Exported to %s\n", path)
	return nil
}
