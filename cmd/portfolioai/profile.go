package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/portfolioai/internal/chat"
	"github.com/jonathan/portfolioai/internal/draft"
	"github.com/jonathan/portfolioai/internal/workflow"
)

var (
	uploadFile string
	chatRemote bool
	jdTitle    string
	jdContent  string
	jdFile     string
)

var uploadCmd = &cobra.Command{
	Use:   "upload",
	Short: "Upload a resume as the profile source",
	RunE:  runUpload,
}

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Build a profile through the question-and-answer flow",
	RunE:  runChat,
}

var jdCmd = &cobra.Command{
	Use:   "jd",
	Short: "Save the job description",
	RunE:  runSaveJD,
}

var jdClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear the local job description draft",
	RunE:  runClearJD,
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the profile draft and completeness",
	RunE:  runStatus,
}

func init() {
	uploadCmd.Flags().StringVar(&uploadFile, "file", "", "Resume file (.pdf or .docx)")
	uploadCmd.Flags().StringVar(&clientTitle, "title", "", "Portfolio title")
	_ = uploadCmd.MarkFlagRequired("file")

	chatCmd.Flags().BoolVar(&chatRemote, "remote", false, "Use the server-held chat session instead of the local question list")
	chatCmd.Flags().StringVar(&clientTitle, "title", "", "Portfolio title")

	jdCmd.Flags().StringVar(&jdTitle, "title", "", "Job title")
	jdCmd.Flags().StringVar(&jdContent, "content", "", "Job description text")
	jdCmd.Flags().StringVar(&jdFile, "file", "", "Read the job description from a file")
	_ = jdCmd.MarkFlagRequired("title")
	jdCmd.AddCommand(jdClearCmd)

	rootCmd.AddCommand(uploadCmd)
	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(jdCmd)
	rootCmd.AddCommand(statusCmd)
}

func runUpload(cmd *cobra.Command, _ []string) error {
	coord, _, err := newCoordinator()
	if err != nil {
		return err
	}
	data, err := os.ReadFile(uploadFile)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", uploadFile, err)
	}
	userID, err := resolveUserID()
	if err != nil {
		return err
	}

	title := clientTitle
	if title == "" {
		title = strings.TrimSuffix(filepath.Base(uploadFile), filepath.Ext(uploadFile))
	}

	res, err := newAPIClient().UploadResume(cmd.Context(), userID, title, filepath.Base(uploadFile), data)
	if err != nil {
		return err
	}

	coord.OnResumeUploaded(draft.Handle{
		ResumeID:    res.ResumeID,
		PortfolioID: res.PortfolioID,
		Status:      res.Status,
		FileName:    filepath.Base(uploadFile),
	})
	fmt.Printf("Uploaded. resume=%s portfolio=%s status=%s\n", res.ResumeID, res.PortfolioID, res.Status)
	return nil
}

func runChat(cmd *cobra.Command, _ []string) error {
	if chatRemote {
		return runRemoteChat(cmd)
	}

	coord, _, err := newCoordinator()
	if err != nil {
		return err
	}

	intake := chat.NewIntake()
	reader := bufio.NewReader(os.Stdin)
	for {
		question, ok := intake.Current()
		if !ok {
			break
		}
		answered, total := intake.Progress()
		fmt.Printf("[%d/%d] %s\n> ", answered+1, total, question)
		line, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("failed to read answer: %w", err)
		}
		if err := intake.Submit(strings.TrimSpace(line)); err != nil {
			fmt.Printf("%v\n", err)
		}
	}

	profile, err := intake.Profile()
	if err != nil {
		return err
	}
	if err := coord.OnChatCompleted(cmd.Context(), profile); err != nil {
		return err
	}
	fmt.Println("Chat profile saved as the active profile source.")
	return nil
}

func runRemoteChat(cmd *cobra.Command) error {
	userID, err := resolveUserID()
	if err != nil {
		return err
	}
	title := clientTitle
	if title == "" {
		title = "My Portfolio"
	}

	remote := chat.NewRemote(newAPIClient())
	question, err := remote.Start(cmd.Context(), userID, title)
	if err != nil {
		return err
	}

	reader := bufio.NewReader(os.Stdin)
	for {
		fmt.Printf("%s\n> ", question)
		line, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("failed to read answer: %w", err)
		}
		next, ok, err := remote.Answer(cmd.Context(), strings.TrimSpace(line))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Printf("Chat complete. Portfolio %s is generating.\n", remote.PortfolioID())
			return nil
		}
		question = next
	}
}

func runSaveJD(cmd *cobra.Command, _ []string) error {
	coord, _, err := newCoordinator()
	if err != nil {
		return err
	}

	content := jdContent
	if jdFile != "" {
		data, err := os.ReadFile(jdFile)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", jdFile, err)
		}
		content = string(data)
	}

	id, err := coord.SaveJobDescription(cmd.Context(), jdTitle, content)
	if err != nil {
		return err
	}
	fmt.Printf("Job description saved: %s\n", id)
	return nil
}

func runClearJD(_ *cobra.Command, _ []string) error {
	coord, _, err := newCoordinator()
	if err != nil {
		return err
	}
	coord.ClearJobDescription()
	fmt.Println("Job description draft cleared.")
	return nil
}

func runStatus(_ *cobra.Command, _ []string) error {
	coord, _, err := newCoordinator()
	if err != nil {
		return err
	}

	d := coord.Draft()
	switch {
	case d.ResumeRef != nil:
		fmt.Printf("Profile source: resume %s (%s, %s)\n", d.ResumeRef.ResumeID, d.ResumeRef.FileName, d.ResumeRef.Status)
	case d.ChatRef != nil:
		fmt.Printf("Profile source: chat %s (%s)\n", d.ChatRef.ResumeID, d.ChatRef.Status)
	default:
		fmt.Println("Profile source: none")
	}
	if d.JobDescriptionID != "" {
		fmt.Printf("Job description: %s\n", d.JobDescriptionID)
	} else {
		fmt.Println("Job description: not saved")
	}
	if !d.LastUpdated.IsZero() {
		fmt.Printf("Last updated: %s\n", d.LastUpdated.Format("2006-01-02 15:04:05 MST"))
	}

	if coord.IsComplete() {
		fmt.Println("Ready: all generation actions available.")
	} else {
		fmt.Println("Incomplete: provide a profile source and save a job description first.")
	}
	for _, action := range workflow.Actions {
		state := coord.ActionStatus(action)
		if state.Phase == workflow.PhaseError {
			fmt.Printf("  %s: last attempt failed: %s\n", action, state.Err)
		}
	}
	return nil
}
