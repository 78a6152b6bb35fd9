package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/portfolioai/internal/api"
	"github.com/jonathan/portfolioai/internal/draft"
	"github.com/jonathan/portfolioai/internal/workflow"
)

// Client-side flags shared by the workflow commands.
var (
	apiBase      string
	clientUserID string
	clientTitle  string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&apiBase, "api", "", "Backend base URL (defaults to PORTFOLIOAI_API or http://localhost:8080)")
	rootCmd.PersistentFlags().StringVar(&clientUserID, "user", "", "User ID (defaults to PORTFOLIOAI_USER_ID)")
}

func resolveAPIBase() string {
	if apiBase != "" {
		return apiBase
	}
	if env := os.Getenv("PORTFOLIOAI_API"); env != "" {
		return env
	}
	return "http://localhost:8080"
}

func resolveUserID() (string, error) {
	if clientUserID != "" {
		return clientUserID, nil
	}
	if env := os.Getenv("PORTFOLIOAI_USER_ID"); env != "" {
		return env, nil
	}
	return "", fmt.Errorf("user ID required: pass --user or set PORTFOLIOAI_USER_ID")
}

// draftDir resolves the directory holding the local profile draft.
func draftDir() (string, error) {
	if env := os.Getenv("PORTFOLIOAI_HOME"); env != "" {
		return env, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, ".portfolioai"), nil
}

func newAPIClient() *api.Client {
	var opts []api.Option
	if token := os.Getenv("PORTFOLIOAI_TOKEN"); token != "" {
		opts = append(opts, api.WithAuthToken(token))
	}
	return api.NewClient(resolveAPIBase(), opts...)
}

// newCoordinator builds the workflow coordinator with its draft store and
// backend client.
func newCoordinator() (*workflow.Coordinator, *draft.Store, error) {
	userID, err := resolveUserID()
	if err != nil {
		return nil, nil, err
	}
	dir, err := draftDir()
	if err != nil {
		return nil, nil, err
	}
	store, err := draft.NewStore(dir)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open draft store: %w", err)
	}

	title := clientTitle
	if title == "" {
		title = "My Portfolio"
	}
	session := workflow.Session{UserID: userID, Title: title}
	return workflow.NewCoordinator(session, newAPIClient(), store, nil), store, nil
}
