// Package main provides the PortfolioAI command line entry point: the REST
// API server plus a client for the profile workflow.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "portfolioai",
	Short: "PortfolioAI server and workflow client",
	Long:  "PortfolioAI turns a resume or a chat Q&A into a generated portfolio site, optimized resume, cover letter, mock interview, and career guide.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
