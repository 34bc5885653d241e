// Package main provides the entry point for the resume builder HTTP API and
// its companion CLI commands.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "curriculo",
	Short: "Construtor de Currículos API",
	Long:  "Construtor de Currículos extracts structured resume data from PDF/Word uploads and renders resumes into four fixed layouts as PDF or Word documents.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
