// Package main provides the resume_site CLI that builds a static HTML resume page.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_site",
	Short: "Static HTML resume page builder",
	Long:  "resume_site merges a personal profile with course-completion data from a CSV export, the Coursera API, and an external JSON source, and renders a static HTML resume page suitable for GitHub Pages hosting.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
