package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/spandey/resume-site/internal/sitecheck"
)

var validateFile string

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check a generated page for structural problems",
	Long:  "Parses a generated resume page and reports structural violations: missing charset or title, no name heading, missing sections, links without targets.",
	RunE:  runValidate,
}

func init() {
	validateCmd.Flags().StringVar(&validateFile, "file", "docs/index.html", "Path to the generated page")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, _ []string) error {
	violations, err := sitecheck.CheckFile(validateFile)
	if err != nil {
		return err
	}

	if len(violations) == 0 {
		fmt.Fprintf(os.Stdout, "%s: OK\n", validateFile)
		return nil
	}

	for _, v := range violations {
		fmt.Fprintf(os.Stderr, "%s: %s\n", validateFile, v)
	}
	return fmt.Errorf("%d violation(s) found in %s", len(violations), validateFile)
}
