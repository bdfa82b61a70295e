package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/spandey/resume-site/internal/course"
	"github.com/spandey/resume-site/internal/coursera"
	"github.com/spandey/resume-site/internal/external"
	"github.com/spandey/resume-site/internal/ingest"
	"github.com/spandey/resume-site/internal/observability"
	"github.com/spandey/resume-site/internal/profile"
	"github.com/spandey/resume-site/internal/rendering"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Generate the resume page",
	Long:  "Merges the profile with course data from the CSV export, the Coursera API (when a token is supplied), and the external courses file, then renders index.html into the output directory.",
	RunE:  runBuild,
}

var (
	buildToken        string
	buildCSVPath      string
	buildExternalPath string
	buildOutDir       string
	buildProfilePath  string
	buildTemplatePath string
	buildVerbose      bool
)

func init() {
	buildCmd.Flags().StringVar(&buildToken, "coursera-token", "", "Coursera API token (defaults to COURSERA_TOKEN)")
	buildCmd.Flags().StringVar(&buildCSVPath, "csv", "data/coursera_export.csv", "Path to the Coursera CSV export")
	buildCmd.Flags().StringVar(&buildExternalPath, "external", "data/external_courses.json", "Path to the external courses JSON file")
	buildCmd.Flags().StringVar(&buildOutDir, "out", "docs", "Output directory for the generated page")
	buildCmd.Flags().StringVar(&buildProfilePath, "profile", "", "Path to a JSON profile override file")
	buildCmd.Flags().StringVar(&buildTemplatePath, "template", "", "Path to a custom page template")
	buildCmd.Flags().BoolVarP(&buildVerbose, "verbose", "v", false, "Print detailed build information")

	rootCmd.AddCommand(buildCmd)
}

// buildOptions carries everything one build needs. BaseURL overrides the
// Coursera API root and exists for tests.
type buildOptions struct {
	Token        string
	BaseURL      string
	CSVPath      string
	ExternalPath string
	OutDir       string
	ProfilePath  string
	TemplatePath string
	Verbose      bool
	Out          io.Writer
}

func runBuild(_ *cobra.Command, _ []string) error {
	token := buildToken
	if token == "" {
		token = os.Getenv("COURSERA_TOKEN")
	}

	_, err := runBuildWith(buildOptions{
		Token:        token,
		CSVPath:      buildCSVPath,
		ExternalPath: buildExternalPath,
		OutDir:       buildOutDir,
		ProfilePath:  buildProfilePath,
		TemplatePath: buildTemplatePath,
		Verbose:      buildVerbose,
		Out:          os.Stdout,
	})
	return err
}

// runBuildWith runs the whole pipeline: CSV ingest, the remote fetch or the
// CSV completed list, external load, merge, render, write. Returns the path
// of the written page.
func runBuildWith(opts buildOptions) (string, error) {
	prof, err := profile.Load(opts.ProfilePath)
	if err != nil {
		return "", fmt.Errorf("failed to load profile: %w", err)
	}

	// The CSV is always parsed: the total-hours figure comes from it even
	// when completions come from the API.
	totalHours, csvCompleted, err := ingest.ParseCSV(opts.CSVPath)
	if err != nil {
		return "", fmt.Errorf("failed to parse CSV export: %w", err)
	}

	printer := observability.NewPrinter(opts.Out)
	if opts.Verbose {
		printer.PrintCSVSummary(totalHours, csvCompleted)
	}

	completed := csvCompleted
	if opts.Token != "" {
		client := coursera.New(opts.Token)
		if opts.BaseURL != "" {
			client.BaseURL = opts.BaseURL
		}
		completed, err = client.FetchCompletions(context.Background())
		if err != nil {
			return "", fmt.Errorf("failed to fetch Coursera enrollments: %w", err)
		}
		if opts.Verbose {
			printer.PrintFetchSummary(completed)
		}
	}

	externalRecords, err := external.Load(opts.ExternalPath)
	if err != nil {
		return "", fmt.Errorf("failed to load external courses: %w", err)
	}

	certifications := course.Merge(completed, externalRecords)
	if opts.Verbose {
		printer.PrintMergeSummary(completed, externalRecords, certifications)
	}

	data := &rendering.TemplateData{
		Profile:        prof,
		TotalHours:     totalHours,
		Completed:      completed,
		External:       externalRecords,
		Certifications: certifications,
		BuildID:        uuid.NewString(),
		GeneratedAt:    time.Now(),
	}

	html, err := rendering.RenderPage(data, opts.TemplatePath)
	if err != nil {
		return "", err
	}

	outPath, err := rendering.WritePage(opts.OutDir, html)
	if err != nil {
		return "", err
	}

	fmt.Fprintf(opts.Out, "Generated HTML resume at %s\n", outPath)
	return outPath, nil
}
