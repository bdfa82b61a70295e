package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/spf13/cobra"

	"github.com/spandey/resume-site/internal/rendering"
)

var (
	exportDir     string
	exportOutFile string
	exportTimeout time.Duration
)

var exportPDFCmd = &cobra.Command{
	Use:   "export-pdf",
	Short: "Print the generated page to PDF",
	Long:  "Loads the generated index.html in a headless browser and prints it to a PDF file. Requires Chrome/Chromium to be installed on the system.",
	RunE:  runExportPDF,
}

func init() {
	exportPDFCmd.Flags().StringVar(&exportDir, "dir", "docs", "Directory containing the generated page")
	exportPDFCmd.Flags().StringVar(&exportOutFile, "out", "resume.pdf", "Path of the PDF to write")
	exportPDFCmd.Flags().DurationVar(&exportTimeout, "timeout", 60*time.Second, "Browser rendering timeout")
	rootCmd.AddCommand(exportPDFCmd)
}

func runExportPDF(_ *cobra.Command, _ []string) error {
	indexPath := filepath.Join(exportDir, rendering.OutputFile)
	if _, err := os.Stat(indexPath); err != nil {
		return fmt.Errorf("no generated page at %s: %w (run `resume_site build` first)", indexPath, err)
	}

	absPath, err := filepath.Abs(indexPath)
	if err != nil {
		return fmt.Errorf("failed to resolve page path: %w", err)
	}

	pdf, err := printToPDF(context.Background(), "file://"+absPath, exportTimeout)
	if err != nil {
		return fmt.Errorf("failed to print page to PDF: %w", err)
	}

	if err := os.WriteFile(exportOutFile, pdf, 0644); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}

	fmt.Fprintf(os.Stdout, "Exported PDF resume at %s\n", exportOutFile)
	return nil
}

// printToPDF renders a page in a headless browser and returns the printed
// PDF bytes.
func printToPDF(ctx context.Context, url string, timeout time.Duration) ([]byte, error) {
	allocCtx, cancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)...,
	)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, timeout)
	defer cancel()

	var pdf []byte
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			buf, _, err := page.PrintToPDF().
				WithPrintBackground(true).
				WithPreferCSSPageSize(true).
				Do(ctx)
			if err != nil {
				return err
			}
			pdf = buf
			return nil
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("browser rendering failed: %w", err)
	}

	return pdf, nil
}
