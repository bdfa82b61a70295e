// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/spandey/resume-site/internal/course"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintCSVSummary outputs the CSV ingest result: total learning hours and the
// most recent completed courses.
func (p *Printer) PrintCSVSummary(totalHours float64, completed []course.Record) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Total hours:  %.1f\n", totalHours))
	sb.WriteString(fmt.Sprintf("Completed:    %d\n", len(completed)))

	if len(completed) > 0 {
		sb.WriteString("\nMost recent:\n")
		count := min(len(completed), maxItemsToShow)
		for i := 0; i < count; i++ {
			rec := completed[i]
			sb.WriteString(fmt.Sprintf("  • %s", rec.Title))
			if rec.CompletedDisplay != "" {
				sb.WriteString(fmt.Sprintf(" (%s)", rec.CompletedDisplay))
			}
			sb.WriteString("\n")
		}
		if len(completed) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(completed)-maxItemsToShow))
		}
	}

	p.printBox("CSV Export", strings.TrimRight(sb.String(), "\n"))
}

// PrintFetchSummary outputs the remote fetch result.
func (p *Printer) PrintFetchSummary(records []course.Record) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Completed courses from API: %d\n", len(records)))
	count := min(len(records), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", records[i].Title))
	}
	if len(records) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(records)-maxItemsToShow))
	}

	p.printBox("Coursera API", strings.TrimRight(sb.String(), "\n"))
}

// PrintMergeSummary outputs the certification merge result.
func (p *Printer) PrintMergeSummary(completed, external, certifications []course.Record) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Completed source:  %d\n", len(completed)))
	sb.WriteString(fmt.Sprintf("External records:  %d\n", len(external)))
	sb.WriteString(fmt.Sprintf("Certifications:    %d", len(certifications)))

	p.printBox("Merge", sb.String())
}
