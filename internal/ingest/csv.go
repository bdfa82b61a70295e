// Package ingest reads the learning-platform CSV export: it accumulates total
// learning hours across every row and extracts completed-course records with
// normalized completion dates.
package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spandey/resume-site/internal/course"
)

// Provider is the provider label stamped on every CSV-derived record.
const Provider = "Coursera"

// Header columns the ingestor reads. Any other column is ignored.
const (
	colHours          = "Hours"
	colStatus         = "Status"
	colCompletionDate = "Completion Date"
	colCourseName     = "Course Name"
)

// completedStatuses are the status values (compared case-insensitively) that
// mark a row as a completed course.
var completedStatuses = map[string]struct{}{
	"completed":          {},
	"passed":             {},
	"certificate earned": {},
}

// dateLayouts are tried in order against the first ten characters of the
// completion-date field. First match wins; no match means the date is absent.
var dateLayouts = []string{"2006-01-02", "02-01-2006", "02/01/2006"}

// displayLayout renders a parsed date as e.g. "15 Mar 2024".
const displayLayout = "02 Jan 2006"

// ParseCSV reads the export at path and returns the total learning hours
// across all rows and the completed-course records, sorted most recent first
// with undated records last. A missing file is not an error: it yields zero
// hours and no records. Unparsable hours and date fields default silently;
// the row is still counted.
func ParseCSV(path string) (float64, []course.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil, nil
		}
		return 0, nil, &ParseError{Message: fmt.Sprintf("failed to open %s", path), Cause: err}
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // rows may be ragged; missing cells read as empty

	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return 0, nil, nil
		}
		return 0, nil, &ParseError{Message: "failed to read header", Cause: err}
	}
	columns := indexColumns(header)

	var total float64
	var completed []course.Record

	for {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return 0, nil, &ParseError{Message: "failed to read row", Cause: err}
		}

		hours := parseHours(field(row, columns, colHours))
		total += hours

		status := strings.ToLower(strings.TrimSpace(field(row, columns, colStatus)))
		if _, ok := completedStatuses[status]; !ok {
			continue
		}

		rec := course.Record{
			Origin:    course.OriginCSV,
			Title:     field(row, columns, colCourseName),
			Provider:  Provider,
			Hours:     round1(hours),
			Completed: true,
			Status:    status,
		}
		if dt, ok := parseCompletionDate(field(row, columns, colCompletionDate)); ok {
			rec.CompletedAt = &dt
			rec.CompletedDisplay = dt.Format(displayLayout)
		}
		completed = append(completed, rec)
	}

	course.SortByCompletion(completed)
	return round1(total), completed, nil
}

// indexColumns maps header names to their positions.
func indexColumns(header []string) map[string]int {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}
	return columns
}

// field returns the named cell of a row, or "" when the column is missing or
// the row is too short.
func field(row []string, columns map[string]int, name string) string {
	i, ok := columns[name]
	if !ok || i >= len(row) {
		return ""
	}
	return row[i]
}

// parseHours parses an hours cell, defaulting to zero on anything unparsable.
func parseHours(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	h, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return h
}

// parseCompletionDate tries the known layouts against the first ten
// characters of the cell. Returns ok=false when nothing matches.
func parseCompletionDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if len(s) > 10 {
		s = s[:10]
	}
	for _, layout := range dateLayouts {
		if dt, err := time.Parse(layout, s); err == nil {
			return dt, true
		}
	}
	return time.Time{}, false
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
