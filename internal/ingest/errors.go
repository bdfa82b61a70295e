// Package ingest reads the learning-platform CSV export.
package ingest

import "fmt"

// ParseError represents a failure to read or parse the CSV export.
type ParseError struct {
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("csv parse error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("csv parse error: %s", e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}
