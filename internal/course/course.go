// Package course defines the unified course record shared by all data sources
// and the merge/sort logic that derives the certifications list.
package course

import (
	"sort"
	"time"
)

// Origin identifies which data source produced a record.
type Origin string

const (
	// OriginCSV marks records derived from the local CSV export.
	OriginCSV Origin = "csv"
	// OriginRemote marks records fetched from the Coursera API.
	OriginRemote Origin = "remote"
	// OriginExternal marks records loaded from the external JSON file.
	OriginExternal Origin = "external"
)

// StatusCompleted is the external-source status value that admits a record
// into the certifications list. The match is exact and case-sensitive.
const StatusCompleted = "completed"

// Record is the canonical representation of a course entry. All sources map
// into this shape; the renderer and merger only ever see Records.
type Record struct {
	Origin   Origin
	Title    string
	Provider string
	Hours    float64

	// Completed reports whether the source considers the course finished.
	Completed bool

	// CompletedAt is nil when the source carries no parseable completion
	// date. CompletedDisplay is the human-readable form ("15 Mar 2024"),
	// empty when CompletedAt is nil.
	CompletedAt      *time.Time
	CompletedDisplay string

	// Status is the raw status string from the source, when it has one.
	Status string

	URL string
}

// Merge builds the certifications list: the completed-source records (API or
// CSV, whichever the caller selected) followed by the external records whose
// status is exactly "completed". No de-duplication is performed; a course
// present in both sources appears twice. Each source's internal order is
// preserved.
func Merge(completed, external []Record) []Record {
	out := make([]Record, 0, len(completed)+len(external))
	out = append(out, completed...)
	for _, r := range external {
		if r.Status == StatusCompleted {
			out = append(out, r)
		}
	}
	return out
}

// SortByCompletion orders records most-recent-first by completion date.
// Records without a date sort last. The sort is stable so same-date records
// keep their source order.
func SortByCompletion(records []Record) {
	sort.SliceStable(records, func(i, j int) bool {
		a, b := records[i].CompletedAt, records[j].CompletedAt
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return a.After(*b)
		}
	})
}
