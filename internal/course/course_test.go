package course

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func datePtr(t *testing.T, value string) *time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", value)
	require.NoError(t, err)
	return &parsed
}

func TestMerge_UnionSemantics(t *testing.T) {
	completed := []Record{
		{Origin: OriginCSV, Title: "Go Fundamentals", Completed: true},
		{Origin: OriginCSV, Title: "Data Analysis", Completed: true},
	}
	external := []Record{
		{Origin: OriginExternal, Title: "X", Status: "completed"},
		{Origin: OriginExternal, Title: "Y", Status: "in-progress"},
	}

	certs := Merge(completed, external)

	require.Len(t, certs, 3)
	assert.Equal(t, "Go Fundamentals", certs[0].Title)
	assert.Equal(t, "Data Analysis", certs[1].Title)
	assert.Equal(t, "X", certs[2].Title)
}

func TestMerge_StatusMatchIsCaseSensitive(t *testing.T) {
	external := []Record{
		{Title: "Upper", Status: "Completed"},
		{Title: "Exact", Status: "completed"},
	}

	certs := Merge(nil, external)

	require.Len(t, certs, 1)
	assert.Equal(t, "Exact", certs[0].Title)
}

func TestMerge_NoDeduplication(t *testing.T) {
	completed := []Record{{Title: "Same Course", Completed: true}}
	external := []Record{{Title: "Same Course", Status: "completed"}}

	certs := Merge(completed, external)

	assert.Len(t, certs, 2)
}

func TestMerge_EmptyInputs(t *testing.T) {
	assert.Empty(t, Merge(nil, nil))
}

func TestSortByCompletion_MostRecentFirstUndatedLast(t *testing.T) {
	records := []Record{
		{Title: "Undated"},
		{Title: "Older", CompletedAt: datePtr(t, "2023-06-01")},
		{Title: "Newer", CompletedAt: datePtr(t, "2024-01-01")},
	}

	SortByCompletion(records)

	require.Len(t, records, 3)
	assert.Equal(t, "Newer", records[0].Title)
	assert.Equal(t, "Older", records[1].Title)
	assert.Equal(t, "Undated", records[2].Title)
}

func TestSortByCompletion_StableForEqualDates(t *testing.T) {
	records := []Record{
		{Title: "First", CompletedAt: datePtr(t, "2024-01-01")},
		{Title: "Second", CompletedAt: datePtr(t, "2024-01-01")},
	}

	SortByCompletion(records)

	assert.Equal(t, "First", records[0].Title)
	assert.Equal(t, "Second", records[1].Title)
}
