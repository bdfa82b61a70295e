package ingest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spandey/resume-site/internal/course"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "export.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestParseCSV_MissingFileYieldsEmptyData(t *testing.T) {
	total, completed, err := ParseCSV(filepath.Join(t.TempDir(), "nope.csv"))
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, completed)
}

func TestParseCSV_TotalHoursSumsAllRows(t *testing.T) {
	path := writeCSV(t, `Course Name,Status,Hours,Completion Date
Go Basics,Completed,2,2024-03-15
Stats 101,in progress,3.5,
Mystery,Not Started,,
`)

	total, completed, err := ParseCSV(path)
	require.NoError(t, err)
	assert.InDelta(t, 5.5, total, 1e-9)
	// Only the completed row makes the record list.
	require.Len(t, completed, 1)
	assert.Equal(t, "Go Basics", completed[0].Title)
}

func TestParseCSV_CompletedRowFields(t *testing.T) {
	path := writeCSV(t, `Course Name,Status,Hours,Completion Date
Go Basics,Completed,2,2024-03-15
`)

	_, completed, err := ParseCSV(path)
	require.NoError(t, err)
	require.Len(t, completed, 1)

	rec := completed[0]
	assert.Equal(t, course.OriginCSV, rec.Origin)
	assert.Equal(t, "Coursera", rec.Provider)
	assert.True(t, rec.Completed)
	assert.InDelta(t, 2.0, rec.Hours, 1e-9)
	require.NotNil(t, rec.CompletedAt)
	assert.Equal(t, "15 Mar 2024", rec.CompletedDisplay)
}

func TestParseCSV_StatusMatchingIsCaseInsensitive(t *testing.T) {
	path := writeCSV(t, `Course Name,Status,Hours,Completion Date
A,COMPLETED,1,2024-01-01
B,Passed,1,2024-01-02
C,certificate earned,1,2024-01-03
D,dropped,1,2024-01-04
`)

	_, completed, err := ParseCSV(path)
	require.NoError(t, err)
	assert.Len(t, completed, 3)
}

func TestParseCSV_DateFormatFallback(t *testing.T) {
	path := writeCSV(t, `Course Name,Status,Hours,Completion Date
ISO,Completed,1,2024-03-15
DashDMY,Completed,1,15-03-2024
SlashDMY,Completed,1,15/03/2024
Garbage,Completed,1,sometime last year
Timestamped,Completed,1,2024-03-15T10:30:00Z
`)

	_, completed, err := ParseCSV(path)
	require.NoError(t, err)
	require.Len(t, completed, 5)

	displays := map[string]string{}
	for _, rec := range completed {
		displays[rec.Title] = rec.CompletedDisplay
	}
	assert.Equal(t, "15 Mar 2024", displays["ISO"])
	assert.Equal(t, "15 Mar 2024", displays["DashDMY"])
	assert.Equal(t, "15 Mar 2024", displays["SlashDMY"])
	// Only the first ten characters are considered, so timestamps still parse.
	assert.Equal(t, "15 Mar 2024", displays["Timestamped"])
	assert.Equal(t, "", displays["Garbage"])
}

func TestParseCSV_SortedMostRecentFirstUndatedLast(t *testing.T) {
	path := writeCSV(t, `Course Name,Status,Hours,Completion Date
Older,Completed,1,2023-06-01
Undated,Completed,1,
Newer,Completed,1,2024-01-01
`)

	_, completed, err := ParseCSV(path)
	require.NoError(t, err)
	require.Len(t, completed, 3)
	assert.Equal(t, "Newer", completed[0].Title)
	assert.Equal(t, "Older", completed[1].Title)
	assert.Equal(t, "Undated", completed[2].Title)
	assert.Nil(t, completed[2].CompletedAt)
}

func TestParseCSV_HoursRoundedToOneDecimal(t *testing.T) {
	path := writeCSV(t, `Course Name,Status,Hours,Completion Date
A,Completed,2.345,2024-01-01
B,in progress,1.01,
`)

	total, completed, err := ParseCSV(path)
	require.NoError(t, err)
	assert.InDelta(t, 3.4, total, 1e-9)
	require.Len(t, completed, 1)
	assert.InDelta(t, 2.3, completed[0].Hours, 1e-9)
}

func TestParseCSV_RaggedRowsTolerated(t *testing.T) {
	path := writeCSV(t, `Course Name,Status,Hours,Completion Date
Short Row,Completed
Full Row,Completed,2,2024-01-01
`)

	total, completed, err := ParseCSV(path)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, total, 1e-9)
	assert.Len(t, completed, 2)
}

func TestParseCSV_EmptyFile(t *testing.T) {
	path := writeCSV(t, "")
	total, completed, err := ParseCSV(path)
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, completed)
}
