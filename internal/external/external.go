// Package external loads the supplementary course list from a third-party
// JSON file. Records may be in progress or completed; missing fields default
// silently.
package external

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spandey/resume-site/internal/course"
)

// DefaultStatus is assumed for records without a status field.
const DefaultStatus = "in-progress"

type externalCourse struct {
	Title          string  `json:"title"`
	Provider       string  `json:"provider"`
	EstimatedHours float64 `json:"estimated_hours"`
	Status         string  `json:"status"`
	URL            string  `json:"url"`
}

// Load parses the JSON array at path into records. A missing file yields an
// empty list, not an error. Unknown fields are ignored and missing fields get
// documented defaults: provider "", hours 0, status "in-progress", url "".
func Load(path string) ([]course.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read external courses file %s: %w", path, err)
	}

	var items []externalCourse
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("failed to parse external courses JSON: %w", err)
	}

	records := make([]course.Record, 0, len(items))
	for _, item := range items {
		status := item.Status
		if status == "" {
			status = DefaultStatus
		}
		records = append(records, course.Record{
			Origin:    course.OriginExternal,
			Title:     item.Title,
			Provider:  item.Provider,
			Hours:     item.EstimatedHours,
			Status:    status,
			Completed: status == course.StatusCompleted,
			URL:       item.URL,
		})
	}
	return records, nil
}
