// Package coursera provides a read-only client for the Coursera enrollments
// API, used as the authoritative source of completed courses when an access
// token is supplied.
package coursera

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/spandey/resume-site/internal/course"
)

// DefaultBaseURL is the Coursera API root.
const DefaultBaseURL = "https://api.coursera.org"

// Provider is the provider label stamped on every fetched record.
const Provider = "Coursera"

// DefaultTimeout bounds the single enrollment-listing request. There is no
// retry: a failure aborts the run.
const DefaultTimeout = 30 * time.Second

const (
	enrollmentsPath   = "/api/onDemandEnrollments.v1"
	enrollmentsFields = "courseName,workload,completionDate,slug"
	learnURLPrefix    = "https://www.coursera.org/learn/"
)

// Client calls the Coursera API with a bearer token.
type Client struct {
	BaseURL string
	Token   string
	HTTP    *http.Client
}

// New returns a client against the production API.
func New(token string) *Client {
	return &Client{
		BaseURL: DefaultBaseURL,
		Token:   token,
		HTTP:    &http.Client{Timeout: DefaultTimeout},
	}
}

type enrollmentsResponse struct {
	Elements []enrollmentElement `json:"elements"`
}

type enrollmentElement struct {
	CourseName string   `json:"courseName"`
	Workload   *float64 `json:"workload"`
	// CompletionDate is epoch milliseconds; absent or zero means the course
	// is not completed yet.
	CompletionDate *int64 `json:"completionDate"`
	Slug           string `json:"slug"`
}

// FetchCompletions performs one authenticated GET against the enrollments
// endpoint and maps every element with a completion date to a record. The
// provider's ordering is preserved. Any transport error or non-2xx status
// propagates to the caller.
func (c *Client) FetchCompletions(ctx context.Context) ([]course.Record, error) {
	reqURL := c.BaseURL + enrollmentsPath + "?" + url.Values{
		"q":      {"me"},
		"fields": {enrollmentsFields},
	}.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("coursera: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.Token)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("coursera: request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("coursera: read response body: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var out enrollmentsResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("coursera: parse response: %w", err)
	}

	records := make([]course.Record, 0, len(out.Elements))
	for _, e := range out.Elements {
		if e.CompletionDate == nil || *e.CompletionDate == 0 {
			continue
		}
		rec := course.Record{
			Origin:    course.OriginRemote,
			Title:     e.CourseName,
			Provider:  Provider,
			Completed: true,
			URL:       learnURLPrefix + e.Slug,
		}
		if e.Workload != nil {
			rec.Hours = *e.Workload
		}
		completedAt := time.UnixMilli(*e.CompletionDate).UTC()
		rec.CompletedAt = &completedAt
		rec.CompletedDisplay = completedAt.Format("02 Jan 2006")
		records = append(records, rec)
	}
	return records, nil
}
