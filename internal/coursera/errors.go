package coursera

import "fmt"

// StatusError reports a non-success HTTP status from the Coursera API.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("coursera: API returned status %d: %s", e.StatusCode, e.Body)
}
