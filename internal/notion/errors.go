package notion

import "fmt"

// APIError is a non-2xx response from the workspace API. Code and
// Message are surfaced to the user verbatim for diagnosis.
type APIError struct {
	Status  int    `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("workspace api: %s (%d): %s", e.Code, e.Status, e.Message)
	}
	return fmt.Sprintf("workspace api: status %d: %s", e.Status, e.Message)
}
