package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/haruapp/haru/internal/apperr"
)

// ErrConflict marks a 409 response. It is recoverable and never retried;
// callers surface it as a warning.
var ErrConflict = &apperr.Error{
	Message: "already registered",
}

// StatusError is a non-2xx backend response.
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf(
			"%s %s: %s (status %d)",
			e.Method,
			e.Path,
			e.Message,
			e.StatusCode,
		)
	}

	return fmt.Sprintf("%s %s: status %d", e.Method, e.Path, e.StatusCode)
}

func statusError(method, path string, resp *http.Response) *StatusError {
	var body struct {
		Message string `json:"message"`
	}

	// a missing or malformed error body is fine, the status carries enough
	_ = json.NewDecoder(resp.Body).Decode(&body)

	return &StatusError{
		Method:     method,
		Path:       path,
		StatusCode: resp.StatusCode,
		Message:    body.Message,
	}
}
