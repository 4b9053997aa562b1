package backend

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrTimeout      = errors.New("backend_timeout")
	ErrUnavailable  = errors.New("backend_unavailable")
	ErrNotFound     = errors.New("resource_not_found")
	ErrUnauthorized = errors.New("unauthorized")
)

// StatusError carries a non-2xx backend response: the HTTP status and
// the human-readable message from the error payload when one was
// present.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend error [%d]", e.StatusCode)
	}
	return fmt.Sprintf("backend error [%d]: %s", e.StatusCode, e.Message)
}

// Is makes errors.Is match the status sentinels, so a 401 StatusError
// still satisfies ErrUnauthorized while keeping the backend's message.
func (e *StatusError) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized
	case ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	}
	return false
}

// Message returns the backend's message for err when it is a
// StatusError, otherwise the fallback. Views use it to pick what to
// show the user.
func Message(err error, fallback string) string {
	var se *StatusError
	if errors.As(err, &se) && se.Message != "" {
		return se.Message
	}
	return fallback
}

// detailPayload is the backend's error body: {"detail": "..."}. Detail
// may also be a structured validation list, in which case only the raw
// form is kept.
type detailPayload struct {
	Detail json.RawMessage `json:"detail"`
}

func decodeError(resp *http.Response) error {
	se := &StatusError{StatusCode: resp.StatusCode}

	var payload detailPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil && len(payload.Detail) > 0 {
		var msg string
		if err := json.Unmarshal(payload.Detail, &msg); err == nil && msg != "" {
			se.Message = msg
		} else {
			se.Message = string(payload.Detail)
		}
	}

	return se
}
