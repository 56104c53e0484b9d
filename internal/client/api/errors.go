package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/kartiksirsilla09/peersphere-cli/internal/common"
)

// Error is a non-2xx response from the collaborator. Message carries the
// server-supplied `message` field when one was present in the body.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("server returned status %d", e.Status)
}

// Unwrap maps well-known status codes onto shared sentinels so callers can
// use errors.Is without inspecting status codes.
func (e *Error) Unwrap() error {
	switch e.Status {
	case http.StatusUnauthorized:
		return common.ErrorUnauthorized
	case http.StatusNotFound:
		return common.ErrorNotFound
	}
	return nil
}

// parseResponseError reads the body of a non-2xx response and translates it
// into an *Error, preserving the server's `message` field when the body
// matches the standard error shape.
func parseResponseError(resp *http.Response) error {
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return &Error{Status: resp.StatusCode}
	}

	var payload struct {
		Message string `json:"message"`
	}
	if json.Unmarshal(body, &payload) == nil && payload.Message != "" {
		return &Error{Status: resp.StatusCode, Message: payload.Message}
	}
	return &Error{Status: resp.StatusCode}
}

// Message extracts the server-supplied error message from err, or "" when
// the error did not carry one.
func Message(err error) string {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return ""
}
