package ckan

import (
	"encoding/json"
	"fmt"
	"strings"

	pkgstrings "github.com/melaodoidao/datagov-mcp-server/pkg/strings"
)

// maxDetailLen caps server-supplied error detail so a stray HTML error
// page does not flood a diagnostic line.
const maxDetailLen = 500

// APIError describes a failed request to a CKAN endpoint or resource URL.
// It distinguishes responses that arrived with an error status from
// requests that never completed: StatusCode is zero in the latter case
// and Err carries the transport error.
type APIError struct {
	// Operation names what was attempted: the CKAN action for API calls,
	// the target URL for resource fetches.
	Operation string

	// StatusCode is the HTTP status of the response, or 0 when no
	// response was received.
	StatusCode int

	// Detail is the server-supplied error message extracted from the
	// response body, if any.
	Detail string

	// Err is the underlying transport error when the request never
	// produced a response, or the read error when the body was cut off.
	Err error
}

// Error renders the failure as a single diagnostic line. The line always
// includes the HTTP status when a response arrived, so callers can pass
// it on without unpacking the struct.
func (e *APIError) Error() string {
	switch {
	case e.StatusCode > 0 && e.Detail != "":
		return fmt.Sprintf("%s failed with status %d: %s", e.Operation, e.StatusCode, e.Detail)
	case e.StatusCode > 0 && e.Err != nil:
		return fmt.Sprintf("%s failed with status %d: %v", e.Operation, e.StatusCode, e.Err)
	case e.StatusCode > 0:
		return fmt.Sprintf("%s failed with status %d", e.Operation, e.StatusCode)
	case e.Err != nil:
		return fmt.Sprintf("%s failed: %v (no response received from server)", e.Operation, e.Err)
	default:
		return fmt.Sprintf("%s failed", e.Operation)
	}
}

// Unwrap exposes the transport error for errors.Is/As chains.
func (e *APIError) Unwrap() error {
	return e.Err
}

// errorDetail pulls a human-readable message out of a CKAN error body.
// CKAN wraps failures as {"success": false, "error": {...}} where the
// error value carries a message field, or is a bare string; anything
// else falls back to the raw body, truncated.
func errorDetail(body []byte) string {
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" {
		return ""
	}

	var envelope struct {
		Error json.RawMessage `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && len(envelope.Error) > 0 {
		var withMessage struct {
			Message string `json:"message"`
		}
		if err := json.Unmarshal(envelope.Error, &withMessage); err == nil && withMessage.Message != "" {
			return withMessage.Message
		}

		var plain string
		if err := json.Unmarshal(envelope.Error, &plain); err == nil && plain != "" {
			return plain
		}

		return pkgstrings.Truncate(string(envelope.Error), maxDetailLen)
	}

	return pkgstrings.Truncate(trimmed, maxDetailLen)
}
