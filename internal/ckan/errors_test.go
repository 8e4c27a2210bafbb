package ckan

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAPIErrorError(t *testing.T) {
	tests := []struct {
		name     string
		err      *APIError
		expected string
	}{
		{
			name:     "status with detail",
			err:      &APIError{Operation: "package_show", StatusCode: 404, Detail: "Not found"},
			expected: "package_show failed with status 404: Not found",
		},
		{
			name:     "status without detail",
			err:      &APIError{Operation: "package_search", StatusCode: 503},
			expected: "package_search failed with status 503",
		},
		{
			name:     "status with read error",
			err:      &APIError{Operation: "group_list", StatusCode: 200, Err: errors.New("unexpected EOF")},
			expected: "group_list failed with status 200: unexpected EOF",
		},
		{
			name:     "no response",
			err:      &APIError{Operation: "tag_list", Err: errors.New("dial tcp: connection refused")},
			expected: "tag_list failed: dial tcp: connection refused (no response received from server)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestAPIErrorUnwrap(t *testing.T) {
	cause := errors.New("timeout")
	err := &APIError{Operation: "package_search", Err: cause}
	assert.True(t, errors.Is(err, cause))
}

func TestErrorDetail(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected string
	}{
		{
			name:     "CKAN envelope with message",
			body:     `{"success": false, "error": {"message": "Not found", "__type": "Not Found Error"}}`,
			expected: "Not found",
		},
		{
			name:     "CKAN envelope with bare string error",
			body:     `{"success": false, "error": "Access denied"}`,
			expected: "Access denied",
		},
		{
			name:     "envelope without message falls back to error value",
			body:     `{"success": false, "error": {"q": ["Missing value"]}}`,
			expected: `{"q": ["Missing value"]}`,
		},
		{
			name:     "non-JSON body passes through",
			body:     "<html>502 Bad Gateway</html>",
			expected: "<html>502 Bad Gateway</html>",
		},
		{
			name:     "empty body",
			body:     "",
			expected: "",
		},
		{
			name:     "whitespace only body",
			body:     "  \n ",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, errorDetail([]byte(tt.body)))
		})
	}
}

func TestErrorDetailTruncatesLongBodies(t *testing.T) {
	body := "<html>" + strings.Repeat("x", 2000) + "</html>"
	detail := errorDetail([]byte(body))
	assert.LessOrEqual(t, len(detail), maxDetailLen)
	assert.True(t, strings.HasSuffix(detail, "..."))
}
