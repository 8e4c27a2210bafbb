package strings

import (
	"strings"
)

// DefaultDescriptionMaxLen is the default maximum length for dataset
// titles and tool descriptions in table output.
const DefaultDescriptionMaxLen = 60

// MinTruncateLen is the smallest usable maxLen for Truncate. Values
// smaller than this would not leave room for content plus "...".
const MinTruncateLen = 4

// Truncate collapses a string onto a single line and cuts it to maxLen
// characters, appending "..." when something was removed. Catalog
// metadata routinely embeds newlines and runs of whitespace, so the
// string is normalized with strings.Fields before measuring.
//
// Truncation operates on runes rather than bytes so multi-byte
// characters are never split. maxLen values below MinTruncateLen are
// clamped.
func Truncate(s string, maxLen int) string {
	if maxLen < MinTruncateLen {
		maxLen = MinTruncateLen
	}

	s = strings.Join(strings.Fields(s), " ")

	runes := []rune(s)
	if len(runes) > maxLen {
		return string(runes[:maxLen-3]) + "..."
	}
	return s
}
