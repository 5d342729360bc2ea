package strings

import (
	"strings"
)

// DefaultEntryMaxLen is the default maximum length for log entries and
// descriptions in tabulated output. Shared across packages so tables
// truncate consistently.
const DefaultEntryMaxLen = 120

// MinTruncateLen is the minimum maxLen value for TruncateLine.
// Values smaller than this would not leave room for meaningful content plus "...".
const MinTruncateLen = 4

// TruncateLine truncates a string to maxLen characters and ensures
// single-line output. It collapses all whitespace runs (including newlines)
// into single spaces and adds "..." if truncated.
//
// The function operates on runes rather than bytes, preventing truncation
// in the middle of multi-byte characters.
//
// If maxLen is less than MinTruncateLen (4), it is clamped to MinTruncateLen
// to ensure there is room for at least one character plus "...".
func TruncateLine(s string, maxLen int) string {
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
