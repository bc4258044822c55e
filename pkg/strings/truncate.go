// Package strings holds small text helpers shared by the rendering layers.
package strings

import (
	"strings"
)

// DefaultCellMaxLen is the width limit for table cells in formatted output.
const DefaultCellMaxLen = 100

// MinTruncateLen is the smallest usable maxLen for TruncateCell: one rune
// plus "...".
const MinTruncateLen = 4

// TruncateCell fits a value into a single table cell. It replaces newlines
// with spaces, collapses runs of whitespace into single spaces, and appends
// "..." if truncated, so a multi-line note never breaks the table layout.
// Truncation counts runes, not bytes, so multi-byte characters are never
// split. A maxLen below MinTruncateLen is clamped to MinTruncateLen.
func TruncateCell(s string, maxLen int) string {
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
