// Package sysinfo - Formatting utilities
package sysinfo

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

const gib = 1024 * 1024 * 1024

// ansiRegex matches ANSI SGR escape codes for removal/measurement purposes
var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// ansiPrefix matches an escape code at the start of a string.
var ansiPrefix = regexp.MustCompile(`^\x1b\[[0-9;]*m`)

// FormatGiB converts a byte count to gibibytes with two decimals.
//
// Example: FormatGiB(1610612736) returns "1.50 GiB"
func FormatGiB(bytes uint64) string {
	return fmt.Sprintf("%.2f GiB", float64(bytes)/gib)
}

// StripANSI removes all color escape codes from s.
func StripANSI(s string) string {
	return ansiRegex.ReplaceAllString(s, "")
}

// VisibleWidth returns the number of terminal columns s occupies once
// escape codes are removed. Wide runes count as two columns.
func VisibleWidth(s string) int {
	return runewidth.StringWidth(StripANSI(s))
}

// TruncateString shortens s to at most maxWidth visible columns, replacing
// the cut with "...". Escape codes are kept intact and do not count toward
// the width; if any were present a reset code is appended after the cut.
// A maxWidth of 0 or less disables truncation.
//
// Parameters:
//   - s: The string to truncate (may contain ANSI color codes)
//   - maxWidth: Maximum visible width of the result
//
// Example: TruncateString("Hello World", 8) returns "Hello..."
func TruncateString(s string, maxWidth int) string {
	if maxWidth <= 0 || VisibleWidth(s) <= maxWidth {
		return s
	}

	tail := "..."
	budget := maxWidth - len(tail)
	if budget <= 0 {
		budget, tail = maxWidth, ""
	}

	var b strings.Builder
	width := 0
	colored := false
	for i := 0; i < len(s); {
		if loc := ansiPrefix.FindStringIndex(s[i:]); loc != nil {
			b.WriteString(s[i : i+loc[1]])
			i += loc[1]
			colored = true
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		w := runewidth.RuneWidth(r)
		if width+w > budget {
			break
		}
		b.WriteRune(r)
		width += w
		i += size
	}
	b.WriteString(tail)
	if colored {
		b.WriteString(ColorReset)
	}
	return b.String()
}

// PadRight pads a string with spaces to reach a minimum visible width.
//
// Example: PadRight("Hi", 5) returns "Hi   "
func PadRight(s string, width int) string {
	w := VisibleWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
