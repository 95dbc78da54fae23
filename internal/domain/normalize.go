package domain

import (
	"strings"
	"unicode/utf8"
)

// NormalizeStanza prepares stanza text for storage:
//   - CRLF and CR line endings become LF
//   - trailing whitespace is removed from every line
//   - leading and trailing blank lines are dropped
//
// Inner spacing, case and punctuation are preserved; line breaks are part of the verse.
func NormalizeStanza(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.Trim(strings.Join(lines, "\n"), " \t\n")
}

// Preview returns at most n runes of text for logs, with an ellipsis when cut.
func Preview(text string, n int) string {
	if n <= 0 {
		return ""
	}
	if utf8.RuneCountInString(text) <= n {
		return text
	}
	runes := []rune(text)
	return string(runes[:n]) + "…"
}
