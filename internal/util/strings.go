// Package util holds small text helpers for terminal rendering.
package util

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Ellipsis marks text cut by Truncate.
const Ellipsis = "…"

// Truncate shortens s to at most maxWidth terminal columns, ending with
// Ellipsis when cut. Wide runes such as CJK count as two columns and ANSI
// styling is preserved.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= maxWidth {
		return s
	}
	return ansi.Truncate(s, maxWidth, Ellipsis)
}

// TruncateLines applies Truncate to every line of s.
func TruncateLines(s string, maxWidth int) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = Truncate(line, maxWidth)
	}
	return strings.Join(lines, "\n")
}

// Gap returns n spaces, or the empty string when n is not positive.
func Gap(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}
