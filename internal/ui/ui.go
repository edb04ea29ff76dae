// Package ui holds the terminal rendering helpers shared by the CLI output
// and the interactive list.
package ui

import (
	"fmt"
	"os"
	"strings"
)

func OK(msg string) {
	fmt.Println(current.Success.Render(current.SymDone + " " + msg))
}

func Fail(msg string) {
	fmt.Fprintln(os.Stderr, current.Error.Render(current.SymFail+" "+msg))
}

// Hint prints a muted follow-up line on stderr, under a Fail message.
func Hint(msg string) {
	fmt.Fprintln(os.Stderr, current.Muted.Render(msg))
}

// Panel draws a framed box around the given lines using the current theme.
func Panel(lines []string) {
	fmt.Println(current.Frame.Render(strings.Join(lines, "\n")))
}

// ProgressBar renders a unicode progress bar with percentage.
func ProgressBar(done, total, width int) string {
	if total <= 0 {
		total = 1
	}
	if width < 5 {
		width = 5
	}
	filled := int(float64(done) / float64(total) * float64(width))
	if filled > width {
		filled = width
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	pct := int(float64(done) / float64(total) * 100)
	return fmt.Sprintf("%s %3d%%", bar, pct)
}

// Truncate shortens s to at most max runes, marking the cut with "...".
func Truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max < 4 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}
