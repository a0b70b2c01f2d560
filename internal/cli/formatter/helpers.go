package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded border. A non-empty title is shown
// above the content. width <= 0 lets the box size itself.
func RenderBox(title, content string, width int) string {
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		Padding(0, 1)
	if width > 0 {
		style = style.Width(width)
	}
	if title == "" {
		return style.Render(content)
	}
	return style.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n" + content)
}

// FormatMinutes renders a minute count as "1h 20m", "2h" or "45m".
func FormatMinutes(min int) string {
	if min <= 0 {
		return "0m"
	}
	h, m := min/60, min%60
	switch {
	case h > 0 && m > 0:
		return fmt.Sprintf("%dh %dm", h, m)
	case h > 0:
		return fmt.Sprintf("%dh", h)
	default:
		return fmt.Sprintf("%dm", m)
	}
}

// FormatClock renders a wall-clock time as "2:30 PM".
func FormatClock(t time.Time) string {
	return t.Format("3:04 PM")
}

// FormatSpan renders an event's start and end, e.g. "9:00 AM – 10:30 AM".
func FormatSpan(start, end time.Time) string {
	return FormatClock(start) + " – " + FormatClock(end)
}

// Countdown renders the distance to an upcoming start.
func Countdown(minutes int) string {
	if minutes < 1 {
		return "starting now"
	}
	return "in " + FormatMinutes(minutes)
}

// Truncate shortens s to at most n visible runes, marking the cut with "…".
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n == 1 {
		return "…"
	}
	return string(r[:n-1]) + "…"
}
