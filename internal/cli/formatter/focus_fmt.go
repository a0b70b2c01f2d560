package formatter

import (
	"strings"

	"github.com/alexanderramin/dayflow/internal/focus"
	"github.com/charmbracelet/lipgloss"
)

var (
	phaseActive   = lipgloss.NewStyle().Foreground(ColorFg).Background(ColorPurple).Bold(true).Padding(0, 1)
	phaseInactive = lipgloss.NewStyle().Foreground(ColorDim).Padding(0, 1)
	clockStyle    = lipgloss.NewStyle().Foreground(ColorFg).Bold(true).Padding(1, 4)
)

// FormatFocus renders the focus timer: phase switcher, clock, progress
// and run state, centred in width.
func FormatFocus(t focus.Timer, width int) string {
	focusTab, breakTab := phaseActive, phaseInactive
	if t.Phase == focus.PhaseBreak {
		focusTab, breakTab = phaseInactive, phaseActive
	}
	tabs := focusTab.Render("Focus") + " " + breakTab.Render("Break")

	status := Dim("paused")
	switch {
	case t.Running:
		status = StyleGreen.Render("running")
	case t.Done():
		status = StyleYellow.Render("time's up")
	}

	body := strings.Join([]string{
		tabs,
		clockStyle.Render(t.Format()),
		RenderProgress(t.Progress(), 30),
		status,
	}, "\n")
	if width <= 0 {
		return body
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, body)
}
