package formatter

import (
	"strings"

	"github.com/alexanderramin/dayflow/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// QuadrantHint is the urgency/importance caption under a quadrant title.
func QuadrantHint(p domain.Priority) string {
	switch p {
	case domain.PriorityDo:
		return "Urgent & Important"
	case domain.PrioritySchedule:
		return "Not Urgent, Important"
	case domain.PriorityDelegate:
		return "Urgent, Not Important"
	default:
		return "Neither"
	}
}

// RenderQuadrant draws one matrix cell. selected is the index of the
// highlighted task, or -1.
func RenderQuadrant(p domain.Priority, tasks []domain.Task, selected, width int) string {
	accent := PriorityColor(p)
	title := lipgloss.NewStyle().Foreground(accent).Bold(true).Render(p.Label())

	lines := []string{title + " " + Dim("("+QuadrantHint(p)+")")}
	if len(tasks) == 0 {
		lines = append(lines, Dim("Empty"))
	}
	inner := width - 4
	for i, t := range tasks {
		cursor := "  "
		if i == selected {
			cursor = lipgloss.NewStyle().Foreground(accent).Render("▸ ")
		}
		lines = append(lines, cursor+Truncate(t.Title, max(inner-10, 4))+" "+SubtaskProgress(t.CompletedSubtasks(), len(t.Subtasks)))
	}

	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accent).
		Padding(0, 1)
	if width > 0 {
		style = style.Width(width - 2)
	}
	return style.Render(strings.Join(lines, "\n"))
}
