package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/dayflow/internal/domain"
)

// Checkbox renders a done/open marker.
func Checkbox(done bool) string {
	if done {
		return StyleGreen.Render("[x]")
	}
	return StyleDim.Render("[ ]")
}

// FormatTaskLine renders one task: checkbox, title, subtask count and due date.
func FormatTaskLine(t domain.Task) string {
	title := StyleFg.Render(t.Title)
	if t.IsCompleted {
		title = StyleDim.Strikethrough(true).Render(t.Title)
	}
	parts := []string{Checkbox(t.IsCompleted), title}
	if p := SubtaskProgress(t.CompletedSubtasks(), len(t.Subtasks)); p != "" {
		parts = append(parts, p)
	}
	if t.DueDate != nil {
		parts = append(parts, Dim("due "+t.DueDate.Format("Jan 2")))
	}
	return strings.Join(parts, " ")
}

// FormatTaskList renders tasks and their checklists as a tree.
func FormatTaskList(tasks []domain.Task) string {
	if len(tasks) == 0 {
		return Dim("No tasks.")
	}
	return RenderTree(TaskTree(tasks))
}

// FormatEventList renders events as a table in the order given.
func FormatEventList(events []domain.CalendarEvent) string {
	if len(events) == 0 {
		return Dim("No events.")
	}
	rows := make([][]string, 0, len(events))
	for _, e := range events {
		rows = append(rows, []string{
			e.StartTime.Format("Mon Jan 2"),
			FormatSpan(e.StartTime, e.EndTime),
			e.Title,
		})
	}
	return RenderTable([]string{"DAY", "TIME", "EVENT"}, rows)
}

// FormatUpNext renders the countdown card for the next event.
func FormatUpNext(e domain.CalendarEvent, minutesUntil, width int) string {
	body := fmt.Sprintf("%s\n%s  %s",
		Bold(e.Title),
		StyleYellow.Render(Countdown(minutesUntil)),
		Dim(FormatSpan(e.StartTime, e.EndTime)))
	return RenderBox("Up Next", body, width)
}
