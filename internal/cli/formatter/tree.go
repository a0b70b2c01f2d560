package formatter

import (
	"strings"

	"github.com/alexanderramin/dayflow/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// TreeItem is one line of a tree display.
type TreeItem struct {
	Title  string
	Level  int
	IsLast bool
	Done   bool
	Detail string // styled badge shown right-aligned
}

const (
	treeBranch = "├─ "
	treeCorner = "└─ "
	treePipe   = "│  "
)

// RenderTree draws items with box-drawing connectors and aligns their
// badges in one column.
func RenderTree(items []TreeItem) string {
	if len(items) == 0 {
		return ""
	}
	contents := make([]string, len(items))
	widest := 0
	for i, item := range items {
		var prefix strings.Builder
		if item.Level > 0 {
			prefix.WriteString(strings.Repeat(treePipe, item.Level-1))
			if item.IsLast {
				prefix.WriteString(treeCorner)
			} else {
				prefix.WriteString(treeBranch)
			}
		}
		title := StyleFg.Render(item.Title)
		if item.Done {
			title = StyleGreen.Render("✔ ") + Dim(item.Title)
		}
		contents[i] = Dim(prefix.String()) + title
		widest = max(widest, lipgloss.Width(contents[i]))
	}

	var b strings.Builder
	for i, item := range items {
		b.WriteString(contents[i])
		if item.Detail != "" {
			b.WriteString(strings.Repeat(" ", widest-lipgloss.Width(contents[i])+colGap))
			b.WriteString(item.Detail)
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// TaskTree lays tasks out as roots with their subtasks as children.
func TaskTree(tasks []domain.Task) []TreeItem {
	var items []TreeItem
	for _, t := range tasks {
		detail := PriorityBadge(t.Priority)
		if t.DueDate != nil {
			detail += " " + Dim("due "+t.DueDate.Format("Jan 2"))
		}
		items = append(items, TreeItem{Title: t.Title, Done: t.IsCompleted, Detail: detail})
		for i, st := range t.Subtasks {
			items = append(items, TreeItem{
				Title:  st.Title,
				Level:  1,
				IsLast: i == len(t.Subtasks)-1,
				Done:   st.IsCompleted,
			})
		}
	}
	return items
}
