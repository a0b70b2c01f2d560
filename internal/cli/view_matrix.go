package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/dayflow/internal/cli/formatter"
	"github.com/alexanderramin/dayflow/internal/domain"
)

// matrixView shows open tasks in the four Eisenhower quadrants. The cursor
// walks the quadrants in order: Do, Schedule, Delegate, Eliminate.
type matrixView struct {
	state  *SharedState
	cursor int
	status string
}

func newMatrixView(state *SharedState) *matrixView {
	return &matrixView{state: state}
}

func (v *matrixView) Init() tea.Cmd { return nil }

// flat lists the visible tasks in cursor order.
func (v *matrixView) flat() []domain.Task {
	quads := v.state.Workspace().Quadrants()
	var out []domain.Task
	for _, p := range domain.Priorities {
		out = append(out, quads[p]...)
	}
	return out
}

func (v *matrixView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}
	tasks := v.flat()
	if len(tasks) == 0 {
		return v, nil
	}
	v.cursor = min(v.cursor, len(tasks)-1)
	current := tasks[v.cursor]

	ctx := context.Background()
	ws := v.state.Workspace()
	var err error
	switch keyMsg.String() {
	case "up", "k":
		v.cursor = max(v.cursor-1, 0)
	case "down", "j":
		v.cursor = min(v.cursor+1, len(tasks)-1)
	case " ", "x":
		err = ws.ToggleTask(ctx, current.ID)
		v.report(err, "Completed %q.", current.Title)
	case "p":
		next := nextPriority(current.Priority)
		err = ws.SetTaskPriority(ctx, current.ID, next)
		v.report(err, "Moved %q to "+next.Label()+".", current.Title)
	case "d":
		err = ws.DeleteTask(ctx, current.ID)
		v.report(err, "Deleted %q.", current.Title)
	}
	if n := len(v.flat()); v.cursor >= n {
		v.cursor = max(n-1, 0)
	}
	return v, nil
}

func (v *matrixView) report(err error, format, title string) {
	if err != nil {
		v.status = formatter.StyleRed.Render(err.Error())
		return
	}
	v.status = formatter.StyleGreen.Render(fmt.Sprintf(format, title))
}

func nextPriority(p domain.Priority) domain.Priority {
	for i, q := range domain.Priorities {
		if q == p {
			return domain.Priorities[(i+1)%len(domain.Priorities)]
		}
	}
	return domain.PriorityDo
}

func (v *matrixView) View() string {
	quads := v.state.Workspace().Quadrants()
	half := v.state.ContentWidth() / 2

	cells := make([]string, len(domain.Priorities))
	offset := 0
	for i, p := range domain.Priorities {
		sel := -1
		if v.cursor >= offset && v.cursor < offset+len(quads[p]) {
			sel = v.cursor - offset
		}
		cells[i] = formatter.RenderQuadrant(p, quads[p], sel, half)
		offset += len(quads[p])
	}

	grid := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, cells[0], cells[1]),
		lipgloss.JoinHorizontal(lipgloss.Top, cells[2], cells[3]),
	)

	done := 0
	for _, t := range v.state.Workspace().State().Tasks {
		if t.IsCompleted {
			done++
		}
	}
	out := formatter.Header("Priority Matrix") + "\n" + grid + "\n" + formatter.Dim(fmt.Sprintf("%d completed", done))
	if v.status != "" {
		out += "\n" + v.status
	}
	return out
}

func (v *matrixView) ID() ViewID { return ViewMatrix }
func (v *matrixView) Title() string { return viewTitles[domain.ViewMatrix] }
func (v *matrixView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑↓", "select")),
		key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space", "done")),
		key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "priority")),
		key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
	}
}
