package cli

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexanderramin/dayflow/internal/cli/formatter"
	"github.com/alexanderramin/dayflow/internal/domain"
	"github.com/alexanderramin/dayflow/internal/layout"
)

// timelineView draws the day grid with overlapping events side by side
// and a countdown to the next event.
type timelineView struct {
	state *SharedState
	geom  layout.Geometry
	vp    viewport.Model
}

func newTimelineView(state *SharedState) *timelineView {
	vp := viewport.New(0, 0)
	return &timelineView{state: state, geom: layout.DefaultGeometry(), vp: vp}
}

func (v *timelineView) Init() tea.Cmd { return nil }

func (v *timelineView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); !ok {
		return v, nil
	}
	var cmd tea.Cmd
	v.vp, cmd = v.vp.Update(msg)
	return v, cmd
}

func (v *timelineView) View() string {
	ws := v.state.Workspace()
	width := v.state.ContentWidth()
	now := v.state.App.now()

	head := ""
	if next, ok := ws.NextEvent(now); ok {
		head = formatter.FormatUpNext(next.Event, next.MinutesUntil, min(width, 60))
	}

	events := ws.State().Events
	grid := formatter.Dim("No events yet. Ask the agent to schedule something.")
	if len(events) > 0 {
		grid = formatter.RenderTimeline(events, v.geom, width, now)
	}

	v.vp.Width = width
	v.vp.Height = max(v.state.ContentHeight()-lineCount(head), 3)
	v.vp.SetContent(grid)
	if head == "" {
		return v.vp.View()
	}
	return head + "\n" + v.vp.View()
}

func lineCount(s string) int {
	if s == "" {
		return 0
	}
	return strings.Count(s, "\n") + 1
}

func (v *timelineView) ID() ViewID { return ViewTimeline }
func (v *timelineView) Title() string { return viewTitles[domain.ViewTimeline] }
func (v *timelineView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑↓", "scroll")),
	}
}
