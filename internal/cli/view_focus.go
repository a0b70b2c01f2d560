package cli

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexanderramin/dayflow/internal/cli/formatter"
	"github.com/alexanderramin/dayflow/internal/domain"
	"github.com/alexanderramin/dayflow/internal/focus"
)

// focusView controls the workspace's pomodoro timer. The app model drives
// the one-second ticks so the timer keeps running on other tabs.
type focusView struct {
	state *SharedState
}

func newFocusView(state *SharedState) *focusView {
	return &focusView{state: state}
}

func (v *focusView) Init() tea.Cmd { return nil }

func (v *focusView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}
	ws := v.state.Workspace()
	switch keyMsg.String() {
	case " ":
		ws.ToggleTimer()
	case "r":
		ws.ResetTimer()
	case "b":
		ws.SetTimerPhase(focus.PhaseBreak)
	case "f":
		ws.SetTimerPhase(focus.PhaseFocus)
	}
	return v, nil
}

func (v *focusView) View() string {
	return "\n" + formatter.FormatFocus(v.state.Workspace().Timer(), v.state.ContentWidth())
}

func (v *focusView) ID() ViewID { return ViewFocus }
func (v *focusView) Title() string { return viewTitles[domain.ViewFocus] }
func (v *focusView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "start/pause")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		key.NewBinding(key.WithKeys("f", "b"), key.WithHelp("f/b", "focus/break")),
	}
}

func focusTick() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg { return focusTickMsg{} })
}
