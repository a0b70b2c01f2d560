package cli

import (
	"context"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/dayflow/internal/agent"
	"github.com/alexanderramin/dayflow/internal/cli/formatter"
	"github.com/alexanderramin/dayflow/internal/domain"
)

const agentProbeTimeout = 3 * time.Second

// appModel is the root bubbletea Model for the TUI. The view stack holds
// the persona selector and, once a persona is chosen, the active screen.
// Screens are kept in a cache so tab switching preserves their state.
type appModel struct {
	state     *SharedState
	viewStack []View
	screens   map[ViewID]View
	ticking   bool
	quitting  bool
}

func newAppModel(app *App) appModel {
	state := &SharedState{App: app}
	return appModel{
		state:     state,
		viewStack: []View{newSelectorView(state)},
		screens:   map[ViewID]View{},
	}
}

func (m *appModel) activeView() View {
	if len(m.viewStack) == 0 {
		return nil
	}
	return m.viewStack[len(m.viewStack)-1]
}

func (m *appModel) setActiveView(v View) {
	if len(m.viewStack) == 0 {
		return
	}
	m.viewStack[len(m.viewStack)-1] = v
	if v.ID() != ViewSelector {
		m.screens[v.ID()] = v
	}
}

func (m *appModel) newScreen(id ViewID) View {
	switch id {
	case ViewMatrix:
		return newMatrixView(m.state)
	case ViewTimeline:
		return newTimelineView(m.state)
	case ViewFocus:
		return newFocusView(m.state)
	default:
		return newChatView(m.state)
	}
}

// show puts the screen for v on top of the selector, creating it on first use.
func (m *appModel) show(v domain.View) tea.Cmd {
	id := viewIDs[v]
	screen, ok := m.screens[id]
	var cmd tea.Cmd
	if !ok {
		screen = m.newScreen(id)
		m.screens[id] = screen
		cmd = screen.Init()
	}
	m.viewStack = []View{m.viewStack[0], screen}
	return cmd
}

// ── bubbletea interface ──────────────────────────────────────────────────────

func (m appModel) Init() tea.Cmd {
	cmds := []tea.Cmd{m.probeAgent()}
	if v := m.activeView(); v != nil {
		cmds = append(cmds, v.Init())
	}
	return tea.Batch(cmds...)
}

func (m appModel) probeAgent() tea.Cmd {
	client := m.state.App.Agent
	if client == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), agentProbeTimeout)
		defer cancel()
		return agentStatusMsg{online: client.Available(ctx)}
	}
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		return m.forward(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case modeSelectedMsg:
		if err := m.state.Workspace().SelectMode(msg.mode); err != nil {
			return m, nil
		}
		m.screens = map[ViewID]View{}
		return m, m.show(domain.ViewChat)

	case turnDoneMsg:
		var cmds []tea.Cmd
		if chat, ok := m.screens[ViewChat]; ok {
			updated, cmd := chat.Update(msg)
			m.screens[ViewChat] = updated.(View)
			cmds = append(cmds, cmd)
		}
		// The turn may have moved the session to the focus view.
		if active := m.state.Workspace().State().ActiveView; len(m.viewStack) > 1 && m.activeView().ID() != viewIDs[active] {
			cmds = append(cmds, m.show(active))
		}
		cmds = append(cmds, m.ensureTicking())
		return m, tea.Batch(cmds...)

	case focusTickMsg:
		if !m.state.Workspace().TickTimer().Running {
			m.ticking = false
			return m, nil
		}
		return m, focusTick()

	case agentStatusMsg:
		online := msg.online
		m.state.AgentOnline = &online
		return m, nil
	}

	return m.forward(msg)
}

// forward hands msg to the active view and starts the focus ticker if the
// view set the timer running.
func (m appModel) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	v := m.activeView()
	if v == nil {
		return m, nil
	}
	updated, cmd := v.Update(msg)
	m.setActiveView(updated.(View))
	tick := m.ensureTicking()
	return m, tea.Batch(cmd, tick)
}

func (m *appModel) ensureTicking() tea.Cmd {
	if m.ticking || !m.state.Workspace().Timer().Running {
		return nil
	}
	m.ticking = true
	return focusTick()
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	inPersona := len(m.viewStack) > 1
	switch {
	case inPersona && msg.Type == tea.KeyEsc:
		selector := newSelectorView(m.state)
		m.viewStack = []View{selector}
		return m, selector.Init()
	case inPersona && msg.Type == tea.KeyTab:
		return m, m.cycle(1)
	case inPersona && msg.Type == tea.KeyShiftTab:
		return m, m.cycle(-1)
	}

	if viewCapturesInput(m.activeView()) {
		return m.forward(msg)
	}
	if msg.String() == "q" {
		m.quitting = true
		return m, tea.Quit
	}
	return m.forward(msg)
}

// cycle moves to the next (or previous) view the persona offers.
func (m *appModel) cycle(step int) tea.Cmd {
	ws := m.state.Workspace()
	st := ws.State()
	views := domain.VisibleViews(st.Mode)
	i := 0
	for j, v := range views {
		if v == st.ActiveView {
			i = j
		}
	}
	next := views[(i+step+len(views))%len(views)]
	if err := ws.SetView(next); err != nil {
		return nil
	}
	return m.show(next)
}

func (m appModel) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{m.renderHeader()}
	if v := m.activeView(); v != nil {
		sections = append(sections, v.View())
	}
	sections = append(sections, m.renderStatusBar())
	result := strings.Join(sections, "\n")

	// Pad to terminal height so the alt-screen line diff leaves no stale rows.
	if m.state.Height > 0 {
		if lines := strings.Count(result, "\n") + 1; lines < m.state.Height {
			result += strings.Repeat("\n", m.state.Height-lines)
		}
	}
	return result
}

// ── rendering helpers ────────────────────────────────────────────────────────

var (
	tabActive   = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorPurple).Padding(0, 1)
	tabInactive = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
)

func (m *appModel) renderHeader() string {
	header := formatter.StylePurple.Bold(true).Render("DayFlow")

	st := m.state.Workspace().State()
	if len(m.viewStack) > 1 {
		header += " " + formatter.Dim("›") + " " + formatter.Bold(agent.PersonaFor(st.Mode).Title) + "  "
		active := m.activeView().ID()
		for _, v := range domain.VisibleViews(st.Mode) {
			style := tabInactive
			if viewIDs[v] == active {
				style = tabActive
			}
			header += style.Render(viewTitles[v])
		}
	} else {
		header += " " + formatter.Dim("›") + " " + formatter.Dim(m.activeView().Title())
	}

	switch {
	case m.state.AgentOnline == nil:
	case *m.state.AgentOnline:
		header += "  " + formatter.StyleGreen.Render("● agent online")
	default:
		header += "  " + formatter.StyleRed.Render("○ agent offline")
	}

	sep := formatter.Dim(strings.Repeat("─", max(m.state.Width, 20)))
	return header + "\n" + sep
}

func (m *appModel) renderStatusBar() string {
	var hints []string
	if v := m.activeView(); v != nil {
		for _, b := range v.ShortHelp() {
			hints = append(hints, formatter.Dim(b.Help().Key+": "+b.Help().Desc))
		}
	}
	if len(m.viewStack) > 1 {
		hints = append(hints, formatter.Dim("tab: views"), formatter.Dim("esc: agents"))
	}
	hints = append(hints, formatter.Dim("ctrl+c: quit"))

	sep := formatter.Dim(strings.Repeat("─", max(m.state.Width, 20)))
	return sep + "\n" + strings.Join(hints, "  ")
}

// viewCapturesInput reports whether the view owns a text input and must see
// printable keys such as 'q'.
func viewCapturesInput(v View) bool {
	if v == nil {
		return false
	}
	return v.ID() == ViewChat
}
