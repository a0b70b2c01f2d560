package cli

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/dayflow/internal/agent"
	"github.com/alexanderramin/dayflow/internal/cli/formatter"
	"github.com/alexanderramin/dayflow/internal/domain"
)

// dayflowHuhTheme styles huh forms with the formatter palette.
func dayflowHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorPurple)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorPurple).Bold(true)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// selectorView picks the agent persona. It is the bottom of the view stack
// and is rebuilt each time the user returns to it.
type selectorView struct {
	state *SharedState
	form  *huh.Form
	mode  domain.AgentMode
	sent  bool
}

func newSelectorView(state *SharedState) *selectorView {
	v := &selectorView{state: state, mode: state.Workspace().State().Mode}
	if !v.mode.IsValid() {
		v.mode = domain.AgentModes[0]
	}

	personas := agent.Personas()
	opts := make([]huh.Option[domain.AgentMode], 0, len(personas))
	for _, p := range personas {
		opts = append(opts, huh.NewOption(p.Title+"  "+formatter.Dim(p.Tagline), p.Mode))
	}

	v.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[domain.AgentMode]().
				Title("Choose your agent").
				Description("Each persona plans your day differently.").
				Options(opts...).
				Value(&v.mode),
		),
	).WithTheme(dayflowHuhTheme()).WithShowHelp(false)
	return v
}

func (v *selectorView) Init() tea.Cmd {
	return v.form.Init()
}

func (v *selectorView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := v.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		v.form = f
	}
	if v.form.State == huh.StateCompleted && !v.sent {
		v.sent = true
		mode := v.mode
		return v, tea.Batch(cmd, func() tea.Msg { return modeSelectedMsg{mode: mode} })
	}
	return v, cmd
}

func (v *selectorView) View() string {
	var b strings.Builder
	b.WriteString(v.form.View())
	b.WriteString("\n\n")
	for _, p := range agent.Personas() {
		b.WriteString(formatter.StylePurple.Render(p.Title))
		b.WriteString("  ")
		b.WriteString(formatter.Dim(p.Description))
		b.WriteString("\n")
	}
	return b.String()
}

func (v *selectorView) ID() ViewID { return ViewSelector }
func (v *selectorView) Title() string { return "Agents" }
func (v *selectorView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑↓", "choose")),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "start")),
	}
}
