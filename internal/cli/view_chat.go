package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexanderramin/dayflow/internal/agent"
	"github.com/alexanderramin/dayflow/internal/cli/formatter"
	"github.com/alexanderramin/dayflow/internal/domain"
)

// chatView is the conversation with the agent. While a turn is pending the
// typed text is shown under a spinner and enter does nothing.
type chatView struct {
	state   *SharedState
	persona agent.Persona
	input   textinput.Model
	spin    spinner.Model
	vp      viewport.Model

	pending string // text of the turn in flight
	status  string
	history *promptHistory

	rendered  map[string]string // glamour output by message id and width
	lastLines int
}

func newChatView(state *SharedState) *chatView {
	persona := agent.PersonaFor(state.Workspace().State().Mode)

	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = "Ask " + persona.Title + "..."
	ti.CharLimit = 500
	ti.Focus()

	var sent []string
	for _, m := range state.Workspace().State().Messages {
		if m.Role == domain.RoleUser {
			sent = append(sent, m.Content)
		}
	}

	return &chatView{
		state:    state,
		persona:  persona,
		history:  newPromptHistory(sent),
		input:    ti,
		spin:     spinner.New(spinner.WithSpinner(spinner.MiniDot), spinner.WithStyle(formatter.StylePurple)),
		vp:       viewport.New(0, 0),
		rendered: map[string]string{},
	}
}

// ── tea.Model interface ──────────────────────────────────────────────────────

func (v *chatView) Init() tea.Cmd {
	return textinput.Blink
}

func (v *chatView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case turnDoneMsg:
		v.pending = ""
		if msg.err != nil && !errors.Is(msg.err, agent.ErrAgentUnavailable) {
			v.status = msg.err.Error()
		}
		return v, nil

	case spinner.TickMsg:
		if v.pending == "" {
			return v, nil
		}
		var cmd tea.Cmd
		v.spin, cmd = v.spin.Update(msg)
		return v, cmd

	case tea.KeyMsg:
		return v.handleKey(msg)
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

func (v *chatView) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		text := strings.TrimSpace(v.input.Value())
		if v.pending != "" || text == "" {
			return v, nil
		}
		v.input.Reset()
		return v, v.send(text)
	case tea.KeyPgUp, tea.KeyPgDown:
		var cmd tea.Cmd
		v.vp, cmd = v.vp.Update(msg)
		return v, cmd
	case tea.KeyUp:
		if line, ok := v.history.up(v.input.Value()); ok {
			v.input.SetValue(line)
			v.input.CursorEnd()
		}
		return v, nil
	case tea.KeyDown:
		if line, ok := v.history.down(); ok {
			v.input.SetValue(line)
			v.input.CursorEnd()
		}
		return v, nil
	}

	if s := v.suggestionFor(msg); s != nil {
		if strings.HasSuffix(strings.TrimSpace(s.Prompt), ":") {
			v.input.SetValue(s.Prompt)
			v.input.CursorEnd()
			return v, nil
		}
		return v, v.send(s.Prompt)
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// suggestionFor maps 1..n to the persona's shortcuts. They are offered only
// on an empty conversation with nothing typed.
func (v *chatView) suggestionFor(msg tea.KeyMsg) *agent.Suggestion {
	if msg.Type != tea.KeyRunes || len(msg.Runes) != 1 || v.input.Value() != "" || v.pending != "" {
		return nil
	}
	if len(v.state.Workspace().State().Messages) > 0 {
		return nil
	}
	i := int(msg.Runes[0] - '1')
	if i < 0 || i >= len(v.persona.Suggestions) {
		return nil
	}
	return &v.persona.Suggestions[i]
}

// send runs the turn off the UI loop.
func (v *chatView) send(text string) tea.Cmd {
	v.pending = text
	v.status = ""
	v.history.add(text)
	ws := v.state.Workspace()
	run := func() tea.Msg {
		out, err := ws.Send(context.Background(), text)
		return turnDoneMsg{reply: out.Reply, focusMinutes: out.FocusMinutes, err: err}
	}
	return tea.Batch(run, v.spin.Tick)
}

func (v *chatView) View() string {
	width := v.state.ContentWidth()
	msgs := v.state.Workspace().State().Messages

	var log string
	if len(msgs) == 0 && v.pending == "" {
		log = v.renderHome()
	} else {
		log = v.renderLog(msgs, width)
	}

	footer := []string{formatter.StylePurple.Render("›") + " " + v.input.View()}
	if v.status != "" {
		footer = append([]string{formatter.StyleRed.Render(v.status)}, footer...)
	}

	v.vp.Width = width
	v.vp.Height = max(v.state.ContentHeight()-len(footer)-1, 3)
	v.vp.SetContent(log)
	if lines := strings.Count(log, "\n"); lines != v.lastLines {
		v.lastLines = lines
		v.vp.GotoBottom()
	}
	return v.vp.View() + "\n\n" + strings.Join(footer, "\n")
}

func (v *chatView) renderHome() string {
	var b strings.Builder
	b.WriteString(formatter.Bold(v.persona.Title) + "  " + formatter.Dim(v.persona.Tagline) + "\n")
	b.WriteString(formatter.Dim(v.persona.Description) + "\n\n")
	for i, s := range v.persona.Suggestions {
		fmt.Fprintf(&b, "%s %s  ", formatter.StylePurple.Render(fmt.Sprintf("[%d]", i+1)), s.Label)
	}
	return strings.TrimRight(b.String(), " ")
}

func (v *chatView) renderLog(msgs []domain.Message, width int) string {
	blocks := make([]string, 0, len(msgs)+1)
	for _, m := range msgs {
		blocks = append(blocks, v.renderMessage(m, width))
	}
	if v.pending != "" {
		blocks = append(blocks,
			formatter.RoleStyle(domain.RoleUser).Bold(true).Render("You")+"\n"+v.pending,
			v.spin.View()+" "+formatter.Dim(v.persona.Title+" is thinking..."))
	}
	return strings.Join(blocks, "\n\n")
}

func (v *chatView) renderMessage(m domain.Message, width int) string {
	stamp := formatter.Dim(formatter.FormatClock(m.Timestamp.Local()))
	switch m.Role {
	case domain.RoleUser:
		return formatter.RoleStyle(m.Role).Bold(true).Render("You") + " " + stamp + "\n" + m.Content
	case domain.RoleSystem:
		return formatter.RoleStyle(m.Role).Render("! " + m.Content)
	default:
		return formatter.RoleStyle(m.Role).Bold(true).Render(v.persona.Title) + " " + stamp + "\n" + v.markdown(m, width)
	}
}

func (v *chatView) markdown(m domain.Message, width int) string {
	k := fmt.Sprintf("%s/%d", m.ID, width)
	if out, ok := v.rendered[k]; ok {
		return out
	}
	out := formatter.RenderMarkdown(m.Content, width-4)
	v.rendered[k] = out
	return out
}

// ── View interface ───────────────────────────────────────────────────────────

func (v *chatView) ID() ViewID { return ViewChat }
func (v *chatView) Title() string { return viewTitles[domain.ViewChat] }
func (v *chatView) ShortHelp() []key.Binding {
	help := []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "send")),
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑↓", "recall")),
		key.NewBinding(key.WithKeys("pgup", "pgdown"), key.WithHelp("pgup/pgdn", "scroll")),
	}
	if len(v.state.Workspace().State().Messages) == 0 {
		help = append(help, key.NewBinding(key.WithKeys("1", "2", "3"), key.WithHelp("1-3", "shortcuts")))
	}
	return help
}
