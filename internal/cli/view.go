package cli

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexanderramin/dayflow/internal/domain"
)

// ViewID identifies a screen.
type ViewID int

const (
	ViewSelector ViewID = iota
	ViewChat
	ViewMatrix
	ViewTimeline
	ViewFocus
)

// viewIDs maps the session's active view onto its screen.
var viewIDs = map[domain.View]ViewID{
	domain.ViewChat:     ViewChat,
	domain.ViewMatrix:   ViewMatrix,
	domain.ViewTimeline: ViewTimeline,
	domain.ViewFocus:    ViewFocus,
}

var viewTitles = map[domain.View]string{
	domain.ViewChat:     "Chat",
	domain.ViewMatrix:   "Matrix",
	domain.ViewTimeline: "Timeline",
	domain.ViewFocus:    "Focus",
}

// View is a screen the app model can show.
type View interface {
	tea.Model
	ID() ViewID
	ShortHelp() []key.Binding
	Title() string
}

// ── messages ─────────────────────────────────────────────────────────────────

// modeSelectedMsg is sent by the selector when a persona is picked.
type modeSelectedMsg struct {
	mode domain.AgentMode
}

// turnDoneMsg carries the result of a chat turn run off the UI loop.
type turnDoneMsg struct {
	reply        string
	focusMinutes int
	err          error
}

// focusTickMsg advances a running focus timer by one second.
type focusTickMsg struct{}

// agentStatusMsg reports whether the chat endpoint answered its probe.
type agentStatusMsg struct {
	online bool
}
