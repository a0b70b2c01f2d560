package cli

import "github.com/alexanderramin/dayflow/internal/service"

// SharedState is handed to every view by pointer.
type SharedState struct {
	App *App

	// Terminal dimensions
	Width  int
	Height int

	// AgentOnline is nil until the endpoint probe answers.
	AgentOnline *bool
}

func (s *SharedState) Workspace() *service.Workspace {
	return s.App.Workspace
}

// ContentHeight is the height left for a view after the header (title and
// separator) and the status bar (separator and hints).
func (s *SharedState) ContentHeight() int {
	h := s.Height - 4
	if h < 5 {
		return 5
	}
	return h
}

// ContentWidth is the terminal width, or 80 before the first resize.
func (s *SharedState) ContentWidth() int {
	if s.Width <= 0 {
		return 80
	}
	return s.Width
}
