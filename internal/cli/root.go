package cli

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexanderramin/dayflow/internal/llm"
	"github.com/alexanderramin/dayflow/internal/service"
)

// App holds what the commands and the TUI need.
type App struct {
	Workspace *service.Workspace

	// Agent is probed for reachability by the TUI header. Nil skips the probe.
	Agent llm.ChatClient

	// Now defaults to time.Now.
	Now func() time.Time

	// IsInteractive reports whether stdin is a terminal. When nil the root
	// command prints help instead of starting the TUI.
	IsInteractive func() bool
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "dayflow" command. Without a subcommand
// it starts the TUI on a terminal and prints help otherwise.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "dayflow",
		Short: "Chat with a productivity agent that manages your tasks, calendar and focus timer",
		Long: `DayFlow pairs a chat agent with a task list, an Eisenhower matrix,
a day timeline and a focus timer. Pick a persona, then ask in plain
language: "add buy milk", "schedule standup at 9", "start a 25 minute focus".

Nothing is saved: the session lives as long as the process.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return cmd.Help()
			}
			return runTUI(app)
		},
	}

	root.AddCommand(
		newAskCmd(app),
		newModesCmd(),
		newLayoutCmd(),
	)
	return root
}

func runTUI(app *App) error {
	p := tea.NewProgram(newAppModel(app), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
