package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/dayflow/internal/agent"
	"github.com/alexanderramin/dayflow/internal/cli/formatter"
	"github.com/alexanderramin/dayflow/internal/domain"
	"github.com/alexanderramin/dayflow/internal/llm"
)

func newAskCmd(app *App) *cobra.Command {
	mode := modeFlag(domain.ModeMatrix)
	cmd := &cobra.Command{
		Use:   `ask "<message>"`,
		Short: "Run one agent turn and print the reply and the resulting session",
		Long: `Send one message to the agent under the chosen persona, apply the
actions it asks for, then print its reply followed by the task list,
the calendar and the focus timer if one was started.`,
		Example: `  dayflow ask "add buy milk"
  dayflow ask --mode pomodoro "start a 45 minute focus session"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAsk(cmd.Context(), app, cmd.OutOrStdout(), mode.Mode(), strings.Join(args, " "))
		},
	}
	cmd.Flags().Var(&mode, "mode", "persona to answer as ("+modeList()+")")
	_ = cmd.RegisterFlagCompletionFunc("mode", completeModes)
	return cmd
}

func runAsk(ctx context.Context, app *App, w io.Writer, mode domain.AgentMode, text string) error {
	ws := app.Workspace
	if err := ws.SelectMode(mode); err != nil {
		return err
	}

	stop := func() {}
	if app.interactive() {
		stop = formatter.StartSpinner(os.Stderr, "Thinking...")
	}
	outcome, err := ws.Send(ctx, text)
	stop()
	if err != nil {
		if errors.Is(err, agent.ErrAgentUnavailable) {
			fmt.Fprintln(w, formatter.StyleRed.Render(agent.FailureMessage))
			if errors.Is(err, llm.ErrTimeout) {
				return fmt.Errorf("ask: %w (raise DAYFLOW_LLM_TIMEOUT_MS, e.g. 60000)", err)
			}
		}
		return fmt.Errorf("ask: %w", err)
	}

	reply := outcome.Reply
	if app.interactive() {
		reply = formatter.RenderMarkdown(reply, 80)
	}
	fmt.Fprintln(w, formatter.StylePurple.Render(agent.PersonaFor(mode).Title+":")+" "+reply)

	st := ws.State()
	if len(st.Tasks) > 0 {
		fmt.Fprintf(w, "\n%s\n%s\n", formatter.Header("Tasks"), formatter.FormatTaskList(st.Tasks))
	}
	if len(st.Events) > 0 {
		fmt.Fprintf(w, "\n%s\n%s", formatter.Header("Calendar"), formatter.FormatEventList(st.Events))
	}
	if outcome.FocusMinutes > 0 {
		fmt.Fprintf(w, "\n%s\n%s\n", formatter.Header("Focus timer"), ws.Timer().Format())
	}
	return nil
}
