package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/dayflow/internal/agent"
	"github.com/alexanderramin/dayflow/internal/cli/formatter"
)

func newModesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "modes",
		Short: "List the agent personas and the views each one offers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := make([][]string, 0, 4)
			for _, p := range agent.Personas() {
				views := make([]string, 0, 3)
				for _, v := range p.Views() {
					views = append(views, string(v))
				}
				rows = append(rows, []string{
					formatter.StylePurple.Render(string(p.Mode)),
					formatter.Bold(p.Title),
					p.Tagline,
					formatter.Dim(strings.Join(views, ", ")),
				})
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.RenderTable([]string{"MODE", "PERSONA", "STYLE", "VIEWS"}, rows))
			return nil
		},
	}
}
