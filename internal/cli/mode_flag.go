package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/alexanderramin/dayflow/internal/agent"
	"github.com/alexanderramin/dayflow/internal/domain"
)

// modeFlag is a pflag.Value that accepts only known persona modes.
type modeFlag domain.AgentMode

var _ pflag.Value = (*modeFlag)(nil)

func (m *modeFlag) String() string { return string(*m) }

func (m *modeFlag) Set(s string) error {
	mode := domain.AgentMode(strings.ToLower(strings.TrimSpace(s)))
	if !mode.IsValid() {
		return fmt.Errorf("unknown mode %q (want one of %s)", s, modeList())
	}
	*m = modeFlag(mode)
	return nil
}

func (m *modeFlag) Type() string { return "mode" }

func (m *modeFlag) Mode() domain.AgentMode { return domain.AgentMode(*m) }

func modeList() string {
	names := make([]string, len(domain.AgentModes))
	for i, mode := range domain.AgentModes {
		names[i] = string(mode)
	}
	return strings.Join(names, ", ")
}

// completeModes offers the persona modes with their titles for shell completion.
func completeModes(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	out := make([]string, 0, len(domain.AgentModes))
	for _, p := range agent.Personas() {
		out = append(out, string(p.Mode)+"\t"+p.Title)
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}
