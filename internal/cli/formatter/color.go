package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/dayflow/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// PriorityColor maps an Eisenhower quadrant to its accent.
func PriorityColor(p domain.Priority) lipgloss.Color {
	switch p {
	case domain.PriorityDo:
		return ColorRed
	case domain.PrioritySchedule:
		return ColorBlue
	case domain.PriorityDelegate:
		return ColorYellow
	default:
		return ColorDim
	}
}

// PriorityBadge renders a dot and the quadrant label, e.g. "● Do First".
func PriorityBadge(p domain.Priority) string {
	return lipgloss.NewStyle().Foreground(PriorityColor(p)).Render("● " + p.Label())
}

// RoleStyle is the style for the speaker prefix of a chat line.
func RoleStyle(r domain.Role) lipgloss.Style {
	switch r {
	case domain.RoleUser:
		return StyleBlue
	case domain.RoleSystem:
		return StyleRed
	default:
		return StylePurple
	}
}

// Header renders an uppercased section title with a dim underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

func Dim(text string) string {
	return StyleDim.Render(text)
}

func Bold(text string) string {
	return StyleBold.Render(text)
}
