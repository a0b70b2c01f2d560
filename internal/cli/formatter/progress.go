package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderProgress renders a bar like [████░░░░] 45%.
func RenderProgress(pct float64, width int) string {
	pct = clamp01(pct)
	if width < 2 {
		width = 2
	}
	filled := int(pct * float64(width))
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)
	return fmt.Sprintf("[%s] %3.0f%%", StylePurple.Render(bar), pct*100)
}

// SubtaskProgress renders "2/3" with a color that reflects completion.
func SubtaskProgress(done, total int) string {
	if total == 0 {
		return ""
	}
	label := fmt.Sprintf("%d/%d", done, total)
	switch {
	case done == total:
		return StyleGreen.Render(label)
	case done == 0:
		return StyleDim.Render(label)
	default:
		return StyleYellow.Render(label)
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
