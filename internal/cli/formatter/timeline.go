package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/dayflow/internal/domain"
	"github.com/alexanderramin/dayflow/internal/layout"
)

const (
	timelineRowsPerHour = 2
	timelineGutter      = 9 // "12 PM  │"
	timelineMinLane     = 20
)

// RenderTimeline draws the day grid with each event placed in the column
// the layout engine assigned to it. Events outside the grid hours are
// listed underneath. A non-zero now draws the current-time marker.
func RenderTimeline(events []domain.CalendarEvent, geom layout.Geometry, width int, now time.Time) string {
	lane := width - timelineGutter
	if lane < timelineMinLane {
		lane = timelineMinLane
	}
	rows := (geom.DayEndHour - geom.DayStartHour) * timelineRowsPerHour
	grid := make([][]rune, rows)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(" ", lane))
	}

	layouts := layout.Events(events)
	var outside []domain.CalendarEvent
	for _, e := range events {
		cell := geom.Cells(e, layouts[e.ID], timelineRowsPerHour, lane)
		if cell.Row < 0 || cell.Row >= rows {
			outside = append(outside, e)
			continue
		}
		paintEvent(grid, cell, e)
	}

	nowRow := -1
	if !now.IsZero() {
		if m := geom.MinutesFromDayStart(now); m >= 0 && m < rows*60/timelineRowsPerHour {
			nowRow = m * timelineRowsPerHour / 60
		}
	}

	var b strings.Builder
	for r, line := range grid {
		label := ""
		if r%timelineRowsPerHour == 0 {
			label = hourLabel(geom.DayStartHour + r/timelineRowsPerHour)
		}
		sep := StyleDim.Render("│")
		if r == nowRow {
			sep = StylePurple.Render("●")
		}
		fmt.Fprintf(&b, "%s %s %s\n", Dim(fmt.Sprintf("%6s", label)), sep, strings.TrimRight(string(line), " "))
	}

	if len(outside) > 0 {
		b.WriteString(Dim("Outside the grid:") + "\n")
		for _, e := range outside {
			fmt.Fprintf(&b, "  %s  %s\n", Dim(FormatSpan(e.StartTime, e.EndTime)), e.Title)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// paintEvent writes a block: a left rule on every row, the title on the
// first and the time span on the second. Rows past the grid are clipped.
func paintEvent(grid [][]rune, c layout.Cell, e domain.CalendarEvent) {
	text := []string{e.Title, FormatSpan(e.StartTime, e.EndTime)}
	width := c.Cols
	if width > 2 {
		width-- // gap between neighbouring columns
	}
	for i := 0; i < c.Rows; i++ {
		r := c.Row + i
		if r >= len(grid) {
			return
		}
		line := "┃"
		if i < len(text) {
			line += Truncate(text[i], width-1)
		}
		runes := []rune(line)
		for j := 0; j < width && c.Col+j < len(grid[r]); j++ {
			ch := ' '
			if j < len(runes) {
				ch = runes[j]
			}
			grid[r][c.Col+j] = ch
		}
	}
}

func hourLabel(h int) string {
	suffix := "AM"
	if h >= 12 {
		suffix = "PM"
	}
	if h > 12 {
		h -= 12
	}
	return fmt.Sprintf("%d %s", h, suffix)
}
