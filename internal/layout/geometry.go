package layout

import (
	"math"
	"time"

	"github.com/alexanderramin/dayflow/internal/domain"
)

// Geometry maps event times onto a day grid. Vertical values are in pixels,
// horizontal values are percentages of the lane width.
type Geometry struct {
	DayStartHour int
	DayEndHour   int
	PixelsPerMin float64
	LaneWidthPct float64
	LeftInsetPct float64
}

// DefaultGeometry is the timeline grid: 08:00 to 20:00 at 1.5px per minute.
func DefaultGeometry() Geometry {
	return Geometry{
		DayStartHour: 8,
		DayEndHour:   20,
		PixelsPerMin: 1.5,
		LaneWidthPct: 95,
		LeftInsetPct: 1,
	}
}

// Box is the placement of one event block.
type Box struct {
	Top    float64
	Height float64
	Left   float64
	Width  float64
}

// MinutesFromDayStart is the offset of t from the anchor hour on t's own day.
// Times before the anchor yield negative offsets.
func (g Geometry) MinutesFromDayStart(t time.Time) int {
	return (t.Hour()-g.DayStartHour)*60 + t.Minute()
}

// Place returns the block for e. Without a layout the event spans the lane.
func (g Geometry) Place(e domain.CalendarEvent, l *EventLayout) Box {
	start := g.MinutesFromDayStart(e.StartTime)
	end := g.MinutesFromDayStart(e.EndTime)
	box := Box{
		Top:    float64(start) * g.PixelsPerMin,
		Height: float64(end-start) * g.PixelsPerMin,
		Left:   g.LeftInsetPct,
		Width:  g.LaneWidthPct,
	}
	if l == nil || l.TotalColumns <= 0 {
		return box
	}
	width := g.LaneWidthPct / float64(l.TotalColumns)
	box.Width = width
	box.Left = width*float64(l.Column) + g.LeftInsetPct
	return box
}

// Cell is a Box quantised to a character grid.
type Cell struct {
	Row  int
	Rows int
	Col  int
	Cols int
}

// Cells quantises an event onto a grid with rowsPerHour rows and laneCols
// columns. Each block keeps at least one row and one column.
func (g Geometry) Cells(e domain.CalendarEvent, l EventLayout, rowsPerHour, laneCols int) Cell {
	start := g.MinutesFromDayStart(e.StartTime)
	end := g.MinutesFromDayStart(e.EndTime)
	perRow := 60.0 / float64(rowsPerHour)

	row := int(math.Floor(float64(start) / perRow))
	rows := int(math.Ceil(float64(end)/perRow)) - row
	if rows < 1 {
		rows = 1
	}

	total := l.TotalColumns
	if total < 1 {
		total = 1
	}
	colWidth := laneCols / total
	if colWidth < 1 {
		colWidth = 1
	}
	return Cell{Row: row, Rows: rows, Col: l.Column * colWidth, Cols: colWidth}
}

// Hours returns the hour labels shown on the grid, inclusive.
func (g Geometry) Hours() []int {
	var out []int
	for h := g.DayStartHour; h <= g.DayEndHour; h++ {
		out = append(out, h)
	}
	return out
}
