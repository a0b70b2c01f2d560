// Package layout places overlapping calendar events side by side on a
// time grid.
package layout

import (
	"sort"

	"github.com/alexanderramin/dayflow/internal/domain"
)

// EventLayout is the rendering hint for one event.
type EventLayout struct {
	Column       int
	TotalColumns int
}

// Events assigns every event a column within its overlap group.
//
// Events are sorted by start time (stable). Each event joins the first
// group holding any event it overlaps, otherwise it opens a new group, so a
// group may chain events that do not all overlap pairwise. Within a group an
// event takes the lowest column whose last placed event it does not overlap.
// Every member reports the group's final column count.
//
// The input slice is not modified.
func Events(events []domain.CalendarEvent) map[string]EventLayout {
	sorted := make([]domain.CalendarEvent, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StartTime.Before(sorted[j].StartTime)
	})

	out := make(map[string]EventLayout, len(events))
	for _, group := range groupOverlapping(sorted) {
		columns := assignColumns(group)
		total := 0
		for _, c := range columns {
			if c+1 > total {
				total = c + 1
			}
		}
		for i, e := range group {
			out[e.ID] = EventLayout{Column: columns[i], TotalColumns: total}
		}
	}
	return out
}

func groupOverlapping(sorted []domain.CalendarEvent) [][]domain.CalendarEvent {
	var groups [][]domain.CalendarEvent
	for _, e := range sorted {
		placed := false
		for gi := range groups {
			if overlapsAny(groups[gi], e) {
				groups[gi] = append(groups[gi], e)
				placed = true
				break
			}
		}
		if !placed {
			groups = append(groups, []domain.CalendarEvent{e})
		}
	}
	return groups
}

func overlapsAny(group []domain.CalendarEvent, e domain.CalendarEvent) bool {
	for i := range group {
		if group[i].Overlaps(&e) {
			return true
		}
	}
	return false
}

// assignColumns returns the column index for each event of group, in order.
func assignColumns(group []domain.CalendarEvent) []int {
	// last[c] is the most recently placed event in column c.
	var last []domain.CalendarEvent
	cols := make([]int, len(group))
	for i, e := range group {
		col := len(last)
		for c := range last {
			if !last[c].Overlaps(&e) {
				col = c
				break
			}
		}
		if col == len(last) {
			last = append(last, e)
		} else {
			last[col] = e
		}
		cols[i] = col
	}
	return cols
}
