package layout

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/alexanderramin/dayflow/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomEvents(rng *rand.Rand, n int) []domain.CalendarEvent {
	events := make([]domain.CalendarEvent, n)
	for i := range events {
		startMin := rng.Intn(12*60) + 8*60
		// Quarter-hour starts and durations make touching edges common.
		startMin -= startMin % 15
		duration := (rng.Intn(8) + 1) * 15
		if rng.Intn(20) == 0 {
			duration = 0
		}
		start := day.Add(time.Duration(startMin) * time.Minute)
		events[i] = domain.CalendarEvent{
			ID:        fmt.Sprintf("ev-%d", i),
			Title:     "Event",
			StartTime: start,
			EndTime:   start.Add(time.Duration(duration) * time.Minute),
		}
	}
	return events
}

// TestEvents_Invariants property-tests the layout against random days.
func TestEvents_Invariants(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for trial := 0; trial < 300; trial++ {
		events := randomEvents(rng, rng.Intn(12)+1)
		layouts := Events(events)
		require.Len(t, layouts, len(events), "trial %d: every event gets a layout", trial)

		for _, e := range events {
			l := layouts[e.ID]
			assert.GreaterOrEqual(t, l.Column, 0, "trial %d", trial)
			assert.Greater(t, l.TotalColumns, 0, "trial %d", trial)
			assert.Less(t, l.Column, l.TotalColumns, "trial %d: column within group width", trial)
		}

		for i := range events {
			for j := i + 1; j < len(events); j++ {
				a, b := events[i], events[j]
				if !a.Overlaps(&b) {
					continue
				}
				la, lb := layouts[a.ID], layouts[b.ID]
				assert.NotEqual(t, la.Column, lb.Column,
					"trial %d: overlapping %s and %s share column %d", trial, a.ID, b.ID, la.Column)
				assert.Equal(t, la.TotalColumns, lb.TotalColumns,
					"trial %d: overlapping %s and %s must share a group", trial, a.ID, b.ID)
			}
		}
	}
}

// TestEvents_IsolatedInvariant checks that an event overlapping nothing is
// always laid out alone.
func TestEvents_IsolatedInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(99))

	for trial := 0; trial < 300; trial++ {
		events := randomEvents(rng, rng.Intn(10)+1)
		layouts := Events(events)

		for i := range events {
			isolated := true
			for j := range events {
				if i != j && events[i].Overlaps(&events[j]) {
					isolated = false
					break
				}
			}
			if isolated {
				assert.Equal(t, EventLayout{Column: 0, TotalColumns: 1}, layouts[events[i].ID],
					"trial %d: isolated event %s", trial, events[i].ID)
			}
		}
	}
}

func TestEvents_Deterministic(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	events := randomEvents(rng, 15)
	assert.Equal(t, Events(events), Events(events))
}
