package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func event(id string, start time.Time, minutes int) CalendarEvent {
	return CalendarEvent{
		ID:        id,
		Title:     "Event " + id,
		StartTime: start,
		EndTime:   start.Add(time.Duration(minutes) * time.Minute),
	}
}

func TestEventOverlaps_HalfOpen(t *testing.T) {
	a := event("a", testNow, 60)
	b := event("b", testNow.Add(30*time.Minute), 60)
	c := event("c", testNow.Add(time.Hour), 30)

	assert.True(t, a.Overlaps(&b))
	assert.True(t, b.Overlaps(&a))
	assert.False(t, a.Overlaps(&c), "back-to-back events must not overlap")
	assert.True(t, b.Overlaps(&c))
}

func TestEventOverlaps_ZeroDuration(t *testing.T) {
	a := event("a", testNow, 60)
	z := event("z", testNow.Add(time.Hour), 0)
	assert.False(t, a.Overlaps(&z))

	atStart := event("s", testNow, 0)
	assert.False(t, a.Overlaps(&atStart))
}

func TestEventValidate(t *testing.T) {
	e := event("a", testNow, 30)
	assert.NoError(t, e.Validate())

	zero := event("z", testNow, 0)
	assert.ErrorIs(t, zero.Validate(), ErrInvalidEventRange)

	e.Title = ""
	assert.ErrorIs(t, e.Validate(), ErrEmptyTitle)
}

func TestEventMoveTo(t *testing.T) {
	e := event("a", testNow, 45)
	e.MoveTo(testNow.Add(3*time.Hour), e.Duration())

	assert.Equal(t, testNow.Add(3*time.Hour), e.StartTime)
	assert.Equal(t, 45*time.Minute, e.Duration())
}
