package domain

import (
	"errors"
	"strings"
	"time"
)

var ErrInvalidEventRange = errors.New("domain: event must end after it starts")

type CalendarEvent struct {
	ID          string
	Title       string
	StartTime   time.Time
	EndTime     time.Time
	Description string
}

func (e *CalendarEvent) Validate() error {
	if strings.TrimSpace(e.Title) == "" {
		return ErrEmptyTitle
	}
	if !e.EndTime.After(e.StartTime) {
		return ErrInvalidEventRange
	}
	return nil
}

func (e *CalendarEvent) Duration() time.Duration {
	return e.EndTime.Sub(e.StartTime)
}

// Overlaps uses half-open intervals, so back-to-back events do not overlap.
func (e *CalendarEvent) Overlaps(other *CalendarEvent) bool {
	return e.StartTime.Before(other.EndTime) && other.StartTime.Before(e.EndTime)
}

// MatchesTitle reports whether query is a case-insensitive substring of the title.
func (e *CalendarEvent) MatchesTitle(query string) bool {
	return strings.Contains(strings.ToLower(e.Title), strings.ToLower(query))
}

// MoveTo shifts the event to start and keeps the given duration.
func (e *CalendarEvent) MoveTo(start time.Time, d time.Duration) {
	e.StartTime = start
	e.EndTime = start.Add(d)
}
