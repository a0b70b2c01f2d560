package domain

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrEmptyTitle      = errors.New("domain: title is required")
	ErrInvalidPriority = errors.New("domain: invalid task priority")
)

type Task struct {
	ID          string
	Title       string
	IsCompleted bool
	Priority    Priority
	DueDate     *time.Time
	Subtasks    []Subtask
}

type Subtask struct {
	ID          string
	Title       string
	IsCompleted bool
}

func (t *Task) Validate() error {
	if strings.TrimSpace(t.Title) == "" {
		return ErrEmptyTitle
	}
	if !t.Priority.IsValid() {
		return ErrInvalidPriority
	}
	return nil
}

// MatchesTitle reports whether query is a case-insensitive substring of the title.
func (t *Task) MatchesTitle(query string) bool {
	return strings.Contains(strings.ToLower(t.Title), strings.ToLower(query))
}

// Clone returns a deep copy so callers can mutate without aliasing.
func (t Task) Clone() Task {
	if t.DueDate != nil {
		due := *t.DueDate
		t.DueDate = &due
	}
	if t.Subtasks != nil {
		t.Subtasks = append([]Subtask(nil), t.Subtasks...)
	}
	return t
}

// CompletedSubtasks counts finished subtasks.
func (t *Task) CompletedSubtasks() int {
	n := 0
	for _, st := range t.Subtasks {
		if st.IsCompleted {
			n++
		}
	}
	return n
}
