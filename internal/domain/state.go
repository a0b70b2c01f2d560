package domain

import (
	"sort"
	"time"
)

// State is everything one session holds. It lives for the process only.
type State struct {
	Mode       AgentMode
	ActiveView View
	Tasks      []Task
	Events     []CalendarEvent
	Messages   []Message
}

// NewState returns an empty session positioned on the chat view.
func NewState() State {
	return State{ActiveView: ViewChat}
}

// Clone returns a deep copy. Reducers work on the copy and hand it back.
func (s State) Clone() State {
	out := s
	out.Tasks = make([]Task, len(s.Tasks))
	for i, t := range s.Tasks {
		out.Tasks[i] = t.Clone()
	}
	out.Events = append([]CalendarEvent(nil), s.Events...)
	out.Messages = append([]Message(nil), s.Messages...)
	return out
}

// History returns the messages that may be replayed to the model.
// System messages are local annotations and are never sent.
func (s *State) History() []Message {
	out := make([]Message, 0, len(s.Messages))
	for _, m := range s.Messages {
		if m.Role == RoleSystem {
			continue
		}
		out = append(out, m)
	}
	return out
}

// FindTaskByTitle returns the index of the first task whose title contains query.
func (s *State) FindTaskByTitle(query string) int {
	for i := range s.Tasks {
		if s.Tasks[i].MatchesTitle(query) {
			return i
		}
	}
	return -1
}

// FindEventByTitle returns the index of the first event whose title contains query.
func (s *State) FindEventByTitle(query string) int {
	for i := range s.Events {
		if s.Events[i].MatchesTitle(query) {
			return i
		}
	}
	return -1
}

func (s *State) TaskIndex(id string) int {
	for i := range s.Tasks {
		if s.Tasks[i].ID == id {
			return i
		}
	}
	return -1
}

// Quadrant returns the incomplete tasks with priority p, in list order.
func (s *State) Quadrant(p Priority) []Task {
	var out []Task
	for _, t := range s.Tasks {
		if t.Priority == p && !t.IsCompleted {
			out = append(out, t)
		}
	}
	return out
}

// NextEvent returns the earliest event starting strictly after now.
func (s *State) NextEvent(now time.Time) (CalendarEvent, bool) {
	sorted := append([]CalendarEvent(nil), s.Events...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StartTime.Before(sorted[j].StartTime)
	})
	for _, e := range sorted {
		if e.StartTime.After(now) {
			return e, true
		}
	}
	return CalendarEvent{}, false
}
