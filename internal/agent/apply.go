package agent

import (
	"fmt"
	"time"

	"github.com/alexanderramin/dayflow/internal/domain"
)

const replyTimeLayout = "3:04 PM"

// apply mutates st for a and returns the reply fragment.
func (h *Handler) apply(st *domain.State, a Action, res *Result) string {
	switch a := a.(type) {
	case CreateTask:
		task := domain.Task{
			ID:       h.newID(),
			Title:    a.Title,
			Priority: a.Priority,
			DueDate:  a.DueDate,
		}
		for _, title := range a.Subtasks {
			task.Subtasks = append(task.Subtasks, domain.Subtask{ID: h.newID(), Title: title})
		}
		st.Tasks = append([]domain.Task{task}, st.Tasks...)
		return fmt.Sprintf("Added \"%s\" to your list.", task.Title)

	case UpdateTask:
		i := st.FindTaskByTitle(a.SearchTitle)
		if i < 0 {
			return fmt.Sprintf("I couldn't find a task matching \"%s\".", a.SearchTitle)
		}
		task := &st.Tasks[i]
		if a.IsCompleted != nil {
			task.IsCompleted = *a.IsCompleted
		}
		if a.Priority != nil {
			task.Priority = *a.Priority
		}
		return fmt.Sprintf("Updated \"%s\".", task.Title)

	case CreateEvent:
		ev := domain.CalendarEvent{
			ID:        h.newID(),
			Title:     a.Title,
			StartTime: a.Start,
			EndTime:   a.Start.Add(a.Duration),
		}
		st.Events = append(st.Events, ev)
		return fmt.Sprintf("Scheduled \"%s\" for %s.", ev.Title, h.clock(ev.StartTime))

	case StartFocusTimer:
		res.FocusMinutes = a.Minutes
		return fmt.Sprintf("Starting focus timer for %d minutes. Good luck!", a.Minutes)

	case RescheduleEvent:
		i := st.FindEventByTitle(a.SearchTitle)
		if i < 0 {
			return fmt.Sprintf("I couldn't find an event matching \"%s\".", a.SearchTitle)
		}
		ev := &st.Events[i]
		old := ev.StartTime
		d := ev.Duration()
		if a.Duration != nil {
			d = *a.Duration
		}
		ev.MoveTo(a.NewStart, d)
		return fmt.Sprintf("Rescheduled \"%s\" from %s to %s.", ev.Title, h.clock(old), h.clock(ev.StartTime))

	case UnknownAction:
		return fmt.Sprintf("I don't know the action %q.", a.CallName)

	case InvalidAction:
		return fmt.Sprintf("I couldn't %s: %s.", actionVerbs[a.Action], a.Err.Message)
	}
	return ""
}

var actionVerbs = map[ActionName]string{
	ActionCreateTask:      "add that task",
	ActionUpdateTask:      "update that task",
	ActionCreateEvent:     "schedule that event",
	ActionStartFocusTimer: "start the focus timer",
	ActionReschedule:      "reschedule that event",
}

func (h *Handler) clock(t time.Time) string {
	return t.In(h.loc).Format(replyTimeLayout)
}
