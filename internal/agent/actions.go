package agent

import (
	"time"

	"github.com/alexanderramin/dayflow/internal/domain"
)

// ActionName enumerates the functions the model may call.
type ActionName string

const (
	ActionCreateTask      ActionName = "createTask"
	ActionUpdateTask      ActionName = "updateTask"
	ActionCreateEvent     ActionName = "createEvent"
	ActionStartFocusTimer ActionName = "startFocusTimer"
	ActionReschedule      ActionName = "rescheduleEvent"
)

var knownActions = map[ActionName]bool{
	ActionCreateTask: true, ActionUpdateTask: true, ActionCreateEvent: true,
	ActionStartFocusTimer: true, ActionReschedule: true,
}

// IsKnownAction returns true if name is part of the action catalog.
func IsKnownAction(name string) bool {
	return knownActions[ActionName(name)]
}

// Action is one decoded invocation. The set of implementations is closed.
type Action interface {
	Name() ActionName
	sealed()
}

type CreateTask struct {
	Title    string
	Priority domain.Priority
	DueDate  *time.Time
	Subtasks []string
}

// UpdateTask leaves fields that are nil untouched.
type UpdateTask struct {
	SearchTitle string
	IsCompleted *bool
	Priority    *domain.Priority
}

type CreateEvent struct {
	Title    string
	Start    time.Time
	Duration time.Duration
}

type StartFocusTimer struct {
	Minutes int
}

// RescheduleEvent keeps the event's previous duration when Duration is nil.
type RescheduleEvent struct {
	SearchTitle string
	NewStart    time.Time
	Duration    *time.Duration
}

// UnknownAction is a call to a function outside the catalog.
type UnknownAction struct {
	CallName string
}

// InvalidAction is a known function called with arguments that failed
// validation.
type InvalidAction struct {
	Action ActionName
	Err    *ActionError
}

func (CreateTask) Name() ActionName      { return ActionCreateTask }
func (UpdateTask) Name() ActionName      { return ActionUpdateTask }
func (CreateEvent) Name() ActionName     { return ActionCreateEvent }
func (StartFocusTimer) Name() ActionName { return ActionStartFocusTimer }
func (RescheduleEvent) Name() ActionName { return ActionReschedule }
func (a UnknownAction) Name() ActionName { return ActionName(a.CallName) }
func (a InvalidAction) Name() ActionName { return a.Action }

func (CreateTask) sealed()      {}
func (UpdateTask) sealed()      {}
func (CreateEvent) sealed()     {}
func (StartFocusTimer) sealed() {}
func (RescheduleEvent) sealed() {}
func (UnknownAction) sealed()   {}
func (InvalidAction) sealed()   {}

// ActionErrorCode enumerates argument validation failures.
type ActionErrorCode string

const (
	ErrCodeMissingArgument ActionErrorCode = "MISSING_ARGUMENT"
	ErrCodeWrongType       ActionErrorCode = "WRONG_TYPE"
	ErrCodeBadEnum         ActionErrorCode = "BAD_ENUM"
	ErrCodeBadTimestamp    ActionErrorCode = "BAD_TIMESTAMP"
	ErrCodeBadDuration     ActionErrorCode = "BAD_DURATION"
)

// ActionError describes why a call's arguments were rejected.
type ActionError struct {
	Code    ActionErrorCode
	Field   string
	Message string
}

func (e *ActionError) Error() string {
	return string(e.Code) + ": " + e.Message
}
