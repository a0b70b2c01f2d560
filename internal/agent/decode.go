package agent

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/alexanderramin/dayflow/internal/domain"
	"github.com/alexanderramin/dayflow/internal/llm"
)

const (
	defaultEventMinutes = 60
	defaultFocusMinutes = 25

	// maxMinutes caps any duration argument at one week.
	maxMinutes = 7 * 24 * 60

	minYear = 1900
	maxYear = 2200
)

// Decode turns one tool call into an Action. It never fails: unknown names
// become UnknownAction and bad arguments become InvalidAction. Timestamps
// without a zone are read in loc.
func Decode(call llm.ToolCall, loc *time.Location) Action {
	if loc == nil {
		loc = time.Local
	}
	name := ActionName(call.Name)
	if !knownActions[name] {
		return UnknownAction{CallName: call.Name}
	}
	args := call.Args
	if args == nil {
		args = map[string]any{}
	}
	a, err := decoders[name](args, loc)
	if err != nil {
		return InvalidAction{Action: name, Err: err}
	}
	return a
}

type decoder func(args map[string]any, loc *time.Location) (Action, *ActionError)

var decoders = map[ActionName]decoder{
	ActionCreateTask:      decodeCreateTask,
	ActionUpdateTask:      decodeUpdateTask,
	ActionCreateEvent:     decodeCreateEvent,
	ActionStartFocusTimer: decodeStartFocusTimer,
	ActionReschedule:      decodeReschedule,
}

func decodeCreateTask(args map[string]any, loc *time.Location) (Action, *ActionError) {
	title, err := requireString(args, "title")
	if err != nil {
		return nil, err
	}
	a := CreateTask{Title: title, Priority: domain.PriorityDo}

	if p, err := optionalPriority(args, "priority"); err != nil {
		return nil, err
	} else if p != nil {
		a.Priority = *p
	}

	if s, err := optionalString(args, "dueDate"); err != nil {
		return nil, err
	} else if s != "" {
		due, err := parseTimestamp("dueDate", s, loc)
		if err != nil {
			return nil, err
		}
		a.DueDate = &due
	}

	if v, ok := args["subtasks"]; ok && v != nil {
		items, isList := v.([]any)
		if !isList {
			return nil, wrongType("subtasks", "a list of strings")
		}
		for _, item := range items {
			s, isStr := item.(string)
			if !isStr {
				return nil, wrongType("subtasks", "a list of strings")
			}
			if s = strings.TrimSpace(s); s != "" {
				a.Subtasks = append(a.Subtasks, s)
			}
		}
	}
	return a, nil
}

func decodeUpdateTask(args map[string]any, _ *time.Location) (Action, *ActionError) {
	search, err := requireString(args, "searchTitle")
	if err != nil {
		return nil, err
	}
	a := UpdateTask{SearchTitle: search}

	if v, ok := args["isCompleted"]; ok && v != nil {
		b, isBool := v.(bool)
		if !isBool {
			return nil, wrongType("isCompleted", "true or false")
		}
		a.IsCompleted = &b
	}

	p, err := optionalPriority(args, "priority")
	if err != nil {
		return nil, err
	}
	a.Priority = p
	return a, nil
}

func decodeCreateEvent(args map[string]any, loc *time.Location) (Action, *ActionError) {
	title, err := requireString(args, "title")
	if err != nil {
		return nil, err
	}
	start, err := requireTimestamp(args, "startTime", loc)
	if err != nil {
		return nil, err
	}
	d, err := optionalMinutes(args, "durationMinutes")
	if err != nil {
		return nil, err
	}
	a := CreateEvent{Title: title, Start: start, Duration: defaultEventMinutes * time.Minute}
	if d != nil {
		a.Duration = *d
	}
	return a, nil
}

func decodeStartFocusTimer(args map[string]any, _ *time.Location) (Action, *ActionError) {
	d, err := optionalMinutes(args, "minutes")
	if err != nil {
		return nil, err
	}
	if d == nil {
		return StartFocusTimer{Minutes: defaultFocusMinutes}, nil
	}
	mins := int(math.Round(d.Minutes()))
	if mins <= 0 {
		return nil, &ActionError{Code: ErrCodeBadDuration, Field: "minutes", Message: "minutes must be at least 1"}
	}
	return StartFocusTimer{Minutes: mins}, nil
}

func decodeReschedule(args map[string]any, loc *time.Location) (Action, *ActionError) {
	search, err := requireString(args, "searchTitle")
	if err != nil {
		return nil, err
	}
	start, err := requireTimestamp(args, "newStartTime", loc)
	if err != nil {
		return nil, err
	}
	d, err := optionalMinutes(args, "durationMinutes")
	if err != nil {
		return nil, err
	}
	return RescheduleEvent{SearchTitle: search, NewStart: start, Duration: d}, nil
}

func wrongType(field, want string) *ActionError {
	return &ActionError{Code: ErrCodeWrongType, Field: field, Message: field + " must be " + want}
}

func requireString(args map[string]any, key string) (string, *ActionError) {
	s, err := optionalString(args, key)
	if err != nil {
		return "", err
	}
	if s == "" {
		return "", &ActionError{Code: ErrCodeMissingArgument, Field: key, Message: key + " is required"}
	}
	return s, nil
}

// optionalString returns "" for absent, null or blank values.
func optionalString(args map[string]any, key string) (string, *ActionError) {
	v, ok := args[key]
	if !ok || v == nil {
		return "", nil
	}
	s, isStr := v.(string)
	if !isStr {
		return "", wrongType(key, "text")
	}
	return strings.TrimSpace(s), nil
}

func optionalPriority(args map[string]any, key string) (*domain.Priority, *ActionError) {
	s, err := optionalString(args, key)
	if err != nil || s == "" {
		return nil, err
	}
	p := domain.Priority(strings.ToLower(s))
	if !p.IsValid() {
		return nil, &ActionError{
			Code:    ErrCodeBadEnum,
			Field:   key,
			Message: fmt.Sprintf("%s must be one of do, schedule, delegate or delete, not %q", key, s),
		}
	}
	return &p, nil
}

func optionalMinutes(args map[string]any, key string) (*time.Duration, *ActionError) {
	v, ok := args[key]
	if !ok || v == nil {
		return nil, nil
	}
	n, isNum := toNumber(v)
	if !isNum {
		return nil, wrongType(key, "a number of minutes")
	}
	if n <= 0 || math.IsInf(n, 0) || math.IsNaN(n) {
		return nil, &ActionError{Code: ErrCodeBadDuration, Field: key, Message: key + " must be greater than zero"}
	}
	if n > maxMinutes {
		return nil, &ActionError{Code: ErrCodeBadDuration, Field: key, Message: fmt.Sprintf("%s must be at most %d", key, maxMinutes)}
	}
	d := time.Duration(n * float64(time.Minute))
	if d <= 0 {
		return nil, &ActionError{Code: ErrCodeBadDuration, Field: key, Message: key + " is too small"}
	}
	return &d, nil
}

func toNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

func requireTimestamp(args map[string]any, key string, loc *time.Location) (time.Time, *ActionError) {
	s, err := requireString(args, key)
	if err != nil {
		return time.Time{}, err
	}
	return parseTimestamp(key, s, loc)
}

// timestampLayouts are tried in order. Layouts without a zone are read in
// the caller's location.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

func parseTimestamp(key, s string, loc *time.Location) (time.Time, *ActionError) {
	for _, layout := range timestampLayouts {
		t, err := time.ParseInLocation(layout, s, loc)
		if err != nil {
			continue
		}
		if y := t.Year(); y < minYear || y > maxYear {
			return time.Time{}, &ActionError{
				Code:    ErrCodeBadTimestamp,
				Field:   key,
				Message: fmt.Sprintf("%s %q is outside %d to %d", key, s, minYear, maxYear),
			}
		}
		return t, nil
	}
	return time.Time{}, &ActionError{
		Code:    ErrCodeBadTimestamp,
		Field:   key,
		Message: fmt.Sprintf("%s %q is not an ISO 8601 time", key, s),
	}
}
