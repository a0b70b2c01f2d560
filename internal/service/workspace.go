package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/alexanderramin/dayflow/internal/agent"
	"github.com/alexanderramin/dayflow/internal/db"
	"github.com/alexanderramin/dayflow/internal/domain"
	"github.com/alexanderramin/dayflow/internal/focus"
	"github.com/alexanderramin/dayflow/internal/repository"
)

// Workspace owns one session: its state, the focus timer and the session
// store. It is safe for concurrent use. At most one agent turn runs at a
// time, and task edits are refused while it does.
type Workspace struct {
	handler  *agent.Handler
	uow      db.UnitOfWork
	observer UseCaseObserver
	now      func() time.Time

	mu        sync.Mutex
	state     domain.State
	timer     focus.Timer
	inFlight  bool
	savedMsgs int
}

// NewWorkspace creates an empty session. A nil uow keeps state in memory
// only.
func NewWorkspace(handler *agent.Handler, uow db.UnitOfWork, observers ...UseCaseObserver) *Workspace {
	return &Workspace{
		handler:  handler,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
		now:      time.Now,
		state:    domain.NewState(),
		timer:    focus.New(),
	}
}

// TurnOutcome summarises a completed turn for the caller.
type TurnOutcome struct {
	Reply        string
	Actions      int
	FocusMinutes int
}

// UpNext is the next event on the calendar and how far away it is.
type UpNext struct {
	Event        domain.CalendarEvent
	MinutesUntil int
}

// SelectMode switches persona and returns to the chat view. Tasks, events
// and messages are kept.
func (w *Workspace) SelectMode(mode domain.AgentMode) error {
	if !mode.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidMode, mode)
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.state.Mode = mode
	w.state.ActiveView = domain.ViewChat
	return nil
}

func (w *Workspace) SetView(v domain.View) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !v.IsVisible(w.state.Mode) {
		return fmt.Errorf("%w: %s", ErrViewHidden, v)
	}
	w.state.ActiveView = v
	return nil
}

// Send runs one agent turn. When the agent cannot be reached the user's
// message and a failure notice are recorded and the returned error wraps
// agent.ErrAgentUnavailable.
func (w *Workspace) Send(ctx context.Context, text string) (outcome TurnOutcome, err error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return TurnOutcome{}, ErrEmptyMessage
	}

	w.mu.Lock()
	if w.state.Mode == domain.ModeNone {
		w.mu.Unlock()
		return TurnOutcome{}, ErrNoMode
	}
	if w.inFlight {
		w.mu.Unlock()
		return TurnOutcome{}, ErrTurnInFlight
	}
	w.inFlight = true
	snapshot := w.state.Clone()
	w.mu.Unlock()

	startedAt := w.now()
	fields := map[string]any{"mode": string(snapshot.Mode)}
	defer func() {
		w.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "send-turn",
			StartedAt: startedAt,
			Duration:  w.now().Sub(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	res, turnErr := w.handler.HandleTurn(ctx, snapshot, text, snapshot.Mode)

	w.mu.Lock()
	defer w.mu.Unlock()
	defer func() { w.inFlight = false }()

	if turnErr != nil {
		failed := w.handler.RecordFailure(w.state, text)
		if err := w.commit(ctx, failed); err != nil {
			return TurnOutcome{}, fmt.Errorf("%w (recording failure: %v)", turnErr, err)
		}
		return TurnOutcome{}, turnErr
	}

	next := w.state.Clone()
	next.Tasks = res.State.Tasks
	next.Events = res.State.Events
	next.Messages = res.State.Messages
	if err := w.commit(ctx, next); err != nil {
		return TurnOutcome{}, err
	}

	if res.FocusMinutes > 0 {
		w.state.ActiveView = domain.ViewFocus
		w.timer = focus.New().Start(res.FocusMinutes)
	}

	fields["actions"] = len(res.Actions)
	fields["focus_minutes"] = res.FocusMinutes
	return TurnOutcome{Reply: res.Reply, Actions: len(res.Actions), FocusMinutes: res.FocusMinutes}, nil
}

// InFlight reports whether a turn is pending.
func (w *Workspace) InFlight() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.inFlight
}

func (w *Workspace) ToggleTask(ctx context.Context, id string) error {
	return w.editTask(ctx, "toggle-task", id, func(t *domain.Task) error {
		t.IsCompleted = !t.IsCompleted
		return nil
	})
}

func (w *Workspace) SetTaskPriority(ctx context.Context, id string, p domain.Priority) error {
	return w.editTask(ctx, "set-task-priority", id, func(t *domain.Task) error {
		if !p.IsValid() {
			return domain.ErrInvalidPriority
		}
		t.Priority = p
		return nil
	})
}

func (w *Workspace) ToggleSubtask(ctx context.Context, taskID, subtaskID string) error {
	return w.editTask(ctx, "toggle-subtask", taskID, func(t *domain.Task) error {
		for i := range t.Subtasks {
			if t.Subtasks[i].ID == subtaskID {
				t.Subtasks[i].IsCompleted = !t.Subtasks[i].IsCompleted
				return nil
			}
		}
		return fmt.Errorf("subtask %s: %w", subtaskID, ErrTaskNotFound)
	})
}

func (w *Workspace) DeleteTask(ctx context.Context, id string) (err error) {
	defer w.observe(ctx, "delete-task", id, time.Now(), &err)

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.inFlight {
		return ErrTurnInFlight
	}
	i := w.state.TaskIndex(id)
	if i < 0 {
		return fmt.Errorf("task %s: %w", id, ErrTaskNotFound)
	}
	next := w.state.Clone()
	next.Tasks = append(next.Tasks[:i], next.Tasks[i+1:]...)
	return w.commit(ctx, next)
}

func (w *Workspace) editTask(ctx context.Context, name, id string, edit func(*domain.Task) error) (err error) {
	defer w.observe(ctx, name, id, time.Now(), &err)

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.inFlight {
		return ErrTurnInFlight
	}
	i := w.state.TaskIndex(id)
	if i < 0 {
		return fmt.Errorf("task %s: %w", id, ErrTaskNotFound)
	}
	next := w.state.Clone()
	if err := edit(&next.Tasks[i]); err != nil {
		return err
	}
	return w.commit(ctx, next)
}

func (w *Workspace) observe(ctx context.Context, name, taskID string, startedAt time.Time, err *error) {
	w.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      name,
		StartedAt: startedAt,
		Duration:  time.Since(startedAt),
		Success:   *err == nil,
		Err:       *err,
		Fields:    map[string]any{"task_id": taskID},
	})
}

// commit saves next to the store and then makes it the current state.
// Callers hold w.mu.
func (w *Workspace) commit(ctx context.Context, next domain.State) error {
	if w.uow != nil {
		err := w.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
			if err := repository.NewSQLiteTaskRepo(tx).ReplaceAll(ctx, next.Tasks); err != nil {
				return err
			}
			if err := repository.NewSQLiteEventRepo(tx).ReplaceAll(ctx, next.Events); err != nil {
				return err
			}
			msgs := repository.NewSQLiteMessageRepo(tx)
			for i := w.savedMsgs; i < len(next.Messages); i++ {
				if err := msgs.Append(ctx, &next.Messages[i]); err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			return fmt.Errorf("saving session: %w", err)
		}
	}
	w.state = next
	w.savedMsgs = len(next.Messages)
	return nil
}

// State returns a copy of the current session state.
func (w *Workspace) State() domain.State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state.Clone()
}

// Quadrants groups incomplete tasks by priority.
func (w *Workspace) Quadrants() map[domain.Priority][]domain.Task {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make(map[domain.Priority][]domain.Task, len(domain.Priorities))
	for _, p := range domain.Priorities {
		out[p] = w.state.Quadrant(p)
	}
	return out
}

// NextEvent returns the first event starting after now.
func (w *Workspace) NextEvent(now time.Time) (UpNext, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	ev, ok := w.state.NextEvent(now)
	if !ok {
		return UpNext{}, false
	}
	return UpNext{Event: ev, MinutesUntil: int(ev.StartTime.Sub(now).Minutes())}, true
}
