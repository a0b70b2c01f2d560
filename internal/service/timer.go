package service

import "github.com/alexanderramin/dayflow/internal/focus"

// Timer returns the focus timer as it stands.
func (w *Workspace) Timer() focus.Timer {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.timer
}

// TickTimer advances the timer by one second if it is running.
func (w *Workspace) TickTimer() focus.Timer {
	return w.updateTimer(focus.Timer.Tick)
}

func (w *Workspace) ToggleTimer() focus.Timer {
	return w.updateTimer(focus.Timer.Toggle)
}

func (w *Workspace) ResetTimer() focus.Timer {
	return w.updateTimer(focus.Timer.Reset)
}

func (w *Workspace) SetTimerPhase(p focus.Phase) focus.Timer {
	return w.updateTimer(func(t focus.Timer) focus.Timer { return t.SetPhase(p) })
}

func (w *Workspace) updateTimer(fn func(focus.Timer) focus.Timer) focus.Timer {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.timer = fn(w.timer)
	return w.timer
}
