// Package focus holds the pomodoro timer state shown in the focus view.
package focus

import "fmt"

type Phase string

const (
	PhaseFocus Phase = "focus"
	PhaseBreak Phase = "break"
)

const (
	DefaultFocusMinutes = 25
	DefaultBreakMinutes = 5
)

// Timer is a value type; every method returns the next state.
type Timer struct {
	Phase        Phase
	FocusSec     int
	BreakSec     int
	RemainingSec int
	Running      bool
}

// New returns a paused timer at the start of a default focus block.
func New() Timer {
	t := Timer{
		Phase:    PhaseFocus,
		FocusSec: DefaultFocusMinutes * 60,
		BreakSec: DefaultBreakMinutes * 60,
	}
	t.RemainingSec = t.FocusSec
	return t
}

// Total is the length of the current phase in seconds.
func (t Timer) Total() int {
	if t.Phase == PhaseBreak {
		return t.BreakSec
	}
	return t.FocusSec
}

// Start begins a running focus block of the given length.
// Non-positive minutes fall back to the default block.
func (t Timer) Start(minutes int) Timer {
	if minutes <= 0 {
		minutes = DefaultFocusMinutes
	}
	t.Phase = PhaseFocus
	t.FocusSec = minutes * 60
	t.RemainingSec = t.FocusSec
	t.Running = true
	return t
}

// Toggle pauses or resumes. Resuming a finished phase restarts it.
func (t Timer) Toggle() Timer {
	if t.Running {
		t.Running = false
		return t
	}
	if t.RemainingSec <= 0 {
		t.RemainingSec = t.Total()
	}
	t.Running = true
	return t
}

// Reset stops the timer and refills the current phase.
func (t Timer) Reset() Timer {
	t.Running = false
	t.RemainingSec = t.Total()
	return t
}

// SetPhase switches phase, paused and full.
func (t Timer) SetPhase(p Phase) Timer {
	t.Phase = p
	return t.Reset()
}

// Tick advances one second. The timer stops itself at zero.
func (t Timer) Tick() Timer {
	if !t.Running {
		return t
	}
	if t.RemainingSec > 0 {
		t.RemainingSec--
	}
	if t.RemainingSec == 0 {
		t.Running = false
	}
	return t
}

// Done reports whether the current phase has run out.
func (t Timer) Done() bool {
	return t.RemainingSec == 0
}

// Progress is the elapsed fraction of the current phase in [0,1].
func (t Timer) Progress() float64 {
	total := t.Total()
	if total <= 0 {
		return 0
	}
	return float64(total-t.RemainingSec) / float64(total)
}

// Format renders the remaining time as MM:SS.
func (t Timer) Format() string {
	return fmt.Sprintf("%02d:%02d", t.RemainingSec/60, t.RemainingSec%60)
}
