package focus

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_PausedFullFocusBlock(t *testing.T) {
	tm := New()
	assert.Equal(t, PhaseFocus, tm.Phase)
	assert.Equal(t, 25*60, tm.RemainingSec)
	assert.False(t, tm.Running)
	assert.Equal(t, "25:00", tm.Format())
	assert.Zero(t, tm.Progress())
}

func TestStart_UsesRequestedMinutes(t *testing.T) {
	tm := New().Start(50)
	assert.True(t, tm.Running)
	assert.Equal(t, 50*60, tm.RemainingSec)
	assert.Equal(t, "50:00", tm.Format())

	def := New().Start(0)
	assert.Equal(t, 25*60, def.RemainingSec)
}

func TestTick_CountsDownAndStopsAtZero(t *testing.T) {
	tm := New().Start(1)
	for i := 0; i < 59; i++ {
		tm = tm.Tick()
	}
	assert.Equal(t, "00:01", tm.Format())
	assert.True(t, tm.Running)

	tm = tm.Tick()
	assert.True(t, tm.Done())
	assert.False(t, tm.Running)

	tm = tm.Tick()
	assert.Equal(t, 0, tm.RemainingSec, "stopped timer does not go negative")
}

func TestTick_PausedTimerDoesNotMove(t *testing.T) {
	tm := New()
	assert.Equal(t, tm, tm.Tick())
}

func TestToggle_RestartsFinishedPhase(t *testing.T) {
	tm := New()
	tm.RemainingSec = 0

	tm = tm.Toggle()
	assert.True(t, tm.Running)
	assert.Equal(t, 25*60, tm.RemainingSec)

	tm = tm.Toggle()
	assert.False(t, tm.Running)
}

func TestSetPhase_BreakIsFiveMinutes(t *testing.T) {
	tm := New().Start(25).Tick().SetPhase(PhaseBreak)
	assert.Equal(t, PhaseBreak, tm.Phase)
	assert.False(t, tm.Running)
	assert.Equal(t, "05:00", tm.Format())
}

func TestProgress(t *testing.T) {
	tm := New().SetPhase(PhaseBreak).Toggle()
	for i := 0; i < 150; i++ {
		tm = tm.Tick()
	}
	assert.InDelta(t, 0.5, tm.Progress(), 0.0001)
}
