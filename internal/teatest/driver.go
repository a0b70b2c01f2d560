// Package teatest drives a bubbletea model synchronously in tests.
//
// A Driver stands in for tea.Program: every message goes straight to
// Update and the returned Cmds are run to completion before the call
// returns, so assertions see the settled model. Cmds that block (cursor
// blinks, spinner and timer ticks, a chat turn held open by a test) are
// given a short deadline and dropped when they miss it.
package teatest

import (
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// MaxDrainDepth bounds how many Cmd generations one Send may chain.
const MaxDrainDepth = 100

// DefaultCmdTimeout separates instant Cmds (message factories, in-memory
// DB work, scripted agents) from ones that wait on a timer.
const DefaultCmdTimeout = 10 * time.Millisecond

// Driver runs a tea.Model without a terminal.
type Driver struct {
	T     *testing.T
	Model tea.Model

	// Quitting is set once tea.Quit has run. The runtime normally swallows
	// tea.QuitMsg, so the driver records it itself.
	Quitting bool

	// Dropped counts Cmds that missed the deadline.
	Dropped int

	timeout time.Duration
	skips   []func(tea.Msg) bool
}

// Option configures a Driver.
type Option func(*Driver)

// New wraps model. Call DrainInit afterwards to run the model's Init.
func New(t *testing.T, model tea.Model, opts ...Option) *Driver {
	t.Helper()
	d := &Driver{
		T:       t,
		Model:   model,
		timeout: DefaultCmdTimeout,
		skips:   []func(tea.Msg) bool{isCursorBlink},
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// WithSize delivers a WindowSizeMsg before anything else.
func WithSize(w, h int) Option {
	return func(d *Driver) {
		d.T.Helper()
		d.Model, _ = d.Model.Update(tea.WindowSizeMsg{Width: w, Height: h})
	}
}

// WithCmdTimeout changes how long a Cmd may run before it is dropped.
func WithCmdTimeout(timeout time.Duration) Option {
	return func(d *Driver) { d.timeout = timeout }
}

// WithSkip drops messages matching skip instead of delivering them.
// Cursor blinks are always skipped.
func WithSkip(skip func(tea.Msg) bool) Option {
	return func(d *Driver) { d.skips = append(d.skips, skip) }
}

// DrainInit runs Init and everything it leads to.
func (d *Driver) DrainInit() {
	d.T.Helper()
	d.drain(d.Model.Init(), 0)
}

// Send delivers msg and drains the resulting Cmds. It is a no-op after quit.
func (d *Driver) Send(msg tea.Msg) {
	d.T.Helper()
	if d.Quitting {
		return
	}
	var cmd tea.Cmd
	d.Model, cmd = d.Model.Update(msg)
	d.drain(cmd, 0)
}

// Resize sends a WindowSizeMsg.
func (d *Driver) Resize(w, h int) {
	d.T.Helper()
	d.Send(tea.WindowSizeMsg{Width: w, Height: h})
}

// ── keys ─────────────────────────────────────────────────────────────────────

func (d *Driver) SendKey(msg tea.KeyMsg) {
	d.T.Helper()
	d.Send(msg)
}

func (d *Driver) pressType(t tea.KeyType) {
	d.T.Helper()
	d.SendKey(tea.KeyMsg{Type: t})
}

// PressKey sends a single printable rune.
func (d *Driver) PressKey(r rune) {
	d.T.Helper()
	if r == ' ' {
		d.PressSpace()
		return
	}
	d.SendKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
}

func (d *Driver) PressSpace() {
	d.T.Helper()
	d.SendKey(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
}

func (d *Driver) PressEnter()    { d.T.Helper(); d.pressType(tea.KeyEnter) }
func (d *Driver) PressEsc()      { d.T.Helper(); d.pressType(tea.KeyEsc) }
func (d *Driver) PressTab()      { d.T.Helper(); d.pressType(tea.KeyTab) }
func (d *Driver) PressShiftTab() { d.T.Helper(); d.pressType(tea.KeyShiftTab) }
func (d *Driver) PressUp()       { d.T.Helper(); d.pressType(tea.KeyUp) }
func (d *Driver) PressDown()     { d.T.Helper(); d.pressType(tea.KeyDown) }
func (d *Driver) PressCtrlC()    { d.T.Helper(); d.pressType(tea.KeyCtrlC) }

// Type sends s one rune at a time.
func (d *Driver) Type(s string) {
	d.T.Helper()
	for _, r := range s {
		d.PressKey(r)
	}
}

// View renders the model.
func (d *Driver) View() string {
	return d.Model.View()
}

// ── draining ─────────────────────────────────────────────────────────────────

func (d *Driver) drain(cmd tea.Cmd, depth int) {
	d.T.Helper()
	if cmd == nil {
		return
	}
	if depth >= MaxDrainDepth {
		d.T.Logf("teatest: stopped draining at depth %d", MaxDrainDepth)
		return
	}

	msg, ok := d.run(cmd)
	if !ok {
		d.Dropped++
		return
	}
	if msg == nil || d.skipped(msg) {
		return
	}

	switch msg := msg.(type) {
	case tea.BatchMsg:
		for _, sub := range msg {
			d.drain(sub, depth+1)
		}
	case tea.QuitMsg:
		d.Quitting = true
		d.Model, _ = d.Model.Update(msg)
	default:
		var next tea.Cmd
		d.Model, next = d.Model.Update(msg)
		d.drain(next, depth+1)
	}
}

// run executes cmd off the test goroutine. ok is false when it did not
// finish in time; its goroutine is abandoned.
func (d *Driver) run(cmd tea.Cmd) (tea.Msg, bool) {
	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()
	select {
	case msg := <-ch:
		return msg, true
	case <-time.After(d.timeout):
		return nil, false
	}
}

func (d *Driver) skipped(msg tea.Msg) bool {
	for _, skip := range d.skips {
		if skip(msg) {
			return true
		}
	}
	return false
}

// isCursorBlink matches the bubbles cursor's unexported blink messages,
// which would otherwise chain into blocking timer Cmds.
func isCursorBlink(msg tea.Msg) bool {
	return strings.Contains(strings.ToLower(fmt.Sprintf("%T", msg)), "blink")
}
