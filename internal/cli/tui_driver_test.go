package cli

import (
	"testing"

	"github.com/alexanderramin/dayflow/internal/domain"
	"github.com/alexanderramin/dayflow/internal/teatest"
)

// TestDriver wraps teatest.Driver with access to appModel internals the
// generic driver can't see: the view stack, the screen cache and the
// shared state.
type TestDriver struct {
	*teatest.Driver
}

// NewTestDriver builds the appModel for app at 120x40 and drains Init
// (the agent probe and the selector form).
func NewTestDriver(t *testing.T, app *App) *TestDriver {
	t.Helper()

	m := newAppModel(app)
	d := teatest.New(t, m, teatest.WithSize(120, 40))
	d.DrainInit()

	return &TestDriver{Driver: d}
}

// ── High-level helpers ───────────────────────────────────────────────────────

// Pick selects mode the way the form would report it and lands on chat.
func (d *TestDriver) Pick(mode domain.AgentMode) {
	d.T.Helper()
	d.Send(modeSelectedMsg{mode: mode})
}

// Say types text into the chat input and presses enter.
func (d *TestDriver) Say(text string) {
	d.T.Helper()
	d.Type(text)
	d.PressEnter()
}

// ── Inspection ───────────────────────────────────────────────────────────────

func (d *TestDriver) appModel() appModel {
	return d.Model.(appModel)
}

// ActiveViewID returns the ViewID of the top view on the stack.
func (d *TestDriver) ActiveViewID() ViewID {
	m := d.appModel()
	v := m.activeView()
	if v == nil {
		return ViewID(-1)
	}
	return v.ID()
}

// ViewStackIDs returns the ViewIDs of all views on the stack, bottom to top.
func (d *TestDriver) ViewStackIDs() []ViewID {
	m := d.appModel()
	ids := make([]ViewID, len(m.viewStack))
	for i, v := range m.viewStack {
		ids[i] = v.ID()
	}
	return ids
}

// Chat returns the cached chat screen, or nil before a persona is picked.
func (d *TestDriver) Chat() *chatView {
	v, ok := d.appModel().screens[ViewChat]
	if !ok {
		return nil
	}
	return v.(*chatView)
}

// State returns the shared state for inspection.
func (d *TestDriver) State() *SharedState {
	return d.appModel().state
}

// Session returns a copy of the workspace state.
func (d *TestDriver) Session() domain.State {
	return d.State().Workspace().State()
}

// IsQuitting reports whether the model or the runtime saw a quit.
func (d *TestDriver) IsQuitting() bool {
	return d.appModel().quitting || d.Quitting
}

// Ticking reports whether a focus tick loop is scheduled.
func (d *TestDriver) Ticking() bool {
	return d.appModel().ticking
}
