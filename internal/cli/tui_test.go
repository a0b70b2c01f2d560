package cli

import (
	"context"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/dayflow/internal/agent"
	"github.com/alexanderramin/dayflow/internal/domain"
	"github.com/alexanderramin/dayflow/internal/focus"
	"github.com/alexanderramin/dayflow/internal/llm"
	"github.com/alexanderramin/dayflow/internal/testutil"
)

var ansiRe = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func plain(s string) string { return ansiRe.ReplaceAllString(s, "") }

func TestTUI_StartsOnSelector(t *testing.T) {
	app, _ := testApp(t)
	d := NewTestDriver(t, app)

	assert.Equal(t, []ViewID{ViewSelector}, d.ViewStackIDs())
	view := plain(d.View())
	assert.Contains(t, view, "Choose your agent")
	assert.Contains(t, view, "Focus Flow")
	assert.Contains(t, view, "agent online")
}

func TestTUI_SelectorFormPicksPersona(t *testing.T) {
	app, _ := testApp(t)
	d := NewTestDriver(t, app)

	d.PressDown()
	d.PressEnter()

	assert.Equal(t, []ViewID{ViewSelector, ViewChat}, d.ViewStackIDs())
	assert.Equal(t, domain.ModeMatrix, d.Session().Mode)
	assert.Contains(t, plain(d.View()), "Priority Master")
}

func TestTUI_PersonaHomeShowsShortcuts(t *testing.T) {
	app, _ := testApp(t)
	d := NewTestDriver(t, app)

	d.Pick(domain.ModeGTD)

	view := plain(d.View())
	assert.Contains(t, view, "Clear Mind")
	assert.Contains(t, view, "[1] Brain Dump")
	assert.Contains(t, view, "1-3: shortcuts")
	assert.Contains(t, view, "Timeline")
}

func TestTUI_ChatTurnUpdatesSession(t *testing.T) {
	app, chat := testApp(t)
	chat.Calls("", testutil.Call("createTask", "title", "Buy milk"))
	d := NewTestDriver(t, app)
	d.Pick(domain.ModeMatrix)

	d.Say("add buy milk")

	st := d.Session()
	require.Len(t, st.Tasks, 1)
	assert.Equal(t, "Buy milk", st.Tasks[0].Title)
	require.Len(t, st.Messages, 2)
	assert.Equal(t, "add buy milk", st.Messages[0].Content)

	assert.Empty(t, d.Chat().pending)
	assert.Empty(t, d.Chat().input.Value())
	view := plain(d.View())
	assert.Contains(t, view, "add buy milk")
	assert.Contains(t, view, "Buy milk")
	assert.NotContains(t, view, "shortcuts")
}

func TestTUI_EnterIgnoredWhilePending(t *testing.T) {
	app, chat := testApp(t)
	gate := make(chan struct{})
	chat.Gate = gate
	chat.Reply("ok")
	t.Cleanup(func() { close(gate) })

	d := NewTestDriver(t, app)
	d.Pick(domain.ModeMatrix)

	// The first turn blocks on the gate, so its result never arrives.
	d.Say("first")
	require.Equal(t, "first", d.Chat().pending)
	assert.Contains(t, plain(d.View()), "Priority Master is thinking...")

	assert.Positive(t, d.Dropped)

	d.Say("second")

	assert.Len(t, chat.Requests(), 1)
	assert.Equal(t, "first", d.Chat().pending)
	assert.Equal(t, "second", d.Chat().input.Value())
}

func TestTUI_EmptyMessageNotSent(t *testing.T) {
	app, chat := testApp(t)
	d := NewTestDriver(t, app)
	d.Pick(domain.ModeMatrix)

	d.Say("   ")

	assert.Empty(t, chat.Requests())
	assert.Empty(t, d.Chat().pending)
}

func TestTUI_SuggestionKeySendsPrompt(t *testing.T) {
	app, chat := testApp(t)
	chat.Reply("Let's look at your list.")
	d := NewTestDriver(t, app)
	d.Pick(domain.ModeMatrix)

	d.PressKey('1')

	reqs := chat.Requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, "Review my tasks and help me prioritize", reqs[0].Message)
}

func TestTUI_SuggestionEndingInColonPrefills(t *testing.T) {
	app, chat := testApp(t)
	chat.Reply("- milk")
	d := NewTestDriver(t, app)
	d.Pick(domain.ModeBullet)

	d.PressKey('1')
	assert.Empty(t, chat.Requests())
	assert.Equal(t, "Log a note: ", d.Chat().input.Value())

	d.Say("milk")

	reqs := chat.Requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, "Log a note: milk", reqs[0].Message)
}

func TestTUI_SuggestionsOffAfterFirstMessage(t *testing.T) {
	app, chat := testApp(t)
	chat.Reply("hi")
	d := NewTestDriver(t, app)
	d.Pick(domain.ModeMatrix)
	d.Say("hello")

	d.PressKey('2')

	assert.Len(t, chat.Requests(), 1)
	assert.Equal(t, "2", d.Chat().input.Value())
}

func TestTUI_AgentFailureShowsNotice(t *testing.T) {
	app, chat := testApp(t)
	chat.Fail(llm.ErrUnavailable)
	d := NewTestDriver(t, app)
	d.Pick(domain.ModeGTD)

	d.Say("hello")

	assert.Empty(t, d.Chat().pending)
	assert.Empty(t, d.Chat().status)
	view := plain(d.View())
	assert.Contains(t, view, "! "+agent.FailureMessage)
	assert.Contains(t, view, "hello")
}

func TestTUI_FocusActionOpensTimer(t *testing.T) {
	app, chat := testApp(t)
	chat.Calls("", testutil.Call("startFocusTimer", "minutes", 25))
	d := NewTestDriver(t, app)
	d.Pick(domain.ModePomodoro)

	d.Say("start a focus block")

	assert.Equal(t, ViewFocus, d.ActiveViewID())
	assert.Equal(t, domain.ViewFocus, d.Session().ActiveView)
	assert.True(t, d.Ticking())
	view := plain(d.View())
	assert.Contains(t, view, "25:00")
	assert.Contains(t, view, "running")

	d.Send(focusTickMsg{})
	assert.Equal(t, 25*60-1, app.Workspace.Timer().RemainingSec)
	assert.Contains(t, plain(d.View()), "24:59")
}

func TestTUI_FocusKeys(t *testing.T) {
	app, _ := testApp(t)
	d := NewTestDriver(t, app)
	d.Pick(domain.ModePomodoro)
	d.PressTab()
	require.Equal(t, ViewFocus, d.ActiveViewID())

	d.PressSpace()
	assert.True(t, app.Workspace.Timer().Running)
	assert.True(t, d.Ticking())

	d.PressSpace()
	assert.False(t, app.Workspace.Timer().Running)

	d.PressKey('b')
	timer := app.Workspace.Timer()
	assert.Equal(t, focus.PhaseBreak, timer.Phase)
	assert.Equal(t, 5*60, timer.RemainingSec)

	d.PressKey('f')
	assert.Equal(t, focus.PhaseFocus, app.Workspace.Timer().Phase)
	assert.Contains(t, plain(d.View()), "25:00")
}

func TestTUI_TickLoopStopsWhenPaused(t *testing.T) {
	app, _ := testApp(t)
	d := NewTestDriver(t, app)
	d.Pick(domain.ModePomodoro)
	d.PressTab()
	d.PressSpace()
	d.PressSpace()
	require.True(t, d.Ticking())

	d.Send(focusTickMsg{})

	assert.False(t, d.Ticking())
	assert.Equal(t, 25*60, app.Workspace.Timer().RemainingSec)
}

func TestTUI_TabCyclesPersonaViews(t *testing.T) {
	app, _ := testApp(t)
	d := NewTestDriver(t, app)
	d.Pick(domain.ModeMatrix)

	d.PressTab()
	assert.Equal(t, ViewMatrix, d.ActiveViewID())
	d.PressTab()
	assert.Equal(t, ViewTimeline, d.ActiveViewID())
	assert.Equal(t, domain.ViewTimeline, d.Session().ActiveView)
	d.PressTab()
	assert.Equal(t, ViewChat, d.ActiveViewID())

	d.PressShiftTab()
	assert.Equal(t, ViewTimeline, d.ActiveViewID())
	assert.Len(t, d.ViewStackIDs(), 2)
}

func TestTUI_ChatInputSurvivesTabbing(t *testing.T) {
	app, _ := testApp(t)
	d := NewTestDriver(t, app)
	d.Pick(domain.ModeGTD)
	d.Type("draft")

	d.PressTab()
	d.PressTab()

	require.Equal(t, ViewChat, d.ActiveViewID())
	assert.Equal(t, "draft", d.Chat().input.Value())
}

func TestTUI_EscReturnsToSelector(t *testing.T) {
	app, chat := testApp(t)
	chat.Calls("", testutil.Call("createTask", "title", "Keep me"))
	d := NewTestDriver(t, app)
	d.Pick(domain.ModeMatrix)
	d.Say("add keep me")

	d.PressEsc()
	assert.Equal(t, []ViewID{ViewSelector}, d.ViewStackIDs())

	d.Pick(domain.ModeGTD)
	assert.Equal(t, ViewChat, d.ActiveViewID())
	st := d.Session()
	assert.Equal(t, domain.ModeGTD, st.Mode)
	assert.Len(t, st.Tasks, 1)
	assert.Contains(t, plain(d.View()), "Clear Mind")
}

func TestTUI_MatrixKeys(t *testing.T) {
	app, chat := testApp(t)
	chat.Calls("",
		testutil.Call("createTask", "title", "Ship release", "priority", "do"),
		testutil.Call("createTask", "title", "Plan offsite", "priority", "schedule"),
	)
	d := NewTestDriver(t, app)
	d.Pick(domain.ModeMatrix)
	d.Say("seed")
	d.PressTab()
	require.Equal(t, ViewMatrix, d.ActiveViewID())

	view := plain(d.View())
	assert.Contains(t, view, "PRIORITY MATRIX")
	assert.Contains(t, view, "▸ Ship release")
	assert.Contains(t, view, "Plan offsite")

	d.PressKey('x')
	assert.Contains(t, plain(d.View()), `Completed "Ship release".`)
	assert.Contains(t, plain(d.View()), "1 completed")

	// The cursor now sits on the only open task.
	d.PressKey('p')
	st := d.Session()
	i := st.FindTaskByTitle("Plan offsite")
	require.GreaterOrEqual(t, i, 0)
	assert.Equal(t, domain.PriorityDelegate, st.Tasks[i].Priority)

	d.PressKey('d')
	st = d.Session()
	require.Len(t, st.Tasks, 1)
	assert.Equal(t, "Ship release", st.Tasks[0].Title)
	assert.True(t, st.Tasks[0].IsCompleted)
}

func TestTUI_MatrixEditsRefusedWhileTurnPending(t *testing.T) {
	app, chat := testApp(t)
	chat.Calls("", testutil.Call("createTask", "title", "Ship release"))
	d := NewTestDriver(t, app)
	d.Pick(domain.ModeMatrix)
	d.Say("seed")

	gate := make(chan struct{})
	chat.Gate = gate
	chat.Reply("ok")
	t.Cleanup(func() { close(gate) })
	entered := make(chan struct{}, 1)
	chat.Entered = entered

	d.Say("slow one")
	<-entered
	d.PressTab()
	d.PressKey('x')

	assert.False(t, d.Session().Tasks[0].IsCompleted)
	assert.Contains(t, plain(d.View()), "already in progress")
}

func TestTUI_TimelineShowsEventsAndUpNext(t *testing.T) {
	app, chat := testApp(t)
	chat.Calls("", testutil.Call("createEvent", "title", "Standup", "startTime", "2026-03-09T14:00:00", "durationMinutes", 30))
	d := NewTestDriver(t, app)
	d.Pick(domain.ModeGTD)
	d.Say("standup at 2")

	d.PressTab()
	require.Equal(t, ViewTimeline, d.ActiveViewID())

	view := plain(d.View())
	assert.Contains(t, view, "UP NEXT")
	assert.Contains(t, view, "in 4h")
	assert.Contains(t, view, "Standup")
	assert.Contains(t, view, "2 PM")
}

func TestTUI_EmptyTimeline(t *testing.T) {
	app, _ := testApp(t)
	d := NewTestDriver(t, app)
	d.Pick(domain.ModeBullet)
	d.PressTab()

	view := plain(d.View())
	assert.Contains(t, view, "No events yet")
	assert.NotContains(t, view, "UP NEXT")
}

func TestTUI_QQuitsOutsideChat(t *testing.T) {
	app, _ := testApp(t)
	d := NewTestDriver(t, app)

	d.PressKey('q')

	assert.True(t, d.IsQuitting())
}

func TestTUI_QTypesInChat(t *testing.T) {
	app, _ := testApp(t)
	d := NewTestDriver(t, app)
	d.Pick(domain.ModeMatrix)

	d.PressKey('q')

	assert.False(t, d.IsQuitting())
	assert.Equal(t, "q", d.Chat().input.Value())
}

func TestTUI_CtrlCQuits(t *testing.T) {
	app, _ := testApp(t)
	d := NewTestDriver(t, app)
	d.Pick(domain.ModeMatrix)

	d.PressCtrlC()

	assert.True(t, d.IsQuitting())
	assert.Empty(t, d.View())
}

type offlineAgent struct {
	*testutil.ScriptedChat
}

func (offlineAgent) Available(context.Context) bool { return false }

func TestTUI_HeaderShowsOfflineAgent(t *testing.T) {
	app, chat := testApp(t)
	app.Agent = offlineAgent{chat}
	d := NewTestDriver(t, app)

	assert.Contains(t, plain(d.View()), "agent offline")
}

func TestTUI_WindowResize(t *testing.T) {
	app, _ := testApp(t)
	d := NewTestDriver(t, app)
	d.Pick(domain.ModeMatrix)

	d.Resize(90, 30)

	assert.Equal(t, 90, d.State().Width)
	assert.Equal(t, 30, d.State().Height)
}
