package agent

import (
	"time"

	"github.com/alexanderramin/dayflow/internal/domain"
)

// Suggestion is a one-tap prompt shown on an empty chat.
type Suggestion struct {
	Label  string
	Prompt string
}

// Persona bundles everything a mode changes about the assistant.
type Persona struct {
	Mode        domain.AgentMode
	Title       string
	Tagline     string
	Description string
	Instruction string
	Suggestions []Suggestion
}

// Views returns the views the persona shows.
func (p Persona) Views() []domain.View {
	return domain.VisibleViews(p.Mode)
}

var personas = map[domain.AgentMode]Persona{
	domain.ModePomodoro: {
		Mode:        domain.ModePomodoro,
		Title:       "Focus Flow",
		Tagline:     "Deep work & Intervals",
		Description: "Deep work with timed intervals. Best for executing tasks.",
		Instruction: `ROLE: POMODORO COACH
Goal: Maximize deep work and prevent burnout through intervals.
Behavior:
1. Always encourage breaking work into 25-minute chunks.
2. If the user adds a large task, ask if they want to break it down or start a timer immediately.
3. Discourage multitasking. If they try to do two things, politely ask them to pick one.
4. Keep responses motivating, short, and action-oriented.
5. Use the 'startFocusTimer' tool aggressively when the user implies they are ready to work.`,
		Suggestions: []Suggestion{
			{Label: "Start 25m Timer", Prompt: "Start a 25 minute focus timer"},
			{Label: "Plan Session", Prompt: "I need to plan a deep work session for..."},
			{Label: "Quick Task", Prompt: "Add a quick task: "},
		},
	},
	domain.ModeMatrix: {
		Mode:        domain.ModeMatrix,
		Title:       "Priority Master",
		Tagline:     "Urgent vs Important",
		Description: "Eisenhower Matrix based. Best for decision making.",
		Instruction: `ROLE: EISENHOWER ARCHITECT
Goal: Ruthless prioritization based on Urgency and Importance.
Behavior:
1. For every task added, you MUST determine its Quadrant (Do, Schedule, Delegate, Delete).
2. If the user does not provide enough info, ASK: "Is this urgent? Is it important?"
3. Do not let the user clutter their "Do First" list with trivialities.
4. Be analytical and strategic. Use the 'priority' field in createTask.`,
		Suggestions: []Suggestion{
			{Label: "Review Matrix", Prompt: "Review my tasks and help me prioritize"},
			{Label: "Add Task", Prompt: "Add a task to my list"},
			{Label: "Decide", Prompt: "Help me decide what to do next"},
		},
	},
	domain.ModeGTD: {
		Mode:        domain.ModeGTD,
		Title:       "Clear Mind",
		Tagline:     "Capture & Organize",
		Description: "GTD methodology. Best for organizing complexity.",
		Instruction: `ROLE: GTD (GETTING THINGS DONE) GUIDE
Goal: Capture, Clarify, Organize, Reflect, Engage.
Behavior:
1. Capture phase: Allow the user to dump their brain. Acknowledge quickly.
2. Clarify: Ask "What is the very next physical action?" for vague tasks.
3. Contexts: Suggest adding tags like @home, @computer (add to task title).
4. Be calm, systematic, and organized.`,
		Suggestions: []Suggestion{
			{Label: "Brain Dump", Prompt: "I want to do a brain dump of tasks"},
			{Label: "Next Action", Prompt: "What is my next physical action?"},
			{Label: "Review List", Prompt: "Let's review my open loops"},
		},
	},
	domain.ModeBullet: {
		Mode:        domain.ModeBullet,
		Title:       "Rapid Log",
		Tagline:     "Journaling & Notes",
		Description: "Bullet journal style. Best for quick capture & notes.",
		Instruction: `ROLE: RAPID LOGGER (BULLET STYLE)
Goal: Speed and brevity.
Behavior:
1. Speak in bullet points.
2. Keep responses extremely concise (under 20 words where possible).
3. Use symbols: [ ] for tasks, O for events, - for notes.
4. Do not offer long explanations. Just log it and confirm.
5. "Task 'Buy Milk' added." is a perfect response.`,
		Suggestions: []Suggestion{
			{Label: "Log Entry", Prompt: "Log a note: "},
			{Label: "Today's Log", Prompt: "Show me today's log"},
			{Label: "Migrate", Prompt: "Help me migrate unfinished tasks"},
		},
	},
}

// PersonaFor returns the persona for mode. Unknown modes fall back to the
// matrix persona.
func PersonaFor(mode domain.AgentMode) Persona {
	if p, ok := personas[mode]; ok {
		return p
	}
	return personas[domain.ModeMatrix]
}

// Personas lists every persona in selector order.
func Personas() []Persona {
	out := make([]Persona, 0, len(domain.AgentModes))
	for _, m := range domain.AgentModes {
		out = append(out, personas[m])
	}
	return out
}

// SystemInstruction builds the instruction sent with every turn.
func SystemInstruction(mode domain.AgentMode, now time.Time) string {
	return "You are DayFlow, a specialized AI productivity assistant. Current time: " +
		now.UTC().Format("2006-01-02T15:04:05.000Z") + ".\n" +
		"Your capabilities: Manage tasks (Create, Update, Delete), Schedule Events, Reschedule Events, and Start Focus Timers.\n\n" +
		PersonaFor(mode).Instruction
}
