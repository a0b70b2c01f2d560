package domain

type Priority string

const (
	PriorityDo       Priority = "do"       // urgent and important
	PrioritySchedule Priority = "schedule" // important, not urgent
	PriorityDelegate Priority = "delegate" // urgent, not important
	PriorityDelete   Priority = "delete"   // neither
)

// Priorities lists the quadrants in matrix order.
var Priorities = []Priority{PriorityDo, PrioritySchedule, PriorityDelegate, PriorityDelete}

func (p Priority) IsValid() bool {
	switch p {
	case PriorityDo, PrioritySchedule, PriorityDelegate, PriorityDelete:
		return true
	default:
		return false
	}
}

// Label returns the quadrant heading shown in the matrix view.
func (p Priority) Label() string {
	switch p {
	case PriorityDo:
		return "Do First"
	case PrioritySchedule:
		return "Schedule"
	case PriorityDelegate:
		return "Delegate"
	case PriorityDelete:
		return "Eliminate"
	default:
		return string(p)
	}
}

type Role string

const (
	RoleUser   Role = "user"
	RoleModel  Role = "model"
	RoleSystem Role = "system"
)

type AgentMode string

const (
	ModeNone     AgentMode = ""
	ModePomodoro AgentMode = "pomodoro"
	ModeMatrix   AgentMode = "matrix"
	ModeGTD      AgentMode = "gtd"
	ModeBullet   AgentMode = "bullet"
)

// AgentModes lists the selectable personas in selector order.
var AgentModes = []AgentMode{ModePomodoro, ModeMatrix, ModeGTD, ModeBullet}

func (m AgentMode) IsValid() bool {
	switch m {
	case ModePomodoro, ModeMatrix, ModeGTD, ModeBullet:
		return true
	default:
		return false
	}
}

type View string

const (
	ViewChat     View = "chat"
	ViewTimeline View = "timeline"
	ViewFocus    View = "focus"
	ViewMatrix   View = "matrix"
)

// VisibleViews returns the views offered for a mode. Chat is always first.
func VisibleViews(m AgentMode) []View {
	switch m {
	case ModePomodoro:
		return []View{ViewChat, ViewFocus, ViewTimeline}
	case ModeMatrix:
		return []View{ViewChat, ViewMatrix, ViewTimeline}
	case ModeGTD, ModeBullet:
		return []View{ViewChat, ViewTimeline}
	default:
		return []View{ViewChat}
	}
}

// IsVisible reports whether v is offered for mode m.
func (v View) IsVisible(m AgentMode) bool {
	for _, visible := range VisibleViews(m) {
		if visible == v {
			return true
		}
	}
	return false
}
