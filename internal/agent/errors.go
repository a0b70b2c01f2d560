package agent

import "errors"

// ErrAgentUnavailable wraps any chat endpoint failure. The turn made no
// changes when it is returned.
var ErrAgentUnavailable = errors.New("agent unavailable")

// FailureMessage is the system message recorded when a turn cannot reach
// the agent.
const FailureMessage = "Sorry, I encountered an error connecting to the agent."
