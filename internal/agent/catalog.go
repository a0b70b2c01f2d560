package agent

import "github.com/alexanderramin/dayflow/internal/llm"

var priorityEnum = []string{"do", "schedule", "delegate", "delete"}

// Catalog returns the function declarations offered to the model on every
// turn. The names and argument shapes are a fixed contract with the model.
func Catalog() []llm.Tool {
	return []llm.Tool{
		{
			Name:        string(ActionCreateTask),
			Description: "Create a new to-do item or task. Use this when the user wants to add something to their list. Can include subtasks.",
			Parameters: llm.Schema{
				Type: "object",
				Properties: map[string]llm.Schema{
					"title": {
						Type:        "string",
						Description: `The content of the task (e.g., "Buy milk", "Finish report")`,
					},
					"priority": {
						Type:        "string",
						Enum:        priorityEnum,
						Description: `The urgency/importance quadrant. Default to "do" (Do First - Urgent & Important) if unsure.`,
					},
					"dueDate": {
						Type:        "string",
						Description: "ISO 8601 date string if a specific date is mentioned.",
					},
					"subtasks": {
						Type:        "array",
						Items:       &llm.Schema{Type: "string"},
						Description: `List of subtasks if provided (e.g. ["Buy milk", "Buy eggs"]).`,
					},
				},
				Required: []string{"title"},
			},
		},
		{
			Name:        string(ActionUpdateTask),
			Description: "Update a task status (complete/incomplete) or priority. Use title or partial title to identify the task.",
			Parameters: llm.Schema{
				Type: "object",
				Properties: map[string]llm.Schema{
					"searchTitle": {Type: "string", Description: "The title (or part of it) to find the task."},
					"isCompleted": {Type: "boolean", Description: "True to mark done, false to uncheck."},
					"priority":    {Type: "string", Enum: priorityEnum},
				},
				Required: []string{"searchTitle"},
			},
		},
		{
			Name:        string(ActionCreateEvent),
			Description: "Schedule a calendar event with a specific time.",
			Parameters: llm.Schema{
				Type: "object",
				Properties: map[string]llm.Schema{
					"title":           {Type: "string", Description: "Title of the event"},
					"startTime":       {Type: "string", Description: "ISO 8601 start time."},
					"durationMinutes": {Type: "number", Description: "Duration in minutes. Default to 60 if not specified."},
				},
				Required: []string{"title", "startTime"},
			},
		},
		{
			Name:        string(ActionStartFocusTimer),
			Description: "Start the focus/pomodoro timer.",
			Parameters: llm.Schema{
				Type: "object",
				Properties: map[string]llm.Schema{
					"minutes": {Type: "number", Description: "Duration in minutes (default 25)"},
				},
			},
		},
		{
			Name:        string(ActionReschedule),
			Description: "Reschedule an existing calendar event to a new time. Use the event title or partial title to identify which event to reschedule.",
			Parameters: llm.Schema{
				Type: "object",
				Properties: map[string]llm.Schema{
					"searchTitle":     {Type: "string", Description: "The title (or part of it) of the event to reschedule."},
					"newStartTime":    {Type: "string", Description: "The new ISO 8601 start time for the event."},
					"durationMinutes": {Type: "number", Description: "Optional: New duration in minutes. If not provided, keeps the original duration."},
				},
				Required: []string{"searchTitle", "newStartTime"},
			},
		},
	}
}
