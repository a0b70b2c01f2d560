package agent

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/alexanderramin/dayflow/internal/domain"
)

func TestPersonas_SelectorOrder(t *testing.T) {
	var titles []string
	for _, p := range Personas() {
		titles = append(titles, p.Title)
		assert.Len(t, p.Suggestions, 3, p.Title)
		assert.NotEmpty(t, p.Instruction)
	}
	assert.Equal(t, []string{"Focus Flow", "Priority Master", "Clear Mind", "Rapid Log"}, titles)
}

func TestPersona_Views(t *testing.T) {
	assert.Equal(t, []domain.View{domain.ViewChat, domain.ViewFocus, domain.ViewTimeline}, PersonaFor(domain.ModePomodoro).Views())
	assert.Equal(t, []domain.View{domain.ViewChat, domain.ViewMatrix, domain.ViewTimeline}, PersonaFor(domain.ModeMatrix).Views())
	assert.Equal(t, []domain.View{domain.ViewChat, domain.ViewTimeline}, PersonaFor(domain.ModeGTD).Views())
	assert.Equal(t, []domain.View{domain.ViewChat, domain.ViewTimeline}, PersonaFor(domain.ModeBullet).Views())
}

func TestPersonaFor_UnknownFallsBackToMatrix(t *testing.T) {
	assert.Equal(t, "Priority Master", PersonaFor("zen").Title)
}

func TestSystemInstruction(t *testing.T) {
	now := time.Date(2026, 3, 9, 10, 0, 0, 0, time.UTC)
	got := SystemInstruction(domain.ModePomodoro, now)
	assert.Contains(t, got, "You are DayFlow, a specialized AI productivity assistant. Current time: 2026-03-09T10:00:00.000Z.")
	assert.Contains(t, got, "ROLE: POMODORO COACH")

	assert.Contains(t, SystemInstruction("zen", now), "ROLE: EISENHOWER ARCHITECT")
}
