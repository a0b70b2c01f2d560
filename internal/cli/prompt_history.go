package cli

import "strings"

const maxPromptHistory = 100

// promptHistory recalls earlier chat prompts with up/down. The text being
// typed when recall starts is kept as a draft and restored past the newest
// entry.
type promptHistory struct {
	lines []string
	idx   int
	draft string
}

func newPromptHistory(lines []string) *promptHistory {
	h := &promptHistory{}
	for _, l := range lines {
		h.add(l)
	}
	return h
}

// add records line and ends any recall in progress. Blank lines and a
// repeat of the newest entry are skipped.
func (h *promptHistory) add(line string) {
	line = strings.TrimSpace(line)
	if line != "" && (len(h.lines) == 0 || h.lines[len(h.lines)-1] != line) {
		h.lines = append(h.lines, line)
		if len(h.lines) > maxPromptHistory {
			h.lines = h.lines[len(h.lines)-maxPromptHistory:]
		}
	}
	h.idx = len(h.lines)
	h.draft = ""
}

// up returns the previous entry. ok is false when there is nothing older.
func (h *promptHistory) up(current string) (string, bool) {
	if h.idx == 0 {
		return "", false
	}
	if h.idx == len(h.lines) {
		h.draft = current
	}
	h.idx--
	return h.lines[h.idx], true
}

// down returns the next entry, or the saved draft after the newest one.
func (h *promptHistory) down() (string, bool) {
	if h.idx >= len(h.lines) {
		return "", false
	}
	h.idx++
	if h.idx == len(h.lines) {
		return h.draft, true
	}
	return h.lines[h.idx], true
}
