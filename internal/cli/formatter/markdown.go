package formatter

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

// Glamour standard style names.
const (
	MarkdownDark  = "dark"
	MarkdownNoTTY = "notty"
)

type rendererKey struct {
	style string
	width int
}

var (
	renderersMu sync.Mutex
	renderers   = map[rendererKey]*glamour.TermRenderer{}
)

// RenderMarkdown renders md for a terminal of the given width in the dark
// style. Rendering errors fall back to the raw text.
func RenderMarkdown(md string, width int) string {
	return RenderMarkdownStyle(md, MarkdownDark, width)
}

// RenderMarkdownStyle renders md with a named glamour standard style.
func RenderMarkdownStyle(md, style string, width int) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	r, err := renderer(style, width)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.Trim(out, "\n")
}

// renderer caches one TermRenderer per style and width; building one
// parses the whole style sheet.
func renderer(style string, width int) (*glamour.TermRenderer, error) {
	if width < 20 {
		width = 80
	}
	key := rendererKey{style: style, width: width}

	renderersMu.Lock()
	defer renderersMu.Unlock()
	if r, ok := renderers[key]; ok {
		return r, nil
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	renderers[key] = r
	return r, nil
}
