package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/dayflow/internal/cli/formatter"
	"github.com/alexanderramin/dayflow/internal/domain"
	"github.com/alexanderramin/dayflow/internal/layout"
)

var eventSpecLayouts = []string{"2006-01-02T15:04", "2006-01-02T15:04:05"}

func newLayoutCmd() *cobra.Command {
	var (
		specs []string
		width int
	)
	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Show how overlapping events are split into columns",
		Example: `  dayflow layout --event "Standup@2026-01-02T09:00/30" \
    --event "Review@2026-01-02T09:15/60" --event "Lunch@2026-01-02T12:00/45"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(specs) == 0 {
				return fmt.Errorf("at least one --event is required")
			}
			events := make([]domain.CalendarEvent, 0, len(specs))
			for i, spec := range specs {
				e, err := parseEventSpec(spec, time.Local)
				if err != nil {
					return err
				}
				e.ID = "e" + strconv.Itoa(i+1)
				events = append(events, e)
			}

			layouts := layout.Events(events)
			rows := make([][]string, 0, len(events))
			for _, e := range events {
				l := layouts[e.ID]
				rows = append(rows, []string{
					e.Title,
					formatter.FormatSpan(e.StartTime, e.EndTime),
					strconv.Itoa(l.Column),
					strconv.Itoa(l.TotalColumns),
				})
			}

			out := cmd.OutOrStdout()
			fmt.Fprint(out, formatter.RenderTable([]string{"EVENT", "TIME", "COLUMN", "OF"}, rows))
			fmt.Fprintf(out, "\n%s\n", formatter.RenderTimeline(events, layout.DefaultGeometry(), width, time.Time{}))
			return nil
		},
	}
	cmd.Flags().StringArrayVar(&specs, "event", nil, `event as "Title@YYYY-MM-DDTHH:MM/minutes" (repeatable)`)
	cmd.Flags().IntVar(&width, "width", 80, "timeline width in columns")
	return cmd
}

// parseEventSpec reads "Title@2026-01-02T09:00/60". The last '@' ends the
// title, so titles may contain '@'.
func parseEventSpec(spec string, loc *time.Location) (domain.CalendarEvent, error) {
	at := strings.LastIndex(spec, "@")
	if at <= 0 {
		return domain.CalendarEvent{}, fmt.Errorf("event %q: want Title@start/minutes", spec)
	}
	title, rest := strings.TrimSpace(spec[:at]), spec[at+1:]

	slash := strings.LastIndex(rest, "/")
	if slash < 0 {
		return domain.CalendarEvent{}, fmt.Errorf("event %q: missing /minutes", spec)
	}
	minutes, err := strconv.Atoi(rest[slash+1:])
	if err != nil || minutes <= 0 {
		return domain.CalendarEvent{}, fmt.Errorf("event %q: minutes must be a positive integer", spec)
	}

	var start time.Time
	for _, form := range eventSpecLayouts {
		if start, err = time.ParseInLocation(form, rest[:slash], loc); err == nil {
			break
		}
	}
	if err != nil {
		return domain.CalendarEvent{}, fmt.Errorf("event %q: start must look like 2026-01-02T09:00", spec)
	}

	e := domain.CalendarEvent{
		Title:     title,
		StartTime: start,
		EndTime:   start.Add(time.Duration(minutes) * time.Minute),
	}
	if err := e.Validate(); err != nil {
		return domain.CalendarEvent{}, fmt.Errorf("event %q: %w", spec, err)
	}
	return e, nil
}
