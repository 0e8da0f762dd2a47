package calendar

import (
	"fmt"
	"time"

	"github.com/inventra/inventra/pkg/task"
)

// View is the calendar's active rendering mode.
type View string

const (
	ViewMonth  View = "month"
	ViewWeek   View = "week"
	ViewDay    View = "day"
	ViewAgenda View = "agenda"
)

// ParseView maps the query parameter to a View; empty means month.
func ParseView(s string) (View, error) {
	switch View(s) {
	case "":
		return ViewMonth, nil
	case ViewMonth, ViewWeek, ViewDay, ViewAgenda:
		return View(s), nil
	default:
		return "", fmt.Errorf("unknown view %q", s)
	}
}

// Visible derives the subset of events eligible for the given view without
// touching the input slice. Completed tasks are always hidden; the flat
// agenda additionally hides events already over before today's local
// midnight. Grid views show everything else regardless of date.
func Visible(events []Event, view View, now time.Time) []Event {
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	visible := make([]Event, 0, len(events))
	for _, ev := range events {
		if ev.Kind == KindTask {
			if t, ok := ev.Source.(task.Task); ok && t.Completed() {
				continue
			}
		}
		if view == ViewAgenda {
			end := ev.End
			if end.IsZero() {
				end = ev.Start
			}
			if end.Before(midnight) {
				continue
			}
		}
		visible = append(visible, ev)
	}
	return visible
}
