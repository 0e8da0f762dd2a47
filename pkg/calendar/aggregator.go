package calendar

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/inventra/inventra/internal/upstream"
	"github.com/inventra/inventra/pkg/equipment"
	"github.com/inventra/inventra/pkg/notification"
	"github.com/inventra/inventra/pkg/reservation"
	"github.com/inventra/inventra/pkg/task"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// The aggregator's four sources. Declared here, consumer-side; the feature
// services satisfy them directly.
type (
	ReservationSource interface {
		All(ctx context.Context) ([]reservation.Reservation, error)
	}
	TaskSource interface {
		All(ctx context.Context) ([]task.Task, error)
	}
	EquipmentSource interface {
		All(ctx context.Context) ([]equipment.Equipment, error)
	}
	ActivitySource interface {
		Activities(ctx context.Context) ([]notification.Activity, error)
	}
)

// Options tune the aggregator's synthetic defaults. The upstream never
// recorded why tasks get an hour and dateless times get 09:00, so both stay
// configurable rather than hardcoded.
type Options struct {
	// DefaultDueTime is "HH:MM"; applied when a record carries a date but no
	// time.
	DefaultDueTime string
	// TaskDuration is the synthetic length of task and notification events.
	TaskDuration time.Duration
	// Location for wall-clock interpretation of date-only fields; defaults
	// to time.Local.
	Location *time.Location
}

// Result is the outcome of one aggregation cycle. A failed source degrades to
// an empty contribution; Unreachable is set only when a connectivity-class
// failure (no response at all) occurred, so the dashboard can show a single
// connection banner while still rendering what succeeded.
type Result struct {
	Events      []Event
	Failed      []string
	Unreachable bool
}

// Partial reports whether at least one source failed.
func (r Result) Partial() bool { return len(r.Failed) > 0 }

// Aggregator merges reservations, tasks, equipment-derived warranty
// expirations, and notification activities into one sequence of Events.
type Aggregator struct {
	reservations ReservationSource
	tasks        TaskSource
	equipment    EquipmentSource
	activities   ActivitySource

	dueHour      int
	dueMinute    int
	taskDuration time.Duration
	loc          *time.Location
}

func NewAggregator(reservations ReservationSource, tasks TaskSource, equipment EquipmentSource, activities ActivitySource, opts Options) *Aggregator {
	hour, minute := 9, 0
	if opts.DefaultDueTime != "" {
		if t, err := time.Parse("15:04", opts.DefaultDueTime); err == nil {
			hour, minute = t.Hour(), t.Minute()
		} else {
			log.Warnf("invalid default due time %q, using 09:00", opts.DefaultDueTime)
		}
	}
	duration := opts.TaskDuration
	if duration <= 0 {
		duration = time.Hour
	}
	loc := opts.Location
	if loc == nil {
		loc = time.Local
	}
	return &Aggregator{
		reservations: reservations,
		tasks:        tasks,
		equipment:    equipment,
		activities:   activities,
		dueHour:      hour,
		dueMinute:    minute,
		taskDuration: duration,
		loc:          loc,
	}
}

// Events runs one aggregation cycle: four concurrent fetches joined
// all-settled, then a single classification pass. It never returns an error;
// unusable records are dropped and failed sources reported in the Result. No
// ordering is imposed; views sort for themselves.
func (a *Aggregator) Events(ctx context.Context) Result {
	var (
		reservations []reservation.Reservation
		tasks        []task.Task
		equip        []equipment.Equipment
		activities   []notification.Activity
	)
	var reservationsErr, tasksErr, equipErr, activitiesErr error
	var g errgroup.Group

	// Goroutines always return nil: a failed source must not abort the rest.
	g.Go(func() error {
		reservations, reservationsErr = a.reservations.All(ctx)
		return nil
	})
	g.Go(func() error {
		tasks, tasksErr = a.tasks.All(ctx)
		return nil
	})
	g.Go(func() error {
		equip, equipErr = a.equipment.All(ctx)
		return nil
	})
	g.Go(func() error {
		activities, activitiesErr = a.activities.Activities(ctx)
		return nil
	})
	_ = g.Wait()

	result := Result{}
	for _, source := range []struct {
		name string
		err  error
	}{
		{"reservations", reservationsErr},
		{"tasks", tasksErr},
		{"equipment", equipErr},
		{"activities", activitiesErr},
	} {
		if source.err == nil {
			continue
		}
		result.Failed = append(result.Failed, source.name)
		if errors.Is(source.err, upstream.ErrUnreachable) {
			result.Unreachable = true
		}
		log.Warnf("calendar source %s failed: %v", source.name, source.err)
	}

	events := make([]Event, 0, len(reservations)+len(tasks)+len(equip)+len(activities))
	for _, r := range reservations {
		if ev, ok := a.fromReservation(r); ok {
			events = append(events, ev)
		}
	}
	for _, t := range tasks {
		if ev, ok := a.fromTask(t); ok {
			events = append(events, ev)
		}
	}
	for _, e := range equip {
		if ev, ok := a.fromWarranty(e); ok {
			events = append(events, ev)
		}
	}
	for _, act := range activities {
		if ev, ok := a.fromActivity(act); ok {
			events = append(events, ev)
		}
	}
	result.Events = events
	return result
}

func (a *Aggregator) fromReservation(r reservation.Reservation) (Event, bool) {
	start, ok := parseInstant(r.StartDate, a.loc)
	if !ok {
		return Event{}, false
	}
	end, ok := parseInstant(r.EndDate, a.loc)
	if !ok || end.Before(start) {
		return Event{}, false
	}
	title := fmt.Sprintf("Reserva: %s (%s)",
		strings.TrimSpace(r.Equipment.Brand+" "+r.Equipment.Model), r.Requester.Username)
	return Event{
		ID:     eventID(KindReservation, r.ID),
		Title:  title,
		Start:  start,
		End:    end,
		AllDay: true,
		Kind:   KindReservation,
		Source: r,
	}, true
}

func (a *Aggregator) fromTask(t task.Task) (Event, bool) {
	start, ok := a.dueInstant(t.DueDateTime, t.DueDate, t.DueTime)
	if !ok {
		// A task without any due information produces no event; it is not
		// defaulted to "now".
		return Event{}, false
	}
	return Event{
		ID:     eventID(KindTask, t.ID),
		Title:  "Tarea: " + t.DisplayTitle(),
		Start:  start,
		End:    start.Add(a.taskDuration),
		AllDay: false,
		Kind:   KindTask,
		Source: t,
	}, true
}

func (a *Aggregator) fromWarranty(e equipment.Equipment) (Event, bool) {
	if e.WarrantyEndDate == "" {
		return Event{}, false
	}
	// The parse must be checked here: a malformed date silently becoming an
	// invalid instant must never reach rendering.
	at, ok := dateAt(e.WarrantyEndDate, a.dueHour, a.dueMinute, a.loc)
	if !ok {
		log.Warnf("equipment %d has malformed warranty date %q, skipping", e.ID, e.WarrantyEndDate)
		return Event{}, false
	}
	title := fmt.Sprintf("Vencimiento Garantía: %s (%s)", e.Label(), e.SerialNumber)
	return Event{
		ID:     eventID(KindWarranty, e.ID),
		Title:  title,
		Start:  at,
		End:    at,
		AllDay: true,
		Kind:   KindWarranty,
		Source: e,
	}, true
}

func (a *Aggregator) fromActivity(act notification.Activity) (Event, bool) {
	if !act.IsNotification() {
		return Event{}, false
	}
	start, ok := a.dueInstant(act.DueDateTime, act.DueDate, act.DueTime)
	if !ok {
		return Event{}, false
	}
	return Event{
		ID:     eventID(KindActivity, act.ID),
		Title:  act.DisplayTitle(),
		Start:  start,
		End:    start.Add(a.taskDuration),
		AllDay: false,
		Kind:   KindActivity,
		Source: act,
	}, true
}

// dueInstant resolves a record's due moment: a full date-time wins, otherwise
// a date plus optional time with the configured default applied.
func (a *Aggregator) dueInstant(dateTime, date, clock string) (time.Time, bool) {
	if dateTime != "" {
		return parseInstant(dateTime, a.loc)
	}
	if date == "" {
		return time.Time{}, false
	}
	if clock != "" {
		if t, err := time.Parse("15:04", clock); err == nil {
			return dateAt(date, t.Hour(), t.Minute(), a.loc)
		}
		if t, err := time.Parse("15:04:05", clock); err == nil {
			return dateAt(date, t.Hour(), t.Minute(), a.loc)
		}
	}
	return dateAt(date, a.dueHour, a.dueMinute, a.loc)
}

func eventID(kind Kind, sourceID int) string {
	return kind.Prefix() + "-" + strconv.Itoa(sourceID)
}
