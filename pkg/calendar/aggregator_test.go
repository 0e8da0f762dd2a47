package calendar

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/inventra/inventra/internal/upstream"
	"github.com/inventra/inventra/pkg/equipment"
	"github.com/inventra/inventra/pkg/notification"
	"github.com/inventra/inventra/pkg/reservation"
	"github.com/inventra/inventra/pkg/task"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupAggregator(t *testing.T) (*Aggregator, *StubSources) {
	stub := NewStubSources()
	agg := NewStubAggregator(stub, Options{Location: time.UTC})
	return agg, stub
}

func findEvent(t *testing.T, events []Event, id string) Event {
	t.Helper()
	for _, ev := range events {
		if ev.ID == id {
			return ev
		}
	}
	t.Fatalf("no event with id %s", id)
	return Event{}
}

func TestAggregator_ReservationEvent(t *testing.T) {
	agg, stub := setupAggregator(t)
	stub.Reservations = []reservation.Reservation{{
		ID:        7,
		StartDate: "2024-03-01",
		EndDate:   "2024-03-05",
		Equipment: reservation.EquipmentRef{Brand: "Dell", Model: "Latitude 5420"},
		Requester: reservation.UserRef{Username: "jdoe"},
	}}

	result := agg.Events(context.Background())

	require.Len(t, result.Events, 1)
	ev := result.Events[0]
	assert.Equal(t, "R-7", ev.ID)
	assert.Equal(t, "Reserva: Dell Latitude 5420 (jdoe)", ev.Title)
	assert.True(t, ev.AllDay)
	assert.Equal(t, KindReservation, ev.Kind)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), ev.Start)
	assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), ev.End)
}

func TestAggregator_ReservationDroppedWhenDatesUnusable(t *testing.T) {
	agg, stub := setupAggregator(t)
	stub.Reservations = []reservation.Reservation{
		{ID: 1, StartDate: "not-a-date", EndDate: "2024-03-05"},
		{ID: 2, StartDate: "2024-03-05", EndDate: "2024-03-01"}, // ends before it starts
		{ID: 3, StartDate: "", EndDate: "2024-03-05"},
	}

	result := agg.Events(context.Background())

	assert.Empty(t, result.Events)
	assert.False(t, result.Partial())
}

func TestAggregator_TaskDueDateTimeWins(t *testing.T) {
	agg, stub := setupAggregator(t)
	stub.Tasks = []task.Task{{
		ID:          12,
		Title:       "Revisar switches",
		DueDateTime: "2024-04-10T14:30:00",
		DueDate:     "2024-04-11",
		DueTime:     "08:00",
	}}

	result := agg.Events(context.Background())

	require.Len(t, result.Events, 1)
	ev := result.Events[0]
	assert.Equal(t, "T-12", ev.ID)
	assert.Equal(t, "Tarea: Revisar switches", ev.Title)
	assert.Equal(t, time.Date(2024, 4, 10, 14, 30, 0, 0, time.UTC), ev.Start)
	assert.Equal(t, ev.Start.Add(time.Hour), ev.End)
	assert.False(t, ev.AllDay)
}

func TestAggregator_TaskDateOnlyGetsDefaultDueTime(t *testing.T) {
	agg, stub := setupAggregator(t)
	stub.Tasks = []task.Task{{ID: 3, Name: "Inventario", DueDate: "2024-04-15"}}

	result := agg.Events(context.Background())

	require.Len(t, result.Events, 1)
	assert.Equal(t, time.Date(2024, 4, 15, 9, 0, 0, 0, time.UTC), result.Events[0].Start)
}

func TestAggregator_TaskWithoutDueProducesNoEvent(t *testing.T) {
	agg, stub := setupAggregator(t)
	stub.Tasks = []task.Task{{ID: 4, Title: "Sin fecha"}}

	result := agg.Events(context.Background())

	assert.Empty(t, result.Events)
}

func TestAggregator_TaskTitleFallbackChain(t *testing.T) {
	agg, stub := setupAggregator(t)
	stub.Tasks = []task.Task{
		{ID: 1, DueDate: "2024-05-01", AltTitle: "alt"},
		{ID: 2, DueDate: "2024-05-01", Description: "solo descripción"},
		{ID: 3, DueDate: "2024-05-01"},
	}

	result := agg.Events(context.Background())

	require.Len(t, result.Events, 3)
	assert.Equal(t, "Tarea: alt", findEvent(t, result.Events, "T-1").Title)
	assert.Equal(t, "Tarea: solo descripción", findEvent(t, result.Events, "T-2").Title)
	assert.Equal(t, "Tarea: Sin título de tarea", findEvent(t, result.Events, "T-3").Title)
}

func TestAggregator_WarrantyEvent(t *testing.T) {
	agg, stub := setupAggregator(t)
	stub.Equipment = []equipment.Equipment{{
		ID:              42,
		Brand:           "HP",
		Model:           "ProBook",
		SerialNumber:    "SN-9001",
		WarrantyEndDate: "2024-12-31",
	}}

	result := agg.Events(context.Background())

	require.Len(t, result.Events, 1)
	ev := result.Events[0]
	assert.Equal(t, "G-42", ev.ID)
	assert.Equal(t, "Vencimiento Garantía: HP ProBook (SN-9001)", ev.Title)
	assert.True(t, ev.AllDay)
	assert.Equal(t, time.Date(2024, 12, 31, 9, 0, 0, 0, time.UTC), ev.Start)
	assert.Equal(t, ev.Start, ev.End)
}

func TestAggregator_WarrantySkippedWhenAbsentOrMalformed(t *testing.T) {
	agg, stub := setupAggregator(t)
	stub.Equipment = []equipment.Equipment{
		{ID: 1, Brand: "Dell", WarrantyEndDate: ""},
		{ID: 2, Brand: "Dell", WarrantyEndDate: "31/12/2024"},
	}

	result := agg.Events(context.Background())

	assert.Empty(t, result.Events)
}

func TestAggregator_ActivityOnlyNotificationsWithDue(t *testing.T) {
	agg, stub := setupAggregator(t)
	stub.Activity = []notification.Activity{
		{ID: 5, Type: "notificacion", Title: "Licencia por vencer", DueDate: "2024-06-01"},
		{ID: 6, Type: "tarea", Title: "No soy notificación", DueDate: "2024-06-01"},
		{ID: 7, Type: "notificacion", Title: "Sin fecha"},
	}

	result := agg.Events(context.Background())

	require.Len(t, result.Events, 1)
	ev := result.Events[0]
	assert.Equal(t, "N-5", ev.ID)
	assert.Equal(t, "Licencia por vencer", ev.Title)
	assert.Equal(t, KindActivity, ev.Kind)
}

func TestAggregator_FailedSourceDegradesToUnion(t *testing.T) {
	agg, stub := setupAggregator(t)
	stub.Reservations = []reservation.Reservation{{
		ID: 1, StartDate: "2024-03-01", EndDate: "2024-03-02",
	}}
	stub.Equipment = []equipment.Equipment{{ID: 2, WarrantyEndDate: "2024-07-01"}}
	stub.TasksErr = fmt.Errorf("boom")

	result := agg.Events(context.Background())

	assert.Len(t, result.Events, 2)
	assert.True(t, result.Partial())
	assert.Equal(t, []string{"tasks"}, result.Failed)
	assert.False(t, result.Unreachable)
}

func TestAggregator_UnreachableFlaggedOnConnectivityFailure(t *testing.T) {
	agg, stub := setupAggregator(t)
	stub.TasksErr = fmt.Errorf("%w: connection refused", upstream.ErrUnreachable)
	stub.ActivityErr = errors.New("500 from upstream")

	result := agg.Events(context.Background())

	assert.ElementsMatch(t, []string{"tasks", "activities"}, result.Failed)
	assert.True(t, result.Unreachable)
}

func TestAggregator_Idempotent(t *testing.T) {
	agg, stub := setupAggregator(t)
	stub.Reservations = []reservation.Reservation{{ID: 1, StartDate: "2024-03-01", EndDate: "2024-03-02"}}
	stub.Tasks = []task.Task{{ID: 2, Title: "t", DueDate: "2024-03-03"}}
	stub.Equipment = []equipment.Equipment{{ID: 3, WarrantyEndDate: "2024-03-04"}}
	stub.Activity = []notification.Activity{{ID: 4, Type: "notificacion", Title: "n", DueDate: "2024-03-05"}}

	first := agg.Events(context.Background())
	second := agg.Events(context.Background())

	assert.Equal(t, first.Events, second.Events)
	assert.Len(t, first.Events, 4)
}

func TestAggregator_ConfigurableDefaults(t *testing.T) {
	stub := NewStubSources()
	agg := NewStubAggregator(stub, Options{
		DefaultDueTime: "17:30",
		TaskDuration:   45 * time.Minute,
		Location:       time.UTC,
	})
	stub.Tasks = []task.Task{{ID: 1, Title: "t", DueDate: "2024-05-20"}}

	result := agg.Events(context.Background())

	require.Len(t, result.Events, 1)
	ev := result.Events[0]
	assert.Equal(t, time.Date(2024, 5, 20, 17, 30, 0, 0, time.UTC), ev.Start)
	assert.Equal(t, 45*time.Minute, ev.End.Sub(ev.Start))
}
