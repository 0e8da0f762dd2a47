package calendar

import (
	"context"

	"github.com/inventra/inventra/pkg/equipment"
	"github.com/inventra/inventra/pkg/notification"
	"github.com/inventra/inventra/pkg/reservation"
	"github.com/inventra/inventra/pkg/task"
)

// StubSources backs the aggregator with in-memory data. Each source can be
// made to fail independently.
type StubSources struct {
	Reservations []reservation.Reservation
	Tasks        []task.Task
	Equipment    []equipment.Equipment
	Activity     []notification.Activity

	ReservationsErr error
	TasksErr        error
	EquipmentErr    error
	ActivityErr     error
}

func NewStubSources() *StubSources {
	return &StubSources{}
}

func (s *StubSources) All(ctx context.Context) ([]reservation.Reservation, error) {
	return s.Reservations, s.ReservationsErr
}

type stubTaskSource struct{ s *StubSources }

func (t stubTaskSource) All(ctx context.Context) ([]task.Task, error) {
	return t.s.Tasks, t.s.TasksErr
}

type stubEquipmentSource struct{ s *StubSources }

func (e stubEquipmentSource) All(ctx context.Context) ([]equipment.Equipment, error) {
	return e.s.Equipment, e.s.EquipmentErr
}

type stubActivitySource struct{ s *StubSources }

func (a stubActivitySource) Activities(ctx context.Context) ([]notification.Activity, error) {
	return a.s.Activity, a.s.ActivityErr
}

// NewStubAggregator builds an aggregator over the stub with the given options.
func NewStubAggregator(s *StubSources, opts Options) *Aggregator {
	return NewAggregator(s, stubTaskSource{s}, stubEquipmentSource{s}, stubActivitySource{s}, opts)
}
