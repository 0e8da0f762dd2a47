package notification

import (
	"context"
)

// StubService serves canned notifications for tests.
type StubService struct {
	Notifications []Activity
	Feed          []Activity
	Err           error
}

func NewStubService() *StubService {
	return &StubService{}
}

func (s *StubService) List(ctx context.Context) ([]Activity, error) {
	return s.Notifications, s.Err
}

func (s *StubService) Activities(ctx context.Context) ([]Activity, error) {
	return s.Feed, s.Err
}
