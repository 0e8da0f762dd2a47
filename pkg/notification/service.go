package notification

import (
	"context"
	"fmt"

	"github.com/inventra/inventra/internal/upstream"
)

const (
	notificationsPath = "/notificaciones/"
	activitiesPath    = "/actividades/"
)

type Service interface {
	// List returns the current user's bell notifications, newest first.
	List(ctx context.Context) ([]Activity, error)
	// Activities returns the raw activity feed, notification-typed entries
	// included; the calendar derives its activity events from it.
	Activities(ctx context.Context) ([]Activity, error)
}

type ServiceImpl struct {
	client *upstream.Client
}

func NewService(client *upstream.Client) *ServiceImpl {
	return &ServiceImpl{client: client}
}

func (s *ServiceImpl) List(ctx context.Context) ([]Activity, error) {
	raw, err := s.client.Get(ctx, notificationsPath, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch notifications: %w", err)
	}
	page, err := upstream.DecodeList[Activity](raw)
	if err != nil {
		return nil, err
	}
	return page.Items, nil
}

func (s *ServiceImpl) Activities(ctx context.Context) ([]Activity, error) {
	raw, err := s.client.Get(ctx, activitiesPath, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch activities: %w", err)
	}
	page, err := upstream.DecodeList[Activity](raw)
	if err != nil {
		return nil, err
	}
	return page.Items, nil
}
