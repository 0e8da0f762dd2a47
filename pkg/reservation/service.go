package reservation

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/inventra/inventra/internal/upstream"
)

const basePath = "/reservas/"

type Service interface {
	List(ctx context.Context, cursor string) (upstream.Page[Reservation], error)
	// All returns the reservations the calendar aggregates; the upstream
	// serves them unpaginated or as the first envelope page.
	All(ctx context.Context) ([]Reservation, error)
	Get(ctx context.Context, id int) (*Reservation, error)
	Create(ctx context.Context, payload WritePayload) (*Reservation, error)
	Delete(ctx context.Context, id int) error
}

type ServiceImpl struct {
	client *upstream.Client
}

func NewService(client *upstream.Client) *ServiceImpl {
	return &ServiceImpl{client: client}
}

func (s *ServiceImpl) List(ctx context.Context, cursor string) (upstream.Page[Reservation], error) {
	var raw []byte
	var err error
	if cursor != "" {
		raw, err = s.client.GetURL(ctx, cursor)
	} else {
		raw, err = s.client.Get(ctx, basePath, nil)
	}
	if err != nil {
		return upstream.Page[Reservation]{}, fmt.Errorf("failed to fetch reservations: %w", err)
	}
	return upstream.DecodeList[Reservation](raw)
}

func (s *ServiceImpl) All(ctx context.Context) ([]Reservation, error) {
	raw, err := s.client.Get(ctx, basePath, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reservations: %w", err)
	}
	page, err := upstream.DecodeList[Reservation](raw)
	if err != nil {
		return nil, err
	}
	return page.Items, nil
}

func (s *ServiceImpl) Get(ctx context.Context, id int) (*Reservation, error) {
	raw, err := s.client.Get(ctx, itemPath(id), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch reservation %d: %w", id, err)
	}
	var res Reservation
	if err := json.Unmarshal(raw, &res); err != nil {
		return nil, fmt.Errorf("failed to decode reservation: %w", err)
	}
	return &res, nil
}

func (s *ServiceImpl) Create(ctx context.Context, payload WritePayload) (*Reservation, error) {
	var res Reservation
	if err := s.client.PostJSON(ctx, basePath, payload, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (s *ServiceImpl) Delete(ctx context.Context, id int) error {
	return s.client.Delete(ctx, itemPath(id))
}

func itemPath(id int) string {
	return fmt.Sprintf("%s%d/", basePath, id)
}
