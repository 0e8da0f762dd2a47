package profile

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/inventra/inventra/internal/upstream"
)

const basePath = "/perfil/"

type Service interface {
	Get(ctx context.Context) (*Profile, error)
	Update(ctx context.Context, p Profile) (*Profile, error)
}

type ServiceImpl struct {
	client *upstream.Client
}

func NewService(client *upstream.Client) *ServiceImpl {
	return &ServiceImpl{client: client}
}

func (s *ServiceImpl) Get(ctx context.Context) (*Profile, error) {
	raw, err := s.client.Get(ctx, basePath, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch profile: %w", err)
	}
	var p Profile
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("failed to decode profile: %w", err)
	}
	return &p, nil
}

func (s *ServiceImpl) Update(ctx context.Context, p Profile) (*Profile, error) {
	var updated Profile
	if err := s.client.PutJSON(ctx, basePath, p, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}
