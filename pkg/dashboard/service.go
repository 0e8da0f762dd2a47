package dashboard

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/inventra/inventra/internal/upstream"
)

const basePath = "/dashboard/"

type Service interface {
	Metrics(ctx context.Context) (*Metrics, error)
}

type ServiceImpl struct {
	client *upstream.Client
}

func NewService(client *upstream.Client) *ServiceImpl {
	return &ServiceImpl{client: client}
}

func (s *ServiceImpl) Metrics(ctx context.Context) (*Metrics, error) {
	raw, err := s.client.Get(ctx, basePath, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch dashboard metrics: %w", err)
	}
	var m Metrics
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("failed to decode dashboard metrics: %w", err)
	}
	return &m, nil
}
