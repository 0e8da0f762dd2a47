package supply

import (
	"context"
	"fmt"

	"github.com/inventra/inventra/internal/upstream"
)

const basePath = "/insumos/"

type Service interface {
	List(ctx context.Context, cursor string) (upstream.Page[Supply], error)
	Create(ctx context.Context, payload WritePayload) (*Supply, error)
	Update(ctx context.Context, id int, payload WritePayload) (*Supply, error)
	Delete(ctx context.Context, id int) error
}

type ServiceImpl struct {
	client *upstream.Client
}

func NewService(client *upstream.Client) *ServiceImpl {
	return &ServiceImpl{client: client}
}

func (s *ServiceImpl) List(ctx context.Context, cursor string) (upstream.Page[Supply], error) {
	var raw []byte
	var err error
	if cursor != "" {
		raw, err = s.client.GetURL(ctx, cursor)
	} else {
		raw, err = s.client.Get(ctx, basePath, nil)
	}
	if err != nil {
		return upstream.Page[Supply]{}, fmt.Errorf("failed to fetch supplies: %w", err)
	}
	return upstream.DecodeList[Supply](raw)
}

func (s *ServiceImpl) Create(ctx context.Context, payload WritePayload) (*Supply, error) {
	var created Supply
	if err := s.client.PostJSON(ctx, basePath, payload, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *ServiceImpl) Update(ctx context.Context, id int, payload WritePayload) (*Supply, error) {
	var updated Supply
	if err := s.client.PutJSON(ctx, itemPath(id), payload, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *ServiceImpl) Delete(ctx context.Context, id int) error {
	return s.client.Delete(ctx, itemPath(id))
}

func itemPath(id int) string {
	return fmt.Sprintf("%s%d/", basePath, id)
}
