package task

import (
	"context"
	"fmt"

	"github.com/inventra/inventra/internal/upstream"
)

const basePath = "/tareas/"

type Service interface {
	List(ctx context.Context, cursor string) (upstream.Page[Task], error)
	All(ctx context.Context) ([]Task, error)
	Create(ctx context.Context, payload WritePayload) (*Task, error)
	Update(ctx context.Context, id int, payload WritePayload) (*Task, error)
	// Complete marks a task done; the upstream stamps completed_at and emits
	// a bell notification on its side.
	Complete(ctx context.Context, id int) (*Task, error)
	Delete(ctx context.Context, id int) error
}

type ServiceImpl struct {
	client *upstream.Client
}

func NewService(client *upstream.Client) *ServiceImpl {
	return &ServiceImpl{client: client}
}

func (s *ServiceImpl) List(ctx context.Context, cursor string) (upstream.Page[Task], error) {
	var raw []byte
	var err error
	if cursor != "" {
		raw, err = s.client.GetURL(ctx, cursor)
	} else {
		raw, err = s.client.Get(ctx, basePath, nil)
	}
	if err != nil {
		return upstream.Page[Task]{}, fmt.Errorf("failed to fetch tasks: %w", err)
	}
	return upstream.DecodeList[Task](raw)
}

func (s *ServiceImpl) All(ctx context.Context) ([]Task, error) {
	raw, err := s.client.Get(ctx, basePath, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch tasks: %w", err)
	}
	page, err := upstream.DecodeList[Task](raw)
	if err != nil {
		return nil, err
	}
	return page.Items, nil
}

func (s *ServiceImpl) Create(ctx context.Context, payload WritePayload) (*Task, error) {
	var t Task
	if err := s.client.PostJSON(ctx, basePath, payload, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *ServiceImpl) Update(ctx context.Context, id int, payload WritePayload) (*Task, error) {
	var t Task
	if err := s.client.PutJSON(ctx, itemPath(id), payload, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *ServiceImpl) Complete(ctx context.Context, id int) (*Task, error) {
	var t Task
	if err := s.client.PatchJSON(ctx, fmt.Sprintf("%s%d/complete/", basePath, id), nil, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *ServiceImpl) Delete(ctx context.Context, id int) error {
	return s.client.Delete(ctx, itemPath(id))
}

func itemPath(id int) string {
	return fmt.Sprintf("%s%d/", basePath, id)
}
