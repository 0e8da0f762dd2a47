package users

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/inventra/inventra/internal/upstream"
)

const basePath = "/usuarios/"

type Service interface {
	List(ctx context.Context, cursor string) (upstream.Page[User], error)
	Get(ctx context.Context, id int) (*User, error)
	Create(ctx context.Context, payload WritePayload) (*User, error)
	Update(ctx context.Context, id int, payload WritePayload) (*User, error)
	Delete(ctx context.Context, id int) error
}

type ServiceImpl struct {
	client *upstream.Client
}

func NewService(client *upstream.Client) *ServiceImpl {
	return &ServiceImpl{client: client}
}

func (s *ServiceImpl) List(ctx context.Context, cursor string) (upstream.Page[User], error) {
	var raw []byte
	var err error
	if cursor != "" {
		raw, err = s.client.GetURL(ctx, cursor)
	} else {
		raw, err = s.client.Get(ctx, basePath, nil)
	}
	if err != nil {
		return upstream.Page[User]{}, fmt.Errorf("failed to fetch users: %w", err)
	}
	return upstream.DecodeList[User](raw)
}

func (s *ServiceImpl) Get(ctx context.Context, id int) (*User, error) {
	raw, err := s.client.Get(ctx, itemPath(id), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user %d: %w", id, err)
	}
	var u User
	if err := json.Unmarshal(raw, &u); err != nil {
		return nil, fmt.Errorf("failed to decode user: %w", err)
	}
	return &u, nil
}

func (s *ServiceImpl) Create(ctx context.Context, payload WritePayload) (*User, error) {
	var u User
	if err := s.client.PostJSON(ctx, basePath, payload, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *ServiceImpl) Update(ctx context.Context, id int, payload WritePayload) (*User, error) {
	var u User
	if err := s.client.PutJSON(ctx, itemPath(id), payload, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *ServiceImpl) Delete(ctx context.Context, id int) error {
	return s.client.Delete(ctx, itemPath(id))
}

func itemPath(id int) string {
	return fmt.Sprintf("%s%d/", basePath, id)
}
