package equipment

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/inventra/inventra/internal/upstream"
)

const (
	basePath = "/equipos/"
	pageSize = 10
)

// Service exposes the equipment list and form operations used by the
// inventory pages and the calendar's warranty source.
type Service interface {
	// List fetches one page. A non-empty cursor is an upstream pagination
	// link followed verbatim; search is forwarded to the server and restarts
	// from page one.
	List(ctx context.Context, cursor, search string) (upstream.Page[Equipment], error)
	// All fetches the full unpaginated set, as the calendar needs every
	// warranty date regardless of page boundaries.
	All(ctx context.Context) ([]Equipment, error)
	Get(ctx context.Context, id int) (*Equipment, error)
	Create(ctx context.Context, payload WritePayload) (*Equipment, error)
	Update(ctx context.Context, id int, payload WritePayload) (*Equipment, error)
	Delete(ctx context.Context, id int) error
}

type ServiceImpl struct {
	client *upstream.Client
}

func NewService(client *upstream.Client) *ServiceImpl {
	return &ServiceImpl{client: client}
}

func (s *ServiceImpl) List(ctx context.Context, cursor, search string) (upstream.Page[Equipment], error) {
	var raw []byte
	var err error
	if cursor != "" {
		raw, err = s.client.GetURL(ctx, cursor)
	} else {
		query := url.Values{
			"page_size": {strconv.Itoa(pageSize)},
			"ordering":  {"-id"},
		}
		if search != "" {
			query.Set("search", search)
		}
		raw, err = s.client.Get(ctx, basePath, query)
	}
	if err != nil {
		return upstream.Page[Equipment]{}, fmt.Errorf("failed to fetch equipment: %w", err)
	}
	return upstream.DecodeList[Equipment](raw)
}

func (s *ServiceImpl) All(ctx context.Context) ([]Equipment, error) {
	raw, err := s.client.Get(ctx, basePath, url.Values{"all": {"true"}})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch equipment: %w", err)
	}
	page, err := upstream.DecodeList[Equipment](raw)
	if err != nil {
		return nil, err
	}
	return page.Items, nil
}

func (s *ServiceImpl) Get(ctx context.Context, id int) (*Equipment, error) {
	raw, err := s.client.Get(ctx, itemPath(id), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch equipment %d: %w", id, err)
	}
	var e Equipment
	if err := json.Unmarshal(raw, &e); err != nil {
		return nil, fmt.Errorf("failed to decode equipment: %w", err)
	}
	return &e, nil
}

func (s *ServiceImpl) Create(ctx context.Context, payload WritePayload) (*Equipment, error) {
	var e Equipment
	if err := s.client.PostJSON(ctx, basePath, payload, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

func (s *ServiceImpl) Update(ctx context.Context, id int, payload WritePayload) (*Equipment, error) {
	var e Equipment
	if err := s.client.PutJSON(ctx, itemPath(id), payload, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

func (s *ServiceImpl) Delete(ctx context.Context, id int) error {
	return s.client.Delete(ctx, itemPath(id))
}

func itemPath(id int) string {
	return fmt.Sprintf("%s%d/", basePath, id)
}
