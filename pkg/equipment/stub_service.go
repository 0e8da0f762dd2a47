package equipment

import (
	"context"

	"github.com/inventra/inventra/internal/upstream"
)

// StubService serves canned equipment for tests. Mutating calls record the
// last payload they received.
type StubService struct {
	Items []Equipment
	Err   error

	NextCursor string
	LastSearch string
	LastCursor string
	LastWrite  WritePayload
	Deleted    []int
}

func NewStubService() *StubService {
	return &StubService{}
}

func (s *StubService) List(ctx context.Context, cursor, search string) (upstream.Page[Equipment], error) {
	s.LastCursor = cursor
	s.LastSearch = search
	if s.Err != nil {
		return upstream.Page[Equipment]{}, s.Err
	}
	return upstream.Page[Equipment]{Items: s.Items, Next: s.NextCursor, Count: len(s.Items)}, nil
}

func (s *StubService) All(ctx context.Context) ([]Equipment, error) {
	return s.Items, s.Err
}

func (s *StubService) Get(ctx context.Context, id int) (*Equipment, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for i := range s.Items {
		if s.Items[i].ID == id {
			return &s.Items[i], nil
		}
	}
	return nil, upstream.ErrNotFound
}

func (s *StubService) Create(ctx context.Context, payload WritePayload) (*Equipment, error) {
	s.LastWrite = payload
	if s.Err != nil {
		return nil, s.Err
	}
	e := Equipment{ID: 1000 + len(s.Items), SerialNumber: payload.SerialNumber, Brand: payload.Brand, Model: payload.Model}
	s.Items = append(s.Items, e)
	return &e, nil
}

func (s *StubService) Update(ctx context.Context, id int, payload WritePayload) (*Equipment, error) {
	s.LastWrite = payload
	if s.Err != nil {
		return nil, s.Err
	}
	e := Equipment{ID: id, SerialNumber: payload.SerialNumber, Brand: payload.Brand, Model: payload.Model}
	return &e, nil
}

func (s *StubService) Delete(ctx context.Context, id int) error {
	s.Deleted = append(s.Deleted, id)
	return s.Err
}
