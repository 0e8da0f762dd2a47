package audit

import (
	"context"
	"fmt"

	"github.com/inventra/inventra/internal/upstream"
)

const basePath = "/auditoria/"

// Service reads the audit log. The upstream restricts it to administrators;
// a 403 surfaces as an authentication failure like everywhere else.
type Service interface {
	List(ctx context.Context, cursor string) (upstream.Page[Entry], error)
}

type ServiceImpl struct {
	client *upstream.Client
}

func NewService(client *upstream.Client) *ServiceImpl {
	return &ServiceImpl{client: client}
}

func (s *ServiceImpl) List(ctx context.Context, cursor string) (upstream.Page[Entry], error) {
	var raw []byte
	var err error
	if cursor != "" {
		raw, err = s.client.GetURL(ctx, cursor)
	} else {
		raw, err = s.client.Get(ctx, basePath, nil)
	}
	if err != nil {
		return upstream.Page[Entry]{}, fmt.Errorf("failed to fetch audit log: %w", err)
	}
	return upstream.DecodeList[Entry](raw)
}
