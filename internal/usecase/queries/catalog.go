package queries

import (
	"context"
	"time"

	"slotbook/internal/infra"
	"slotbook/internal/pkg/errs"

	"github.com/google/uuid"
)

type ServiceView struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Description     *string   `json:"description,omitempty"`
	DurationMinutes int       `json:"duration_minutes"`
	BufferMinutes   int       `json:"buffer_minutes"`
	PriceCents      int64     `json:"price_cents"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type ServiceReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ServiceView, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*ServiceView, error)
	List(ctx context.Context, includeInactive bool) ([]*ServiceView, error)
}

type ServiceQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ServiceView, error)
	List(ctx context.Context, includeInactive bool) ([]*ServiceView, error)
}

type serviceQueriesImpl struct {
	readStore ServiceReadStore
}

func NewServiceQueries(readStore ServiceReadStore) ServiceQueries {
	return &serviceQueriesImpl{readStore: readStore}
}

func (q *serviceQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ServiceView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrServiceNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *serviceQueriesImpl) List(ctx context.Context, includeInactive bool) ([]*ServiceView, error) {
	return q.readStore.List(ctx, includeInactive)
}
