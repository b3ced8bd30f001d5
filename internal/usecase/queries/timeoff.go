package queries

import (
	"context"
	"time"

	"slotbook/internal/infra"
	"slotbook/internal/pkg/errs"

	"github.com/google/uuid"
)

type TimeOffView struct {
	ID            uuid.UUID  `json:"id"`
	Title         string     `json:"title"`
	StartTime     time.Time  `json:"start_time"`
	EndTime       time.Time  `json:"end_time"`
	Recurring     bool       `json:"recurring"`
	Pattern       string     `json:"pattern"`
	RecurrenceEnd *time.Time `json:"recurrence_end,omitempty"`
	IsActive      bool       `json:"is_active"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

type TimeOffReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*TimeOffView, error)
	List(ctx context.Context) ([]*TimeOffView, error)
}

type TimeOffQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*TimeOffView, error)
	List(ctx context.Context) ([]*TimeOffView, error)
}

type timeOffQueriesImpl struct {
	readStore TimeOffReadStore
}

func NewTimeOffQueries(readStore TimeOffReadStore) TimeOffQueries {
	return &timeOffQueriesImpl{readStore: readStore}
}

func (q *timeOffQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*TimeOffView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrTimeOffNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *timeOffQueriesImpl) List(ctx context.Context) ([]*TimeOffView, error) {
	return q.readStore.List(ctx)
}
