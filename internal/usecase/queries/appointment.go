package queries

import (
	"context"
	"time"

	"slotbook/internal/infra"
	"slotbook/internal/pkg/errs"

	"github.com/google/uuid"
)

type AppointmentView struct {
	ID          uuid.UUID   `json:"id"`
	ClientName  string      `json:"client_name"`
	ClientEmail string      `json:"client_email"`
	ClientPhone *string     `json:"client_phone,omitempty"`
	StartTime   time.Time   `json:"start_time"`
	EndTime     time.Time   `json:"end_time"`
	Status      string      `json:"status"`
	PriceCents  int64       `json:"price_cents"`
	ServiceIDs  []uuid.UUID `json:"service_ids"`
	Note        *string     `json:"note,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

type AppointmentListItem struct {
	ID         uuid.UUID `json:"id"`
	ClientName string    `json:"client_name"`
	StartTime  time.Time `json:"start_time"`
	EndTime    time.Time `json:"end_time"`
	Status     string    `json:"status"`
	PriceCents int64     `json:"price_cents"`
	CreatedAt  time.Time `json:"created_at"`
}

type AppointmentReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AppointmentView, error)
	ListBetween(ctx context.Context, from, to time.Time, afterStart *time.Time, afterID *uuid.UUID, limit int32) ([]*AppointmentListItem, error)
}

type AppointmentQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*AppointmentView, error)
	ListBetween(ctx context.Context, from, to time.Time, after *Cursor, limit int) ([]*AppointmentListItem, *Cursor, error)
}

type appointmentQueriesImpl struct {
	readStore AppointmentReadStore
}

func NewAppointmentQueries(readStore AppointmentReadStore) AppointmentQueries {
	return &appointmentQueriesImpl{readStore: readStore}
}

func (q *appointmentQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*AppointmentView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrAppointmentNotFound
		}
		return nil, err
	}
	return view, nil
}

// ListBetween pages keyset-style over (start_time, id) ascending.
func (q *appointmentQueriesImpl) ListBetween(ctx context.Context, from, to time.Time, after *Cursor, limit int) ([]*AppointmentListItem, *Cursor, error) {
	limit = ValidateLimit(limit)

	var afterStart *time.Time
	var afterID *uuid.UUID
	if after != nil && after.After != "" {
		t, id, err := DecodeAfterCursor(after.After)
		if err != nil {
			return nil, nil, errs.Wrap(err, "invalid pagination cursor")
		}
		afterStart, afterID = &t, &id
	}

	// Fetch one extra row to detect whether a next page exists.
	rows, err := q.readStore.ListBetween(ctx, from, to, afterStart, afterID, int32(limit+1))
	if err != nil {
		return nil, nil, err
	}

	var next *Cursor
	if len(rows) > limit {
		rows = rows[:limit]
		last := rows[len(rows)-1]
		next = &Cursor{After: EncodeAfterCursor(last.StartTime, last.ID)}
	}

	return rows, next, nil
}
