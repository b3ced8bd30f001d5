package repository

import (
	"context"
	"time"

	"slotbook/internal/infra"
	"slotbook/internal/infra/db"
	"slotbook/internal/pkg/pgconv"
	"slotbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type AppointmentReadStore struct {
	db db.DBTX
}

func NewAppointmentReadStore(db db.DBTX) *AppointmentReadStore {
	return &AppointmentReadStore{db: db}
}

func (r *AppointmentReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AppointmentView, error) {
	row := r.db.QueryRow(ctx, `
		SELECT a.id, a.client_name, a.client_email, a.client_phone,
		       lower(a.slot), upper(a.slot), a.status, a.price_cents, a.note,
		       a.created_at, a.updated_at,
		       COALESCE(array_agg(s.service_id ORDER BY s.position) FILTER (WHERE s.service_id IS NOT NULL), '{}')
		FROM appointments a
		LEFT JOIN appointment_services s ON s.appointment_id = a.id
		WHERE a.id = $1
		GROUP BY a.id`, id)

	var view queries.AppointmentView
	err := row.Scan(
		&view.ID, &view.ClientName, &view.ClientEmail, &view.ClientPhone,
		&view.StartTime, &view.EndTime, &view.Status, &view.PriceCents, &view.Note,
		&view.CreatedAt, &view.UpdatedAt, &view.ServiceIDs,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("appointment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find appointment", err)
	}

	return &view, nil
}

// ListBetween pages keyset-style over (start_time, id); the after arguments
// are both nil on the first page.
func (r *AppointmentReadStore) ListBetween(
	ctx context.Context,
	from, to time.Time,
	afterStart *time.Time,
	afterID *uuid.UUID,
	limit int32,
) ([]*queries.AppointmentListItem, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, client_name, lower(slot), upper(slot), status, price_cents, created_at
		FROM appointments
		WHERE slot && tstzrange($1, $2, '[)')
		  AND ($3::timestamptz IS NULL OR (lower(slot), id) > ($3::timestamptz, $4::uuid))
		ORDER BY lower(slot), id
		LIMIT $5`,
		pgconv.TimeToPgtype(from),
		pgconv.TimeToPgtype(to),
		pgconv.TimePtrToPgtype(afterStart),
		pgconv.UUIDPtrToPgtype(afterID),
		limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list appointments", err)
	}
	defer rows.Close()

	var items []*queries.AppointmentListItem
	for rows.Next() {
		var item queries.AppointmentListItem
		err := rows.Scan(
			&item.ID, &item.ClientName, &item.StartTime, &item.EndTime,
			&item.Status, &item.PriceCents, &item.CreatedAt,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan appointment row", err)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read appointment rows", err)
	}

	return items, nil
}
