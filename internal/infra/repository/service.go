package repository

import (
	"context"

	"slotbook/internal/infra"
	"slotbook/internal/infra/db"
	"slotbook/internal/pkg/pgconv"
	"slotbook/internal/usecase/commands"
	"slotbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ServiceRepository struct {
	db db.DBTX
}

func NewServiceRepository(db db.DBTX) *ServiceRepository {
	return &ServiceRepository{db: db}
}

func (r *ServiceRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]commands.ServiceSnapshot, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	rows, err := r.db.Query(ctx, `
		SELECT id, name, duration_minutes, buffer_minutes, price_cents, is_active, created_at, updated_at
		FROM services
		WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find services", err)
	}
	defer rows.Close()

	found := make(map[uuid.UUID]commands.ServiceSnapshot, len(ids))
	for rows.Next() {
		var s commands.ServiceSnapshot
		err := rows.Scan(&s.ID, &s.Name, &s.DurationMinutes, &s.BufferMinutes, &s.PriceCents, &s.IsActive, &s.CreatedAt, &s.UpdatedAt)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan service row", err)
		}
		found[s.ID] = s
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read service rows", err)
	}

	// Preserve request order; missing IDs shrink the result so callers can
	// detect them by length.
	snapshots := make([]commands.ServiceSnapshot, 0, len(ids))
	for _, id := range ids {
		if s, ok := found[id]; ok {
			snapshots = append(snapshots, s)
		}
	}
	return snapshots, nil
}

type ServiceReadStore struct {
	db db.DBTX
}

func NewServiceReadStore(db db.DBTX) *ServiceReadStore {
	return &ServiceReadStore{db: db}
}

func (r *ServiceReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ServiceView, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, name, description, duration_minutes, buffer_minutes, price_cents, is_active, created_at, updated_at
		FROM services
		WHERE id = $1`, id)

	view, err := scanServiceView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("service not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find service", err)
	}
	return view, nil
}

func (r *ServiceReadStore) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*queries.ServiceView, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	rows, err := r.db.Query(ctx, `
		SELECT id, name, description, duration_minutes, buffer_minutes, price_cents, is_active, created_at, updated_at
		FROM services
		WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find services", err)
	}
	defer rows.Close()

	views, err := collectServiceViews(rows)
	if err != nil {
		return nil, err
	}
	return views, nil
}

func (r *ServiceReadStore) List(ctx context.Context, includeInactive bool) ([]*queries.ServiceView, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, description, duration_minutes, buffer_minutes, price_cents, is_active, created_at, updated_at
		FROM services
		WHERE is_active OR $1
		ORDER BY name`, includeInactive)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list services", err)
	}
	defer rows.Close()

	views, err := collectServiceViews(rows)
	if err != nil {
		return nil, err
	}
	return views, nil
}

func collectServiceViews(rows pgx.Rows) ([]*queries.ServiceView, error) {
	var views []*queries.ServiceView
	for rows.Next() {
		view, err := scanServiceView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan service row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read service rows", err)
	}
	return views, nil
}

func scanServiceView(row pgx.Row) (*queries.ServiceView, error) {
	var view queries.ServiceView
	err := row.Scan(
		&view.ID, &view.Name, &view.Description,
		&view.DurationMinutes, &view.BufferMinutes, &view.PriceCents,
		&view.IsActive, &view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &view, nil
}
