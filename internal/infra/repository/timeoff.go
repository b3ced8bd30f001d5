package repository

import (
	"context"

	"slotbook/internal/domain/schedule"
	"slotbook/internal/infra"
	"slotbook/internal/infra/db"
	"slotbook/internal/pkg/pgconv"
	"slotbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type TimeOffRepository struct {
	db db.DBTX
}

func NewTimeOffRepository(db db.DBTX) *TimeOffRepository {
	return &TimeOffRepository{db: db}
}

func (r *TimeOffRepository) Create(ctx context.Context, p *schedule.TimeOffPeriod) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.db.QueryRow(ctx, `
		INSERT INTO time_off_periods (title, start_time, end_time, recurring, pattern, recurrence_end, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`,
		p.Title,
		pgconv.TimeToPgtype(p.StartTime),
		pgconv.TimeToPgtype(p.EndTime),
		p.Recurring,
		string(p.Pattern),
		pgconv.TimePtrToPgtype(p.RecurrenceEnd),
		p.Active,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create time-off period", err)
	}
	return id, nil
}

func (r *TimeOffRepository) Update(ctx context.Context, p *schedule.TimeOffPeriod) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE time_off_periods
		SET title = $2, start_time = $3, end_time = $4, recurring = $5,
		    pattern = $6, recurrence_end = $7, is_active = $8, updated_at = now()
		WHERE id = $1`,
		p.ID,
		p.Title,
		pgconv.TimeToPgtype(p.StartTime),
		pgconv.TimeToPgtype(p.EndTime),
		p.Recurring,
		string(p.Pattern),
		pgconv.TimePtrToPgtype(p.RecurrenceEnd),
		p.Active,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update time-off period", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("time-off period not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func (r *TimeOffRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM time_off_periods WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete time-off period", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("time-off period not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func (r *TimeOffRepository) FindByID(ctx context.Context, id uuid.UUID) (*schedule.TimeOffPeriod, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, title, start_time, end_time, recurring, pattern, recurrence_end, is_active
		FROM time_off_periods
		WHERE id = $1`, id)

	p, err := scanTimeOffPeriod(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("time-off period not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find time-off period", err)
	}
	return &p, nil
}

// TimeOffReadStore serves the admin listing views.
type TimeOffReadStore struct {
	db db.DBTX
}

func NewTimeOffReadStore(db db.DBTX) *TimeOffReadStore {
	return &TimeOffReadStore{db: db}
}

func (r *TimeOffReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.TimeOffView, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, title, start_time, end_time, recurring, pattern, recurrence_end, is_active, created_at, updated_at
		FROM time_off_periods
		WHERE id = $1`, id)

	view, err := scanTimeOffView(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("time-off period not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find time-off period", err)
	}
	return view, nil
}

func (r *TimeOffReadStore) List(ctx context.Context) ([]*queries.TimeOffView, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, title, start_time, end_time, recurring, pattern, recurrence_end, is_active, created_at, updated_at
		FROM time_off_periods
		ORDER BY start_time`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list time-off periods", err)
	}
	defer rows.Close()

	var views []*queries.TimeOffView
	for rows.Next() {
		view, err := scanTimeOffView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan time-off row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read time-off rows", err)
	}

	return views, nil
}

func scanTimeOffPeriod(row pgx.Row) (schedule.TimeOffPeriod, error) {
	var p schedule.TimeOffPeriod
	var pattern string
	err := row.Scan(&p.ID, &p.Title, &p.StartTime, &p.EndTime, &p.Recurring, &pattern, &p.RecurrenceEnd, &p.Active)
	if err != nil {
		return schedule.TimeOffPeriod{}, err
	}
	p.Pattern = schedule.RecurrencePattern(pattern)
	return p, nil
}

func scanTimeOffView(row pgx.Row) (*queries.TimeOffView, error) {
	var view queries.TimeOffView
	err := row.Scan(
		&view.ID, &view.Title, &view.StartTime, &view.EndTime,
		&view.Recurring, &view.Pattern, &view.RecurrenceEnd, &view.IsActive,
		&view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &view, nil
}
