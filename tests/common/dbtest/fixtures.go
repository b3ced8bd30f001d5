//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	// bcrypt hash of "password123"
	passwordHash := "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."
	tag, err := db.Exec(ctx, "INSERT INTO users (id, email, password_hash, role, is_active) VALUES ($1, $2, $3, $4, true) ON CONFLICT (email) DO NOTHING",
		userID, email, passwordHash, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1 AND is_active = true", email).Scan(&userID)
	}

	return userID
}

func CreateTestService(t *testing.T, db DBLike, name string, durationMinutes, bufferMinutes int, priceCents int64) uuid.UUID {
	t.Helper()

	serviceID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		"INSERT INTO services (id, name, duration_minutes, buffer_minutes, price_cents, is_active) VALUES ($1, $2, $3, $4, $5, true)",
		serviceID, name, durationMinutes, bufferMinutes, priceCents)
	require.NoError(t, err)

	return serviceID
}

// SetWeekdayHours replaces a single weekday row; timeSlots holds alternating
// "HH:mm" open/close pairs.
func SetWeekdayHours(t *testing.T, db DBLike, weekday int, isOpen bool, timeSlots []string) {
	t.Helper()

	ctx := context.Background()
	_, err := db.Exec(ctx,
		`INSERT INTO business_hours (weekday, is_open, time_slots) VALUES ($1, $2, $3)
		 ON CONFLICT (weekday) DO UPDATE SET is_open = EXCLUDED.is_open, time_slots = EXCLUDED.time_slots, updated_at = now()`,
		weekday, isOpen, timeSlots)
	require.NoError(t, err)
}

// OpenAllWeek marks every weekday open 09:00-17:00.
func OpenAllWeek(t *testing.T, db DBLike) {
	t.Helper()
	for wd := 0; wd < 7; wd++ {
		SetWeekdayHours(t, db, wd, true, []string{"09:00", "17:00"})
	}
}

func CreateTestTimeOff(t *testing.T, db DBLike, title string, start, end time.Time, pattern string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	ctx := context.Background()

	recurring := pattern != "none"
	_, err := db.Exec(ctx,
		"INSERT INTO time_off_periods (id, title, start_time, end_time, recurring, pattern, is_active) VALUES ($1, $2, $3, $4, $5, $6, true)",
		id, title, start, end, recurring, pattern)
	require.NoError(t, err)

	return id
}

func CreateTestAppointment(t *testing.T, db DBLike, serviceID uuid.UUID, start, end time.Time, status string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		"INSERT INTO appointments (id, client_name, client_email, slot, status, price_cents) VALUES ($1, $2, $3, tstzrange($4, $5, '[)'), $6, 5000)",
		id, "Fixture Client", "fixture@example.com", start, end, status)
	require.NoError(t, err)

	_, err = db.Exec(ctx,
		"INSERT INTO appointment_services (appointment_id, service_id, position) VALUES ($1, $2, 0)",
		id, serviceID)
	require.NoError(t, err)

	return id
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return nil
}
