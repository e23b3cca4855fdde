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

// bcrypt hash of "password123"
const testPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

func CreateTestUser(t *testing.T, db DBLike, phone, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		"INSERT INTO users (id, phone_number, password_hash, full_name, role, is_active) VALUES ($1, $2, $3, $4, $5, true) ON CONFLICT (phone_number) DO NOTHING",
		userID, phone, testPasswordHash, "Test User", role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE phone_number = $1", phone).Scan(&userID)
	}

	return userID
}

func GetProfessionID(t *testing.T, db DBLike, name string) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(), "SELECT id FROM professions WHERE name = $1", name).Scan(&id)
	require.NoError(t, err)
	return id
}

func CreateTestService(t *testing.T, db DBLike, name string, durationMin int, professionID uuid.UUID) uuid.UUID {
	t.Helper()

	serviceID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO services (id, name, price_cents, duration_min, profession_id) VALUES ($1, $2, $3, $4, $5)",
		serviceID, name, int64(300000), durationMin, professionID)
	require.NoError(t, err)
	return serviceID
}

func CreateTestMaster(t *testing.T, db DBLike, fullName string, professionID uuid.UUID, serviceIDs ...uuid.UUID) uuid.UUID {
	t.Helper()

	ctx := context.Background()
	masterID := uuid.New()
	_, err := db.Exec(ctx,
		"INSERT INTO masters (id, full_name, profession_id, is_active) VALUES ($1, $2, $3, true)",
		masterID, fullName, professionID)
	require.NoError(t, err)

	for _, serviceID := range serviceIDs {
		_, err = db.Exec(ctx,
			"INSERT INTO master_services (master_id, service_id) VALUES ($1, $2)",
			masterID, serviceID)
		require.NoError(t, err)
	}

	return masterID
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO professions (id, name) VALUES
		    (gen_random_uuid(), 'Hairdresser'),
		    (gen_random_uuid(), 'Nail technician')
		ON CONFLICT (name) DO NOTHING;
	`)
	if err != nil {
		return err
	}

	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
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

	return SeedReferenceData(pool)
}
