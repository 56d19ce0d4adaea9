package integration

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ayursutra/ayursutra/internal/platform/db"
)

// testDB holds the shared database infrastructure for integration tests.
type testDB struct {
	Pool    *pgxpool.Pool
	ConnStr string
}

// globalDB is the package-level test database, initialized once in TestMain.
var globalDB *testDB

func TestMain(m *testing.M) {
	ctx := context.Background()

	tdb, cleanup, err := setupPostgres(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to setup postgres container: %v\n", err)
		os.Exit(1)
	}

	globalDB = tdb
	code := m.Run()
	cleanup()
	os.Exit(code)
}

// setupPostgres starts a throwaway Postgres container and applies the full
// migration set to it.
func setupPostgres(ctx context.Context) (*testDB, func(), error) {
	connStr, cleanup, err := startDockerPostgres(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("start postgres container: %w", err)
	}

	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("create pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		cleanup()
		return nil, nil, fmt.Errorf("ping database: %w", err)
	}

	migrator := db.NewMigrator(pool, findMigrationsDir())
	if _, err := migrator.Up(ctx); err != nil {
		pool.Close()
		cleanup()
		return nil, nil, fmt.Errorf("apply migrations: %w", err)
	}

	return &testDB{Pool: pool, ConnStr: connStr}, func() {
		pool.Close()
		cleanup()
	}, nil
}

// findMigrationsDir locates the migrations directory relative to this test file.
func findMigrationsDir() string {
	_, filename, _, _ := runtime.Caller(0)
	dir := filepath.Dir(filename)
	// test/integration -> repo root
	return filepath.Join(dir, "..", "..", "migrations")
}

func createTestPatient(t *testing.T, ctx context.Context, name, email, passcode string) uuid.UUID {
	t.Helper()
	id := uuid.New()
	_, err := globalDB.Pool.Exec(ctx,
		`INSERT INTO patients (id, name, email, passcode, contact, address)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		id, name, email, passcode, "9876543210", "12 Lotus Lane, Pune")
	if err != nil {
		t.Fatalf("create test patient: %v", err)
	}
	return id
}

func createTestDoctor(t *testing.T, ctx context.Context, name, location string) uuid.UUID {
	t.Helper()
	id := uuid.New()
	_, err := globalDB.Pool.Exec(ctx,
		`INSERT INTO doctors (id, name, specialization, location, rating, fees, languages)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		id, name, "Panchakarma", location, 4.8, 800.00, []string{"Hindi", "English"})
	if err != nil {
		t.Fatalf("create test doctor: %v", err)
	}
	return id
}

func createTestTherapy(t *testing.T, ctx context.Context, name string) uuid.UUID {
	t.Helper()
	id := uuid.New()
	_, err := globalDB.Pool.Exec(ctx,
		`INSERT INTO therapies (id, name, sanskrit_name, description, duration, cost, benefits)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		id, name, name, "Test therapy", "60 min", 2500.00, []string{"Relaxation"})
	if err != nil {
		t.Fatalf("create test therapy: %v", err)
	}
	return id
}
