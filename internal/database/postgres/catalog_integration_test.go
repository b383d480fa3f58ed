package postgres

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/osse101/ValleyCompanion_Go/internal/database"
	"github.com/osse101/ValleyCompanion_Go/internal/domain"
	"github.com/osse101/ValleyCompanion_Go/internal/repository"
	"github.com/osse101/ValleyCompanion_Go/internal/repository/repositorytest"
)

var (
	_ repository.Catalog       = (*CatalogRepository)(nil)
	_ repository.CatalogWriter = (*CatalogRepository)(nil)
	_ repository.Pinger        = (*CatalogRepository)(nil)
)

var testPool *pgxpool.Pool

func TestMain(m *testing.M) {
	flag.Parse()

	var terminate func()

	if !testing.Short() {
		terminate = setupContainer(context.Background())
	}

	code := m.Run()

	if terminate != nil {
		terminate()
	}
	os.Exit(code)
}

// setupContainer starts postgres, applies the migrations and fills testPool.
// Any failure leaves testPool nil so the integration tests skip.
func setupContainer(ctx context.Context) func() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("Recovered from panic in setupContainer: %v\n", r)
		}
	}()

	pgContainer, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		fmt.Printf("WARNING: Failed to start postgres container: %v\n", err)
		return func() {}
	}
	terminate := func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			fmt.Printf("Failed to terminate container: %v\n", err)
		}
	}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		fmt.Printf("WARNING: Failed to get connection string: %v\n", err)
		return terminate
	}

	pool, err := database.NewPool(ctx, connStr, 5, time.Minute, 5*time.Minute)
	if err != nil {
		fmt.Printf("WARNING: Failed to connect: %v\n", err)
		return terminate
	}

	db := stdlib.OpenDBFromPool(pool)
	if err := database.Migrate(ctx, db, database.DialectPostgres); err != nil {
		fmt.Printf("WARNING: Failed to migrate: %v\n", err)
		pool.Close()
		return terminate
	}
	_ = db.Close()

	testPool = pool
	return func() {
		pool.Close()
		terminate()
	}
}

func requireDB(t *testing.T) {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	if testPool == nil {
		t.Skip("Skipping integration test: database not available")
	}
}

func TestCatalogRepository_Suite(t *testing.T) {
	requireDB(t)

	repo := NewCatalogRepository(testPool)
	repositorytest.RunCatalogSuite(t, func(t *testing.T) repositorytest.Store {
		require.NoError(t, repo.ReplaceAll(context.Background(), &domain.Snapshot{}))
		return repo
	})
}

func TestCatalogRepository_DecodeFailure(t *testing.T) {
	requireDB(t)
	ctx := context.Background()

	repo := NewCatalogRepository(testPool)
	require.NoError(t, repo.ReplaceAll(ctx, repositorytest.Fixture()))

	// Valid JSON of the wrong shape still fails decoding
	_, err := testPool.Exec(ctx, `UPDATE mining_locations SET sections = '{"floors": 3}' WHERE id = 'the-mines'`)
	require.NoError(t, err)

	_, err = repo.ListMiningLocations(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrDecode))

	npcs, err := repo.ListNPCs(ctx)
	require.NoError(t, err)
	assert.Len(t, npcs, 2)
}

func TestCatalogRepository_Ping(t *testing.T) {
	requireDB(t)
	assert.NoError(t, NewCatalogRepository(testPool).Ping(context.Background()))
}
