package database

import (
	"context"
	"database/sql"
	"testing"

	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func openSQLite(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrator_UpStatusDown(t *testing.T) {
	ctx := context.Background()
	db := openSQLite(t)

	m, err := NewMigrator(db, DialectSQLite)
	require.NoError(t, err)

	results, err := m.Up(ctx)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, int64(1), results[0].Source.Version)

	statuses, err := m.Status(ctx)
	require.NoError(t, err)
	require.Len(t, statuses, 1)
	assert.Equal(t, goose.StateApplied, statuses[0].State)

	var tables int
	require.NoError(t, db.QueryRowContext(ctx,
		`SELECT count(*) FROM sqlite_master WHERE type = 'table' AND name IN ('crops','fish','npcs','recipes','mining_locations','bundles')`,
	).Scan(&tables))
	assert.Equal(t, 6, tables)

	_, err = m.Down(ctx)
	require.NoError(t, err)

	require.NoError(t, db.QueryRowContext(ctx,
		`SELECT count(*) FROM sqlite_master WHERE type = 'table' AND name = 'crops'`,
	).Scan(&tables))
	assert.Equal(t, 0, tables)
}

func TestMigrate_Idempotent(t *testing.T) {
	ctx := context.Background()
	db := openSQLite(t)

	require.NoError(t, Migrate(ctx, db, DialectSQLite))
	require.NoError(t, Migrate(ctx, db, DialectSQLite))
}

func TestNewMigrator_UnknownDialect(t *testing.T) {
	_, err := NewMigrator(openSQLite(t), "oracle")
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgUnknownDialect)
}
