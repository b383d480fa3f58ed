package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	_ "modernc.org/sqlite"

	"github.com/osse101/ValleyCompanion_Go/internal/database"
)

// Open opens or creates the SQLite catalog file and applies pending migrations.
// MemoryPath gives a private in-memory database, pinned to one connection so
// every query sees the same data.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	dsn := path
	if path != MemoryPath {
		dsn = "file:" + path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	}

	db, err := sql.Open(DriverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if path == MemoryPath {
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("%s: %w", database.ErrMsgFailedToPingDatabase, err)
	}

	if err := database.Migrate(ctx, db, database.DialectSQLite); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	slog.Default().Info(LogMsgOpened, "path", path)
	return db, nil
}
