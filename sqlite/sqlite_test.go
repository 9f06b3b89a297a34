package sqlite_test

import (
	"context"
	"testing"

	"github.com/fwojciec/seoscan/sqlite"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *sqlite.DB {
	t.Helper()
	db := sqlite.NewDB(":memory:")
	require.NoError(t, db.Open())
	t.Cleanup(func() { db.Close() })
	return db
}

func TestDB_Open(t *testing.T) {
	t.Parallel()

	t.Run("creates schema on first open", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		ctx := context.Background()

		var recordCount int
		err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM records").Scan(&recordCount)
		require.NoError(t, err)

		var entryCount int
		err = db.QueryRowContext(ctx, "SELECT COUNT(*) FROM record_entries").Scan(&entryCount)
		require.NoError(t, err)
	})

	t.Run("returns error for invalid path", func(t *testing.T) {
		t.Parallel()

		db := sqlite.NewDB("/nonexistent/path/db.sqlite")
		err := db.Open()
		require.Error(t, err)
	})

	t.Run("enables WAL mode for file-based databases", func(t *testing.T) {
		t.Parallel()

		dbPath := t.TempDir() + "/test.db"
		db := sqlite.NewDB(dbPath)
		err := db.Open()
		require.NoError(t, err)
		defer db.Close()

		ctx := context.Background()
		var journalMode string
		err = db.QueryRowContext(ctx, "PRAGMA journal_mode").Scan(&journalMode)
		require.NoError(t, err)
		require.Equal(t, "wal", journalMode)
	})

	t.Run("reopening keeps schema", func(t *testing.T) {
		t.Parallel()

		dbPath := t.TempDir() + "/test.db"
		db := sqlite.NewDB(dbPath)
		require.NoError(t, db.Open())
		require.NoError(t, db.Close())

		db = sqlite.NewDB(dbPath)
		require.NoError(t, db.Open())
		defer db.Close()
	})
}
