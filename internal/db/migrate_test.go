package db

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)

	// Run migrations a second time should succeed.
	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db))
}

func TestMigrate_CreatesKVStore(t *testing.T) {
	db := openTestDB(t)

	var name string
	err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name='kv_store'`).Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "kv_store", name)
}

func TestMigrate_KVStoreKeyIsPrimary(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO kv_store (key, value, updated_at) VALUES ('k', 'v1', 'now')`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO kv_store (key, value, updated_at) VALUES ('k', 'v2', 'now')`)
	assert.Error(t, err, "duplicate key should violate the primary key")
}

func TestMigrate_PreservesExistingValues(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO kv_store (key, value, updated_at) VALUES ('gate_tracker_date', '2025-12-05', 'now')`)
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	var v string
	require.NoError(t, db.QueryRow(`SELECT value FROM kv_store WHERE key = 'gate_tracker_date'`).Scan(&v))
	assert.Equal(t, "2025-12-05", v)
}

func TestOpenDB_InMemoryJournalMode(t *testing.T) {
	// In-memory SQLite uses "memory" journal mode; WAL only applies to file DBs.
	db := openTestDB(t)

	var mode string
	require.NoError(t, db.QueryRow(`PRAGMA journal_mode`).Scan(&mode))
	assert.Equal(t, "memory", mode)
}

func TestOpenDB_FileCreatesDirectory(t *testing.T) {
	path := t.TempDir() + "/nested/dir/gatetrack.db"
	db, err := OpenDB(path)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	var mode string
	require.NoError(t, db.QueryRow(`PRAGMA journal_mode`).Scan(&mode))
	assert.Equal(t, "wal", mode)
}

func TestOpenDB_BusyTimeoutOnEveryConnection(t *testing.T) {
	db, err := OpenDB(t.TempDir() + "/gatetrack.db")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	ctx := context.Background()
	first, err := db.Conn(ctx)
	require.NoError(t, err)
	defer first.Close()
	second, err := db.Conn(ctx)
	require.NoError(t, err)
	defer second.Close()

	for _, conn := range []*sql.Conn{first, second} {
		var timeout int
		require.NoError(t, conn.QueryRowContext(ctx, `PRAGMA busy_timeout`).Scan(&timeout))
		assert.Equal(t, busyTimeoutMillis, timeout)
	}
}

func TestOpenDB_InMemoryHasBusyTimeout(t *testing.T) {
	db := openTestDB(t)

	var timeout int
	require.NoError(t, db.QueryRow(`PRAGMA busy_timeout`).Scan(&timeout))
	assert.Equal(t, busyTimeoutMillis, timeout)
}
