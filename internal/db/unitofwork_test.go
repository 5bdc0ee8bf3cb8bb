package db_test

import (
	"context"
	"errors"
	"testing"

	"github.com/alexanderramin/gatetrack/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUoW(t *testing.T) *db.SQLiteUnitOfWork {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return db.NewSQLiteUnitOfWork(database)
}

func putKV(ctx context.Context, tx db.DBTX, key, value string) error {
	_, err := tx.ExecContext(ctx, `INSERT INTO kv_store (key, value, updated_at) VALUES (?, ?, 'now')`, key, value)
	return err
}

func readKV(t *testing.T, uow *db.SQLiteUnitOfWork, key string) (string, bool) {
	t.Helper()
	var val string
	var found bool
	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if err := tx.QueryRowContext(ctx, `SELECT value FROM kv_store WHERE key = ?`, key).Scan(&val); err != nil {
			return nil
		}
		found = true
		return nil
	})
	require.NoError(t, err)
	return val, found
}

func TestWithinTx_CommitOnSuccess(t *testing.T) {
	uow := newUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if err := putKV(ctx, tx, "gate_tracker_routine", "[]"); err != nil {
			return err
		}
		return putKV(ctx, tx, "gate_tracker_addons", "[]")
	})
	require.NoError(t, err)

	_, found := readKV(t, uow, "gate_tracker_routine")
	assert.True(t, found)
	_, found = readKV(t, uow, "gate_tracker_addons")
	assert.True(t, found)
}

func TestWithinTx_RollbackOnError(t *testing.T) {
	uow := newUoW(t)
	boom := errors.New("deliberate failure")

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if err := putKV(ctx, tx, "k1", "v1"); err != nil {
			return err
		}
		return boom
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)

	_, found := readKV(t, uow, "k1")
	assert.False(t, found, "row should not exist after rollback")
}

func TestWithinTx_RollbackOnPanic(t *testing.T) {
	uow := newUoW(t)

	assert.Panics(t, func() {
		_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
			_ = putKV(ctx, tx, "k2", "v2")
			panic("boom")
		})
	})

	_, found := readKV(t, uow, "k2")
	assert.False(t, found, "row should not exist after panic rollback")
}

func TestWithinTx_CanceledContext(t *testing.T) {
	uow := newUoW(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return putKV(ctx, tx, "k3", "v3")
	})
	assert.Error(t, err)
}
