package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/gatetrack/internal/db"
)

const upsertKV = `INSERT INTO kv_store (key, value, updated_at) VALUES (?, ?, ?)
	ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`

// SQLiteKVStore implements KVStore over the kv_store table.
type SQLiteKVStore struct {
	db  db.DBTX
	uow db.UnitOfWork
}

// NewSQLiteKVStore creates a store. When uow is nil, SetMany issues its
// writes one by one without a surrounding transaction.
func NewSQLiteKVStore(conn db.DBTX, uow db.UnitOfWork) *SQLiteKVStore {
	return &SQLiteKVStore{db: conn, uow: uow}
}

func (s *SQLiteKVStore) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv_store WHERE key = ?`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", fmt.Errorf("key %q: %w", key, ErrNotFound)
		}
		return "", fmt.Errorf("reading key %q: %w", key, err)
	}
	return value, nil
}

func (s *SQLiteKVStore) Set(ctx context.Context, key, value string) error {
	return setKV(ctx, s.db, key, value)
}

func (s *SQLiteKVStore) SetMany(ctx context.Context, entries []Entry) error {
	if len(entries) == 0 {
		return nil
	}
	if s.uow == nil {
		for _, e := range entries {
			if err := setKV(ctx, s.db, e.Key, e.Value); err != nil {
				return err
			}
		}
		return nil
	}
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		for _, e := range entries {
			if err := setKV(ctx, tx, e.Key, e.Value); err != nil {
				return err
			}
		}
		return nil
	})
}

func setKV(ctx context.Context, conn db.DBTX, key, value string) error {
	if _, err := conn.ExecContext(ctx, upsertKV, key, value, nowUTC()); err != nil {
		return fmt.Errorf("writing key %q: %w", key, err)
	}
	return nil
}
