package repository

import "context"

// Entry is one key/value pair in the persistent store.
type Entry struct {
	Key   string
	Value string
}

// KVStore is a flat string key/value store. Values are opaque to the store;
// callers own their encoding.
type KVStore interface {
	// Get returns ErrNotFound (wrapped) when the key is absent.
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	// SetMany writes every entry or none of them.
	SetMany(ctx context.Context, entries []Entry) error
}
