package testutil

import (
	"context"
	"fmt"
	"sync"

	"github.com/alexanderramin/gatetrack/internal/repository"
)

// MemKV is an in-memory repository.KVStore. Every write is recorded in
// Writes so tests can assert on ordering.
type MemKV struct {
	mu     sync.Mutex
	data   map[string]string
	Writes []repository.Entry
}

func NewMemKV(seed map[string]string) *MemKV {
	data := make(map[string]string, len(seed))
	for k, v := range seed {
		data[k] = v
	}
	return &MemKV{data: data}
}

func (m *MemKV) Get(_ context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	if !ok {
		return "", fmt.Errorf("key %q: %w", key, repository.ErrNotFound)
	}
	return v, nil
}

func (m *MemKV) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	m.Writes = append(m.Writes, repository.Entry{Key: key, Value: value})
	return nil
}

func (m *MemKV) SetMany(ctx context.Context, entries []repository.Entry) error {
	for _, e := range entries {
		if err := m.Set(ctx, e.Key, e.Value); err != nil {
			return err
		}
	}
	return nil
}

// Value returns the stored value and whether the key exists.
func (m *MemKV) Value(key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	return v, ok
}

// FailingKV is a KVStore whose reads and writes fail on demand.
type FailingKV struct {
	*MemKV
	FailReads  bool
	FailWrites bool
	Err        error
}

func NewFailingKV(seed map[string]string) *FailingKV {
	return &FailingKV{MemKV: NewMemKV(seed), Err: ErrInjected}
}

func (f *FailingKV) Get(ctx context.Context, key string) (string, error) {
	if f.FailReads {
		return "", f.Err
	}
	return f.MemKV.Get(ctx, key)
}

func (f *FailingKV) Set(ctx context.Context, key, value string) error {
	if f.FailWrites {
		return f.Err
	}
	return f.MemKV.Set(ctx, key, value)
}

func (f *FailingKV) SetMany(ctx context.Context, entries []repository.Entry) error {
	if f.FailWrites {
		return f.Err
	}
	return f.MemKV.SetMany(ctx, entries)
}
