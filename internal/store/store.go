// Package store provides the key-value storage port, its SQLite and
// in-memory implementations, and the journal record store built on top.
package store

import (
	"context"
	"sort"
	"sync"
)

// KV is a durable key-value store of UTF-8 text slots.
type KV interface {
	// Get returns the value stored under key. ok is false when the key is absent.
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Set overwrites the value under key in a single write.
	Set(ctx context.Context, key, value string) error

	// SetAll writes every key/value pair in one all-or-nothing batch.
	SetAll(ctx context.Context, values map[string]string) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}

// MemoryKV is an in-memory KV used in tests and for throwaway journals.
type MemoryKV struct {
	mu    sync.Mutex
	slots map[string]string
	sets  int
}

// NewMemoryKV returns an empty in-memory store.
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{slots: map[string]string{}}
}

func (m *MemoryKV) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.slots[key]
	return v, ok, nil
}

func (m *MemoryKV) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slots[key] = value
	m.sets++
	return nil
}

// SetAll counts as a single write.
func (m *MemoryKV) SetAll(_ context.Context, values map[string]string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for k, v := range values {
		m.slots[k] = v
	}
	m.sets++
	return nil
}

func (m *MemoryKV) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.slots, key)
	return nil
}

// Keys returns the stored keys in sorted order.
func (m *MemoryKV) Keys() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	keys := make([]string, 0, len(m.slots))
	for k := range m.slots {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Writes returns how many Set and SetAll calls the store has seen.
func (m *MemoryKV) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sets
}
