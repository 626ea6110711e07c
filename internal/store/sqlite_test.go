package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func newTestKV(t *testing.T) *SQLiteKV {
	t.Helper()
	dir := t.TempDir()
	s, err := NewSQLiteKV(filepath.Join(dir, "test.db"))
	if err != nil {
		t.Fatalf("create store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSetAndGet(t *testing.T) {
	ctx := context.Background()
	s := newTestKV(t)

	if err := s.Set(ctx, "hello", "world"); err != nil {
		t.Fatalf("set: %v", err)
	}

	got, ok, err := s.Get(ctx, "hello")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok {
		t.Fatal("expected key to be present")
	}
	if got != "world" {
		t.Errorf("expected 'world', got %q", got)
	}
}

func TestGetMissing(t *testing.T) {
	s := newTestKV(t)

	got, ok, err := s.Get(context.Background(), "missing")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if ok || got != "" {
		t.Errorf("expected absent key, got %q (ok=%v)", got, ok)
	}
}

func TestSetOverwrites(t *testing.T) {
	ctx := context.Background()
	s := newTestKV(t)

	s.Set(ctx, "k", "v1")
	s.Set(ctx, "k", "v2")

	got, _, _ := s.Get(ctx, "k")
	if got != "v2" {
		t.Errorf("expected 'v2', got %q", got)
	}
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	s := newTestKV(t)

	s.Set(ctx, "k", "data")
	if err := s.Delete(ctx, "k"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok, _ := s.Get(ctx, "k"); ok {
		t.Error("expected key to be gone after delete")
	}

	// Deleting again is not an error.
	if err := s.Delete(ctx, "k"); err != nil {
		t.Errorf("delete missing: %v", err)
	}
}

func TestSetAll(t *testing.T) {
	ctx := context.Background()
	s := newTestKV(t)

	s.Set(ctx, "a", "old")
	if err := s.SetAll(ctx, map[string]string{"a": "1", "b": "2"}); err != nil {
		t.Fatalf("set all: %v", err)
	}

	for key, want := range map[string]string{"a": "1", "b": "2"} {
		got, ok, err := s.Get(ctx, key)
		if err != nil || !ok {
			t.Fatalf("get %s: ok=%v err=%v", key, ok, err)
		}
		if got != want {
			t.Errorf("%s: expected %q, got %q", key, want, got)
		}
	}
}

func TestSetAll_CanceledWritesNothing(t *testing.T) {
	s := newTestKV(t)
	s.Set(context.Background(), "a", "old")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := s.SetAll(ctx, map[string]string{"a": "new", "b": "2"}); err == nil {
		t.Fatal("expected error for canceled context")
	}

	got, _, _ := s.Get(context.Background(), "a")
	if got != "old" {
		t.Errorf("expected 'old', got %q", got)
	}
	if _, ok, _ := s.Get(context.Background(), "b"); ok {
		t.Error("expected b to be absent")
	}
}

func TestPersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "journal.db")

	s, err := NewSQLiteKV(dbPath)
	if err != nil {
		t.Fatalf("create store: %v", err)
	}
	s.Set(ctx, SessionsKey, `[{"id":"a"}]`)
	s.Close()

	s2, err := NewSQLiteKV(dbPath)
	if err != nil {
		t.Fatalf("reopen store: %v", err)
	}
	defer s2.Close()

	got, ok, _ := s2.Get(ctx, SessionsKey)
	if !ok || got != `[{"id":"a"}]` {
		t.Errorf("expected value to survive reopen, got %q (ok=%v)", got, ok)
	}
}

func TestDBPathCreation(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "sub", "dir", "test.db")
	s, err := NewSQLiteKV(dbPath)
	if err != nil {
		t.Fatalf("create store: %v", err)
	}
	s.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("expected db file to be created")
	}
}

func TestStats(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	s, err := NewSQLiteKV(dbPath)
	if err != nil {
		t.Fatalf("create store: %v", err)
	}
	defer s.Close()

	s.Set(ctx, "b", "12345")
	s.Set(ctx, "a", "x")

	st, err := s.Stats(ctx, dbPath)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if st.DBPath != dbPath {
		t.Errorf("expected db path %q, got %q", dbPath, st.DBPath)
	}
	if len(st.Slots) != 2 {
		t.Fatalf("expected 2 slots, got %d", len(st.Slots))
	}
	if st.Slots[0].Key != "a" || st.Slots[1].Bytes != 5 {
		t.Errorf("unexpected slot stats: %+v", st.Slots)
	}
}
