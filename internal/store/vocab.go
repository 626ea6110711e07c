package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"slices"
	"strings"
)

// Vocabulary is an append-only ordered set of names kept in one slot.
type Vocabulary struct {
	kv       KV
	key      string
	defaults []string
	log      *slog.Logger
}

// List returns the names in insertion order, seeding the defaults on first access.
func (v *Vocabulary) List(ctx context.Context) ([]string, error) {
	raw, ok, err := v.kv.Get(ctx, v.key)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", v.key, err)
	}
	if !ok {
		if err := v.write(ctx, v.defaults); err != nil {
			return nil, err
		}
		return slices.Clone(v.defaults), nil
	}

	var names []string
	if err := json.Unmarshal([]byte(raw), &names); err != nil {
		v.log.Warn("malformed vocabulary slot, using defaults",
			slog.String("key", v.key),
			slog.String("error", err.Error()),
		)
		return slices.Clone(v.defaults), nil
	}
	return names, nil
}

// Add appends name unless it is empty or already present. It reports
// whether the set changed.
func (v *Vocabulary) Add(ctx context.Context, name string) (bool, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return false, nil
	}

	names, err := v.List(ctx)
	if err != nil {
		return false, err
	}
	if slices.Contains(names, name) {
		return false, nil
	}

	names = append(names, name)
	if err := v.write(ctx, names); err != nil {
		return false, err
	}
	v.log.Info("vocabulary entry added", slog.String("key", v.key), slog.String("name", name))
	return true, nil
}

// Contains reports whether name is in the set.
func (v *Vocabulary) Contains(ctx context.Context, name string) (bool, error) {
	names, err := v.List(ctx)
	if err != nil {
		return false, err
	}
	return slices.Contains(names, name), nil
}

func (v *Vocabulary) ensure(ctx context.Context) error {
	_, ok, err := v.kv.Get(ctx, v.key)
	if err != nil {
		return fmt.Errorf("check %s: %w", v.key, err)
	}
	if ok {
		return nil
	}
	return v.write(ctx, v.defaults)
}

func (v *Vocabulary) write(ctx context.Context, names []string) error {
	b, err := json.Marshal(names)
	if err != nil {
		return fmt.Errorf("encode %s: %w", v.key, err)
	}
	if err := v.kv.Set(ctx, v.key, string(b)); err != nil {
		return fmt.Errorf("save %s: %w", v.key, err)
	}
	return nil
}
