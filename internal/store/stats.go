package store

import (
	"context"
	"fmt"
	"os"
)

// Stats holds database statistics.
type Stats struct {
	DBPath      string      `json:"db_path" yaml:"db_path"`
	DBSizeBytes int64       `json:"db_size_bytes" yaml:"db_size_bytes"`
	Slots       []SlotStats `json:"slots" yaml:"slots"`
}

// SlotStats describes one stored slot.
type SlotStats struct {
	Key       string `json:"key" yaml:"key"`
	Bytes     int    `json:"bytes" yaml:"bytes"`
	UpdatedAt string `json:"updated_at" yaml:"updated_at"`
}

// Stats returns database statistics.
func (s *SQLiteKV) Stats(ctx context.Context, dbPath string) (*Stats, error) {
	st := &Stats{DBPath: dbPath}

	// DB file size
	if info, err := os.Stat(dbPath); err == nil {
		st.DBSizeBytes = info.Size()
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT key, length(CAST(value AS BLOB)), updated_at FROM slots ORDER BY key`)
	if err != nil {
		return st, fmt.Errorf("slot stats: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var slot SlotStats
		if err := rows.Scan(&slot.Key, &slot.Bytes, &slot.UpdatedAt); err != nil {
			return st, fmt.Errorf("scan slot: %w", err)
		}
		st.Slots = append(st.Slots, slot)
	}

	return st, rows.Err()
}
