package journal

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rcliao/learning-journal/internal/analytics"
	"github.com/rcliao/learning-journal/internal/csvcodec"
	"github.com/rcliao/learning-journal/internal/model"
)

// Import appends records to the stored list. Missing or colliding ids get
// a fresh id and missing or colliding session numbers get the next free
// number, so both stay unique. Returns the number of records appended.
func (r *Repository) Import(ctx context.Context, records []model.Session) (int, error) {
	if len(records) == 0 {
		return 0, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	sessions, err := r.records.Load(ctx)
	if err != nil {
		return 0, err
	}

	ids := idSet(sessions)
	numbers := make(map[int]bool, len(sessions))
	for _, s := range sessions {
		numbers[s.SessionNumber] = true
	}
	next := NextSessionNumber(sessions)
	now := r.clock.Now()
	renumbered := 0

	for _, rec := range records {
		if rec.ID == "" || ids[rec.ID] {
			rec.ID = r.uniqueID(ids)
		}
		if rec.SessionNumber <= 0 || numbers[rec.SessionNumber] {
			rec.SessionNumber = next
			renumbered++
		}
		if rec.SessionNumber >= next {
			next = rec.SessionNumber + 1
		}
		ids[rec.ID] = true
		numbers[rec.SessionNumber] = true

		if rec.CreatedAt.IsZero() {
			rec.CreatedAt = now
		}
		if rec.UpdatedAt.IsZero() {
			rec.UpdatedAt = now
		}
		if rec.UpdatedAt.Before(rec.CreatedAt) {
			rec.UpdatedAt = rec.CreatedAt
		}
		if rec.DayOfWeek == "" {
			rec.DayOfWeek = DayOfWeek(rec.Date)
		}
		sessions = append(sessions, rec)
	}

	if err := r.records.Save(ctx, sessions); err != nil {
		return 0, fmt.Errorf("import sessions: %w", err)
	}

	r.log.InfoContext(ctx, "sessions imported",
		slog.Int("count", len(records)),
		slog.Int("renumbered", renumbered),
	)
	return len(records), nil
}

// ImportCSV decodes text and appends the records. Input with fewer than
// two non-empty lines fails with csvcodec.ErrEmptyInput and writes nothing.
func (r *Repository) ImportCSV(ctx context.Context, text string) (int, error) {
	records, err := csvcodec.Decode(text, csvcodec.Options{
		Now:   r.clock.Now,
		NewID: r.ids.New,
	})
	if err != nil {
		return 0, err
	}
	return r.Import(ctx, records)
}

// ExportCSV encodes every stored session.
func (r *Repository) ExportCSV(ctx context.Context) (string, error) {
	sessions, err := r.records.Load(ctx)
	if err != nil {
		return "", err
	}
	return csvcodec.Encode(sessions), nil
}

// Stats summarizes the stored sessions, counting the streak from today in
// the repository's time zone.
func (r *Repository) Stats(ctx context.Context) (analytics.Summary, error) {
	sessions, err := r.records.Load(ctx)
	if err != nil {
		return analytics.Summary{}, err
	}
	return analytics.Summarize(sessions, r.clock.Now(), r.loc), nil
}
