package journal

import (
	"context"
	"sort"
	"strings"

	"github.com/rcliao/learning-journal/internal/model"
)

// Filter holds parameters for listing sessions.
type Filter struct {
	Query       string // case-insensitive substring of topic, notes or category
	Category    string
	SessionType string
	Limit       int // 0 means no limit
}

// List returns the sessions matching f, newest date first and, within a
// date, latest start time first.
func (r *Repository) List(ctx context.Context, f Filter) ([]model.Session, error) {
	sessions, err := r.records.Load(ctx)
	if err != nil {
		return nil, err
	}
	return FilterSessions(sessions, f), nil
}

// FilterSessions applies f to sessions without touching the input slice.
func FilterSessions(sessions []model.Session, f Filter) []model.Session {
	query := strings.ToLower(strings.TrimSpace(f.Query))

	out := make([]model.Session, 0, len(sessions))
	for _, s := range sessions {
		if query != "" {
			text := strings.ToLower(s.TopicTitle + " " + s.PersonalNotes + " " + s.Category)
			if !strings.Contains(text, query) {
				continue
			}
		}
		if f.Category != "" && s.Category != f.Category {
			continue
		}
		if f.SessionType != "" && s.SessionType != f.SessionType {
			continue
		}
		out = append(out, s)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date == out[j].Date {
			return out[i].StartTime > out[j].StartTime
		}
		return out[i].Date > out[j].Date
	})

	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out
}
