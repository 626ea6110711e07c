package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/rcliao/learning-journal/internal/model"
)

var today = time.Date(2024, 5, 10, 15, 4, 0, 0, time.UTC)

func onDay(offset int) model.Session {
	return model.Session{Date: today.AddDate(0, 0, -offset).Format(model.DateLayout)}
}

func TestCurrentStreak(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		sessions []model.Session
		want     int
	}{
		{name: "no sessions", sessions: nil, want: 0},
		{name: "three consecutive days", sessions: []model.Session{onDay(0), onDay(1), onDay(2)}, want: 3},
		{name: "gap at yesterday", sessions: []model.Session{onDay(0), onDay(2)}, want: 1},
		{name: "nothing today", sessions: []model.Session{onDay(1), onDay(2)}, want: 0},
		{name: "duplicates and unsorted", sessions: []model.Session{onDay(1), onDay(0), onDay(1), onDay(0), onDay(2)}, want: 3},
		{name: "future date ignored", sessions: []model.Session{onDay(-1), onDay(0)}, want: 1},
		{name: "unparsable date ignored", sessions: []model.Session{{Date: "yesterday"}, onDay(0)}, want: 1},
		{name: "gap later on", sessions: []model.Session{onDay(0), onDay(1), onDay(3), onDay(4)}, want: 2},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, CurrentStreak(tt.sessions, today))
		})
	}
}

func TestCurrentStreak_UsesCalendarDayOfToday(t *testing.T) {
	t.Parallel()

	loc := time.FixedZone("UTC+9", 9*3600)
	// 2024-05-10 23:30 UTC is already 2024-05-11 in UTC+9.
	now := time.Date(2024, 5, 10, 23, 30, 0, 0, time.UTC)
	sessions := []model.Session{{Date: "2024-05-11"}, {Date: "2024-05-10"}}

	assert.Equal(t, 2, CurrentStreak(sessions, now.In(loc)))
	assert.Equal(t, 1, CurrentStreak(sessions, now))
}

func TestTotals(t *testing.T) {
	t.Parallel()

	sessions := []model.Session{
		{Category: "Web", DurationMinutes: 30},
		{Category: "ML", DurationMinutes: 45},
		{Category: "Web", DurationMinutes: -5},
		{Category: "Web"},
	}

	assert.Equal(t, 4, TotalSessions(sessions))
	assert.Equal(t, 75, TotalMinutes(sessions))
	assert.Equal(t, map[string]int{"Web": 3, "ML": 1}, CategoryCounts(sessions))
}

func TestCategoryCounts_Empty(t *testing.T) {
	t.Parallel()
	assert.Empty(t, CategoryCounts(nil))
}

func TestSortedCategories(t *testing.T) {
	t.Parallel()

	got := SortedCategories(map[string]int{"Web": 2, "ML": 5, "IoT": 2})
	assert.Equal(t, []CategoryCount{
		{Category: "ML", Count: 5},
		{Category: "IoT", Count: 2},
		{Category: "Web", Count: 2},
	}, got)
}

func TestSummarize(t *testing.T) {
	t.Parallel()

	s0 := onDay(0)
	s0.DurationMinutes = 90
	s0.Category = "Systems"
	s1 := onDay(1)
	s1.DurationMinutes = 20
	s1.Category = "Systems"

	got := Summarize([]model.Session{s0, s1}, today, time.UTC)
	assert.Equal(t, 2, got.TotalSessions)
	assert.Equal(t, 110, got.TotalMinutes)
	assert.InDelta(t, 1.8, got.TotalHours, 0.0001)
	assert.Equal(t, map[string]int{"Systems": 2}, got.CategoryCounts)
	assert.Equal(t, 2, got.CurrentStreak)
}
