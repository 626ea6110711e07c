// Package analytics derives aggregate statistics from a session list.
// Every function is pure: no persistence, no mutation of its input.
package analytics

import (
	"math"
	"sort"
	"time"

	"github.com/rcliao/learning-journal/internal/model"
)

// Summary holds the aggregates shown on the journal dashboard.
type Summary struct {
	TotalSessions  int            `json:"total_sessions" yaml:"total_sessions"`
	TotalMinutes   int            `json:"total_minutes" yaml:"total_minutes"`
	TotalHours     float64        `json:"total_hours" yaml:"total_hours"`
	CategoryCounts map[string]int `json:"category_counts" yaml:"category_counts"`
	CurrentStreak  int            `json:"current_streak" yaml:"current_streak"`
}

// CategoryCount is one row of a category breakdown.
type CategoryCount struct {
	Category string
	Count    int
}

// Summarize computes every aggregate. today is now's calendar day in loc.
func Summarize(sessions []model.Session, now time.Time, loc *time.Location) Summary {
	if loc == nil {
		loc = time.UTC
	}
	minutes := TotalMinutes(sessions)
	return Summary{
		TotalSessions:  TotalSessions(sessions),
		TotalMinutes:   minutes,
		TotalHours:     math.Round(float64(minutes)/60*10) / 10,
		CategoryCounts: CategoryCounts(sessions),
		CurrentStreak:  CurrentStreak(sessions, now.In(loc)),
	}
}

// TotalSessions returns the number of sessions.
func TotalSessions(sessions []model.Session) int {
	return len(sessions)
}

// TotalMinutes sums the durations. Negative durations count as 0.
func TotalMinutes(sessions []model.Session) int {
	total := 0
	for _, s := range sessions {
		if s.DurationMinutes > 0 {
			total += s.DurationMinutes
		}
	}
	return total
}

// CategoryCounts maps each category that appears to its session count.
func CategoryCounts(sessions []model.Session) map[string]int {
	counts := make(map[string]int)
	for _, s := range sessions {
		counts[s.Category]++
	}
	return counts
}

// SortedCategories orders counts by count descending, then name.
func SortedCategories(counts map[string]int) []CategoryCount {
	out := make([]CategoryCount, 0, len(counts))
	for c, n := range counts {
		out = append(out, CategoryCount{Category: c, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count == out[j].Count {
			return out[i].Category < out[j].Category
		}
		return out[i].Count > out[j].Count
	})
	return out
}

// CurrentStreak counts consecutive calendar days with at least one session,
// walking back from today. A day without sessions ends the run, so a
// journal with nothing logged today has a streak of 0. Dates that do not
// parse, and dates after today, are ignored.
func CurrentStreak(sessions []model.Session, today time.Time) int {
	start := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)

	seen := make(map[time.Time]bool)
	var days []time.Time
	for _, s := range sessions {
		d, err := time.Parse(model.DateLayout, s.Date)
		if err != nil || seen[d] {
			continue
		}
		seen[d] = true
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].After(days[j]) })

	streak := 0
	for _, d := range days {
		offset := int(start.Sub(d).Hours() / 24)
		if offset < 0 {
			continue
		}
		if offset == streak {
			streak++
		} else if offset > streak {
			break
		}
	}
	return streak
}
