package journal

import (
	"math"
	"strings"
	"time"

	"github.com/rcliao/learning-journal/internal/model"
)

const minutesPerDay = 24 * 60

var clockLayouts = []string{"15:04", "15:04:05"}

// DurationFromTimes returns the minutes between start and end on date.
// An end earlier than start is taken to cross midnight. Any unparsable
// input yields 0.
func DurationFromTimes(date, start, end string) int {
	day, err := time.Parse(model.DateLayout, strings.TrimSpace(date))
	if err != nil {
		return 0
	}
	s, ok := clockOn(day, start)
	if !ok {
		return 0
	}
	e, ok := clockOn(day, end)
	if !ok {
		return 0
	}

	diff := e.Sub(s).Minutes()
	if diff < 0 {
		diff += minutesPerDay
	}
	return int(math.Round(diff))
}

func clockOn(day time.Time, clock string) (time.Time, bool) {
	clock = strings.TrimSpace(clock)
	for _, layout := range clockLayouts {
		t, err := time.Parse(layout, clock)
		if err == nil {
			return day.Add(time.Duration(t.Hour())*time.Hour +
				time.Duration(t.Minute())*time.Minute +
				time.Duration(t.Second())*time.Second), true
		}
	}
	return time.Time{}, false
}

// DayOfWeek returns the English weekday name for a YYYY-MM-DD date, or ""
// when the date does not parse.
func DayOfWeek(date string) string {
	day, err := time.Parse(model.DateLayout, strings.TrimSpace(date))
	if err != nil {
		return ""
	}
	return day.Weekday().String()
}
