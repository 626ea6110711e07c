package journal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDurationFromTimes(t *testing.T) {
	tests := []struct {
		name             string
		date, start, end string
		want             int
	}{
		{name: "same day", date: "2024-01-01", start: "09:00", end: "10:30", want: 90},
		{name: "crosses midnight", date: "2024-01-01", start: "23:30", end: "00:15", want: 45},
		{name: "equal times", date: "2024-01-01", start: "12:00", end: "12:00", want: 0},
		{name: "seconds round to nearest minute", date: "2024-01-01", start: "10:00:00", end: "10:00:40", want: 1},
		{name: "seconds round down", date: "2024-01-01", start: "10:00:00", end: "10:00:20", want: 0},
		{name: "bad start", date: "2024-01-01", start: "nine", end: "10:00", want: 0},
		{name: "empty end", date: "2024-01-01", start: "09:00", end: "", want: 0},
		{name: "bad date", date: "01/01/2024", start: "09:00", end: "10:00", want: 0},
		{name: "dst date is plain calendar math", date: "2024-03-10", start: "01:00", end: "04:00", want: 180},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DurationFromTimes(tt.date, tt.start, tt.end))
		})
	}
}

func TestDayOfWeek(t *testing.T) {
	assert.Equal(t, "Monday", DayOfWeek("2024-01-01"))
	assert.Equal(t, "Sunday", DayOfWeek(" 2024-03-10 "))
	assert.Equal(t, "", DayOfWeek("not a date"))
}
