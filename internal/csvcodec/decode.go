package csvcodec

import (
	"strconv"
	"strings"
	"time"

	"github.com/rcliao/learning-journal/internal/model"
)

// Options supplies the defaults Decode needs for incomplete rows.
type Options struct {
	Now   func() time.Time // timestamp for missing createdAt/updatedAt
	NewID func() string    // id for rows without one
}

// Decode parses CSV text produced by Encode (or a hand-edited copy of it).
// The header row maps column positions to field names; unknown columns are
// ignored. Fewer than two non-empty rows fails with ErrEmptyInput.
func Decode(text string, opts Options) ([]model.Session, error) {
	rows := splitRows(text)
	if len(rows) < 2 {
		return nil, ErrEmptyInput
	}

	now := time.Now().UTC()
	if opts.Now != nil {
		now = opts.Now()
	}

	header := ParseLine(strings.TrimPrefix(rows[0], byteOrderMark))
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	sessions := make([]model.Session, 0, len(rows)-1)
	for _, row := range rows[1:] {
		cols := ParseLine(row)
		var s model.Session
		for i, name := range header {
			val := ""
			if i < len(cols) {
				val = cols[i]
			}
			setField(&s, name, val)
		}

		if s.ID == "" && opts.NewID != nil {
			s.ID = opts.NewID()
		}
		if s.CreatedAt.IsZero() {
			s.CreatedAt = now
		}
		if s.UpdatedAt.IsZero() {
			s.UpdatedAt = now
		}
		sessions = append(sessions, s)
	}
	return sessions, nil
}

const byteOrderMark = "\uFEFF"

// splitRows breaks text into rows on \n or \r\n outside quoted regions and
// drops empty rows. If a quote is still open at the end of the input the
// quoting is unbalanced, and every physical line becomes its own row.
func splitRows(text string) []string {
	var rows []string
	var cur strings.Builder
	inQuotes := false

	flush := func() {
		row := strings.TrimSuffix(cur.String(), "\r")
		if row != "" {
			rows = append(rows, row)
		}
		cur.Reset()
	}

	for _, ch := range text {
		switch {
		case ch == '"':
			inQuotes = !inQuotes
			cur.WriteRune(ch)
		case ch == '\n' && !inQuotes:
			flush()
		default:
			cur.WriteRune(ch)
		}
	}
	flush()

	if inQuotes {
		return splitLines(text)
	}
	return rows
}

func splitLines(text string) []string {
	var rows []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSuffix(line, "\r"); line != "" {
			rows = append(rows, line)
		}
	}
	return rows
}

// ParseLine splits one CSV row into fields. It is a two-state machine:
// outside quotes a comma ends the field; inside quotes a doubled quote is
// a literal quote and a comma is data.
func ParseLine(line string) []string {
	var fields []string
	var cur strings.Builder
	inQuotes := false

	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		ch := runes[i]
		switch {
		case ch == '"' && inQuotes && i+1 < len(runes) && runes[i+1] == '"':
			cur.WriteRune('"')
			i++
		case ch == '"':
			inQuotes = !inQuotes
		case ch == ',' && !inQuotes:
			fields = append(fields, cur.String())
			cur.Reset()
		default:
			cur.WriteRune(ch)
		}
	}
	fields = append(fields, cur.String())
	return fields
}

func splitList(v string) []string {
	out := []string{}
	for _, part := range strings.Split(v, ListSeparator) {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func parseInt(v string) int {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0
	}
	return n
}

func parseTime(v string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, strings.TrimSpace(v))
	if err != nil {
		return time.Time{}
	}
	return t
}

// setField assigns the text value of one column to s.
func setField(s *model.Session, name, v string) {
	switch name {
	case "id":
		s.ID = strings.TrimSpace(v)
	case "sessionNumber":
		s.SessionNumber = parseInt(v)
	case "date":
		s.Date = strings.TrimSpace(v)
	case "dayOfWeek":
		s.DayOfWeek = v
	case "startTime":
		s.StartTime = v
	case "endTime":
		s.EndTime = v
	case "durationMinutes":
		s.DurationMinutes = parseInt(v)
	case "topicTitle":
		s.TopicTitle = v
	case "category":
		s.Category = v
	case "sessionType":
		s.SessionType = v
	case "difficultyLevel":
		s.DifficultyLevel = v
	case "focusLevel":
		s.FocusLevel = v
	case "understandingLevel":
		s.UnderstandingLevel = v
	case "completionStatus":
		s.CompletionStatus = v
	case "repeatNeeded":
		s.RepeatNeeded = strings.EqualFold(strings.TrimSpace(v), "true")
	case "resourceType":
		s.ResourceType = v
	case "resourceTitle":
		s.ResourceTitle = v
	case "resourcePlatform":
		s.ResourcePlatform = v
	case "resourceLink":
		s.ResourceLink = v
	case "learningModes":
		s.LearningModes = splitList(v)
	case "primaryMode":
		s.PrimaryMode = v
	case "languageUsed":
		s.LanguageUsed = splitList(v)
	case "toolsUsed":
		s.ToolsUsed = splitList(v)
	case "conceptType":
		s.ConceptType = v
	case "keyInsights":
		s.KeyInsights = v
	case "confusions":
		s.Confusions = v
	case "personalNotes":
		s.PersonalNotes = v
	case "mentalState":
		s.MentalState = v
	case "physicalState":
		s.PhysicalState = v
	case "mentalEffortScore":
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			s.MentalEffortScore = &n
		}
	case "createdAt":
		s.CreatedAt = parseTime(v)
	case "updatedAt":
		s.UpdatedAt = parseTime(v)
	}
}
