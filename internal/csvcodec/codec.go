// Package csvcodec converts sessions to and from the journal's CSV export
// format: a fixed header, every cell double-quoted, inner quotes doubled,
// list fields joined with ';'.
package csvcodec

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/rcliao/learning-journal/internal/model"
)

// ErrEmptyInput is returned when the text has no header plus data row.
var ErrEmptyInput = errors.New("csv empty: need a header and at least one row")

// Header is the fixed column order of an export.
var Header = []string{
	"id", "sessionNumber", "date", "dayOfWeek", "startTime", "endTime", "durationMinutes",
	"topicTitle", "category", "sessionType", "difficultyLevel", "focusLevel",
	"understandingLevel", "completionStatus", "repeatNeeded", "resourceType",
	"resourceTitle", "resourcePlatform", "resourceLink", "learningModes", "primaryMode",
	"languageUsed", "toolsUsed", "conceptType", "keyInsights", "confusions",
	"personalNotes", "mentalState", "physicalState", "mentalEffortScore",
	"createdAt", "updatedAt",
}

// ListSeparator joins the entries of set-valued columns. Entries are
// trimmed on decode and cannot themselves contain the separator; the
// repository rejects such entries before they are stored.
const ListSeparator = ";"

// Encode renders sessions as CSV text, header first, one line per session.
// List entries containing ListSeparator or surrounding spaces do not
// survive Decode unchanged.
func Encode(sessions []model.Session) string {
	var b strings.Builder
	b.WriteString(strings.Join(Header, ","))
	b.WriteByte('\n')

	for _, s := range sessions {
		for i, name := range Header {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(quote(field(s, name)))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func quote(v string) string {
	return `"` + strings.ReplaceAll(v, `"`, `""`) + `"`
}

// field returns the text form of one column of s.
func field(s model.Session, name string) string {
	switch name {
	case "id":
		return s.ID
	case "sessionNumber":
		return strconv.Itoa(s.SessionNumber)
	case "date":
		return s.Date
	case "dayOfWeek":
		return s.DayOfWeek
	case "startTime":
		return s.StartTime
	case "endTime":
		return s.EndTime
	case "durationMinutes":
		return strconv.Itoa(s.DurationMinutes)
	case "topicTitle":
		return s.TopicTitle
	case "category":
		return s.Category
	case "sessionType":
		return s.SessionType
	case "difficultyLevel":
		return s.DifficultyLevel
	case "focusLevel":
		return s.FocusLevel
	case "understandingLevel":
		return s.UnderstandingLevel
	case "completionStatus":
		return s.CompletionStatus
	case "repeatNeeded":
		return strconv.FormatBool(s.RepeatNeeded)
	case "resourceType":
		return s.ResourceType
	case "resourceTitle":
		return s.ResourceTitle
	case "resourcePlatform":
		return s.ResourcePlatform
	case "resourceLink":
		return s.ResourceLink
	case "learningModes":
		return strings.Join(s.LearningModes, ListSeparator)
	case "primaryMode":
		return s.PrimaryMode
	case "languageUsed":
		return strings.Join(s.LanguageUsed, ListSeparator)
	case "toolsUsed":
		return strings.Join(s.ToolsUsed, ListSeparator)
	case "conceptType":
		return s.ConceptType
	case "keyInsights":
		return s.KeyInsights
	case "confusions":
		return s.Confusions
	case "personalNotes":
		return s.PersonalNotes
	case "mentalState":
		return s.MentalState
	case "physicalState":
		return s.PhysicalState
	case "mentalEffortScore":
		if s.MentalEffortScore == nil {
			return ""
		}
		return strconv.Itoa(*s.MentalEffortScore)
	case "createdAt":
		return formatTime(s.CreatedAt)
	case "updatedAt":
		return formatTime(s.UpdatedAt)
	}
	return ""
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}
