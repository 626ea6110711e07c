package journal

import (
	"fmt"
	"strings"
	"time"

	"github.com/rcliao/learning-journal/internal/csvcodec"
	"github.com/rcliao/learning-journal/internal/model"
)

func validateDraft(d model.Draft) error {
	var errs []FieldError

	date := strings.TrimSpace(d.Date)
	if date == "" {
		errs = append(errs, FieldError{Field: "date", Message: "required"})
	} else if _, err := time.Parse(model.DateLayout, date); err != nil {
		errs = append(errs, FieldError{Field: "date", Message: "must be YYYY-MM-DD"})
	}
	if strings.TrimSpace(d.TopicTitle) == "" {
		errs = append(errs, FieldError{Field: "topicTitle", Message: "required"})
	}
	if d.DurationMinutes < 0 {
		errs = append(errs, FieldError{Field: "durationMinutes", Message: "must not be negative"})
	}
	errs = checkList(errs, "learningModes", d.LearningModes)
	errs = checkList(errs, "languageUsed", d.LanguageUsed)
	errs = checkList(errs, "toolsUsed", d.ToolsUsed)

	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}

func validatePatch(p model.Patch) error {
	var errs []FieldError

	if p.Date != nil {
		if _, err := time.Parse(model.DateLayout, strings.TrimSpace(*p.Date)); err != nil {
			errs = append(errs, FieldError{Field: "date", Message: "must be YYYY-MM-DD"})
		}
	}
	if p.TopicTitle != nil && strings.TrimSpace(*p.TopicTitle) == "" {
		errs = append(errs, FieldError{Field: "topicTitle", Message: "required"})
	}
	if p.DurationMinutes != nil && *p.DurationMinutes < 0 {
		errs = append(errs, FieldError{Field: "durationMinutes", Message: "must not be negative"})
	}
	if p.LearningModes != nil {
		errs = checkList(errs, "learningModes", *p.LearningModes)
	}
	if p.LanguageUsed != nil {
		errs = checkList(errs, "languageUsed", *p.LanguageUsed)
	}
	if p.ToolsUsed != nil {
		errs = checkList(errs, "toolsUsed", *p.ToolsUsed)
	}

	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}

// checkList rejects entries containing the CSV list separator, which could
// not be told apart from two entries after an export.
func checkList(errs []FieldError, field string, entries []string) []FieldError {
	for _, e := range entries {
		if strings.Contains(e, csvcodec.ListSeparator) {
			return append(errs, FieldError{Field: field, Message: fmt.Sprintf("entry %q must not contain %q", e, csvcodec.ListSeparator)})
		}
	}
	return errs
}

// normalizeList trims entries and drops blank ones, matching what a CSV
// round trip yields.
func normalizeList(entries []string) []string {
	if entries == nil {
		return nil
	}
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		if e = strings.TrimSpace(e); e != "" {
			out = append(out, e)
		}
	}
	return out
}
