package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/rcliao/learning-journal/internal/analytics"
	"github.com/rcliao/learning-journal/internal/model"
	"gopkg.in/yaml.v3"
)

var (
	labelStyle  = lipgloss.NewStyle().Bold(true).Width(22)
	headerStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	numberStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Width(6)
	dateStyle   = lipgloss.NewStyle().Width(12)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// outputFormat returns --format, or text when stdout is a terminal and
// json when it is piped.
func outputFormat() string {
	if formatFlag != "" {
		return formatFlag
	}
	fd := os.Stdout.Fd()
	if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
		return "text"
	}
	return "json"
}

// render writes v to w in the selected output format.
func render(w io.Writer, format string, v any) error {
	switch strings.ToLower(format) {
	case "", "json":
		b, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case "text":
		return renderText(w, v)
	default:
		return fmt.Errorf("unknown format %q (want json, yaml or text)", format)
	}
}

func renderText(w io.Writer, v any) error {
	switch x := v.(type) {
	case *model.Session:
		_, err := fmt.Fprint(w, sessionText(x))
		return err
	case []model.Session:
		_, err := fmt.Fprint(w, sessionTable(x))
		return err
	case statsOutput:
		_, err := fmt.Fprint(w, summaryText(x.Summary))
		return err
	case []string:
		_, err := fmt.Fprintln(w, strings.Join(x, "\n"))
		return err
	default:
		// Anything without a dedicated layout reads fine as YAML.
		return render(w, "yaml", v)
	}
}

func line(label, value string) string {
	if value == "" {
		return ""
	}
	return labelStyle.Render(label) + value + "\n"
}

func sessionText(s *model.Session) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("#%d %s", s.SessionNumber, s.TopicTitle)) + "\n")
	b.WriteString(line("ID", s.ID))
	b.WriteString(line("Date", strings.TrimSpace(s.Date+" "+s.DayOfWeek)))
	if s.StartTime != "" || s.EndTime != "" {
		b.WriteString(line("Time", s.StartTime+" - "+s.EndTime))
	}
	b.WriteString(line("Duration", strconv.Itoa(s.DurationMinutes)+" min"))
	b.WriteString(line("Category", s.Category))
	b.WriteString(line("Session type", s.SessionType))
	b.WriteString(line("Difficulty", s.DifficultyLevel))
	b.WriteString(line("Focus", s.FocusLevel))
	b.WriteString(line("Understanding", s.UnderstandingLevel))
	b.WriteString(line("Status", s.CompletionStatus))
	if s.RepeatNeeded {
		b.WriteString(line("Repeat needed", "yes"))
	}
	b.WriteString(line("Resource", strings.TrimSpace(s.ResourceType+" "+s.ResourceTitle)))
	b.WriteString(line("Platform", s.ResourcePlatform))
	b.WriteString(line("Link", s.ResourceLink))
	b.WriteString(line("Learning modes", strings.Join(s.LearningModes, ", ")))
	b.WriteString(line("Primary mode", s.PrimaryMode))
	b.WriteString(line("Languages", strings.Join(s.LanguageUsed, ", ")))
	b.WriteString(line("Tools", strings.Join(s.ToolsUsed, ", ")))
	b.WriteString(line("Concept type", s.ConceptType))
	b.WriteString(line("Key insights", s.KeyInsights))
	b.WriteString(line("Confusions", s.Confusions))
	b.WriteString(line("Notes", s.PersonalNotes))
	b.WriteString(line("Mental state", s.MentalState))
	b.WriteString(line("Physical state", s.PhysicalState))
	if s.MentalEffortScore != nil {
		b.WriteString(line("Mental effort", strconv.Itoa(*s.MentalEffortScore)))
	}
	return b.String()
}

func sessionTable(sessions []model.Session) string {
	if len(sessions) == 0 {
		return mutedStyle.Render("no sessions") + "\n"
	}
	var b strings.Builder
	for _, s := range sessions {
		row := lipgloss.JoinHorizontal(lipgloss.Top,
			numberStyle.Render("#"+strconv.Itoa(s.SessionNumber)),
			dateStyle.Render(s.Date),
			s.TopicTitle,
			mutedStyle.Render(fmt.Sprintf("  [%s] %d min", s.Category, s.DurationMinutes)),
		)
		b.WriteString(row + "\n")
	}
	return b.String()
}

func summaryText(s analytics.Summary) string {
	var b strings.Builder
	b.WriteString(line("Total sessions", strconv.Itoa(s.TotalSessions)))
	b.WriteString(line("Total hours", strconv.FormatFloat(s.TotalHours, 'f', 1, 64)))
	b.WriteString(line("Current streak", strconv.Itoa(s.CurrentStreak)+" days"))
	cats := analytics.SortedCategories(s.CategoryCounts)
	if len(cats) > 0 {
		b.WriteString(headerStyle.Render("Categories") + "\n")
		for _, c := range cats {
			b.WriteString(line(c.Category, strconv.Itoa(c.Count)))
		}
	}
	return b.String()
}
