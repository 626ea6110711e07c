package cli

import (
	"github.com/rcliao/learning-journal/internal/model"
	"github.com/spf13/pflag"
)

// textField maps a string flag onto the matching Draft and Patch members.
type textField struct {
	flag  string
	usage string
	draft func(*model.Draft) *string
	patch func(*model.Patch) **string
}

// listField is textField for the set-valued members.
type listField struct {
	flag  string
	usage string
	draft func(*model.Draft) *[]string
	patch func(*model.Patch) **[]string
}

var textFields = []textField{
	{"date", "Session date (YYYY-MM-DD)", func(d *model.Draft) *string { return &d.Date }, func(p *model.Patch) **string { return &p.Date }},
	{"day", "Day of week (derived from date when empty)", func(d *model.Draft) *string { return &d.DayOfWeek }, func(p *model.Patch) **string { return &p.DayOfWeek }},
	{"start", "Start time (HH:MM)", func(d *model.Draft) *string { return &d.StartTime }, func(p *model.Patch) **string { return &p.StartTime }},
	{"end", "End time (HH:MM)", func(d *model.Draft) *string { return &d.EndTime }, func(p *model.Patch) **string { return &p.EndTime }},
	{"topic", "Topic title", func(d *model.Draft) *string { return &d.TopicTitle }, func(p *model.Patch) **string { return &p.TopicTitle }},
	{"category", "Category", func(d *model.Draft) *string { return &d.Category }, func(p *model.Patch) **string { return &p.Category }},
	{"type", "Session type", func(d *model.Draft) *string { return &d.SessionType }, func(p *model.Patch) **string { return &p.SessionType }},
	{"difficulty", "Difficulty level", func(d *model.Draft) *string { return &d.DifficultyLevel }, func(p *model.Patch) **string { return &p.DifficultyLevel }},
	{"focus", "Focus level", func(d *model.Draft) *string { return &d.FocusLevel }, func(p *model.Patch) **string { return &p.FocusLevel }},
	{"understanding", "Understanding level", func(d *model.Draft) *string { return &d.UnderstandingLevel }, func(p *model.Patch) **string { return &p.UnderstandingLevel }},
	{"status", "Completion status", func(d *model.Draft) *string { return &d.CompletionStatus }, func(p *model.Patch) **string { return &p.CompletionStatus }},
	{"resource-type", "Resource type", func(d *model.Draft) *string { return &d.ResourceType }, func(p *model.Patch) **string { return &p.ResourceType }},
	{"resource-title", "Resource title", func(d *model.Draft) *string { return &d.ResourceTitle }, func(p *model.Patch) **string { return &p.ResourceTitle }},
	{"platform", "Resource platform", func(d *model.Draft) *string { return &d.ResourcePlatform }, func(p *model.Patch) **string { return &p.ResourcePlatform }},
	{"link", "Resource link", func(d *model.Draft) *string { return &d.ResourceLink }, func(p *model.Patch) **string { return &p.ResourceLink }},
	{"primary-mode", "Primary learning mode", func(d *model.Draft) *string { return &d.PrimaryMode }, func(p *model.Patch) **string { return &p.PrimaryMode }},
	{"concept", "Concept type", func(d *model.Draft) *string { return &d.ConceptType }, func(p *model.Patch) **string { return &p.ConceptType }},
	{"insights", "Key insights", func(d *model.Draft) *string { return &d.KeyInsights }, func(p *model.Patch) **string { return &p.KeyInsights }},
	{"confusions", "Open confusions", func(d *model.Draft) *string { return &d.Confusions }, func(p *model.Patch) **string { return &p.Confusions }},
	{"notes", "Personal notes", func(d *model.Draft) *string { return &d.PersonalNotes }, func(p *model.Patch) **string { return &p.PersonalNotes }},
	{"mental-state", "Mental state", func(d *model.Draft) *string { return &d.MentalState }, func(p *model.Patch) **string { return &p.MentalState }},
	{"physical-state", "Physical state", func(d *model.Draft) *string { return &d.PhysicalState }, func(p *model.Patch) **string { return &p.PhysicalState }},
}

var listFields = []listField{
	{"modes", "Learning modes (comma-separated)", func(d *model.Draft) *[]string { return &d.LearningModes }, func(p *model.Patch) **[]string { return &p.LearningModes }},
	{"languages", "Languages used (comma-separated)", func(d *model.Draft) *[]string { return &d.LanguageUsed }, func(p *model.Patch) **[]string { return &p.LanguageUsed }},
	{"tools", "Tools used (comma-separated)", func(d *model.Draft) *[]string { return &d.ToolsUsed }, func(p *model.Patch) **[]string { return &p.ToolsUsed }},
}

// addSessionFlags registers one flag per mutable session field.
func addSessionFlags(fs *pflag.FlagSet) {
	for _, f := range textFields {
		fs.String(f.flag, "", f.usage)
	}
	for _, f := range listFields {
		fs.StringSlice(f.flag, nil, f.usage)
	}
	fs.Int("duration", 0, "Duration in minutes (derived from start/end when 0)")
	fs.Bool("repeat", false, "Mark the topic for repetition")
	fs.Int("effort", 0, "Mental effort score")
}

// draftFromFlags builds a Draft from every registered session flag.
func draftFromFlags(fs *pflag.FlagSet) model.Draft {
	var d model.Draft
	for _, f := range textFields {
		v, _ := fs.GetString(f.flag)
		*f.draft(&d) = v
	}
	for _, f := range listFields {
		v, _ := fs.GetStringSlice(f.flag)
		*f.draft(&d) = v
	}
	d.DurationMinutes, _ = fs.GetInt("duration")
	d.RepeatNeeded, _ = fs.GetBool("repeat")
	if fs.Changed("effort") {
		v, _ := fs.GetInt("effort")
		d.MentalEffortScore = &v
	}
	return d
}

// patchFromFlags builds a Patch from the flags the user actually set, so an
// omitted flag leaves the stored value alone.
func patchFromFlags(fs *pflag.FlagSet) model.Patch {
	var p model.Patch
	for _, f := range textFields {
		if !fs.Changed(f.flag) {
			continue
		}
		v, _ := fs.GetString(f.flag)
		*f.patch(&p) = &v
	}
	for _, f := range listFields {
		if !fs.Changed(f.flag) {
			continue
		}
		v, _ := fs.GetStringSlice(f.flag)
		if v == nil {
			v = []string{}
		}
		*f.patch(&p) = &v
	}
	if fs.Changed("duration") {
		v, _ := fs.GetInt("duration")
		p.DurationMinutes = &v
	}
	if fs.Changed("repeat") {
		v, _ := fs.GetBool("repeat")
		p.RepeatNeeded = &v
	}
	if fs.Changed("effort") {
		v, _ := fs.GetInt("effort")
		p.MentalEffortScore = &v
	}
	if fs.Lookup("clear-effort") != nil {
		p.ClearMentalEffort, _ = fs.GetBool("clear-effort")
	}
	return p
}
