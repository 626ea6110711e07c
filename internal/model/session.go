// Package model defines the core learning-journal data types.
package model

import "time"

// DateLayout is the calendar-date form used for Session.Date.
const DateLayout = "2006-01-02"

// Session represents one logged study session.
type Session struct {
	ID                 string    `json:"id" yaml:"id"`
	SessionNumber      int       `json:"sessionNumber" yaml:"sessionNumber"`
	Date               string    `json:"date" yaml:"date"`
	DayOfWeek          string    `json:"dayOfWeek,omitempty" yaml:"dayOfWeek,omitempty"`
	StartTime          string    `json:"startTime,omitempty" yaml:"startTime,omitempty"`
	EndTime            string    `json:"endTime,omitempty" yaml:"endTime,omitempty"`
	DurationMinutes    int       `json:"durationMinutes" yaml:"durationMinutes"`
	TopicTitle         string    `json:"topicTitle" yaml:"topicTitle"`
	Category           string    `json:"category" yaml:"category"`
	SessionType        string    `json:"sessionType,omitempty" yaml:"sessionType,omitempty"`
	DifficultyLevel    string    `json:"difficultyLevel,omitempty" yaml:"difficultyLevel,omitempty"`
	FocusLevel         string    `json:"focusLevel,omitempty" yaml:"focusLevel,omitempty"`
	UnderstandingLevel string    `json:"understandingLevel,omitempty" yaml:"understandingLevel,omitempty"`
	CompletionStatus   string    `json:"completionStatus,omitempty" yaml:"completionStatus,omitempty"`
	RepeatNeeded       bool      `json:"repeatNeeded" yaml:"repeatNeeded"`
	ResourceType       string    `json:"resourceType,omitempty" yaml:"resourceType,omitempty"`
	ResourceTitle      string    `json:"resourceTitle,omitempty" yaml:"resourceTitle,omitempty"`
	ResourcePlatform   string    `json:"resourcePlatform,omitempty" yaml:"resourcePlatform,omitempty"`
	ResourceLink       string    `json:"resourceLink,omitempty" yaml:"resourceLink,omitempty"`
	LearningModes      []string  `json:"learningModes" yaml:"learningModes,omitempty"`
	PrimaryMode        string    `json:"primaryMode,omitempty" yaml:"primaryMode,omitempty"`
	LanguageUsed       []string  `json:"languageUsed" yaml:"languageUsed,omitempty"`
	ToolsUsed          []string  `json:"toolsUsed" yaml:"toolsUsed,omitempty"`
	ConceptType        string    `json:"conceptType,omitempty" yaml:"conceptType,omitempty"`
	KeyInsights        string    `json:"keyInsights,omitempty" yaml:"keyInsights,omitempty"`
	Confusions         string    `json:"confusions,omitempty" yaml:"confusions,omitempty"`
	PersonalNotes      string    `json:"personalNotes,omitempty" yaml:"personalNotes,omitempty"`
	MentalState        string    `json:"mentalState,omitempty" yaml:"mentalState,omitempty"`
	PhysicalState      string    `json:"physicalState,omitempty" yaml:"physicalState,omitempty"`
	MentalEffortScore  *int      `json:"mentalEffortScore" yaml:"mentalEffortScore,omitempty"`
	CreatedAt          time.Time `json:"createdAt" yaml:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt" yaml:"updatedAt"`
}

// Draft holds the caller-supplied fields of a new session. Identity fields
// (id, number, timestamps) are assigned by the repository.
type Draft struct {
	Date               string
	DayOfWeek          string
	StartTime          string
	EndTime            string
	DurationMinutes    int
	TopicTitle         string
	Category           string
	SessionType        string
	DifficultyLevel    string
	FocusLevel         string
	UnderstandingLevel string
	CompletionStatus   string
	RepeatNeeded       bool
	ResourceType       string
	ResourceTitle      string
	ResourcePlatform   string
	ResourceLink       string
	LearningModes      []string
	PrimaryMode        string
	LanguageUsed       []string
	ToolsUsed          []string
	ConceptType        string
	KeyInsights        string
	Confusions         string
	PersonalNotes      string
	MentalState        string
	PhysicalState      string
	MentalEffortScore  *int
}

// Patch lists the mutable fields of a session. A nil field is left unchanged.
type Patch struct {
	Date               *string
	DayOfWeek          *string
	StartTime          *string
	EndTime            *string
	DurationMinutes    *int
	TopicTitle         *string
	Category           *string
	SessionType        *string
	DifficultyLevel    *string
	FocusLevel         *string
	UnderstandingLevel *string
	CompletionStatus   *string
	RepeatNeeded       *bool
	ResourceType       *string
	ResourceTitle      *string
	ResourcePlatform   *string
	ResourceLink       *string
	LearningModes      *[]string
	PrimaryMode        *string
	LanguageUsed       *[]string
	ToolsUsed          *[]string
	ConceptType        *string
	KeyInsights        *string
	Confusions         *string
	PersonalNotes      *string
	MentalState        *string
	PhysicalState      *string

	// MentalEffortScore replaces the score when set. ClearMentalEffort
	// removes it and takes precedence.
	MentalEffortScore *int
	ClearMentalEffort bool
}

// NewSession copies the draft into a session without identity fields.
func NewSession(d Draft) Session {
	return Session{
		Date:               d.Date,
		DayOfWeek:          d.DayOfWeek,
		StartTime:          d.StartTime,
		EndTime:            d.EndTime,
		DurationMinutes:    d.DurationMinutes,
		TopicTitle:         d.TopicTitle,
		Category:           d.Category,
		SessionType:        d.SessionType,
		DifficultyLevel:    d.DifficultyLevel,
		FocusLevel:         d.FocusLevel,
		UnderstandingLevel: d.UnderstandingLevel,
		CompletionStatus:   d.CompletionStatus,
		RepeatNeeded:       d.RepeatNeeded,
		ResourceType:       d.ResourceType,
		ResourceTitle:      d.ResourceTitle,
		ResourcePlatform:   d.ResourcePlatform,
		ResourceLink:       d.ResourceLink,
		LearningModes:      cloneStrings(d.LearningModes),
		PrimaryMode:        d.PrimaryMode,
		LanguageUsed:       cloneStrings(d.LanguageUsed),
		ToolsUsed:          cloneStrings(d.ToolsUsed),
		ConceptType:        d.ConceptType,
		KeyInsights:        d.KeyInsights,
		Confusions:         d.Confusions,
		PersonalNotes:      d.PersonalNotes,
		MentalState:        d.MentalState,
		PhysicalState:      d.PhysicalState,
		MentalEffortScore:  cloneInt(d.MentalEffortScore),
	}
}

// Apply merges the patch into s field by field. It never touches ID,
// SessionNumber, CreatedAt or UpdatedAt.
func (p Patch) Apply(s *Session) {
	setString(&s.Date, p.Date)
	setString(&s.DayOfWeek, p.DayOfWeek)
	setString(&s.StartTime, p.StartTime)
	setString(&s.EndTime, p.EndTime)
	if p.DurationMinutes != nil {
		s.DurationMinutes = *p.DurationMinutes
	}
	setString(&s.TopicTitle, p.TopicTitle)
	setString(&s.Category, p.Category)
	setString(&s.SessionType, p.SessionType)
	setString(&s.DifficultyLevel, p.DifficultyLevel)
	setString(&s.FocusLevel, p.FocusLevel)
	setString(&s.UnderstandingLevel, p.UnderstandingLevel)
	setString(&s.CompletionStatus, p.CompletionStatus)
	if p.RepeatNeeded != nil {
		s.RepeatNeeded = *p.RepeatNeeded
	}
	setString(&s.ResourceType, p.ResourceType)
	setString(&s.ResourceTitle, p.ResourceTitle)
	setString(&s.ResourcePlatform, p.ResourcePlatform)
	setString(&s.ResourceLink, p.ResourceLink)
	setStrings(&s.LearningModes, p.LearningModes)
	setString(&s.PrimaryMode, p.PrimaryMode)
	setStrings(&s.LanguageUsed, p.LanguageUsed)
	setStrings(&s.ToolsUsed, p.ToolsUsed)
	setString(&s.ConceptType, p.ConceptType)
	setString(&s.KeyInsights, p.KeyInsights)
	setString(&s.Confusions, p.Confusions)
	setString(&s.PersonalNotes, p.PersonalNotes)
	setString(&s.MentalState, p.MentalState)
	setString(&s.PhysicalState, p.PhysicalState)
	switch {
	case p.ClearMentalEffort:
		s.MentalEffortScore = nil
	case p.MentalEffortScore != nil:
		s.MentalEffortScore = cloneInt(p.MentalEffortScore)
	}
}

// Empty reports whether the patch changes nothing.
func (p Patch) Empty() bool {
	return p == (Patch{})
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setStrings(dst *[]string, v *[]string) {
	if v != nil {
		*dst = cloneStrings(*v)
	}
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

func cloneInt(v *int) *int {
	if v == nil {
		return nil
	}
	n := *v
	return &n
}
