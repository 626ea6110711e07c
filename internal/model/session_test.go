package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatchApply_LeavesIdentityAlone(t *testing.T) {
	created := time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	s := Session{ID: "a", SessionNumber: 4, TopicTitle: "old", Category: "Web", CreatedAt: created, UpdatedAt: created}

	topic := "new"
	modes := []string{"video"}
	Patch{TopicTitle: &topic, LearningModes: &modes}.Apply(&s)

	assert.Equal(t, "a", s.ID)
	assert.Equal(t, 4, s.SessionNumber)
	assert.Equal(t, created, s.CreatedAt)
	assert.Equal(t, created, s.UpdatedAt)
	assert.Equal(t, "new", s.TopicTitle)
	assert.Equal(t, "Web", s.Category, "nil fields are unchanged")
	assert.Equal(t, []string{"video"}, s.LearningModes)

	modes[0] = "mutated"
	assert.Equal(t, "video", s.LearningModes[0], "lists are copied")
}

func TestPatchApply_MentalEffort(t *testing.T) {
	five, nine := 5, 9
	s := Session{MentalEffortScore: &five}

	Patch{MentalEffortScore: &nine}.Apply(&s)
	require.NotNil(t, s.MentalEffortScore)
	assert.Equal(t, 9, *s.MentalEffortScore)

	Patch{MentalEffortScore: &five, ClearMentalEffort: true}.Apply(&s)
	assert.Nil(t, s.MentalEffortScore)
}

func TestPatchEmpty(t *testing.T) {
	assert.True(t, Patch{}.Empty())
	yes := true
	assert.False(t, Patch{RepeatNeeded: &yes}.Empty())
}

func TestNewSession_CopiesDraft(t *testing.T) {
	effort := 3
	d := Draft{Date: "2024-01-02", TopicTitle: "x", ToolsUsed: []string{"vim"}, MentalEffortScore: &effort}

	s := NewSession(d)
	d.ToolsUsed[0] = "emacs"
	effort = 8

	assert.Empty(t, s.ID)
	assert.Zero(t, s.SessionNumber)
	assert.Equal(t, []string{"vim"}, s.ToolsUsed)
	assert.Equal(t, 3, *s.MentalEffortScore)
}
