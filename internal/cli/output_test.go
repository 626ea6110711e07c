package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/rcliao/learning-journal/internal/analytics"
	"github.com/rcliao/learning-journal/internal/model"
)

func sampleSession() *model.Session {
	effort := 6
	return &model.Session{
		ID:                "01HX",
		SessionNumber:     3,
		Date:              "2024-01-15",
		DayOfWeek:         "Monday",
		DurationMinutes:   45,
		TopicTitle:        "Heaps",
		Category:          "Algorithms",
		LearningModes:     []string{"reading"},
		MentalEffortScore: &effort,
	}
}

func TestRender_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render(&buf, "json", sampleSession()))

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "Heaps", got["topicTitle"])
	assert.EqualValues(t, 3, got["sessionNumber"])
}

func TestRender_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render(&buf, "yaml", sampleSession()))

	var got map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "Heaps", got["topicTitle"])
	assert.Equal(t, 6, got["mentalEffortScore"])
}

func TestRender_TextSession(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render(&buf, "text", sampleSession()))

	out := buf.String()
	assert.Contains(t, out, "#3 Heaps")
	assert.Contains(t, out, "2024-01-15 Monday")
	assert.Contains(t, out, "45 min")
	assert.NotContains(t, out, "Platform", "empty fields are omitted")
}

func TestRender_TextList(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render(&buf, "text", []model.Session{*sampleSession()}))
	assert.Contains(t, buf.String(), "Heaps")

	buf.Reset()
	require.NoError(t, render(&buf, "text", []model.Session{}))
	assert.Contains(t, buf.String(), "no sessions")
}

func TestRender_TextStats(t *testing.T) {
	var buf bytes.Buffer
	out := statsOutput{Summary: analytics.Summary{
		TotalSessions:  2,
		TotalHours:     1.5,
		CategoryCounts: map[string]int{"Web": 2},
		CurrentStreak:  1,
	}}
	require.NoError(t, render(&buf, "text", out))

	text := buf.String()
	assert.Contains(t, text, "1.5")
	assert.Contains(t, text, "Web")
	assert.Contains(t, text, "1 days")
}

func TestRender_StatsJSONFlattensSummary(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render(&buf, "json", statsOutput{Summary: analytics.Summary{TotalSessions: 4}}))

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.EqualValues(t, 4, got["total_sessions"])
	assert.NotContains(t, got, "storage")
}

func TestRender_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, render(&buf, "xml", []string{"a"}))
}

func TestExportFileName(t *testing.T) {
	now := sampleTime(t)
	assert.Equal(t, "learning_sessions_2024-02-29.csv", exportFileName(now))
}

func TestOutputFormat_FlagWins(t *testing.T) {
	prev := formatFlag
	t.Cleanup(func() { formatFlag = prev })

	formatFlag = "yaml"
	assert.Equal(t, "yaml", outputFormat())
}
