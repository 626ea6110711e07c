package journal

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rcliao/learning-journal/internal/csvcodec"
	"github.com/rcliao/learning-journal/internal/model"
)

func TestImportCSV_IsAdditive(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	existing, err := env.repo.Create(ctx, draft("existing"))
	require.NoError(t, err)

	text := "id,sessionNumber,date,topicTitle,learningModes,repeatNeeded\n" +
		`"ext-1","7","2024-01-10","Imported A","reading;practice","True"` + "\n" +
		`"","","2024-01-11","Imported B","",""` + "\n"

	n, err := env.repo.ImportCSV(ctx, text)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	stored, _ := env.rs.Load(ctx)
	require.Len(t, stored, 3)
	assert.Equal(t, existing.ID, stored[0].ID)

	a, b := stored[1], stored[2]
	assert.Equal(t, "ext-1", a.ID)
	assert.Equal(t, 7, a.SessionNumber)
	assert.ElementsMatch(t, []string{"reading", "practice"}, a.LearningModes)
	assert.True(t, a.RepeatNeeded)
	assert.Equal(t, "Wednesday", a.DayOfWeek)

	assert.NotEmpty(t, b.ID)
	assert.Equal(t, 8, b.SessionNumber, "missing number takes the next free one")
	assert.Equal(t, env.clock.now, b.CreatedAt)

	next, _ := env.repo.NextNumber(ctx)
	assert.Equal(t, 9, next)
}

func TestImportCSV_EmptyInputWritesNothing(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	writes := env.kv.Writes()

	n, err := env.repo.ImportCSV(ctx, strings.Join(csvcodec.Header, ",")+"\n")
	assert.ErrorIs(t, err, csvcodec.ErrEmptyInput)
	assert.Zero(t, n)
	assert.Equal(t, writes, env.kv.Writes())
}

func TestImport_ResolvesCollisions(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	first, err := env.repo.Create(ctx, draft("first"))
	require.NoError(t, err)

	created := time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC)
	n, err := env.repo.Import(ctx, []model.Session{
		{ID: first.ID, SessionNumber: first.SessionNumber, Date: "2023-12-01", TopicTitle: "dup", CreatedAt: created},
		{ID: "same", SessionNumber: 5, Date: "2023-12-02", TopicTitle: "x"},
		{ID: "same", SessionNumber: 5, Date: "2023-12-03", TopicTitle: "y"},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	stored, _ := env.rs.Load(ctx)
	require.Len(t, stored, 4)

	ids := map[string]bool{}
	numbers := map[int]bool{}
	for _, s := range stored {
		assert.False(t, ids[s.ID], "duplicate id %s", s.ID)
		assert.False(t, numbers[s.SessionNumber], "duplicate number %d", s.SessionNumber)
		ids[s.ID] = true
		numbers[s.SessionNumber] = true
		assert.False(t, s.UpdatedAt.Before(s.CreatedAt))
	}

	dup := stored[1]
	assert.NotEqual(t, first.ID, dup.ID)
	assert.Equal(t, 2, dup.SessionNumber)
	assert.True(t, created.Equal(dup.CreatedAt))
	assert.Equal(t, 5, stored[2].SessionNumber)
	assert.Equal(t, 6, stored[3].SessionNumber)
}

func TestExportThenImport(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	d := draft(`Say "hi"`)
	d.LearningModes = []string{"reading", "practice"}
	d.LanguageUsed = []string{"Python"}
	_, err := env.repo.Create(ctx, d)
	require.NoError(t, err)

	text, err := env.repo.ExportCSV(ctx)
	require.NoError(t, err)
	assert.Contains(t, text, `"Say ""hi"""`)

	other := newTestEnv(t)
	n, err := other.repo.ImportCSV(ctx, text)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	got, err := other.repo.List(ctx, Filter{})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, `Say "hi"`, got[0].TopicTitle)
	assert.Equal(t, 1, got[0].SessionNumber)
	assert.ElementsMatch(t, []string{"reading", "practice"}, got[0].LearningModes)
	assert.ElementsMatch(t, []string{"Python"}, got[0].LanguageUsed)
}
