package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/inkstone-app/inkstone/internal/domain"
	"github.com/inkstone-app/inkstone/internal/repository"
	"github.com/inkstone-app/inkstone/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func weekOf(t *testing.T, day string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", day)
	require.NoError(t, err)
	return parsed.UTC()
}

func sampleInsight(userID string, weekStart time.Time) *domain.WeeklyInsight {
	return &domain.WeeklyInsight{
		UserID:       userID,
		WeekStart:    weekStart,
		WeekEnd:      weekStart.AddDate(0, 0, 6),
		JournalCount: 3,
		Reflection: []string{
			"You showed up consistently this week.",
			"Mornings were your most energetic time.",
			"Challenges clustered around deadlines.",
			"Gratitude entries centered on people.",
		},
		GoalSummaries: []domain.GoalSummary{
			{GoalID: "g1", GoalTitle: "Run 3x", Status: domain.Aligned, Explanation: "Two runs logged."},
		},
		Suggestion:    "Try a short evening walk.",
		GeneratedAt:   time.Date(2024, time.March, 10, 18, 0, 0, 0, time.UTC),
		SourceVersion: 1,
	}
}

func TestInsightRepo_FindByWeek_NotFound(t *testing.T) {
	conn := testutil.NewTestDB(t)
	testutil.SeedUser(t, conn, "u1")
	repo := repository.NewSQLiteInsightRepo(conn)

	_, err := repo.FindByWeek(context.Background(), "u1", weekOf(t, "2024-03-04"))
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestInsightRepo_Upsert_RoundTrip(t *testing.T) {
	conn := testutil.NewTestDB(t)
	testutil.SeedUser(t, conn, "u1")
	repo := repository.NewSQLiteInsightRepo(conn)
	ctx := context.Background()

	weekStart := weekOf(t, "2024-03-04")
	stored, err := repo.Upsert(ctx, sampleInsight("u1", weekStart))
	require.NoError(t, err)
	require.NotEmpty(t, stored.ID)

	got, err := repo.FindByWeek(ctx, "u1", weekStart)
	require.NoError(t, err)
	assert.Equal(t, stored.ID, got.ID)
	assert.Equal(t, weekStart, got.WeekStart)
	assert.Equal(t, weekStart.AddDate(0, 0, 6), got.WeekEnd)
	assert.Equal(t, 3, got.JournalCount)
	assert.Len(t, got.Reflection, 4)
	require.Len(t, got.GoalSummaries, 1)
	assert.Equal(t, "g1", got.GoalSummaries[0].GoalID)
	assert.Equal(t, domain.Aligned, got.GoalSummaries[0].Status)
	assert.Equal(t, "Try a short evening walk.", got.Suggestion)
	assert.Equal(t, 1, got.SourceVersion)
}

func TestInsightRepo_Upsert_SameWeekNeverProducesTwoRecords(t *testing.T) {
	conn := testutil.NewTestDB(t)
	testutil.SeedUser(t, conn, "u1")
	repo := repository.NewSQLiteInsightRepo(conn)
	ctx := context.Background()

	weekStart := weekOf(t, "2024-03-04")
	first, err := repo.Upsert(ctx, sampleInsight("u1", weekStart))
	require.NoError(t, err)

	second := sampleInsight("u1", weekStart)
	second.JournalCount = 5
	second.Suggestion = "Rest more."
	stored, err := repo.Upsert(ctx, second)
	require.NoError(t, err)

	// Same row was overwritten wholesale, not duplicated.
	assert.Equal(t, first.ID, stored.ID)
	assert.Equal(t, 5, stored.JournalCount)
	assert.Equal(t, "Rest more.", stored.Suggestion)

	var count int
	err = conn.QueryRow(`SELECT COUNT(*) FROM weekly_insights WHERE user_id = 'u1'`).Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestInsightRepo_Upsert_DistinctWeeksAreIndependent(t *testing.T) {
	conn := testutil.NewTestDB(t)
	testutil.SeedUser(t, conn, "u1")
	repo := repository.NewSQLiteInsightRepo(conn)
	ctx := context.Background()

	_, err := repo.Upsert(ctx, sampleInsight("u1", weekOf(t, "2024-03-04")))
	require.NoError(t, err)
	_, err = repo.Upsert(ctx, sampleInsight("u1", weekOf(t, "2024-03-11")))
	require.NoError(t, err)

	var count int
	err = conn.QueryRow(`SELECT COUNT(*) FROM weekly_insights WHERE user_id = 'u1'`).Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestInsightRepo_MarkStale(t *testing.T) {
	conn := testutil.NewTestDB(t)
	testutil.SeedUser(t, conn, "u1")
	repo := repository.NewSQLiteInsightRepo(conn)
	ctx := context.Background()

	weekStart := weekOf(t, "2024-03-04")
	_, err := repo.Upsert(ctx, sampleInsight("u1", weekStart))
	require.NoError(t, err)

	require.NoError(t, repo.MarkStale(ctx, "u1", weekStart, 0))

	got, err := repo.FindByWeek(ctx, "u1", weekStart)
	require.NoError(t, err)
	assert.Equal(t, 0, got.SourceVersion)
	// Content untouched by invalidation.
	assert.Len(t, got.Reflection, 4)
}

func TestInsightRepo_MarkStale_MissingRecord(t *testing.T) {
	conn := testutil.NewTestDB(t)
	testutil.SeedUser(t, conn, "u1")
	repo := repository.NewSQLiteInsightRepo(conn)

	err := repo.MarkStale(context.Background(), "u1", weekOf(t, "2024-03-04"), 0)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestInsightRepo_Upsert_EmptyGoalSummaries(t *testing.T) {
	conn := testutil.NewTestDB(t)
	testutil.SeedUser(t, conn, "u1")
	repo := repository.NewSQLiteInsightRepo(conn)
	ctx := context.Background()

	ins := sampleInsight("u1", weekOf(t, "2024-03-04"))
	ins.GoalSummaries = nil
	stored, err := repo.Upsert(ctx, ins)
	require.NoError(t, err)
	assert.Empty(t, stored.GoalSummaries)
}
