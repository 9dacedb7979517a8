package repository

import (
	"context"
	"testing"

	"planner_backend/internal/model"
	"planner_backend/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivityEntryRepository_UpsertKeepsOneRowPerDay(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewActivityEntryRepository(db)
	ctx := context.Background()

	first := &model.ActivityEntry{UserID: 1, Kind: model.ActivityWorkout, Date: "2024-01-01", Completed: true}
	require.NoError(t, repo.Upsert(ctx, first))
	require.NotZero(t, first.ID)

	second := &model.ActivityEntry{UserID: 1, Kind: model.ActivityWorkout, Date: "2024-01-01", Completed: false}
	require.NoError(t, repo.Upsert(ctx, second))
	assert.Equal(t, first.ID, second.ID)
	assert.False(t, second.Completed)

	var count int64
	require.NoError(t, db.Model(&model.ActivityEntry{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestActivityEntryRepository_CompletedDates(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewActivityEntryRepository(db)
	ctx := context.Background()

	rows := []model.ActivityEntry{
		{UserID: 1, Kind: model.ActivityWorkout, Date: "2024-01-01", Completed: true},
		{UserID: 1, Kind: model.ActivityWorkout, Date: "2024-01-03", Completed: true},
		{UserID: 1, Kind: model.ActivityWorkout, Date: "2024-01-02", Completed: false},
		{UserID: 1, Kind: model.ActivityWorkout, Date: "2024-01-05", Completed: true},
		{UserID: 1, Kind: model.ActivityReading, Date: "2024-01-03", Completed: true},
		{UserID: 2, Kind: model.ActivityWorkout, Date: "2024-01-03", Completed: true},
	}
	for i := range rows {
		require.NoError(t, repo.Upsert(ctx, &rows[i]))
	}

	dates, err := repo.CompletedDates(ctx, 1, model.ActivityWorkout, "2024-01-04")
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-01-03", "2024-01-01"}, dates)

	dates, err = repo.CompletedDates(ctx, 3, model.ActivityWorkout, "2024-01-04")
	require.NoError(t, err)
	assert.Empty(t, dates)
}

func TestActivityEntryRepository_FindRange(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewActivityEntryRepository(db)
	ctx := context.Background()

	for _, d := range []string{"2024-02-01", "2024-02-10", "2024-02-20"} {
		require.NoError(t, repo.Upsert(ctx, &model.ActivityEntry{UserID: 1, Kind: model.ActivityHydration, Date: d, Completed: true}))
	}

	entries, err := repo.FindRange(ctx, 1, model.ActivityHydration, "2024-02-05", "")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "2024-02-20", entries[0].Date)
	assert.Equal(t, "2024-02-10", entries[1].Date)

	entries, err = repo.FindRange(ctx, 1, model.ActivityHydration, "", "2024-02-10")
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}
