package repository

import (
	"context"
	"fmt"
	"testing"

	"planner_backend/internal/model"
	"planner_backend/internal/testutil"
	"planner_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJournalRepository_ListPaged(t *testing.T) {
	repo := NewJournalRepository(testutil.NewTestDB(t))
	ctx := context.Background()

	for day := 1; day <= 3; day++ {
		require.NoError(t, repo.Create(ctx, &model.JournalEntry{
			UserID:    1,
			EntryDate: fmt.Sprintf("2024-02-%02d", day),
			Title:     fmt.Sprintf("Day %d", day),
		}))
	}
	// 同一天的多条按 id 倒序
	require.NoError(t, repo.Create(ctx, &model.JournalEntry{UserID: 1, EntryDate: "2024-02-03", Title: "Day 3 again"}))

	entries, total, err := repo.List(ctx, 1, "", "", 1, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 4, total)
	require.Len(t, entries, 2)
	assert.Equal(t, "Day 3 again", entries[0].Title)
	assert.Equal(t, "Day 3", entries[1].Title)

	// 计数与分页查询共用同一组条件
	entries, total, err = repo.List(ctx, 1, "2024-02-01", "2024-02-02", 1, 1)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	require.Len(t, entries, 1)
	assert.Equal(t, "Day 2", entries[0].Title)

	entries, total, err = repo.List(ctx, 1, "2024-02-01", "2024-02-02", 2, 1)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	require.Len(t, entries, 1)
	assert.Equal(t, "Day 1", entries[0].Title)
}

func TestJournalRepository_OwnerScoping(t *testing.T) {
	repo := NewJournalRepository(testutil.NewTestDB(t))
	ctx := context.Background()

	entry := &model.JournalEntry{UserID: 1, EntryDate: "2024-02-01", Title: "Mine"}
	require.NoError(t, repo.Create(ctx, entry))

	_, err := repo.FindByIDAndUserID(ctx, entry.ID, 2)
	assert.ErrorIs(t, err, util.ErrNotFound)

	entries, total, err := repo.List(ctx, 2, "", "", 1, 10)
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, entries)
}
