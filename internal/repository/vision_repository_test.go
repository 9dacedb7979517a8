package repository

import (
	"context"
	"testing"

	"planner_backend/internal/model"
	"planner_backend/internal/testutil"
	"planner_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVisionRepository_NextPosition(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewVisionRepository(db)
	ctx := context.Background()

	pos, err := repo.NextPosition(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, pos)

	for i := 0; i < 3; i++ {
		pos, err := repo.NextPosition(ctx, 1)
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, &model.VisionItem{
			UserID:    1,
			ImageURL:  "/uploads/a.png",
			ObjectKey: "a.png",
			Position:  pos,
		}))
	}

	pos, err = repo.NextPosition(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 3, pos)

	pos, err = repo.NextPosition(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, 0, pos)

	items, err := repo.FindByUserID(ctx, 1)
	require.NoError(t, err)
	require.Len(t, items, 3)
	for i, item := range items {
		assert.Equal(t, i, item.Position)
	}
}

func TestVisionRepository_FindByIDAndUserIDIsOwnerScoped(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewVisionRepository(db)
	ctx := context.Background()

	item := &model.VisionItem{UserID: 1, ImageURL: "/uploads/a.png", ObjectKey: "a.png"}
	require.NoError(t, repo.Create(ctx, item))

	_, err := repo.FindByIDAndUserID(ctx, item.ID, 2)
	assert.ErrorIs(t, err, util.ErrNotFound)

	found, err := repo.FindByIDAndUserID(ctx, item.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, "a.png", found.ObjectKey)
}
