package service

import (
	"context"
	"testing"

	"planner_backend/internal/model"
	"planner_backend/internal/repository"
	"planner_backend/internal/testutil"
	"planner_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHabitService_OwnerScoping(t *testing.T) {
	svc := NewHabitService(repository.NewHabitRepository(testutil.NewTestDB(t)))
	ctx := context.Background()

	habit := &model.Habit{Title: "Stretch"}
	require.NoError(t, svc.Create(ctx, 1, habit))
	assert.Equal(t, model.FrequencyDaily, habit.Frequency)

	title := "Not mine"
	tests := []struct {
		name string
		call func() error
	}{
		{"Get", func() error { _, err := svc.Get(ctx, 2, habit.ID); return err }},
		{"Update", func() error {
			_, err := svc.Update(ctx, 2, habit.ID, model.HabitPatch{Title: &title})
			return err
		}},
		{"Delete", func() error { return svc.Delete(ctx, 2, habit.ID) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.call(), util.ErrNotFound)
		})
	}

	got, err := svc.Get(ctx, 1, habit.ID)
	require.NoError(t, err)
	assert.Equal(t, "Stretch", got.Title)

	habits, err := svc.List(ctx, 2, true)
	require.NoError(t, err)
	assert.Empty(t, habits)
}

func TestHabitService_ArchivedFilter(t *testing.T) {
	svc := NewHabitService(repository.NewHabitRepository(testutil.NewTestDB(t)))
	ctx := context.Background()

	active := &model.Habit{Title: "Read"}
	archived := &model.Habit{Title: "Old habit", Frequency: model.FrequencyWeekly}
	require.NoError(t, svc.Create(ctx, 1, active))
	require.NoError(t, svc.Create(ctx, 1, archived))

	yes := true
	updated, err := svc.Update(ctx, 1, archived.ID, model.HabitPatch{Archived: &yes})
	require.NoError(t, err)
	assert.True(t, updated.Archived)
	assert.Equal(t, model.FrequencyWeekly, updated.Frequency)

	habits, err := svc.List(ctx, 1, false)
	require.NoError(t, err)
	require.Len(t, habits, 1)
	assert.Equal(t, active.ID, habits[0].ID)

	habits, err = svc.List(ctx, 1, true)
	require.NoError(t, err)
	assert.Len(t, habits, 2)
}

func TestHabitService_Validation(t *testing.T) {
	svc := NewHabitService(repository.NewHabitRepository(testutil.NewTestDB(t)))
	ctx := context.Background()

	assert.ErrorIs(t, svc.Create(ctx, 1, &model.Habit{Title: "  "}), model.ErrInvalidField)
	assert.ErrorIs(t, svc.Create(ctx, 1, &model.Habit{Title: "Run", Frequency: "hourly"}), model.ErrInvalidField)

	habit := &model.Habit{Title: "Run"}
	require.NoError(t, svc.Create(ctx, 1, habit))

	_, err := svc.Update(ctx, 1, habit.ID, model.HabitPatch{})
	assert.ErrorIs(t, err, model.ErrEmptyPatch)

	bad := "monthly"
	_, err = svc.Update(ctx, 1, habit.ID, model.HabitPatch{Frequency: &bad})
	assert.ErrorIs(t, err, model.ErrInvalidField)
}
