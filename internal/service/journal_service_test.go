package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"planner_backend/internal/config"
	"planner_backend/internal/model"
	"planner_backend/internal/repository"
	"planner_backend/internal/testutil"
	"planner_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJournalService(t *testing.T) *JournalService {
	t.Helper()
	svc := NewJournalService(
		repository.NewJournalRepository(testutil.NewTestDB(t)),
		&config.Config{Server: config.ServerConfig{Timezone: "UTC"}},
	)
	svc.Now = func() time.Time { return time.Date(2024, 2, 10, 12, 0, 0, 0, time.UTC) }
	return svc
}

func TestJournalService_CreateDefaultsToToday(t *testing.T) {
	svc := newTestJournalService(t)
	ctx := context.Background()

	entry := &model.JournalEntry{Title: "Thoughts"}
	require.NoError(t, svc.Create(ctx, 1, entry))
	assert.Equal(t, "2024-02-10", entry.EntryDate)
	assert.Equal(t, uint(1), entry.UserID)

	assert.ErrorIs(t, svc.Create(ctx, 1, &model.JournalEntry{Title: "x", EntryDate: "2024/02/10"}), util.ErrInvalidDate)
	assert.ErrorIs(t, svc.Create(ctx, 1, &model.JournalEntry{Title: ""}), model.ErrInvalidField)
}

func TestJournalService_ListPaged(t *testing.T) {
	svc := newTestJournalService(t)
	ctx := context.Background()

	for day := 1; day <= 5; day++ {
		require.NoError(t, svc.Create(ctx, 1, &model.JournalEntry{
			Title:     fmt.Sprintf("Day %d", day),
			EntryDate: fmt.Sprintf("2024-02-%02d", day),
		}))
	}
	require.NoError(t, svc.Create(ctx, 2, &model.JournalEntry{Title: "Other", EntryDate: "2024-02-03"}))

	tests := []struct {
		name           string
		from, to       string
		page, pageSize int
		wantTotal      int64
		wantTitles     []string
	}{
		{"第一页", "", "", 1, 2, 5, []string{"Day 5", "Day 4"}},
		{"第二页", "", "", 2, 2, 5, []string{"Day 3", "Day 2"}},
		{"最后一页", "", "", 3, 2, 5, []string{"Day 1"}},
		{"超出范围", "", "", 4, 2, 5, []string{}},
		{"按日期过滤", "2024-02-02", "2024-02-03", 1, 10, 2, []string{"Day 3", "Day 2"}},
		{"非法分页取默认值", "", "", 0, 0, 5, []string{"Day 5", "Day 4", "Day 3", "Day 2", "Day 1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries, total, err := svc.List(ctx, 1, tt.from, tt.to, tt.page, tt.pageSize)
			require.NoError(t, err)
			assert.Equal(t, tt.wantTotal, total)

			got := make([]string, 0, len(entries))
			for _, e := range entries {
				got = append(got, e.Title)
			}
			assert.Equal(t, tt.wantTitles, got)
		})
	}

	_, _, err := svc.List(ctx, 1, "2024-02-05", "2024-02-01", 1, 10)
	assert.ErrorIs(t, err, util.ErrInvalidRange)
}

func TestJournalService_OwnerScoping(t *testing.T) {
	svc := newTestJournalService(t)
	ctx := context.Background()

	entry := &model.JournalEntry{Title: "Mine"}
	require.NoError(t, svc.Create(ctx, 1, entry))

	_, err := svc.Get(ctx, 2, entry.ID)
	assert.ErrorIs(t, err, util.ErrNotFound)

	title := "Hijacked"
	_, err = svc.Update(ctx, 2, entry.ID, model.JournalPatch{Title: &title})
	assert.ErrorIs(t, err, util.ErrNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, 2, entry.ID), util.ErrNotFound)

	mood := "calm"
	updated, err := svc.Update(ctx, 1, entry.ID, model.JournalPatch{Mood: &mood})
	require.NoError(t, err)
	assert.Equal(t, "Mine", updated.Title)
	assert.Equal(t, "calm", updated.Mood)
}
