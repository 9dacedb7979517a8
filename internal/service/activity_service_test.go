package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"planner_backend/internal/config"
	"planner_backend/internal/model"
	"planner_backend/internal/repository"
	"planner_backend/internal/testutil"
	"planner_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestActivityService(t *testing.T, now string) (*ActivityService, *gorm.DB) {
	t.Helper()
	db := testutil.NewTestDB(t)
	cfg := &config.Config{Server: config.ServerConfig{Timezone: "UTC"}}
	svc := NewActivityService(
		repository.NewActivityEntryRepository(db),
		repository.NewBadgeRepository(db, nil),
		cfg,
	)
	setToday(t, svc, now)
	return svc, db
}

// setToday 固定服务端时钟到某天中午
func setToday(t *testing.T, s *ActivityService, date string) {
	t.Helper()
	day, err := util.ParseDate(date)
	require.NoError(t, err)
	s.Now = func() time.Time { return day.Add(12 * time.Hour) }
}

func TestLogActivity_ThreeDayStreakAwardsBadgeOnce(t *testing.T) {
	svc, db := newTestActivityService(t, "2024-01-01")
	ctx := context.Background()

	res, err := svc.LogActivity(ctx, 1, model.ActivityWorkout, "", true)
	require.NoError(t, err)
	assert.Equal(t, "2024-01-01", res.Entry.Date)
	assert.Equal(t, 1, res.Streak)
	assert.Empty(t, res.NewBadges)

	setToday(t, svc, "2024-01-02")
	res, err = svc.LogActivity(ctx, 1, model.ActivityWorkout, "", true)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Streak)
	assert.Empty(t, res.NewBadges)

	setToday(t, svc, "2024-01-03")
	res, err = svc.LogActivity(ctx, 1, model.ActivityWorkout, "", true)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Streak)
	require.Len(t, res.NewBadges, 1)
	assert.Equal(t, 3, res.NewBadges[0].StreakDaysThreshold)
	assert.Equal(t, "Getting Started", res.NewBadges[0].BadgeName)
	assert.Equal(t, "2024-01-03", res.NewBadges[0].EarnedDate)

	// 同日重复记录
	res, err = svc.LogActivity(ctx, 1, model.ActivityWorkout, "", true)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Streak)
	assert.NotNil(t, res.NewBadges)
	assert.Empty(t, res.NewBadges)

	var entries, badges int64
	require.NoError(t, db.Model(&model.ActivityEntry{}).Count(&entries).Error)
	require.NoError(t, db.Model(&model.Badge{}).Count(&badges).Error)
	assert.EqualValues(t, 3, entries)
	assert.EqualValues(t, 1, badges)
}

func TestLogActivity_UncompletedTodayBreaksStreak(t *testing.T) {
	svc, _ := newTestActivityService(t, "2024-01-01")
	ctx := context.Background()

	_, err := svc.LogActivity(ctx, 1, model.ActivityWorkout, "", true)
	require.NoError(t, err)

	setToday(t, svc, "2024-01-02")
	res, err := svc.LogActivity(ctx, 1, model.ActivityWorkout, "", false)
	require.NoError(t, err)
	assert.False(t, res.Entry.Completed)
	assert.Equal(t, 0, res.Streak)

	// 重新标记为完成后恢复
	res, err = svc.LogActivity(ctx, 1, model.ActivityWorkout, "", true)
	require.NoError(t, err)
	assert.True(t, res.Entry.Completed)
	assert.Equal(t, 2, res.Streak)
}

func TestLogActivity_BackfillCountsTowardTodaysStreak(t *testing.T) {
	svc, _ := newTestActivityService(t, "2024-01-03")
	ctx := context.Background()

	_, err := svc.LogActivity(ctx, 1, model.ActivityWorkout, "", true)
	require.NoError(t, err)
	_, err = svc.LogActivity(ctx, 1, model.ActivityWorkout, "2024-01-01", true)
	require.NoError(t, err)

	res, err := svc.LogActivity(ctx, 1, model.ActivityWorkout, "2024-01-02", true)
	require.NoError(t, err)
	assert.Equal(t, "2024-01-02", res.Entry.Date)
	assert.Equal(t, 3, res.Streak)
	require.Len(t, res.NewBadges, 1)
	assert.Equal(t, "2024-01-03", res.NewBadges[0].EarnedDate)
}

func TestLogActivity_KindsAndUsersAreIndependent(t *testing.T) {
	svc, _ := newTestActivityService(t, "2024-01-01")
	ctx := context.Background()

	for _, date := range []string{"2024-01-01", "2024-01-02", "2024-01-03"} {
		setToday(t, svc, date)
		_, err := svc.LogActivity(ctx, 1, model.ActivityWorkout, "", true)
		require.NoError(t, err)
	}

	streak, err := svc.CurrentStreak(ctx, 1, model.ActivityMeditation)
	require.NoError(t, err)
	assert.Equal(t, 0, streak)

	streak, err = svc.CurrentStreak(ctx, 2, model.ActivityWorkout)
	require.NoError(t, err)
	assert.Equal(t, 0, streak)

	streak, err = svc.CurrentStreak(ctx, 1, model.ActivityWorkout)
	require.NoError(t, err)
	assert.Equal(t, 3, streak)
}

func TestLogActivity_Validation(t *testing.T) {
	svc, _ := newTestActivityService(t, "2024-01-10")
	ctx := context.Background()

	_, err := svc.LogActivity(ctx, 1, "swimming", "", true)
	assert.ErrorIs(t, err, util.ErrUnknownActivityKind)

	_, err = svc.LogActivity(ctx, 1, model.ActivityWorkout, "2024-01-11", true)
	assert.ErrorIs(t, err, util.ErrFutureDate)

	_, err = svc.LogActivity(ctx, 1, model.ActivityWorkout, "2024/01/09", true)
	assert.ErrorIs(t, err, util.ErrInvalidDate)
}

func TestLogActivity_EvaluationFailureKeepsEntry(t *testing.T) {
	svc, db := newTestActivityService(t, "2024-01-03")
	svc.Evaluator = NewStreakEvaluator(&fakeEntryStore{err: errors.New("replica lag")}, newFakeBadgeStore())

	res, err := svc.LogActivity(context.Background(), 1, model.ActivityWorkout, "", true)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Streak)
	assert.NotNil(t, res.NewBadges)
	assert.Empty(t, res.NewBadges)

	var stored model.ActivityEntry
	require.NoError(t, db.Where("user_id = ? AND date = ?", 1, "2024-01-03").First(&stored).Error)
	assert.True(t, stored.Completed)
}

func TestLogActivity_BadgeInsertFailureKeepsEntry(t *testing.T) {
	svc, _ := newTestActivityService(t, "2024-01-01")
	ctx := context.Background()

	badges := newFakeBadgeStore()
	badges.failInsert[3] = true
	svc.Evaluator.Badges = badges

	var res *ActivityLogResult
	var err error
	for _, date := range []string{"2024-01-01", "2024-01-02", "2024-01-03"} {
		setToday(t, svc, date)
		res, err = svc.LogActivity(ctx, 1, model.ActivityWorkout, "", true)
		require.NoError(t, err)
	}
	assert.Equal(t, 3, res.Streak)
	assert.Empty(t, res.NewBadges)
	assert.Empty(t, badges.badges)
}

func TestHistory(t *testing.T) {
	svc, _ := newTestActivityService(t, "2024-01-05")
	ctx := context.Background()

	for _, date := range []string{"2024-01-01", "2024-01-03", "2024-01-05"} {
		_, err := svc.LogActivity(ctx, 1, model.ActivityReading, date, true)
		require.NoError(t, err)
	}

	entries, err := svc.History(ctx, 1, model.ActivityReading, "2024-01-02", "2024-01-05")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "2024-01-05", entries[0].Date)
	assert.Equal(t, "2024-01-03", entries[1].Date)

	entries, err = svc.History(ctx, 1, model.ActivityHydration, "", "")
	require.NoError(t, err)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)

	_, err = svc.History(ctx, 1, model.ActivityReading, "2024-01-05", "2024-01-01")
	assert.ErrorIs(t, err, util.ErrInvalidRange)
}
