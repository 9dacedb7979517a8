package service

import (
	"context"
	"strconv"
	"time"

	"planner_backend/internal/config"
	"planner_backend/internal/model"
	"planner_backend/internal/repository"
	"planner_backend/internal/util"
	"planner_backend/pkg/logger"
	"planner_backend/pkg/monitoring"
	"planner_backend/pkg/tracing"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// ActivityLogResult 记录活动后的返回结果
// swagger:model ActivityLogResult
type ActivityLogResult struct {
	Entry     *model.ActivityEntry `json:"entry"`
	Streak    int                  `json:"streak"`
	NewBadges []model.Badge        `json:"newBadges"`
}

type ActivityService struct {
	EntryRepo *repository.ActivityEntryRepository
	Evaluator *StreakEvaluator
	Location  *time.Location
	Now       func() time.Time
}

// NewActivityService 创建打卡服务
func NewActivityService(entryRepo *repository.ActivityEntryRepository, badgeRepo *repository.BadgeRepository, cfg *config.Config) *ActivityService {
	return &ActivityService{
		EntryRepo: entryRepo,
		Evaluator: NewStreakEvaluator(entryRepo, badgeRepo),
		Location:  cfg.Location(),
		Now:       time.Now,
	}
}

// Today 服务端时区下的当前日期
func (s *ActivityService) Today() string {
	return util.DateIn(s.Now(), s.Location)
}

// LogActivity 写入当天（或指定日期）的活动记录，随后计算连续天数并颁发徽章。
// 徽章评估失败不影响记录本身，只写日志
func (s *ActivityService) LogActivity(ctx context.Context, userID uint, kind, date string, completed bool) (*ActivityLogResult, error) {
	if !model.IsActivityKind(kind) {
		return nil, util.ErrUnknownActivityKind
	}

	today := s.Today()
	if date == "" {
		date = today
	}
	if _, err := util.ParseDate(date); err != nil {
		return nil, err
	}
	if date > today {
		return nil, util.ErrFutureDate
	}

	ctx, span := tracing.Tracer.Start(ctx, "ActivityService.LogActivity")
	defer span.End()
	span.SetAttributes(
		attribute.String("activity.kind", kind),
		attribute.String("activity.date", date),
	)

	entry := &model.ActivityEntry{
		UserID:    userID,
		Kind:      kind,
		Date:      date,
		Completed: completed,
	}
	if err := s.EntryRepo.Upsert(ctx, entry); err != nil {
		return nil, err
	}
	monitoring.ActivityEntriesLogged.WithLabelValues(kind, strconv.FormatBool(completed)).Inc()

	result := &ActivityLogResult{
		Entry:     entry,
		NewBadges: []model.Badge{},
	}

	streak, err := s.Evaluator.ComputeCurrentStreak(ctx, userID, kind, today)
	if err != nil {
		monitoring.BadgeEvaluationFailures.WithLabelValues(kind, "streak").Inc()
		logger.Log.Error("Failed to compute streak",
			zap.Uint("userID", userID),
			zap.String("kind", kind),
			zap.Error(err),
		)
		return result, nil
	}

	result.Streak = streak
	result.NewBadges = s.Evaluator.EvaluateAndAwardBadges(ctx, userID, kind, streak, today)
	return result, nil
}

// History 返回区间内的活动记录，按日期倒序
func (s *ActivityService) History(ctx context.Context, userID uint, kind, from, to string) ([]model.ActivityEntry, error) {
	if !model.IsActivityKind(kind) {
		return nil, util.ErrUnknownActivityKind
	}
	if err := util.ValidateRange(from, to); err != nil {
		return nil, err
	}

	entries, err := s.EntryRepo.FindRange(ctx, userID, kind, from, to)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []model.ActivityEntry{}
	}
	return entries, nil
}

// CurrentStreak 返回截至今天的连续天数
func (s *ActivityService) CurrentStreak(ctx context.Context, userID uint, kind string) (int, error) {
	if !model.IsActivityKind(kind) {
		return 0, util.ErrUnknownActivityKind
	}
	return s.Evaluator.ComputeCurrentStreak(ctx, userID, kind, s.Today())
}
