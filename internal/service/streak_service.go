package service

import (
	"context"
	"fmt"
	"strconv"

	"planner_backend/internal/model"
	"planner_backend/internal/util"
	"planner_backend/pkg/logger"
	"planner_backend/pkg/monitoring"
	"planner_backend/pkg/tracing"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// ActivityEntryStore 活动记录的只读视图
type ActivityEntryStore interface {
	// CompletedDates 返回 asOf 及之前所有 completed=true 的日期 (YYYY-MM-DD)
	CompletedDates(ctx context.Context, userID uint, kind, asOf string) ([]string, error)
}

// BadgeStore 徽章的读写视图
type BadgeStore interface {
	Exists(ctx context.Context, userID uint, badgeType string, threshold int) (bool, error)
	// Insert 在唯一约束拒绝时返回 (false, nil)
	Insert(ctx context.Context, badge *model.Badge) (bool, error)
}

// StreakEvaluator 计算连续打卡天数并颁发里程碑徽章
type StreakEvaluator struct {
	Entries    ActivityEntryStore
	Badges     BadgeStore
	Milestones map[string][]model.Milestone
}

// NewStreakEvaluator 创建连续打卡评估器
func NewStreakEvaluator(entries ActivityEntryStore, badges BadgeStore) *StreakEvaluator {
	return &StreakEvaluator{
		Entries:    entries,
		Badges:     badges,
		Milestones: model.DefaultMilestones(),
	}
}

// ComputeCurrentStreak 从 today 开始逐日向前，统计连续完成的天数，
// today 未完成时为 0
func (e *StreakEvaluator) ComputeCurrentStreak(ctx context.Context, userID uint, kind, today string) (int, error) {
	start, err := util.ParseDate(today)
	if err != nil {
		return 0, err
	}

	// 一次读取全部历史，保证计算基于同一快照
	dates, err := e.Entries.CompletedDates(ctx, userID, kind, today)
	if err != nil {
		return 0, fmt.Errorf("load completed dates: %w", err)
	}

	completed := make(map[string]struct{}, len(dates))
	for _, d := range dates {
		t, err := util.ParseDate(d)
		if err != nil {
			logger.Log.Warn("Skipping malformed activity date",
				zap.Uint("userID", userID),
				zap.String("date", d),
			)
			continue
		}
		completed[util.FormatDate(t)] = struct{}{}
	}

	streak := 0
	for day := util.FormatDate(start); ; {
		if _, ok := completed[day]; !ok {
			return streak, nil
		}
		streak++
		if day, err = util.AddDays(day, -1); err != nil {
			return 0, err
		}
	}
}

// EvaluateAndAwardBadges 为恰好等于 currentStreak 的里程碑颁发徽章。
// 单个阈值失败只记录日志，不影响其它阈值；返回值不为 nil
func (e *StreakEvaluator) EvaluateAndAwardBadges(ctx context.Context, userID uint, kind string, currentStreak int, today string) []model.Badge {
	ctx, span := tracing.Tracer.Start(ctx, "StreakEvaluator.EvaluateAndAwardBadges")
	defer span.End()
	span.SetAttributes(
		attribute.String("activity.kind", kind),
		attribute.Int("activity.streak", currentStreak),
	)

	var qualifying []model.Milestone
	for _, m := range e.Milestones[kind] {
		if m.Threshold == currentStreak {
			qualifying = append(qualifying, m)
		}
	}
	return e.awardMilestones(ctx, userID, kind, qualifying, today)
}

func (e *StreakEvaluator) awardMilestones(ctx context.Context, userID uint, kind string, qualifying []model.Milestone, today string) []model.Badge {
	awarded := make([]model.Badge, 0, len(qualifying))
	for _, m := range qualifying {
		badge, ok := e.award(ctx, userID, kind, m, today)
		if ok {
			awarded = append(awarded, *badge)
		}
	}
	return awarded
}

func (e *StreakEvaluator) award(ctx context.Context, userID uint, kind string, m model.Milestone, today string) (*model.Badge, bool) {
	fields := []zap.Field{
		zap.Uint("userID", userID),
		zap.String("kind", kind),
		zap.Int("threshold", m.Threshold),
	}

	exists, err := e.Badges.Exists(ctx, userID, kind, m.Threshold)
	if err != nil {
		monitoring.BadgeEvaluationFailures.WithLabelValues(kind, "exists").Inc()
		logger.Log.Error("Failed to check badge", append(fields, zap.Error(err))...)
		return nil, false
	}
	if exists {
		return nil, false
	}

	badge := &model.Badge{
		UserID:              userID,
		BadgeType:           kind,
		BadgeName:           m.Name,
		Message:             m.Message,
		StreakDaysThreshold: m.Threshold,
		EarnedDate:          today,
	}
	created, err := e.Badges.Insert(ctx, badge)
	if err != nil {
		monitoring.BadgeEvaluationFailures.WithLabelValues(kind, "insert").Inc()
		logger.Log.Error("Failed to insert badge", append(fields, zap.Error(err))...)
		return nil, false
	}
	if !created {
		// 并发请求已颁发
		return nil, false
	}

	monitoring.BadgesAwarded.WithLabelValues(kind, strconv.Itoa(m.Threshold)).Inc()
	logger.Log.Info("Badge awarded", append(fields, zap.String("badge", m.Name))...)
	return badge, true
}
