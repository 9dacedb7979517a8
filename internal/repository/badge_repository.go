package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"planner_backend/internal/model"
	"planner_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const badgeCacheTTL = 10 * time.Minute

type BadgeRepository struct {
	DB    *gorm.DB
	Redis *redis.Client
}

// NewBadgeRepository 创建新的徽章仓库实例，rdb 可为 nil
func NewBadgeRepository(db *gorm.DB, rdb *redis.Client) *BadgeRepository {
	return &BadgeRepository{DB: db, Redis: rdb}
}

func badgeCacheKey(userID uint) string {
	return fmt.Sprintf("planner:badges:%d", userID)
}

// Exists 检查该用户是否已获得此里程碑徽章
func (r *BadgeRepository) Exists(ctx context.Context, userID uint, badgeType string, threshold int) (bool, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.Badge{}).
		Where("user_id = ? AND badge_type = ? AND streak_days_threshold = ?", userID, badgeType, threshold).
		Count(&count).Error
	return count > 0, err
}

// Insert 依赖 (user_id, badge_type, streak_days_threshold) 唯一索引去重，
// 未插入任何行时返回 false
func (r *BadgeRepository) Insert(ctx context.Context, badge *model.Badge) (bool, error) {
	result := r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(badge)
	if result.Error != nil {
		return false, result.Error
	}
	if result.RowsAffected == 0 {
		return false, nil
	}

	if r.Redis != nil {
		r.Redis.Del(ctx, badgeCacheKey(badge.UserID))
	}
	return true, nil
}

// FindByUser 查询用户全部徽章，优先读缓存
func (r *BadgeRepository) FindByUser(ctx context.Context, userID uint) ([]model.Badge, error) {
	var badges []model.Badge
	err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("earned_date DESC, streak_days_threshold DESC").
		Find(&badges).Error
	return badges, err
}

// FindByUserCached 徽章只增不改，缓存在颁发新徽章时失效
func (r *BadgeRepository) FindByUserCached(ctx context.Context, userID uint) ([]model.Badge, error) {
	if r.Redis == nil {
		return r.FindByUser(ctx, userID)
	}

	key := badgeCacheKey(userID)
	cached, err := r.Redis.Get(ctx, key).Bytes()
	if err == nil {
		var badges []model.Badge
		if err := json.Unmarshal(cached, &badges); err == nil {
			return badges, nil
		}
	} else if err != redis.Nil {
		logger.Log.Warn("badge cache read failed", zap.Uint("userID", userID), zap.Error(err))
	}

	// 缓存失效，回源数据库
	badges, err := r.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if data, err := json.Marshal(badges); err == nil {
		r.Redis.Set(ctx, key, data, badgeCacheTTL)
	}
	return badges, nil
}
