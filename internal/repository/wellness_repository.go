package repository

import (
	"context"

	"planner_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type WellnessRepository struct {
	DB *gorm.DB
}

// NewWellnessRepository 创建新的健康记录仓库实例
func NewWellnessRepository(db *gorm.DB) *WellnessRepository {
	return &WellnessRepository{DB: db}
}

// Upsert 同一天的记录整体覆盖
func (r *WellnessRepository) Upsert(ctx context.Context, log *model.WellnessLog) error {
	db := r.DB.WithContext(ctx)
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"mood", "sleep_hours", "water_glasses", "note", "updated_at"}),
	}).Create(log).Error
	if err != nil {
		return err
	}

	var stored model.WellnessLog
	if err := db.Where("user_id = ? AND date = ?", log.UserID, log.Date).First(&stored).Error; err != nil {
		return err
	}
	*log = stored
	return nil
}

// FindByDate 查询指定日期的健康记录
func (r *WellnessRepository) FindByDate(ctx context.Context, userID uint, date string) (*model.WellnessLog, error) {
	var log model.WellnessLog
	err := r.DB.WithContext(ctx).Where("user_id = ? AND date = ?", userID, date).First(&log).Error
	if err != nil {
		return nil, translate(err)
	}
	return &log, nil
}

// FindRange 查询日期区间内的健康记录
func (r *WellnessRepository) FindRange(ctx context.Context, userID uint, from, to string) ([]model.WellnessLog, error) {
	var logs []model.WellnessLog
	query := r.DB.WithContext(ctx).Where("user_id = ?", userID)
	err := dateRange(query, "date", from, to).Order("date DESC").Find(&logs).Error
	return logs, err
}
