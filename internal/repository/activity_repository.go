package repository

import (
	"context"

	"planner_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ActivityEntryRepository struct {
	DB *gorm.DB
}

// NewActivityEntryRepository 创建新的打卡记录仓库实例
func NewActivityEntryRepository(db *gorm.DB) *ActivityEntryRepository {
	return &ActivityEntryRepository{DB: db}
}

// Upsert 按 (user_id, kind, date) 插入或更新完成状态，写入后回读规范行
func (r *ActivityEntryRepository) Upsert(ctx context.Context, entry *model.ActivityEntry) error {
	db := r.DB.WithContext(ctx)
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "kind"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"completed", "updated_at"}),
	}).Create(entry).Error
	if err != nil {
		return err
	}

	// 冲突更新时驱动回填的主键不可靠，按唯一键重新读取
	var stored model.ActivityEntry
	err = db.Where("user_id = ? AND kind = ? AND date = ?", entry.UserID, entry.Kind, entry.Date).
		First(&stored).Error
	if err != nil {
		return err
	}
	*entry = stored
	return nil
}

// CompletedDates 返回 asOf 及之前所有已完成的日期，按日期倒序
func (r *ActivityEntryRepository) CompletedDates(ctx context.Context, userID uint, kind, asOf string) ([]string, error) {
	var dates []string
	err := r.DB.WithContext(ctx).Model(&model.ActivityEntry{}).
		Where("user_id = ? AND kind = ? AND completed = ? AND date <= ?", userID, kind, true, asOf).
		Order("date DESC").
		Pluck("date", &dates).Error
	return dates, err
}

// FindRange 查询日期区间内的打卡记录
func (r *ActivityEntryRepository) FindRange(ctx context.Context, userID uint, kind, from, to string) ([]model.ActivityEntry, error) {
	var entries []model.ActivityEntry
	query := r.DB.WithContext(ctx).Where("user_id = ? AND kind = ?", userID, kind)
	err := dateRange(query, "date", from, to).
		Order("date DESC").
		Find(&entries).Error
	return entries, err
}
