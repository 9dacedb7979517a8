package repository

import (
	"context"

	"planner_backend/internal/model"

	"gorm.io/gorm"
)

type JournalRepository struct {
	DB *gorm.DB
}

// NewJournalRepository 创建新的日记仓库实例
func NewJournalRepository(db *gorm.DB) *JournalRepository {
	return &JournalRepository{DB: db}
}

// Create 创建新的日记
func (r *JournalRepository) Create(ctx context.Context, entry *model.JournalEntry) error {
	return r.DB.WithContext(ctx).Create(entry).Error
}

// List 分页查询日记，返回当前页与总数
func (r *JournalRepository) List(ctx context.Context, userID uint, from, to string, page, pageSize int) ([]model.JournalEntry, int64, error) {
	var entries []model.JournalEntry
	var total int64

	query := dateRange(r.DB.WithContext(ctx).Model(&model.JournalEntry{}).Where("user_id = ?", userID), "entry_date", from, to).
		Session(&gorm.Session{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := query.Order("entry_date DESC, id DESC").Offset(offset).Limit(pageSize).Find(&entries).Error
	return entries, total, err
}

// FindByIDAndUserID 查询属于该用户的日记
func (r *JournalRepository) FindByIDAndUserID(ctx context.Context, id, userID uint) (*model.JournalEntry, error) {
	var entry model.JournalEntry
	err := r.DB.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&entry).Error
	if err != nil {
		return nil, translate(err)
	}
	return &entry, nil
}

// UpdateFields 按字段更新日记
func (r *JournalRepository) UpdateFields(ctx context.Context, entry *model.JournalEntry, changes map[string]interface{}) error {
	return r.DB.WithContext(ctx).Model(entry).Updates(changes).Error
}

// Delete 删除日记
func (r *JournalRepository) Delete(ctx context.Context, entry *model.JournalEntry) error {
	return r.DB.WithContext(ctx).Delete(entry).Error
}
