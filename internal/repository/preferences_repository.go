package repository

import (
	"context"

	"planner_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PreferencesRepository struct {
	DB *gorm.DB
}

// NewPreferencesRepository 创建新的偏好设置仓库实例
func NewPreferencesRepository(db *gorm.DB) *PreferencesRepository {
	return &PreferencesRepository{DB: db}
}

// FindByUserID 查询用户偏好设置
func (r *PreferencesRepository) FindByUserID(ctx context.Context, userID uint) (*model.Preferences, error) {
	var prefs model.Preferences
	err := r.DB.WithContext(ctx).Where("user_id = ?", userID).First(&prefs).Error
	if err != nil {
		return nil, translate(err)
	}
	return &prefs, nil
}

// Save 保存偏好设置
func (r *PreferencesRepository) Save(ctx context.Context, prefs *model.Preferences) error {
	return r.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"theme", "goals", "updated_at"}),
	}).Create(prefs).Error
}
