package repository

import (
	"context"

	"planner_backend/internal/model"

	"gorm.io/gorm"
)

type HabitRepository struct {
	DB *gorm.DB
}

// NewHabitRepository 创建新的习惯仓库实例
func NewHabitRepository(db *gorm.DB) *HabitRepository {
	return &HabitRepository{DB: db}
}

// Create 创建新的习惯
func (r *HabitRepository) Create(ctx context.Context, habit *model.Habit) error {
	return r.DB.WithContext(ctx).Create(habit).Error
}

// FindByUserID 查询用户的习惯列表
func (r *HabitRepository) FindByUserID(ctx context.Context, userID uint, includeArchived bool) ([]model.Habit, error) {
	var habits []model.Habit
	query := r.DB.WithContext(ctx).Where("user_id = ?", userID)
	if !includeArchived {
		query = query.Where("archived = ?", false)
	}
	err := query.Order("created_at asc").Find(&habits).Error
	return habits, err
}

// FindByIDAndUserID 查询属于该用户的习惯
func (r *HabitRepository) FindByIDAndUserID(ctx context.Context, id, userID uint) (*model.Habit, error) {
	var habit model.Habit
	err := r.DB.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&habit).Error
	if err != nil {
		return nil, translate(err)
	}
	return &habit, nil
}

// UpdateFields 只写入补丁白名单中的列
func (r *HabitRepository) UpdateFields(ctx context.Context, habit *model.Habit, changes map[string]interface{}) error {
	return r.DB.WithContext(ctx).Model(habit).Updates(changes).Error
}

// Delete 删除习惯
func (r *HabitRepository) Delete(ctx context.Context, habit *model.Habit) error {
	return r.DB.WithContext(ctx).Delete(habit).Error
}
