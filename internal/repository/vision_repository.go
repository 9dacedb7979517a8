package repository

import (
	"context"

	"planner_backend/internal/model"

	"gorm.io/gorm"
)

type VisionRepository struct {
	DB *gorm.DB
}

// NewVisionRepository 创建新的愿景板仓库实例
func NewVisionRepository(db *gorm.DB) *VisionRepository {
	return &VisionRepository{DB: db}
}

// Create 创建新的愿景板条目
func (r *VisionRepository) Create(ctx context.Context, item *model.VisionItem) error {
	return r.DB.WithContext(ctx).Create(item).Error
}

// FindByUserID 按位置顺序查询用户的愿景板
func (r *VisionRepository) FindByUserID(ctx context.Context, userID uint) ([]model.VisionItem, error) {
	var items []model.VisionItem
	err := r.DB.WithContext(ctx).Where("user_id = ?", userID).
		Order("position asc, id asc").
		Find(&items).Error
	return items, err
}

// NextPosition 返回下一个可用位置
func (r *VisionRepository) NextPosition(ctx context.Context, userID uint) (int, error) {
	var maxPos int
	err := r.DB.WithContext(ctx).Model(&model.VisionItem{}).
		Where("user_id = ?", userID).
		Select("COALESCE(MAX(position), -1)").
		Scan(&maxPos).Error
	if err != nil {
		return 0, err
	}
	return maxPos + 1, nil
}

// FindByIDAndUserID 查询属于该用户的愿景板条目
func (r *VisionRepository) FindByIDAndUserID(ctx context.Context, id, userID uint) (*model.VisionItem, error) {
	var item model.VisionItem
	err := r.DB.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&item).Error
	if err != nil {
		return nil, translate(err)
	}
	return &item, nil
}

// UpdateFields 按字段更新愿景板条目
func (r *VisionRepository) UpdateFields(ctx context.Context, item *model.VisionItem, changes map[string]interface{}) error {
	return r.DB.WithContext(ctx).Model(item).Updates(changes).Error
}

// Delete 删除愿景板条目
func (r *VisionRepository) Delete(ctx context.Context, item *model.VisionItem) error {
	return r.DB.WithContext(ctx).Delete(item).Error
}
