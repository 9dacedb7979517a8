package repository

import (
	"context"
	"time"

	"planner_backend/internal/model"

	"gorm.io/gorm"
)

type EventRepository struct {
	DB *gorm.DB
}

// NewEventRepository 创建新的日程仓库实例
func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{DB: db}
}

// Create 创建新的日程
func (r *EventRepository) Create(ctx context.Context, event *model.Event) error {
	return r.DB.WithContext(ctx).Create(event).Error
}

// FindBetween 返回 [from, to) 区间内开始的事件，零值表示不限。
// SQLite 以带偏移的文本保存时间，参数与存储值都必须是 UTC 才能按字符串比较
func (r *EventRepository) FindBetween(ctx context.Context, userID uint, from, to time.Time) ([]model.Event, error) {
	var events []model.Event
	query := r.DB.WithContext(ctx).Where("user_id = ?", userID)
	if !from.IsZero() {
		query = query.Where("starts_at >= ?", from.UTC())
	}
	if !to.IsZero() {
		query = query.Where("starts_at < ?", to.UTC())
	}
	err := query.Order("starts_at asc").Find(&events).Error
	return events, err
}

// FindByIDAndUserID 查询属于该用户的日程
func (r *EventRepository) FindByIDAndUserID(ctx context.Context, id, userID uint) (*model.Event, error) {
	var event model.Event
	err := r.DB.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&event).Error
	if err != nil {
		return nil, translate(err)
	}
	return &event, nil
}

// UpdateFields 按字段更新日程
func (r *EventRepository) UpdateFields(ctx context.Context, event *model.Event, changes map[string]interface{}) error {
	return r.DB.WithContext(ctx).Model(event).Updates(changes).Error
}

// Delete 删除日程
func (r *EventRepository) Delete(ctx context.Context, event *model.Event) error {
	return r.DB.WithContext(ctx).Delete(event).Error
}
