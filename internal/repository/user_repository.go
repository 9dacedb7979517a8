package repository

import (
	"context"
	"time"

	"planner_backend/internal/model"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

// NewUserRepository 创建新的用户仓库实例
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

// Create 创建新用户
func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	return r.DB.WithContext(ctx).Create(user).Error
}

// FindByID 根据ID查找用户
func (r *UserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	var user model.User
	err := r.DB.WithContext(ctx).First(&user, id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

// FindByEmail 根据邮箱查找用户
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := r.DB.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

// UpdateProfile 更新用户昵称
func (r *UserRepository) UpdateProfile(ctx context.Context, id uint, name string) error {
	return r.DB.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", id).
		Update("name", name).Error
}

// UpdateAvatar 更新用户头像
func (r *UserRepository) UpdateAvatar(ctx context.Context, id uint, avatar string) error {
	return r.DB.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", id).
		Update("avatar", avatar).Error
}

// UpdateLastLogin 记录最后登录时间
func (r *UserRepository) UpdateLastLogin(ctx context.Context, id uint) error {
	return r.DB.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", id).
		Update("last_login", time.Now()).Error
}

// UpdateLastSeen 供 ActivityMiddleware 异步调用
func (r *UserRepository) UpdateLastSeen(userID uint) error {
	return r.DB.Model(&model.User{}).
		Where("id = ?", userID).
		Update("last_seen", time.Now()).Error
}
