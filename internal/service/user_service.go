package service

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"planner_backend/internal/model"
	"planner_backend/internal/repository"
	"planner_backend/internal/util"

	"github.com/google/uuid"
)

// UserService 处理用户资料相关的业务逻辑
type UserService struct {
	UserRepo *repository.UserRepository
	Storage  *StorageService
}

// NewUserService 创建用户服务
func NewUserService(userRepo *repository.UserRepository, storage *StorageService) *UserService {
	return &UserService{
		UserRepo: userRepo,
		Storage:  storage,
	}
}

// GetProfile 获取用户资料
func (s *UserService) GetProfile(ctx context.Context, userID uint) (*model.User, error) {
	user, err := s.UserRepo.FindByID(ctx, userID)
	if errors.Is(err, util.ErrNotFound) {
		return nil, util.ErrUserNotFound
	}
	return user, err
}

// UpdateProfile 更新用户资料
func (s *UserService) UpdateProfile(ctx context.Context, userID uint, name string) (*model.User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: name must not be empty", model.ErrInvalidField)
	}
	if err := s.UserRepo.UpdateProfile(ctx, userID, name); err != nil {
		return nil, err
	}
	return s.GetProfile(ctx, userID)
}

// UpdateAvatar 上传头像并更新用户资料
func (s *UserService) UpdateAvatar(ctx context.Context, userID uint, file *multipart.FileHeader) (*model.User, error) {
	if _, err := s.GetProfile(ctx, userID); err != nil {
		return nil, err
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	key := fmt.Sprintf("avatars/%d/%s%s", userID, uuid.New().String(), ext)
	url, _, err := uploadImage(ctx, s.Storage, file, key)
	if err != nil {
		return nil, err
	}

	if err := s.UserRepo.UpdateAvatar(ctx, userID, url); err != nil {
		return nil, err
	}
	return s.GetProfile(ctx, userID)
}
