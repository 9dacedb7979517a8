package service

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	"planner_backend/internal/model"
	"planner_backend/internal/repository"
	"planner_backend/internal/util"
	"planner_backend/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type VisionBoardService struct {
	VisionRepo *repository.VisionRepository
	Storage    *StorageService
}

// NewVisionBoardService 创建愿景板服务
func NewVisionBoardService(visionRepo *repository.VisionRepository, storage *StorageService) *VisionBoardService {
	return &VisionBoardService{
		VisionRepo: visionRepo,
		Storage:    storage,
	}
}

// uploadImage 按扩展名、大小和文件头校验图片后上传，返回访问地址与 MIME 类型
func uploadImage(ctx context.Context, storage *StorageService, file *multipart.FileHeader, key string) (string, string, error) {
	if !util.HasAllowedExtension(file.Filename, util.AllowedImageExtensions) {
		return "", "", util.ErrInvalidFileType
	}
	if file.Size > util.MaxImageSize {
		return "", "", util.ErrFileTooLarge
	}

	src, err := file.Open()
	if err != nil {
		return "", "", err
	}
	defer src.Close()

	contentType, err := util.ValidateMimeType(src, []string{util.MimeImage})
	if err != nil {
		return "", "", err
	}
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return "", "", err
	}

	url, err := storage.Upload(ctx, key, src, file.Size, contentType)
	if err != nil {
		return "", "", err
	}
	return url, contentType, nil
}

// AddItem 上传图片并追加到愿景板末尾
func (s *VisionBoardService) AddItem(ctx context.Context, userID uint, file *multipart.FileHeader, caption string) (*model.VisionItem, error) {
	patch := model.VisionItemPatch{Caption: &caption}
	if err := patch.Validate(); err != nil {
		return nil, err
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	key := fmt.Sprintf("vision-board/%d/%s%s", userID, uuid.New().String(), ext)
	url, _, err := uploadImage(ctx, s.Storage, file, key)
	if err != nil {
		return nil, err
	}

	position, err := s.VisionRepo.NextPosition(ctx, userID)
	if err != nil {
		s.discard(ctx, key)
		return nil, err
	}

	item := &model.VisionItem{
		UserID:    userID,
		ImageURL:  url,
		ObjectKey: key,
		Caption:   strings.TrimSpace(caption),
		Position:  position,
	}
	if err := s.VisionRepo.Create(ctx, item); err != nil {
		s.discard(ctx, key)
		return nil, err
	}
	return item, nil
}

// List 获取愿景板
func (s *VisionBoardService) List(ctx context.Context, userID uint) ([]model.VisionItem, error) {
	items, err := s.VisionRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []model.VisionItem{}
	}
	return items, nil
}

// Update 更新愿景板条目
func (s *VisionBoardService) Update(ctx context.Context, userID, id uint, patch model.VisionItemPatch) (*model.VisionItem, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}

	item, err := s.VisionRepo.FindByIDAndUserID(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if err := s.VisionRepo.UpdateFields(ctx, item, patch.Changes()); err != nil {
		return nil, err
	}
	return s.VisionRepo.FindByIDAndUserID(ctx, id, userID)
}

// Delete 先删记录再删对象，对象删除失败只记录日志
func (s *VisionBoardService) Delete(ctx context.Context, userID, id uint) error {
	item, err := s.VisionRepo.FindByIDAndUserID(ctx, id, userID)
	if err != nil {
		return err
	}
	if err := s.VisionRepo.Delete(ctx, item); err != nil {
		return err
	}
	s.discard(ctx, item.ObjectKey)
	return nil
}

func (s *VisionBoardService) discard(ctx context.Context, key string) {
	if err := s.Storage.Delete(ctx, key); err != nil {
		logger.Log.Warn("Failed to delete stored object", zap.String("key", key), zap.Error(err))
	}
}
