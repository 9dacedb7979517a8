package service

import (
	"context"
	"time"

	"planner_backend/internal/config"
	"planner_backend/internal/model"
	"planner_backend/internal/repository"
	"planner_backend/internal/util"
)

type JournalService struct {
	JournalRepo *repository.JournalRepository
	Location    *time.Location
	Now         func() time.Time
}

// NewJournalService 创建日记服务
func NewJournalService(journalRepo *repository.JournalRepository, cfg *config.Config) *JournalService {
	return &JournalService{
		JournalRepo: journalRepo,
		Location:    cfg.Location(),
		Now:         time.Now,
	}
}

// Create 创建日记，未指定日期时使用今天
func (s *JournalService) Create(ctx context.Context, userID uint, entry *model.JournalEntry) error {
	if entry.EntryDate == "" {
		entry.EntryDate = util.DateIn(s.Now(), s.Location)
	}
	if _, err := util.ParseDate(entry.EntryDate); err != nil {
		return err
	}
	if err := entry.Validate(); err != nil {
		return err
	}

	entry.ID = 0
	entry.UserID = userID
	return s.JournalRepo.Create(ctx, entry)
}

// List 分页获取日记
func (s *JournalService) List(ctx context.Context, userID uint, from, to string, page, pageSize int) ([]model.JournalEntry, int64, error) {
	if err := util.ValidateRange(from, to); err != nil {
		return nil, 0, err
	}
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	entries, total, err := s.JournalRepo.List(ctx, userID, from, to, page, pageSize)
	if err != nil {
		return nil, 0, err
	}
	if entries == nil {
		entries = []model.JournalEntry{}
	}
	return entries, total, nil
}

// Get 获取日记
func (s *JournalService) Get(ctx context.Context, userID, id uint) (*model.JournalEntry, error) {
	return s.JournalRepo.FindByIDAndUserID(ctx, id, userID)
}

// Update 更新日记
func (s *JournalService) Update(ctx context.Context, userID, id uint, patch model.JournalPatch) (*model.JournalEntry, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}

	entry, err := s.JournalRepo.FindByIDAndUserID(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if err := s.JournalRepo.UpdateFields(ctx, entry, patch.Changes()); err != nil {
		return nil, err
	}
	return s.JournalRepo.FindByIDAndUserID(ctx, id, userID)
}

// Delete 删除日记
func (s *JournalService) Delete(ctx context.Context, userID, id uint) error {
	entry, err := s.JournalRepo.FindByIDAndUserID(ctx, id, userID)
	if err != nil {
		return err
	}
	return s.JournalRepo.Delete(ctx, entry)
}
