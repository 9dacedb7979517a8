package service

import (
	"context"

	"planner_backend/internal/model"
	"planner_backend/internal/repository"
)

type HabitService struct {
	HabitRepo *repository.HabitRepository
}

// NewHabitService 创建习惯服务
func NewHabitService(habitRepo *repository.HabitRepository) *HabitService {
	return &HabitService{HabitRepo: habitRepo}
}

// Create 创建习惯
func (s *HabitService) Create(ctx context.Context, userID uint, habit *model.Habit) error {
	habit.ID = 0
	habit.UserID = userID
	if err := habit.Validate(); err != nil {
		return err
	}
	return s.HabitRepo.Create(ctx, habit)
}

// List 获取习惯列表
func (s *HabitService) List(ctx context.Context, userID uint, includeArchived bool) ([]model.Habit, error) {
	habits, err := s.HabitRepo.FindByUserID(ctx, userID, includeArchived)
	if err != nil {
		return nil, err
	}
	if habits == nil {
		habits = []model.Habit{}
	}
	return habits, nil
}

// Get 获取习惯
func (s *HabitService) Get(ctx context.Context, userID, id uint) (*model.Habit, error) {
	return s.HabitRepo.FindByIDAndUserID(ctx, id, userID)
}

// Update 部分更新，只写入补丁中出现的字段
func (s *HabitService) Update(ctx context.Context, userID, id uint, patch model.HabitPatch) (*model.Habit, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}

	habit, err := s.HabitRepo.FindByIDAndUserID(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if err := s.HabitRepo.UpdateFields(ctx, habit, patch.Changes()); err != nil {
		return nil, err
	}
	return s.HabitRepo.FindByIDAndUserID(ctx, id, userID)
}

// Delete 删除习惯
func (s *HabitService) Delete(ctx context.Context, userID, id uint) error {
	habit, err := s.HabitRepo.FindByIDAndUserID(ctx, id, userID)
	if err != nil {
		return err
	}
	return s.HabitRepo.Delete(ctx, habit)
}
