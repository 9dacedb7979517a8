package service

import (
	"context"
	"time"

	"planner_backend/internal/config"
	"planner_backend/internal/model"
	"planner_backend/internal/repository"
	"planner_backend/internal/util"
)

type WellnessService struct {
	WellnessRepo *repository.WellnessRepository
	Location     *time.Location
	Now          func() time.Time
}

// NewWellnessService 创建健康记录服务
func NewWellnessService(wellnessRepo *repository.WellnessRepository, cfg *config.Config) *WellnessService {
	return &WellnessService{
		WellnessRepo: wellnessRepo,
		Location:     cfg.Location(),
		Now:          time.Now,
	}
}

// Save 覆盖写入某一天的健康记录，不接受未来日期
func (s *WellnessService) Save(ctx context.Context, userID uint, date string, log *model.WellnessLog) (*model.WellnessLog, error) {
	if _, err := util.ParseDate(date); err != nil {
		return nil, err
	}
	if date > util.DateIn(s.Now(), s.Location) {
		return nil, util.ErrFutureDate
	}
	if err := log.Validate(); err != nil {
		return nil, err
	}

	log.ID = 0
	log.UserID = userID
	log.Date = date
	if err := s.WellnessRepo.Upsert(ctx, log); err != nil {
		return nil, err
	}
	return log, nil
}

// Get 获取指定日期的健康记录
func (s *WellnessService) Get(ctx context.Context, userID uint, date string) (*model.WellnessLog, error) {
	if _, err := util.ParseDate(date); err != nil {
		return nil, err
	}
	return s.WellnessRepo.FindByDate(ctx, userID, date)
}

// List 获取日期区间内的健康记录
func (s *WellnessService) List(ctx context.Context, userID uint, from, to string) ([]model.WellnessLog, error) {
	if err := util.ValidateRange(from, to); err != nil {
		return nil, err
	}
	logs, err := s.WellnessRepo.FindRange(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}
	if logs == nil {
		logs = []model.WellnessLog{}
	}
	return logs, nil
}
