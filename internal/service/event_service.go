package service

import (
	"context"
	"time"

	"planner_backend/internal/config"
	"planner_backend/internal/model"
	"planner_backend/internal/repository"
	"planner_backend/internal/util"
)

type EventService struct {
	EventRepo *repository.EventRepository
	Location  *time.Location
}

// NewEventService 创建日程服务
func NewEventService(eventRepo *repository.EventRepository, cfg *config.Config) *EventService {
	return &EventService{
		EventRepo: eventRepo,
		Location:  cfg.Location(),
	}
}

// Create 创建日程
func (s *EventService) Create(ctx context.Context, userID uint, event *model.Event) error {
	event.ID = 0
	event.UserID = userID
	if err := event.Validate(); err != nil {
		return err
	}
	event.NormalizeTimes()
	return s.EventRepo.Create(ctx, event)
}

// List 按日期区间（含两端，服务端时区）查询事件
func (s *EventService) List(ctx context.Context, userID uint, from, to string) ([]model.Event, error) {
	if err := util.ValidateRange(from, to); err != nil {
		return nil, err
	}

	// 区间按服务端时区的自然日划分，比较前统一为 UTC
	var start, end time.Time
	if from != "" {
		start = s.dayStart(from).UTC()
	}
	if to != "" {
		end = s.dayStart(to).AddDate(0, 0, 1).UTC()
	}

	events, err := s.EventRepo.FindBetween(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}
	if events == nil {
		events = []model.Event{}
	}
	return events, nil
}

// OnDate 某一天开始的事件
func (s *EventService) OnDate(ctx context.Context, userID uint, date string) ([]model.Event, error) {
	return s.List(ctx, userID, date, date)
}

// Get 获取日程
func (s *EventService) Get(ctx context.Context, userID, id uint) (*model.Event, error) {
	return s.EventRepo.FindByIDAndUserID(ctx, id, userID)
}

// Update 合并补丁后再校验时间区间
func (s *EventService) Update(ctx context.Context, userID, id uint, patch model.EventPatch) (*model.Event, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}

	event, err := s.EventRepo.FindByIDAndUserID(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	// 合并后整体校验，保证结束时间不早于开始时间
	merged := *event
	patch.ApplyTo(&merged)
	if err := merged.Validate(); err != nil {
		return nil, err
	}

	if err := s.EventRepo.UpdateFields(ctx, event, patch.Changes()); err != nil {
		return nil, err
	}
	return s.EventRepo.FindByIDAndUserID(ctx, id, userID)
}

// Delete 删除日程
func (s *EventService) Delete(ctx context.Context, userID, id uint) error {
	event, err := s.EventRepo.FindByIDAndUserID(ctx, id, userID)
	if err != nil {
		return err
	}
	return s.EventRepo.Delete(ctx, event)
}

// dayStart 调用前已校验日期格式
func (s *EventService) dayStart(date string) time.Time {
	t, _ := time.ParseInLocation(util.DateFormat, date, s.Location)
	return t
}
