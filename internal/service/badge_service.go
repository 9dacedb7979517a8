package service

import (
	"context"

	"planner_backend/internal/model"
	"planner_backend/internal/repository"
	"planner_backend/internal/util"
)

type BadgeService struct {
	BadgeRepo  *repository.BadgeRepository
	Milestones map[string][]model.Milestone
}

// NewBadgeService 创建徽章服务
func NewBadgeService(badgeRepo *repository.BadgeRepository) *BadgeService {
	return &BadgeService{
		BadgeRepo:  badgeRepo,
		Milestones: model.DefaultMilestones(),
	}
}

// ListBadges 获取用户的徽章列表
func (s *BadgeService) ListBadges(ctx context.Context, userID uint) ([]model.Badge, error) {
	badges, err := s.BadgeRepo.FindByUserCached(ctx, userID)
	if err != nil {
		return nil, err
	}
	if badges == nil {
		badges = []model.Badge{}
	}
	return badges, nil
}

// LatestBadges 仪表盘展示用
func (s *BadgeService) LatestBadges(ctx context.Context, userID uint, limit int) ([]model.Badge, error) {
	badges, err := s.ListBadges(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(badges) > limit {
		badges = badges[:limit]
	}
	return badges, nil
}

// MilestonesFor 没有里程碑表的活动类型返回空列表
func (s *BadgeService) MilestonesFor(kind string) ([]model.Milestone, error) {
	if !model.IsActivityKind(kind) {
		return nil, util.ErrUnknownActivityKind
	}
	milestones := s.Milestones[kind]
	if milestones == nil {
		milestones = []model.Milestone{}
	}
	return milestones, nil
}
