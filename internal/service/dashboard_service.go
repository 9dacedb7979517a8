package service

import (
	"context"
	"errors"

	"planner_backend/internal/model"
	"planner_backend/internal/util"

	"golang.org/x/sync/errgroup"
)

const dashboardBadgeLimit = 5

type DashboardService struct {
	ActivityService    *ActivityService
	EventService       *EventService
	WellnessService    *WellnessService
	BadgeService       *BadgeService
	PreferencesService *PreferencesService
}

// NewDashboardService 创建仪表盘服务
func NewDashboardService(
	activityService *ActivityService,
	eventService *EventService,
	wellnessService *WellnessService,
	badgeService *BadgeService,
	preferencesService *PreferencesService,
) *DashboardService {
	return &DashboardService{
		ActivityService:    activityService,
		EventService:       eventService,
		WellnessService:    wellnessService,
		BadgeService:       badgeService,
		PreferencesService: preferencesService,
	}
}

// swagger:model Dashboard
type Dashboard struct {
	Date         string             `json:"date"`
	TodayEvents  []model.Event      `json:"todayEvents"`
	Streaks      map[string]int     `json:"streaks"`
	Wellness     *model.WellnessLog `json:"wellness"`
	LatestBadges []model.Badge      `json:"latestBadges"`
	Goals        []string           `json:"goals"`
}

// GetUserDashboard 汇总用户今日数据
func (s *DashboardService) GetUserDashboard(ctx context.Context, userID uint) (*Dashboard, error) {
	today := s.ActivityService.Today()
	dashboard := &Dashboard{
		Date:    today,
		Streaks: make(map[string]int, len(model.ActivityKinds)),
	}
	streaks := make([]int, len(model.ActivityKinds))

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		events, err := s.EventService.OnDate(ctx, userID, today)
		dashboard.TodayEvents = events
		return err
	})

	for i, kind := range model.ActivityKinds {
		g.Go(func() error {
			streak, err := s.ActivityService.CurrentStreak(ctx, userID, kind)
			streaks[i] = streak
			return err
		})
	}

	g.Go(func() error {
		log, err := s.WellnessService.Get(ctx, userID, today)
		if errors.Is(err, util.ErrNotFound) {
			return nil
		}
		dashboard.Wellness = log
		return err
	})

	g.Go(func() error {
		badges, err := s.BadgeService.LatestBadges(ctx, userID, dashboardBadgeLimit)
		dashboard.LatestBadges = badges
		return err
	})

	g.Go(func() error {
		prefs, err := s.PreferencesService.Load(ctx, userID)
		if err != nil {
			return err
		}
		dashboard.Goals = prefs.Goals
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	for i, kind := range model.ActivityKinds {
		dashboard.Streaks[kind] = streaks[i]
	}
	return dashboard, nil
}
