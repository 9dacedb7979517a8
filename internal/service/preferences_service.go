package service

import (
	"context"
	"errors"
	"strings"

	"planner_backend/internal/model"
	"planner_backend/internal/repository"
	"planner_backend/internal/util"
)

// PreferencesService 主题与目标的持久化，读写均显式经过该服务
type PreferencesService struct {
	PrefsRepo *repository.PreferencesRepository
}

// NewPreferencesService 创建偏好设置服务
func NewPreferencesService(prefsRepo *repository.PreferencesRepository) *PreferencesService {
	return &PreferencesService{PrefsRepo: prefsRepo}
}

// Load 用户尚未保存过时返回默认设置
func (s *PreferencesService) Load(ctx context.Context, userID uint) (*model.Preferences, error) {
	prefs, err := s.PrefsRepo.FindByUserID(ctx, userID)
	if errors.Is(err, util.ErrNotFound) {
		return model.DefaultPreferences(userID), nil
	}
	if err != nil {
		return nil, err
	}
	if prefs.Goals == nil {
		prefs.Goals = []string{}
	}
	return prefs, nil
}

// Save 校验通过后整体覆盖
func (s *PreferencesService) Save(ctx context.Context, userID uint, prefs *model.Preferences) (*model.Preferences, error) {
	goals := make([]string, 0, len(prefs.Goals))
	for _, g := range prefs.Goals {
		goals = append(goals, strings.TrimSpace(g))
	}

	toSave := &model.Preferences{
		UserID: userID,
		Theme:  prefs.Theme,
		Goals:  goals,
	}
	if err := toSave.Validate(); err != nil {
		return nil, err
	}
	if err := s.PrefsRepo.Save(ctx, toSave); err != nil {
		return nil, err
	}
	return s.Load(ctx, userID)
}
