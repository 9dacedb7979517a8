package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"planner_backend/internal/config"
	"planner_backend/internal/model"
	"planner_backend/internal/repository"
	"planner_backend/internal/util"
	"planner_backend/pkg/logger"

	"golang.org/x/crypto/bcrypt"
	"go.uber.org/zap"
)

type AuthService struct {
	UserRepo *repository.UserRepository
	Cfg      *config.Config
}

// NewAuthService 创建认证服务
func NewAuthService(userRepo *repository.UserRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		UserRepo: userRepo,
		Cfg:      cfg,
	}
}

// maxPasswordBytes bcrypt 只接受 72 字节以内的输入
const maxPasswordBytes = 72

// Register 创建账号，邮箱统一小写，密码以 bcrypt 保存
func (s *AuthService) Register(ctx context.Context, user *model.User) error {
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	if len(user.Password) > maxPasswordBytes {
		return fmt.Errorf("%w: password must be at most %d bytes", model.ErrInvalidField, maxPasswordBytes)
	}

	_, err := s.UserRepo.FindByEmail(ctx, user.Email)
	if err == nil {
		return util.ErrEmailRegistered
	} else if !errors.Is(err, util.ErrNotFound) {
		return err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.Password = string(hashedPassword)
	return s.UserRepo.Create(ctx, user)
}

// Login 校验凭据并签发 JWT
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	user, err := s.UserRepo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, util.ErrNotFound) {
			return "", nil, util.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, util.ErrInvalidCredentials
	}

	if user.Disabled {
		return "", nil, util.ErrUserDisabled
	}

	token, err := util.GenerateJWT(user, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
	if err != nil {
		return "", nil, err
	}

	if err := s.UserRepo.UpdateLastLogin(ctx, user.ID); err != nil {
		logger.Log.Warn("Failed to update last login", zap.Uint("userID", user.ID), zap.Error(err))
	}
	return token, user, nil
}
