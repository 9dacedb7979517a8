package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"planner_backend/internal/config"
	"planner_backend/internal/model"
	"planner_backend/internal/repository"
	"planner_backend/internal/testutil"
	"planner_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuthService(t *testing.T) *AuthService {
	t.Helper()
	cfg := &config.Config{JWT: config.JWTConfig{Secret: "test-secret", ExpireTime: time.Hour}}
	return NewAuthService(repository.NewUserRepository(testutil.NewTestDB(t)), cfg)
}

func TestAuthService_Register(t *testing.T) {
	svc := newTestAuthService(t)
	ctx := context.Background()

	require.NoError(t, svc.Register(ctx, &model.User{Name: "Ann", Email: "Ann@Example.com ", Password: "password123"}))

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{"邮箱大小写不同视为重复", "ann@example.COM", "password123", util.ErrEmailRegistered},
		// 72 个字符但超过 72 字节
		{"多字节密码超长", "bob@example.com", strings.Repeat("密", 72), model.ErrInvalidField},
		{"单字节密码超长", "bob@example.com", strings.Repeat("a", 73), model.ErrInvalidField},
		{"恰好 72 字节", "bob@example.com", strings.Repeat("a", 72), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.Register(ctx, &model.User{Name: "x", Email: tt.email, Password: tt.password})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	svc := newTestAuthService(t)
	ctx := context.Background()

	user := &model.User{Name: "Ann", Email: "ann@example.com", Password: "password123"}
	require.NoError(t, svc.Register(ctx, user))
	assert.NotEqual(t, "password123", user.Password)

	token, got, err := svc.Login(ctx, " ANN@example.com", "password123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, user.ID, got.ID)

	claims, err := util.ParseJWT(token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)

	_, _, err = svc.Login(ctx, "ann@example.com", "wrong-password")
	assert.ErrorIs(t, err, util.ErrInvalidCredentials)

	_, _, err = svc.Login(ctx, "nobody@example.com", "password123")
	assert.ErrorIs(t, err, util.ErrInvalidCredentials)
}
