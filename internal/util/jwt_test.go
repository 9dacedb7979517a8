package util

import (
	"net/http/httptest"
	"testing"
	"time"

	"planner_backend/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	user := &model.User{Email: "ada@example.com"}
	user.ID = 42

	token, err := GenerateJWT(user, "secret", time.Hour)
	require.NoError(t, err)

	claims, err := ParseJWT(token, "secret")
	require.NoError(t, err)
	assert.EqualValues(t, 42, claims.UserID)
	assert.Equal(t, "ada@example.com", claims.Email)
}

func TestParseJWTRejects(t *testing.T) {
	user := &model.User{Email: "ada@example.com"}
	user.ID = 1

	token, err := GenerateJWT(user, "secret", time.Hour)
	require.NoError(t, err)
	_, err = ParseJWT(token, "other-secret")
	assert.Error(t, err)

	expired, err := GenerateJWT(user, "secret", -time.Minute)
	require.NoError(t, err)
	_, err = ParseJWT(expired, "secret")
	assert.Error(t, err)

	_, err = ParseJWT("garbage", "secret")
	assert.Error(t, err)
}

func TestGetUserFromContext(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Nil(t, GetUserFromContext(c))

	c.Set("user", "not-claims")
	assert.Nil(t, GetUserFromContext(c))

	c.Set("user", &Claims{UserID: 9})
	require.NotNil(t, GetUserFromContext(c))
	assert.EqualValues(t, 9, GetUserFromContext(c).UserID)
}
