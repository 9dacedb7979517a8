package controller

import (
	"errors"
	"net/http"

	"planner_backend/internal/model"
	"planner_backend/internal/util"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// currentUserID 未登录时直接写入 401
func currentUserID(ctx *gin.Context) (uint, bool) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return 0, false
	}
	return claims.UserID, true
}

func parseID(ctx *gin.Context) (uint, bool) {
	id, err := util.ParseID(ctx.Param("id"))
	if err != nil {
		util.BadRequest(ctx, "无效的ID")
		return 0, false
	}
	return id, true
}

// handleServiceError 将业务错误映射为对应的 HTTP 状态码
func handleServiceError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrNotFound), errors.Is(err, util.ErrUserNotFound):
		util.NotFound(ctx)
	case errors.Is(err, util.ErrPermissionDenied):
		util.Forbidden(ctx)
	case errors.Is(err, util.ErrFileTooLarge):
		util.Error(ctx, http.StatusRequestEntityTooLarge, err.Error())
	case errors.Is(err, util.ErrUnknownActivityKind),
		errors.Is(err, util.ErrInvalidDate),
		errors.Is(err, util.ErrFutureDate),
		errors.Is(err, util.ErrInvalidRange),
		errors.Is(err, util.ErrInvalidFileType),
		errors.Is(err, model.ErrEmptyPatch),
		errors.Is(err, model.ErrInvalidField),
		errors.Is(err, bcrypt.ErrPasswordTooLong):
		util.BadRequest(ctx, err.Error())
	default:
		util.LogInternalError(ctx, err)
	}
}
