package controller

import (
	"planner_backend/internal/service"
	"planner_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// UserController 处理用户资料相关的HTTP请求
type UserController struct {
	UserService *service.UserService
}

func NewUserController(userService *service.UserService) *UserController {
	return &UserController{UserService: userService}
}

// swagger:model UpdateProfileRequest
type UpdateProfileRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

// GetProfile godoc
// @Summary 获取当前用户资料
// @Tags 用户
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=model.User} "成功"
// @Failure 401 {object} util.Response "未授权"
// @Failure 404 {object} util.Response "用户不存在"
// @Router /api/profile [get]
func (c *UserController) GetProfile(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	user, err := c.UserService.GetProfile(ctx.Request.Context(), userID)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, user)
}

// UpdateProfile godoc
// @Summary 更新当前用户资料
// @Tags 用户
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body UpdateProfileRequest true "资料"
// @Success 200 {object} util.Response{data=model.User} "成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Router /api/profile [put]
func (c *UserController) UpdateProfile(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var req UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, err := c.UserService.UpdateProfile(ctx.Request.Context(), userID, req.Name)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, user)
}

// UploadAvatar godoc
// @Summary 上传头像
// @Tags 用户
// @Accept  multipart/form-data
// @Produce  json
// @Security BearerAuth
// @Param   avatar formData file true "头像图片"
// @Success 200 {object} util.Response{data=model.User} "成功"
// @Failure 400 {object} util.Response "文件类型不支持"
// @Failure 413 {object} util.Response "文件过大"
// @Router /api/profile/avatar [post]
func (c *UserController) UploadAvatar(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	file, err := ctx.FormFile("avatar")
	if err != nil {
		util.BadRequest(ctx, "请选择要上传的头像")
		return
	}

	user, err := c.UserService.UpdateAvatar(ctx.Request.Context(), userID, file)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, user)
}
