package controller

import (
	"planner_backend/internal/model"
	"planner_backend/internal/service"
	"planner_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type PreferencesController struct {
	PreferencesService *service.PreferencesService
}

func NewPreferencesController(preferencesService *service.PreferencesService) *PreferencesController {
	return &PreferencesController{PreferencesService: preferencesService}
}

// swagger:model PreferencesRequest
type PreferencesRequest struct {
	Theme string   `json:"theme" binding:"required"`
	Goals []string `json:"goals"`
}

// GetPreferences godoc
// @Summary 获取主题与目标设置
// @Tags 设置
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=model.Preferences} "成功"
// @Router /api/preferences [get]
func (c *PreferencesController) GetPreferences(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	prefs, err := c.PreferencesService.Load(ctx.Request.Context(), userID)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, prefs)
}

// SavePreferences godoc
// @Summary 保存主题与目标设置
// @Tags 设置
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body PreferencesRequest true "设置"
// @Success 200 {object} util.Response{data=model.Preferences} "成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Router /api/preferences [put]
func (c *PreferencesController) SavePreferences(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var req PreferencesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	prefs, err := c.PreferencesService.Save(ctx.Request.Context(), userID, &model.Preferences{
		Theme: req.Theme,
		Goals: req.Goals,
	})
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, prefs)
}
