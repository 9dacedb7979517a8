package controller

import (
	"planner_backend/internal/model"
	"planner_backend/internal/service"
	"planner_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type BadgeController struct {
	BadgeService *service.BadgeService
}

func NewBadgeController(badgeService *service.BadgeService) *BadgeController {
	return &BadgeController{BadgeService: badgeService}
}

// ListBadges godoc
// @Summary 我的徽章
// @Description 按获得日期倒序返回
// @Tags 徽章
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.Badge} "成功"
// @Router /api/badges [get]
func (c *BadgeController) ListBadges(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	badges, err := c.BadgeService.ListBadges(ctx.Request.Context(), userID)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, badges)
}

// ListMilestones godoc
// @Summary 徽章里程碑
// @Tags 徽章
// @Produce  json
// @Param   kind query string false "活动类型" default(workout)
// @Success 200 {object} util.Response{data=[]model.Milestone} "成功"
// @Failure 400 {object} util.Response "未知活动类型"
// @Router /api/badges/milestones [get]
func (c *BadgeController) ListMilestones(ctx *gin.Context) {
	milestones, err := c.BadgeService.MilestonesFor(ctx.DefaultQuery("kind", model.ActivityWorkout))
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, milestones)
}
