package controller

import (
	"planner_backend/internal/service"
	"planner_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	DashboardService *service.DashboardService
}

func NewDashboardController(dashboardService *service.DashboardService) *DashboardController {
	return &DashboardController{DashboardService: dashboardService}
}

// @Summary 获取仪表盘数据
// @Description 今日日程、各活动连续天数、今日健康记录、最近徽章与目标
// @Tags 仪表盘
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=service.Dashboard}
// @Router /api/dashboard [get]
func (c *DashboardController) GetDashboard(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	dashboard, err := c.DashboardService.GetUserDashboard(ctx.Request.Context(), userID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, dashboard)
}
