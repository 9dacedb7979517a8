package controller

import (
	"errors"
	"io"

	"planner_backend/internal/service"
	"planner_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ActivityController struct {
	ActivityService *service.ActivityService
}

func NewActivityController(activityService *service.ActivityService) *ActivityController {
	return &ActivityController{ActivityService: activityService}
}

// LogActivityRequest date 为空时取服务端当天，completed 缺省为 true
// swagger:model LogActivityRequest
type LogActivityRequest struct {
	Date      string `json:"date"`
	Completed *bool  `json:"completed"`
}

// LogActivity godoc
// @Summary 记录每日活动
// @Description 写入某天的活动完成情况，返回当前连续天数与新获得的徽章
// @Tags 活动
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   kind path string true "活动类型" Enums(workout, meditation, reading, hydration)
// @Param   body body LogActivityRequest false "活动记录"
// @Success 200 {object} util.Response{data=service.ActivityLogResult} "成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Failure 401 {object} util.Response "未授权"
// @Router /api/activities/{kind} [post]
func (c *ActivityController) LogActivity(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	// 允许空请求体
	var req LogActivityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		util.BadRequest(ctx, err.Error())
		return
	}

	completed := true
	if req.Completed != nil {
		completed = *req.Completed
	}

	result, err := c.ActivityService.LogActivity(ctx.Request.Context(), userID, ctx.Param("kind"), req.Date, completed)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, result)
}

// GetHistory godoc
// @Summary 活动历史
// @Tags 活动
// @Produce  json
// @Security BearerAuth
// @Param   kind path string true "活动类型"
// @Param   from query string false "开始日期 YYYY-MM-DD"
// @Param   to query string false "结束日期 YYYY-MM-DD"
// @Success 200 {object} util.Response{data=[]model.ActivityEntry} "成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Router /api/activities/{kind} [get]
func (c *ActivityController) GetHistory(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	entries, err := c.ActivityService.History(ctx.Request.Context(), userID, ctx.Param("kind"), ctx.Query("from"), ctx.Query("to"))
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, entries)
}

// GetStreak godoc
// @Summary 当前连续天数
// @Tags 活动
// @Produce  json
// @Security BearerAuth
// @Param   kind path string true "活动类型"
// @Success 200 {object} util.Response{data=object} "成功"
// @Router /api/activities/{kind}/streak [get]
func (c *ActivityController) GetStreak(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	kind := ctx.Param("kind")
	streak, err := c.ActivityService.CurrentStreak(ctx.Request.Context(), userID, kind)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{
		"kind":   kind,
		"date":   c.ActivityService.Today(),
		"streak": streak,
	})
}
