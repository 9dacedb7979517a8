package controller

import (
	"planner_backend/internal/model"
	"planner_backend/internal/service"
	"planner_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type WellnessController struct {
	WellnessService *service.WellnessService
}

func NewWellnessController(wellnessService *service.WellnessService) *WellnessController {
	return &WellnessController{WellnessService: wellnessService}
}

// swagger:model WellnessRequest
type WellnessRequest struct {
	Mood         int     `json:"mood"`
	SleepHours   float64 `json:"sleepHours"`
	WaterGlasses int     `json:"waterGlasses"`
	Note         string  `json:"note"`
}

// SaveWellness godoc
// @Summary 保存某天的健康记录
// @Description 同一天重复提交会覆盖之前的记录
// @Tags 健康
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   date path string true "日期 YYYY-MM-DD"
// @Param   body body WellnessRequest true "健康记录"
// @Success 200 {object} util.Response{data=model.WellnessLog} "成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Router /api/wellness/{date} [put]
func (c *WellnessController) SaveWellness(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var req WellnessRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	log := &model.WellnessLog{
		Mood:         req.Mood,
		SleepHours:   req.SleepHours,
		WaterGlasses: req.WaterGlasses,
		Note:         req.Note,
	}
	saved, err := c.WellnessService.Save(ctx.Request.Context(), userID, ctx.Param("date"), log)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, saved)
}

// GetWellness godoc
// @Summary 某天的健康记录
// @Tags 健康
// @Produce  json
// @Security BearerAuth
// @Param   date path string true "日期 YYYY-MM-DD"
// @Success 200 {object} util.Response{data=model.WellnessLog} "成功"
// @Failure 404 {object} util.Response "不存在"
// @Router /api/wellness/{date} [get]
func (c *WellnessController) GetWellness(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	log, err := c.WellnessService.Get(ctx.Request.Context(), userID, ctx.Param("date"))
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, log)
}

// ListWellness godoc
// @Summary 健康记录列表
// @Tags 健康
// @Produce  json
// @Security BearerAuth
// @Param   from query string false "开始日期 YYYY-MM-DD"
// @Param   to query string false "结束日期 YYYY-MM-DD"
// @Success 200 {object} util.Response{data=[]model.WellnessLog} "成功"
// @Router /api/wellness [get]
func (c *WellnessController) ListWellness(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	logs, err := c.WellnessService.List(ctx.Request.Context(), userID, ctx.Query("from"), ctx.Query("to"))
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, logs)
}
