package controller

import (
	"planner_backend/internal/model"
	"planner_backend/internal/service"
	"planner_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type HabitController struct {
	HabitService *service.HabitService
}

func NewHabitController(habitService *service.HabitService) *HabitController {
	return &HabitController{HabitService: habitService}
}

// swagger:model CreateHabitRequest
type CreateHabitRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Frequency   string `json:"frequency"`
	Color       string `json:"color"`
}

// CreateHabit godoc
// @Summary 创建习惯
// @Tags 习惯
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body CreateHabitRequest true "习惯"
// @Success 201 {object} util.Response{data=model.Habit} "创建成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Router /api/habits [post]
func (c *HabitController) CreateHabit(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var req CreateHabitRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	habit := &model.Habit{
		Title:       req.Title,
		Description: req.Description,
		Frequency:   req.Frequency,
		Color:       req.Color,
	}
	if err := c.HabitService.Create(ctx.Request.Context(), userID, habit); err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Created(ctx, habit)
}

// ListHabits godoc
// @Summary 习惯列表
// @Tags 习惯
// @Produce  json
// @Security BearerAuth
// @Param   includeArchived query bool false "包含已归档"
// @Success 200 {object} util.Response{data=[]model.Habit} "成功"
// @Router /api/habits [get]
func (c *HabitController) ListHabits(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	habits, err := c.HabitService.List(ctx.Request.Context(), userID, ctx.Query("includeArchived") == "true")
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, habits)
}

// GetHabit godoc
// @Summary 习惯详情
// @Tags 习惯
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "习惯ID"
// @Success 200 {object} util.Response{data=model.Habit} "成功"
// @Failure 404 {object} util.Response "不存在"
// @Router /api/habits/{id} [get]
func (c *HabitController) GetHabit(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	habit, err := c.HabitService.Get(ctx.Request.Context(), userID, id)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, habit)
}

// UpdateHabit godoc
// @Summary 部分更新习惯
// @Tags 习惯
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "习惯ID"
// @Param   body body model.HabitPatch true "需要修改的字段"
// @Success 200 {object} util.Response{data=model.Habit} "成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Failure 404 {object} util.Response "不存在"
// @Router /api/habits/{id} [patch]
func (c *HabitController) UpdateHabit(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	var patch model.HabitPatch
	if err := ctx.ShouldBindJSON(&patch); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	habit, err := c.HabitService.Update(ctx.Request.Context(), userID, id, patch)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, habit)
}

// DeleteHabit godoc
// @Summary 删除习惯
// @Tags 习惯
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "习惯ID"
// @Success 200 {object} util.Response "成功"
// @Failure 404 {object} util.Response "不存在"
// @Router /api/habits/{id} [delete]
func (c *HabitController) DeleteHabit(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	if err := c.HabitService.Delete(ctx.Request.Context(), userID, id); err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
