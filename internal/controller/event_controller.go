package controller

import (
	"time"

	"planner_backend/internal/model"
	"planner_backend/internal/service"
	"planner_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type EventController struct {
	EventService *service.EventService
}

func NewEventController(eventService *service.EventService) *EventController {
	return &EventController{EventService: eventService}
}

// swagger:model CreateEventRequest
type CreateEventRequest struct {
	Title    string     `json:"title" binding:"required"`
	Notes    string     `json:"notes"`
	Location string     `json:"location"`
	StartsAt time.Time  `json:"startsAt" binding:"required"`
	EndsAt   *time.Time `json:"endsAt"`
	AllDay   bool       `json:"allDay"`
}

// CreateEvent godoc
// @Summary 创建日程
// @Tags 日程
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body CreateEventRequest true "日程"
// @Success 201 {object} util.Response{data=model.Event} "创建成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Router /api/events [post]
func (c *EventController) CreateEvent(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var req CreateEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	event := &model.Event{
		Title:    req.Title,
		Notes:    req.Notes,
		Location: req.Location,
		StartsAt: req.StartsAt,
		EndsAt:   req.EndsAt,
		AllDay:   req.AllDay,
	}
	if err := c.EventService.Create(ctx.Request.Context(), userID, event); err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Created(ctx, event)
}

// ListEvents godoc
// @Summary 日程列表
// @Tags 日程
// @Produce  json
// @Security BearerAuth
// @Param   from query string false "开始日期 YYYY-MM-DD"
// @Param   to query string false "结束日期 YYYY-MM-DD"
// @Success 200 {object} util.Response{data=[]model.Event} "成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Router /api/events [get]
func (c *EventController) ListEvents(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	events, err := c.EventService.List(ctx.Request.Context(), userID, ctx.Query("from"), ctx.Query("to"))
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, events)
}

// GetEvent godoc
// @Summary 日程详情
// @Tags 日程
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "日程ID"
// @Success 200 {object} util.Response{data=model.Event} "成功"
// @Failure 404 {object} util.Response "不存在"
// @Router /api/events/{id} [get]
func (c *EventController) GetEvent(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	event, err := c.EventService.Get(ctx.Request.Context(), userID, id)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, event)
}

// UpdateEvent godoc
// @Summary 部分更新日程
// @Tags 日程
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "日程ID"
// @Param   body body model.EventPatch true "需要修改的字段"
// @Success 200 {object} util.Response{data=model.Event} "成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Failure 404 {object} util.Response "不存在"
// @Router /api/events/{id} [patch]
func (c *EventController) UpdateEvent(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	var patch model.EventPatch
	if err := ctx.ShouldBindJSON(&patch); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	event, err := c.EventService.Update(ctx.Request.Context(), userID, id, patch)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, event)
}

// DeleteEvent godoc
// @Summary 删除日程
// @Tags 日程
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "日程ID"
// @Success 200 {object} util.Response "成功"
// @Failure 404 {object} util.Response "不存在"
// @Router /api/events/{id} [delete]
func (c *EventController) DeleteEvent(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	if err := c.EventService.Delete(ctx.Request.Context(), userID, id); err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
