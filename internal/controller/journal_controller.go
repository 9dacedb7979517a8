package controller

import (
	"math"

	"planner_backend/internal/model"
	"planner_backend/internal/service"
	"planner_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type JournalController struct {
	JournalService *service.JournalService
}

func NewJournalController(journalService *service.JournalService) *JournalController {
	return &JournalController{JournalService: journalService}
}

// swagger:model CreateJournalRequest
type CreateJournalRequest struct {
	EntryDate string `json:"entryDate"`
	Title     string `json:"title" binding:"required"`
	Body      string `json:"body"`
	Mood      string `json:"mood"`
}

// CreateEntry godoc
// @Summary 写日记
// @Description entryDate 为空时取服务端当天
// @Tags 日记
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body CreateJournalRequest true "日记"
// @Success 201 {object} util.Response{data=model.JournalEntry} "创建成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Router /api/journal [post]
func (c *JournalController) CreateEntry(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	var req CreateJournalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	entry := &model.JournalEntry{
		EntryDate: req.EntryDate,
		Title:     req.Title,
		Body:      req.Body,
		Mood:      req.Mood,
	}
	if err := c.JournalService.Create(ctx.Request.Context(), userID, entry); err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Created(ctx, entry)
}

// ListEntries godoc
// @Summary 日记列表
// @Tags 日记
// @Produce  json
// @Security BearerAuth
// @Param   from query string false "开始日期 YYYY-MM-DD"
// @Param   to query string false "结束日期 YYYY-MM-DD"
// @Param   page query int false "页码" default(1)
// @Param   pageSize query int false "每页条数" default(20)
// @Success 200 {object} util.Response{data=util.PageResponse} "成功"
// @Router /api/journal [get]
func (c *JournalController) ListEntries(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	page := util.ClampInt(ctx.Query("page"), 1, 1, math.MaxInt32)
	pageSize := util.ClampInt(ctx.Query("pageSize"), 20, 1, 100)

	entries, total, err := c.JournalService.List(ctx.Request.Context(), userID, ctx.Query("from"), ctx.Query("to"), page, pageSize)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Paged(ctx, entries, total, page, pageSize)
}

// GetEntry godoc
// @Summary 日记详情
// @Tags 日记
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "日记ID"
// @Success 200 {object} util.Response{data=model.JournalEntry} "成功"
// @Failure 404 {object} util.Response "不存在"
// @Router /api/journal/{id} [get]
func (c *JournalController) GetEntry(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	entry, err := c.JournalService.Get(ctx.Request.Context(), userID, id)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, entry)
}

// UpdateEntry godoc
// @Summary 部分更新日记
// @Tags 日记
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "日记ID"
// @Param   body body model.JournalPatch true "需要修改的字段"
// @Success 200 {object} util.Response{data=model.JournalEntry} "成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Failure 404 {object} util.Response "不存在"
// @Router /api/journal/{id} [patch]
func (c *JournalController) UpdateEntry(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	var patch model.JournalPatch
	if err := ctx.ShouldBindJSON(&patch); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	entry, err := c.JournalService.Update(ctx.Request.Context(), userID, id, patch)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, entry)
}

// DeleteEntry godoc
// @Summary 删除日记
// @Tags 日记
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "日记ID"
// @Success 200 {object} util.Response "成功"
// @Failure 404 {object} util.Response "不存在"
// @Router /api/journal/{id} [delete]
func (c *JournalController) DeleteEntry(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	if err := c.JournalService.Delete(ctx.Request.Context(), userID, id); err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
