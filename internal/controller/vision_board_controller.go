package controller

import (
	"planner_backend/internal/model"
	"planner_backend/internal/service"
	"planner_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type VisionBoardController struct {
	VisionBoardService *service.VisionBoardService
}

func NewVisionBoardController(visionBoardService *service.VisionBoardService) *VisionBoardController {
	return &VisionBoardController{VisionBoardService: visionBoardService}
}

// AddItem godoc
// @Summary 上传愿景板图片
// @Tags 愿景板
// @Accept  multipart/form-data
// @Produce  json
// @Security BearerAuth
// @Param   image formData file true "图片"
// @Param   caption formData string false "说明"
// @Success 201 {object} util.Response{data=model.VisionItem} "创建成功"
// @Failure 400 {object} util.Response "文件类型不支持"
// @Failure 413 {object} util.Response "文件过大"
// @Router /api/vision-board [post]
func (c *VisionBoardController) AddItem(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	file, err := ctx.FormFile("image")
	if err != nil {
		util.BadRequest(ctx, "请选择要上传的图片")
		return
	}

	item, err := c.VisionBoardService.AddItem(ctx.Request.Context(), userID, file, ctx.PostForm("caption"))
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Created(ctx, item)
}

// ListItems godoc
// @Summary 愿景板
// @Tags 愿景板
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.VisionItem} "成功"
// @Router /api/vision-board [get]
func (c *VisionBoardController) ListItems(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	items, err := c.VisionBoardService.List(ctx.Request.Context(), userID)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, items)
}

// UpdateItem godoc
// @Summary 修改图片说明或位置
// @Tags 愿景板
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "图片ID"
// @Param   body body model.VisionItemPatch true "需要修改的字段"
// @Success 200 {object} util.Response{data=model.VisionItem} "成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Failure 404 {object} util.Response "不存在"
// @Router /api/vision-board/{id} [patch]
func (c *VisionBoardController) UpdateItem(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	var patch model.VisionItemPatch
	if err := ctx.ShouldBindJSON(&patch); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	item, err := c.VisionBoardService.Update(ctx.Request.Context(), userID, id, patch)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, item)
}

// DeleteItem godoc
// @Summary 删除愿景板图片
// @Tags 愿景板
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "图片ID"
// @Success 200 {object} util.Response "成功"
// @Failure 404 {object} util.Response "不存在"
// @Router /api/vision-board/{id} [delete]
func (c *VisionBoardController) DeleteItem(ctx *gin.Context) {
	userID, ok := currentUserID(ctx)
	if !ok {
		return
	}
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	if err := c.VisionBoardService.Delete(ctx.Request.Context(), userID, id); err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
