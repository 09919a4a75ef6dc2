package handler

import (
	"net/http"

	"artshare-go/internal/dto"
	"artshare-go/internal/middleware"
	"artshare-go/internal/models"
	"artshare-go/internal/service"
	"artshare-go/internal/utils"

	"github.com/gin-gonic/gin"
)

// WorkHandler 作品处理器
type WorkHandler struct {
	workService *service.WorkService
}

// NewWorkHandler 创建作品处理器
func NewWorkHandler(workService *service.WorkService) *WorkHandler {
	return &WorkHandler{
		workService: workService,
	}
}

// parseKindParam 解析路径中的作品类型
func parseKindParam(c *gin.Context) (models.WorkKind, bool) {
	kind, err := models.ParseWorkKind(c.Param("kind"))
	if err != nil {
		utils.BadRequest(c, err.Error())
		return "", false
	}
	return kind, true
}

// Create 发布作品，graphic/audio 为multipart文件上传
func (h *WorkHandler) Create(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		handleServiceError(c, service.ErrAuthRequired)
		return
	}

	kind, ok := parseKindParam(c)
	if !ok {
		return
	}

	var form dto.CreateWorkForm
	if err := c.ShouldBind(&form); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	var blob []byte
	var mimetype string
	if kind.HasBlob() {
		var err error
		blob, mimetype, err = readFormFile(c, "file")
		if err != nil {
			utils.BadRequest(c, "文件上传失败: "+err.Error())
			return
		}
	}

	work, err := h.workService.Create(userID, kind, &form, blob, mimetype)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessWithMessage(c, "作品已发布", work)
}

// List 获取指定类型的全部作品
func (h *WorkHandler) List(c *gin.Context) {
	kind, ok := parseKindParam(c)
	if !ok {
		return
	}

	works, err := h.workService.List(kind)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.ListSuccess(c, works, int64(len(works)))
}

// Get 获取单个作品信息
func (h *WorkHandler) Get(c *gin.Context) {
	kind, ok := parseKindParam(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	work, err := h.workService.Get(kind, id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, work)
}

// GetBlob 输出作品的原始二进制内容
func (h *WorkHandler) GetBlob(c *gin.Context) {
	kind, ok := parseKindParam(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	blob, mimetype, err := h.workService.GetBlob(kind, id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.Data(http.StatusOK, mimetype, blob)
}

// Delete 删除自己的作品，连带删除其评论
func (h *WorkHandler) Delete(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		handleServiceError(c, service.ErrAuthRequired)
		return
	}

	kind, ok := parseKindParam(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.workService.Delete(userID, kind, id); err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessWithMessage(c, "作品已删除", nil)
}
