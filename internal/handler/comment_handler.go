package handler

import (
	"artshare-go/internal/dto"
	"artshare-go/internal/middleware"
	"artshare-go/internal/service"
	"artshare-go/internal/utils"

	"github.com/gin-gonic/gin"
)

// CommentHandler 评论处理器
type CommentHandler struct {
	commentService *service.CommentService
}

// NewCommentHandler 创建评论处理器
func NewCommentHandler(commentService *service.CommentService) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
	}
}

// List 获取作品的评论列表
func (h *CommentHandler) List(c *gin.Context) {
	kind, ok := parseKindParam(c)
	if !ok {
		return
	}
	workID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	comments, err := h.commentService.List(kind, workID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.ListSuccess(c, comments, int64(len(comments)))
}

// Add 给作品添加评论
func (h *CommentHandler) Add(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		handleServiceError(c, service.ErrAuthRequired)
		return
	}

	kind, ok := parseKindParam(c)
	if !ok {
		return
	}
	workID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	comment, err := h.commentService.Add(userID, kind, workID, req.Text)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessWithMessage(c, "评论已发布", comment)
}

// Delete 删除自己的评论
func (h *CommentHandler) Delete(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		handleServiceError(c, service.ErrAuthRequired)
		return
	}

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.commentService.Delete(userID, id); err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessWithMessage(c, "评论已删除", nil)
}
