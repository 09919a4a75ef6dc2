package handler

import (
	"errors"
	"io"
	"strconv"

	"artshare-go/internal/service"
	"artshare-go/internal/utils"

	"github.com/gin-gonic/gin"
)

// handleServiceError 把服务层错误映射为HTTP响应
func handleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrValidation),
		errors.Is(err, service.ErrPasswordMismatch),
		errors.Is(err, service.ErrEmailTaken):
		utils.BadRequest(c, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrAuthRequired):
		utils.Unauthorized(c, err.Error())
	case errors.Is(err, service.ErrForbidden):
		utils.Forbidden(c, err.Error())
	case errors.Is(err, service.ErrNotFound):
		utils.NotFound(c, err.Error())
	default:
		utils.InternalError(c, err.Error())
	}
}

// readFormFile 读取multipart文件字段，返回内容和媒体类型
func readFormFile(c *gin.Context, field string) ([]byte, string, error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		return nil, "", err
	}

	src, err := fileHeader.Open()
	if err != nil {
		return nil, "", err
	}
	defer src.Close()

	content := make([]byte, fileHeader.Size)
	if _, err := io.ReadFull(src, content); err != nil && err != io.ErrUnexpectedEOF {
		return nil, "", err
	}

	return content, fileHeader.Header.Get("Content-Type"), nil
}

// parseIDParam 解析路径中的数字ID
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		utils.BadRequest(c, "无效的ID")
		return 0, false
	}
	return uint(id), true
}
