package handler

import (
	"artshare-go/internal/dto"
	"artshare-go/internal/middleware"
	"artshare-go/internal/service"
	"artshare-go/internal/utils"

	"github.com/gin-gonic/gin"
)

// AuthHandler 认证处理器
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler 创建认证处理器
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register 用户注册，multipart表单携带头像文件
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterForm
	if err := c.ShouldBind(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	avatar, avatarMime, err := readFormFile(c, "avatar")
	if err != nil {
		utils.BadRequest(c, "头像上传失败: "+err.Error())
		return
	}

	user, err := h.authService.Register(&req, avatar, avatarMime)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessWithMessage(c, "注册成功", dto.UserInfo{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		About: user.About,
	})
}

// Login 用户登录
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	resp, err := h.authService.Login(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessWithMessage(c, "登录成功", resp)
}

// Logout 用户登出，服务端会话即刻失效
func (h *AuthHandler) Logout(c *gin.Context) {
	sessionID, exists := middleware.GetSessionID(c)
	if !exists {
		handleServiceError(c, service.ErrAuthRequired)
		return
	}

	if err := h.authService.Logout(c.Request.Context(), sessionID); err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessWithMessage(c, "登出成功", nil)
}

// GetMe 获取当前用户信息
func (h *AuthHandler) GetMe(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		handleServiceError(c, service.ErrAuthRequired)
		return
	}

	userInfo, err := h.authService.GetMe(userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, userInfo)
}
