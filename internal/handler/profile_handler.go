package handler

import (
	"net/http"

	"artshare-go/internal/dto"
	"artshare-go/internal/middleware"
	"artshare-go/internal/service"
	"artshare-go/internal/utils"

	"github.com/gin-gonic/gin"
)

// ProfileHandler 个人资料处理器
type ProfileHandler struct {
	profileService *service.ProfileService
}

// NewProfileHandler 创建个人资料处理器
func NewProfileHandler(profileService *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
	}
}

// GetProfile 查看个人主页
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	profile, err := h.profileService.GetProfile(userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, profile)
}

// GetAvatar 输出用户头像原始内容
func (h *ProfileHandler) GetAvatar(c *gin.Context) {
	userID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	avatar, mime, err := h.profileService.GetAvatar(userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.Data(http.StatusOK, mime, avatar)
}

// GetUserWorks 查看用户的全部作品和评论
func (h *ProfileHandler) GetUserWorks(c *gin.Context) {
	userID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	works, err := h.profileService.GetUserWorks(userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, works)
}

// Search 按名称子串搜索用户，q为空返回全部
func (h *ProfileHandler) Search(c *gin.Context) {
	query := c.Query("q")

	users, err := h.profileService.SearchUsers(query)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.ListSuccess(c, users, int64(len(users)))
}

// EditProfile 编辑自己的资料，头像文件可选
func (h *ProfileHandler) EditProfile(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		handleServiceError(c, service.ErrAuthRequired)
		return
	}

	var req dto.EditProfileForm
	if err := c.ShouldBind(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	// 未上传新头像时保持原头像
	avatar, avatarMime, err := readFormFile(c, "avatar")
	if err != nil {
		avatar, avatarMime = nil, ""
	}

	user, err := h.profileService.EditProfile(userID, &req, avatar, avatarMime)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessWithMessage(c, "资料已更新", dto.UserInfo{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		About: user.About,
	})
}

// DeleteAccount 注销自己的账号并级联删除全部数据
func (h *ProfileHandler) DeleteAccount(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		handleServiceError(c, service.ErrAuthRequired)
		return
	}

	if err := h.profileService.DeleteAccount(c.Request.Context(), userID); err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessWithMessage(c, "账号已注销", nil)
}
