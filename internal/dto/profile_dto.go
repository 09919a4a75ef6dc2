package dto

// EditProfileForm 编辑资料表单（multipart，头像文件可选）
type EditProfileForm struct {
	Name  string `form:"name" binding:"required" validate:"displayname"`
	About string `form:"about"`
}

// ProfileResponse 公开的个人主页信息
type ProfileResponse struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	About string `json:"about"`
}

// UserWorksResponse 用户作品页数据
type UserWorksResponse struct {
	Name     string        `json:"name"`
	Graphics []WorkInfo    `json:"graphics"`
	Writes   []WorkInfo    `json:"writes"`
	Audios   []WorkInfo    `json:"audios"`
	Comments []CommentInfo `json:"comments"`
}
