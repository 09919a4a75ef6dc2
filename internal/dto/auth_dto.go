package dto

// RegisterForm 注册表单（multipart，头像文件单独读取）
type RegisterForm struct {
	Name            string `form:"name" binding:"required" validate:"displayname"`
	Email           string `form:"email" binding:"required,email" validate:"required,email"`
	Password        string `form:"password" binding:"required,min=6" validate:"required,min=6"`
	PasswordConfirm string `form:"password_confirm" binding:"required" validate:"required"`
	About           string `form:"about"`
}

// LoginRequest 登录请求
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Remember bool   `json:"remember"`
}

// LoginResponse 登录响应
type LoginResponse struct {
	AccessToken string   `json:"access_token"`
	TokenType   string   `json:"token_type"`
	User        UserInfo `json:"user"`
}

// UserInfo 用户信息
type UserInfo struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	About string `json:"about"`
}
