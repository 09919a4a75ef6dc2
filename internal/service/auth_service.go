package service

import (
	"context"
	"errors"
	"fmt"

	"artshare-go/internal/config"
	"artshare-go/internal/dto"
	"artshare-go/internal/models"
	"artshare-go/internal/repository"
	"artshare-go/internal/session"
	"artshare-go/internal/utils"

	"gorm.io/gorm"
)

// AuthService 认证服务
type AuthService struct {
	userRepo   *repository.UserRepository
	sessions   session.Store
	jwtManager *utils.JWTManager
	cfg        *config.Config
}

// NewAuthService 创建认证服务
func NewAuthService(userRepo *repository.UserRepository, sessions session.Store, jwtManager *utils.JWTManager, cfg *config.Config) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		sessions:   sessions,
		jwtManager: jwtManager,
		cfg:        cfg,
	}
}

// Register 用户注册
func (s *AuthService) Register(req *dto.RegisterForm, avatar []byte, avatarMime string) (*models.User, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	if req.Password != req.PasswordConfirm {
		return nil, ErrPasswordMismatch
	}

	// 验证邮箱是否已存在
	exists, err := s.userRepo.ExistsByEmail(req.Email)
	if err != nil {
		return nil, fmt.Errorf("检查邮箱失败: %w", err)
	}
	if exists {
		return nil, ErrEmailTaken
	}

	// 哈希密码
	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("密码哈希失败: %w", err)
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hashedPassword,
		About:        req.About,
		Avatar:       avatar,
		AvatarMime:   avatarMime,
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("创建用户失败: %w", err)
	}

	return user, nil
}

// Login 用户登录，成功后建立服务端会话并签发Token
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("查询用户失败: %w", err)
	}

	// 验证密码
	if err := utils.CheckPassword(req.Password, user.PasswordHash); err != nil {
		return nil, ErrInvalidCredentials
	}

	// "记住我"延长会话有效期
	ttl := s.cfg.JWT.GetExpireDuration()
	if req.Remember {
		ttl = s.cfg.JWT.GetRememberDuration()
	}

	sessionID, err := s.sessions.Create(ctx, user.ID, ttl)
	if err != nil {
		return nil, fmt.Errorf("创建会话失败: %w", err)
	}

	token, err := s.jwtManager.GenerateToken(user.ID, sessionID, ttl)
	if err != nil {
		return nil, fmt.Errorf("生成Token失败: %w", err)
	}

	return &dto.LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User: dto.UserInfo{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
			About: user.About,
		},
	}, nil
}

// Logout 用户登出，删除服务端会话使Token立即失效
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("删除会话失败: %w", err)
	}
	return nil
}

// GetMe 获取当前用户信息
func (s *AuthService) GetMe(userID uint) (*dto.UserInfo, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("查询用户失败: %w", err)
	}

	return &dto.UserInfo{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		About: user.About,
	}, nil
}
