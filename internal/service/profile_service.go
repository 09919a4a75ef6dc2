package service

import (
	"context"
	"errors"
	"fmt"

	"artshare-go/internal/dto"
	"artshare-go/internal/models"
	"artshare-go/internal/repository"
	"artshare-go/internal/session"
	"artshare-go/internal/utils"

	"gorm.io/gorm"
)

// ProfileService 个人资料服务
type ProfileService struct {
	userRepo    *repository.UserRepository
	workRepo    *repository.WorkRepository
	commentRepo *repository.CommentRepository
	sessions    session.Store
}

// NewProfileService 创建个人资料服务
func NewProfileService(
	userRepo *repository.UserRepository,
	workRepo *repository.WorkRepository,
	commentRepo *repository.CommentRepository,
	sessions session.Store,
) *ProfileService {
	return &ProfileService{
		userRepo:    userRepo,
		workRepo:    workRepo,
		commentRepo: commentRepo,
		sessions:    sessions,
	}
}

// GetProfile 获取公开的个人主页信息
func (s *ProfileService) GetProfile(userID uint) (*dto.ProfileResponse, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("查询用户失败: %w", err)
	}

	return &dto.ProfileResponse{
		ID:    user.ID,
		Name:  user.Name,
		About: user.About,
	}, nil
}

// GetAvatar 获取用户头像内容和媒体类型
func (s *ProfileService) GetAvatar(userID uint) ([]byte, string, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrNotFound
		}
		return nil, "", fmt.Errorf("查询用户失败: %w", err)
	}
	if len(user.Avatar) == 0 {
		return nil, "", ErrNotFound
	}

	return user.Avatar, user.AvatarMime, nil
}

// EditProfile 编辑自己的资料，头像为空时保持原头像
func (s *ProfileService) EditProfile(userID uint, req *dto.EditProfileForm, avatar []byte, avatarMime string) (*models.User, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("查询用户失败: %w", err)
	}

	user.Name = req.Name
	user.About = req.About
	if len(avatar) > 0 {
		user.Avatar = avatar
		user.AvatarMime = avatarMime
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, fmt.Errorf("更新用户失败: %w", err)
	}

	return user, nil
}

// DeleteAccount 注销账号：级联删除作品和评论后删除用户，并清除全部会话
func (s *ProfileService) DeleteAccount(ctx context.Context, userID uint) error {
	if _, err := s.userRepo.GetByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("查询用户失败: %w", err)
	}

	if err := s.userRepo.DeleteWithOwned(userID); err != nil {
		return fmt.Errorf("删除用户数据失败: %w", err)
	}

	// 数据删除完成后终止该用户的所有会话
	if err := s.sessions.DeleteByUser(ctx, userID); err != nil {
		return fmt.Errorf("清除用户会话失败: %w", err)
	}

	return nil
}

// SearchUsers 按名称子串搜索用户，空串返回全部
func (s *ProfileService) SearchUsers(query string) ([]dto.ProfileResponse, error) {
	users, err := s.userRepo.SearchByName(query)
	if err != nil {
		return nil, fmt.Errorf("搜索用户失败: %w", err)
	}

	results := make([]dto.ProfileResponse, 0, len(users))
	for _, u := range users {
		results = append(results, dto.ProfileResponse{
			ID:    u.ID,
			Name:  u.Name,
			About: u.About,
		})
	}
	return results, nil
}

// GetUserWorks 获取用户作品页数据：三类作品加上用户发出的评论
func (s *ProfileService) GetUserWorks(userID uint) (*dto.UserWorksResponse, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("查询用户失败: %w", err)
	}

	graphics, err := s.workRepo.ListGraphicsByAuthor(userID)
	if err != nil {
		return nil, fmt.Errorf("查询图像作品失败: %w", err)
	}
	writes, err := s.workRepo.ListWritesByAuthor(userID)
	if err != nil {
		return nil, fmt.Errorf("查询文字作品失败: %w", err)
	}
	audios, err := s.workRepo.ListAudiosByAuthor(userID)
	if err != nil {
		return nil, fmt.Errorf("查询音频作品失败: %w", err)
	}
	comments, err := s.commentRepo.ListByAuthor(userID)
	if err != nil {
		return nil, fmt.Errorf("查询评论失败: %w", err)
	}

	resp := &dto.UserWorksResponse{
		Name:     user.Name,
		Graphics: make([]dto.WorkInfo, 0, len(graphics)),
		Writes:   make([]dto.WorkInfo, 0, len(writes)),
		Audios:   make([]dto.WorkInfo, 0, len(audios)),
		Comments: make([]dto.CommentInfo, 0, len(comments)),
	}
	for i := range graphics {
		resp.Graphics = append(resp.Graphics, graphicToInfo(&graphics[i]))
	}
	for i := range writes {
		resp.Writes = append(resp.Writes, writeToInfo(&writes[i]))
	}
	for i := range audios {
		resp.Audios = append(resp.Audios, audioToInfo(&audios[i]))
	}
	for i := range comments {
		resp.Comments = append(resp.Comments, commentToInfo(&comments[i]))
	}

	return resp, nil
}
