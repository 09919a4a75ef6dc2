package service

import (
	"errors"
	"fmt"

	"artshare-go/internal/dto"
	"artshare-go/internal/models"
	"artshare-go/internal/repository"

	"gorm.io/gorm"
)

// CommentService 评论服务
type CommentService struct {
	commentRepo *repository.CommentRepository
}

// NewCommentService 创建评论服务
func NewCommentService(commentRepo *repository.CommentRepository) *CommentService {
	return &CommentService{commentRepo: commentRepo}
}

// Add 添加评论，被评论的作品必须存在
func (s *CommentService) Add(authorID uint, kind models.WorkKind, workID uint, text string) (*dto.CommentInfo, error) {
	comment := &models.Comment{
		Text:     text,
		WorkType: kind,
		WorkID:   workID,
		AuthorID: authorID,
	}

	if err := s.commentRepo.CreateChecked(comment); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("创建评论失败: %w", err)
	}

	info := commentToInfo(comment)
	return &info, nil
}

// List 获取指定作品的评论列表
func (s *CommentService) List(kind models.WorkKind, workID uint) ([]dto.CommentInfo, error) {
	comments, err := s.commentRepo.ListByWork(kind, workID)
	if err != nil {
		return nil, fmt.Errorf("查询评论失败: %w", err)
	}

	infos := make([]dto.CommentInfo, 0, len(comments))
	for i := range comments {
		infos = append(infos, commentToInfo(&comments[i]))
	}
	return infos, nil
}

// Delete 删除评论：仅评论作者本人可删
func (s *CommentService) Delete(userID uint, id uint) error {
	comment, err := s.commentRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("查询评论失败: %w", err)
	}

	if comment.AuthorID != userID {
		return ErrForbidden
	}

	if err := s.commentRepo.Delete(id); err != nil {
		return fmt.Errorf("删除评论失败: %w", err)
	}
	return nil
}

func commentToInfo(c *models.Comment) dto.CommentInfo {
	info := dto.CommentInfo{
		ID:        c.ID,
		Text:      c.Text,
		WorkType:  string(c.WorkType),
		WorkID:    c.WorkID,
		AuthorID:  c.AuthorID,
		CreatedAt: c.CreatedAt.Format(timeLayout),
	}
	if c.Author != nil {
		info.AuthorName = c.Author.Name
	}
	return info
}
