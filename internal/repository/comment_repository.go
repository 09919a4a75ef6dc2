package repository

import (
	"artshare-go/internal/models"

	"gorm.io/gorm"
)

// CommentRepository 评论数据访问层
type CommentRepository struct {
	db *gorm.DB
}

// NewCommentRepository 创建评论Repository
func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

// CreateChecked 创建评论，在同一事务内校验被评论的作品存在
func (r *CommentRepository) CreateChecked(comment *models.Comment) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		var err error
		switch comment.WorkType {
		case models.WorkGraphic:
			err = tx.Model(&models.Graphic{}).Where("id = ?", comment.WorkID).Count(&count).Error
		case models.WorkWrite:
			err = tx.Model(&models.Write{}).Where("id = ?", comment.WorkID).Count(&count).Error
		case models.WorkAudio:
			err = tx.Model(&models.Audio{}).Where("id = ?", comment.WorkID).Count(&count).Error
		}
		if err != nil {
			return err
		}
		if count == 0 {
			return gorm.ErrRecordNotFound
		}

		return tx.Create(comment).Error
	})
}

// GetByID 根据ID获取评论
func (r *CommentRepository) GetByID(id uint) (*models.Comment, error) {
	var comment models.Comment
	err := r.db.First(&comment, id).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// ListByWork 获取指定作品的评论
func (r *CommentRepository) ListByWork(kind models.WorkKind, workID uint) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.Preload("Author").
		Where("work_type = ? AND work_id = ?", kind, workID).
		Find(&comments).Error
	return comments, err
}

// ListByAuthor 获取用户发出的评论
func (r *CommentRepository) ListByAuthor(authorID uint) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.Where("author_id = ?", authorID).Find(&comments).Error
	return comments, err
}

// Delete 删除评论
func (r *CommentRepository) Delete(id uint) error {
	return r.db.Delete(&models.Comment{}, id).Error
}
