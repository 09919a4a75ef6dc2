package repository

import (
	"artshare-go/internal/models"

	"gorm.io/gorm"
)

// WorkRepository 作品数据访问层，覆盖 graphic/write/audio 三张表
type WorkRepository struct {
	db *gorm.DB
}

// NewWorkRepository 创建作品Repository
func NewWorkRepository(db *gorm.DB) *WorkRepository {
	return &WorkRepository{db: db}
}

// Create 创建作品，value 为对应类型的模型指针
func (r *WorkRepository) Create(value interface{}) error {
	return r.db.Create(value).Error
}

// GetGraphicByID 根据ID获取图像作品
func (r *WorkRepository) GetGraphicByID(id uint) (*models.Graphic, error) {
	var work models.Graphic
	err := r.db.Preload("Author").First(&work, id).Error
	if err != nil {
		return nil, err
	}
	return &work, nil
}

// GetWriteByID 根据ID获取文字作品
func (r *WorkRepository) GetWriteByID(id uint) (*models.Write, error) {
	var work models.Write
	err := r.db.Preload("Author").First(&work, id).Error
	if err != nil {
		return nil, err
	}
	return &work, nil
}

// GetAudioByID 根据ID获取音频作品
func (r *WorkRepository) GetAudioByID(id uint) (*models.Audio, error) {
	var work models.Audio
	err := r.db.Preload("Author").First(&work, id).Error
	if err != nil {
		return nil, err
	}
	return &work, nil
}

// ListGraphics 获取全部图像作品
func (r *WorkRepository) ListGraphics() ([]models.Graphic, error) {
	var works []models.Graphic
	err := r.db.Preload("Author").Find(&works).Error
	return works, err
}

// ListWrites 获取全部文字作品
func (r *WorkRepository) ListWrites() ([]models.Write, error) {
	var works []models.Write
	err := r.db.Preload("Author").Find(&works).Error
	return works, err
}

// ListAudios 获取全部音频作品
func (r *WorkRepository) ListAudios() ([]models.Audio, error) {
	var works []models.Audio
	err := r.db.Preload("Author").Find(&works).Error
	return works, err
}

// ListGraphicsByAuthor 获取用户的图像作品
func (r *WorkRepository) ListGraphicsByAuthor(authorID uint) ([]models.Graphic, error) {
	var works []models.Graphic
	err := r.db.Where("author_id = ?", authorID).Find(&works).Error
	return works, err
}

// ListWritesByAuthor 获取用户的文字作品
func (r *WorkRepository) ListWritesByAuthor(authorID uint) ([]models.Write, error) {
	var works []models.Write
	err := r.db.Where("author_id = ?", authorID).Find(&works).Error
	return works, err
}

// ListAudiosByAuthor 获取用户的音频作品
func (r *WorkRepository) ListAudiosByAuthor(authorID uint) ([]models.Audio, error) {
	var works []models.Audio
	err := r.db.Where("author_id = ?", authorID).Find(&works).Error
	return works, err
}

// ExistsByKind 检查指定类型的作品是否存在
func (r *WorkRepository) ExistsByKind(kind models.WorkKind, id uint) (bool, error) {
	var count int64
	var err error
	switch kind {
	case models.WorkGraphic:
		err = r.db.Model(&models.Graphic{}).Where("id = ?", id).Count(&count).Error
	case models.WorkWrite:
		err = r.db.Model(&models.Write{}).Where("id = ?", id).Count(&count).Error
	case models.WorkAudio:
		err = r.db.Model(&models.Audio{}).Where("id = ?", id).Count(&count).Error
	}
	return count > 0, err
}

// DeleteWithComments 删除作品以及指向它的全部评论，单事务执行
func (r *WorkRepository) DeleteWithComments(kind models.WorkKind, id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("work_type = ? AND work_id = ?", kind, id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}

		switch kind {
		case models.WorkGraphic:
			return tx.Delete(&models.Graphic{}, id).Error
		case models.WorkWrite:
			return tx.Delete(&models.Write{}, id).Error
		case models.WorkAudio:
			return tx.Delete(&models.Audio{}, id).Error
		}
		return nil
	})
}
