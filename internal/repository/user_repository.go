package repository

import (
	"artshare-go/internal/models"

	"gorm.io/gorm"
)

// UserRepository 用户数据访问层
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository 创建用户Repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create 创建用户
func (r *UserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// GetByID 根据ID获取用户
func (r *UserRepository) GetByID(id uint) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByEmail 根据邮箱获取用户
func (r *UserRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// ExistsByEmail 检查邮箱是否已注册
func (r *UserRepository) ExistsByEmail(email string) (bool, error) {
	var count int64
	err := r.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

// Update 更新用户
func (r *UserRepository) Update(user *models.User) error {
	return r.db.Save(user).Error
}

// SearchByName 按名称子串搜索用户，空串返回全部
func (r *UserRepository) SearchByName(query string) ([]models.User, error) {
	var users []models.User
	q := r.db.Model(&models.User{})
	if query != "" {
		q = q.Where("name LIKE ?", "%"+query+"%")
	}
	err := q.Find(&users).Error
	return users, err
}

// DeleteWithOwned 删除用户及其全部作品和评论，单事务执行
func (r *UserRepository) DeleteWithOwned(userID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		// 收集用户作品的ID，先清理指向这些作品的评论
		var graphicIDs, writeIDs, audioIDs []uint
		if err := tx.Model(&models.Graphic{}).Where("author_id = ?", userID).Pluck("id", &graphicIDs).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Write{}).Where("author_id = ?", userID).Pluck("id", &writeIDs).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Audio{}).Where("author_id = ?", userID).Pluck("id", &audioIDs).Error; err != nil {
			return err
		}

		if len(graphicIDs) > 0 {
			if err := tx.Where("work_type = ? AND work_id IN ?", models.WorkGraphic, graphicIDs).Delete(&models.Comment{}).Error; err != nil {
				return err
			}
		}
		if len(writeIDs) > 0 {
			if err := tx.Where("work_type = ? AND work_id IN ?", models.WorkWrite, writeIDs).Delete(&models.Comment{}).Error; err != nil {
				return err
			}
		}
		if len(audioIDs) > 0 {
			if err := tx.Where("work_type = ? AND work_id IN ?", models.WorkAudio, audioIDs).Delete(&models.Comment{}).Error; err != nil {
				return err
			}
		}

		// 用户自己发出的评论
		if err := tx.Where("author_id = ?", userID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}

		// 作品本体
		if err := tx.Where("author_id = ?", userID).Delete(&models.Graphic{}).Error; err != nil {
			return err
		}
		if err := tx.Where("author_id = ?", userID).Delete(&models.Write{}).Error; err != nil {
			return err
		}
		if err := tx.Where("author_id = ?", userID).Delete(&models.Audio{}).Error; err != nil {
			return err
		}

		// 最后删除用户行
		return tx.Delete(&models.User{}, userID).Error
	})
}
