package models

import (
	"time"
)

// Comment 评论模型
// WorkType + WorkID 共同指向对应作品表中的一行，由服务层在写入时校验
type Comment struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Text      string    `gorm:"type:text;not null" json:"text"`
	WorkType  WorkKind  `gorm:"size:16;not null;index:idx_comments_work" json:"work_type"`
	WorkID    uint      `gorm:"not null;index:idx_comments_work" json:"work_id"`
	AuthorID  uint      `gorm:"not null;index" json:"author_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Author *User `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
}

// TableName 指定表名
func (Comment) TableName() string {
	return "comments"
}
