package models

import (
	"time"
)

// User 用户模型
type User struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	Name         string    `gorm:"size:50;not null" json:"name"`
	Email        string    `gorm:"uniqueIndex;size:255;not null" json:"email"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	About        string    `gorm:"type:text" json:"about"`
	Avatar       []byte    `gorm:"type:blob" json:"-"`
	AvatarMime   string    `gorm:"size:100" json:"avatar_mime"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// 关联
	Graphics []Graphic `gorm:"foreignKey:AuthorID" json:"graphics,omitempty"`
	Writes   []Write   `gorm:"foreignKey:AuthorID" json:"writes,omitempty"`
	Audios   []Audio   `gorm:"foreignKey:AuthorID" json:"audios,omitempty"`
	Comments []Comment `gorm:"foreignKey:AuthorID" json:"comments,omitempty"`
}

// TableName 指定表名
func (User) TableName() string {
	return "users"
}
