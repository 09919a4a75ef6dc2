package models

import (
	"fmt"
	"time"
)

// WorkKind 作品类型
type WorkKind string

const (
	WorkGraphic WorkKind = "graphic"
	WorkWrite   WorkKind = "write"
	WorkAudio   WorkKind = "audio"
)

// ParseWorkKind 解析作品类型字符串，未知类型报错
func ParseWorkKind(s string) (WorkKind, error) {
	switch WorkKind(s) {
	case WorkGraphic, WorkWrite, WorkAudio:
		return WorkKind(s), nil
	default:
		return "", fmt.Errorf("未知的作品类型: %q", s)
	}
}

// HasBlob 该类型的作品是否携带二进制内容
func (k WorkKind) HasBlob() bool {
	return k == WorkGraphic || k == WorkAudio
}

// Graphic 图像作品模型
type Graphic struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	About     string    `gorm:"type:text" json:"about"`
	Image     []byte    `gorm:"type:blob;not null" json:"-"`
	Mimetype  string    `gorm:"size:100;not null" json:"mimetype"`
	AuthorID  uint      `gorm:"not null;index" json:"author_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Author *User `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
}

// TableName 指定表名
func (Graphic) TableName() string {
	return "graphics"
}

// Write 文字作品模型
type Write struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Title     string    `gorm:"size:255;not null" json:"title"`
	Text      string    `gorm:"type:text;not null" json:"text"`
	AuthorID  uint      `gorm:"not null;index" json:"author_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Author *User `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
}

// TableName 指定表名
func (Write) TableName() string {
	return "writes"
}

// Audio 音频作品模型
type Audio struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	About     string    `gorm:"type:text" json:"about"`
	Sound     []byte    `gorm:"type:blob;not null" json:"-"`
	Mimetype  string    `gorm:"size:100;not null" json:"mimetype"`
	AuthorID  uint      `gorm:"not null;index" json:"author_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Author *User `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
}

// TableName 指定表名
func (Audio) TableName() string {
	return "audios"
}
