package session

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound 会话不存在或已过期
var ErrNotFound = errors.New("会话不存在或已过期")

// Store 服务端会话存储
// 登录创建会话，登出删除会话；Token 里只带会话ID，
// 因此删除会话后对应 Token 立即失效
type Store interface {
	// Create 创建会话，返回会话ID
	Create(ctx context.Context, userID uint, ttl time.Duration) (string, error)
	// Get 根据会话ID获取用户ID
	Get(ctx context.Context, sessionID string) (uint, error)
	// Delete 删除单个会话
	Delete(ctx context.Context, sessionID string) error
	// DeleteByUser 删除用户的所有会话（注销账号时使用）
	DeleteByUser(ctx context.Context, userID uint) error
}
