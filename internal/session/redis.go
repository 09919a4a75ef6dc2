package session

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

const (
	sessionKeyPrefix  = "session:"
	userSessionPrefix = "user_sessions:"
)

// RedisStore 基于Redis的会话存储
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore 创建基于Redis的会话存储
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// Create 创建会话
func (s *RedisStore) Create(ctx context.Context, userID uint, ttl time.Duration) (string, error) {
	sessionID := uuid.NewString()
	sessionKey := sessionKeyPrefix + sessionID
	userKey := userSessionPrefix + strconv.FormatUint(uint64(userID), 10)

	// 集合的存活时间必须不短于其中最长的会话，
	// 后登录的短会话不能把已有长会话挤出索引
	setTTL := ttl
	if cur, err := s.client.TTL(ctx, userKey).Result(); err == nil && cur > setTTL {
		setTTL = cur
	}

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, sessionKey, userID, ttl)
	pipe.SAdd(ctx, userKey, sessionID)
	pipe.Expire(ctx, userKey, setTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return "", fmt.Errorf("创建会话失败: %w", err)
	}

	return sessionID, nil
}

// Get 根据会话ID获取用户ID
func (s *RedisStore) Get(ctx context.Context, sessionID string) (uint, error) {
	val, err := s.client.Get(ctx, sessionKeyPrefix+sessionID).Result()
	if err == redis.Nil {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("读取会话失败: %w", err)
	}

	userID, err := strconv.ParseUint(val, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("解析会话内容失败: %w", err)
	}

	return uint(userID), nil
}

// Delete 删除单个会话
func (s *RedisStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, sessionKeyPrefix+sessionID).Err(); err != nil {
		return fmt.Errorf("删除会话失败: %w", err)
	}
	return nil
}

// DeleteByUser 删除用户的所有会话
func (s *RedisStore) DeleteByUser(ctx context.Context, userID uint) error {
	userKey := userSessionPrefix + strconv.FormatUint(uint64(userID), 10)

	sessionIDs, err := s.client.SMembers(ctx, userKey).Result()
	if err != nil && err != redis.Nil {
		return fmt.Errorf("读取用户会话集合失败: %w", err)
	}

	keys := make([]string, 0, len(sessionIDs)+1)
	for _, id := range sessionIDs {
		keys = append(keys, sessionKeyPrefix+id)
	}
	keys = append(keys, userKey)

	if err := s.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("删除用户会话失败: %w", err)
	}
	return nil
}
