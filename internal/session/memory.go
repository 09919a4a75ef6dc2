package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

type memoryEntry struct {
	userID    uint
	expiresAt time.Time
}

// MemoryStore 进程内会话存储，测试与单机部署使用
type MemoryStore struct {
	mutex   sync.RWMutex
	entries map[string]memoryEntry
}

// NewMemoryStore 创建进程内会话存储
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
	}
}

// Create 创建会话
func (s *MemoryStore) Create(_ context.Context, userID uint, ttl time.Duration) (string, error) {
	sessionID := uuid.NewString()

	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.entries[sessionID] = memoryEntry{
		userID:    userID,
		expiresAt: time.Now().Add(ttl),
	}

	return sessionID, nil
}

// Get 根据会话ID获取用户ID
func (s *MemoryStore) Get(_ context.Context, sessionID string) (uint, error) {
	s.mutex.RLock()
	entry, ok := s.entries[sessionID]
	s.mutex.RUnlock()

	if !ok || time.Now().After(entry.expiresAt) {
		return 0, ErrNotFound
	}
	return entry.userID, nil
}

// Delete 删除单个会话
func (s *MemoryStore) Delete(_ context.Context, sessionID string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	delete(s.entries, sessionID)
	return nil
}

// DeleteByUser 删除用户的所有会话
func (s *MemoryStore) DeleteByUser(_ context.Context, userID uint) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	for id, entry := range s.entries {
		if entry.userID == userID {
			delete(s.entries, id)
		}
	}
	return nil
}
