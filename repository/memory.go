package repository

import (
	"context"
	"sync"
	"time"

	"card24/entities"
)

type memoryEntry struct {
	info     entities.GameInfo
	expireAt time.Time // 零值表示不过期
}

// MemoryGameStore 进程内存储，未启用 Redis 时使用
type MemoryGameStore struct {
	mu    sync.Mutex
	games map[string]memoryEntry
	now   func() time.Time
}

func NewMemoryGameStore() *MemoryGameStore {
	return &MemoryGameStore{
		games: make(map[string]memoryEntry),
		now:   time.Now,
	}
}

func (s *MemoryGameStore) SaveGame(ctx context.Context, info entities.GameInfo, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.evictExpired()
	entry := memoryEntry{info: info}
	if ttl > 0 {
		entry.expireAt = s.now().Add(ttl)
	}
	s.games[info.GameID] = entry
	return nil
}

func (s *MemoryGameStore) GetGame(ctx context.Context, gameID string) (entities.GameInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.games[gameID]
	if !ok {
		return entities.GameInfo{}, ErrGameNotFound
	}
	if s.expired(entry) {
		delete(s.games, gameID)
		return entities.GameInfo{}, ErrGameNotFound
	}
	return entry.info, nil
}

func (s *MemoryGameStore) expired(e memoryEntry) bool {
	return !e.expireAt.IsZero() && !s.now().Before(e.expireAt)
}

// 调用方需持有锁
func (s *MemoryGameStore) evictExpired() {
	for id, e := range s.games {
		if s.expired(e) {
			delete(s.games, id)
		}
	}
}
