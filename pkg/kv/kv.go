package kv

import (
	"context"
	"sync"
)

// Store 鍵值儲存介面
// 工作階段閘門只依賴這三個操作，方便在 Redis 與行程內實作之間切換
type Store interface {
	// Get 讀取鍵值；鍵不存在時 ok 為 false，不視為錯誤
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	// Set 寫入鍵值（無 TTL，由上層邏輯自行判斷過期）
	Set(ctx context.Context, key, value string) error
	// Delete 刪除鍵；鍵不存在時不視為錯誤
	Delete(ctx context.Context, key string) error
}

// MemoryStore 行程內的 Store 實作
// 未設定 Redis 時的預設選擇，也用於測試
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewMemoryStore 建立空的 MemoryStore
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]string)}
}

func (s *MemoryStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	return v, ok, nil
}

func (s *MemoryStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}
