package session

import (
	"context"
	"sync"
)

// MemoryStorage keeps the credential in process memory only
type MemoryStorage struct {
	mu    sync.Mutex
	token string
	loads int
}

// NewMemoryStorage creates storage pre-populated with token (may be empty)
func NewMemoryStorage(token string) *MemoryStorage {
	return &MemoryStorage{token: token}
}

func (m *MemoryStorage) Load(ctx context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loads++
	return m.token, nil
}

func (m *MemoryStorage) Save(ctx context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	return nil
}

func (m *MemoryStorage) Delete(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
	return nil
}

// Loads returns how many times Load was called
func (m *MemoryStorage) Loads() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loads
}
