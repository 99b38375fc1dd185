package identity

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// MemoryPort is an in-memory fake of Port, used to exercise use-cases in
// tests without a running users directory.
type MemoryPort struct {
	mu    sync.RWMutex
	byID  map[uuid.UUID]User
	byMail map[string]uuid.UUID
}

// NewMemoryPort builds an empty in-memory directory.
func NewMemoryPort() *MemoryPort {
	return &MemoryPort{
		byID:   make(map[uuid.UUID]User),
		byMail: make(map[string]uuid.UUID),
	}
}

// Put seeds the directory with a user, as a real directory would already
// contain before the auth core ever queries it.
func (m *MemoryPort) Put(u User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.byID[u.ID] = u
	m.byMail[u.Email] = u.ID
}

var _ Port = (*MemoryPort)(nil)

func (m *MemoryPort) FindByEmail(_ context.Context, email string) (*User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	id, ok := m.byMail[email]
	if !ok {
		return nil, nil
	}
	u := m.byID[id]
	return &u, nil
}

func (m *MemoryPort) FindByID(_ context.Context, id uuid.UUID) (*User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	u, ok := m.byID[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}
