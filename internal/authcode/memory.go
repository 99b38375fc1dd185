package authcode

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryRepository is an in-memory fake of Repository for use-case tests.
type MemoryRepository struct {
	mu     sync.Mutex
	codes  []AuthCode
	events []OutboxEvent
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

var _ Repository = (*MemoryRepository)(nil)

func (m *MemoryRepository) Events() []OutboxEvent {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]OutboxEvent, len(m.events))
	copy(out, m.events)
	return out
}

func (m *MemoryRepository) CountActive(_ context.Context, userID uuid.UUID) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := 0
	for _, c := range m.codes {
		if c.UserID == userID && c.Active(time.Now()) {
			n++
		}
	}
	return n, nil
}

func (m *MemoryRepository) Insert(_ context.Context, code AuthCode, event OutboxEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.codes = append(m.codes, code)
	m.events = append(m.events, event)
	return nil
}

func (m *MemoryRepository) ConsumeValid(_ context.Context, userID uuid.UUID, code string) (*AuthCode, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	for i := range m.codes {
		c := &m.codes[i]
		if c.UserID == userID && c.Code == code && c.Active(now) {
			used := now
			c.UsedAt = &used
			found := *c
			return &found, nil
		}
	}
	return nil, nil
}
