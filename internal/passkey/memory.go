package passkey

import (
	"bytes"
	"context"
	"sync"

	"github.com/google/uuid"
)

// MemoryRepository is an in-memory fake of Repository for ceremony tests.
type MemoryRepository struct {
	mu      sync.Mutex
	records []Record
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

var _ Repository = (*MemoryRepository)(nil)

func (m *MemoryRepository) ListByUser(_ context.Context, userID uuid.UUID) ([]Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []Record
	for _, r := range m.records {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *MemoryRepository) Insert(_ context.Context, rec Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = append(m.records, rec)
	return nil
}

func (m *MemoryRepository) Update(_ context.Context, rec Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, r := range m.records {
		if bytes.Equal(r.CredentialID, rec.CredentialID) {
			m.records[i] = rec
			return nil
		}
	}
	return ErrNotFound
}

func (m *MemoryRepository) Delete(_ context.Context, credentialID []byte, userID uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, r := range m.records {
		if bytes.Equal(r.CredentialID, credentialID) && r.UserID == userID {
			m.records = append(m.records[:i], m.records[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
