package passkey

import (
	"context"

	"github.com/google/uuid"
)

// Repository persists passkey credentials. Rows whose stored credential
// blob this binary can no longer decode are silently skipped by ListByUser
// rather than failing the whole list — forward compatibility with
// credential format changes.
type Repository interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]Record, error)
	Insert(ctx context.Context, rec Record) error
	Update(ctx context.Context, rec Record) error
	Delete(ctx context.Context, credentialID []byte, userID uuid.UUID) error
}
