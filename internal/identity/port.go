// Package identity implements the Identity Port: a read-only client to the
// external users directory, reached over gRPC. The directory itself is an
// external collaborator — this package only knows how to ask it questions.
package identity

import (
	"context"

	"github.com/google/uuid"
)

// User mirrors the external users directory's record. It is fetched, never
// mutated, by this core.
type User struct {
	ID    uuid.UUID
	Email string
	Role  uint8
}

// Port is polymorphic over the two lookups the auth core ever needs. Any
// transport error other than a well-defined not-found signal must be
// returned as an error; a not-found signal must return (nil, nil).
type Port interface {
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)
}
