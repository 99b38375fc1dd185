package authcode

import (
	"context"

	"github.com/google/uuid"
)

// Repository persists AuthCode and OutboxEvent rows. Insert is the only
// multi-row write and must be atomic: either both rows land or neither does.
type Repository interface {
	CountActive(ctx context.Context, userID uuid.UUID) (int, error)
	Insert(ctx context.Context, code AuthCode, event OutboxEvent) error

	// ConsumeValid atomically finds an active code for (userID, code) and
	// marks it used in the same statement, returning the consumed row with
	// UsedAt set. No row ⇒ (nil, nil).
	ConsumeValid(ctx context.Context, userID uuid.UUID, code string) (*AuthCode, error)
}
