// Package authcode implements the Auth-Code Engine: throttled, one-time
// login codes backed by a transactional outbox.
package authcode

import (
	"time"

	"github.com/google/uuid"
)

// codeAlphabet is the 36-symbol charset a code is drawn from, uniformly.
const codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

const (
	CodeLength = 12
	TTL        = 120 * time.Second
	MaxActive  = 5
)

// AuthCode is a one-time login code bound to a user.
type AuthCode struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Code      string
	ExpiresAt time.Time
	UsedAt    *time.Time
	CreatedAt time.Time
}

// Active reports whether the code can still be consumed.
func (a AuthCode) Active(now time.Time) bool {
	return a.UsedAt == nil && a.ExpiresAt.After(now)
}

// OutboxEvent is the durable record of work for the external dispatcher
// that actually sends the code. This core only writes these rows.
type OutboxEvent struct {
	ID             uuid.UUID
	Kind           string
	Payload        []byte
	IdempotencyKey string
	Attempts       int
	LastError      *string
	CreatedAt      time.Time
	NextAttemptAt  time.Time
	ProcessedAt    *time.Time
	FailedAt       *time.Time
}

const EventKindAuthcodeCreated = "authcode_created"
