// Package passkey implements the Passkey Engine: WebAuthn registration and
// authentication ceremonies, backed by a short-TTL ceremony cache and a
// durable credential store.
package passkey

import (
	"errors"
	"time"

	"github.com/go-webauthn/webauthn/webauthn"
	"github.com/google/uuid"

	"github.com/madome/auth-core/internal/identity"
)

// ErrNotFound is returned by Repository.Update/Delete when the targeted row
// does not exist.
var ErrNotFound = errors.New("passkey: not found")

const CeremonyTTL = 120 * time.Second

// Record is a stored passkey. Credential carries the library's full
// credential object (including the signature counter) serialized opaquely.
type Record struct {
	CredentialID []byte
	UserID       uuid.UUID
	AAGUID       uuid.UUID
	Credential   webauthn.Credential
	CreatedAt    time.Time
}

// Summary is the wire shape for listing passkeys: it deliberately omits the
// raw credential blob.
type Summary struct {
	CredentialID string
	AAGUID       uuid.UUID
	CreatedAt    time.Time
}

// AuthenticationResult is returned on a successful login ceremony, ready to
// be placed into cookies by the caller.
type AuthenticationResult struct {
	User            identity.User
	AccessToken     string
	AccessExpiresAt int64
	RefreshToken    string
}
