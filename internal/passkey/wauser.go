package passkey

import (
	"github.com/go-webauthn/webauthn/webauthn"

	"github.com/madome/auth-core/internal/identity"
)

// waUser adapts a directory user plus its stored credentials to the
// webauthn.User interface the ceremony calls require.
type waUser struct {
	user        identity.User
	credentials []webauthn.Credential
}

func newWaUser(user identity.User, records []Record) *waUser {
	creds := make([]webauthn.Credential, 0, len(records))
	for _, r := range records {
		creds = append(creds, r.Credential)
	}
	return &waUser{user: user, credentials: creds}
}

func (u *waUser) WebAuthnID() []byte {
	return []byte(u.user.ID.String())
}

func (u *waUser) WebAuthnName() string {
	return u.user.Email
}

func (u *waUser) WebAuthnDisplayName() string {
	return u.user.Email
}

func (u *waUser) WebAuthnIcon() string {
	return ""
}

func (u *waUser) WebAuthnCredentials() []webauthn.Credential {
	return u.credentials
}
