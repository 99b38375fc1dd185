package token_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/madome/auth-core/internal/token"
)

func testUser() token.User {
	return token.User{ID: uuid.New(), Role: 2}
}

func TestValidateValidToken(t *testing.T) {
	codec := token.NewCodec("super-secret")
	user := testUser()

	tok, exp, err := codec.IssueAccess(user)
	require.NoError(t, err)
	require.NotEmpty(t, tok)
	require.Greater(t, exp, int64(0))

	claims, failure := codec.Validate(tok)
	require.Equal(t, token.FailureNone, failure)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.Role, claims.Role)
	assert.Equal(t, exp, claims.Exp)
}

func TestValidateExpiredToken(t *testing.T) {
	secret := "super-secret"
	codec := token.NewCodec(secret)

	// Forge a token whose exp is well past the 60s leeway.
	claims := jwt.MapClaims{
		"sub": uuid.New().String(),
		"exp": time.Now().Add(-10 * time.Minute).Unix(),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString([]byte(secret))
	require.NoError(t, err)

	_, failure := codec.Validate(signed)
	assert.Equal(t, token.FailureExpired, failure)
}

func TestValidateWrongSecret(t *testing.T) {
	issuer := token.NewCodec("secret-a")
	verifier := token.NewCodec("secret-b")

	tok, _, err := issuer.IssueAccess(testUser())
	require.NoError(t, err)

	_, failure := verifier.Validate(tok)
	assert.Equal(t, token.FailureInvalidSignature, failure)
}

func TestValidateMalformedToken(t *testing.T) {
	codec := token.NewCodec("super-secret")

	_, failure := codec.Validate("not-a-jwt")
	assert.Equal(t, token.FailureMalformed, failure)
}

func TestRefreshRoundTripSameSecret(t *testing.T) {
	codec := token.NewCodec("rotating-secret")
	user := testUser()

	refresh, err := codec.IssueRefresh(user)
	require.NoError(t, err)

	claims, failure := codec.Validate(refresh)
	require.Equal(t, token.FailureNone, failure)
	assert.Equal(t, user.ID, claims.UserID)
}

func TestTokenNeverValidatesUnderDifferentSecret(t *testing.T) {
	a := token.NewCodec("secret-a")
	b := token.NewCodec("secret-b")

	tok, _, err := a.IssueAccess(testUser())
	require.NoError(t, err)

	_, failure := b.Validate(tok)
	assert.NotEqual(t, token.FailureNone, failure)
}
