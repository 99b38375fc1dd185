// Package token implements the Token Codec: signing, validation, and cookie
// binding for the auth core's symmetric JWTs. It generalizes the teacher's
// bare jwt.MapClaims signer (pkg/jwt.go) into a typed codec carrying two
// distinct expiries and a preserved failure-kind taxonomy.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	// AccessTokenTTL is the lifetime of an access token (4 hours).
	AccessTokenTTL = 4 * time.Hour
	// RefreshTokenTTL is the lifetime of a refresh token (7 days).
	RefreshTokenTTL = 7 * 24 * time.Hour
	// Leeway absorbs clock skew between this service and the gateway.
	Leeway = 60 * time.Second
)

// FailureKind preserves the cause of a validation failure so callers can map
// it to different HTTP responses. Refresh-path callers collapse all of these
// to a single InvalidRefreshToken outcome (see apperr).
type FailureKind int

const (
	FailureNone FailureKind = iota
	FailureExpired
	FailureInvalidSignature
	FailureMalformed
)

// Claims is the claim-set identical for access and refresh tokens; only the
// embedded expiry distinguishes them.
type Claims struct {
	UserID uuid.UUID
	Role   uint8
	Exp    int64
}

// User is the minimal shape the codec needs to mint a token for a user.
type User struct {
	ID   uuid.UUID
	Role uint8
}

// Codec signs and validates HS256-symmetric JWTs with a single process-wide secret.
type Codec struct {
	secret []byte
}

// NewCodec builds a Codec around the given signing secret. The secret is
// immutable for the process lifetime and safe to share across request tasks
// without synchronization.
func NewCodec(secret string) *Codec {
	return &Codec{secret: []byte(secret)}
}

type claims struct {
	jwt.RegisteredClaims
	Role uint8 `json:"role"`
}

// IssueAccess mints an access token for user, expiring in AccessTokenTTL.
func (c *Codec) IssueAccess(user User) (token string, expUnix int64, err error) {
	return c.issue(user, AccessTokenTTL)
}

// IssueRefresh mints a refresh token for user, expiring in RefreshTokenTTL.
func (c *Codec) IssueRefresh(user User) (token string, err error) {
	token, _, err = c.issue(user, RefreshTokenTTL)
	return token, err
}

func (c *Codec) issue(user User, ttl time.Duration) (string, int64, error) {
	exp := time.Now().Add(ttl)
	cl := claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
		Role: user.Role,
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, cl)
	signed, err := t.SignedString(c.secret)
	if err != nil {
		return "", 0, fmt.Errorf("sign token: %w", err)
	}
	return signed, exp.Unix(), nil
}

// Validate decodes and verifies token, enforcing expiry with a 60-second
// leeway. On failure the FailureKind distinguishes expiry, a bad signature,
// and a structurally malformed token, so different callers can react
// differently (the refresh path deliberately collapses all three).
func (c *Codec) Validate(token string) (Claims, FailureKind) {
	var cl claims
	parsed, err := jwt.ParseWithClaims(token, &cl, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return c.secret, nil
	}, jwt.WithLeeway(Leeway))

	if err != nil {
		switch {
		case isExpired(err):
			return Claims{}, FailureExpired
		case isSignatureError(err):
			return Claims{}, FailureInvalidSignature
		default:
			return Claims{}, FailureMalformed
		}
	}

	if !parsed.Valid {
		return Claims{}, FailureMalformed
	}

	sub, err := uuid.Parse(cl.Subject)
	if err != nil {
		return Claims{}, FailureMalformed
	}

	exp := int64(0)
	if cl.ExpiresAt != nil {
		exp = cl.ExpiresAt.Unix()
	}

	return Claims{UserID: sub, Role: cl.Role, Exp: exp}, FailureNone
}

func isExpired(err error) bool {
	return errors.Is(err, jwt.ErrTokenExpired)
}

func isSignatureError(err error) bool {
	return errors.Is(err, jwt.ErrTokenSignatureInvalid) || errors.Is(err, jwt.ErrSignatureInvalid)
}
