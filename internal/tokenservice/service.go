// Package tokenservice implements the Token Service: the four token flows
// orchestrated across the Token Codec, Auth-Code Engine, and Identity Port.
package tokenservice

import (
	"context"

	"github.com/google/uuid"

	"github.com/madome/auth-core/internal/apperr"
	"github.com/madome/auth-core/internal/authcode"
	"github.com/madome/auth-core/internal/identity"
	"github.com/madome/auth-core/internal/token"
	"github.com/madome/auth-core/internal/utils"
	"github.com/madome/auth-core/pkg"
)

type Service struct {
	codec    *token.Codec
	authcode *authcode.Service
	identity identity.Port
}

func NewService(codec *token.Codec, ac *authcode.Service, idp identity.Port) *Service {
	return &Service{codec: codec, authcode: ac, identity: idp}
}

// Pair is a freshly minted access/refresh token pair.
type Pair struct {
	AccessToken     string
	AccessExpiresAt int64
	RefreshToken    string
}

func (s *Service) issuePair(u token.User, flow string) (*Pair, error) {
	access, exp, err := s.codec.IssueAccess(u)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "issue access token", err)
	}
	refresh, err := s.codec.IssueRefresh(u)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "issue refresh token", err)
	}
	pkg.TokensIssued.WithLabelValues(flow).Inc()
	return &Pair{AccessToken: access, AccessExpiresAt: exp, RefreshToken: refresh}, nil
}

// CreateToken exchanges a one-time auth code for a token pair.
func (s *Service) CreateToken(ctx context.Context, email, code string) (*Pair, error) {
	user, err := s.identity.FindByEmail(ctx, email)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "look up user", err)
	}
	if user == nil {
		return nil, apperr.New(apperr.UserNotFound, "no user with that email")
	}

	consumed, err := s.authcode.Repository().ConsumeValid(ctx, user.ID, code)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "consume auth code", err)
	}
	if consumed == nil {
		return nil, apperr.New(apperr.InvalidAuthcode, "invalid or expired auth code")
	}

	return s.issuePair(token.User{ID: user.ID, Role: user.Role}, "code_exchange")
}

// RefreshToken rotates a refresh cookie into a fresh token pair. Any
// validation failure — expired, forged, malformed — collapses into the
// same InvalidRefreshToken outcome; so does a refresh token naming a user
// who has since been deleted.
func (s *Service) RefreshToken(ctx context.Context, refreshCookie string) (*Pair, error) {
	claims, failure := s.codec.Validate(refreshCookie)
	if failure != token.FailureNone {
		return nil, apperr.New(apperr.InvalidRefresh, "invalid refresh token")
	}

	user, err := s.identity.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "look up user", err)
	}
	if user == nil {
		return nil, apperr.New(apperr.InvalidRefresh, "user no longer exists")
	}

	return s.issuePair(token.User{ID: user.ID, Role: user.Role}, "refresh")
}

// CheckResult is what a valid access cookie resolves to.
type CheckResult struct {
	UserID          uuid.UUID
	UserRole        uint8
	AccessExpiresAt int64
}

// CheckToken validates an access cookie and, if minRole is given, enforces
// it. An invalid token and an insufficient role both yield InvalidToken;
// only the error message tells them apart.
func (s *Service) CheckToken(accessCookie string, minRole *uint8) (*CheckResult, error) {
	claims, failure := s.codec.Validate(accessCookie)
	if failure != token.FailureNone {
		return nil, apperr.New(apperr.InvalidToken, "invalid access token")
	}
	if minRole != nil && claims.Role < *minRole {
		return nil, apperr.New(apperr.InvalidToken, "insufficient role")
	}
	return &CheckResult{UserID: claims.UserID, UserRole: claims.Role, AccessExpiresAt: claims.Exp}, nil
}

// RevokeToken returns the access/refresh cookies cleared to empty value.
// JWTs are stateless, so this is best-effort: a client that has copied the
// token elsewhere is unaffected.
func (s *Service) RevokeToken(domain string) (access, refresh utils.CookieParams) {
	return token.ClearCookies(domain)
}
