package passkey

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-webauthn/webauthn/protocol"
	"github.com/go-webauthn/webauthn/webauthn"
	"github.com/google/uuid"

	"github.com/madome/auth-core/internal/apperr"
	"github.com/madome/auth-core/internal/identity"
	"github.com/madome/auth-core/internal/token"
	"github.com/madome/auth-core/pkg"
)

// Service drives both WebAuthn ceremonies end to end: cache the in-progress
// challenge, verify the client's response, and persist (or, for login,
// update) the credential record.
type Service struct {
	wa       *webauthn.WebAuthn
	repo     Repository
	cache    Cache
	identity identity.Port
	codec    *token.Codec
}

func NewService(wa *webauthn.WebAuthn, repo Repository, cache Cache, idp identity.Port, codec *token.Codec) *Service {
	return &Service{wa: wa, repo: repo, cache: cache, identity: idp, codec: codec}
}

func registrationCacheKey(userID uuid.UUID, registrationID string) string {
	return fmt.Sprintf("passkey_reg:%s:%s", userID, registrationID)
}

func authenticationCacheKey(email, authenticationID string) string {
	return fmt.Sprintf("passkey_auth:%s:%s", email, authenticationID)
}

func (s *Service) cacheSession(ctx context.Context, key string, session *webauthn.SessionData) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return apperr.Wrap(apperr.Internal, "encode ceremony state", err)
	}
	if err := s.cache.SetEx(ctx, key, raw, CeremonyTTL); err != nil {
		return apperr.Wrap(apperr.Internal, "cache ceremony state", err)
	}
	return nil
}

// StartRegistration begins the registration ceremony for an already
// authenticated user.
func (s *Service) StartRegistration(ctx context.Context, userID uuid.UUID) (*protocol.CredentialCreation, string, error) {
	user, err := s.identity.FindByID(ctx, userID)
	if err != nil {
		return nil, "", apperr.Wrap(apperr.Internal, "look up user", err)
	}
	if user == nil {
		return nil, "", apperr.New(apperr.UserNotFound, "no such user")
	}

	records, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, "", apperr.Wrap(apperr.Internal, "list passkeys", err)
	}

	exclude := make([]protocol.CredentialDescriptor, 0, len(records))
	for _, r := range records {
		exclude = append(exclude, protocol.CredentialDescriptor{
			Type:         protocol.PublicKeyCredentialType,
			CredentialID: r.CredentialID,
		})
	}

	creation, session, err := s.wa.BeginRegistration(newWaUser(*user, records), webauthn.WithExclusions(exclude))
	if err != nil {
		return nil, "", apperr.Wrap(apperr.Internal, "begin registration", err)
	}

	registrationID := uuid.NewString()
	if err := s.cacheSession(ctx, registrationCacheKey(userID, registrationID), session); err != nil {
		return nil, "", err
	}

	pkg.CeremoniesStarted.WithLabelValues("registration").Inc()
	return creation, registrationID, nil
}

// FinishRegistration completes the ceremony Start began. rawResponse is the
// client's unparsed JSON attestation response body.
func (s *Service) FinishRegistration(ctx context.Context, userID uuid.UUID, registrationID string, rawResponse []byte) error {
	cached, ok, err := s.cache.GetDel(ctx, registrationCacheKey(userID, registrationID))
	if err != nil {
		return apperr.Wrap(apperr.Internal, "read ceremony state", err)
	}
	if !ok {
		return apperr.New(apperr.InvalidSession, "registration session expired or unknown")
	}

	var session webauthn.SessionData
	if err := json.Unmarshal(cached, &session); err != nil {
		return apperr.Wrap(apperr.Internal, "decode ceremony state", err)
	}

	parsed, err := protocol.ParseCredentialCreationResponseBody(bytes.NewReader(rawResponse))
	if err != nil {
		pkg.CeremoniesFinished.WithLabelValues("registration", "failure").Inc()
		return apperr.Wrap(apperr.InvalidCredential, "parse attestation response", err)
	}

	user, err := s.identity.FindByID(ctx, userID)
	if err != nil {
		return apperr.Wrap(apperr.Internal, "look up user", err)
	}
	if user == nil {
		return apperr.New(apperr.UserNotFound, "no such user")
	}

	cred, err := s.wa.CreateCredential(newWaUser(*user, nil), session, parsed)
	if err != nil {
		pkg.CeremoniesFinished.WithLabelValues("registration", "failure").Inc()
		return apperr.Wrap(apperr.InvalidCredential, "verify attestation", err)
	}

	rec := Record{
		CredentialID: cred.ID,
		UserID:       userID,
		AAGUID:       extractAAGUID(rawResponse),
		Credential:   *cred,
		CreatedAt:    time.Now(),
	}
	if err := s.repo.Insert(ctx, rec); err != nil {
		return apperr.Wrap(apperr.Internal, "persist passkey", err)
	}
	pkg.CeremoniesFinished.WithLabelValues("registration", "success").Inc()
	return nil
}

// StartAuthentication begins the login ceremony for an as-yet-unauthenticated
// caller identified only by email.
func (s *Service) StartAuthentication(ctx context.Context, email string) (*protocol.CredentialAssertion, string, error) {
	user, err := s.identity.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", apperr.Wrap(apperr.Internal, "look up user", err)
	}
	if user == nil {
		return nil, "", apperr.New(apperr.UserNotFound, "no user with that email")
	}

	records, err := s.repo.ListByUser(ctx, user.ID)
	if err != nil {
		return nil, "", apperr.Wrap(apperr.Internal, "list passkeys", err)
	}
	if len(records) == 0 {
		return nil, "", apperr.New(apperr.CredentialNotFound, "no passkeys registered")
	}

	assertion, session, err := s.wa.BeginLogin(newWaUser(*user, records))
	if err != nil {
		return nil, "", apperr.Wrap(apperr.Internal, "begin login", err)
	}

	authenticationID := uuid.NewString()
	if err := s.cacheSession(ctx, authenticationCacheKey(email, authenticationID), session); err != nil {
		return nil, "", err
	}

	pkg.CeremoniesStarted.WithLabelValues("authentication").Inc()
	return assertion, authenticationID, nil
}

// FinishAuthentication completes the login ceremony and, on success, mints
// a fresh token pair.
func (s *Service) FinishAuthentication(ctx context.Context, email, authenticationID string, rawResponse []byte) (*AuthenticationResult, error) {
	user, err := s.identity.FindByEmail(ctx, email)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "look up user", err)
	}
	if user == nil {
		return nil, apperr.New(apperr.UserNotFound, "no user with that email")
	}

	cached, ok, err := s.cache.GetDel(ctx, authenticationCacheKey(email, authenticationID))
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "read ceremony state", err)
	}
	if !ok {
		return nil, apperr.New(apperr.InvalidSession, "authentication session expired or unknown")
	}

	var session webauthn.SessionData
	if err := json.Unmarshal(cached, &session); err != nil {
		return nil, apperr.Wrap(apperr.Internal, "decode ceremony state", err)
	}

	records, err := s.repo.ListByUser(ctx, user.ID)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "list passkeys", err)
	}

	parsed, err := protocol.ParseCredentialRequestResponseBody(bytes.NewReader(rawResponse))
	if err != nil {
		pkg.CeremoniesFinished.WithLabelValues("authentication", "failure").Inc()
		return nil, apperr.Wrap(apperr.InvalidCredential, "parse assertion response", err)
	}

	cred, err := s.wa.ValidateLogin(newWaUser(*user, records), session, parsed)
	if err != nil {
		pkg.CeremoniesFinished.WithLabelValues("authentication", "failure").Inc()
		return nil, apperr.Wrap(apperr.InvalidCredential, "verify assertion", err)
	}

	for _, r := range records {
		if bytes.Equal(r.CredentialID, cred.ID) && cred.Authenticator.SignCount != r.Credential.Authenticator.SignCount {
			r.Credential = *cred
			if err := s.repo.Update(ctx, r); err != nil {
				return nil, apperr.Wrap(apperr.Internal, "persist updated counter", err)
			}
			break
		}
	}

	tokenUser := token.User{ID: user.ID, Role: user.Role}

	access, exp, err := s.codec.IssueAccess(tokenUser)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "issue access token", err)
	}
	refresh, err := s.codec.IssueRefresh(tokenUser)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "issue refresh token", err)
	}

	pkg.CeremoniesFinished.WithLabelValues("authentication", "success").Inc()
	pkg.TokensIssued.WithLabelValues("passkey_login").Inc()

	return &AuthenticationResult{
		User:            *user,
		AccessToken:     access,
		AccessExpiresAt: exp,
		RefreshToken:    refresh,
	}, nil
}

// Delete removes a passkey owned by userID. A missing or foreign credential
// is deliberately reported the same way, to avoid leaking ownership.
func (s *Service) Delete(ctx context.Context, userID uuid.UUID, credentialID []byte) error {
	if err := s.repo.Delete(ctx, credentialID, userID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return apperr.New(apperr.CredentialNotFound, "no such credential")
		}
		return apperr.Wrap(apperr.Internal, "delete passkey", err)
	}
	return nil
}

// List returns the wire-safe summary of a user's registered passkeys.
func (s *Service) List(ctx context.Context, userID uuid.UUID) ([]Summary, error) {
	records, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "list passkeys", err)
	}

	out := make([]Summary, 0, len(records))
	for _, r := range records {
		out = append(out, Summary{
			CredentialID: base64.RawURLEncoding.EncodeToString(r.CredentialID),
			AAGUID:       r.AAGUID,
			CreatedAt:    r.CreatedAt,
		})
	}
	return out, nil
}
