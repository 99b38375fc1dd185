package authcode

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/madome/auth-core/internal/apperr"
	"github.com/madome/auth-core/internal/identity"
	"github.com/madome/auth-core/pkg"
)

// Service implements CreateAuthcode: resolve the user, throttle, generate,
// and atomically persist the code alongside its outbox event.
type Service struct {
	repo     Repository
	identity identity.Port
}

func NewService(repo Repository, idp identity.Port) *Service {
	return &Service{repo: repo, identity: idp}
}

// Repository exposes the underlying store so the Token Service can call
// ConsumeValid directly when exchanging a code for tokens.
func (s *Service) Repository() Repository {
	return s.repo
}

func (s *Service) Create(ctx context.Context, email string) (*AuthCode, error) {
	user, err := s.identity.FindByEmail(ctx, email)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "look up user", err)
	}
	if user == nil {
		return nil, apperr.New(apperr.UserNotFound, "no user with that email")
	}

	active, err := s.repo.CountActive(ctx, user.ID)
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "count active auth codes", err)
	}
	if active >= MaxActive {
		pkg.AuthcodesRateLimited.Inc()
		return nil, apperr.New(apperr.TooManyAuthcodes, "too many active auth codes")
	}

	plain, err := generateCode()
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "generate auth code", err)
	}

	now := time.Now()
	code := AuthCode{
		ID:        uuid.New(),
		UserID:    user.ID,
		Code:      plain,
		ExpiresAt: now.Add(TTL),
		CreatedAt: now,
	}

	payload, err := json.Marshal(map[string]string{"email": email, "code": plain})
	if err != nil {
		return nil, apperr.Wrap(apperr.Internal, "encode outbox payload", err)
	}

	event := OutboxEvent{
		ID:             uuid.New(),
		Kind:           EventKindAuthcodeCreated,
		Payload:        payload,
		IdempotencyKey: fmt.Sprintf("%s:%s", EventKindAuthcodeCreated, code.ID),
		CreatedAt:      now,
		NextAttemptAt:  now,
	}

	if err := s.repo.Insert(ctx, code, event); err != nil {
		return nil, apperr.Wrap(apperr.Internal, "persist auth code", err)
	}

	pkg.AuthcodesIssued.Inc()
	return &code, nil
}
