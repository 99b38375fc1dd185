package authcode_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/madome/auth-core/internal/apperr"
	"github.com/madome/auth-core/internal/authcode"
	"github.com/madome/auth-core/internal/identity"
)

func setup(t *testing.T) (*authcode.Service, *identity.MemoryPort, identity.User) {
	t.Helper()
	idp := identity.NewMemoryPort()
	user := identity.User{ID: uuid.New(), Email: "student@example.com", Role: 1}
	idp.Put(user)

	repo := authcode.NewMemoryRepository()
	return authcode.NewService(repo, idp), idp, user
}

func TestCreateUnknownUser(t *testing.T) {
	svc, _, _ := setup(t)

	_, err := svc.Create(context.Background(), "nobody@example.com")
	require.Error(t, err)

	var aerr *apperr.Error
	require.ErrorAs(t, err, &aerr)
	assert.Equal(t, apperr.UserNotFound, aerr.Kind)
}

func TestCreateIssuesWellFormedCode(t *testing.T) {
	svc, _, user := setup(t)

	code, err := svc.Create(context.Background(), user.Email)
	require.NoError(t, err)
	require.NotNil(t, code)

	assert.Equal(t, authcode.CodeLength, len(code.Code))
	assert.Equal(t, user.ID, code.UserID)
	assert.Nil(t, code.UsedAt)
	assert.True(t, code.ExpiresAt.After(code.CreatedAt))
}

func TestCreateThrottlesAtFiveActive(t *testing.T) {
	svc, _, user := setup(t)
	ctx := context.Background()

	for i := 0; i < authcode.MaxActive; i++ {
		_, err := svc.Create(ctx, user.Email)
		require.NoError(t, err)
	}

	_, err := svc.Create(ctx, user.Email)
	require.Error(t, err)

	var aerr *apperr.Error
	require.ErrorAs(t, err, &aerr)
	assert.Equal(t, apperr.TooManyAuthcodes, aerr.Kind)
}

func TestCreateWritesMatchingOutboxEvent(t *testing.T) {
	idp := identity.NewMemoryPort()
	user := identity.User{ID: uuid.New(), Email: "student@example.com", Role: 1}
	idp.Put(user)

	repo := authcode.NewMemoryRepository()
	svc := authcode.NewService(repo, idp)

	code, err := svc.Create(context.Background(), user.Email)
	require.NoError(t, err)

	events := repo.Events()
	require.Len(t, events, 1)
	assert.Equal(t, authcode.EventKindAuthcodeCreated, events[0].Kind)
	assert.Contains(t, events[0].IdempotencyKey, code.ID.String())
}

func TestConsumeValidMarksCodeUsedOnce(t *testing.T) {
	svc, _, user := setup(t)
	ctx := context.Background()

	code, err := svc.Create(ctx, user.Email)
	require.NoError(t, err)

	consumed, err := svc.Repository().ConsumeValid(ctx, user.ID, code.Code)
	require.NoError(t, err)
	require.NotNil(t, consumed)

	second, err := svc.Repository().ConsumeValid(ctx, user.ID, code.Code)
	require.NoError(t, err)
	assert.Nil(t, second)
}
