package passkey_test

import (
	"context"
	"testing"
	"time"

	"github.com/go-webauthn/webauthn/webauthn"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/madome/auth-core/internal/apperr"
	"github.com/madome/auth-core/internal/identity"
	"github.com/madome/auth-core/internal/passkey"
	"github.com/madome/auth-core/internal/token"
)

func newTestService(t *testing.T) (*passkey.Service, *passkey.MemoryRepository, identity.User) {
	t.Helper()

	wa, err := webauthn.New(&webauthn.Config{
		RPDisplayName: "Madome Test",
		RPID:          "localhost",
		RPOrigins:     []string{"https://localhost"},
	})
	require.NoError(t, err)

	idp := identity.NewMemoryPort()
	user := identity.User{ID: uuid.New(), Email: "student@example.com", Role: 1}
	idp.Put(user)

	repo := passkey.NewMemoryRepository()
	cache := passkey.NewMemoryCache()
	codec := token.NewCodec("test-secret")

	return passkey.NewService(wa, repo, cache, idp, codec), repo, user
}

func TestDeleteMissingCredentialReportsNotFound(t *testing.T) {
	svc, _, user := newTestService(t)

	err := svc.Delete(context.Background(), user.ID, []byte("does-not-exist"))
	require.Error(t, err)

	var aerr *apperr.Error
	require.ErrorAs(t, err, &aerr)
	assert.Equal(t, apperr.CredentialNotFound, aerr.Kind)
}

func TestDeleteWrongOwnerReportsNotFound(t *testing.T) {
	svc, repo, user := newTestService(t)
	ctx := context.Background()

	credID := []byte("cred-1")
	require.NoError(t, repo.Insert(ctx, passkey.Record{
		CredentialID: credID,
		UserID:       uuid.New(), // owned by someone else
		CreatedAt:    time.Now(),
	}))

	err := svc.Delete(ctx, user.ID, credID)
	require.Error(t, err)

	var aerr *apperr.Error
	require.ErrorAs(t, err, &aerr)
	assert.Equal(t, apperr.CredentialNotFound, aerr.Kind)
}

func TestListOmitsCredentialBlob(t *testing.T) {
	svc, repo, user := newTestService(t)
	ctx := context.Background()

	credID := []byte("cred-1")
	aaguid := uuid.New()
	require.NoError(t, repo.Insert(ctx, passkey.Record{
		CredentialID: credID,
		UserID:       user.ID,
		AAGUID:       aaguid,
		CreatedAt:    time.Now(),
	}))

	summaries, err := svc.List(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, aaguid, summaries[0].AAGUID)
	assert.NotEmpty(t, summaries[0].CredentialID)
}

func TestStartAuthenticationNoPasskeysIsCredentialNotFound(t *testing.T) {
	svc, _, user := newTestService(t)

	_, _, err := svc.StartAuthentication(context.Background(), user.Email)
	require.Error(t, err)

	var aerr *apperr.Error
	require.ErrorAs(t, err, &aerr)
	assert.Equal(t, apperr.CredentialNotFound, aerr.Kind)
}

func TestStartAuthenticationUnknownEmailIsUserNotFound(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, _, err := svc.StartAuthentication(context.Background(), "nobody@example.com")
	require.Error(t, err)

	var aerr *apperr.Error
	require.ErrorAs(t, err, &aerr)
	assert.Equal(t, apperr.UserNotFound, aerr.Kind)
}
