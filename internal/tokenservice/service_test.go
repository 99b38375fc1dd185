package tokenservice_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/madome/auth-core/internal/apperr"
	"github.com/madome/auth-core/internal/authcode"
	"github.com/madome/auth-core/internal/identity"
	"github.com/madome/auth-core/internal/token"
	"github.com/madome/auth-core/internal/tokenservice"
)

const testSecret = "test-secret"

func newTestService(t *testing.T) (*tokenservice.Service, *authcode.Service, identity.User) {
	t.Helper()

	idp := identity.NewMemoryPort()
	user := identity.User{ID: uuid.New(), Email: "student@example.com", Role: 1}
	idp.Put(user)

	codec := token.NewCodec(testSecret)
	ac := authcode.NewService(authcode.NewMemoryRepository(), idp)

	return tokenservice.NewService(codec, ac, idp), ac, user
}

func TestCreateTokenWithValidCode(t *testing.T) {
	svc, ac, user := newTestService(t)
	ctx := context.Background()

	code, err := ac.Create(ctx, user.Email)
	require.NoError(t, err)

	pair, err := svc.CreateToken(ctx, user.Email, code.Code)
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.Greater(t, pair.AccessExpiresAt, int64(0))
}

func TestCreateTokenWithWrongCode(t *testing.T) {
	svc, ac, user := newTestService(t)
	ctx := context.Background()

	_, err := ac.Create(ctx, user.Email)
	require.NoError(t, err)

	_, err = svc.CreateToken(ctx, user.Email, "WRONGWRONGWR")
	require.Error(t, err)

	var aerr *apperr.Error
	require.ErrorAs(t, err, &aerr)
	assert.Equal(t, apperr.InvalidAuthcode, aerr.Kind)
}

func TestCreateTokenUnknownUser(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.CreateToken(context.Background(), "nobody@example.com", "XXXXXXXXXXXX")
	require.Error(t, err)

	var aerr *apperr.Error
	require.ErrorAs(t, err, &aerr)
	assert.Equal(t, apperr.UserNotFound, aerr.Kind)
}

func TestRefreshTokenRotatesOnValidRefresh(t *testing.T) {
	svc, _, user := newTestService(t)
	codec := token.NewCodec(testSecret)

	refresh, err := codec.IssueRefresh(token.User{ID: user.ID, Role: user.Role})
	require.NoError(t, err)

	pair, err := svc.RefreshToken(context.Background(), refresh)
	require.NoError(t, err)
	assert.NotEqual(t, refresh, pair.RefreshToken)
}

func TestRefreshTokenMalformedIsInvalidRefresh(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.RefreshToken(context.Background(), "not-a-jwt")
	require.Error(t, err)

	var aerr *apperr.Error
	require.ErrorAs(t, err, &aerr)
	assert.Equal(t, apperr.InvalidRefresh, aerr.Kind)
}

func TestRefreshTokenDeletedUserIsInvalidRefresh(t *testing.T) {
	idp := identity.NewMemoryPort()
	codec := token.NewCodec(testSecret)
	ac := authcode.NewService(authcode.NewMemoryRepository(), idp)
	svc := tokenservice.NewService(codec, ac, idp)

	ghost := uuid.New() // never put into idp
	refresh, err := codec.IssueRefresh(token.User{ID: ghost, Role: 1})
	require.NoError(t, err)

	_, err = svc.RefreshToken(context.Background(), refresh)
	require.Error(t, err)

	var aerr *apperr.Error
	require.ErrorAs(t, err, &aerr)
	assert.Equal(t, apperr.InvalidRefresh, aerr.Kind)
}

func TestCheckTokenEnforcesMinRole(t *testing.T) {
	svc, _, user := newTestService(t)
	codec := token.NewCodec(testSecret)

	access, _, err := codec.IssueAccess(token.User{ID: user.ID, Role: 1})
	require.NoError(t, err)

	minRole := uint8(2)
	_, err = svc.CheckToken(access, &minRole)
	require.Error(t, err)

	var aerr *apperr.Error
	require.ErrorAs(t, err, &aerr)
	assert.Equal(t, apperr.InvalidToken, aerr.Kind)
}

func TestCheckTokenSucceedsWithoutRoleRequirement(t *testing.T) {
	svc, _, user := newTestService(t)
	codec := token.NewCodec(testSecret)

	access, exp, err := codec.IssueAccess(token.User{ID: user.ID, Role: 1})
	require.NoError(t, err)

	result, err := svc.CheckToken(access, nil)
	require.NoError(t, err)
	assert.Equal(t, user.ID, result.UserID)
	assert.Equal(t, exp, result.AccessExpiresAt)
}
