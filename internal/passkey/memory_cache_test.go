package passkey_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/madome/auth-core/internal/passkey"
)

func TestMemoryCacheGetDelIsSingleUse(t *testing.T) {
	c := passkey.NewMemoryCache()
	ctx := context.Background()

	require.NoError(t, c.SetEx(ctx, "k", []byte("v"), time.Minute))

	val, ok, err := c.GetDel(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte("v"), val)

	_, ok, err = c.GetDel(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryCacheExpiresByTTL(t *testing.T) {
	c := passkey.NewMemoryCache()
	ctx := context.Background()

	require.NoError(t, c.SetEx(ctx, "k", []byte("v"), -time.Second))

	_, ok, err := c.GetDel(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryCacheMissingKey(t *testing.T) {
	c := passkey.NewMemoryCache()
	_, ok, err := c.GetDel(context.Background(), "missing")
	require.NoError(t, err)
	assert.False(t, ok)
}
