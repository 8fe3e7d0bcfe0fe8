package integration

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"driveline/pkg/quota"
)

func TestRedisStore_Admit(t *testing.T) {
	infra := SetupTestInfra(t)

	ctx := context.Background()
	store := quota.NewRedisStore(infra.RedisClient, quota.Config{
		Limit:  5,
		Window: time.Hour,
	}, "quota:")

	for i := 0; i < 5; i++ {
		admitted, err := store.Admit(ctx, "203.0.113.9")
		require.NoError(t, err)
		assert.True(t, admitted, "submission %d within the limit", i+1)
	}

	admitted, err := store.Admit(ctx, "203.0.113.9")
	require.NoError(t, err)
	assert.False(t, admitted, "submission past the limit is rejected")
}

func TestRedisStore_Admit_DifferentKeys(t *testing.T) {
	infra := SetupTestInfra(t)

	ctx := context.Background()
	store := quota.NewRedisStore(infra.RedisClient, quota.Config{
		Limit:  1,
		Window: time.Hour,
	}, "quota:")

	admitted, err := store.Admit(ctx, "203.0.113.9")
	require.NoError(t, err)
	require.True(t, admitted)

	admitted, err = store.Admit(ctx, "203.0.113.9")
	require.NoError(t, err)
	assert.False(t, admitted)

	admitted, err = store.Admit(ctx, "198.51.100.4")
	require.NoError(t, err)
	assert.True(t, admitted, "a different address has its own window")
}

func TestRedisStore_Admit_WindowExpiry(t *testing.T) {
	infra := SetupTestInfra(t)

	ctx := context.Background()
	store := quota.NewRedisStore(infra.RedisClient, quota.Config{
		Limit:  1,
		Window: 1 * time.Second,
	}, "quota:")

	admitted, err := store.Admit(ctx, "203.0.113.9")
	require.NoError(t, err)
	require.True(t, admitted)

	admitted, err = store.Admit(ctx, "203.0.113.9")
	require.NoError(t, err)
	require.False(t, admitted)

	// Wait for the recorded hit to fall out of the window
	time.Sleep(2 * time.Second)

	admitted, err = store.Admit(ctx, "203.0.113.9")
	require.NoError(t, err)
	assert.True(t, admitted, "admitted again once the window slides past the hit")
}

func TestRedisStore_Admit_RejectionIsNotRecorded(t *testing.T) {
	infra := SetupTestInfra(t)

	ctx := context.Background()
	store := quota.NewRedisStore(infra.RedisClient, quota.Config{
		Limit:  1,
		Window: 2 * time.Second,
	}, "quota:")

	admitted, err := store.Admit(ctx, "203.0.113.9")
	require.NoError(t, err)
	require.True(t, admitted)

	// Hammering while limited must not extend the lockout.
	for i := 0; i < 3; i++ {
		admitted, err = store.Admit(ctx, "203.0.113.9")
		require.NoError(t, err)
		require.False(t, admitted)
		time.Sleep(200 * time.Millisecond)
	}

	time.Sleep(2 * time.Second)

	admitted, err = store.Admit(ctx, "203.0.113.9")
	require.NoError(t, err)
	assert.True(t, admitted, "only the admitted hit counts against the window")
}
