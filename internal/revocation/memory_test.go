package revocation

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_RevokeThenIsRevoked(t *testing.T) {
	ctx := context.Background()
	reg := NewMemory(time.Minute)

	require.NoError(t, reg.Revoke(ctx, "jti-1", time.Now().Add(time.Hour)))

	revoked, err := reg.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	revoked, err = reg.IsRevoked(ctx, "jti-other")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestMemory_Revoke_Idempotent(t *testing.T) {
	ctx := context.Background()
	reg := NewMemory(time.Minute)
	expiry := time.Now().Add(time.Hour)

	require.NoError(t, reg.Revoke(ctx, "jti-1", expiry))
	require.NoError(t, reg.Revoke(ctx, "jti-1", expiry))

	revoked, err := reg.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)
}

func TestMemory_Revoke_AlreadyExpiredNotStored(t *testing.T) {
	ctx := context.Background()
	reg := NewMemory(time.Minute)

	require.NoError(t, reg.Revoke(ctx, "jti-1", time.Now().Add(-time.Minute)))

	revoked, err := reg.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestMemory_EntryLapsesWithTokenExpiry(t *testing.T) {
	ctx := context.Background()
	reg := NewMemory(time.Minute)

	require.NoError(t, reg.Revoke(ctx, "jti-1", time.Now().Add(30*time.Millisecond)))

	revoked, err := reg.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	time.Sleep(50 * time.Millisecond)

	revoked, err = reg.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestMemory_ConcurrentRevokeAndLookup(t *testing.T) {
	ctx := context.Background()
	reg := NewMemory(time.Minute)
	expiry := time.Now().Add(time.Hour)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		jti := fmt.Sprintf("jti-%d", i)
		go func() {
			defer wg.Done()
			assert.NoError(t, reg.Revoke(ctx, jti, expiry))
		}()
		go func() {
			defer wg.Done()
			_, err := reg.IsRevoked(ctx, jti)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	for i := 0; i < 50; i++ {
		revoked, err := reg.IsRevoked(ctx, fmt.Sprintf("jti-%d", i))
		require.NoError(t, err)
		assert.True(t, revoked)
	}
}
