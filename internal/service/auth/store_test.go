package auth

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryTokenStore(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewMemoryTokenStore()

	_, ok := store.Get(ctx)
	assert.False(t, ok)

	token := &Token{AccessToken: "A", RefreshToken: "R"}
	store.Set(ctx, token)

	stored, ok := store.Get(ctx)
	require.True(t, ok)
	assert.Equal(t, token, stored)

	replacement := &Token{AccessToken: "B"}
	store.Set(ctx, replacement)

	stored, ok = store.Get(ctx)
	require.True(t, ok)
	assert.Equal(t, replacement, stored)
}

func TestMemoryTokenStore_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewMemoryTokenStore()

	var wg sync.WaitGroup

	for i := range 16 {
		wg.Add(2)

		go func() {
			defer wg.Done()

			store.Set(ctx, &Token{AccessToken: "A", ExpiresIn: time.Duration(i) * time.Second})
		}()

		go func() {
			defer wg.Done()

			_, _ = store.Get(ctx)
		}()
	}

	wg.Wait()

	_, ok := store.Get(ctx)
	assert.True(t, ok)
}

func TestTokenExpiry(t *testing.T) {
	t.Parallel()

	obtained := time.Now()

	token := &Token{
		AccessToken: "A",
		ObtainedAt:  obtained,
		ExpiresIn:   time.Hour,
	}

	assert.Equal(t, obtained.Add(time.Hour), token.ExpiresAt())
	assert.False(t, token.ExpiresWithin(time.Minute))
	assert.True(t, token.ExpiresWithin(2*time.Hour))

	expired := &Token{
		AccessToken: "old",
		ObtainedAt:  obtained.Add(-2 * time.Hour),
		ExpiresIn:   time.Hour,
	}

	assert.True(t, expired.ExpiresWithin(0))
}
