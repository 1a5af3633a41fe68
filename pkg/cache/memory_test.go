package cache

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache_SetGetRoundTrip(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	type payload struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	require.NoError(t, c.Set(ctx, "k", payload{Name: "pulse", Count: 3}, 0))

	var got payload
	found, err := c.Get(ctx, "k", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, payload{Name: "pulse", Count: 3}, got)
}

func TestMemoryCache_MissingKey(t *testing.T) {
	c := NewMemoryCache()

	var got string
	found, err := c.Get(context.Background(), "absent", &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMemoryCache_TTLExpiry(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", "v", 10*time.Millisecond))
	time.Sleep(20 * time.Millisecond)

	var got string
	found, err := c.Get(ctx, "k", &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestMemoryCache_IncrementIsAtomic(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := c.Increment(ctx, "counter")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	var n int64
	found, err := c.Get(ctx, "counter", &n)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, int64(50), n)
}

func TestMemoryCache_DeletePattern(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "share:a:twitter:shares", 1, 0))
	require.NoError(t, c.Set(ctx, "share:a:reddit:clicks", 2, 0))
	require.NoError(t, c.Set(ctx, "share:b:twitter:shares", 3, 0))

	require.NoError(t, c.DeletePattern(ctx, "share:a:*"))

	for key, wantFound := range map[string]bool{
		"share:a:twitter:shares": false,
		"share:a:reddit:clicks":  false,
		"share:b:twitter:shares": true,
	} {
		var n int64
		found, err := c.Get(ctx, key, &n)
		require.NoError(t, err)
		assert.Equal(t, wantFound, found, key)
	}
}

func TestMemoryCache_SetMembershipAndExpiry(t *testing.T) {
	c := NewMemoryCache()
	ctx := context.Background()

	require.NoError(t, c.SetAdd(ctx, "seen", "a", "b"))
	require.NoError(t, c.SetAdd(ctx, "seen", "b", "c"))

	members, err := c.SetMembers(ctx, "seen")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a", "b", "c"}, members)

	require.NoError(t, c.Expire(ctx, "seen", 10*time.Millisecond))
	time.Sleep(20 * time.Millisecond)

	members, err = c.SetMembers(ctx, "seen")
	require.NoError(t, err)
	assert.Empty(t, members)
}
