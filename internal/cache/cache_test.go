package cache_test

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/minhvu/shuttletrack/internal/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAfterSet(t *testing.T) {
	c := cache.New[string]()
	c.Set("k", "v", time.Minute)

	got, ok := c.Get("k")
	require.True(t, ok)
	assert.Equal(t, "v", got)
}

func TestGetMissingKey(t *testing.T) {
	c := cache.New[string]()
	_, ok := c.Get("nope")
	assert.False(t, ok)
}

func TestExpiredEntryIsAMiss(t *testing.T) {
	now := time.Now()
	clock := func() time.Time { return now }
	c := cache.NewWithClock[int](clock)

	c.Set("k", 7, 10*time.Minute)

	got, ok := c.Get("k")
	require.True(t, ok)
	assert.Equal(t, 7, got)

	now = now.Add(10*time.Minute + time.Second)
	_, ok = c.Get("k")
	assert.False(t, ok)
}

func TestSetOverwritesValueAndExpiry(t *testing.T) {
	now := time.Now()
	clock := func() time.Time { return now }
	c := cache.NewWithClock[int](clock)

	c.Set("k", 1, time.Minute)
	now = now.Add(2 * time.Minute)
	// First entry has lapsed; a fresh Set must revive the key.
	c.Set("k", 2, time.Minute)

	got, ok := c.Get("k")
	require.True(t, ok)
	assert.Equal(t, 2, got)
}

func TestConcurrentAccess(t *testing.T) {
	c := cache.New[int]()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			c.Set(fmt.Sprintf("key-%d", i%5), i, time.Minute)
		}(i)
		go func(i int) {
			defer wg.Done()
			c.Get(fmt.Sprintf("key-%d", i%5))
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 5, c.Len())
}
