package cache

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestCache() (Cache, *fakeClock) {
	clock := &fakeClock{now: time.Unix(1700000000, 0)}
	return New(clock.Now), clock
}

func TestCache_HitWithinTTL(t *testing.T) {
	c, clock := newTestCache()

	c.Set("key", "value", 90*time.Second)

	clock.Advance(89 * time.Second)
	got, found := c.Get("key")
	assert.True(t, found)
	assert.Equal(t, "value", got)
}

func TestCache_MissAfterTTL(t *testing.T) {
	c, clock := newTestCache()

	c.Set("key", "value", 90*time.Second)

	clock.Advance(90 * time.Second)
	_, found := c.Get("key")
	assert.False(t, found)
}

func TestCache_MissOnUnknownKey(t *testing.T) {
	c, _ := newTestCache()
	_, found := c.Get("nothing")
	assert.False(t, found)
}

func TestCache_OverwriteResetsTTL(t *testing.T) {
	c, clock := newTestCache()

	c.Set("key", 1, 10*time.Second)
	clock.Advance(9 * time.Second)
	c.Set("key", 2, 10*time.Second)
	clock.Advance(9 * time.Second)

	got, found := c.Get("key")
	assert.True(t, found)
	assert.Equal(t, 2, got)
}

func TestCache_DeleteAndFlush(t *testing.T) {
	c, _ := newTestCache()

	c.Set("a", 1, time.Minute)
	c.Set("b", 2, time.Minute)

	c.Delete("a")
	_, found := c.Get("a")
	assert.False(t, found)

	c.Flush()
	_, found = c.Get("b")
	assert.False(t, found)
}

func TestGetTyped(t *testing.T) {
	c, _ := newTestCache()

	c.Set("int", 42, time.Minute)

	got, found := GetTyped[int](c, "int")
	assert.True(t, found)
	assert.Equal(t, 42, got)

	_, found = GetTyped[string](c, "int")
	assert.False(t, found, "type mismatch must miss")

	_, found = GetTyped[int](c, "missing")
	assert.False(t, found)
}

func TestCache_ConcurrentAccess(t *testing.T) {
	c, _ := newTestCache()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			c.Set("shared", n, time.Minute)
			c.Get("shared")
		}(i)
	}
	wg.Wait()

	_, found := c.Get("shared")
	assert.True(t, found)
}
