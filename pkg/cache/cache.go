package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Clock returns the current time. Injected so TTL behavior can be tested
// with a fake clock.
type Clock func() time.Time

type Cache interface {
	Set(key string, value interface{}, ttl time.Duration)
	Get(key string) (interface{}, bool)
	Delete(key string)
	Flush()
}

type entry struct {
	savedAt time.Time
	ttl     time.Duration
	value   interface{}
}

// memoryCache keeps entries in a go-cache map but does its own staleness
// check against the injected clock. Stale entries are not removed; they are
// overwritten by the next store on the same key.
type memoryCache struct {
	internal *gocache.Cache
	now      Clock
}

// New returns an in-memory Cache using the given clock. Construct once at
// startup and pass by reference; there is no package-level instance.
func New(now Clock) Cache {
	if now == nil {
		now = time.Now
	}
	return &memoryCache{
		internal: gocache.New(gocache.NoExpiration, gocache.NoExpiration),
		now:      now,
	}
}

func (c *memoryCache) Set(key string, value interface{}, ttl time.Duration) {
	c.internal.Set(key, entry{savedAt: c.now(), ttl: ttl, value: value}, gocache.NoExpiration)
}

func (c *memoryCache) Get(key string) (interface{}, bool) {
	raw, found := c.internal.Get(key)
	if !found {
		return nil, false
	}
	e, ok := raw.(entry)
	if !ok {
		return nil, false
	}
	if c.now().Sub(e.savedAt) >= e.ttl {
		return nil, false
	}
	return e.value, true
}

func (c *memoryCache) Delete(key string) {
	c.internal.Delete(key)
}

func (c *memoryCache) Flush() {
	c.internal.Flush()
}

// GetTyped is a typed lookup helper around Cache.Get.
func GetTyped[T any](c Cache, key string) (T, bool) {
	var zero T
	val, found := c.Get(key)
	if !found {
		return zero, false
	}
	typedVal, ok := val.(T)
	if !ok {
		return zero, false
	}
	return typedVal, true
}
