package common

import (
	"time"

	"github.com/patrickmn/go-cache"
)

type Cache struct {
	*cache.Cache
}

func NewCache(expirationTime, cleanupTime time.Duration) *Cache {
	return &Cache{cache.New(expirationTime, cleanupTime)}
}

func (c *Cache) Set(key string, value interface{}, expiration ...time.Duration) {
	if len(expiration) > 0 {
		c.Cache.Set(key, value, expiration[0])
		return
	}
	c.Cache.Set(key, value, cache.DefaultExpiration)
}

// GetOrAdd returns the value stored under key, storing the result of create
// first when the key is absent. Concurrent callers for the same key all get
// the value that won the race.
func (c *Cache) GetOrAdd(key string, create func() interface{}) interface{} {
	if v, ok := c.Cache.Get(key); ok {
		// refresh the expiration so active keys stay alive
		c.Cache.SetDefault(key, v)
		return v
	}

	v := create()
	if err := c.Cache.Add(key, v, cache.DefaultExpiration); err != nil {
		if existing, ok := c.Cache.Get(key); ok {
			return existing
		}
		c.Cache.SetDefault(key, v)
	}

	return v
}

func (c *Cache) Flush() {
	c.Cache.Flush()
}

func CacheKeyClient(ip string) string {
	return "client:" + ip
}
