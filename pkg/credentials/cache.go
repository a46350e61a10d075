// Package credentials holds short-lived provider bearer tokens in process
// memory so each payment initiation does not repeat the token exchange.
package credentials

import (
	"sync"
	"time"
)

// expirySkew is subtracted from a token's lifetime so a token is never
// handed out moments before the provider rejects it.
const expirySkew = 30 * time.Second

type Cache interface {
	Get(key string) (string, bool)
	Put(key string, token string, ttl time.Duration)
}

type cache struct {
	mu      sync.Mutex
	entries map[string]entry
	now     func() time.Time
}

type entry struct {
	token     string
	expiresAt time.Time
}

func NewCache() Cache {
	return &cache{entries: make(map[string]entry), now: time.Now}
}

func (c *cache) Get(key string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return "", false
	}

	if !c.now().Before(e.expiresAt) {
		delete(c.entries, key)
		return "", false
	}

	return e.token, true
}

func (c *cache) Put(key string, token string, ttl time.Duration) {
	if ttl <= expirySkew {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = entry{token: token, expiresAt: c.now().Add(ttl - expirySkew)}
}
