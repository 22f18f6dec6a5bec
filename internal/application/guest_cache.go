package application

import (
	"context"
	"sync"
	"time"

	"github.com/jhalaharsh71/hotel-frontend-sub001/internal/domain"
)

// guestCacheEntry is one cached directory lookup.
type guestCacheEntry struct {
	guests    []domain.KnownGuest
	timestamp time.Time
}

// KnownGuestCache is a short-TTL in-memory cache in front of the known-guest
// directory, keyed per credential. The roster endpoints hit the directory on
// every keystroke-level interaction; the cache keeps that cheap.
type KnownGuestCache struct {
	directory domain.GuestDirectory
	cache     map[string]*guestCacheEntry
	mu        sync.RWMutex
	ttl       time.Duration
}

// NewKnownGuestCache creates a caching wrapper around the directory.
func NewKnownGuestCache(directory domain.GuestDirectory, ttl time.Duration) *KnownGuestCache {
	c := &KnownGuestCache{
		directory: directory,
		cache:     make(map[string]*guestCacheEntry),
		ttl:       ttl,
	}

	go c.cleanupLoop()

	return c
}

// SearchKnownGuests returns the cached directory result when fresh, otherwise
// fetches and caches it.
func (c *KnownGuestCache) SearchKnownGuests(ctx context.Context, credential string) ([]domain.KnownGuest, error) {
	if guests, ok := c.get(credential); ok {
		return guests, nil
	}

	guests, err := c.directory.SearchKnownGuests(ctx, credential)
	if err != nil {
		return nil, err
	}

	c.set(credential, guests)
	return guests, nil
}

// Invalidate drops the cached entry for a credential.
func (c *KnownGuestCache) Invalidate(credential string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.cache, credential)
}

// Size returns the number of cached credentials.
func (c *KnownGuestCache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.cache)
}

func (c *KnownGuestCache) get(credential string) ([]domain.KnownGuest, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, exists := c.cache[credential]
	if !exists {
		return nil, false
	}
	if time.Since(entry.timestamp) > c.ttl {
		return nil, false
	}

	return entry.guests, true
}

func (c *KnownGuestCache) set(credential string, guests []domain.KnownGuest) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cache[credential] = &guestCacheEntry{
		guests:    guests,
		timestamp: time.Now(),
	}
}

// cleanupLoop drops expired entries periodically.
func (c *KnownGuestCache) cleanupLoop() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		c.cleanup()
	}
}

func (c *KnownGuestCache) cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	for key, entry := range c.cache {
		if now.Sub(entry.timestamp) > c.ttl {
			delete(c.cache, key)
		}
	}
}
