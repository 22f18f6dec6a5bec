package application

import (
	"fmt"
	"sync"
	"time"
)

// limiterEntry tracks one credential's submissions in the current window.
type limiterEntry struct {
	count     int
	resetTime time.Time
}

// SubmissionLimiter caps how often a credential may attempt a booking
// submission within a time window.
type SubmissionLimiter struct {
	limits map[string]*limiterEntry
	mu     sync.RWMutex
	window time.Duration
	limit  int
}

// NewSubmissionLimiter creates a limiter allowing `limit` submissions per
// credential per window.
func NewSubmissionLimiter(window time.Duration, limit int) *SubmissionLimiter {
	l := &SubmissionLimiter{
		limits: make(map[string]*limiterEntry),
		window: window,
		limit:  limit,
	}

	go l.cleanupLoop()

	return l
}

// Allow checks whether the credential may submit now.
func (l *SubmissionLimiter) Allow(credential string) (bool, error) {
	if credential == "" {
		credential = "anonymous"
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	entry, exists := l.limits[credential]

	if !exists || now.After(entry.resetTime) {
		l.limits[credential] = &limiterEntry{
			count:     1,
			resetTime: now.Add(l.window),
		}
		return true, nil
	}

	if entry.count >= l.limit {
		wait := entry.resetTime.Sub(now)
		return false, fmt.Errorf("too many booking attempts, try again in %v", wait.Round(time.Second))
	}

	entry.count++
	return true, nil
}

// Remaining returns how many submissions the credential has left in the
// current window.
func (l *SubmissionLimiter) Remaining(credential string) int {
	if credential == "" {
		credential = "anonymous"
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	entry, exists := l.limits[credential]
	if !exists || time.Now().After(entry.resetTime) {
		return l.limit
	}

	remaining := l.limit - entry.count
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Reset clears the counter for one credential.
func (l *SubmissionLimiter) Reset(credential string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	delete(l.limits, credential)
}

// cleanupLoop removes expired entries periodically.
func (l *SubmissionLimiter) cleanupLoop() {
	ticker := time.NewTicker(1 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		l.cleanup()
	}
}

func (l *SubmissionLimiter) cleanup() {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	for key, entry := range l.limits {
		if now.After(entry.resetTime) {
			delete(l.limits, key)
		}
	}
}
