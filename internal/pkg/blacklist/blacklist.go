// Package blacklist keeps revoked tokens until they would have expired anyway.
package blacklist

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

type Blacklist struct {
	mu      sync.RWMutex
	entries map[string]time.Time
	now     func() time.Time
}

type Option func(*Blacklist)

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(b *Blacklist) {
		b.now = now
	}
}

func New(opts ...Option) *Blacklist {
	b := &Blacklist{
		entries: make(map[string]time.Time),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}

	return b
}

// Add revokes token until expiresAt.
func (b *Blacklist) Add(token string, expiresAt time.Time) {
	b.mu.Lock()
	b.entries[token] = expiresAt
	b.mu.Unlock()

	zap.L().Debug("token blacklisted", zap.Time("expires_at", expiresAt))
}

func (b *Blacklist) Contains(token string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()

	_, ok := b.entries[token]

	return ok
}

func (b *Blacklist) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return len(b.entries)
}

// Purge drops every entry whose expiry is not after the current time and
// returns how many were dropped.
func (b *Blacklist) Purge() int {
	now := b.now()

	b.mu.Lock()
	defer b.mu.Unlock()

	purged := 0
	for token, exp := range b.entries {
		if !exp.After(now) {
			delete(b.entries, token)
			purged++
		}
	}

	return purged
}

// Run purges expired entries every interval until ctx is done.
func (b *Blacklist) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	zap.L().Info("blacklist janitor started", zap.Duration("interval", interval))

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("blacklist janitor stopped")
			return
		case <-ticker.C:
			purged := b.Purge()
			zap.L().Info("blacklist janitor run", zap.Int("purged", purged), zap.Int("remaining", b.Len()))
		}
	}
}
