package session

import (
	"context"
	"sync"
	"time"
)

// MemoryRevoker keeps revocations in process memory. It serves single
// instance deployments without Redis and tests.
type MemoryRevoker struct {
	mu      sync.Mutex
	revoked map[string]time.Time
	now     func() time.Time
}

func NewMemoryRevoker() *MemoryRevoker {
	return &MemoryRevoker{revoked: make(map[string]time.Time), now: time.Now}
}

func (r *MemoryRevoker) Revoke(_ context.Context, jti string, until time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.revoked[jti] = until
	r.evictExpired()
	return nil
}

func (r *MemoryRevoker) IsRevoked(_ context.Context, jti string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	until, ok := r.revoked[jti]
	if !ok {
		return false, nil
	}
	if !r.now().Before(until) {
		delete(r.revoked, jti)
		return false, nil
	}
	return true, nil
}

func (r *MemoryRevoker) evictExpired() {
	now := r.now()
	for jti, until := range r.revoked {
		if !now.Before(until) {
			delete(r.revoked, jti)
		}
	}
}
