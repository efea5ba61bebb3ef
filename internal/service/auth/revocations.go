package auth

import (
	"sync"
	"time"
)

// Revocations is an in-memory set of revoked token IDs. An entry is kept
// until its token could no longer pass validation, that is its expiry plus
// the validation leeway.
type Revocations struct {
	mu      sync.Mutex
	revoked map[string]time.Time
	leeway  time.Duration
	now     func() time.Time
}

// NewRevocations creates an empty revocation set. leeway must be at least
// the clock skew tolerated when tokens are validated.
func NewRevocations(leeway time.Duration) *Revocations {
	if leeway < 0 {
		leeway = 0
	}
	return &Revocations{
		revoked: make(map[string]time.Time),
		leeway:  leeway,
		now:     time.Now,
	}
}

// Revoke marks the token ID as revoked until expiresAt.
func (r *Revocations) Revoke(tokenID string, expiresAt time.Time) {
	if tokenID == "" {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.pruneLocked()
	r.revoked[tokenID] = expiresAt
}

// RevokeIfNew revokes the token ID and reports whether this call did so.
// Of any number of concurrent callers with the same ID exactly one gets
// true. An empty ID is never accepted.
func (r *Revocations) RevokeIfNew(tokenID string, expiresAt time.Time) bool {
	if tokenID == "" {
		return false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.pruneLocked()
	if _, ok := r.revoked[tokenID]; ok {
		return false
	}
	r.revoked[tokenID] = expiresAt
	return true
}

// IsRevoked reports whether the token ID has been revoked.
func (r *Revocations) IsRevoked(tokenID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.revoked[tokenID]
	return ok
}

// Len returns the number of tracked token IDs.
func (r *Revocations) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.revoked)
}

func (r *Revocations) pruneLocked() {
	now := r.now()
	for id, exp := range r.revoked {
		if now.After(exp.Add(r.leeway)) {
			delete(r.revoked, id)
		}
	}
}
