package revocation

import (
	"context"
	"sync"
	"time"

	"campus-booking/internal/pkg/clock"
)

// MemoryList is the single-process fallback used when no Redis is configured.
type MemoryList struct {
	mu      sync.Mutex
	revoked map[string]time.Time
	clock   clock.Clock
}

func NewMemoryList(clk clock.Clock) *MemoryList {
	return &MemoryList{revoked: map[string]time.Time{}, clock: clk}
}

func (l *MemoryList) Revoke(_ context.Context, tokenID string, until time.Time) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.clock.Now()
	l.sweep(now)
	if until.After(now) {
		l.revoked[tokenID] = until
	}
	return nil
}

func (l *MemoryList) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	until, ok := l.revoked[tokenID]
	return ok && until.After(l.clock.Now()), nil
}

func (l *MemoryList) sweep(now time.Time) {
	for id, until := range l.revoked {
		if !until.After(now) {
			delete(l.revoked, id)
		}
	}
}
