package energycache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/yanqian/shiji-energy/internal/domain/energy"
)

type cachedProfile struct {
	records   []energy.HourRecord
	expiresAt time.Time
}

// MemoryStore is an in-memory day-profile cache for tests/dev.
type MemoryStore struct {
	mu       sync.RWMutex
	profiles map[string]cachedProfile
	ttl      time.Duration
}

// NewMemoryStore constructs a store backed by process memory.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		profiles: make(map[string]cachedProfile),
		ttl:      ttl,
	}
}

// GetDayProfile implements energy.ProfileCache.
func (s *MemoryStore) GetDayProfile(_ context.Context, userID int64, date, revision string) ([]energy.HourRecord, bool, error) {
	key := profileKey(userID, date, revision)
	s.mu.RLock()
	cached, ok := s.profiles[key]
	s.mu.RUnlock()
	if !ok {
		return nil, false, nil
	}
	if hasExpired(cached.expiresAt) {
		s.mu.Lock()
		delete(s.profiles, key)
		s.mu.Unlock()
		return nil, false, nil
	}
	return cached.records, true, nil
}

// SetDayProfile caches the records under the user/date/revision key.
func (s *MemoryStore) SetDayProfile(_ context.Context, userID int64, date, revision string, records []energy.HourRecord) error {
	exp := time.Time{}
	if s.ttl > 0 {
		exp = time.Now().Add(s.ttl)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles[profileKey(userID, date, revision)] = cachedProfile{records: records, expiresAt: exp}
	return nil
}

func profileKey(userID int64, date, revision string) string {
	return fmt.Sprintf("day:%d:%s:%s", userID, date, revision)
}

func hasExpired(ts time.Time) bool {
	if ts.IsZero() {
		return false
	}
	return ts.Before(time.Now())
}

var _ energy.ProfileCache = (*MemoryStore)(nil)
