package profilerepo

import (
	"context"
	"sync"

	"github.com/yanqian/shiji-energy/internal/domain/profile"
)

// MemoryRepository provides an in-memory profile store for tests/dev.
type MemoryRepository struct {
	mu       sync.RWMutex
	profiles map[int64]profile.Profile
}

// NewMemoryRepository constructs a new in-memory repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{profiles: make(map[int64]profile.Profile)}
}

// Get returns the stored profile for a user.
func (r *MemoryRepository) Get(_ context.Context, userID int64) (profile.Profile, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.profiles[userID]
	return p, ok, nil
}

// Save stores the profile, replacing any previous version.
func (r *MemoryRepository) Save(_ context.Context, p profile.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.profiles[p.UserID] = p
	return nil
}

var _ profile.Repository = (*MemoryRepository)(nil)
