package profile

import "context"

// Repository abstracts profile persistence.
type Repository interface {
	Get(ctx context.Context, userID int64) (Profile, bool, error)
	Save(ctx context.Context, p Profile) error
}
