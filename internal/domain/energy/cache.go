package energy

import "context"

// ProfileCache stores computed day profiles keyed by user, date and profile
// revision. The revision changes whenever the profile mutates, so entries
// computed against stale rules or weights simply stop being addressed. Cache
// misses and errors are both treated as "compute it again".
type ProfileCache interface {
	GetDayProfile(ctx context.Context, userID int64, date, revision string) ([]HourRecord, bool, error)
	SetDayProfile(ctx context.Context, userID int64, date, revision string, records []HourRecord) error
}
