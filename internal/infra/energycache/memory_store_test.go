package energycache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/shiji-energy/internal/domain/energy"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	ctx := context.Background()

	_, found, err := store.GetDayProfile(ctx, 7, "2026-03-10", "1")
	require.NoError(t, err)
	require.False(t, found)

	records := []energy.HourRecord{{Hour: 10, Score: 82}}
	require.NoError(t, store.SetDayProfile(ctx, 7, "2026-03-10", "1", records))

	got, found, err := store.GetDayProfile(ctx, 7, "2026-03-10", "1")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, records, got)

	// A different date misses.
	_, found, err = store.GetDayProfile(ctx, 7, "2026-03-11", "1")
	require.NoError(t, err)
	require.False(t, found)
}

func TestMemoryStoreRevisionMisses(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	ctx := context.Background()

	records := []energy.HourRecord{{Hour: 10, Score: 82}}
	require.NoError(t, store.SetDayProfile(ctx, 7, "2026-03-10", "1", records))

	// The same date under a newer profile revision misses, so profile edits
	// never serve records computed against the old rules.
	_, found, err := store.GetDayProfile(ctx, 7, "2026-03-10", "2")
	require.NoError(t, err)
	require.False(t, found)
}

func TestMemoryStoreExpiry(t *testing.T) {
	store := NewMemoryStore(time.Millisecond)
	ctx := context.Background()

	require.NoError(t, store.SetDayProfile(ctx, 7, "2026-03-10", "1", []energy.HourRecord{{Hour: 0}}))
	time.Sleep(5 * time.Millisecond)

	_, found, err := store.GetDayProfile(ctx, 7, "2026-03-10", "1")
	require.NoError(t, err)
	require.False(t, found)
}
