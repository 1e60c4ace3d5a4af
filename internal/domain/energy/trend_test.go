package energy

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPlaceholderTrend(t *testing.T) {
	start := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	points := PlaceholderTrend(start)

	require.Len(t, points, 7)
	require.Equal(t, "2026-03-10", points[0].Date)
	require.Equal(t, "3/10", points[0].ShortDate)
	require.Equal(t, "2026-03-16", points[6].Date)
	require.Equal(t, "3/16", points[6].ShortDate)

	for _, p := range points {
		require.GreaterOrEqual(t, p.Score, 40)
		require.Less(t, p.Score, 90)
	}

	// Same start date, same curve.
	require.Equal(t, points, PlaceholderTrend(start))
}

func TestShortDate(t *testing.T) {
	require.Equal(t, "1/5", ShortDate(time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)))
	require.Equal(t, "12/31", ShortDate(time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC)))
}
