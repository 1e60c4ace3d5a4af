package energy

import (
	"fmt"
	"math/rand"
	"time"
)

const trendDays = 7

// PlaceholderTrend fabricates a week of plausible scores for users without
// birth info. Seeding off the start date keeps the curve stable across
// refreshes on the same day.
func PlaceholderTrend(start time.Time) []TrendPoint {
	rng := rand.New(rand.NewSource(start.Unix()))
	points := make([]TrendPoint, 0, trendDays)
	for i := 0; i < trendDays; i++ {
		day := start.AddDate(0, 0, i)
		points = append(points, TrendPoint{
			Date:      day.Format("2006-01-02"),
			ShortDate: ShortDate(day),
			Score:     40 + rng.Intn(50),
		})
	}
	return points
}

// ShortDate renders a date as "M/D" without zero padding.
func ShortDate(t time.Time) string {
	return fmt.Sprintf("%d/%d", int(t.Month()), t.Day())
}
