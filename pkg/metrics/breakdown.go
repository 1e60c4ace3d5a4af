package metrics

// RuleBreakdown captures the per-category deltas that produced a final score.
type RuleBreakdown struct {
	Base       int     `json:"base"`
	DayPillar  int     `json:"dayPillar,omitempty"`
	HourPillar int     `json:"hourPillar,omitempty"`
	Stars      int     `json:"stars,omitempty"`
	Combos     int     `json:"combos,omitempty"`
	Personal   float64 `json:"personal,omitempty"`
}

// IsZero reports whether no rule contributed.
func (b RuleBreakdown) IsZero() bool {
	return b.Base == 0 && b.DayPillar == 0 && b.HourPillar == 0 && b.Stars == 0 && b.Combos == 0 && b.Personal == 0
}
