package energy

import (
	"github.com/yanqian/shiji-energy/internal/domain/bazi"
	"github.com/yanqian/shiji-energy/pkg/metrics"
)

// Impact is the contribution of one rule module: a signed delta plus the
// reason strings in evaluation order.
type Impact struct {
	Delta   int
	Reasons []string
}

// StarsImpact extends Impact with the deduplicated star/clash matches.
type StarsImpact struct {
	Impact
	Stars   []bazi.Star
	Clashes []bazi.Clash
}

// ScoreResult is the outcome of scoring a single hour.
type ScoreResult struct {
	Score     int                   `json:"score"`
	Level     string                `json:"level"`
	Reasons   []string              `json:"reasons"`
	Stars     []bazi.Star           `json:"stars"`
	Clashes   []bazi.Clash          `json:"clashes"`
	Breakdown metrics.RuleBreakdown `json:"breakdown"`
}

// HourRecord is one slot of the 24-hour day profile.
type HourRecord struct {
	Hour               int          `json:"hour"`
	RangeLabel         string       `json:"rangeLabel"`
	Score              int          `json:"score"`
	LevelLabel         string       `json:"levelLabel"`
	Brief              string       `json:"brief"`
	HourPillar         string       `json:"hourPillar"`
	Element            string       `json:"element"`
	RecommendedActions []string     `json:"recommendedActions"`
	AvoidActions       []string     `json:"avoidActions"`
	Stars              []bazi.Star  `json:"stars"`
	Clashes            []bazi.Clash `json:"clashes"`
	StarTags           []string     `json:"starTags"`
	ClashTags          []string     `json:"clashTags"`
	ReasonTags         []string     `json:"reasonTags"`
}

// RankedHour is a day-profile slot reduced to its ranking view.
type RankedHour struct {
	Hour       int      `json:"hour"`
	Score      int      `json:"score"`
	RangeLabel string   `json:"rangeLabel"`
	ReasonTags []string `json:"reasonTags"`
}

// AspectScore is one of the four life-aspect readings.
type AspectScore struct {
	Score int    `json:"score"`
	Text  string `json:"text"`
}

// OverallScore is the day-level headline.
type OverallScore struct {
	Score int    `json:"score"`
	Level string `json:"level"`
	Text  string `json:"text"`
}

// DailyFortune aggregates the 24 hour records of one day.
type DailyFortune struct {
	Date         string       `json:"date"`
	LunarText    string       `json:"lunarText"`
	Overall      OverallScore `json:"overall"`
	Career       AspectScore  `json:"career"`
	Wealth       AspectScore  `json:"wealth"`
	Love         AspectScore  `json:"love"`
	Health       AspectScore  `json:"health"`
	Quote        string       `json:"quote"`
	Tags         []string     `json:"tags"`
	Pros         []string     `json:"pros"`
	Cons         []string     `json:"cons"`
	TopHours     []RankedHour `json:"topHours"`
	CautionHours []RankedHour `json:"cautionHours"`
}

// TrendPoint is one day of the weekly trend.
type TrendPoint struct {
	Date      string `json:"date"`
	ShortDate string `json:"shortDate"`
	Score     int    `json:"score"`
}

// ActionRecommendation ranks hours for a chosen action.
type ActionRecommendation struct {
	Action  string       `json:"action"`
	Top     []RankedHour `json:"top"`
	Caution []RankedHour `json:"caution"`
}
