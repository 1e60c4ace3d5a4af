package energy

import (
	"math"
	"time"

	"github.com/yanqian/shiji-energy/internal/domain/bazi"
	"github.com/yanqian/shiji-energy/internal/domain/profile"
	"github.com/yanqian/shiji-energy/pkg/metrics"
)

const (
	baseScoreV2 = 60
	minScoreV2  = 20
	maxScoreV2  = 95

	baseScoreLegacy = 50
	minScoreLegacy  = 0
	maxScoreLegacy  = 100
)

// EnergyLevel maps a score to its five-grade label.
func EnergyLevel(score int) string {
	switch {
	case score >= 85:
		return "大吉"
	case score >= 70:
		return "吉"
	case score >= 45:
		return "平"
	case score >= 25:
		return "凶"
	default:
		return "大凶"
	}
}

// ScoreHourV2 runs the rule modules over one hour and folds in the personal
// adjustment for the moment `at`. The result stays within [20, 95] so a
// single rule can never pin an hour to the extremes.
func ScoreHourV2(chart bazi.NatalChart, day, hour bazi.Pillar, rules []profile.PersonalRule, weight int, at time.Time) ScoreResult {
	dayImpact := DayPillarImpact(chart, day)
	hourImpact := HourPillarImpact(chart, day, hour)
	starImpact := StarImpact(chart, hour)
	comboImpact := SpecialComboImpact(chart, day, hour)

	personal := PersonalAdjustment(rules, weight, at)

	raw := float64(baseScoreV2+dayImpact.Delta+hourImpact.Delta+starImpact.Delta+comboImpact.Delta) + personal
	score := clampInt(int(math.Round(raw)), minScoreV2, maxScoreV2)

	reasons := make([]string, 0,
		len(dayImpact.Reasons)+len(hourImpact.Reasons)+len(starImpact.Reasons)+len(comboImpact.Reasons))
	reasons = append(reasons, dayImpact.Reasons...)
	reasons = append(reasons, hourImpact.Reasons...)
	reasons = append(reasons, starImpact.Reasons...)
	reasons = append(reasons, comboImpact.Reasons...)

	return ScoreResult{
		Score:   score,
		Level:   EnergyLevel(score),
		Reasons: reasons,
		Stars:   starImpact.Stars,
		Clashes: starImpact.Clashes,
		Breakdown: metrics.RuleBreakdown{
			Base:       baseScoreV2,
			DayPillar:  dayImpact.Delta,
			HourPillar: hourImpact.Delta,
			Stars:      starImpact.Delta,
			Combos:     comboImpact.Delta,
			Personal:   personal,
		},
	}
}

// ScoreHourLegacy is the original favorability-driven scorer kept for charts
// stored before the rule modules landed. It reads the full star catalogue,
// not the V2 star-rule subset.
func ScoreHourLegacy(chart bazi.NatalChart, fav bazi.FavorabilityProfile, hour bazi.Pillar) ScoreResult {
	score := baseScoreLegacy

	masterElement, okMaster := bazi.StemElement(chart.DayMaster)

	if stemElem, ok := bazi.StemElement(hour.Stem); ok {
		if fav.Favors(stemElem) {
			score += 20
		} else if fav.Avoids(stemElem) {
			score -= 20
		}
		if okMaster {
			switch {
			case bazi.Generates(stemElem, masterElement):
				score += 10
			case stemElem == masterElement:
				score += 5
			case bazi.Restrains(stemElem, masterElement):
				score -= 15
			}
		}
	}

	if branchElem, ok := bazi.BranchElement(hour.Branch); ok {
		if fav.Favors(branchElem) {
			score += 15
		} else if fav.Avoids(branchElem) {
			score -= 15
		}
	}

	stars, clashes := bazi.CalculateStars(chart, hour)
	starDelta := 0
	for _, star := range stars {
		switch star.Name {
		case "天乙贵人":
			starDelta += 10
		case "文昌贵人":
			starDelta += 5
		}
	}
	if len(clashes) > 0 {
		starDelta -= 15
	}
	score += starDelta

	score = clampInt(score, minScoreLegacy, maxScoreLegacy)
	return ScoreResult{
		Score:   score,
		Level:   EnergyLevel(score),
		Stars:   stars,
		Clashes: clashes,
		Breakdown: metrics.RuleBreakdown{
			Base:  baseScoreLegacy,
			Stars: starDelta,
		},
	}
}

// ScoreHour dispatches between the V2 and legacy scorers. Personal rules
// apply on both paths; the legacy result keeps its wider [0, 100] range.
func ScoreHour(useV2 bool, chart bazi.NatalChart, fav bazi.FavorabilityProfile, day, hour bazi.Pillar, rules []profile.PersonalRule, weight int, at time.Time) ScoreResult {
	if useV2 {
		return ScoreHourV2(chart, day, hour, rules, weight, at)
	}
	result := ScoreHourLegacy(chart, fav, hour)
	if personal := PersonalAdjustment(rules, weight, at); personal != 0 {
		result.Score = clampInt(int(math.Round(float64(result.Score)+personal)), minScoreLegacy, maxScoreLegacy)
		result.Level = EnergyLevel(result.Score)
		result.Breakdown.Personal = personal
	}
	return result
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
