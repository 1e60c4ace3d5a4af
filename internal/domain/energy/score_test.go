package energy

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/shiji-energy/internal/domain/bazi"
	"github.com/yanqian/shiji-energy/internal/domain/profile"
)

var sexagenaryStems = []bazi.Stem{"甲", "乙", "丙", "丁", "戊", "己", "庚", "辛", "壬", "癸"}
var sexagenaryBranches = []bazi.Branch{"子", "丑", "寅", "卯", "辰", "巳", "午", "未", "申", "酉", "戌", "亥"}

func TestEnergyLevelBands(t *testing.T) {
	require.Equal(t, "大吉", EnergyLevel(85))
	require.Equal(t, "吉", EnergyLevel(70))
	require.Equal(t, "吉", EnergyLevel(84))
	require.Equal(t, "平", EnergyLevel(45))
	require.Equal(t, "凶", EnergyLevel(25))
	require.Equal(t, "大凶", EnergyLevel(24))
	require.Equal(t, "大凶", EnergyLevel(0))
}

func TestScoreHourV2StaysInRange(t *testing.T) {
	chart := testChart()
	at := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)

	for _, ds := range sexagenaryStems {
		for _, db := range sexagenaryBranches {
			for _, hb := range sexagenaryBranches {
				day := bazi.Pillar{Stem: ds, Branch: db}
				hour := bazi.Pillar{Stem: "丙", Branch: hb}
				result := ScoreHourV2(chart, day, hour, nil, 0, at)
				require.GreaterOrEqual(t, result.Score, 20)
				require.LessOrEqual(t, result.Score, 95)
				require.Equal(t, EnergyLevel(result.Score), result.Level)
			}
		}
	}
}

func TestScoreHourV2Deterministic(t *testing.T) {
	chart := testChart()
	day := bazi.Pillar{Stem: "庚", Branch: "午"}
	hour := bazi.Pillar{Stem: "壬", Branch: "丑"}
	at := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)

	first := ScoreHourV2(chart, day, hour, nil, 0, at)
	second := ScoreHourV2(chart, day, hour, nil, 0, at)
	require.Equal(t, first, second)
}

func TestScoreHourV2BreakdownSumsToScore(t *testing.T) {
	chart := testChart()
	day := bazi.Pillar{Stem: "壬", Branch: "辰"}
	hour := bazi.Pillar{Stem: "癸", Branch: "丑"}
	at := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)

	result := ScoreHourV2(chart, day, hour, nil, 0, at)
	b := result.Breakdown
	raw := b.Base + b.DayPillar + b.HourPillar + b.Stars + b.Combos
	require.Equal(t, clampInt(raw, minScoreV2, maxScoreV2), result.Score)
}

func TestScoreHourV2PersonalRuleRaisesScore(t *testing.T) {
	chart := testChart()
	day := bazi.Pillar{Stem: "戊", Branch: "辰"}
	hour := bazi.Pillar{Stem: "戊", Branch: "申"}
	at := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)

	rules := []profile.PersonalRule{{
		Type:    profile.RulePreference,
		Context: profile.ContextAlways,
		Impact:  10,
		Count:   2,
	}}

	plain := ScoreHourV2(chart, day, hour, nil, 0, at)
	boosted := ScoreHourV2(chart, day, hour, rules, 30, at)
	require.Equal(t, plain.Score+6, boosted.Score)
	require.Equal(t, 6.0, boosted.Breakdown.Personal)
}

func TestScoreHourLegacyFavorableElements(t *testing.T) {
	chart := testChart()
	fav := bazi.FavorabilityProfile{
		Favorable:   []bazi.Element{bazi.Water, bazi.Wood},
		Unfavorable: []bazi.Element{bazi.Metal, bazi.Earth},
	}

	// 壬子 is water through and through: favorable stem (+20), stem
	// generates the wood day master (+10), favorable branch (+15). The 子
	// hour clashes the natal year branch 午, costing the flat -15.
	result := ScoreHourLegacy(chart, fav, bazi.Pillar{Stem: "壬", Branch: "子"})
	require.Equal(t, 80, result.Score)
	require.Len(t, result.Clashes, 1)

	// 庚申 is unfavorable metal on both halves, the stem restrains the day
	// master, and the 申 hour sits on the 午 year's 孤辰 position: the total
	// falls through the floor and clamps at 0.
	worst := ScoreHourLegacy(chart, fav, bazi.Pillar{Stem: "庚", Branch: "申"})
	require.Equal(t, 0, worst.Score)
	require.Contains(t, clashNamesOf(worst.Clashes), "孤辰")
	require.Contains(t, starNamesOf(worst.Stars), "驿马")
}

func TestScoreHourLegacyClampsToHundred(t *testing.T) {
	chart := testChart()
	fav := bazi.FavorabilityProfile{Favorable: []bazi.Element{bazi.Water, bazi.Earth}}

	// 癸丑: favorable stem (+20), stem generates day master (+10),
	// favorable branch (+15), Nobleman at 丑 (+10): 105 clamps to 100.
	result := ScoreHourLegacy(chart, fav, bazi.Pillar{Stem: "癸", Branch: "丑"})
	require.Equal(t, 100, result.Score)
}

func TestScoreHourDispatch(t *testing.T) {
	chart := testChart()
	fav := bazi.FavorabilityProfile{Favorable: []bazi.Element{bazi.Water}}
	day := bazi.Pillar{Stem: "戊", Branch: "辰"}
	hour := bazi.Pillar{Stem: "壬", Branch: "子"}
	at := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)

	v2 := ScoreHour(true, chart, fav, day, hour, nil, 0, at)
	legacy := ScoreHour(false, chart, fav, day, hour, nil, 0, at)
	require.Equal(t, ScoreHourV2(chart, day, hour, nil, 0, at), v2)
	require.Equal(t, ScoreHourLegacy(chart, fav, hour), legacy)
}

func TestScoreHourLegacyAppliesPersonalRules(t *testing.T) {
	chart := testChart()
	fav := bazi.FavorabilityProfile{Favorable: []bazi.Element{bazi.Water}}
	day := bazi.Pillar{Stem: "戊", Branch: "辰"}
	hour := bazi.Pillar{Stem: "壬", Branch: "子"}
	at := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)

	rules := []profile.PersonalRule{{
		Type:    profile.RulePreference,
		Context: profile.ContextAlways,
		Impact:  10,
		Count:   2,
	}}

	plain := ScoreHour(false, chart, fav, day, hour, nil, 0, at)
	boosted := ScoreHour(false, chart, fav, day, hour, rules, 30, at)
	require.Equal(t, plain.Score+6, boosted.Score)
	require.Equal(t, 6.0, boosted.Breakdown.Personal)
	require.Equal(t, EnergyLevel(boosted.Score), boosted.Level)
}

func starNamesOf(stars []bazi.Star) []string {
	names := make([]string, 0, len(stars))
	for _, s := range stars {
		names = append(names, s.Name)
	}
	return names
}

func clashNamesOf(clashes []bazi.Clash) []string {
	names := make([]string, 0, len(clashes))
	for _, c := range clashes {
		names = append(names, c.Name)
	}
	return names
}
