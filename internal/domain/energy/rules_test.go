package energy

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/shiji-energy/internal/domain/bazi"
)

// Wood day master born on a 甲子 day in a 午 year.
func testChart() bazi.NatalChart {
	return bazi.NatalChart{
		Year:      bazi.Pillar{Stem: "戊", Branch: "午"},
		Month:     bazi.Pillar{Stem: "辛", Branch: "巳"},
		Day:       bazi.Pillar{Stem: "甲", Branch: "子"},
		Hour:      bazi.Pillar{Stem: "丙", Branch: "寅"},
		DayMaster: "甲",
	}
}

func TestDayPillarImpactGeneratingStem(t *testing.T) {
	chart := testChart()

	// 壬 is water, feeding the wood day master; 辰 is neutral to 子 and 午.
	impact := DayPillarImpact(chart, bazi.Pillar{Stem: "壬", Branch: "辰"})
	require.Equal(t, 15, impact.Delta)
	require.Equal(t, []string{"得天时生助，能量源源不断"}, impact.Reasons)
}

func TestDayPillarImpactClashingBranch(t *testing.T) {
	chart := testChart()

	// 庚 metal restrains the wood day master; 午 clashes the natal 子.
	impact := DayPillarImpact(chart, bazi.Pillar{Stem: "庚", Branch: "午"})
	require.Equal(t, -18, impact.Delta)
	require.Contains(t, impact.Reasons, "天时稍有克制，需稳扎稳打")
	require.Contains(t, impact.Reasons, "地利相冲，变动较多")
}

func TestDayPillarImpactCombiningBranches(t *testing.T) {
	chart := testChart()

	// 甲 matches the day master; 丑 combines with the natal 子.
	impact := DayPillarImpact(chart, bazi.Pillar{Stem: "甲", Branch: "丑"})
	require.Equal(t, 22, impact.Delta)
	require.Contains(t, impact.Reasons, "得天时助力，气场稳固")
	require.Contains(t, impact.Reasons, "地利相合，行事顺畅")
}

func TestHourPillarImpactYearBreakIsClashOnly(t *testing.T) {
	chart := testChart()

	day := bazi.Pillar{Stem: "戊", Branch: "辰"}
	// 子 clashes only the natal year branch 午; matching the natal day
	// branch exactly is neither a combine nor a clash.
	impact := HourPillarImpact(chart, day, bazi.Pillar{Stem: "戊", Branch: "子"})
	require.Equal(t, -6, impact.Delta)
	require.Equal(t, []string{"岁破临门，谨言慎行"}, impact.Reasons)
}

func TestHourPillarImpactSupportiveHour(t *testing.T) {
	chart := testChart()

	day := bazi.Pillar{Stem: "戊", Branch: "辰"}
	// 癸 water feeds wood (+12); 丑 combines the natal day branch 子 (+10).
	impact := HourPillarImpact(chart, day, bazi.Pillar{Stem: "癸", Branch: "丑"})
	require.Equal(t, 22, impact.Delta)
	require.Equal(t, []string{"时运生助，效率倍增", "时支六合，人和事顺"}, impact.Reasons)
}

func TestStarImpactNobleman(t *testing.T) {
	chart := testChart()

	// 丑 is a Nobleman position for both the 甲 day master and the 戊 year
	// stem; the star must still appear exactly once.
	impact := StarImpact(chart, bazi.Pillar{Stem: "乙", Branch: "丑"})
	require.Equal(t, 18, impact.Delta)
	require.Len(t, impact.Stars, 1)
	require.Equal(t, "天乙贵人", impact.Stars[0].Name)
	require.Empty(t, impact.Clashes)
	require.Equal(t, []string{"天乙贵人照临，遇事呈祥"}, impact.Reasons)
}

func TestStarImpactScholar(t *testing.T) {
	chart := testChart()

	// 巳 is the Scholar position of 甲. 巳 also clashes nothing in the chart
	// (亥 is absent).
	impact := StarImpact(chart, bazi.Pillar{Stem: "己", Branch: "巳"})
	require.Contains(t, impact.Reasons, "文昌星临，思如泉涌")
	require.Len(t, impact.Stars, 1)
	require.Equal(t, "文昌贵人", impact.Stars[0].Name)
}

func TestStarImpactDayBreak(t *testing.T) {
	chart := testChart()

	// 午 clashes the natal day branch 子; no star sits at 午 for this chart.
	impact := StarImpact(chart, bazi.Pillar{Stem: "庚", Branch: "午"})
	require.Len(t, impact.Clashes, 1)
	require.Equal(t, "日破", impact.Clashes[0].Name)
	require.Contains(t, impact.Reasons, "日破大耗，诸事宜静")
}

func TestStarImpactRomanceAndTravel(t *testing.T) {
	chart := testChart()

	// Day branch 子 puts the Romance star at 酉 and the Travel star at 寅.
	romance := StarImpact(chart, bazi.Pillar{Stem: "丁", Branch: "酉"})
	require.Contains(t, romance.Reasons, "桃花星动，人缘极佳")

	travel := StarImpact(chart, bazi.Pillar{Stem: "丙", Branch: "寅"})
	require.Contains(t, travel.Reasons, "驿马星动，利于出行")
}

func TestSpecialComboDoubleCombination(t *testing.T) {
	chart := testChart()

	// Both the candidate day branch and hour branch combine the natal 子.
	day := bazi.Pillar{Stem: "乙", Branch: "丑"}
	hour := bazi.Pillar{Stem: "丁", Branch: "丑"}
	impact := SpecialComboImpact(chart, day, hour)
	require.Equal(t, 10, impact.Delta)
	require.Equal(t, []string{"日柱与时辰双合命主日支，大吉"}, impact.Reasons)
}

func TestSpecialComboDoubleClash(t *testing.T) {
	chart := testChart()

	day := bazi.Pillar{Stem: "庚", Branch: "午"}
	hour := bazi.Pillar{Stem: "壬", Branch: "午"}
	impact := SpecialComboImpact(chart, day, hour)
	require.Equal(t, -12, impact.Delta)
	require.Equal(t, []string{"日柱与时辰双冲命主日支，大凶"}, impact.Reasons)
}

func TestSpecialComboThreeHarmony(t *testing.T) {
	chart := testChart()
	chart.Month.Branch = "午"

	// 寅午戌 completes the fire harmony across day, month and hour.
	day := bazi.Pillar{Stem: "丙", Branch: "寅"}
	hour := bazi.Pillar{Stem: "戊", Branch: "戌"}
	impact := SpecialComboImpact(chart, day, hour)
	require.Contains(t, impact.Reasons, "地支三合局成，能量强旺")
}

func TestSpecialComboThreeUnion(t *testing.T) {
	chart := testChart()
	chart.Month.Branch = "午"

	// 巳午未 completes the fire union.
	day := bazi.Pillar{Stem: "丁", Branch: "巳"}
	hour := bazi.Pillar{Stem: "己", Branch: "未"}
	impact := SpecialComboImpact(chart, day, hour)
	require.Contains(t, impact.Reasons, "地支三会局成，气势宏大")
}

func TestSpecialComboSixCombineDayHour(t *testing.T) {
	chart := testChart()

	day := bazi.Pillar{Stem: "丙", Branch: "寅"}
	hour := bazi.Pillar{Stem: "辛", Branch: "亥"}
	impact := SpecialComboImpact(chart, day, hour)
	require.Contains(t, impact.Reasons, "日时双合")
}
