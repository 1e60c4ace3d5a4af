package bazi

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCalculateStarsZeroInputs(t *testing.T) {
	stars, clashes := CalculateStars(NatalChart{}, Pillar{Stem: "甲", Branch: "子"})
	require.Nil(t, stars)
	require.Nil(t, clashes)

	stars, clashes = CalculateStars(sampleChart(), Pillar{})
	require.Nil(t, stars)
	require.Nil(t, clashes)
}

func TestNoblemanDeduplicatedAcrossKeys(t *testing.T) {
	// Day stem 甲 and year stem 戊 both point 天乙 at 丑; the star fires once.
	stars, _ := CalculateStars(sampleChart(), Pillar{Stem: "乙", Branch: "丑"})

	count := 0
	for _, s := range stars {
		if s.Name == "天乙贵人" {
			count++
		}
	}
	require.Equal(t, 1, count)
}

func TestDayBreakClash(t *testing.T) {
	// Day branch 子 clashes the 午 hour.
	_, clashes := CalculateStars(sampleChart(), Pillar{Stem: "庚", Branch: "午"})

	names := clashNames(clashes)
	require.Contains(t, names, "日破")
}

func TestYearBreakClash(t *testing.T) {
	// Year branch 午 clashes the 子 hour.
	_, clashes := CalculateStars(sampleChart(), Pillar{Stem: "戊", Branch: "子"})

	names := clashNames(clashes)
	require.Contains(t, names, "岁破")
	require.NotContains(t, names, "日破")
}

func TestBladeAndRomanceAtSameHour(t *testing.T) {
	// 卯 is both the 羊刃 of day stem 甲 and the 桃花 of year branch 午.
	stars, clashes := CalculateStars(sampleChart(), Pillar{Stem: "丁", Branch: "卯"})

	require.Contains(t, starNames(stars), "桃花")
	require.Contains(t, clashNames(clashes), "羊刃")
}

func TestKuiGangPillar(t *testing.T) {
	stars, _ := CalculateStars(sampleChart(), Pillar{Stem: "庚", Branch: "辰"})

	names := starNames(stars)
	require.Contains(t, names, "魁罡")
	// 辰 is also the 金舆 of day stem 甲.
	require.Contains(t, names, "金舆")
}

func TestScholarStar(t *testing.T) {
	stars, _ := CalculateStars(sampleChart(), Pillar{Stem: "己", Branch: "巳"})
	require.Contains(t, starNames(stars), "文昌贵人")
}

func starNames(stars []Star) []string {
	names := make([]string, 0, len(stars))
	for _, s := range stars {
		names = append(names, s.Name)
	}
	return names
}

func clashNames(clashes []Clash) []string {
	names := make([]string, 0, len(clashes))
	for _, c := range clashes {
		names = append(names, c.Name)
	}
	return names
}
