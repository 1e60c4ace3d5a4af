package bazi

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func sampleChart() NatalChart {
	return NatalChart{
		Year:      Pillar{Stem: "戊", Branch: "午"},
		Month:     Pillar{Stem: "辛", Branch: "巳"},
		Day:       Pillar{Stem: "甲", Branch: "子"},
		Hour:      Pillar{Stem: "丙", Branch: "寅"},
		DayMaster: "甲",
	}
}

func TestComputeElementBalance(t *testing.T) {
	balance := ComputeElementBalance(sampleChart())

	// Stems weigh 3, branches 2, day master another 5.
	require.Equal(t, 10, balance[Wood])
	require.Equal(t, 7, balance[Fire])
	require.Equal(t, 3, balance[Earth])
	require.Equal(t, 3, balance[Metal])
	require.Equal(t, 2, balance[Water])
}

func TestComputeElementBalanceZeroChart(t *testing.T) {
	balance := ComputeElementBalance(NatalChart{})
	for _, e := range Elements {
		require.Zero(t, balance[e])
	}
}

func TestFavorabilityStrongDayMaster(t *testing.T) {
	balance := ComputeElementBalance(sampleChart())
	fav := ComputeFavorability(balance, "甲")

	// Wood 10 exceeds 5*1.3, so the drain and the restrainer are favored.
	require.Equal(t, []Element{Fire, Metal}, fav.Favorable)
	require.Equal(t, []Element{Wood, Water}, fav.Unfavorable)
	require.Equal(t, Fire, fav.PrimaryFavorable)
	require.Equal(t, Wood, fav.PrimaryAvoid)
}

func TestFavorabilityWeakDayMaster(t *testing.T) {
	balance := ElementBalance{Wood: 2, Fire: 9, Earth: 5, Metal: 5, Water: 4}
	fav := ComputeFavorability(balance, "甲")

	require.Equal(t, []Element{Water, Wood}, fav.Favorable)
	require.Equal(t, []Element{Earth, Metal}, fav.Unfavorable)
}

func TestFavorabilitySetsStayDisjoint(t *testing.T) {
	balances := []ElementBalance{
		{Wood: 12, Fire: 4, Earth: 3, Metal: 3, Water: 3},
		{Wood: 2, Fire: 9, Earth: 5, Metal: 5, Water: 4},
		{Wood: 5, Fire: 5, Earth: 5, Metal: 5, Water: 5},
	}
	stems := []Stem{"甲", "乙", "丙", "丁", "戊", "己", "庚", "辛", "壬", "癸"}

	for _, balance := range balances {
		for _, stem := range stems {
			fav := ComputeFavorability(balance, stem)
			for _, e := range fav.Favorable {
				require.False(t, fav.Avoids(e), "stem %s element %s in both sets", stem, e)
			}
		}
	}
}

func TestFavorabilityUnknownDayMaster(t *testing.T) {
	fav := ComputeFavorability(ElementBalance{Wood: 5}, "?")
	require.Empty(t, fav.Favorable)
	require.Empty(t, fav.Unfavorable)
}
