package energy

import (
	"github.com/yanqian/shiji-energy/internal/domain/bazi"
)

// The four V2 rule modules. Each is a pure function of the natal chart and
// the candidate pillars, returning a signed delta plus one reason string per
// triggered rule in the fixed evaluation order. Checks inside a module are
// independent; a pillar can trigger several at once.

// DayPillarImpact compares the candidate day pillar against the chart.
func DayPillarImpact(chart bazi.NatalChart, day bazi.Pillar) Impact {
	var out Impact

	masterElement, okMaster := bazi.StemElement(chart.DayMaster)
	dayElement, okDay := bazi.StemElement(day.Stem)

	if okMaster && okDay {
		switch {
		case bazi.Generates(dayElement, masterElement):
			out.add(15, "得天时生助，能量源源不断")
		case dayElement == masterElement:
			out.add(10, "得天时助力，气场稳固")
		case bazi.Restrains(dayElement, masterElement):
			out.add(-8, "天时稍有克制，需稳扎稳打")
		case bazi.Generates(masterElement, dayElement):
			// Draining: the day master feeds the day pillar.
			out.add(-5, "天时消耗精力，注意休息")
		}
	}

	if bazi.SixCombine(chart.Day.Branch, day.Branch) {
		out.add(12, "地利相合，行事顺畅")
	} else if bazi.SixClash(chart.Day.Branch, day.Branch) {
		out.add(-10, "地利相冲，变动较多")
	}

	if bazi.SixCombine(chart.Year.Branch, day.Branch) {
		out.add(8, "年支相合，根基稳固")
	} else if bazi.SixClash(chart.Year.Branch, day.Branch) {
		out.add(-6, "年支相冲，长辈或外界压力")
	}

	return out
}

// HourPillarImpact compares the candidate hour pillar against the chart and
// the candidate day pillar.
func HourPillarImpact(chart bazi.NatalChart, day, hour bazi.Pillar) Impact {
	var out Impact

	masterElement, okMaster := bazi.StemElement(chart.DayMaster)
	hourElement, okHour := bazi.StemElement(hour.Stem)

	if okMaster && okHour {
		switch {
		case bazi.Generates(hourElement, masterElement):
			out.add(12, "时运生助，效率倍增")
		case hourElement == masterElement:
			out.add(8, "时运相辅，得心应手")
		case bazi.Restrains(hourElement, masterElement):
			out.add(-6, "时运受阻，宜守不宜攻")
		}
	}

	if bazi.SixCombine(chart.Day.Branch, hour.Branch) {
		out.add(10, "时支六合，人和事顺")
	} else if bazi.SixClash(chart.Day.Branch, hour.Branch) {
		out.add(-8, "时支相冲，多生变数")
	}

	if bazi.SixCombine(day.Branch, hour.Branch) {
		out.add(8, "日时相合，气场和谐")
	} else if bazi.SixClash(day.Branch, hour.Branch) {
		out.add(-6, "日时相冲，易有波折")
	}

	// Year branch is checked for the clash only; no bonus at this level.
	if bazi.SixClash(chart.Year.Branch, hour.Branch) {
		out.add(-6, "岁破临门，谨言慎行")
	}

	return out
}

// StarImpact scores the named stars and clash positions an hour branch
// lands on. Each star contributes once even when the day stem and year stem
// both point at the same branch.
func StarImpact(chart bazi.NatalChart, hour bazi.Pillar) StarsImpact {
	var out StarsImpact

	branch := hour.Branch

	if branchAmong(branch, bazi.NoblemanBranches(chart.DayMaster)) ||
		branchAmong(branch, bazi.NoblemanBranches(chart.Year.Stem)) {
		out.add(18, "天乙贵人照临，遇事呈祥")
		out.Stars = append(out.Stars, bazi.Star{Name: "天乙贵人", Desc: "遇事呈祥，有贵人相助"})
	}

	if pos, ok := bazi.ScholarBranch(chart.DayMaster); ok && pos == branch {
		out.add(10, "文昌星临，思如泉涌")
		out.Stars = append(out.Stars, bazi.Star{Name: "文昌贵人", Desc: "利于学习、考试、写作"})
	}

	if starAtEither(branch, chart.Day.Branch, chart.Year.Branch, bazi.RomanceBranch) {
		out.add(5, "桃花星动，人缘极佳")
		out.Stars = append(out.Stars, bazi.Star{Name: "桃花", Desc: "人缘好，利社交、恋爱"})
	}

	if starAtEither(branch, chart.Day.Branch, chart.Year.Branch, bazi.TravelBranch) {
		out.add(3, "驿马星动，利于出行")
		out.Stars = append(out.Stars, bazi.Star{Name: "驿马", Desc: "利于出行、变动"})
	}

	if bazi.SixClash(chart.Day.Branch, branch) {
		out.add(-10, "日破大耗，诸事宜静")
		out.Clashes = append(out.Clashes, bazi.Clash{Name: "日破", Desc: "运势动荡，不宜大事"})
	}
	if bazi.SixClash(chart.Year.Branch, branch) {
		out.add(-8, "岁破临门，谨言慎行")
		out.Clashes = append(out.Clashes, bazi.Clash{Name: "岁破", Desc: "长辈或外界压力大"})
	}

	return out
}

// SpecialComboImpact detects multi-pillar configurations. The five checks
// are independent and additive.
func SpecialComboImpact(chart bazi.NatalChart, day, hour bazi.Pillar) Impact {
	var out Impact

	natalDay := chart.Day.Branch

	if bazi.SixCombine(natalDay, day.Branch) && bazi.SixCombine(natalDay, hour.Branch) {
		out.add(10, "日柱与时辰双合命主日支，大吉")
	}
	if bazi.SixClash(natalDay, day.Branch) && bazi.SixClash(natalDay, hour.Branch) {
		out.add(-12, "日柱与时辰双冲命主日支，大凶")
	}
	if bazi.SixCombine(day.Branch, hour.Branch) {
		out.add(5, "日时双合")
	}

	// Triads are formed over the candidate day/hour branches and the natal
	// month branch only; the year branch does not participate.
	triad := []bazi.Branch{day.Branch, hour.Branch, chart.Month.Branch}
	if bazi.ThreeHarmony(triad) {
		out.add(8, "地支三合局成，能量强旺")
	}
	if bazi.ThreeUnion(triad) {
		out.add(8, "地支三会局成，气势宏大")
	}

	return out
}

func (i *Impact) add(delta int, reason string) {
	i.Delta += delta
	i.Reasons = append(i.Reasons, reason)
}

func branchAmong(b bazi.Branch, set []bazi.Branch) bool {
	for _, candidate := range set {
		if candidate == b {
			return true
		}
	}
	return false
}

func starAtEither(hour, dayBranch, yearBranch bazi.Branch, lookup func(bazi.Branch) (bazi.Branch, bool)) bool {
	if pos, ok := lookup(dayBranch); ok && pos == hour {
		return true
	}
	if pos, ok := lookup(yearBranch); ok && pos == hour {
		return true
	}
	return false
}
