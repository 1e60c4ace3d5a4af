package energy

import (
	"fmt"

	"github.com/yanqian/shiji-energy/internal/domain/bazi"
)

// dominantElement picks the element an hour "runs on": the stem element by
// default, promoted to whichever of stem/branch the chart actually favours.
func dominantElement(fav bazi.FavorabilityProfile, hour bazi.Pillar) bazi.Element {
	stemElem, _ := bazi.StemElement(hour.Stem)
	if fav.Favors(stemElem) {
		return stemElem
	}
	if branchElem, ok := bazi.BranchElement(hour.Branch); ok && fav.Favors(branchElem) {
		return branchElem
	}
	return stemElem
}

// hourNarrative renders the level label and one-line brief for an hour. A
// clash overrides every score band.
func hourNarrative(pillar bazi.Pillar, score int, clashes []bazi.Clash, dominant bazi.Element) (label, brief string) {
	full := pillar.Full()
	if len(clashes) > 0 {
		first := clashes[0]
		return "凶", fmt.Sprintf("时辰%s，犯%s (%s)，宜静守。", full, first.Name, first.Desc)
	}
	switch {
	case score >= 80:
		return "极佳时机", fmt.Sprintf("时辰%s，%s旺，与您的命局非常相合，适合处理重要事务。", full, dominant)
	case score >= 70:
		return "吉时", fmt.Sprintf("时辰%s，%s助，能量充沛，适合行动。", full, dominant)
	case score >= 50:
		return "平稳", fmt.Sprintf("时辰%s，能量平和，可处理日常事务。", full)
	case score >= 30:
		return "不宜", fmt.Sprintf("时辰%s，%s不利，宜谨慎行事。", full, dominant)
	default:
		return "忌", fmt.Sprintf("时辰%s，能量不佳，建议休息调整。", full)
	}
}

// BuildHourRecord assembles the full display slot for one scored hour. The
// star and clash tags come from the full catalogue, not the scoring subset,
// so markers like 羊刃 or 红鸾 show up even when they carry no score weight.
func BuildHourRecord(chart bazi.NatalChart, fav bazi.FavorabilityProfile, hour int, pillar bazi.Pillar, result ScoreResult) HourRecord {
	dominant := dominantElement(fav, pillar)
	stars, clashes := bazi.CalculateStars(chart, pillar)
	label, brief := hourNarrative(pillar, result.Score, clashes, dominant)

	starTags := make([]string, 0, len(stars))
	for _, s := range stars {
		starTags = append(starTags, s.Name)
	}
	clashTags := make([]string, 0, len(clashes))
	for _, c := range clashes {
		clashTags = append(clashTags, c.Name)
	}

	recommended := ActivitiesForElement(dominant)
	if len(recommended) > 3 {
		recommended = recommended[:3]
	}
	avoid := AvoidActivitiesForElement(dominant)
	if len(avoid) > 2 {
		avoid = avoid[:2]
	}

	return HourRecord{
		Hour:               hour,
		RangeLabel:         HourRangeLabel(hour),
		Score:              result.Score,
		LevelLabel:         label,
		Brief:              brief,
		HourPillar:         pillar.Full(),
		Element:            string(dominant),
		RecommendedActions: recommended,
		AvoidActions:       avoid,
		Stars:              stars,
		Clashes:            clashes,
		StarTags:           starTags,
		ClashTags:          clashTags,
		ReasonTags:         ReasonTags(stars, clashes, result.Score),
	}
}

// BestHours lists the hours scoring at least 70, strongest first, capped at
// three.
func BestHours(records []HourRecord) []HourRecord {
	return filterSort(records, func(r HourRecord) bool { return r.Score >= 70 }, false, 3)
}

// WorstHours lists the hours scoring at most 50, weakest first, capped at
// three.
func WorstHours(records []HourRecord) []HourRecord {
	return filterSort(records, func(r HourRecord) bool { return r.Score <= 50 }, true, 3)
}

func filterSort(records []HourRecord, keep func(HourRecord) bool, ascending bool, limit int) []HourRecord {
	out := make([]HourRecord, 0, len(records))
	for _, r := range records {
		if keep(r) {
			out = append(out, r)
		}
	}
	sortRecordsByScore(out, ascending)
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
