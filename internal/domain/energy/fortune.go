package energy

import (
	"math"
	"sort"
	"strings"
)

var aspectKeywords = struct {
	career, wealth, love, health []string
}{
	career: []string{"工作", "决策", "会议", "谈判"},
	wealth: []string{"投资", "理财", "签约"},
	love:   []string{"社交", "聚会", "情感"},
	health: []string{"运动", "健身", "休息"},
}

// BuildDailyFortune folds the 24 hour records of one day into the headline
// view: weighted overall score, four life aspects, top/caution hours and the
// derived pros, cons and tags.
func BuildDailyFortune(date, lunarText string, records []HourRecord) DailyFortune {
	overall := overallScore(records)

	level, levelText, quote := "ok", "平", "按计划推进更顺，低谷时段别做硬决策。"
	if overall >= 75 {
		level, levelText, quote = "good", "顺", "今天适合把关键事项定下来，优先做最重要的一件。"
	} else if overall < 55 {
		level, levelText, quote = "caution", "谨慎", "今天更适合收尾与整理，重要决定放慢半拍。"
	}

	top := topHours(records)
	caution := cautionHours(records)

	pros := collectActions(records, top, true)
	cons := collectActions(records, caution, false)

	tags := dailyTags(top, caution, level)

	return DailyFortune{
		Date:         date,
		LunarText:    lunarText,
		Overall:      OverallScore{Score: overall, Level: level, Text: levelText},
		Career:       aspect(records, overall, aspectKeywords.career),
		Wealth:       aspect(records, overall, aspectKeywords.wealth),
		Love:         aspect(records, overall, aspectKeywords.love),
		Health:       aspect(records, overall, aspectKeywords.health),
		Quote:        quote,
		Tags:         tags,
		Pros:         pros,
		Cons:         cons,
		TopHours:     top,
		CautionHours: caution,
	}
}

// overallScore is the weighted mean of the day, waking hours counting more,
// nudged by how stable the curve is.
func overallScore(records []HourRecord) int {
	if len(records) == 0 {
		return 0
	}

	var weightedSum, weightSum, plainSum float64
	for _, r := range records {
		weight := 0.8
		if r.Hour >= 8 && r.Hour <= 22 {
			weight = 1.2
		}
		weightedSum += float64(r.Score) * weight
		weightSum += weight
		plainSum += float64(r.Score)
	}
	score := int(math.Round(weightedSum / weightSum))

	mean := plainSum / float64(len(records))
	var variance float64
	for _, r := range records {
		variance += math.Pow(float64(r.Score)-mean, 2)
	}
	stdDev := math.Sqrt(variance / float64(len(records)))
	if stdDev < 10 {
		score += 5
	} else if stdDev > 20 {
		score -= 5
	}

	return clampInt(score, 0, 100)
}

// aspect averages the best five hours whose recommendations match the
// keyword set, falling back to the overall score when nothing matches.
func aspect(records []HourRecord, fallback int, keywords []string) AspectScore {
	var scores []int
	for _, r := range records {
		if actionsMatch(r.RecommendedActions, keywords) {
			scores = append(scores, r.Score)
		}
	}
	if len(scores) == 0 {
		return AspectScore{Score: fallback, Text: AspectText(fallback)}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(scores)))
	if len(scores) > 5 {
		scores = scores[:5]
	}
	sum := 0
	for _, s := range scores {
		sum += s
	}
	avg := int(math.Round(float64(sum) / float64(len(scores))))
	return AspectScore{Score: avg, Text: AspectText(avg)}
}

func actionsMatch(actions, keywords []string) bool {
	for _, act := range actions {
		for _, kw := range keywords {
			if strings.Contains(act, kw) {
				return true
			}
		}
	}
	return false
}

// AspectText grades an aspect score into its display phrase.
func AspectText(score int) string {
	switch {
	case score >= 80:
		return "势不可挡"
	case score >= 70:
		return "推进顺利"
	case score >= 50:
		return "平稳"
	case score >= 40:
		return "需费力"
	default:
		return "宜保守"
	}
}

// topHours ranks the day's three strongest hours, boosting daytime slots so
// a marginally higher midnight score does not outrank a working hour.
func topHours(records []HourRecord) []RankedHour {
	ranked := make([]HourRecord, len(records))
	copy(ranked, records)
	sort.SliceStable(ranked, func(i, j int) bool {
		return sortBoost(ranked[i]) > sortBoost(ranked[j])
	})
	return rankedView(ranked, 3)
}

func sortBoost(r HourRecord) int {
	if r.Hour >= 9 && r.Hour <= 21 {
		return r.Score + 10
	}
	return r.Score
}

// cautionHours are the two weakest hours by raw score.
func cautionHours(records []HourRecord) []RankedHour {
	ranked := make([]HourRecord, len(records))
	copy(ranked, records)
	sortRecordsByScore(ranked, true)
	return rankedView(ranked, 2)
}

func rankedView(records []HourRecord, limit int) []RankedHour {
	if len(records) > limit {
		records = records[:limit]
	}
	out := make([]RankedHour, 0, len(records))
	for _, r := range records {
		out = append(out, RankedHour{
			Hour:       r.Hour,
			Score:      r.Score,
			RangeLabel: r.RangeLabel,
			ReasonTags: r.ReasonTags,
		})
	}
	return out
}

func sortRecordsByScore(records []HourRecord, ascending bool) {
	sort.SliceStable(records, func(i, j int) bool {
		if ascending {
			return records[i].Score < records[j].Score
		}
		return records[i].Score > records[j].Score
	})
}

// collectActions gathers the recommended actions of the top hours (prefixed
// 宜) or the taboos of the caution hours (prefixed 忌), deduplicated.
func collectActions(records []HourRecord, ranked []RankedHour, recommended bool) []string {
	byHour := make(map[int]HourRecord, len(records))
	for _, r := range records {
		byHour[r.Hour] = r
	}
	prefix := "宜"
	if !recommended {
		prefix = "忌"
	}
	var raw []string
	for _, rh := range ranked {
		r, ok := byHour[rh.Hour]
		if !ok {
			continue
		}
		if recommended {
			raw = append(raw, r.RecommendedActions...)
		} else {
			raw = append(raw, r.AvoidActions...)
		}
	}
	deduped := dedupeStrings(raw, 3)
	out := make([]string, 0, len(deduped))
	for _, a := range deduped {
		out = append(out, prefix+a)
	}
	return out
}

func dailyTags(top, caution []RankedHour, level string) []string {
	var tags []string
	if rankedHasTag(top, "适合求助") {
		tags = append(tags, "贵人运")
	}
	if rankedHasTag(top, "适合脑力") {
		tags = append(tags, "利脑力")
	}
	if rankedHasTag(caution, "少做决策") {
		tags = append(tags, "忌冲动")
	}
	if len(tags) == 0 {
		switch level {
		case "good":
			tags = append(tags, "诸事皆宜")
		case "caution":
			tags = append(tags, "宜守成")
		default:
			tags = append(tags, "平稳有序")
		}
	}
	if len(tags) > 3 {
		tags = tags[:3]
	}
	return tags
}

func rankedHasTag(hours []RankedHour, tag string) bool {
	for _, h := range hours {
		for _, t := range h.ReasonTags {
			if t == tag {
				return true
			}
		}
	}
	return false
}
