package bazi

// ComputeElementBalance tallies the five-element strength of a chart. Stems
// weigh 3, branches 2, and the day master stem adds a further 5 on top of its
// pillar contribution.
func ComputeElementBalance(chart NatalChart) ElementBalance {
	balance := ElementBalance{Wood: 0, Fire: 0, Earth: 0, Metal: 0, Water: 0}
	if chart.IsZero() {
		return balance
	}

	for _, pillar := range []Pillar{chart.Year, chart.Month, chart.Day, chart.Hour} {
		if e, ok := StemElement(pillar.Stem); ok {
			balance[e] += 3
		}
		if e, ok := BranchElement(pillar.Branch); ok {
			balance[e] += 2
		}
	}

	if e, ok := StemElement(chart.Day.Stem); ok {
		balance[e] += 5
	}
	return balance
}

// strengthFactor marks a day master as "strong" when its element exceeds the
// five-element average by this ratio.
const strengthFactor = 1.3

// ComputeFavorability derives the favorable/unfavorable element sets from a
// balance and the day master stem. A strong day master favors the elements
// that drain or restrain it; a weak one favors reinforcement. Both sets are
// deduplicated and stay disjoint.
func ComputeFavorability(balance ElementBalance, dayMaster Stem) FavorabilityProfile {
	dayElement, ok := StemElement(dayMaster)
	if !ok || len(balance) == 0 {
		return FavorabilityProfile{}
	}

	total := 0
	for _, e := range Elements {
		total += balance[e]
	}
	average := float64(total) / float64(len(Elements))

	var favorable, unfavorable []Element
	if float64(balance[dayElement]) > average*strengthFactor {
		// Strong: favor the drain (what it generates) and the restrainer.
		if drained, ok := GenerateTarget(dayElement); ok {
			favorable = append(favorable, drained)
		}
		if restrainer, ok := RestrainedBy(dayElement); ok {
			favorable = append(favorable, restrainer)
		}
		unfavorable = append(unfavorable, dayElement)
		if feeder, ok := GeneratedBy(dayElement); ok {
			unfavorable = append(unfavorable, feeder)
		}
	} else {
		// Weak: favor the feeder and its own kind.
		if feeder, ok := GeneratedBy(dayElement); ok {
			favorable = append(favorable, feeder)
		}
		favorable = append(favorable, dayElement)
		if target, ok := RestrainTarget(dayElement); ok {
			unfavorable = append(unfavorable, target)
		}
		if restrainer, ok := RestrainedBy(dayElement); ok {
			unfavorable = append(unfavorable, restrainer)
		}
	}

	favorable = dedupeElements(favorable)
	unfavorable = dedupeElements(unfavorable)

	profile := FavorabilityProfile{Favorable: favorable, Unfavorable: unfavorable}
	if len(favorable) > 0 {
		profile.PrimaryFavorable = favorable[0]
	}
	if len(unfavorable) > 0 {
		profile.PrimaryAvoid = unfavorable[0]
	}
	return profile
}

func dedupeElements(in []Element) []Element {
	out := make([]Element, 0, len(in))
	seen := make(map[Element]struct{}, len(in))
	for _, e := range in {
		if _, ok := seen[e]; ok {
			continue
		}
		seen[e] = struct{}{}
		out = append(out, e)
	}
	return out
}
