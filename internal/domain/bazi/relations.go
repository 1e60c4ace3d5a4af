package bazi

// Relation lookups over the static tables. Every function is total: unknown
// stems, branches or elements report "no relation" rather than failing.

// StemElement returns the element of a heavenly stem.
func StemElement(s Stem) (Element, bool) {
	e, ok := stemElements[s]
	return e, ok
}

// BranchElement returns the element of an earthly branch.
func BranchElement(b Branch) (Element, bool) {
	e, ok := branchElements[b]
	return e, ok
}

// Generates reports whether element a feeds element b in the generation cycle.
func Generates(a, b Element) bool {
	next, ok := elementGenerates[a]
	return ok && next == b
}

// Restrains reports whether element a restrains element b.
func Restrains(a, b Element) bool {
	target, ok := elementRestricts[a]
	return ok && target == b
}

// GeneratedBy returns the element that generates e.
func GeneratedBy(e Element) (Element, bool) {
	for src, dst := range elementGenerates {
		if dst == e {
			return src, true
		}
	}
	return "", false
}

// RestrainedBy returns the element that restrains e.
func RestrainedBy(e Element) (Element, bool) {
	for src, dst := range elementRestricts {
		if dst == e {
			return src, true
		}
	}
	return "", false
}

// GenerateTarget returns the element e generates.
func GenerateTarget(e Element) (Element, bool) {
	dst, ok := elementGenerates[e]
	return dst, ok
}

// RestrainTarget returns the element e restrains.
func RestrainTarget(e Element) (Element, bool) {
	dst, ok := elementRestricts[e]
	return dst, ok
}

// SixCombine reports whether two branches form a six-combination (六合) pair.
func SixCombine(a, b Branch) bool {
	partner, ok := branchSixCombine[a]
	return ok && partner == b
}

// SixClash reports whether two branches form a six-clash (六冲) pair.
func SixClash(a, b Branch) bool {
	opponent, ok := branchSixClash[a]
	return ok && opponent == b
}

// ClashOpposite returns the branch clashing with b.
func ClashOpposite(b Branch) (Branch, bool) {
	opponent, ok := branchSixClash[b]
	return opponent, ok
}

// ThreeHarmony reports whether the supplied branches contain a complete 三合
// triad. The triad fires only when all three members are present.
func ThreeHarmony(branches []Branch) bool {
	return containsTriad(threeHarmonyGroups, branches)
}

// ThreeUnion reports whether the supplied branches contain a complete 三会
// triad.
func ThreeUnion(branches []Branch) bool {
	return containsTriad(threeUnionGroups, branches)
}

func containsTriad(groups [][3]Branch, branches []Branch) bool {
	present := make(map[Branch]struct{}, len(branches))
	for _, b := range branches {
		present[b] = struct{}{}
	}
	for _, group := range groups {
		complete := true
		for _, member := range group {
			if _, ok := present[member]; !ok {
				complete = false
				break
			}
		}
		if complete {
			return true
		}
	}
	return false
}

// NoblemanBranches returns the 天乙贵人 positions for a stem.
func NoblemanBranches(s Stem) []Branch {
	return tianYiMap[s]
}

// TaiJiBranches returns the 太极贵人 positions for a stem.
func TaiJiBranches(s Stem) []Branch {
	return taiJiMap[s]
}

// ScholarBranch returns the 文昌 position for a day stem.
func ScholarBranch(s Stem) (Branch, bool) {
	b, ok := wenChangMap[s]
	return b, ok
}

// RomanceBranch returns the 桃花 position for a day or year branch.
func RomanceBranch(b Branch) (Branch, bool) {
	pos, ok := taoHuaMap[b]
	return pos, ok
}

// TravelBranch returns the 驿马 position for a day or year branch.
func TravelBranch(b Branch) (Branch, bool) {
	pos, ok := yiMaMap[b]
	return pos, ok
}
