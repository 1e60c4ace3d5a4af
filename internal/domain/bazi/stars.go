package bazi

// CalculateStars evaluates the full star/clash catalogue of an hour pillar
// against a natal chart. Star names are deduplicated even when both the day
// and year keys point at the same branch. Used for display tags and the
// legacy scoring path; the V2 star rule scores only its own subset.
func CalculateStars(chart NatalChart, hour Pillar) ([]Star, []Clash) {
	if chart.IsZero() || hour.IsZero() {
		return nil, nil
	}

	var stars []Star
	var clashes []Clash

	hourBranch := hour.Branch
	dayStem := chart.DayMaster
	dayBranch := chart.Day.Branch
	yearStem := chart.Year.Stem
	yearBranch := chart.Year.Branch

	// Inauspicious markers first: the day-profile brief leads with them.
	if SixClash(dayBranch, hourBranch) {
		clashes = append(clashes, Clash{Name: "日破", Desc: "日支相冲，运势动荡，不宜大事"})
	}
	if SixClash(yearBranch, hourBranch) {
		clashes = append(clashes, Clash{Name: "岁破", Desc: "年支相冲，长辈或外界压力大"})
	}
	if jieShaMap[yearBranch] == hourBranch || jieShaMap[dayBranch] == hourBranch {
		clashes = append(clashes, Clash{Name: "劫煞", Desc: "易破财、生波折，需谨慎行事"})
	}
	if lonely, ok := lonelinessMap[yearBranch]; ok {
		if lonely.gu == hourBranch {
			clashes = append(clashes, Clash{Name: "孤辰", Desc: "孤独感强，不利社交"})
		}
		if lonely.gua == hourBranch {
			clashes = append(clashes, Clash{Name: "寡宿", Desc: "内心孤僻，易离群索居"})
		}
	}
	if yangRenMap[dayStem] == hourBranch {
		clashes = append(clashes, Clash{Name: "羊刃", Desc: "性情刚烈，易冲动或受伤"})
	}

	if branchIn(hourBranch, NoblemanBranches(dayStem)) || branchIn(hourBranch, NoblemanBranches(yearStem)) {
		stars = append(stars, Star{Name: "天乙贵人", Desc: "最强吉星，遇事呈祥，逢凶化吉"})
	}
	if branchIn(hourBranch, TaiJiBranches(dayStem)) || branchIn(hourBranch, TaiJiBranches(yearStem)) {
		stars = append(stars, Star{Name: "太极贵人", Desc: "利于思考、玄学、钻研"})
	}
	if pos, ok := ScholarBranch(dayStem); ok && pos == hourBranch {
		stars = append(stars, Star{Name: "文昌贵人", Desc: "利于学习、考试、写作、策划"})
	}
	if jinYuMap[dayStem] == hourBranch {
		stars = append(stars, Star{Name: "金舆", Desc: "财运佳，出行顺利，得交通之利"})
	}
	if matchEither(hourBranch, yearBranch, dayBranch, RomanceBranch) {
		stars = append(stars, Star{Name: "桃花", Desc: "人缘好，利社交、恋爱，但也易分心"})
	}
	if hongLuan, ok := hongLuanMap[yearBranch]; ok {
		if hourBranch == hongLuan {
			stars = append(stars, Star{Name: "红鸾", Desc: "主婚恋喜庆，异性缘极佳"})
		}
		// 天喜 sits opposite 红鸾.
		if tianXi, ok := ClashOpposite(hongLuan); ok && hourBranch == tianXi {
			stars = append(stars, Star{Name: "天喜", Desc: "主开心之事，消灾解难"})
		}
	}
	if matchEither(hourBranch, yearBranch, dayBranch, TravelBranch) {
		stars = append(stars, Star{Name: "驿马", Desc: "奔波走动，利于出行、出差、变动"})
	}
	if _, ok := kuiGangPillars[hour.Full()]; ok {
		stars = append(stars, Star{Name: "魁罡", Desc: "性格刚烈，掌权，聪敏"})
	}

	return dedupeStars(stars), dedupeClashes(clashes)
}

func branchIn(b Branch, set []Branch) bool {
	for _, candidate := range set {
		if candidate == b {
			return true
		}
	}
	return false
}

func matchEither(hour, yearBranch, dayBranch Branch, lookup func(Branch) (Branch, bool)) bool {
	if pos, ok := lookup(yearBranch); ok && pos == hour {
		return true
	}
	if pos, ok := lookup(dayBranch); ok && pos == hour {
		return true
	}
	return false
}

func dedupeStars(in []Star) []Star {
	out := make([]Star, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, s := range in {
		if _, ok := seen[s.Name]; ok {
			continue
		}
		seen[s.Name] = struct{}{}
		out = append(out, s)
	}
	return out
}

func dedupeClashes(in []Clash) []Clash {
	out := make([]Clash, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, c := range in {
		if _, ok := seen[c.Name]; ok {
			continue
		}
		seen[c.Name] = struct{}{}
		out = append(out, c)
	}
	return out
}
