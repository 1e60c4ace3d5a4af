package bazi

// Stem is one of the ten heavenly stems (天干).
type Stem string

// Branch is one of the twelve earthly branches (地支).
type Branch string

// Element is one of the five phases (五行).
type Element string

const (
	Wood  Element = "木"
	Fire  Element = "火"
	Earth Element = "土"
	Metal Element = "金"
	Water Element = "水"
)

// Elements lists the five phases in generation-cycle order.
var Elements = []Element{Wood, Fire, Earth, Metal, Water}

// Pillar pairs a stem with a branch naming one sexagenary cycle position.
type Pillar struct {
	Stem   Stem   `json:"stem"`
	Branch Branch `json:"branch"`
}

// Full returns the display name of the pillar (stem followed by branch).
func (p Pillar) Full() string {
	return string(p.Stem) + string(p.Branch)
}

// IsZero reports whether the pillar is unset.
func (p Pillar) IsZero() bool {
	return p.Stem == "" && p.Branch == ""
}

// NatalChart holds the four pillars derived from a birth moment.
type NatalChart struct {
	Year  Pillar `json:"year"`
	Month Pillar `json:"month"`
	Day   Pillar `json:"day"`
	Hour  Pillar `json:"hour"`
	// DayMaster is the stem of the day pillar, the chart's reference point.
	DayMaster Stem `json:"dayMaster"`
}

// IsZero reports whether no chart has been computed.
func (c NatalChart) IsZero() bool {
	return c.DayMaster == "" && c.Day.IsZero()
}

// ElementBalance maps each of the five elements to its tallied strength.
type ElementBalance map[Element]int

// FavorabilityProfile captures the elements that help or hinder the day master.
type FavorabilityProfile struct {
	Favorable        []Element `json:"favorable"`
	Unfavorable      []Element `json:"unfavorable"`
	PrimaryFavorable Element   `json:"primaryFavorable"`
	PrimaryAvoid     Element   `json:"primaryAvoid"`
}

// Favors reports whether the element is among the favorable set.
func (f FavorabilityProfile) Favors(e Element) bool {
	for _, candidate := range f.Favorable {
		if candidate == e {
			return true
		}
	}
	return false
}

// Avoids reports whether the element is among the unfavorable set.
func (f FavorabilityProfile) Avoids(e Element) bool {
	for _, candidate := range f.Unfavorable {
		if candidate == e {
			return true
		}
	}
	return false
}

// Star is a named auspicious marker triggered by a stem/branch coincidence.
type Star struct {
	Name string `json:"name"`
	Desc string `json:"desc"`
}

// Clash is a named inauspicious marker.
type Clash struct {
	Name string `json:"name"`
	Desc string `json:"desc"`
}
