package almanac

import "github.com/yanqian/shiji-energy/internal/domain/bazi"

// BirthMoment identifies the civil time a natal chart is computed from.
// Longitude feeds the true-solar-time correction (degrees east).
type BirthMoment struct {
	Year      int     `json:"year"`
	Month     int     `json:"month"`
	Day       int     `json:"day"`
	Hour      int     `json:"hour"`
	Minute    int     `json:"minute"`
	Longitude float64 `json:"longitude"`
}

// DatePillars are the year/month/day pillars of a calendar date.
type DatePillars struct {
	Year  bazi.Pillar `json:"year"`
	Month bazi.Pillar `json:"month"`
	Day   bazi.Pillar `json:"day"`
}

// LunarInfo names a date in the lunar calendar.
type LunarInfo struct {
	YearName  string `json:"yearName"`
	MonthName string `json:"monthName"`
	DayName   string `json:"dayName"`
	FullName  string `json:"fullName"`
}

// NamedItem is a single almanac recommendation or taboo.
type NamedItem struct {
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// DayAdvice lists what the almanac recommends and avoids for a date.
type DayAdvice struct {
	Recommends []NamedItem `json:"recommends"`
	Avoids     []NamedItem `json:"avoids"`
}

// SolarTermInfo describes the solar term a date falls in.
type SolarTermInfo struct {
	Current       string `json:"current"`
	Next          string `json:"next"`
	DaysUntilNext int    `json:"daysUntilNext"`
}

// FestivalInfo lists festivals falling on a date.
type FestivalInfo struct {
	Names         []string `json:"names"`
	IsTraditional bool     `json:"isTraditional"`
}

// Overview aggregates the almanac read surface for one date.
type Overview struct {
	Date     string        `json:"date"`
	Lunar    LunarInfo     `json:"lunar"`
	Pillars  DatePillars   `json:"pillars"`
	Advice   DayAdvice     `json:"advice"`
	Term     SolarTermInfo `json:"term"`
	Festival FestivalInfo  `json:"festival"`
}
