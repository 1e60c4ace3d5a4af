package almanac

import (
	"time"

	"github.com/yanqian/shiji-energy/internal/domain/bazi"
)

// Oracle is the calendar conversion dependency. Implementations translate
// civil dates and times into sexagenary pillars and almanac facts. Every call
// may fail; consumers degrade to neutral defaults instead of propagating.
type Oracle interface {
	// NatalChart computes the four pillars for a birth moment.
	NatalChart(moment BirthMoment) (bazi.NatalChart, error)
	// PillarsForDate returns the year/month/day pillars of a date.
	PillarsForDate(date time.Time) (DatePillars, error)
	// HourPillar returns the pillar governing the given clock time.
	HourPillar(at time.Time) (bazi.Pillar, error)
	// LunarInfo names the date in the lunar calendar.
	LunarInfo(date time.Time) (LunarInfo, error)
	// Advice returns the almanac recommends/avoids for a date.
	Advice(date time.Time) (DayAdvice, error)
	// SolarTerm reports the solar term context of a date.
	SolarTerm(date time.Time) (SolarTermInfo, error)
	// Festivals lists festivals on a date.
	Festivals(date time.Time) (FestivalInfo, error)
}
