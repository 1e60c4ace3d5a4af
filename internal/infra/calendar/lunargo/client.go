// Package lunargo adapts the 6tail/lunar-go calendar library to the almanac
// oracle contract.
package lunargo

import (
	"container/list"
	"fmt"
	"log/slog"
	"time"

	"github.com/6tail/lunar-go/calendar"

	"github.com/yanqian/shiji-energy/internal/domain/almanac"
	"github.com/yanqian/shiji-energy/internal/domain/bazi"
	apperrors "github.com/yanqian/shiji-energy/pkg/errors"
)

// Config positions the calendar. Conversions interpret civil times in
// Location; charts without an explicit birth longitude fall back to
// DefaultLongitude for the solar-time correction.
type Config struct {
	Location         *time.Location
	DefaultLongitude float64
}

// Client converts civil dates into sexagenary pillars and almanac facts.
// lunar-go panics on dates outside its supported range, so every conversion
// runs behind a recover guard and surfaces a calendar_error instead.
type Client struct {
	loc              *time.Location
	defaultLongitude float64
	logger           *slog.Logger
}

// NewClient builds the calendar adapter.
func NewClient(cfg Config, logger *slog.Logger) *Client {
	loc := cfg.Location
	if loc == nil {
		loc = time.Local
	}
	return &Client{
		loc:              loc,
		defaultLongitude: cfg.DefaultLongitude,
		logger:           logger.With("component", "calendar.lunargo"),
	}
}

var _ almanac.Oracle = (*Client)(nil)

// NatalChart computes the four pillars of a birth moment, correcting the
// clock time to true solar time.
func (c *Client) NatalChart(moment almanac.BirthMoment) (chart bazi.NatalChart, err error) {
	defer c.recoverConversion(&err)

	longitude := moment.Longitude
	if longitude == 0 {
		longitude = c.defaultLongitude
	}
	at := time.Date(moment.Year, time.Month(moment.Month), moment.Day, moment.Hour, moment.Minute, 0, 0, c.loc)
	at = at.Add(SolarTimeCorrection(longitude))

	solar := calendar.NewSolar(at.Year(), int(at.Month()), at.Day(), at.Hour(), at.Minute(), 0)
	eightChar := solar.GetLunar().GetEightChar()

	chart = bazi.NatalChart{
		Year:  bazi.Pillar{Stem: bazi.Stem(eightChar.GetYearGan()), Branch: bazi.Branch(eightChar.GetYearZhi())},
		Month: bazi.Pillar{Stem: bazi.Stem(eightChar.GetMonthGan()), Branch: bazi.Branch(eightChar.GetMonthZhi())},
		Day:   bazi.Pillar{Stem: bazi.Stem(eightChar.GetDayGan()), Branch: bazi.Branch(eightChar.GetDayZhi())},
		Hour:  bazi.Pillar{Stem: bazi.Stem(eightChar.GetTimeGan()), Branch: bazi.Branch(eightChar.GetTimeZhi())},
	}
	chart.DayMaster = chart.Day.Stem
	return chart, nil
}

// PillarsForDate returns the year, month and day pillars of a calendar date.
func (c *Client) PillarsForDate(date time.Time) (pillars almanac.DatePillars, err error) {
	defer c.recoverConversion(&err)

	lunar := calendar.NewSolarFromDate(date).GetLunar()
	pillars = almanac.DatePillars{
		Year:  splitGanZhi(lunar.GetYearInGanZhiExact()),
		Month: splitGanZhi(lunar.GetMonthInGanZhiExact()),
		Day:   splitGanZhi(lunar.GetDayInGanZhi()),
	}
	return pillars, nil
}

// HourPillar returns the pillar governing the supplied clock time.
func (c *Client) HourPillar(at time.Time) (pillar bazi.Pillar, err error) {
	defer c.recoverConversion(&err)

	solar := calendar.NewSolar(at.Year(), int(at.Month()), at.Day(), at.Hour(), at.Minute(), 0)
	pillar = splitGanZhi(solar.GetLunar().GetTimeInGanZhi())
	return pillar, nil
}

// LunarInfo names a date in the lunar calendar, e.g. 丙午年二月廿二.
func (c *Client) LunarInfo(date time.Time) (info almanac.LunarInfo, err error) {
	defer c.recoverConversion(&err)

	lunar := calendar.NewSolarFromDate(date).GetLunar()
	info = almanac.LunarInfo{
		YearName:  lunar.GetYearInGanZhi() + "年",
		MonthName: lunar.GetMonthInChinese() + "月",
		DayName:   lunar.GetDayInChinese(),
	}
	info.FullName = info.YearName + info.MonthName + info.DayName
	return info, nil
}

// Advice returns the traditional recommends and taboos of a date.
func (c *Client) Advice(date time.Time) (advice almanac.DayAdvice, err error) {
	defer c.recoverConversion(&err)

	lunar := calendar.NewSolarFromDate(date).GetLunar()
	advice = almanac.DayAdvice{
		Recommends: namedItems(lunar.GetDayYi()),
		Avoids:     namedItems(lunar.GetDayJi()),
	}
	return advice, nil
}

// SolarTerm reports the term a date falls in and the distance to the next.
func (c *Client) SolarTerm(date time.Time) (term almanac.SolarTermInfo, err error) {
	defer c.recoverConversion(&err)

	lunar := calendar.NewSolarFromDate(date).GetLunar()

	if current := lunar.GetPrevJieQi(); current != nil {
		term.Current = current.GetName()
	}
	if next := lunar.GetNextJieQi(); next != nil {
		term.Next = next.GetName()
		ns := next.GetSolar()
		nextDate := time.Date(ns.GetYear(), time.Month(ns.GetMonth()), ns.GetDay(), 0, 0, 0, 0, date.Location())
		dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
		term.DaysUntilNext = int(nextDate.Sub(dayStart).Hours() / 24)
	}
	return term, nil
}

// Festivals lists lunar and solar festivals on a date.
func (c *Client) Festivals(date time.Time) (fest almanac.FestivalInfo, err error) {
	defer c.recoverConversion(&err)

	solar := calendar.NewSolarFromDate(date)
	lunar := solar.GetLunar()

	for e := lunar.GetFestivals().Front(); e != nil; e = e.Next() {
		fest.Names = append(fest.Names, fmt.Sprint(e.Value))
		fest.IsTraditional = true
	}
	for e := solar.GetFestivals().Front(); e != nil; e = e.Next() {
		fest.Names = append(fest.Names, fmt.Sprint(e.Value))
	}
	return fest, nil
}

// SolarTimeCorrection offsets a clock time to true solar time: four minutes
// per degree of longitude away from the UTC+8 reference meridian.
func SolarTimeCorrection(longitude float64) time.Duration {
	if longitude == 0 {
		return 0
	}
	return time.Duration((longitude - 120) * 4 * float64(time.Minute))
}

// splitGanZhi splits a two-rune pillar name like 甲子 into stem and branch.
func splitGanZhi(ganZhi string) bazi.Pillar {
	runes := []rune(ganZhi)
	if len(runes) != 2 {
		return bazi.Pillar{}
	}
	return bazi.Pillar{Stem: bazi.Stem(string(runes[0])), Branch: bazi.Branch(string(runes[1]))}
}

func namedItems(values *list.List) []almanac.NamedItem {
	if values == nil {
		return nil
	}
	items := make([]almanac.NamedItem, 0, values.Len())
	for e := values.Front(); e != nil; e = e.Next() {
		name := fmt.Sprint(e.Value)
		items = append(items, almanac.NamedItem{Name: name, Icon: activityIcon(name)})
	}
	return items
}

var activityIcons = map[string]string{
	"嫁娶": "💍", "出行": "🧳", "祈福": "🙏", "动土": "🏗️",
	"开市": "🏪", "交易": "🤝", "安床": "🛏️", "入宅": "🏠",
	"祭祀": "🕯️", "修造": "🔨", "栽种": "🌱", "移徙": "📦",
}

func activityIcon(name string) string {
	if icon, ok := activityIcons[name]; ok {
		return icon
	}
	return "📌"
}

func (c *Client) recoverConversion(err *error) {
	if r := recover(); r != nil {
		c.logger.Warn("calendar conversion recovered", "panic", r)
		*err = apperrors.Wrap("calendar_error", fmt.Sprintf("calendar conversion failed: %v", r), nil)
	}
}
