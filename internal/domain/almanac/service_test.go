package almanac

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/shiji-energy/internal/domain/bazi"
)

func testDate() time.Time {
	return time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
}

func newTestService(oracle Oracle) Service {
	handler := slog.NewTextHandler(io.Discard, nil)
	return NewService(oracle, slog.New(handler))
}

func TestOverviewCollectsAllFacts(t *testing.T) {
	oracle := &fakeOracle{
		lunar:   LunarInfo{YearName: "丙午年", MonthName: "二月", DayName: "廿二", FullName: "丙午年二月廿二"},
		pillars: DatePillars{Day: bazi.Pillar{Stem: "甲", Branch: "子"}},
		advice: DayAdvice{
			Recommends: []NamedItem{{Name: "祭祀", Icon: "🙏"}},
			Avoids:     []NamedItem{{Name: "动土", Icon: "⛏️"}},
		},
		term:     SolarTermInfo{Current: "惊蛰", Next: "春分", DaysUntilNext: 10},
		festival: FestivalInfo{Names: []string{"龙抬头"}, IsTraditional: true},
	}

	out, err := newTestService(oracle).Overview(context.Background(), testDate())
	require.NoError(t, err)
	require.Equal(t, "2026-03-10", out.Date)
	require.Equal(t, "丙午年二月廿二", out.Lunar.FullName)
	require.Equal(t, "甲子", out.Pillars.Day.Full())
	require.Len(t, out.Advice.Recommends, 1)
	require.Equal(t, "春分", out.Term.Next)
	require.True(t, out.Festival.IsTraditional)
}

func TestOverviewDegradesPerFact(t *testing.T) {
	oracle := &fakeOracle{
		lunarErr:    errors.New("boom"),
		pillarsErr:  errors.New("boom"),
		adviceErr:   errors.New("boom"),
		termErr:     errors.New("boom"),
		festivalErr: errors.New("boom"),
	}

	out, err := newTestService(oracle).Overview(context.Background(), testDate())
	require.NoError(t, err)
	require.Equal(t, "2026-03-10", out.Date)
	require.Empty(t, out.Lunar.FullName)
	require.True(t, out.Pillars.Day.IsZero())
	require.Empty(t, out.Advice.Recommends)
	require.Empty(t, out.Term.Next)
	require.Empty(t, out.Festival.Names)
}

func TestOverviewCapsAdvice(t *testing.T) {
	many := make([]NamedItem, 8)
	for i := range many {
		many[i] = NamedItem{Name: "宜", Icon: "📌"}
	}
	oracle := &fakeOracle{advice: DayAdvice{Recommends: many, Avoids: many}}

	out, err := newTestService(oracle).Overview(context.Background(), testDate())
	require.NoError(t, err)
	require.Len(t, out.Advice.Recommends, 5)
	require.Len(t, out.Advice.Avoids, 5)
}

type fakeOracle struct {
	lunar       LunarInfo
	lunarErr    error
	pillars     DatePillars
	pillarsErr  error
	advice      DayAdvice
	adviceErr   error
	term        SolarTermInfo
	termErr     error
	festival    FestivalInfo
	festivalErr error
}

func (f *fakeOracle) NatalChart(BirthMoment) (bazi.NatalChart, error) {
	return bazi.NatalChart{}, nil
}

func (f *fakeOracle) PillarsForDate(time.Time) (DatePillars, error) {
	return f.pillars, f.pillarsErr
}

func (f *fakeOracle) HourPillar(time.Time) (bazi.Pillar, error) {
	return bazi.Pillar{}, nil
}

func (f *fakeOracle) LunarInfo(time.Time) (LunarInfo, error) {
	return f.lunar, f.lunarErr
}

func (f *fakeOracle) Advice(time.Time) (DayAdvice, error) {
	return f.advice, f.adviceErr
}

func (f *fakeOracle) SolarTerm(time.Time) (SolarTermInfo, error) {
	return f.term, f.termErr
}

func (f *fakeOracle) Festivals(time.Time) (FestivalInfo, error) {
	return f.festival, f.festivalErr
}
