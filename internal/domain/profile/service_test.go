package profile

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/shiji-energy/internal/domain/almanac"
	"github.com/yanqian/shiji-energy/internal/domain/bazi"
	apperrors "github.com/yanqian/shiji-energy/pkg/errors"
)

func newTestService(repo Repository, oracle almanac.Oracle) Service {
	handler := slog.NewTextHandler(io.Discard, nil)
	return NewService(repo, oracle, slog.New(handler))
}

func birthMoment() almanac.BirthMoment {
	return almanac.BirthMoment{Year: 1990, Month: 5, Day: 15, Hour: 4, Minute: 30}
}

func TestGetReturnsDefaultProfile(t *testing.T) {
	svc := newTestService(newMemoryRepo(), &stubOracle{})

	p, err := svc.Get(context.Background(), 7)
	require.NoError(t, err)
	require.Equal(t, int64(7), p.UserID)
	require.Nil(t, p.Birth)
	require.False(t, p.HasBirthInfo())
	require.Equal(t, DefaultPersonalizationWeight, p.PersonalizationWeight)
	require.Equal(t, "请输入出生信息以获取个性化分析", p.Summary)
}

func TestSetBirthInfoDerivesChart(t *testing.T) {
	repo := newMemoryRepo()
	svc := newTestService(repo, &stubOracle{})

	p, err := svc.SetBirthInfo(context.Background(), 7, birthMoment())
	require.NoError(t, err)
	require.True(t, p.HasBirthInfo())
	require.Equal(t, bazi.Stem("甲"), p.Chart.DayMaster)
	require.Equal(t, 10, p.Balance[bazi.Wood])
	require.Equal(t, []bazi.Element{bazi.Fire, bazi.Metal}, p.Favorability.Favorable)
	require.Equal(t, "日主甲，木旺水弱，喜火、金", p.Summary)
	require.False(t, p.UpdatedAt.IsZero())

	saved, found, err := repo.Get(context.Background(), 7)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, p.Summary, saved.Summary)
}

func TestSetBirthInfoRejectsBadInput(t *testing.T) {
	svc := newTestService(newMemoryRepo(), &stubOracle{})

	_, err := svc.SetBirthInfo(context.Background(), 7, almanac.BirthMoment{Year: 1990, Month: 13, Day: 1})
	require.True(t, apperrors.IsCode(err, "invalid_input"))

	_, err = svc.SetBirthInfo(context.Background(), 7, almanac.BirthMoment{Year: 1990, Month: 5, Day: 15, Hour: 24})
	require.True(t, apperrors.IsCode(err, "invalid_input"))
}

func TestSetBirthInfoWrapsOracleFailure(t *testing.T) {
	svc := newTestService(newMemoryRepo(), &stubOracle{chartErr: errors.New("bad date")})

	_, err := svc.SetBirthInfo(context.Background(), 7, birthMoment())
	require.True(t, apperrors.IsCode(err, "calendar_error"))
}

func TestClearBirthInfoResetsDerivedState(t *testing.T) {
	svc := newTestService(newMemoryRepo(), &stubOracle{})

	_, err := svc.SetBirthInfo(context.Background(), 7, birthMoment())
	require.NoError(t, err)

	p, err := svc.ClearBirthInfo(context.Background(), 7)
	require.NoError(t, err)
	require.Nil(t, p.Birth)
	require.False(t, p.HasBirthInfo())
	require.Empty(t, p.Favorability.Favorable)
	require.Equal(t, "请输入出生信息以获取个性化分析", p.Summary)
}

func TestAddRuleAssignsIDAndDefaults(t *testing.T) {
	svc := newTestService(newMemoryRepo(), &stubOracle{})

	p, err := svc.AddRule(context.Background(), 7, PersonalRule{
		Type:        RulePreference,
		Impact:      10,
		Description: "早晨状态好",
	})
	require.NoError(t, err)
	require.Len(t, p.PersonalRules, 1)
	require.NotEmpty(t, p.PersonalRules[0].ID)
	require.Equal(t, ContextAlways, p.PersonalRules[0].Context)
}

func TestAddRuleValidation(t *testing.T) {
	svc := newTestService(newMemoryRepo(), &stubOracle{})

	_, err := svc.AddRule(context.Background(), 7, PersonalRule{Type: "whim", Description: "x"})
	require.True(t, apperrors.IsCode(err, "invalid_input"))

	_, err = svc.AddRule(context.Background(), 7, PersonalRule{Type: RuleAvoidance, Description: "  "})
	require.True(t, apperrors.IsCode(err, "invalid_input"))
}

func TestRemoveRule(t *testing.T) {
	svc := newTestService(newMemoryRepo(), &stubOracle{})

	p, err := svc.AddRule(context.Background(), 7, PersonalRule{Type: RulePreference, Description: "a"})
	require.NoError(t, err)
	ruleID := p.PersonalRules[0].ID

	p, err = svc.RemoveRule(context.Background(), 7, ruleID)
	require.NoError(t, err)
	require.Empty(t, p.PersonalRules)
}

func TestSetPersonalizationWeightBounds(t *testing.T) {
	svc := newTestService(newMemoryRepo(), &stubOracle{})

	p, err := svc.SetPersonalizationWeight(context.Background(), 7, 80)
	require.NoError(t, err)
	require.Equal(t, 80, p.PersonalizationWeight)

	_, err = svc.SetPersonalizationWeight(context.Background(), 7, 101)
	require.True(t, apperrors.IsCode(err, "invalid_input"))

	_, err = svc.SetPersonalizationWeight(context.Background(), 7, -1)
	require.True(t, apperrors.IsCode(err, "invalid_input"))
}

func TestActivityRoundTrip(t *testing.T) {
	svc := newTestService(newMemoryRepo(), &stubOracle{})

	p, err := svc.AddActivity(context.Background(), 7, "晨跑")
	require.NoError(t, err)
	require.Len(t, p.CustomActivities, 1)
	require.Equal(t, "晨跑", p.CustomActivities[0].Label)

	_, err = svc.AddActivity(context.Background(), 7, "  ")
	require.True(t, apperrors.IsCode(err, "invalid_input"))

	p, err = svc.RemoveActivity(context.Background(), 7, p.CustomActivities[0].ID)
	require.NoError(t, err)
	require.Empty(t, p.CustomActivities)
}

func TestGoalLifecycle(t *testing.T) {
	svc := newTestService(newMemoryRepo(), &stubOracle{})

	p, err := svc.AddGoal(context.Background(), 7, " 坚持早起 ")
	require.NoError(t, err)
	require.Len(t, p.Goals, 1)
	require.NotEmpty(t, p.Goals[0].ID)
	require.Equal(t, "坚持早起", p.Goals[0].Text)
	require.False(t, p.Goals[0].Completed)

	goalID := p.Goals[0].ID
	p, err = svc.ToggleGoal(context.Background(), 7, goalID)
	require.NoError(t, err)
	require.True(t, p.Goals[0].Completed)

	p, err = svc.ToggleGoal(context.Background(), 7, goalID)
	require.NoError(t, err)
	require.False(t, p.Goals[0].Completed)

	p, err = svc.RemoveGoal(context.Background(), 7, goalID)
	require.NoError(t, err)
	require.Empty(t, p.Goals)
}

func TestGoalValidation(t *testing.T) {
	svc := newTestService(newMemoryRepo(), &stubOracle{})

	_, err := svc.AddGoal(context.Background(), 7, "   ")
	require.True(t, apperrors.IsCode(err, "invalid_input"))

	_, err = svc.ToggleGoal(context.Background(), 7, "no-such-goal")
	require.True(t, apperrors.IsCode(err, "invalid_input"))
}

type memoryRepo struct {
	profiles map[int64]Profile
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{profiles: make(map[int64]Profile)}
}

func (m *memoryRepo) Get(_ context.Context, userID int64) (Profile, bool, error) {
	p, ok := m.profiles[userID]
	return p, ok, nil
}

func (m *memoryRepo) Save(_ context.Context, p Profile) error {
	m.profiles[p.UserID] = p
	return nil
}

type stubOracle struct {
	chartErr error
}

func (s *stubOracle) NatalChart(almanac.BirthMoment) (bazi.NatalChart, error) {
	if s.chartErr != nil {
		return bazi.NatalChart{}, s.chartErr
	}
	return bazi.NatalChart{
		Year:      bazi.Pillar{Stem: "戊", Branch: "午"},
		Month:     bazi.Pillar{Stem: "辛", Branch: "巳"},
		Day:       bazi.Pillar{Stem: "甲", Branch: "子"},
		Hour:      bazi.Pillar{Stem: "丙", Branch: "寅"},
		DayMaster: "甲",
	}, nil
}

func (s *stubOracle) PillarsForDate(time.Time) (almanac.DatePillars, error) {
	return almanac.DatePillars{}, nil
}

func (s *stubOracle) HourPillar(time.Time) (bazi.Pillar, error) {
	return bazi.Pillar{}, nil
}

func (s *stubOracle) LunarInfo(time.Time) (almanac.LunarInfo, error) {
	return almanac.LunarInfo{}, nil
}

func (s *stubOracle) Advice(time.Time) (almanac.DayAdvice, error) {
	return almanac.DayAdvice{}, nil
}

func (s *stubOracle) SolarTerm(time.Time) (almanac.SolarTermInfo, error) {
	return almanac.SolarTermInfo{}, nil
}

func (s *stubOracle) Festivals(time.Time) (almanac.FestivalInfo, error) {
	return almanac.FestivalInfo{}, nil
}
