package energy

import (
	"context"
	"log/slog"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/yanqian/shiji-energy/internal/domain/almanac"
	"github.com/yanqian/shiji-energy/internal/domain/bazi"
	"github.com/yanqian/shiji-energy/internal/domain/profile"
	apperrors "github.com/yanqian/shiji-energy/pkg/errors"
)

// Config tunes the scoring engine.
type Config struct {
	// LegacyScoring switches back to the favorability-only scorer.
	LegacyScoring bool
	// CacheTTL bounds how long computed day profiles live in the cache.
	CacheTTL time.Duration
}

// ProfileSource is the slice of the profile domain the engine reads.
// profile.Service satisfies it.
type ProfileSource interface {
	Get(ctx context.Context, userID int64) (profile.Profile, error)
}

// Service is the hourly energy read surface.
type Service interface {
	// DayProfile returns the 24 hour records of one day.
	DayProfile(ctx context.Context, userID int64, date time.Time) ([]HourRecord, error)
	// HourDetail returns a single slot of the day profile.
	HourDetail(ctx context.Context, userID int64, date time.Time, hour int) (HourRecord, error)
	// DailyFortune aggregates one day into the headline view.
	DailyFortune(ctx context.Context, userID int64, date time.Time) (DailyFortune, error)
	// WeeklyTrend samples the next seven days into one score per day.
	WeeklyTrend(ctx context.Context, userID int64, start time.Time) ([]TrendPoint, error)
	// RecommendForAction ranks the day's hours for one action id.
	RecommendForAction(ctx context.Context, userID int64, date time.Time, actionID string) (ActionRecommendation, error)
	// ActionLibrary lists the built-in actions plus the user's custom ones.
	ActionLibrary(ctx context.Context, userID int64) ([]Action, error)
}

type service struct {
	cfg      Config
	profiles ProfileSource
	oracle   almanac.Oracle
	cache    ProfileCache
	logger   *slog.Logger
	now      func() time.Time
}

// NewService wires the energy domain.
func NewService(cfg Config, profiles ProfileSource, oracle almanac.Oracle, cache ProfileCache, logger *slog.Logger) Service {
	return &service{
		cfg:      cfg,
		profiles: profiles,
		oracle:   oracle,
		cache:    cache,
		logger:   logger.With("component", "energy.service"),
		now:      time.Now,
	}
}

func (s *service) DayProfile(ctx context.Context, userID int64, date time.Time) ([]HourRecord, error) {
	p, err := s.profiles.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !p.HasBirthInfo() {
		return DefaultHourRecords(), nil
	}

	dateKey := date.Format("2006-01-02")
	revision := profileRevision(p)
	if s.cache != nil {
		if cached, ok, cerr := s.cache.GetDayProfile(ctx, userID, dateKey, revision); cerr != nil {
			s.logger.Warn("day profile cache read failed", "error", cerr, "user_id", userID)
		} else if ok {
			return cached, nil
		}
	}

	records := s.computeDayProfile(p, date)

	if s.cache != nil {
		if cerr := s.cache.SetDayProfile(ctx, userID, dateKey, revision, records); cerr != nil {
			s.logger.Warn("day profile cache write failed", "error", cerr, "user_id", userID)
		}
	}
	return records, nil
}

// profileRevision stamps cache entries with the profile's last mutation, so
// editing rules, weight or birth info invalidates every cached day at once.
func profileRevision(p profile.Profile) string {
	if p.UpdatedAt.IsZero() {
		return "0"
	}
	return strconv.FormatInt(p.UpdatedAt.UnixNano(), 10)
}

// computeDayProfile scores all 24 hours of a date. Oracle failures degrade
// per hour to the circadian baseline instead of failing the whole day.
func (s *service) computeDayProfile(p profile.Profile, date time.Time) []HourRecord {
	pillars, err := s.oracle.PillarsForDate(date)
	if err != nil {
		s.logger.Warn("date pillar lookup failed, serving defaults", "error", err, "date", date.Format("2006-01-02"))
		return DefaultHourRecords()
	}

	records := make([]HourRecord, 0, 24)
	for hour := 0; hour < 24; hour++ {
		at := time.Date(date.Year(), date.Month(), date.Day(), hour, 0, 0, 0, date.Location())
		hourPillar, herr := s.oracle.HourPillar(at)
		if herr != nil {
			s.logger.Warn("hour pillar lookup failed, using default slot", "error", herr, "hour", hour)
			records = append(records, DefaultHourRecord(hour))
			continue
		}
		result := s.scoreHour(p, pillars.Day, hourPillar, at)
		records = append(records, BuildHourRecord(p.Chart, p.Favorability, hour, hourPillar, result))
	}
	return records
}

func (s *service) scoreHour(p profile.Profile, day, hour bazi.Pillar, at time.Time) ScoreResult {
	return ScoreHour(!s.cfg.LegacyScoring, p.Chart, p.Favorability, day, hour,
		p.PersonalRules, p.PersonalizationWeight, at)
}

func (s *service) HourDetail(ctx context.Context, userID int64, date time.Time, hour int) (HourRecord, error) {
	if hour < 0 || hour > 23 {
		return HourRecord{}, apperrors.Wrap("invalid_input", "hour must be 0-23", nil)
	}
	records, err := s.DayProfile(ctx, userID, date)
	if err != nil {
		return HourRecord{}, err
	}
	for _, r := range records {
		if r.Hour == hour {
			return r, nil
		}
	}
	return DefaultHourRecord(hour), nil
}

func (s *service) DailyFortune(ctx context.Context, userID int64, date time.Time) (DailyFortune, error) {
	records, err := s.DayProfile(ctx, userID, date)
	if err != nil {
		return DailyFortune{}, err
	}

	lunarText := ""
	if info, lerr := s.oracle.LunarInfo(date); lerr != nil {
		s.logger.Warn("lunar info lookup failed", "error", lerr, "date", date.Format("2006-01-02"))
	} else {
		lunarText = info.FullName
	}

	return BuildDailyFortune(date.Format("2006-01-02"), lunarText, records), nil
}

// WeeklyTrend samples every other hour of each of the next seven days. The
// personal rules stay out of the trend so the curve reflects the chart
// alone.
func (s *service) WeeklyTrend(ctx context.Context, userID int64, start time.Time) ([]TrendPoint, error) {
	p, err := s.profiles.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !p.HasBirthInfo() {
		return PlaceholderTrend(start), nil
	}

	points := make([]TrendPoint, 0, trendDays)
	for i := 0; i < trendDays; i++ {
		day := start.AddDate(0, 0, i)
		points = append(points, TrendPoint{
			Date:      day.Format("2006-01-02"),
			ShortDate: ShortDate(day),
			Score:     s.trendScore(p, day),
		})
	}
	return points, nil
}

func (s *service) trendScore(p profile.Profile, day time.Time) int {
	const samples = 12

	pillars, err := s.oracle.PillarsForDate(day)
	if err != nil {
		s.logger.Warn("trend pillar lookup failed", "error", err, "date", day.Format("2006-01-02"))
		return 50
	}

	total := 0
	for hour := 0; hour < 24; hour += 2 {
		at := time.Date(day.Year(), day.Month(), day.Day(), hour, 0, 0, 0, day.Location())
		hourPillar, herr := s.oracle.HourPillar(at)
		if herr != nil {
			total += 50
			continue
		}
		result := ScoreHour(!s.cfg.LegacyScoring, p.Chart, p.Favorability, pillars.Day, hourPillar, nil, 0, at)
		total += result.Score
	}
	return int(math.Round(float64(total) / samples))
}

func (s *service) RecommendForAction(ctx context.Context, userID int64, date time.Time, actionID string) (ActionRecommendation, error) {
	p, err := s.profiles.Get(ctx, userID)
	if err != nil {
		return ActionRecommendation{}, err
	}

	action, ok := findAction(MergeActionLibrary(p.CustomActivities), actionID)
	if !ok {
		return ActionRecommendation{}, apperrors.Wrap("invalid_input", "unknown action id", nil)
	}

	records, err := s.DayProfile(ctx, userID, date)
	if err != nil {
		return ActionRecommendation{}, err
	}

	keywords := actionKeywords[action.ID]
	if len(keywords) == 0 {
		keywords = []string{action.Label}
	}

	matches := matchHours(records, keywords)
	var top []HourRecord
	if len(matches) > 0 {
		sort.SliceStable(matches, func(i, j int) bool {
			return actionBoost(matches[i]) > actionBoost(matches[j])
		})
		top = matches
	} else {
		top = BestHours(records)
	}

	return ActionRecommendation{
		Action:  action.Label,
		Top:     rankedView(top, 3),
		Caution: rankedView(WorstHours(records), 2),
	}, nil
}

func (s *service) ActionLibrary(ctx context.Context, userID int64) ([]Action, error) {
	p, err := s.profiles.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	return MergeActionLibrary(p.CustomActivities), nil
}

func findAction(library []Action, id string) (Action, bool) {
	for _, a := range library {
		if a.ID == id {
			return a, true
		}
	}
	return Action{}, false
}

// matchHours keeps the hours whose display texts mention any keyword.
func matchHours(records []HourRecord, keywords []string) []HourRecord {
	var out []HourRecord
	for _, r := range records {
		parts := make([]string, 0, len(r.RecommendedActions)+len(r.AvoidActions)+len(r.ReasonTags)+2)
		parts = append(parts, r.RecommendedActions...)
		parts = append(parts, r.AvoidActions...)
		parts = append(parts, r.ReasonTags...)
		parts = append(parts, r.Brief, r.LevelLabel)
		searchText := strings.Join(parts, " ")

		for _, kw := range keywords {
			if strings.Contains(searchText, kw) {
				out = append(out, r)
				break
			}
		}
	}
	return out
}

func actionBoost(r HourRecord) int {
	if r.Hour >= 9 && r.Hour <= 21 {
		return r.Score + 5
	}
	return r.Score
}
