package profile

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/yanqian/shiji-energy/internal/domain/almanac"
	"github.com/yanqian/shiji-energy/internal/domain/bazi"
	apperrors "github.com/yanqian/shiji-energy/pkg/errors"
	"github.com/yanqian/shiji-energy/pkg/util"
)

// Service exposes profile workflows.
type Service interface {
	Get(ctx context.Context, userID int64) (Profile, error)
	SetBirthInfo(ctx context.Context, userID int64, moment almanac.BirthMoment) (Profile, error)
	ClearBirthInfo(ctx context.Context, userID int64) (Profile, error)
	AddRule(ctx context.Context, userID int64, rule PersonalRule) (Profile, error)
	RemoveRule(ctx context.Context, userID int64, ruleID string) (Profile, error)
	SetPersonalizationWeight(ctx context.Context, userID int64, weight int) (Profile, error)
	AddActivity(ctx context.Context, userID int64, label string) (Profile, error)
	RemoveActivity(ctx context.Context, userID int64, activityID string) (Profile, error)
	AddGoal(ctx context.Context, userID int64, text string) (Profile, error)
	ToggleGoal(ctx context.Context, userID int64, goalID string) (Profile, error)
	RemoveGoal(ctx context.Context, userID int64, goalID string) (Profile, error)
}

type service struct {
	repo   Repository
	oracle almanac.Oracle
	logger *slog.Logger
	now    func() time.Time
}

// NewService wires the profile domain.
func NewService(repo Repository, oracle almanac.Oracle, logger *slog.Logger) Service {
	return &service{
		repo:   repo,
		oracle: oracle,
		logger: logger.With("component", "profile.service"),
		now:    util.NowUTC,
	}
}

const emptySummary = "请输入出生信息以获取个性化分析"

func (s *service) Get(ctx context.Context, userID int64) (Profile, error) {
	p, found, err := s.repo.Get(ctx, userID)
	if err != nil {
		return Profile{}, apperrors.Wrap("profile_error", "failed to load profile", err)
	}
	if !found {
		return newProfile(userID), nil
	}
	return normalize(p), nil
}

// SetBirthInfo stores the birth moment and recomputes every derived field:
// natal chart, element balance, favorability and the summary line.
func (s *service) SetBirthInfo(ctx context.Context, userID int64, moment almanac.BirthMoment) (Profile, error) {
	if moment.Year <= 0 || moment.Month < 1 || moment.Month > 12 || moment.Day < 1 || moment.Day > 31 {
		return Profile{}, apperrors.Wrap("invalid_input", "birth date out of range", nil)
	}
	if moment.Hour < 0 || moment.Hour > 23 {
		return Profile{}, apperrors.Wrap("invalid_input", "birth hour must be 0-23", nil)
	}

	p, err := s.Get(ctx, userID)
	if err != nil {
		return Profile{}, err
	}

	chart, err := s.oracle.NatalChart(moment)
	if err != nil {
		return Profile{}, apperrors.Wrap("calendar_error", "failed to compute natal chart", err)
	}

	balance := bazi.ComputeElementBalance(chart)
	favorability := bazi.ComputeFavorability(balance, chart.DayMaster)

	p.Birth = &moment
	p.Chart = chart
	p.Balance = balance
	p.Favorability = favorability
	p.Summary = summarize(chart, balance, favorability)
	return s.save(ctx, p)
}

func (s *service) ClearBirthInfo(ctx context.Context, userID int64) (Profile, error) {
	p, err := s.Get(ctx, userID)
	if err != nil {
		return Profile{}, err
	}
	p.Birth = nil
	p.Chart = bazi.NatalChart{}
	p.Balance = bazi.ElementBalance{}
	p.Favorability = bazi.FavorabilityProfile{}
	p.Summary = emptySummary
	return s.save(ctx, p)
}

func (s *service) AddRule(ctx context.Context, userID int64, rule PersonalRule) (Profile, error) {
	switch rule.Type {
	case RulePreference, RuleAvoidance, RuleObservation:
	default:
		return Profile{}, apperrors.Wrap("invalid_input", fmt.Sprintf("unknown rule type %q", rule.Type), nil)
	}
	if strings.TrimSpace(rule.Description) == "" {
		return Profile{}, apperrors.Wrap("invalid_input", "rule description cannot be empty", nil)
	}
	p, err := s.Get(ctx, userID)
	if err != nil {
		return Profile{}, err
	}
	rule.ID = uuid.NewString()
	if rule.Context == "" {
		rule.Context = ContextAlways
	}
	p.PersonalRules = append(p.PersonalRules, rule)
	return s.save(ctx, p)
}

func (s *service) RemoveRule(ctx context.Context, userID int64, ruleID string) (Profile, error) {
	p, err := s.Get(ctx, userID)
	if err != nil {
		return Profile{}, err
	}
	kept := p.PersonalRules[:0]
	for _, rule := range p.PersonalRules {
		if rule.ID != ruleID {
			kept = append(kept, rule)
		}
	}
	p.PersonalRules = kept
	return s.save(ctx, p)
}

func (s *service) SetPersonalizationWeight(ctx context.Context, userID int64, weight int) (Profile, error) {
	if weight < 0 || weight > 100 {
		return Profile{}, apperrors.Wrap("invalid_input", "personalization weight must be 0-100", nil)
	}
	p, err := s.Get(ctx, userID)
	if err != nil {
		return Profile{}, err
	}
	p.PersonalizationWeight = weight
	return s.save(ctx, p)
}

func (s *service) AddActivity(ctx context.Context, userID int64, label string) (Profile, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return Profile{}, apperrors.Wrap("invalid_input", "activity label cannot be empty", nil)
	}
	p, err := s.Get(ctx, userID)
	if err != nil {
		return Profile{}, err
	}
	p.CustomActivities = append(p.CustomActivities, Activity{ID: uuid.NewString(), Label: label})
	return s.save(ctx, p)
}

func (s *service) RemoveActivity(ctx context.Context, userID int64, activityID string) (Profile, error) {
	p, err := s.Get(ctx, userID)
	if err != nil {
		return Profile{}, err
	}
	kept := p.CustomActivities[:0]
	for _, activity := range p.CustomActivities {
		if activity.ID != activityID {
			kept = append(kept, activity)
		}
	}
	p.CustomActivities = kept
	return s.save(ctx, p)
}

func (s *service) AddGoal(ctx context.Context, userID int64, text string) (Profile, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Profile{}, apperrors.Wrap("invalid_input", "goal text cannot be empty", nil)
	}
	p, err := s.Get(ctx, userID)
	if err != nil {
		return Profile{}, err
	}
	p.Goals = append(p.Goals, Goal{ID: uuid.NewString(), Text: text})
	return s.save(ctx, p)
}

func (s *service) ToggleGoal(ctx context.Context, userID int64, goalID string) (Profile, error) {
	p, err := s.Get(ctx, userID)
	if err != nil {
		return Profile{}, err
	}
	for i := range p.Goals {
		if p.Goals[i].ID == goalID {
			p.Goals[i].Completed = !p.Goals[i].Completed
			return s.save(ctx, p)
		}
	}
	return Profile{}, apperrors.Wrap("invalid_input", "goal not found", nil)
}

func (s *service) RemoveGoal(ctx context.Context, userID int64, goalID string) (Profile, error) {
	p, err := s.Get(ctx, userID)
	if err != nil {
		return Profile{}, err
	}
	kept := p.Goals[:0]
	for _, goal := range p.Goals {
		if goal.ID != goalID {
			kept = append(kept, goal)
		}
	}
	p.Goals = kept
	return s.save(ctx, p)
}

func (s *service) save(ctx context.Context, p Profile) (Profile, error) {
	p.UpdatedAt = s.now()
	if err := s.repo.Save(ctx, p); err != nil {
		return Profile{}, apperrors.Wrap("profile_error", "failed to save profile", err)
	}
	return p, nil
}

func newProfile(userID int64) Profile {
	return Profile{
		UserID:                userID,
		Timezone:              "Asia/Shanghai",
		Summary:               emptySummary,
		PersonalizationWeight: DefaultPersonalizationWeight,
	}
}

func normalize(p Profile) Profile {
	if p.PersonalizationWeight == 0 && len(p.PersonalRules) == 0 {
		p.PersonalizationWeight = DefaultPersonalizationWeight
	}
	if p.Summary == "" {
		p.Summary = emptySummary
	}
	return p
}

// summarize renders the one-line chart digest shown on the profile page,
// e.g. "日主甲，木旺金弱，喜火、土".
func summarize(chart bazi.NatalChart, balance bazi.ElementBalance, fav bazi.FavorabilityProfile) string {
	type entry struct {
		element bazi.Element
		score   int
	}
	entries := make([]entry, 0, len(bazi.Elements))
	for _, e := range bazi.Elements {
		entries = append(entries, entry{element: e, score: balance[e]})
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].score > entries[j].score })

	strongest := entries[0].element
	weakest := entries[len(entries)-1].element

	names := make([]string, 0, len(fav.Favorable))
	for _, e := range fav.Favorable {
		names = append(names, string(e))
	}
	return fmt.Sprintf("日主%s，%s旺%s弱，喜%s", chart.DayMaster, strongest, weakest, strings.Join(names, "、"))
}
