package profile

import (
	"time"

	"github.com/yanqian/shiji-energy/internal/domain/almanac"
	"github.com/yanqian/shiji-energy/internal/domain/bazi"
)

// RuleType classifies a user-authored personal rule.
type RuleType string

const (
	RulePreference  RuleType = "preference"
	RuleAvoidance   RuleType = "avoidance"
	RuleObservation RuleType = "observation"
)

// RuleContext narrows the hours a rule applies to. Unknown contexts match no
// hour at all.
type RuleContext string

const (
	ContextAlways    RuleContext = "always"
	ContextMorning   RuleContext = "morning"
	ContextAfternoon RuleContext = "afternoon"
	ContextEvening   RuleContext = "evening"
	ContextNight     RuleContext = "night"
	ContextWorkday   RuleContext = "workday"
	ContextWeekend   RuleContext = "weekend"
)

// PersonalRule is a user-authored score override applied on top of the chart
// arithmetic.
type PersonalRule struct {
	ID          string      `json:"id"`
	Type        RuleType    `json:"type"`
	Context     RuleContext `json:"context"`
	Impact      int         `json:"impact"`
	Count       int         `json:"count"`
	Description string      `json:"description"`
}

// Activity is an entry of the user's action library.
type Activity struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// Goal is a daily intention the user tracks.
type Goal struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// DefaultPersonalizationWeight is the percentage applied to personal-rule
// adjustments when the user has not tuned it.
const DefaultPersonalizationWeight = 30

// Profile is the per-user aggregate owning birth data and derived chart
// state. The derived fields are recomputed whenever birth info changes and
// never mutated elsewhere.
type Profile struct {
	UserID                int64                    `json:"userId"`
	Name                  string                   `json:"name"`
	Timezone              string                   `json:"timezone"`
	Birth                 *almanac.BirthMoment     `json:"birth,omitempty"`
	Chart                 bazi.NatalChart          `json:"chart"`
	Balance               bazi.ElementBalance      `json:"balance"`
	Favorability          bazi.FavorabilityProfile `json:"favorability"`
	Summary               string                   `json:"summary"`
	PersonalRules         []PersonalRule           `json:"personalRules"`
	PersonalizationWeight int                      `json:"personalizationWeight"`
	CustomActivities      []Activity               `json:"customActivities"`
	Goals                 []Goal                   `json:"goals"`
	UpdatedAt             time.Time                `json:"updatedAt"`
}

// HasBirthInfo reports whether the profile carries a usable natal chart.
func (p Profile) HasBirthInfo() bool {
	return p.Birth != nil && !p.Chart.IsZero()
}
