package energy

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/shiji-energy/internal/domain/profile"
)

// 2026-03-10 is a Tuesday.
func tuesdayAt(hour int) time.Time {
	return time.Date(2026, 3, 10, hour, 0, 0, 0, time.UTC)
}

func TestPersonalAdjustmentContexts(t *testing.T) {
	rule := func(ctx profile.RuleContext) []profile.PersonalRule {
		return []profile.PersonalRule{{Type: profile.RulePreference, Context: ctx, Impact: 10, Count: 1}}
	}

	cases := []struct {
		name    string
		ctx     profile.RuleContext
		at      time.Time
		applies bool
	}{
		{"morning in range", profile.ContextMorning, tuesdayAt(6), true},
		{"morning upper edge", profile.ContextMorning, tuesdayAt(12), true},
		{"morning out of range", profile.ContextMorning, tuesdayAt(13), false},
		{"afternoon", profile.ContextAfternoon, tuesdayAt(15), true},
		{"evening", profile.ContextEvening, tuesdayAt(21), true},
		{"evening after", profile.ContextEvening, tuesdayAt(22), false},
		{"night late", profile.ContextNight, tuesdayAt(23), true},
		{"night early", profile.ContextNight, tuesdayAt(5), true},
		{"night midday", profile.ContextNight, tuesdayAt(12), false},
		{"workday hours", profile.ContextWorkday, tuesdayAt(10), true},
		{"workday too early", profile.ContextWorkday, tuesdayAt(8), false},
		{"workday upper edge", profile.ContextWorkday, tuesdayAt(18), true},
		{"weekend applies all day", profile.ContextWeekend, tuesdayAt(3), true},
		{"always", profile.ContextAlways, tuesdayAt(3), true},
		{"unknown context", profile.RuleContext("lunch"), tuesdayAt(12), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			adj := PersonalAdjustment(rule(tc.ctx), 100, tc.at)
			if tc.applies {
				require.Equal(t, 10.0, adj)
			} else {
				require.Zero(t, adj)
			}
		})
	}
}

func TestPersonalAdjustmentRuleTypes(t *testing.T) {
	at := tuesdayAt(10)

	preference := []profile.PersonalRule{{Type: profile.RulePreference, Context: profile.ContextAlways, Impact: 10, Count: 2}}
	require.Equal(t, 20.0, PersonalAdjustment(preference, 100, at))

	avoidance := []profile.PersonalRule{{Type: profile.RuleAvoidance, Context: profile.ContextAlways, Impact: 10, Count: 2}}
	require.Equal(t, -20.0, PersonalAdjustment(avoidance, 100, at))

	positive := []profile.PersonalRule{{
		Type: profile.RuleObservation, Context: profile.ContextAlways,
		Impact: 10, Count: 2, Description: "上午效率高",
	}}
	require.Equal(t, 10.0, PersonalAdjustment(positive, 100, at))

	negative := []profile.PersonalRule{{
		Type: profile.RuleObservation, Context: profile.ContextAlways,
		Impact: 10, Count: 2, Description: "午后容易疲劳",
	}}
	require.Equal(t, -10.0, PersonalAdjustment(negative, 100, at))
}

func TestPersonalAdjustmentObservationMixedLeansPositive(t *testing.T) {
	at := tuesdayAt(10)

	// "状态好但很累" carries one positive and one negative word.
	tie := []profile.PersonalRule{{
		Type: profile.RuleObservation, Context: profile.ContextAlways,
		Impact: 10, Count: 1, Description: "状态好但很累",
	}}
	require.Equal(t, 5.0, PersonalAdjustment(tie, 100, at))

	// A single positive word outweighs any number of negative ones:
	// presence decides, not counts.
	outnumbered := []profile.PersonalRule{{
		Type: profile.RuleObservation, Context: profile.ContextAlways,
		Impact: 10, Count: 1, Description: "有效但疲劳且累",
	}}
	require.Equal(t, 5.0, PersonalAdjustment(outnumbered, 100, at))

	// No sentiment words at all also leans positive.
	neutral := []profile.PersonalRule{{
		Type: profile.RuleObservation, Context: profile.ContextAlways,
		Impact: 10, Count: 1, Description: "午间散步",
	}}
	require.Equal(t, 5.0, PersonalAdjustment(neutral, 100, at))
}

func TestPersonalAdjustmentDefaults(t *testing.T) {
	at := tuesdayAt(10)

	// Missing impact and count both default to 1.
	rules := []profile.PersonalRule{{Type: profile.RulePreference, Context: profile.ContextAlways}}
	require.Equal(t, 1.0, PersonalAdjustment(rules, 100, at))

	// The weight scales the total down.
	require.Equal(t, 0.3, PersonalAdjustment(rules, 30, at))

	require.Zero(t, PersonalAdjustment(nil, 100, at))
	require.Zero(t, PersonalAdjustment(rules, 0, at))
}
