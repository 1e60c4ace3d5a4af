package energy

import (
	"strings"
	"time"

	"github.com/yanqian/shiji-energy/internal/domain/profile"
)

var (
	positiveWords = []string{"高", "好", "强", "顺利", "成功", "有效", "适合", "喜欢"}
	negativeWords = []string{"低", "差", "弱", "困难", "失败", "疲劳", "累", "避免"}
)

// PersonalAdjustment folds the user's rules matching the moment `at` into a
// single signed delta, scaled by the personalization weight percentage.
// Rules whose context does not cover the hour contribute nothing; no
// matching rules means a zero adjustment.
func PersonalAdjustment(rules []profile.PersonalRule, weight int, at time.Time) float64 {
	if len(rules) == 0 || weight <= 0 {
		return 0
	}

	var total float64
	for _, rule := range rules {
		if !ruleApplies(rule.Context, at) {
			continue
		}
		impact := rule.Impact
		if impact <= 0 {
			impact = 1
		}
		count := rule.Count
		if count <= 0 {
			count = 1
		}
		magnitude := float64(impact * count)

		switch rule.Type {
		case profile.RulePreference:
			total += magnitude
		case profile.RuleAvoidance:
			total -= magnitude
		case profile.RuleObservation:
			if observationPositive(rule.Description) {
				total += magnitude * 0.5
			} else {
				total -= magnitude * 0.5
			}
		}
	}

	return total * float64(weight) / 100
}

func ruleApplies(ctx profile.RuleContext, at time.Time) bool {
	h := at.Hour()
	switch ctx {
	case profile.ContextAlways:
		return true
	case profile.ContextMorning:
		return h >= 6 && h <= 12
	case profile.ContextAfternoon:
		return h >= 13 && h <= 17
	case profile.ContextEvening:
		return h >= 18 && h <= 21
	case profile.ContextNight:
		return h >= 22 || h <= 5
	case profile.ContextWorkday:
		return h >= 9 && h <= 18
	case profile.ContextWeekend:
		// Weekend rules apply all day; the hour grid has no weekday axis.
		return true
	default:
		return false
	}
}

// observationPositive classifies a free-text observation by keyword
// presence. Only a purely negative text reads as negative; mixed sentiment
// and texts with no sentiment words lean positive.
func observationPositive(desc string) bool {
	hasPositive := containsAny(desc, positiveWords)
	hasNegative := containsAny(desc, negativeWords)
	return hasPositive || !hasNegative
}

func containsAny(text string, words []string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}
