// Package escalation maps days overdue to a reminder tier.
package escalation

import (
	"time"

	"github.com/aliskhannn/overdue-reminder/internal/model"
)

const day = 24 * time.Hour

// DaysOverdue returns the number of whole days elapsed since due, never negative.
func DaysOverdue(due, now time.Time) int {
	if !now.After(due) {
		return 0
	}

	return int(now.Sub(due) / day)
}

// EffectiveDaysOverdue subtracts the grace period from the raw days overdue.
func EffectiveDaysOverdue(raw, grace int) int {
	if d := raw - grace; d > 0 {
		return d
	}

	return 0
}

// Resolve returns the highest automatic tier whose threshold has been reached.
// When none is reached it falls back to the first tier; callers only resolve
// lendings that are already past grace.
func Resolve(effectiveDays int, s model.EscalationSchedule) model.Tier {
	switch {
	case effectiveDays >= s.Final:
		return model.TierFinal
	case effectiveDays >= s.Third:
		return model.TierThird
	case effectiveDays >= s.Second:
		return model.TierSecond
	default:
		return model.TierFirst
	}
}
