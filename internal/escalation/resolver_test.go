package escalation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/aliskhannn/overdue-reminder/internal/model"
)

var schedule = model.EscalationSchedule{First: 1, Second: 7, Third: 14, Final: 30}

func TestResolve(t *testing.T) {
	cases := []struct {
		days int
		want model.Tier
	}{
		{days: 0, want: model.TierFirst},
		{days: 1, want: model.TierFirst},
		{days: 6, want: model.TierFirst},
		{days: 7, want: model.TierSecond},
		{days: 13, want: model.TierSecond},
		{days: 14, want: model.TierThird},
		{days: 29, want: model.TierThird},
		{days: 30, want: model.TierFinal},
		{days: 36, want: model.TierFinal},
		{days: 400, want: model.TierFinal},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, Resolve(tc.days, schedule), "days %d", tc.days)
	}
}

func TestResolve_Monotonic(t *testing.T) {
	prev := Resolve(0, schedule)
	for d := 1; d <= 200; d++ {
		cur := Resolve(d, schedule)
		assert.GreaterOrEqual(t, cur, prev, "days %d", d)
		prev = cur
	}
}

func TestResolve_NeverReachesManualTiers(t *testing.T) {
	for d := 0; d <= 1000; d += 50 {
		tier := Resolve(d, schedule)
		assert.NotEqual(t, model.TierCollection, tier)
		assert.NotEqual(t, model.TierLegal, tier)
	}
}

func TestDaysOverdue(t *testing.T) {
	due := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 0, DaysOverdue(due, due.Add(-time.Hour)))
	assert.Equal(t, 0, DaysOverdue(due, due))
	assert.Equal(t, 0, DaysOverdue(due, due.Add(23*time.Hour)))
	assert.Equal(t, 1, DaysOverdue(due, due.Add(24*time.Hour)))
	assert.Equal(t, 10, DaysOverdue(due, due.Add(10*24*time.Hour+5*time.Hour)))
}

func TestEffectiveDaysOverdue(t *testing.T) {
	assert.Equal(t, 6, EffectiveDaysOverdue(10, 4))
	assert.Equal(t, 36, EffectiveDaysOverdue(40, 4))
	assert.Equal(t, 0, EffectiveDaysOverdue(4, 4))
	assert.Equal(t, 0, EffectiveDaysOverdue(2, 4))
}

func TestScenario_GraceThenTier(t *testing.T) {
	grace := 4

	assert.Equal(t, model.TierFirst, Resolve(EffectiveDaysOverdue(10, grace), schedule))
	assert.Equal(t, model.TierFinal, Resolve(EffectiveDaysOverdue(40, grace), schedule))
}
