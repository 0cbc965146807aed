package grace

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mocks "github.com/aliskhannn/overdue-reminder/internal/mocks/grace"
	"github.com/aliskhannn/overdue-reminder/internal/model"
)

var (
	march     = time.Date(2025, time.March, 12, 10, 0, 0, 0, time.UTC)
	wednesday = time.Date(2025, time.March, 5, 0, 0, 0, 0, time.UTC)
	saturday  = time.Date(2025, time.March, 8, 0, 0, 0, 0, time.UTC)
)

func newCalculator(t *testing.T, risk RiskAssessor, repaid int, repaidErr error, now time.Time) *Calculator {
	ctrl := gomock.NewController(t)
	counter := mocks.NewMockrepaymentCounter(ctrl)
	counter.EXPECT().CountRepaidByUser(gomock.Any(), gomock.Any()).Return(repaid, repaidErr).AnyTimes()

	c := NewCalculator(risk, counter, AllAdjustments())
	c.now = func() time.Time { return now }

	return c
}

func lending(amount int64, due time.Time) model.Lending {
	return model.Lending{
		ID:                 uuid.New(),
		UserID:             uuid.New(),
		Amount:             decimal.NewFromInt(amount),
		BorrowerName:       "Bob",
		Type:               model.LendingNonEmergency,
		Status:             model.LendingPending,
		ExpectedReturnDate: due,
	}
}

func basicUser() model.User {
	return model.User{ID: uuid.New(), Plan: model.PlanBasic}
}

func TestCalculate_BaseWithSmallAmount(t *testing.T) {
	c := newCalculator(t, nil, 0, nil, march)

	res := c.Calculate(context.Background(), lending(3000, wednesday), basicUser())

	assert.Equal(t, 3, res.Base)
	assert.Equal(t, 4, res.Effective)
	require.Len(t, res.Adjustments, 1)
	assert.Equal(t, KindAmount, res.Adjustments[0].Kind)
	assert.Equal(t, 1, res.Adjustments[0].Days)
}

func TestCalculate_EmergencyUsesEmergencyGrace(t *testing.T) {
	c := newCalculator(t, nil, 0, nil, march)
	l := lending(10000, wednesday)
	l.Type = model.LendingEmergency

	res := c.Calculate(context.Background(), l, basicUser())

	assert.Equal(t, 1, res.Base)
	assert.Equal(t, 1, res.Effective)
}

func TestCalculate_PlanDefaults(t *testing.T) {
	c := newCalculator(t, nil, 0, nil, march)
	user := basicUser()
	user.Plan = model.PlanEnterprise

	res := c.Calculate(context.Background(), lending(10000, wednesday), user)

	assert.Equal(t, 7, res.Base)
	assert.Equal(t, 7, res.Effective)
}

func TestCalculate_ConfiguredGraceOverridesDefault(t *testing.T) {
	c := newCalculator(t, nil, 0, nil, march)
	user := basicUser()
	ten := 10
	user.Settings.GracePeriods = &model.GracePeriodUpdate{NonEmergency: &ten}

	res := c.Calculate(context.Background(), lending(10000, wednesday), user)

	assert.Equal(t, 10, res.Base)
	assert.Equal(t, 10, res.Effective)
}

func TestCalculate_HighRiskHalvesRunningValue(t *testing.T) {
	ctrl := gomock.NewController(t)
	risk := mocks.NewMockRiskAssessor(ctrl)
	risk.EXPECT().IsHighRisk(gomock.Any(), gomock.Any()).Return(true, nil)

	c := newCalculator(t, risk, 0, nil, march)

	res := c.Calculate(context.Background(), lending(30000, wednesday), basicUser())

	// round(3 * 0.5) = 2, then amount bracket -1
	assert.Equal(t, 1, res.Effective)
	require.Len(t, res.Adjustments, 2)
	assert.Equal(t, KindRisk, res.Adjustments[0].Kind)
	assert.Equal(t, -1, res.Adjustments[0].Days)
}

func TestCalculate_RiskErrorIsIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	risk := mocks.NewMockRiskAssessor(ctrl)
	risk.EXPECT().IsHighRisk(gomock.Any(), gomock.Any()).Return(true, errors.New("scoring down"))

	c := newCalculator(t, risk, 0, nil, march)

	res := c.Calculate(context.Background(), lending(10000, wednesday), basicUser())

	assert.Equal(t, 3, res.Effective)
}

func TestCalculate_LoyaltyBonus(t *testing.T) {
	c := newCalculator(t, nil, LoyaltyThreshold, nil, march)

	res := c.Calculate(context.Background(), lending(10000, wednesday), basicUser())

	assert.Equal(t, 5, res.Effective)
	require.Len(t, res.Adjustments, 1)
	assert.Equal(t, KindLoyalty, res.Adjustments[0].Kind)
}

func TestCalculate_LoyaltyBelowThreshold(t *testing.T) {
	c := newCalculator(t, nil, LoyaltyThreshold-1, nil, march)

	res := c.Calculate(context.Background(), lending(10000, wednesday), basicUser())

	assert.Equal(t, 3, res.Effective)
}

func TestCalculate_LoyaltyLookupErrorIsIgnored(t *testing.T) {
	c := newCalculator(t, nil, 50, errors.New("db down"), march)

	res := c.Calculate(context.Background(), lending(10000, wednesday), basicUser())

	assert.Equal(t, 3, res.Effective)
}

func TestCalculate_SeasonalUsesCurrentMonth(t *testing.T) {
	december := time.Date(2025, time.December, 2, 12, 0, 0, 0, time.UTC)
	c := newCalculator(t, nil, 0, nil, december)

	// due date in March must not matter, only the clock does
	res := c.Calculate(context.Background(), lending(10000, wednesday), basicUser())

	assert.Equal(t, 6, res.Effective)
	require.Len(t, res.Adjustments, 1)
	assert.Equal(t, KindSeasonal, res.Adjustments[0].Kind)
	assert.Equal(t, 3, res.Adjustments[0].Days)
}

func TestCalculate_WeekendDueDate(t *testing.T) {
	c := newCalculator(t, nil, 0, nil, march)

	res := c.Calculate(context.Background(), lending(10000, saturday), basicUser())

	assert.Equal(t, 4, res.Effective)
	require.Len(t, res.Adjustments, 1)
	assert.Equal(t, KindWeekend, res.Adjustments[0].Kind)
}

func TestCalculate_ClampsAtZero(t *testing.T) {
	c := newCalculator(t, nil, 0, nil, march)
	user := basicUser()
	zero := 0
	user.Settings.GracePeriods = &model.GracePeriodUpdate{NonEmergency: &zero}

	res := c.Calculate(context.Background(), lending(500000, wednesday), user)

	assert.Equal(t, 0, res.Effective)
}

func TestCalculate_DisabledAdjustments(t *testing.T) {
	c := newCalculator(t, nil, 20, nil, march)
	c.opts = Options{}

	res := c.Calculate(context.Background(), lending(1000, saturday), basicUser())

	assert.Equal(t, 3, res.Effective)
	assert.Empty(t, res.Adjustments)
}

func TestCalculate_NeverNegative(t *testing.T) {
	months := []time.Time{march, time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC)}
	amounts := []int64{0, 5000, 5001, 25000, 100000, 100001, 10000000}
	dues := []time.Time{wednesday, saturday}

	for _, now := range months {
		for _, amount := range amounts {
			for _, due := range dues {
				for base := 0; base <= 30; base += 5 {
					ctrl := gomock.NewController(t)
					risk := mocks.NewMockRiskAssessor(ctrl)
					risk.EXPECT().IsHighRisk(gomock.Any(), gomock.Any()).Return(true, nil).AnyTimes()

					c := newCalculator(t, risk, 0, nil, now)
					user := basicUser()
					b := base
					user.Settings.GracePeriods = &model.GracePeriodUpdate{NonEmergency: &b}

					res := c.Calculate(context.Background(), lending(amount, due), user)
					assert.GreaterOrEqual(t, res.Effective, 0)
				}
			}
		}
	}
}

func TestAmountAdjustment(t *testing.T) {
	cases := []struct {
		amount int64
		want   int
	}{
		{amount: 0, want: 1},
		{amount: 5000, want: 1},
		{amount: 5001, want: 0},
		{amount: 25000, want: 0},
		{amount: 25001, want: -1},
		{amount: 100000, want: -1},
		{amount: 100001, want: -2},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, AmountAdjustment(decimal.NewFromInt(tc.amount)), "amount %d", tc.amount)
	}
}

func TestSeasonalAdjustment(t *testing.T) {
	assert.Equal(t, 3, SeasonalAdjustment(time.December))
	assert.Equal(t, 1, SeasonalAdjustment(time.January))
	assert.Equal(t, 2, SeasonalAdjustment(time.April))
	assert.Equal(t, 1, SeasonalAdjustment(time.June))
	assert.Equal(t, 1, SeasonalAdjustment(time.October))
	assert.Equal(t, 0, SeasonalAdjustment(time.March))
	assert.Equal(t, 0, SeasonalAdjustment(time.August))
}
