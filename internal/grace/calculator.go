// Package grace computes the effective grace period of a lending: the number of
// days after the due date during which no reminder is sent.
//
// The base period comes from the user's settings (or the plan default) and is then
// adjusted, in a fixed order, for borrower risk, lender loyalty, season, weekend due
// dates and the lent amount. Every adjustment is itemized in the result so the
// reminder text can explain it.
package grace

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/overdue-reminder/internal/model"
)

//go:generate mockgen -source=calculator.go -destination=../mocks/grace/mock.go -package=mocks

// RiskAssessor decides whether a borrower should get a shortened grace period.
type RiskAssessor interface {
	IsHighRisk(ctx context.Context, lending model.Lending) (bool, error)
}

// NoRisk treats every borrower as low risk.
type NoRisk struct{}

func (NoRisk) IsHighRisk(context.Context, model.Lending) (bool, error) {
	return false, nil
}

type repaymentCounter interface {
	CountRepaidByUser(ctx context.Context, userID uuid.UUID) (int, error)
}

const (
	LoyaltyThreshold = 10  // repaid lendings needed for the loyalty bonus
	LoyaltyBonus     = 2   // days
	WeekendBonus     = 1   // days
	RiskFactor       = 0.5 // multiplier applied to high-risk borrowers
)

// Adjustment kinds, in application order.
const (
	KindRisk     = "risk"
	KindLoyalty  = "loyalty"
	KindSeasonal = "seasonal"
	KindWeekend  = "weekend"
	KindAmount   = "amount"
)

var seasonalDays = map[time.Month]int{
	time.December: 3,
	time.January:  1,
	time.April:    2,
	time.June:     1,
	time.October:  1,
}

type amountBracket struct {
	max  decimal.Decimal
	days int
}

// Brackets are ascending; amounts above the last one fall into the open bracket.
var amountBrackets = []amountBracket{
	{max: decimal.NewFromInt(5000), days: 1},
	{max: decimal.NewFromInt(25000), days: 0},
	{max: decimal.NewFromInt(100000), days: -1},
}

const openBracketDays = -2

// Options switches individual adjustments on or off. Their order is fixed.
type Options struct {
	Risk     bool
	Loyalty  bool
	Seasonal bool
	Weekend  bool
	Amount   bool
}

// AllAdjustments enables every adjustment.
func AllAdjustments() Options {
	return Options{Risk: true, Loyalty: true, Seasonal: true, Weekend: true, Amount: true}
}

// Calculator computes effective grace periods.
type Calculator struct {
	risk       RiskAssessor
	repayments repaymentCounter
	opts       Options
	now        func() time.Time
}

// NewCalculator creates a Calculator. A nil risk assessor means NoRisk.
func NewCalculator(risk RiskAssessor, repayments repaymentCounter, opts Options) *Calculator {
	if risk == nil {
		risk = NoRisk{}
	}

	return &Calculator{
		risk:       risk,
		repayments: repayments,
		opts:       opts,
		now:        time.Now,
	}
}

// Calculate returns the effective grace period for lending owned by user.
// It never fails: lookup errors disable the corresponding adjustment.
func (c *Calculator) Calculate(ctx context.Context, lending model.Lending, user model.User) model.GraceResult {
	base := user.Preferences().GracePeriod(lending.Type)
	res := model.GraceResult{Base: base, Adjustments: []model.Adjustment{}}
	days := base

	if c.opts.Risk && c.isHighRisk(ctx, lending) {
		reduced := int(math.Round(float64(days) * RiskFactor))
		res.Adjustments = append(res.Adjustments, model.Adjustment{
			Kind:   KindRisk,
			Days:   reduced - days,
			Reason: "high-risk borrower",
		})
		days = reduced
	}

	if c.opts.Loyalty && c.isLoyal(ctx, user.ID) {
		days += LoyaltyBonus
		res.Adjustments = append(res.Adjustments, model.Adjustment{
			Kind:   KindLoyalty,
			Days:   LoyaltyBonus,
			Reason: fmt.Sprintf("%d or more lendings repaid", LoyaltyThreshold),
		})
	}

	if c.opts.Seasonal {
		month := c.now().UTC().Month()
		if d := SeasonalAdjustment(month); d != 0 {
			days += d
			res.Adjustments = append(res.Adjustments, model.Adjustment{
				Kind:   KindSeasonal,
				Days:   d,
				Reason: "seasonal adjustment for " + month.String(),
			})
		}
	}

	if c.opts.Weekend && IsWeekend(lending.ExpectedReturnDate) {
		days += WeekendBonus
		res.Adjustments = append(res.Adjustments, model.Adjustment{
			Kind:   KindWeekend,
			Days:   WeekendBonus,
			Reason: "due date falls on " + lending.ExpectedReturnDate.Weekday().String(),
		})
	}

	if c.opts.Amount {
		if d := AmountAdjustment(lending.Amount); d != 0 {
			days += d
			res.Adjustments = append(res.Adjustments, model.Adjustment{
				Kind:   KindAmount,
				Days:   d,
				Reason: "amount " + lending.Amount.String(),
			})
		}
	}

	if days < 0 {
		days = 0
	}
	res.Effective = days

	return res
}

func (c *Calculator) isHighRisk(ctx context.Context, lending model.Lending) bool {
	high, err := c.risk.IsHighRisk(ctx, lending)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("lending_id", lending.ID.String()).Msg("failed to assess borrower risk")
		return false
	}

	return high
}

func (c *Calculator) isLoyal(ctx context.Context, userID uuid.UUID) bool {
	if c.repayments == nil {
		return false
	}

	n, err := c.repayments.CountRepaidByUser(ctx, userID)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("user_id", userID.String()).Msg("failed to count repaid lendings")
		return false
	}

	return n >= LoyaltyThreshold
}

// SeasonalAdjustment returns the extra grace days granted during month.
func SeasonalAdjustment(month time.Month) int {
	return seasonalDays[month]
}

// IsWeekend reports whether t falls on Saturday or Sunday.
func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// AmountAdjustment returns the grace delta of the first bracket whose upper bound
// is greater than or equal to amount.
func AmountAdjustment(amount decimal.Decimal) int {
	for _, b := range amountBrackets {
		if amount.LessThanOrEqual(b.max) {
			return b.days
		}
	}

	return openBracketDays
}
