// Package reminder runs the overdue reminder pipeline.
//
// For every candidate lending the steps run in a fixed order: grace period,
// escalation tier, contact window, idempotency, dispatch. Any step may skip the
// lending without error. Failures are isolated per lending and collected in the
// run report.
package reminder

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/overdue-reminder/internal/dispatch"
	"github.com/aliskhannn/overdue-reminder/internal/escalation"
	"github.com/aliskhannn/overdue-reminder/internal/metrics"
	"github.com/aliskhannn/overdue-reminder/internal/model"
	"github.com/aliskhannn/overdue-reminder/internal/repository/lending"
	"github.com/aliskhannn/overdue-reminder/internal/schedule"
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/reminder/mock.go -package=mocks

type lendingRepository interface {
	FindOverdueByUser(ctx context.Context, userID uuid.UUID, now time.Time) ([]model.Lending, error)
	FindByID(ctx context.Context, userID, id uuid.UUID) (model.Lending, error)
	MarkOverdue(ctx context.Context, id uuid.UUID) error
}

type userRepository interface {
	GetUser(ctx context.Context, id uuid.UUID) (model.User, error)
	ListEnabledUserIDs(ctx context.Context) ([]uuid.UUID, error)
}

type graceCalculator interface {
	Calculate(ctx context.Context, lending model.Lending, user model.User) model.GraceResult
}

type reminderGuard interface {
	AlreadySent(ctx context.Context, userID, lendingID uuid.UUID, tier model.Tier) (bool, error)
	Acquire(ctx context.Context, lendingID uuid.UUID, tier model.Tier) (string, bool, error)
	Release(ctx context.Context, lendingID uuid.UUID, tier model.Tier, token string)
}

type responseRepository interface {
	ResponseStats(ctx context.Context, userID uuid.UUID) ([]model.ResponseStat, error)
}

type reminderDispatcher interface {
	Dispatch(ctx context.Context, req model.DispatchRequest) (model.ReminderHistory, error)
	ConfirmDelivery(ctx context.Context, historyID uuid.UUID, ch model.Channel, at time.Time) (model.ReminderHistory, error)
}

// Run modes, used as metric labels.
const (
	ModeScheduled = "scheduled"
	ModeUser      = "user"
)

// Service orchestrates reminder runs.
type Service struct {
	lendings   lendingRepository
	users      userRepository
	grace      graceCalculator
	scheduler  *schedule.Scheduler
	guard      reminderGuard
	dispatcher reminderDispatcher
	responses  responseRepository
}

// NewService creates a reminder Service.
func NewService(
	lendings lendingRepository,
	users userRepository,
	grace graceCalculator,
	scheduler *schedule.Scheduler,
	guard reminderGuard,
	dispatcher reminderDispatcher,
	responses responseRepository,
) *Service {
	return &Service{
		lendings:   lendings,
		users:      users,
		grace:      grace,
		scheduler:  scheduler,
		guard:      guard,
		dispatcher: dispatcher,
		responses:  responses,
	}
}

// RunScheduled sends every reminder that is due now, across all users with reminders enabled.
// A cancelled context stops the run between lendings; the partial report is returned
// together with the context error.
func (s *Service) RunScheduled(ctx context.Context) (model.RunReport, error) {
	started := time.Now()
	report := model.NewRunReport()
	defer func() { metrics.RunFinished(ModeScheduled, report, started) }()

	ids, err := s.users.ListEnabledUserIDs(ctx)
	if err != nil {
		return report, fmt.Errorf("list users: %w", err)
	}

	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		user, err := s.users.GetUser(ctx, id)
		if err != nil {
			report.Errors = append(report.Errors, itemError(id, uuid.Nil, fmt.Errorf("get user: %w", err)))
			continue
		}

		if err := s.processUser(ctx, ModeScheduled, user, &report); err != nil {
			if ctx.Err() != nil {
				return report, ctx.Err()
			}

			report.Errors = append(report.Errors, itemError(id, uuid.Nil, err))
		}
	}

	return report, nil
}

// ProcessUser runs the pipeline immediately for one user's overdue lendings.
// The current tier of each lending is sent if the contact window allows it.
func (s *Service) ProcessUser(ctx context.Context, userID uuid.UUID) (model.RunReport, error) {
	started := time.Now()
	report := model.NewRunReport()
	defer func() { metrics.RunFinished(ModeUser, report, started) }()

	user, err := s.users.GetUser(ctx, userID)
	if err != nil {
		return report, fmt.Errorf("get user: %w", err)
	}

	if err := s.processUser(ctx, ModeUser, user, &report); err != nil {
		return report, err
	}

	return report, nil
}

// Schedule projects the reminder plan of one lending.
func (s *Service) Schedule(ctx context.Context, userID, lendingID uuid.UUID) (model.LendingSchedule, error) {
	user, err := s.users.GetUser(ctx, userID)
	if err != nil {
		return model.LendingSchedule{}, fmt.Errorf("get user: %w", err)
	}

	l, err := s.lendings.FindByID(ctx, userID, lendingID)
	if err != nil {
		return model.LendingSchedule{}, fmt.Errorf("get lending: %w", err)
	}

	grace := s.grace.Calculate(ctx, l, user)
	raw := escalation.DaysOverdue(l.ExpectedReturnDate, s.scheduler.Now())

	return model.LendingSchedule{
		LendingID:   l.ID,
		DaysOverdue: escalation.EffectiveDaysOverdue(raw, grace.Effective),
		Grace:       grace,
		Reminders:   s.scheduler.CalculateSchedule(l, user.Preferences(), grace.Effective),
	}, nil
}

// ConfirmDelivery records a provider delivery receipt.
func (s *Service) ConfirmDelivery(ctx context.Context, historyID uuid.UUID, ch model.Channel, at time.Time) (model.ReminderHistory, error) {
	return s.dispatcher.ConfirmDelivery(ctx, historyID, ch, at)
}

// Stats returns how the user responded to reminders, grouped by tier notification type.
func (s *Service) Stats(ctx context.Context, userID uuid.UUID) ([]model.ResponseStat, error) {
	stats, err := s.responses.ResponseStats(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("response stats: %w", err)
	}

	return stats, nil
}

// processUser returns an error only if the user's lendings could not be listed or
// the context was cancelled.
func (s *Service) processUser(ctx context.Context, mode string, user model.User, report *model.RunReport) error {
	prefs := user.Preferences()
	if !prefs.Enabled {
		return nil
	}

	now := s.scheduler.Now()

	lendings, err := s.lendings.FindOverdueByUser(ctx, user.ID, now)
	if err != nil {
		return fmt.Errorf("find overdue lendings: %w", err)
	}

	for _, l := range lendings {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := s.processLending(ctx, mode, user, prefs, l, now, report); err != nil {
			zlog.Logger.Error().Err(err).
				Str("user_id", user.ID.String()).
				Str("lending_id", l.ID.String()).
				Msg("failed to process lending")
			report.Errors = append(report.Errors, itemError(user.ID, l.ID, err))
		}
	}

	return nil
}

func (s *Service) processLending(
	ctx context.Context,
	mode string,
	user model.User,
	prefs model.Preferences,
	l model.Lending,
	now time.Time,
	report *model.RunReport,
) error {
	if !l.Status.Remindable() {
		return nil
	}
	report.Processed++

	grace := s.grace.Calculate(ctx, l, user)
	days := escalation.EffectiveDaysOverdue(escalation.DaysOverdue(l.ExpectedReturnDate, now), grace.Effective)
	if days <= 0 {
		report.SkippedGrace++
		metrics.Skipped(metrics.SkipGrace)
		return nil
	}

	if l.Status == model.LendingPending {
		if err := s.lendings.MarkOverdue(ctx, l.ID); err != nil && !errors.Is(err, lending.ErrLendingNotPending) {
			return fmt.Errorf("mark overdue: %w", err)
		}
		l.Status = model.LendingOverdue
	}

	if !s.scheduler.InWindow(now, prefs.ContactWindow) {
		report.OutsideWindow++
		metrics.Skipped(metrics.SkipOutsideWindow)
		return nil
	}

	req := model.DispatchRequest{
		User:        user,
		Preferences: prefs,
		Lending:     l,
		DaysOverdue: days,
		Grace:       grace,
	}

	if mode == ModeUser {
		req.Tier = escalation.Resolve(days, prefs.Escalation)
		return s.deliver(ctx, req, report)
	}

	for _, sr := range s.scheduler.CalculateSchedule(l, prefs, grace.Effective) {
		if !s.scheduler.ShouldSendNow(prefs, sr.SendAt, false) {
			continue
		}

		req.Tier = sr.Tier
		if err := s.deliver(ctx, req, report); err != nil {
			return err
		}
	}

	return nil
}

func (s *Service) deliver(ctx context.Context, req model.DispatchRequest, report *model.RunReport) error {
	sent, err := s.guard.AlreadySent(ctx, req.User.ID, req.Lending.ID, req.Tier)
	if err != nil {
		return err
	}
	if sent {
		report.AlreadySent++
		metrics.Skipped(metrics.SkipAlreadySent)
		return nil
	}

	token, ok, err := s.guard.Acquire(ctx, req.Lending.ID, req.Tier)
	if err != nil {
		return err
	}
	if !ok {
		report.AlreadySent++
		metrics.Skipped(metrics.SkipLeaseHeld)
		return nil
	}
	defer s.guard.Release(context.WithoutCancel(ctx), req.Lending.ID, req.Tier, token)

	// Another run may have sent the tier between the first check and the lease.
	sent, err = s.guard.AlreadySent(ctx, req.User.ID, req.Lending.ID, req.Tier)
	if err != nil {
		return err
	}
	if sent {
		report.AlreadySent++
		metrics.Skipped(metrics.SkipAlreadySent)
		return nil
	}

	h, err := s.dispatcher.Dispatch(ctx, req)
	if err != nil {
		if errors.Is(err, dispatch.ErrAlreadyRecorded) {
			report.AlreadySent++
			metrics.Skipped(metrics.SkipAlreadySent)
			return nil
		}

		return fmt.Errorf("dispatch %s reminder: %w", req.Tier, err)
	}

	if h.Status == model.HistorySent {
		report.SentByTier[req.Tier]++
	} else {
		report.Failed++
	}

	return nil
}

func itemError(userID, lendingID uuid.UUID, err error) model.ItemError {
	return model.ItemError{UserID: userID, LendingID: lendingID, Message: err.Error()}
}
