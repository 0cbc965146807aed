package run

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/overdue-reminder/internal/model"
	"github.com/aliskhannn/overdue-reminder/internal/rabbitmq/queue"
	"github.com/aliskhannn/overdue-reminder/internal/repository/preferences"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/rabbitmq/handlers/run/mock.go -package=mocks
type reminderService interface {
	RunScheduled(ctx context.Context) (model.RunReport, error)
	ProcessUser(ctx context.Context, userID uuid.UUID) (model.RunReport, error)
}

type Handler struct {
	service reminderService
}

func NewHandler(svc reminderService) *Handler {
	return &Handler{
		service: svc,
	}
}

// HandleMessage executes one queued run. Runs are retried as a whole; lendings
// already reminded are skipped on the next attempt.
func (h *Handler) HandleMessage(ctx context.Context, msg queue.RunRequest, strategy retry.Strategy) {
	zlog.Logger.Info().Msgf("Handle Message: got run request %s", msg.ID)

	var report model.RunReport

	err := retry.Do(func() error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		var err error
		if msg.Scheduled() {
			report, err = h.service.RunScheduled(ctx)
			return err
		}

		report, err = h.service.ProcessUser(ctx, *msg.UserID)
		if errors.Is(err, preferences.ErrUserNotFound) {
			zlog.Logger.Warn().Str("user_id", msg.UserID.String()).Msg("run requested for unknown user")
			return nil
		}

		return err
	}, strategy)

	if err != nil {
		zlog.Logger.Error().Err(err).Msgf("Handle Message: run %s failed", msg.ID)
		return
	}

	zlog.Logger.Info().
		Str("run_id", msg.ID.String()).
		Int("processed", report.Processed).
		Int("sent", report.Sent()).
		Int("errors", len(report.Errors)).
		Msg("Handle Message: run finished")
}
