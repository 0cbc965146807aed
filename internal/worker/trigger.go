package worker

import (
	"context"
	"time"

	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/overdue-reminder/internal/rabbitmq/queue"
)

//go:generate mockgen -source=trigger.go -destination=../mocks/worker/trigger_mock.go -package=mocks

type runPublisher interface {
	Publish(msg queue.RunRequest, strategy retry.Strategy) error
}

// Trigger enqueues a scheduled run on every tick.
type Trigger struct {
	publisher runPublisher
	interval  time.Duration
}

func NewTrigger(p runPublisher, interval time.Duration) *Trigger {
	if interval <= 0 {
		interval = time.Hour
	}

	return &Trigger{publisher: p, interval: interval}
}

// Run publishes one request immediately and then one per interval until ctx is done.
func (t *Trigger) Run(ctx context.Context, strategy retry.Strategy) {
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	t.fire(strategy)

	for {
		select {
		case <-ctx.Done():
			zlog.Logger.Print("trigger stopped")
			return
		case <-ticker.C:
			t.fire(strategy)
		}
	}
}

func (t *Trigger) fire(strategy retry.Strategy) {
	msg := queue.NewRunRequest(nil)
	if err := t.publisher.Publish(msg, strategy); err != nil {
		zlog.Logger.Error().Err(err).Str("run_id", msg.ID.String()).Msg("failed to publish scheduled run")
		return
	}

	zlog.Logger.Printf("scheduled run %s queued", msg.ID)
}
