package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/rabbitmq"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"
)

const (
	ExchangeName   = "reminder-exchange"
	MainQueueName  = "reminder-runs"
	RetryQueueName = "reminder-runs-retry"
	DLQName        = "reminder-runs-dlq"
	RoutingKey     = "reminder.run"
)

// RunRequest asks a worker to run the reminder pipeline. A nil UserID means a
// scheduled run over every user.
type RunRequest struct {
	ID          uuid.UUID  `json:"id"`
	UserID      *uuid.UUID `json:"user_id,omitempty"`
	RequestedAt time.Time  `json:"requested_at"`
}

// NewRunRequest creates a request for userID, or a scheduled run when userID is nil.
func NewRunRequest(userID *uuid.UUID) RunRequest {
	return RunRequest{ID: uuid.New(), UserID: userID, RequestedAt: time.Now().UTC()}
}

// Scheduled reports whether the request covers all users.
func (r RunRequest) Scheduled() bool {
	return r.UserID == nil
}

// RunQueue publishes and consumes run requests.
type RunQueue struct {
	Publisher *rabbitmq.Publisher
	Consumer  *rabbitmq.Consumer
}

// RetryDelay is how long a rejected run request waits before it is redelivered.
const RetryDelay = 5 * time.Second

// runQueue describes one queue of the run-request topology.
type runQueue struct {
	name       string
	deadLetter string        // queue that receives rejected or expired messages
	ttl        time.Duration // message TTL, zero for none
}

func (q runQueue) args() map[string]interface{} {
	if q.deadLetter == "" {
		return nil
	}

	args := map[string]interface{}{
		"x-dead-letter-exchange":    "",
		"x-dead-letter-routing-key": q.deadLetter,
	}
	if q.ttl > 0 {
		args["x-message-ttl"] = int32(q.ttl / time.Millisecond)
	}

	return args
}

// topology lists the run queues in declaration order. Failed runs wait in the
// retry queue for RetryDelay and go back to the main queue; rejected ones end in the DLQ.
func topology() []runQueue {
	return []runQueue{
		{name: DLQName},
		{name: RetryQueueName, deadLetter: MainQueueName, ttl: RetryDelay},
		{name: MainQueueName, deadLetter: DLQName},
	}
}

// NewRunQueue declares the run-request exchange and queues and binds the main
// queue to RoutingKey.
func NewRunQueue(ch *rabbitmq.Channel) (*RunQueue, error) {
	exchange := rabbitmq.NewExchange(ExchangeName, "direct")
	if err := exchange.BindToChannel(ch); err != nil {
		return nil, fmt.Errorf("declare run exchange: %w", err)
	}

	qm := rabbitmq.NewQueueManager(ch)

	for _, q := range topology() {
		if _, err := qm.DeclareQueue(q.name, rabbitmq.QueueConfig{Durable: true, Args: q.args()}); err != nil {
			return nil, fmt.Errorf("declare queue %s: %w", q.name, err)
		}
	}

	if err := ch.QueueBind(MainQueueName, RoutingKey, exchange.Name(), false, nil); err != nil {
		return nil, fmt.Errorf("bind %s to %s: %w", MainQueueName, exchange.Name(), err)
	}

	return &RunQueue{
		Publisher: rabbitmq.NewPublisher(ch, exchange.Name()),
		Consumer:  rabbitmq.NewConsumer(ch, rabbitmq.NewConsumerConfig(MainQueueName)),
	}, nil
}

// Publish sends msg to the run exchange.
func (q *RunQueue) Publish(msg RunRequest, strategy retry.Strategy) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal run request: %w", err)
	}

	return q.Publisher.PublishWithRetry(body, RoutingKey, "application/json", strategy)
}

// Consume decodes run requests into out until ctx is done or the consumer stops.
func (q *RunQueue) Consume(ctx context.Context, out chan<- RunRequest, strategy retry.Strategy) error {
	msgChan := make(chan []byte)

	go forward(ctx, msgChan, out)

	return q.Consumer.ConsumeWithRetry(msgChan, strategy)
}

func forward(ctx context.Context, in <-chan []byte, out chan<- RunRequest) {
	for {
		select {
		case <-ctx.Done():
			return
		case m, ok := <-in:
			if !ok {
				return
			}

			var msg RunRequest
			if err := json.Unmarshal(m, &msg); err != nil {
				zlog.Logger.Error().Err(err).Msg("failed to unmarshal run request")
				continue
			}

			select {
			case out <- msg:
			case <-ctx.Done():
				return
			}
		}
	}
}
