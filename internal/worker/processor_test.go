package worker

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"

	mocks "github.com/aliskhannn/overdue-reminder/internal/mocks/worker"
	"github.com/aliskhannn/overdue-reminder/internal/rabbitmq/queue"
)

func TestProcessor_Run_HandleMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockConsumer := mocks.NewMockrunConsumer(ctrl)
	mockHandler := mocks.NewMockmessageHandler(ctrl)

	p := NewProcessor(mockConsumer, mockHandler)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	strategy := retry.Strategy{Attempts: 1, Delay: time.Millisecond}

	userID := uuid.New()
	msg := queue.NewRunRequest(&userID)

	mockConsumer.EXPECT().Consume(gomock.Any(), gomock.Any(), strategy).DoAndReturn(
		func(_ context.Context, out chan<- queue.RunRequest, _ retry.Strategy) error {
			out <- msg
			return nil
		},
	)

	mockHandler.EXPECT().HandleMessage(gomock.Any(), msg, strategy)

	go p.Run(ctx, strategy, 1)

	time.Sleep(50 * time.Millisecond)
	cancel()
	time.Sleep(50 * time.Millisecond)
}

func TestProcessor_Run_SpreadsAcrossWorkers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockConsumer := mocks.NewMockrunConsumer(ctrl)
	mockHandler := mocks.NewMockmessageHandler(ctrl)

	p := NewProcessor(mockConsumer, mockHandler)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	strategy := retry.Strategy{Attempts: 1, Delay: time.Millisecond}

	mockConsumer.EXPECT().Consume(gomock.Any(), gomock.Any(), strategy).DoAndReturn(
		func(_ context.Context, out chan<- queue.RunRequest, _ retry.Strategy) error {
			for i := 0; i < 3; i++ {
				out <- queue.NewRunRequest(nil)
			}
			return nil
		},
	)

	mockHandler.EXPECT().HandleMessage(gomock.Any(), gomock.Any(), strategy).Times(3)

	go p.Run(ctx, strategy, 2)

	time.Sleep(50 * time.Millisecond)
	cancel()
	time.Sleep(50 * time.Millisecond)
}

func TestProcessor_Run_StopsOnCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockConsumer := mocks.NewMockrunConsumer(ctrl)
	mockHandler := mocks.NewMockmessageHandler(ctrl)

	p := NewProcessor(mockConsumer, mockHandler)

	ctx, cancel := context.WithCancel(context.Background())
	strategy := retry.Strategy{}

	mockConsumer.EXPECT().Consume(gomock.Any(), gomock.Any(), strategy).Return(nil)

	done := make(chan struct{})
	go func() {
		p.Run(ctx, strategy, 2)
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("processor did not stop")
	}
}
