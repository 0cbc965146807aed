package worker

import (
	"context"
	"sync"

	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/overdue-reminder/internal/rabbitmq/queue"
)

//go:generate mockgen -source=processor.go -destination=../mocks/worker/processor_mock.go -package=mocks

type runConsumer interface {
	Consume(ctx context.Context, out chan<- queue.RunRequest, strategy retry.Strategy) error
}

type messageHandler interface {
	HandleMessage(ctx context.Context, msg queue.RunRequest, strategy retry.Strategy)
}

// Processor executes queued run requests on a pool of workers.
type Processor struct {
	queue   runConsumer
	handler messageHandler
}

func NewProcessor(q runConsumer, h messageHandler) *Processor {
	return &Processor{
		queue:   q,
		handler: h,
	}
}

// Run blocks until ctx is done and every worker has returned.
func (p *Processor) Run(ctx context.Context, strategy retry.Strategy, workerCount int) {
	if workerCount < 1 {
		workerCount = 1
	}

	var wg sync.WaitGroup
	msgChan := make(chan queue.RunRequest, workerCount*10)

	go func() {
		if err := p.queue.Consume(ctx, msgChan, strategy); err != nil {
			zlog.Logger.Error().Err(err).Msg("failed to consume run requests")
		}
	}()

	wg.Add(workerCount)
	for i := 0; i < workerCount; i++ {
		go func(id int) {
			defer wg.Done()

			zlog.Logger.Printf("worker-%d started", id)

			for {
				select {
				case <-ctx.Done():
					zlog.Logger.Printf("worker-%d shutting down", id)
					return
				case msg, ok := <-msgChan:
					if !ok {
						zlog.Logger.Printf("worker-%d channel closed, shutting down", id)
						return
					}

					p.handler.HandleMessage(ctx, msg, strategy)
				}
			}
		}(i)
	}

	<-ctx.Done()
	wg.Wait()
	zlog.Logger.Print("processor stopped")
}
