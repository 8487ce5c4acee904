package kafka

import (
	"context"
	"errors"
	"strings"
	"time"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

type MessageHandler interface {
	Handle(ctx context.Context, msg kafkago.Message) error
}

type Reader interface {
	Config() kafkago.ReaderConfig
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

type Consumer struct {
	handler MessageHandler
	reader  Reader
	logger  *zap.Logger

	workers int
	jobs    chan jobItem
}

type jobItem struct {
	msg    kafkago.Message
	result chan error
}

func NewConsumer(handler MessageHandler, reader Reader, logger *zap.Logger, workers int) *Consumer {
	if workers < 1 {
		workers = 1
	}
	return &Consumer{
		handler: handler,
		reader:  reader,
		logger:  logger,
		workers: workers,
		jobs:    make(chan jobItem, workers*2),
	}
}

// Start runs the fetch/commit loop until ctx is done. Each message is
// handed to a worker and the loop waits for the result before committing,
// so offsets commit in fetch order.
func (c *Consumer) Start(ctx context.Context) {
	rc := c.reader.Config()
	c.logger.Info("starting kafka consumer",
		zap.Strings("brokers", rc.Brokers),
		zap.String("group", rc.GroupID),
		zap.String("topic", rc.Topic),
	)

	for i := 0; i < c.workers; i++ {
		go c.worker(ctx)
	}

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return
			}
			if isBenignFetchTimeout(err) {
				sleepWithContext(ctx, 10*time.Second)
				continue
			}
			// Temporary errors during rebalance: back off and keep going.
			c.logger.Warn("fetch error, backing off", zap.Error(err))
			sleepWithContext(ctx, 500*time.Millisecond)
			continue
		}

		done := make(chan error, 1)
		select {
		case c.jobs <- jobItem{msg: msg, result: done}:
		case <-ctx.Done():
			return
		}

		var procErr error
		select {
		case procErr = <-done:
		case <-ctx.Done():
			return
		}

		if procErr != nil {
			c.logger.Error("handler failed; message will not be committed",
				zap.Error(procErr),
				zap.String("topic", msg.Topic),
				zap.Int("partition", msg.Partition),
				zap.Int64("offset", msg.Offset),
			)
			sleepWithContext(ctx, 200*time.Millisecond)
			continue
		}

		if err := c.reader.CommitMessages(ctx, msg); err != nil {
			c.logger.Warn("commit failed",
				zap.Error(err),
				zap.String("topic", msg.Topic),
				zap.Int("partition", msg.Partition),
				zap.Int64("offset", msg.Offset),
			)
			sleepWithContext(ctx, 200*time.Millisecond)
		}
	}
}

func (c *Consumer) worker(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case it := <-c.jobs:
			if it.result == nil {
				continue
			}
			it.result <- c.handler.Handle(ctx, it.msg)
		}
	}
}

func sleepWithContext(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}

func isBenignFetchTimeout(err error) bool {
	s := err.Error()
	return strings.Contains(s, "Request Timed Out") ||
		strings.Contains(s, "no messages received from kafka within the allocated time")
}
