package worker

import (
	"context"
	"log/slog"
	"time"

	"apikit/config"
	"apikit/internal/delivery"
	"apikit/internal/delivery/worker/handler"
	"apikit/internal/domain/constants"
	"apikit/internal/errors"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/fx"
)

const (
	consumerPrefetch  = 10
	initialBackoff    = time.Second
	maxBackoff        = 30 * time.Second
	reconnectCooldown = 2 * time.Second
)

var errDeliveriesEnded = errors.New("deliveries channel closed")

// jobProcessor is satisfied by handler.MailHandler.
type jobProcessor interface {
	Process(ctx context.Context, body []byte, requestID string) error
}

// rabbitConsumer reads mail jobs from a durable queue. Messages are acked
// after delivery, requeued on temporary failures and dropped otherwise.
type rabbitConsumer struct {
	url    string
	queue  string
	jobs   jobProcessor
	logger *slog.Logger
	dial   func(url string) (*amqp.Connection, error)
}

// ConsumerParams holds dependencies for the queue consumers
type ConsumerParams struct {
	fx.In

	Cfg    *config.Config
	Logger *slog.Logger
	Mail   *handler.MailHandler
}

// NewConsumers returns the queue consumers the configured mail queue needs.
// Only RabbitMQ is pulled; the other providers push to the HTTP server.
func NewConsumers(params ConsumerParams) ([]delivery.Delivery, error) {
	cfg := params.Cfg.MailQueue
	if cfg == nil || cfg.Provider != constants.MailQueueProviderRabbitMQ {
		return nil, nil
	}
	if cfg.RabbitMQURL == "" || cfg.Queue == "" {
		return nil, errors.New("rabbitmq url and queue are required for rabbitmq provider")
	}

	return []delivery.Delivery{&rabbitConsumer{
		url:    cfg.RabbitMQURL,
		queue:  cfg.Queue,
		jobs:   params.Mail,
		logger: params.Logger.With(slog.String("queue", cfg.Queue)),
		dial:   amqp.Dial,
	}}, nil
}

// Serve consumes until ctx is cancelled, reconnecting with exponential backoff.
func (r *rabbitConsumer) Serve(ctx context.Context) error {
	r.logger.Info("Starting RabbitMQ consumer")

	backoff := initialBackoff
	for {
		conn, err := r.dial(r.url)
		if err != nil {
			r.logger.Warn("Failed to dial broker", slog.Any("error", err), slog.Duration("retry_in", backoff))
			if !sleep(ctx, backoff) {
				return nil
			}
			backoff = min(backoff*2, maxBackoff)

			continue
		}
		backoff = initialBackoff

		err = r.consume(ctx, conn)
		_ = conn.Close()
		if ctx.Err() != nil {
			return nil
		}
		r.logger.Warn("Consume loop ended, reconnecting", slog.Any("error", err))
		if !sleep(ctx, reconnectCooldown) {
			return nil
		}
	}
}

func (r *rabbitConsumer) consume(ctx context.Context, conn *amqp.Connection) error {
	ch, err := conn.Channel()
	if err != nil {
		return errors.Wrap(err, "open channel")
	}
	defer ch.Close()

	if err := ch.Qos(consumerPrefetch, 0, false); err != nil {
		r.logger.Warn("Failed to set QoS", slog.Any("error", err))
	}

	if _, err := ch.QueueDeclare(r.queue, true, false, false, false, nil); err != nil {
		return errors.Wrapf(err, "declare queue %s", r.queue)
	}

	msgs, err := ch.ConsumeWithContext(ctx, r.queue, "", false, false, false, false, nil)
	if err != nil {
		return errors.Wrap(err, "consume")
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-msgs:
			if !ok {
				return errors.WithStack(errDeliveriesEnded)
			}
			r.handle(ctx, d)
		}
	}
}

func (r *rabbitConsumer) handle(ctx context.Context, d amqp.Delivery) {
	err := r.jobs.Process(ctx, d.Body, d.CorrelationId)

	var ackErr error
	switch {
	case err == nil:
		ackErr = d.Ack(false)
	case handler.IsRetryable(err):
		ackErr = d.Nack(false, true)
	default:
		r.logger.Error("Dropping mail job", slog.Any("error", err))
		ackErr = d.Nack(false, false)
	}

	if ackErr != nil {
		r.logger.Error("Failed to settle delivery", slog.Any("error", ackErr))
	}
}

// sleep waits for d or until ctx is done, reporting whether the wait completed.
func sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
