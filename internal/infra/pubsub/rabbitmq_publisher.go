package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"apikit/internal/domain/entity"
	"apikit/internal/domain/service"

	"github.com/pkg/errors"
	amqp "github.com/rabbitmq/amqp091-go"
)

// rabbitMQPublisher implements MailPublisher on a durable AMQP queue
type rabbitMQPublisher struct {
	mu    sync.Mutex
	conn  *amqp.Connection
	ch    *amqp.Channel
	queue string

	logger *slog.Logger
}

// NewRabbitMQPublisher dials url and declares queue as durable
func NewRabbitMQPublisher(url, queue string, logger *slog.Logger) (service.MailPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, errors.Wrap(err, "dial rabbitmq")
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()

		return nil, errors.Wrap(err, "open rabbitmq channel")
	}

	if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()

		return nil, errors.Wrapf(err, "declare queue %s", queue)
	}

	return &rabbitMQPublisher{
		conn:   conn,
		ch:     ch,
		queue:  queue,
		logger: logger,
	}, nil
}

func (p *rabbitMQPublisher) Publish(ctx context.Context, job *entity.MailJob) error {
	body, err := json.Marshal(job)
	if err != nil {
		return errors.WithStack(err)
	}

	msg := amqp.Publishing{
		ContentType:   "application/json",
		DeliveryMode:  amqp.Persistent,
		Body:          body,
		CorrelationId: job.RequestID,
	}

	// amqp channels are not safe for concurrent publishing
	p.mu.Lock()
	err = p.ch.PublishWithContext(ctx, "", p.queue, false, false, msg)
	p.mu.Unlock()
	if err != nil {
		return errors.Wrap(err, "publish mail job")
	}

	p.logger.Info("[RabbitMQ] Mail job published",
		slog.String("queue", p.queue),
		slog.String("subject", job.Subject),
	)

	return nil
}

func (p *rabbitMQPublisher) Close() error {
	var errs []error
	if p.ch != nil {
		errs = append(errs, p.ch.Close())
	}
	if p.conn != nil {
		errs = append(errs, p.conn.Close())
	}

	for _, err := range errs {
		if err != nil && !errors.Is(err, amqp.ErrClosed) {
			return errors.WithStack(err)
		}
	}

	return nil
}
