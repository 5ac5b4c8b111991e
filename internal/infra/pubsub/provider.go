package pubsub

import (
	"context"
	"log/slog"

	"apikit/config"
	"apikit/internal/domain/constants"
	"apikit/internal/domain/entity"
	"apikit/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// inlinePublisher delivers mail synchronously when no queue is configured
type inlinePublisher struct {
	sender service.MailSender
	logger *slog.Logger
}

func (p *inlinePublisher) Publish(ctx context.Context, job *entity.MailJob) error {
	p.logger.Debug("[InlineMail] Sending without queue",
		slog.String("to", job.To),
		slog.String("subject", job.Subject),
	)

	return p.sender.Send(ctx, job)
}

func (p *inlinePublisher) Close() error {
	return nil
}

// PublisherParams holds dependencies for MailPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
	Sender service.MailSender `optional:"true"`
}

// NewMailPublisher creates a MailPublisher based on the mailQueue section
func NewMailPublisher(params PublisherParams) (service.MailPublisher, error) {
	cfg := params.Config.MailQueue
	logger := params.Logger

	if cfg == nil || cfg.Provider == constants.MailQueueProviderInline {
		if params.Sender == nil {
			logger.Warn("Neither a mail queue nor SMTP is configured, outgoing mail is dropped")

			return nil, nil
		}
		logger.Info("Mail queue not configured, sending mail inline")

		return &inlinePublisher{sender: params.Sender, logger: logger}, nil
	}

	var publisher service.MailPublisher
	var err error

	switch cfg.Provider {
	case constants.MailQueueProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("local endpoint is required for local provider")
		}
		logger.Info("Using local HTTP publisher for mail jobs",
			slog.String("endpoint", cfg.LocalEndpoint),
		)

		publisher = NewLocalHTTPPublisher(cfg.LocalEndpoint, logger)

	case constants.MailQueueProviderGoogle:
		if cfg.ProjectID == "" {
			return nil, errors.New("project ID is required for google provider")
		}
		if cfg.TopicID == "" {
			return nil, errors.New("topic ID is required for google provider")
		}
		logger.Info("Using Google Pub/Sub publisher for mail jobs",
			slog.String("project_id", cfg.ProjectID),
			slog.String("topic_id", cfg.TopicID),
		)

		publisher, err = NewGooglePubSubPublisher(params.Ctx, cfg.ProjectID, cfg.TopicID, logger)
		if err != nil {
			return nil, err
		}

	case constants.MailQueueProviderRabbitMQ:
		if cfg.RabbitMQURL == "" || cfg.Queue == "" {
			return nil, errors.New("rabbitmq url and queue are required for rabbitmq provider")
		}
		logger.Info("Using RabbitMQ publisher for mail jobs",
			slog.String("queue", cfg.Queue),
		)

		publisher, err = NewRabbitMQPublisher(cfg.RabbitMQURL, cfg.Queue, logger)
		if err != nil {
			return nil, err
		}

	default:
		return nil, errors.Errorf("unknown mail queue provider: %s", cfg.Provider)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing MailPublisher")

			return publisher.Close()
		},
	})

	return publisher, nil
}

// Module provides the mail queue FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewMailPublisher),
)
