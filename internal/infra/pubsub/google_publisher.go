package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"apikit/internal/domain/entity"
	"apikit/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

// googlePubSubPublisher implements MailPublisher using Google Cloud Pub/Sub
type googlePubSubPublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	logger    *slog.Logger
}

// NewGooglePubSubPublisher connects to projectID and checks that topicID exists
func NewGooglePubSubPublisher(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.MailPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	topicPath := fmt.Sprintf("projects/%s/topics/%s", projectID, topicID)
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: topicPath}); err != nil {
		client.Close()

		return nil, errors.Wrapf(err, "failed to get topic %s", topicID)
	}

	return &googlePubSubPublisher{
		client:    client,
		publisher: client.Publisher(topicID),
		logger:    logger,
	}, nil
}

func (p *googlePubSubPublisher) Publish(ctx context.Context, job *entity.MailJob) error {
	data, err := json.Marshal(job)
	if err != nil {
		return errors.WithStack(err)
	}

	attributes := map[string]string{"kind": "mail"}
	if job.RequestID != "" {
		attributes["request_id"] = job.RequestID
	}

	serverID, err := p.publisher.Publish(ctx, &pubsub.Message{
		Data:       data,
		Attributes: attributes,
	}).Get(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	p.logger.Info("[GooglePubSub] Mail job published",
		slog.String("subject", job.Subject),
		slog.String("server_id", serverID),
	)

	return nil
}

// Close stops the publisher and releases client resources
func (p *googlePubSubPublisher) Close() error {
	if p.publisher != nil {
		p.publisher.Stop()
	}
	if p.client != nil {
		return errors.WithStack(p.client.Close())
	}

	return nil
}
