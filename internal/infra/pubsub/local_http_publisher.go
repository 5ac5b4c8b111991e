package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"apikit/internal/domain/constants"
	"apikit/internal/domain/entity"
	"apikit/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/segmentio/ksuid"
)

// localHTTPPublisher posts Pub/Sub-shaped push messages straight to the mail worker,
// standing in for Pub/Sub during development
type localHTTPPublisher struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// PushMessage mirrors the body Google Pub/Sub sends to push endpoints
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// NewLocalHTTPPublisher creates a publisher that pushes to endpoint
func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.MailPublisher {
	return &localHTTPPublisher{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     logger,
	}
}

func (p *localHTTPPublisher) Publish(ctx context.Context, job *entity.MailJob) error {
	data, err := json.Marshal(job)
	if err != nil {
		return errors.WithStack(err)
	}

	pushMsg := PushMessage{Subscription: "projects/local/subscriptions/mail-sub"}
	pushMsg.Message.Data = base64.StdEncoding.EncodeToString(data)
	pushMsg.Message.MessageID = ksuid.New().String()
	pushMsg.Message.PublishTime = time.Now().UTC().Format(time.RFC3339)
	pushMsg.Message.Attributes = map[string]string{"kind": "mail"}
	if job.RequestID != "" {
		pushMsg.Message.Attributes["request_id"] = job.RequestID
	}

	body, err := json.Marshal(pushMsg)
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if job.RequestID != "" {
		req.Header.Set(constants.HeaderRequestID, job.RequestID)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.Errorf("worker returned non-success status: %d", resp.StatusCode)
	}

	p.logger.Info("[LocalPubSub] Mail job pushed",
		slog.String("endpoint", p.endpoint),
		slog.String("message_id", pushMsg.Message.MessageID),
	)

	return nil
}

func (p *localHTTPPublisher) Close() error {
	return nil
}
