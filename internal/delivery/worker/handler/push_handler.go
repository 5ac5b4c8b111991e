package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"apikit/config"
	deliverycontext "apikit/internal/delivery/context"
	"apikit/internal/domain/constants"
	"apikit/internal/domain/entity"
	"apikit/internal/domain/service"
	"apikit/internal/errors"
	"apikit/internal/infra/pubsub"
	"apikit/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// ErrMalformedJob marks a queued payload that can never be delivered.
var ErrMalformedJob = errors.New("malformed mail job")

// MailHandler delivers dequeued mail jobs. It is shared by the Pub/Sub push
// endpoint and the RabbitMQ consumer.
type MailHandler struct {
	mail   usecase.MailUsecase
	logger *slog.Logger
}

// MailHandlerParams holds dependencies for MailHandler, injected by Fx
type MailHandlerParams struct {
	fx.In

	Mail   usecase.MailUsecase
	Logger *slog.Logger
}

// NewMailHandler creates a new MailHandler
func NewMailHandler(params MailHandlerParams) *MailHandler {
	return &MailHandler{mail: params.Mail, logger: params.Logger}
}

// Process decodes body into a MailJob and sends it. Decoding failures wrap
// ErrMalformedJob; send failures worth retrying wrap service.ErrTemporaryDelivery.
func (h *MailHandler) Process(ctx context.Context, body []byte, requestID string) error {
	var job entity.MailJob
	if err := json.Unmarshal(body, &job); err != nil {
		return errors.Wrap(errors.Join(ErrMalformedJob, err), "decode mail job")
	}
	if job.To == "" {
		return errors.Wrap(ErrMalformedJob, "mail job has no recipient")
	}

	// Priority: transport attribute > job field > existing context > new id
	requestID = deliverycontext.ResolveRequestID(requestID, job.RequestID, deliverycontext.GetRequestIDFromContext(ctx))
	ctx, reqLogger := deliverycontext.WithRequestScope(ctx, h.logger, requestID)

	if err := h.mail.Deliver(ctx, &job); err != nil {
		reqLogger.Error("[Worker] Failed to deliver mail",
			slog.String("subject", job.Subject),
			slog.Any("error", err),
			slog.Bool("retryable", IsRetryable(err)),
		)

		return errors.WithStack(err)
	}

	reqLogger.Info("[Worker] Mail delivered", slog.String("subject", job.Subject))

	return nil
}

// IsRetryable reports whether a failed job should be redelivered.
func IsRetryable(err error) bool {
	return errors.Is(err, service.ErrTemporaryDelivery)
}

// PushHandler handles Pub/Sub push messages carrying mail jobs
type PushHandler struct {
	verifyPushAuth bool
	mail           *MailHandler
	logger         *slog.Logger
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	Mail   *MailHandler
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Google signs push requests; the local publisher does not
	verifyPushAuth := params.Config.MailQueue != nil &&
		params.Config.MailQueue.Provider == constants.MailQueueProviderGoogle &&
		!params.Config.IsDevelopment()

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		mail:           params.Mail,
		logger:         params.Logger,
	}
}

// HandlePush handles incoming Pub/Sub push messages. Retryable failures answer
// 503 so Pub/Sub redelivers; everything else is acknowledged with 200.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	if h.verifyPushAuth {
		if err := verifyPubSubToken(c.Request()); err != nil {
			logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg pubsub.PushMessage
	if err := c.Bind(&pushMsg); err != nil {
		logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	err = h.mail.Process(ctx, data, pushMsg.Message.Attributes["request_id"])
	switch {
	case err == nil:
		return c.NoContent(http.StatusOK)
	case errors.Is(err, ErrMalformedJob):
		logger.Error("[Worker] Dropping malformed mail job",
			slog.String("message_id", pushMsg.Message.MessageID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusBadRequest)
	case IsRetryable(err):
		return c.NoContent(http.StatusServiceUnavailable)
	default:
		return c.NoContent(http.StatusOK)
	}
}

// verifyPubSubToken verifies the OIDC token Google attaches to push requests.
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	token, ok := strings.CutPrefix(authHeader, bearerPrefix)
	if !ok {
		return errors.New("invalid authorization header format")
	}

	// The audience is the push endpoint URL
	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	payload, err := idtoken.Validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
