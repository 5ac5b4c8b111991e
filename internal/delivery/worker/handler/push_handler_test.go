package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"apikit/config"
	deliverycontext "apikit/internal/delivery/context"
	"apikit/internal/domain/constants"
	"apikit/internal/domain/entity"
	"apikit/internal/domain/service"
	"apikit/internal/errors"
	"apikit/internal/infra/pubsub"
	mockUsecase "apikit/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func pushBody(t *testing.T, data string, attrs map[string]string) string {
	t.Helper()

	var msg pubsub.PushMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString([]byte(data))
	msg.Message.MessageID = "m-1"
	msg.Message.Attributes = attrs
	msg.Subscription = "projects/local/subscriptions/mail-sub"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func newPushHandler(t *testing.T, mail *mockUsecase.MockMailUsecase) *PushHandler {
	t.Helper()

	cfg := &config.Config{}
	cfg.Env.Env = config.EnvDevelopment
	cfg.MailQueue = &config.MailQueueConfig{Provider: constants.MailQueueProviderLocal}

	return NewPushHandler(PushHandlerParams{
		Config: cfg,
		Logger: newDiscardLogger(),
		Mail:   NewMailHandler(MailHandlerParams{Mail: mail, Logger: newDiscardLogger()}),
	})
}

func TestPushHandler_HandlePush(t *testing.T) {
	job := `{"request_id":"from-job","to":"jane@example.com","subject":"Reset password","text":"hi"}`

	tests := []struct {
		name       string
		body       func(t *testing.T) string
		setup      func(mail *mockUsecase.MockMailUsecase)
		wantStatus int
	}{
		{
			name: "delivered",
			body: func(t *testing.T) string { return pushBody(t, job, map[string]string{"request_id": "from-attr"}) },
			setup: func(mail *mockUsecase.MockMailUsecase) {
				mail.EXPECT().
					Deliver(mock.MatchedBy(func(ctx context.Context) bool {
						return deliverycontext.GetRequestIDFromContext(ctx) == "from-attr"
					}), mock.MatchedBy(func(j *entity.MailJob) bool { return j.To == "jane@example.com" })).
					Return(nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "temporary failure asks for redelivery",
			body: func(t *testing.T) string { return pushBody(t, job, nil) },
			setup: func(mail *mockUsecase.MockMailUsecase) {
				mail.EXPECT().
					Deliver(mock.Anything, mock.Anything).
					Return(errors.Wrap(errors.Join(service.ErrTemporaryDelivery, errors.New("421")), "send mail"))
			},
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name: "permanent failure is acknowledged",
			body: func(t *testing.T) string { return pushBody(t, job, nil) },
			setup: func(mail *mockUsecase.MockMailUsecase) {
				mail.EXPECT().Deliver(mock.Anything, mock.Anything).Return(errors.New("550 mailbox unavailable"))
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "data is not base64",
			body:       func(*testing.T) string { return `{"message":{"data":"%%%"}}` },
			setup:      func(*mockUsecase.MockMailUsecase) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "job is not json",
			body:       func(t *testing.T) string { return pushBody(t, "not json", nil) },
			setup:      func(*mockUsecase.MockMailUsecase) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "job without recipient",
			body:       func(t *testing.T) string { return pushBody(t, `{"subject":"x"}`, nil) },
			setup:      func(*mockUsecase.MockMailUsecase) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mail := mockUsecase.NewMockMailUsecase(t)
			tt.setup(mail)
			h := newPushHandler(t, mail)

			e := echo.New()
			req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(tt.body(t)))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()

			require.NoError(t, h.HandlePush(e.NewContext(req, rec)))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestPushHandler_RequiresTokenForGoogleOutsideDevelopment(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Env = config.EnvProduction
	cfg.MailQueue = &config.MailQueueConfig{Provider: constants.MailQueueProviderGoogle}

	h := NewPushHandler(PushHandlerParams{
		Config: cfg,
		Logger: newDiscardLogger(),
		Mail:   NewMailHandler(MailHandlerParams{Mail: mockUsecase.NewMockMailUsecase(t), Logger: newDiscardLogger()}),
	})

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()

	require.NoError(t, h.HandlePush(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMailHandler_Process_RequestIDFallsBackToJob(t *testing.T) {
	mail := mockUsecase.NewMockMailUsecase(t)
	h := NewMailHandler(MailHandlerParams{Mail: mail, Logger: newDiscardLogger()})

	mail.EXPECT().
		Deliver(mock.MatchedBy(func(ctx context.Context) bool {
			return deliverycontext.GetRequestIDFromContext(ctx) == "from-job"
		}), mock.Anything).
		Return(nil)

	require.NoError(t, h.Process(context.Background(), []byte(`{"request_id":"from-job","to":"a@b.c"}`), ""))
}
