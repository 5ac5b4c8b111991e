package worker

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"apikit/internal/delivery/worker/handler"
	"apikit/internal/domain/service"
	"apikit/internal/errors"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
)

type recordingAck struct {
	acked    bool
	nacked   bool
	requeued bool
}

func (a *recordingAck) Ack(uint64, bool) error {
	a.acked = true

	return nil
}

func (a *recordingAck) Nack(_ uint64, _ bool, requeue bool) error {
	a.nacked = true
	a.requeued = requeue

	return nil
}

func (a *recordingAck) Reject(_ uint64, requeue bool) error {
	return a.Nack(0, false, requeue)
}

type stubProcessor struct {
	err       error
	requestID string
}

func (p *stubProcessor) Process(_ context.Context, _ []byte, requestID string) error {
	p.requestID = requestID

	return p.err
}

func TestRabbitConsumer_Handle(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		wantAck      bool
		wantRequeued bool
	}{
		{name: "delivered", wantAck: true},
		{name: "temporary failure", err: errors.Wrap(service.ErrTemporaryDelivery, "send"), wantRequeued: true},
		{name: "malformed job", err: errors.Wrap(handler.ErrMalformedJob, "decode")},
		{name: "permanent failure", err: errors.New("550")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ack := &recordingAck{}
			jobs := &stubProcessor{err: tt.err}
			r := &rabbitConsumer{jobs: jobs, logger: slog.New(slog.NewTextHandler(io.Discard, nil))}

			r.handle(context.Background(), amqp.Delivery{Acknowledger: ack, Body: []byte(`{}`), CorrelationId: "req-9"})

			assert.Equal(t, "req-9", jobs.requestID)
			assert.Equal(t, tt.wantAck, ack.acked)
			assert.Equal(t, !tt.wantAck, ack.nacked)
			assert.Equal(t, tt.wantRequeued, ack.requeued)
		})
	}
}

func TestSleep_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.False(t, sleep(ctx, 1<<40))
}
