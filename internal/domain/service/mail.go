package service

import (
	"context"

	"apikit/internal/domain/entity"
	"apikit/internal/errors"
)

// MailSender delivers an email immediately.
type MailSender interface {
	Send(ctx context.Context, job *entity.MailJob) error
}

// MailPublisher hands a mail job to whatever delivers it, either inline or through a queue.
type MailPublisher interface {
	// Publish enqueues job for delivery
	Publish(ctx context.Context, job *entity.MailJob) error

	// Close releases any resources held by the publisher
	Close() error
}

// ErrTemporaryDelivery marks a delivery failure worth retrying.
var ErrTemporaryDelivery = errors.New("temporary mail delivery failure")
