package usecase

import (
	"context"

	"apikit/internal/domain/entity"
)

// MailUsecase renders account emails and hands them to the mail queue.
type MailUsecase interface {
	SendEmail(ctx context.Context, to, subject, text, html string) error
	SendResetPasswordEmail(ctx context.Context, to, token string) error
	SendVerificationEmail(ctx context.Context, to, token string) error

	// Deliver sends a dequeued job. Used by the mail worker.
	Deliver(ctx context.Context, job *entity.MailJob) error
}
