// Package mail delivers email over SMTP.
package mail

import (
	"context"
	"log/slog"

	"apikit/config"
	"apikit/internal/domain/entity"
	"apikit/internal/domain/service"
	"apikit/internal/errors"

	gomail "github.com/wneessen/go-mail"
)

// smtpSender implements MailSender with go-mail
type smtpSender struct {
	from   string
	opts   []gomail.Option
	host   string
	logger *slog.Logger
}

// NewSMTPSender builds a MailSender from the email section.
// It returns nil when no SMTP host is configured.
func NewSMTPSender(cfg *config.Config, logger *slog.Logger) (service.MailSender, error) {
	ec := cfg.Email
	if ec == nil || ec.SMTP.Host == "" {
		logger.Warn("SMTP is not configured, mail cannot be delivered")

		return nil, nil
	}
	if ec.From == "" {
		return nil, errors.New("email.from is required")
	}

	return &smtpSender{
		from:   ec.From,
		opts:   clientOptions(ec.SMTP),
		host:   ec.SMTP.Host,
		logger: logger,
	}, nil
}

func clientOptions(smtp config.SMTPConfig) []gomail.Option {
	opts := []gomail.Option{gomail.WithTLSPortPolicy(gomail.TLSOpportunistic)}
	if smtp.TLS {
		opts = []gomail.Option{gomail.WithTLSPortPolicy(gomail.TLSMandatory)}
	}
	if smtp.Port > 0 {
		opts = append(opts, gomail.WithPort(smtp.Port))
	}
	if smtp.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(smtp.Username),
			gomail.WithPassword(smtp.Password),
		)
	}

	return opts
}

func (s *smtpSender) Send(ctx context.Context, job *entity.MailJob) error {
	msg, err := s.buildMessage(job)
	if err != nil {
		return err
	}

	client, err := gomail.NewClient(s.host, s.opts...)
	if err != nil {
		return errors.Wrap(err, "create smtp client")
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		var sendErr *gomail.SendError
		if errors.As(err, &sendErr) && sendErr.IsTemp() {
			return errors.Wrap(errors.Join(service.ErrTemporaryDelivery, err), "send mail")
		}

		return errors.Wrap(err, "send mail")
	}

	s.logger.Info("Mail sent",
		slog.String("to", job.To),
		slog.String("subject", job.Subject),
	)

	return nil
}

func (s *smtpSender) buildMessage(job *entity.MailJob) (*gomail.Msg, error) {
	msg := gomail.NewMsg()
	if err := msg.From(s.from); err != nil {
		return nil, errors.Wrap(err, "invalid sender address")
	}
	if err := msg.To(job.To); err != nil {
		return nil, errors.Wrap(err, "invalid recipient address")
	}
	msg.Subject(job.Subject)
	msg.SetBodyString(gomail.TypeTextPlain, job.Text)
	if job.HTML != "" {
		msg.AddAlternativeString(gomail.TypeTextHTML, job.HTML)
	}

	return msg, nil
}
