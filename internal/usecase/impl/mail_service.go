package impl

import (
	"bytes"
	"context"
	htmltemplate "html/template"
	"log/slog"
	"net/url"
	"strings"
	texttemplate "text/template"

	"apikit/config"
	deliverycontext "apikit/internal/delivery/context"
	"apikit/internal/domain/entity"
	"apikit/internal/domain/service"
	"apikit/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	resetPasswordSubject = "Reset password"
	verifyEmailSubject   = "Email Verification"
)

var (
	resetPasswordText = texttemplate.Must(texttemplate.New("reset-password").Parse(
		"Dear user,\n\nTo reset your password, click on this link: {{.URL}}\n\n" +
			"If you did not request any password resets, then ignore this email.\n"))
	resetPasswordHTML = htmltemplate.Must(htmltemplate.New("reset-password").Parse(
		`<p>Dear user,</p>` +
			`<p>To reset your password, click on this link: <a href="{{.URL}}">{{.URL}}</a></p>` +
			`<p>If you did not request any password resets, then ignore this email.</p>`))

	verifyEmailText = texttemplate.Must(texttemplate.New("verify-email").Parse(
		"Dear user,\n\nTo verify your email, click on this link: {{.URL}}\n\n" +
			"If you did not create an account, then ignore this email.\n"))
	verifyEmailHTML = htmltemplate.Must(htmltemplate.New("verify-email").Parse(
		`<p>Dear user,</p>` +
			`<p>To verify your email, click on this link: <a href="{{.URL}}">{{.URL}}</a></p>` +
			`<p>If you did not create an account, then ignore this email.</p>`))
)

type mailTemplateData struct {
	Email string
	URL   string
}

// mailService implements the MailUsecase interface.
type mailService struct {
	publisher   service.MailPublisher
	sender      service.MailSender
	frontendURL string
	logger      *slog.Logger
}

// MailServiceParams holds dependencies for MailService, injected by Fx.
type MailServiceParams struct {
	fx.In

	Publisher service.MailPublisher `optional:"true"`
	Sender    service.MailSender    `optional:"true"`
	Config    *config.Config
	Logger    *slog.Logger
}

// NewMailService is the constructor for mailService.
func NewMailService(params MailServiceParams) usecase.MailUsecase {
	return &mailService{
		publisher:   params.Publisher,
		sender:      params.Sender,
		frontendURL: strings.TrimRight(params.Config.Frontend.URL, "/"),
		logger:      params.Logger,
	}
}

func (srv *mailService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SendEmail queues one email. Without a publisher the email is dropped with a warning.
func (srv *mailService) SendEmail(ctx context.Context, to, subject, text, html string) error {
	job := &entity.MailJob{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		To:        to,
		Subject:   subject,
		Text:      text,
		HTML:      html,
	}

	if srv.publisher == nil {
		srv.log(ctx).Warn("Mail delivery is not configured, dropping email", slog.String("subject", subject))

		return nil
	}

	if err := srv.publisher.Publish(ctx, job); err != nil {
		return errors.Wrap(err, "failed to publish mail job")
	}

	srv.log(ctx).Debug("Mail job published", slog.String("subject", subject))

	return nil
}

// SendResetPasswordEmail sends the link to the reset-password page.
func (srv *mailService) SendResetPasswordEmail(ctx context.Context, to, token string) error {
	data := mailTemplateData{Email: to, URL: srv.link("/reset-password", token)}

	return srv.sendTemplate(ctx, to, resetPasswordSubject, resetPasswordText, resetPasswordHTML, data)
}

// SendVerificationEmail sends the link to the verify-email page.
func (srv *mailService) SendVerificationEmail(ctx context.Context, to, token string) error {
	data := mailTemplateData{Email: to, URL: srv.link("/verify-email", token)}

	return srv.sendTemplate(ctx, to, verifyEmailSubject, verifyEmailText, verifyEmailHTML, data)
}

// Deliver sends a dequeued job.
func (srv *mailService) Deliver(ctx context.Context, job *entity.MailJob) error {
	if srv.sender == nil {
		return errors.New("mail sender is not configured")
	}

	if err := srv.sender.Send(ctx, job); err != nil {
		return errors.Wrap(err, "failed to deliver mail job")
	}

	srv.log(ctx).Info("Mail delivered", slog.String("subject", job.Subject), slog.String("job_request_id", job.RequestID))

	return nil
}

func (srv *mailService) link(path, token string) string {
	return srv.frontendURL + path + "?token=" + url.QueryEscape(token)
}

func (srv *mailService) sendTemplate(
	ctx context.Context,
	to, subject string,
	text *texttemplate.Template,
	html *htmltemplate.Template,
	data mailTemplateData,
) error {
	var textBody, htmlBody bytes.Buffer
	if err := text.Execute(&textBody, data); err != nil {
		return errors.Wrap(err, "failed to render text body")
	}
	if err := html.Execute(&htmlBody, data); err != nil {
		return errors.Wrap(err, "failed to render html body")
	}

	return srv.SendEmail(ctx, to, subject, textBody.String(), htmlBody.String())
}
