package email

import (
	"context"
	"fmt"
	"html/template"
	"strings"

	"github.com/wneessen/go-mail"

	"github.com/UmerAzizGujjar/portfolio/internal/application/service"
	"github.com/UmerAzizGujjar/portfolio/internal/config"
	"github.com/UmerAzizGujjar/portfolio/internal/domain/contact"
)

const htmlBody = `
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h1 style="font-size: 24px;">New Contact Message</h1>
  <p style="color: #666; font-size: 14px;">FROM</p>
  <p style="font-size: 18px; font-weight: bold;">{{.Name}}</p>
  <p style="color: #666; font-size: 14px;">EMAIL</p>
  <p><a href="mailto:{{.Email}}">{{.Email}}</a></p>
  <p style="color: #666; font-size: 14px;">MESSAGE</p>
  <div style="background: #f8f9fa; padding: 15px; border-radius: 8px;">
    <p style="font-size: 15px; line-height: 1.6;">{{.Message}}</p>
  </div>
  <p style="color: #999; font-size: 12px;">Received: {{.CreatedAt.Format "Mon, 02 Jan 2006 15:04 MST"}}</p>
  <p style="color: #999; font-size: 12px;">This message was sent from your portfolio contact form.</p>
</div>
`

const textBody = `New Contact Message from Portfolio

From: %s
Email: %s

Message:
%s

Received: %s

Reply to: %s
`

type smtpMailer struct {
	client   *mail.Client
	from     string
	notifyTo string
	tmpl     *template.Template
}

func NewSMTPMailer(cfg config.Config) (service.Mailer, error) {
	if cfg.SMTP.Host == "" {
		return nil, fmt.Errorf("smtp host has not config")
	}

	client, err := mail.NewClient(cfg.SMTP.Host,
		mail.WithPort(cfg.SMTP.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(cfg.SMTP.User),
		mail.WithPassword(cfg.SMTP.Password),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	)
	if err != nil {
		return nil, fmt.Errorf("cannot init smtp client: %w", err)
	}

	tmpl, err := template.New("contact").Parse(htmlBody)
	if err != nil {
		return nil, fmt.Errorf("cannot parse email template: %w", err)
	}

	return &smtpMailer{
		client:   client,
		from:     cfg.SMTP.User,
		notifyTo: cfg.SMTP.NotifyTo,
		tmpl:     tmpl,
	}, nil
}

func (m *smtpMailer) SendContactNotification(ctx context.Context, c *contact.Contact) error {
	msg := mail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return fmt.Errorf("invalid sender address: %w", err)
	}
	if err := msg.To(m.notifyTo); err != nil {
		return fmt.Errorf("invalid recipient address: %w", err)
	}
	// The owner replies straight to the submitter.
	if err := msg.ReplyTo(c.Email); err != nil {
		return fmt.Errorf("invalid reply-to address: %w", err)
	}

	msg.Subject(fmt.Sprintf("New Portfolio Contact: %s", c.Name))

	var html strings.Builder
	if err := m.tmpl.Execute(&html, c); err != nil {
		return fmt.Errorf("render email body: %w", err)
	}

	msg.SetBodyString(mail.TypeTextPlain, fmt.Sprintf(textBody,
		c.Name, c.Email, c.Message, c.CreatedAt.Format("Mon, 02 Jan 2006 15:04 MST"), c.Email))
	msg.AddAlternativeString(mail.TypeTextHTML, html.String())

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("send contact notification: %w", err)
	}
	return nil
}
