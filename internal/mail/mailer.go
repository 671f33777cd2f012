package mail

import (
	"context"
	"fmt"

	gomail "github.com/wneessen/go-mail"

	"segura-mente/internal/config"
)

// Mailer delivers account-lifecycle notifications. Delivery is best-effort:
// the workflows log failures and carry on, so implementations must not be
// relied on for transactional behavior.
type Mailer interface {
	SendVerificationEmail(ctx context.Context, email, username, token string) error
	SendWelcomeEmail(ctx context.Context, email, username string) error
	SendPasswordResetEmail(ctx context.Context, email, username, token string) error
}

// SMTPMailer sends through the configured SMTP relay.
type SMTPMailer struct {
	client      *gomail.Client
	from        string
	frontendURL string
}

func NewSMTPMailer(cfg *config.Config) (*SMTPMailer, error) {
	client, err := gomail.NewClient(cfg.SMTP.Host,
		gomail.WithPort(cfg.SMTP.Port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(cfg.SMTP.User),
		gomail.WithPassword(cfg.SMTP.Password),
		gomail.WithTLSPolicy(gomail.TLSOpportunistic),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create mail client: %w", err)
	}

	return &SMTPMailer{
		client:      client,
		from:        cfg.SMTP.From,
		frontendURL: cfg.App.FrontendURL,
	}, nil
}

var _ Mailer = (*SMTPMailer)(nil)

func (m *SMTPMailer) SendVerificationEmail(ctx context.Context, email, username, token string) error {
	link := fmt.Sprintf("%s/verify?token=%s", m.frontendURL, token)
	body, err := renderTemplate(verificationTemplate, templateData{
		Username: username,
		Link:     link,
	})
	if err != nil {
		return err
	}
	return m.send(ctx, email, "Verify your Segura-Mente account", body)
}

func (m *SMTPMailer) SendWelcomeEmail(ctx context.Context, email, username string) error {
	body, err := renderTemplate(welcomeTemplate, templateData{Username: username})
	if err != nil {
		return err
	}
	return m.send(ctx, email, "Your account has been activated", body)
}

func (m *SMTPMailer) SendPasswordResetEmail(ctx context.Context, email, username, token string) error {
	link := fmt.Sprintf("%s/reset-password?token=%s", m.frontendURL, token)
	body, err := renderTemplate(resetTemplate, templateData{
		Username: username,
		Link:     link,
	})
	if err != nil {
		return err
	}
	return m.send(ctx, email, "Password recovery - Segura-Mente", body)
}

func (m *SMTPMailer) send(ctx context.Context, to, subject, htmlBody string) error {
	msg := gomail.NewMsg()
	if err := msg.FromFormat("Segura-Mente App", m.from); err != nil {
		return fmt.Errorf("invalid sender address: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("invalid recipient address: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextHTML, htmlBody)

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
