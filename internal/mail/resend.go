package mail

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/resend/resend-go/v2"
)

// Sender delivers transactional email.
type Sender interface {
	SendPremiumConfirmation(ctx context.Context, email, name string) error
}

type Config struct {
	APIKey string
	From   string
}

type ResendSender struct {
	client *resend.Client
	from   string
	logger *slog.Logger
}

func NewResendSender(cfg Config, logger *slog.Logger) *ResendSender {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.From == "" {
		cfg.From = "ContractWise <onboarding@resend.dev>"
	}
	return &ResendSender{
		client: resend.NewClient(cfg.APIKey),
		from:   cfg.From,
		logger: logger,
	}
}

// SendPremiumConfirmation welcomes a user after their upgrade completes.
func (s *ResendSender) SendPremiumConfirmation(ctx context.Context, email, name string) error {
	if name == "" {
		name = "User"
	}

	_, err := s.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{email},
		Subject: "Welcome to Premium",
		Html:    fmt.Sprintf("<p>Hi %s,</p><p>Welcome to Premium. You are now a premium user of ContractWise!</p>", name),
	})
	if err != nil {
		s.logger.Error("mail.premium_confirmation.error", "email", email, "error", err)
		return fmt.Errorf("send premium confirmation email: %w", err)
	}

	s.logger.Info("mail.premium_confirmation.sent", "email", email)
	return nil
}
