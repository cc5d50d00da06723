package payments

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/checkout/session"
	"github.com/stripe/stripe-go/v82/webhook"

	"github.com/contractwise/backend/internal/common"
	"github.com/contractwise/backend/internal/entity"
	"github.com/contractwise/backend/internal/mail"
	"github.com/contractwise/backend/internal/repository"
)

// Lifetime upgrade price, in cents.
const lifetimePriceCents = 1000

// Service drives the one-time lifetime upgrade: checkout session creation
// and the webhook that flips the premium flag.
type Service struct {
	cfg       common.StripeConfig
	clientURL string
	users     repository.UserRepository
	mailer    mail.Sender
	logger    *slog.Logger
}

func NewService(cfg common.StripeConfig, clientURL string, users repository.UserRepository, mailer mail.Sender, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	stripe.Key = cfg.SecretKey
	return &Service{
		cfg:       cfg,
		clientURL: clientURL,
		users:     users,
		mailer:    mailer,
		logger:    logger,
	}
}

// CreateCheckoutSession opens a one-time payment session for the lifetime
// upgrade. The user ID rides along as the client reference so the webhook
// can find the account.
func (s *Service) CreateCheckoutSession(ctx context.Context, user *entity.User) (string, error) {
	params := &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(string(stripe.CurrencyUSD)),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String("Lifetime Subscription"),
					},
					UnitAmount: stripe.Int64(lifetimePriceCents),
				},
				Quantity: stripe.Int64(1),
			},
		},
		CustomerEmail:     stripe.String(user.Email),
		Mode:              stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL:        stripe.String(s.clientURL + "/payment-success"),
		CancelURL:         stripe.String(s.clientURL + "/payment-cancel"),
		ClientReferenceID: stripe.String(user.ID.String()),
	}
	params.Context = ctx

	sess, err := session.New(params)
	if err != nil {
		s.logger.Error("payments.checkout.error", "user_id", user.ID, "error", err)
		return "", err
	}

	s.logger.Info("payments.checkout.created", "user_id", user.ID, "session_id", sess.ID)
	return sess.ID, nil
}

// HandleWebhook verifies a Stripe event and, on a completed checkout, marks
// the referenced user premium and sends the confirmation email. A failed
// email is logged but never fails the webhook; Stripe would retry the whole
// event and re-trigger the upgrade.
func (s *Service) HandleWebhook(ctx context.Context, payload []byte, sigHeader string) error {
	event, err := webhook.ConstructEvent(payload, sigHeader, s.cfg.WebhookSecret)
	if err != nil {
		s.logger.Error("payments.webhook.signature_error", "error", err)
		return common.NewAppError("WEBHOOK_ERROR", "webhook signature verification failed", common.ErrInvalidInput)
	}

	if event.Type != "checkout.session.completed" {
		s.logger.Debug("payments.webhook.ignored", "type", event.Type)
		return nil
	}

	var sess stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
		s.logger.Error("payments.webhook.decode_error", "error", err)
		return common.InternalError("failed to decode checkout session")
	}

	if sess.ClientReferenceID == "" {
		s.logger.Warn("payments.webhook.no_reference", "session_id", sess.ID)
		return nil
	}
	userID, err := uuid.Parse(sess.ClientReferenceID)
	if err != nil {
		s.logger.Warn("payments.webhook.bad_reference", "reference", sess.ClientReferenceID)
		return nil
	}

	user, err := s.users.SetPremium(ctx, userID, true)
	if err != nil {
		s.logger.Error("payments.webhook.upgrade_error", "user_id", userID, "error", err)
		return err
	}

	if user.Email != "" {
		if err := s.mailer.SendPremiumConfirmation(ctx, user.Email, user.DisplayName); err != nil {
			s.logger.Warn("payments.webhook.email_error", "user_id", userID, "error", err)
		}
	}

	s.logger.Info("payments.webhook.upgraded", "user_id", userID)
	return nil
}
