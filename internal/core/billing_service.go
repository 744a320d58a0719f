package core

import (
	"context"
	"fmt"
	"math"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"go.uber.org/zap"

	"prodrawing-backend-go/internal/db"
	"prodrawing-backend-go/internal/models"
)

// billingService implements the BillingService interface on top of the
// Stripe API and the payments collection.
type billingService struct {
	stripeClient *client.API
	paymentRepo  db.PaymentRepository
	logger       *zap.Logger
}

// NewBillingService creates a BillingService backed by a Stripe client
// initialized with the configured secret key.
func NewBillingService(secretKey string, paymentRepo db.PaymentRepository, logger *zap.Logger) BillingService {
	sc := &client.API{}
	sc.Init(secretKey, nil)
	return &billingService{
		stripeClient: sc,
		paymentRepo:  paymentRepo,
		logger:       logger,
	}
}

// CreatePaymentIntent authorizes a card-only charge in USD. Price comes
// in major units and is converted to cents for the gateway; the client
// completes the charge out-of-band with the returned secret before
// invoking the enrollment completion workflow.
func (s *billingService) CreatePaymentIntent(ctx context.Context, price float64) (string, error) {
	params := &stripe.PaymentIntentParams{
		Params:             stripe.Params{Context: ctx},
		Amount:             stripe.Int64(amountInCents(price)),
		Currency:           stripe.String(string(stripe.CurrencyUSD)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	intent, err := s.stripeClient.PaymentIntents.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create payment intent: %w", err)
	}
	s.logger.Info("payment intent created",
		zap.String("intentId", intent.ID),
		zap.Int64("amount", intent.Amount))
	return intent.ClientSecret, nil
}

func (s *billingService) ListPayments(ctx context.Context, email string) ([]*models.Payment, error) {
	payments, err := s.paymentRepo.ListByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments for '%s': %w", email, err)
	}
	return payments, nil
}

// amountInCents converts a price in major currency units to the minor
// units the gateway expects, rounding to the nearest cent.
func amountInCents(price float64) int64 {
	return int64(math.Round(price * 100))
}
