package processor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Westerntf/driplypay-v2-sub002/config"
	"github.com/Westerntf/driplypay-v2-sub002/internal/checkout"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"github.com/stripe/stripe-go/v76/webhook"
)

// WebhookVerifier checks the Stripe-Signature header of a webhook body.
type WebhookVerifier struct {
	secret    string
	tolerance time.Duration
}

func NewWebhookVerifier(secret string, tolerance time.Duration) *WebhookVerifier {
	if tolerance <= 0 {
		tolerance = webhook.DefaultTolerance
	}
	return &WebhookVerifier{secret: secret, tolerance: tolerance}
}

func (v *WebhookVerifier) Verify(payload []byte, signatureHeader string) error {
	if v.secret == "" {
		return errors.New("webhook secret not configured")
	}
	return webhook.ValidatePayloadWithTolerance(payload, signatureHeader, v.secret, v.tolerance)
}

// CheckoutClient opens hosted Stripe checkout sessions for tips.
type CheckoutClient struct {
	api        *client.API
	successURL string
	cancelURL  string
}

func NewCheckoutClient(cfg config.Stripe) *CheckoutClient {
	api := &client.API{}
	api.Init(cfg.SecretKey, nil)
	return &CheckoutClient{
		api:        api,
		successURL: cfg.SuccessURL,
		cancelURL:  cfg.CancelURL,
	}
}

func (c *CheckoutClient) CreateSession(ctx context.Context, req checkout.SessionRequest) (*checkout.Session, error) {
	params := &stripe.CheckoutSessionParams{
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL: stripe.String(c.successURL),
		CancelURL:  stripe.String(c.cancelURL),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(req.Currency),
					UnitAmount: stripe.Int64(req.Amount),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(req.Description),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
	}
	params.Context = ctx
	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}

	session, err := c.api.CheckoutSessions.New(params)
	if err != nil {
		return nil, fmt.Errorf("stripe checkout session: %w", err)
	}
	return &checkout.Session{ID: session.ID, URL: session.URL}, nil
}
