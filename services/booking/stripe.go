package booking

import (
	"context"
	"fmt"
	"math"

	"moveflow/models"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/checkout/session"
)

// StripeCheckoutProvider creates hosted Stripe Checkout sessions for a quoted
// booking amount. The global stripe.Key is set at startup.
type StripeCheckoutProvider struct {
	ReturnURL string
}

func (p *StripeCheckoutProvider) CreateSession(ctx context.Context, req CheckoutRequest) (*models.CheckoutSession, error) {
	currency := req.Currency
	if currency == "" {
		currency = "cad"
	}
	description := req.Description
	if description == "" {
		description = "Moving service booking"
	}

	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(currency),
					UnitAmount: stripe.Int64(int64(math.Round(req.Amount * 100))),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(description),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL:    stripe.String(p.ReturnURL + "?outcome=success"),
		CancelURL:     stripe.String(p.ReturnURL + "?outcome=cancelled"),
		CustomerEmail: stripe.String(req.Email),
	}
	params.Context = ctx
	params.AddMetadata("booking_id", req.BookingID)

	created, err := session.New(params)
	if err != nil {
		return nil, fmt.Errorf("stripe checkout session: %w", err)
	}
	return &models.CheckoutSession{ID: created.ID, URL: created.URL}, nil
}
