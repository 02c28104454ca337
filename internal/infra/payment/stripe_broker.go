package payment

import (
	"context"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"
)

// StripeBroker 以Stripe Checkout實作ISessionBroker
// card付款  單一品項  mode=payment
type StripeBroker struct {
	api *client.API
}

func NewStripeBroker(secretKey string) *StripeBroker {
	return &StripeBroker{
		api: client.New(secretKey, nil),
	}
}

func (b *StripeBroker) CreateSession(ctx context.Context, params CreateSessionParams) (string, error) {
	sessionParams := &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(params.Currency),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(params.Description),
					},
					UnitAmount: stripe.Int64(params.Amount),
				},
				Quantity: stripe.Int64(1),
			},
		},
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL: stripe.String(params.SuccessURL),
		CancelURL:  stripe.String(params.CancelURL),
	}
	sessionParams.Context = ctx

	session, err := b.api.CheckoutSessions.New(sessionParams)
	if err != nil {
		return "", err
	}
	return session.ID, nil
}
