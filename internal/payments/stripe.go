package payments

import (
	"context"

	"github.com/pkg/errors"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/paymentintent"
)

// StripeProvider creates card payment intents against Stripe.
type StripeProvider struct{}

// NewStripeProvider sets the account secret key once for the process.
func NewStripeProvider(secretKey string) *StripeProvider {
	stripe.Key = secretKey
	return &StripeProvider{}
}

// CreateIntent opens a USD card payment intent for the given amount in cents
// and returns its client secret for the frontend to confirm.
func (p *StripeProvider) CreateIntent(ctx context.Context, amountCents int64) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(amountCents),
		Currency:           stripe.String(string(stripe.CurrencyUSD)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}
	params.Context = ctx

	intent, err := paymentintent.New(params)
	if err != nil {
		return "", errors.Wrap(err, "create payment intent")
	}
	return intent.ClientSecret, nil
}
