package payment

import (
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
)

// StripeClient creates payment intents against the Stripe API.
type StripeClient struct{}

func NewStripeClient(secretKey string) *StripeClient {
	stripe.Key = secretKey
	return &StripeClient{}
}

// CreateIntent opens a card payment intent for price (in dollars) and
// returns the client secret the frontend confirms with.
func (s *StripeClient) CreateIntent(price float64) (string, error) {
	amount := int64(price * 100)

	intent, err := paymentintent.New(&stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amount),
		Currency: stripe.String(string(stripe.CurrencyUSD)),
		PaymentMethodTypes: stripe.StringSlice([]string{
			"card",
		}),
	})
	if err != nil {
		return "", err
	}
	return intent.ClientSecret, nil
}
