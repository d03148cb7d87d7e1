// Package payments wraps the external payment processor. Controllers talk
// to the Active gateway so tests can swap in a stub without touching the
// network; webhook signature verification stays in the webhook handlers
// because it is pure HMAC checking.
package payments

// LineItem is one purchasable row of a hosted checkout session.
// UnitAmount is in the currency's minor unit (cents).
type LineItem struct {
	Name       string
	UnitAmount int64
	Quantity   int64
}

type Gateway interface {
	// CreateCustomer registers a billing customer and returns its id.
	CreateCustomer(email, name string) (string, error)

	// CreateCheckoutSession creates a one-off payment session and returns
	// the hosted redirect URL.
	CreateCheckoutSession(customerID string, items []LineItem, metadata map[string]string) (string, error)

	// CreateSubscriptionSession creates a recurring (monthly) payment
	// session for a subscription plan and returns the hosted redirect URL.
	CreateSubscriptionSession(customerID, planName string, unitAmount int64, metadata map[string]string) (string, error)
}

// Active is the gateway used by the controllers. Tests replace it.
var Active Gateway = &StripeGateway{}
