package gateway

import (
	razorpay "github.com/razorpay/razorpay-go"
)

// OrderCreator is the slice of the payment gateway the checkout flow needs.
// Handlers depend on this interface so tests can drop in a fake instead of
// hitting Razorpay.
type OrderCreator interface {
	// CreateOrder opens a gateway order for amountMinor (paise for INR) and
	// returns the gateway's order object as-is.
	CreateOrder(amountMinor int64, currency, receipt string) (map[string]interface{}, error)
}

// Client wraps the official Razorpay SDK. Constructed once in main from
// config and injected wherever needed.
type Client struct {
	rzp *razorpay.Client
}

func NewClient(keyID, keySecret string) *Client {
	return &Client{rzp: razorpay.NewClient(keyID, keySecret)}
}

func (c *Client) CreateOrder(amountMinor int64, currency, receipt string) (map[string]interface{}, error) {
	data := map[string]interface{}{
		"amount":          amountMinor,
		"currency":        currency,
		"receipt":         receipt,
		"payment_capture": 1, // auto-capture on authorization
	}
	return c.rzp.Order.Create(data, nil)
}
