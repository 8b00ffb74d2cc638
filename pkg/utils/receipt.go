package utils

import "github.com/google/uuid"

// NewReceiptID generates an opaque receipt identifier for a gateway order.
// Razorpay caps receipts at 40 chars; a UUID is 36.
func NewReceiptID() string {
	return uuid.NewString()
}
