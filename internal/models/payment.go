package models

import "time"

// Payment records one verified Razorpay confirmation.
// The composite unique index is the idempotency guard: inserting the same
// (order_id, payment_id) pair twice fails at the database, not in app code.
type Payment struct {
	ID                uint64    `gorm:"primaryKey" json:"id"`
	UserID            uint64    `gorm:"not null" json:"user_id"`
	RazorpayOrderID   string    `gorm:"size:100;not null;uniqueIndex:idx_payment_identity" json:"razorpay_order_id"`
	RazorpayPaymentID string    `gorm:"size:100;not null;uniqueIndex:idx_payment_identity" json:"razorpay_payment_id"`
	RazorpaySignature string    `gorm:"size:255;not null" json:"razorpay_signature"`
	CreatedAt         time.Time `json:"created_at"`
}

// PaymentConfirmationInput is the callback body Razorpay posts back after
// the customer completes payment. No binding:"required" here on purpose:
// a missing field means the signature check fails, not a 400 on bind.
type PaymentConfirmationInput struct {
	RazorpayOrderID   string `json:"razorpay_order_id"`
	RazorpayPaymentID string `json:"razorpay_payment_id"`
	RazorpaySignature string `json:"razorpay_signature"`
}
