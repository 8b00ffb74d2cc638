package models

import "time"

type Order struct {
	ID            uint64    `gorm:"primaryKey" json:"id"`
	OrderNo       string    `gorm:"unique;size:50" json:"order_no"`
	CustomerID    uint64    `gorm:"not null" json:"customer_id"`
	VendorID      uint64    `gorm:"not null" json:"vendor_id"`
	TotalPrice    float64   `json:"total_price"`
	Tax           float64   `json:"tax"`
	PaymentStatus string    `gorm:"size:20;default:pending" json:"payment_status"` // pending, paid
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// CheckoutInput captures the checkout body. Amount is a pointer so a missing
// field is distinguishable from 0 (both are rejected, but via our own message
// instead of a bind error).
type CheckoutInput struct {
	Amount *float64 `json:"amount"`
}
