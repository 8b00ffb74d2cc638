package models

import "time"

// Wallet is the per-vendor, per-day balance ledger. Independent from Earning:
// both are credited from the same payment but nothing ties the rows together.
type Wallet struct {
	ID          uint64    `gorm:"primaryKey" json:"id"`
	UserID      uint64    `gorm:"not null;uniqueIndex:idx_wallet_vendor_day" json:"user_id"`
	Date        time.Time `gorm:"not null;uniqueIndex:idx_wallet_vendor_day" json:"date"`
	Balance     float64   `gorm:"default:0" json:"balance"`
	Withdrawals bool      `gorm:"default:false" json:"withdrawals"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
