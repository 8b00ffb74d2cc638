package models

import "time"

// Earning is the per-vendor, per-day sales ledger. Date always holds local
// midnight in the store timezone (Asia/Kolkata), so (user_id, date) is one
// row per vendor per calendar day, enforced by the unique index.
type Earning struct {
	ID            uint64    `gorm:"primaryKey" json:"id"`
	UserID        uint64    `gorm:"not null;uniqueIndex:idx_earning_vendor_day" json:"user_id"`
	Date          time.Time `gorm:"not null;uniqueIndex:idx_earning_vendor_day" json:"date"`
	TotalEarnings float64   `gorm:"default:0" json:"total_earnings"`
	Sales         int       `gorm:"default:0" json:"sales"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
