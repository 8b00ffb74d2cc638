package services

import (
	"context"
	"errors"
	"time"

	"ecommerce-backend/internal/models"
	"ecommerce-backend/pkg/utils"

	"gorm.io/gorm"
)

var (
	// ErrPaymentNotAuthentic: signature mismatch or missing callback field.
	ErrPaymentNotAuthentic = errors.New("payment signature verification failed")
	// ErrDuplicatePayment: this (order_id, payment_id) pair was already processed.
	ErrDuplicatePayment = errors.New("payment already processed")
	// ErrOrderNotFound: the payment verified fine but the referenced order
	// does not exist. That is a data-integrity problem, not a user error.
	ErrOrderNotFound = errors.New("order not found for verified payment")
)

// PaymentService runs the payment confirmation workflow: signature check,
// idempotent payment insert, order status flip and both vendor ledgers, all
// inside one transaction so a late failure leaves no partial state behind.
type PaymentService struct {
	db        *gorm.DB
	keySecret string
	loc       *time.Location
}

func NewPaymentService(db *gorm.DB, keySecret string) *PaymentService {
	loc, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		// No tzdata on the host; IST has no DST so a fixed offset is equivalent
		loc = time.FixedZone("IST", 5*3600+1800)
	}
	return &PaymentService{db: db, keySecret: keySecret, loc: loc}
}

// VerifyAndRecord processes one confirmation callback. On success the order
// is returned with PaymentStatus already set to "paid". Errors are one of the
// sentinels above or a wrapped storage error; in every non-nil case the
// database is untouched.
func (s *PaymentService) VerifyAndRecord(ctx context.Context, userID, orderID uint64, in models.PaymentConfirmationInput) (*models.Order, error) {
	// 1. Authenticity first, nothing is written for a forged callback
	if !utils.VerifyRazorpaySignature(in.RazorpayOrderID, in.RazorpayPaymentID, in.RazorpaySignature, s.keySecret) {
		return nil, ErrPaymentNotAuthentic
	}

	var order models.Order

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 2. Idempotency guard: insert and let the unique index decide.
		// No find-then-create; two concurrent deliveries of the same
		// confirmation race on the index, and exactly one wins.
		payment := models.Payment{
			UserID:            userID,
			RazorpayOrderID:   in.RazorpayOrderID,
			RazorpayPaymentID: in.RazorpayPaymentID,
			RazorpaySignature: in.RazorpaySignature,
		}
		if err := tx.Create(&payment).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrDuplicatePayment
			}
			return err
		}

		// 3. Load the order being paid. Fail loud when it is missing: a
		// verified payment with no order means something upstream is broken.
		if err := tx.First(&order, orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrOrderNotFound
			}
			return err
		}

		// 4. Mark paid
		order.PaymentStatus = "paid"
		if err := tx.Model(&models.Order{}).Where("id = ?", order.ID).
			Update("payment_status", "paid").Error; err != nil {
			return err
		}

		// 5. Credit both vendor ledgers with the net amount
		delta := order.TotalPrice - order.Tax
		if err := s.creditEarnings(tx, order.VendorID, delta); err != nil {
			return err
		}
		return s.creditWallet(tx, order.VendorID, delta)
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// dayWindow returns [midnight, next midnight) of the current day in the store
// timezone. The same zone stamps new ledger rows, so the query window and the
// stored date can never disagree.
func (s *PaymentService) dayWindow(now time.Time) (time.Time, time.Time) {
	local := now.In(s.loc)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, s.loc)
	return start, start.AddDate(0, 0, 1)
}

// creditEarnings adds delta and one sale to today's earnings row for the
// vendor. The increment happens in SQL (no read-modify-write in app code), so
// concurrent confirmations cannot lose updates. When no row exists yet we
// create one; if that create loses a same-day race to another request, the
// unique index rejects it and the increment is retried against the winner.
func (s *PaymentService) creditEarnings(tx *gorm.DB, vendorID uint64, delta float64) error {
	start, end := s.dayWindow(time.Now())

	increment := func() (int64, error) {
		res := tx.Model(&models.Earning{}).
			Where("user_id = ? AND date >= ? AND date < ?", vendorID, start, end).
			Updates(map[string]interface{}{
				"total_earnings": gorm.Expr("total_earnings + ?", delta),
				"sales":          gorm.Expr("sales + ?", 1),
			})
		return res.RowsAffected, res.Error
	}

	rows, err := increment()
	if err != nil {
		return err
	}
	if rows > 0 {
		return nil
	}

	record := models.Earning{UserID: vendorID, Date: start, TotalEarnings: delta, Sales: 1}
	if err := tx.Create(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			_, err = increment()
		}
		return err
	}
	return nil
}

// creditWallet mirrors creditEarnings for the wallet ledger.
func (s *PaymentService) creditWallet(tx *gorm.DB, vendorID uint64, delta float64) error {
	start, end := s.dayWindow(time.Now())

	increment := func() (int64, error) {
		res := tx.Model(&models.Wallet{}).
			Where("user_id = ? AND date >= ? AND date < ?", vendorID, start, end).
			Update("balance", gorm.Expr("balance + ?", delta))
		return res.RowsAffected, res.Error
	}

	rows, err := increment()
	if err != nil {
		return err
	}
	if rows > 0 {
		return nil
	}

	record := models.Wallet{UserID: vendorID, Date: start, Balance: delta, Withdrawals: false}
	if err := tx.Create(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			_, err = increment()
		}
		return err
	}
	return nil
}
