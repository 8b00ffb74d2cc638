package services

import (
	"context"
	"testing"

	"ecommerce-backend/internal/models"
	"ecommerce-backend/pkg/utils"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const testSecret = "test_key_secret"

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	// In-memory sqlite is per connection, keep the pool at one
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Order{},
		&models.Payment{},
		&models.Earning{},
		&models.Wallet{},
	))
	return db
}

func seedOrder(t *testing.T, db *gorm.DB, vendorID uint64, total, tax float64) *models.Order {
	t.Helper()
	order := models.Order{
		OrderNo:       utils.NewReceiptID(),
		CustomerID:    1,
		VendorID:      vendorID,
		TotalPrice:    total,
		Tax:           tax,
		PaymentStatus: "pending",
	}
	require.NoError(t, db.Create(&order).Error)
	return &order
}

func confirmation(orderID, paymentID string) models.PaymentConfirmationInput {
	return models.PaymentConfirmationInput{
		RazorpayOrderID:   orderID,
		RazorpayPaymentID: paymentID,
		RazorpaySignature: utils.RazorpaySignature(orderID, paymentID, testSecret),
	}
}

func TestVerifyAndRecordFirstSaleOfDay(t *testing.T) {
	db := setupDB(t)
	svc := NewPaymentService(db, testSecret)
	order := seedOrder(t, db, 7, 500, 50)

	got, err := svc.VerifyAndRecord(context.Background(), 1, order.ID, confirmation("order_a", "pay_a"))
	require.NoError(t, err)
	assert.Equal(t, "paid", got.PaymentStatus)

	var stored models.Order
	require.NoError(t, db.First(&stored, order.ID).Error)
	assert.Equal(t, "paid", stored.PaymentStatus)

	var payment models.Payment
	require.NoError(t, db.Where("razorpay_order_id = ?", "order_a").First(&payment).Error)
	assert.Equal(t, uint64(1), payment.UserID)
	assert.Equal(t, "pay_a", payment.RazorpayPaymentID)

	var earning models.Earning
	require.NoError(t, db.Where("user_id = ?", 7).First(&earning).Error)
	assert.Equal(t, 450.0, earning.TotalEarnings)
	assert.Equal(t, 1, earning.Sales)

	var wallet models.Wallet
	require.NoError(t, db.Where("user_id = ?", 7).First(&wallet).Error)
	assert.Equal(t, 450.0, wallet.Balance)
	assert.False(t, wallet.Withdrawals)
}

func TestVerifyAndRecordAccumulatesSameDay(t *testing.T) {
	db := setupDB(t)
	svc := NewPaymentService(db, testSecret)
	ctx := context.Background()

	first := seedOrder(t, db, 7, 500, 50)
	second := seedOrder(t, db, 7, 300, 0)

	_, err := svc.VerifyAndRecord(ctx, 1, first.ID, confirmation("order_a", "pay_a"))
	require.NoError(t, err)
	_, err = svc.VerifyAndRecord(ctx, 1, second.ID, confirmation("order_b", "pay_b"))
	require.NoError(t, err)

	// Second sale mutates the existing day record, no new rows
	var earnings []models.Earning
	require.NoError(t, db.Where("user_id = ?", 7).Find(&earnings).Error)
	require.Len(t, earnings, 1)
	assert.Equal(t, 750.0, earnings[0].TotalEarnings)
	assert.Equal(t, 2, earnings[0].Sales)

	var wallets []models.Wallet
	require.NoError(t, db.Where("user_id = ?", 7).Find(&wallets).Error)
	require.Len(t, wallets, 1)
	assert.Equal(t, 750.0, wallets[0].Balance)
}

func TestVerifyAndRecordLedgersArePerVendor(t *testing.T) {
	db := setupDB(t)
	svc := NewPaymentService(db, testSecret)
	ctx := context.Background()

	vendorA := seedOrder(t, db, 7, 500, 50)
	vendorB := seedOrder(t, db, 8, 200, 0)

	_, err := svc.VerifyAndRecord(ctx, 1, vendorA.ID, confirmation("order_a", "pay_a"))
	require.NoError(t, err)
	_, err = svc.VerifyAndRecord(ctx, 1, vendorB.ID, confirmation("order_b", "pay_b"))
	require.NoError(t, err)

	var a, b models.Earning
	require.NoError(t, db.Where("user_id = ?", 7).First(&a).Error)
	require.NoError(t, db.Where("user_id = ?", 8).First(&b).Error)
	assert.Equal(t, 450.0, a.TotalEarnings)
	assert.Equal(t, 200.0, b.TotalEarnings)
}

func TestVerifyAndRecordRejectsDuplicate(t *testing.T) {
	db := setupDB(t)
	svc := NewPaymentService(db, testSecret)
	ctx := context.Background()
	order := seedOrder(t, db, 7, 500, 50)

	_, err := svc.VerifyAndRecord(ctx, 1, order.ID, confirmation("order_a", "pay_a"))
	require.NoError(t, err)

	_, err = svc.VerifyAndRecord(ctx, 1, order.ID, confirmation("order_a", "pay_a"))
	assert.ErrorIs(t, err, ErrDuplicatePayment)

	// Nothing from the second attempt sticks
	var paymentCount int64
	db.Model(&models.Payment{}).Count(&paymentCount)
	assert.Equal(t, int64(1), paymentCount)

	var earning models.Earning
	require.NoError(t, db.Where("user_id = ?", 7).First(&earning).Error)
	assert.Equal(t, 450.0, earning.TotalEarnings)
	assert.Equal(t, 1, earning.Sales)

	var wallet models.Wallet
	require.NoError(t, db.Where("user_id = ?", 7).First(&wallet).Error)
	assert.Equal(t, 450.0, wallet.Balance)
}

func TestVerifyAndRecordRejectsBadSignature(t *testing.T) {
	db := setupDB(t)
	svc := NewPaymentService(db, testSecret)
	order := seedOrder(t, db, 7, 500, 50)

	in := confirmation("order_a", "pay_a")
	in.RazorpaySignature = utils.RazorpaySignature("order_a", "pay_a", "wrong_secret")

	_, err := svc.VerifyAndRecord(context.Background(), 1, order.ID, in)
	assert.ErrorIs(t, err, ErrPaymentNotAuthentic)

	var paymentCount int64
	db.Model(&models.Payment{}).Count(&paymentCount)
	assert.Zero(t, paymentCount)

	var stored models.Order
	require.NoError(t, db.First(&stored, order.ID).Error)
	assert.Equal(t, "pending", stored.PaymentStatus)
}

func TestVerifyAndRecordMissingFieldsNotAuthentic(t *testing.T) {
	db := setupDB(t)
	svc := NewPaymentService(db, testSecret)
	order := seedOrder(t, db, 7, 500, 50)

	cases := []models.PaymentConfirmationInput{
		{RazorpayPaymentID: "pay_a", RazorpaySignature: "sig"},
		{RazorpayOrderID: "order_a", RazorpaySignature: "sig"},
		{RazorpayOrderID: "order_a", RazorpayPaymentID: "pay_a"},
		{},
	}
	for _, in := range cases {
		_, err := svc.VerifyAndRecord(context.Background(), 1, order.ID, in)
		assert.ErrorIs(t, err, ErrPaymentNotAuthentic)
	}
}

func TestVerifyAndRecordMissingOrderRollsBack(t *testing.T) {
	db := setupDB(t)
	svc := NewPaymentService(db, testSecret)

	_, err := svc.VerifyAndRecord(context.Background(), 1, 9999, confirmation("order_a", "pay_a"))
	assert.ErrorIs(t, err, ErrOrderNotFound)

	// The payment insert happened before the order lookup but the whole
	// transaction rolled back, so a retry is processed fresh
	var paymentCount int64
	db.Model(&models.Payment{}).Count(&paymentCount)
	assert.Zero(t, paymentCount)

	var earningCount int64
	db.Model(&models.Earning{}).Count(&earningCount)
	assert.Zero(t, earningCount)
}
