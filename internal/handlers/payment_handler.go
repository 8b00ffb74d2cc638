package handlers

import (
	"errors"
	"fmt"
	"log"
	"math"
	"net/http"
	"net/url"

	"ecommerce-backend/internal/gateway"
	"ecommerce-backend/internal/mailer"
	"ecommerce-backend/internal/models"
	"ecommerce-backend/internal/services"
	"ecommerce-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// The payment endpoints keep the exact wire shapes the frontend already
// depends on ({status, order} / {status, message} / {key}), so they bypass
// the utils.APIResponse envelope used everywhere else.
type PaymentHandler struct {
	db      *gorm.DB
	svc     *services.PaymentService
	gateway gateway.OrderCreator
	mailer  *mailer.Mailer
	keyID   string
	domain  string
}

func NewPaymentHandler(db *gorm.DB, svc *services.PaymentService, gw gateway.OrderCreator, m *mailer.Mailer, keyID, domain string) *PaymentHandler {
	return &PaymentHandler{db: db, svc: svc, gateway: gw, mailer: m, keyID: keyID, domain: domain}
}

// Checkout opens a Razorpay order for the given amount.
func (h *PaymentHandler) Checkout(c *gin.Context) {
	// 1. Validate amount: present, numeric, positive. A non-numeric body
	// fails the bind, missing/zero/negative fail the explicit check.
	var input models.CheckoutInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": false, "message": "Invalid amount"})
		return
	}
	if input.Amount == nil || *input.Amount <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"status": false, "message": "Invalid amount"})
		return
	}

	// 2. Razorpay wants minor units (paise), so 19.99 -> 1999
	amountMinor := int64(math.Round(*input.Amount * 100))

	// 3. Create the gateway order and hand its object back verbatim
	order, err := h.gateway.CreateOrder(amountMinor, "INR", utils.NewReceiptID())
	if err != nil {
		log.Printf("Checkout error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  false,
			"message": "An error occurred during checkout",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": true, "order": order})
}

// PaymentVerification is the Razorpay confirmation callback.
func (h *PaymentHandler) PaymentVerification(c *gin.Context) {
	userID, _ := c.Get("userID")
	orderID := utils.StringToUint64(c.Query("orderId"))

	// 1. Bind the three callback fields. Absent fields are not a bind
	// error: they make signature verification fail instead.
	var input models.PaymentConfirmationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": false, "message": "Payment failed"})
		return
	}

	// 2. Run the verify -> record -> ledger workflow
	order, err := h.svc.VerifyAndRecord(c.Request.Context(), userID.(uint64), orderID, input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPaymentNotAuthentic):
			c.JSON(http.StatusBadRequest, gin.H{"status": false, "message": "Payment failed"})
		case errors.Is(err, services.ErrDuplicatePayment):
			c.JSON(http.StatusBadRequest, gin.H{"status": false, "message": "Payment already processed"})
		case errors.Is(err, services.ErrOrderNotFound):
			log.Printf("Payment verification integrity error: order %d missing for payment %s", orderID, input.RazorpayPaymentID)
			c.JSON(http.StatusInternalServerError, gin.H{"status": false, "message": "Failed to update order status"})
		default:
			log.Printf("Payment verification error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"status": false, "message": "Payment verification failed"})
		}
		return
	}

	// 3. Fire-and-forget status mail to the customer; a mail failure must
	// never fail an already committed payment.
	go func(o models.Order) {
		var customer models.User
		if err := h.db.First(&customer, o.CustomerID).Error; err != nil {
			log.Printf("Order status mail: customer %d not found: %v", o.CustomerID, err)
			return
		}
		if err := h.mailer.SendOrderStatusEmail(customer.Email, o.OrderNo, o.PaymentStatus); err != nil {
			log.Printf("Order status mail failed for order %s: %v", o.OrderNo, err)
		}
	}(*order)

	// 4. Redirect to the success page carrying all three identifiers,
	// the frontend reads them off the query string.
	c.Redirect(http.StatusFound, fmt.Sprintf(
		"%s/success?razorpay_order_id=%s&razorpay_payment_id=%s&razorpay_signature=%s",
		h.domain,
		url.QueryEscape(input.RazorpayOrderID),
		url.QueryEscape(input.RazorpayPaymentID),
		url.QueryEscape(input.RazorpaySignature),
	))
}

// GetAPIKey exposes the public Razorpay key id for the checkout widget.
func (h *PaymentHandler) GetAPIKey(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"key": h.keyID})
}
