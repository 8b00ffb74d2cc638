package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// RazorpaySignature computes the hex HMAC-SHA256 of "<order_id>|<payment_id>"
// with the key secret, which is exactly what Razorpay signs its payment
// confirmation callbacks with.
func RazorpaySignature(orderID, paymentID, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifyRazorpaySignature reports whether the claimed signature matches the
// one we compute ourselves. A missing field just fails the comparison, there
// is no separate error path. hmac.Equal keeps the compare constant-time.
func VerifyRazorpaySignature(orderID, paymentID, claimed, secret string) bool {
	if orderID == "" || paymentID == "" || claimed == "" {
		return false
	}
	expected := RazorpaySignature(orderID, paymentID, secret)
	return hmac.Equal([]byte(expected), []byte(claimed))
}
