package routes

import (
	"ecommerce-backend/internal/handlers"
	"ecommerce-backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

// SetupRoutes wires every endpoint. Paths for the payment endpoints are part
// of the frontend contract, do not move them under a version prefix.
func SetupRoutes(
	r *gin.Engine,
	payments *handlers.PaymentHandler,
	contact *handlers.ContactHandler,
	emails *handlers.EmailHandler,
) {
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RateLimitMiddleware())

	// PUBLIC ROUTES
	r.GET("/api-key", payments.GetAPIKey)
	r.POST("/contact", contact.SubmitContactForm)
	r.POST("/forgot-password", emails.ForgotPassword)

	// PROTECTED ROUTES (need a valid Bearer token)
	protected := r.Group("/")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.POST("/checkout", payments.Checkout)
		protected.POST("/payment-verification", payments.PaymentVerification)
		protected.POST("/send-verification-email", emails.SendVerificationEmail)
	}
}
