package main

import (
	"log"

	"ecommerce-backend/internal/config"
	"ecommerce-backend/internal/gateway"
	"ecommerce-backend/internal/handlers"
	"ecommerce-backend/internal/mailer"
	"ecommerce-backend/internal/routes"
	"ecommerce-backend/internal/services"
	"ecommerce-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}
	cfg := config.Load()

	// 2. Connect DB
	db, err := config.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Database init failed: %v", err)
	}

	// 3. Build dependencies (everything constructed here, nothing global)
	rzp := gateway.NewClient(cfg.RazorpayKeyID, cfg.RazorpayKeySecret)
	mail := mailer.New(db, cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPEmail, cfg.SMTPPassword, cfg.Domain)
	paymentSvc := services.NewPaymentService(db, cfg.RazorpayKeySecret)

	paymentHandler := handlers.NewPaymentHandler(db, paymentSvc, rzp, mail, cfg.RazorpayKeyID, cfg.Domain)
	contactHandler := handlers.NewContactHandler(mail)
	emailHandler := handlers.NewEmailHandler(db, mail)

	// 4. Init Router + Routes
	r := gin.Default()
	routes.SetupRoutes(r, paymentHandler, contactHandler, emailHandler)

	// 5. Health check
	r.GET("/ping", func(c *gin.Context) {
		utils.APIResponse(c, 200, true, "Server OK!", nil)
	})

	// 6. Run Server
	log.Println("Server listening on port " + cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
