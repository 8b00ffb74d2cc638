package handlers

import (
	"log"
	"net/http"

	"ecommerce-backend/internal/mailer"
	"ecommerce-backend/internal/models"
	"ecommerce-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type EmailHandler struct {
	db     *gorm.DB
	mailer *mailer.Mailer
}

func NewEmailHandler(db *gorm.DB, m *mailer.Mailer) *EmailHandler {
	return &EmailHandler{db: db, mailer: m}
}

// SendVerificationEmail mails the logged-in user their verify-email link.
func (h *EmailHandler) SendVerificationEmail(c *gin.Context) {
	userID, _ := c.Get("userID")

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		utils.APIResponse(c, http.StatusNotFound, false, "User not found", nil)
		return
	}

	if err := h.mailer.SendAccountEmail(&user, mailer.EmailTypeVerify); err != nil {
		log.Printf("Verification mail failed for user %d: %v", user.ID, err)
		utils.APIResponse(c, http.StatusInternalServerError, false, "Failed to send verification email", nil)
		return
	}

	utils.APIResponse(c, http.StatusOK, true, "Verification email sent", nil)
}

// ForgotPassword mails a password reset link to the given address.
func (h *EmailHandler) ForgotPassword(c *gin.Context) {
	var input models.ForgotPasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Invalid input", err.Error())
		return
	}

	var user models.User
	if err := h.db.Where("email = ?", input.Email).First(&user).Error; err != nil {
		utils.APIResponse(c, http.StatusNotFound, false, "User not found", nil)
		return
	}

	if err := h.mailer.SendAccountEmail(&user, mailer.EmailTypeReset); err != nil {
		log.Printf("Reset mail failed for user %d: %v", user.ID, err)
		utils.APIResponse(c, http.StatusInternalServerError, false, "Failed to send reset email", nil)
		return
	}

	utils.APIResponse(c, http.StatusOK, true, "Password reset email sent", nil)
}
