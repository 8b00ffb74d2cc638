package handlers

import (
	"log"
	"net/http"

	"ecommerce-backend/internal/mailer"
	"ecommerce-backend/internal/models"
	"ecommerce-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	mailer *mailer.Mailer
}

func NewContactHandler(m *mailer.Mailer) *ContactHandler {
	return &ContactHandler{mailer: m}
}

// SubmitContactForm forwards a contact form submission to the operator inbox.
func (h *ContactHandler) SubmitContactForm(c *gin.Context) {
	var input models.ContactFormInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Invalid input", err.Error())
		return
	}

	if err := h.mailer.SendContactEmail(input.Name, input.Email, input.Subject, input.Message); err != nil {
		log.Printf("Contact form mail failed: %v", err)
		utils.APIResponse(c, http.StatusInternalServerError, false, "Failed to send message", nil)
		return
	}

	utils.APIResponse(c, http.StatusOK, true, "Message sent", nil)
}
