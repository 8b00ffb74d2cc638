package mailer

import (
	"fmt"
	"net/url"
	"time"

	"ecommerce-backend/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/gomail.v2"
	"gorm.io/gorm"
)

// Email types for account action mails
const (
	EmailTypeVerify = "VERIFY"
	EmailTypeReset  = "RESET"
)

// Mailer sends transactional email over SMTP. Delivery is best effort: no
// retries here, the caller decides whether a failure matters.
type Mailer struct {
	db     *gorm.DB
	from   string
	domain string

	// send is swapped out in tests so nothing dials a real SMTP server
	send func(to, subject, htmlBody string) error
}

func New(db *gorm.DB, host string, port int, email, password, domain string) *Mailer {
	dialer := gomail.NewDialer(host, port, email, password)
	m := &Mailer{db: db, from: email, domain: domain}
	m.send = func(to, subject, htmlBody string) error {
		msg := gomail.NewMessage()
		msg.SetHeader("From", m.from)
		msg.SetHeader("To", to)
		msg.SetHeader("Subject", subject)
		msg.SetBody("text/html", htmlBody)
		return dialer.DialAndSend(msg)
	}
	return m
}

// SendAccountEmail issues a verify-email or reset-password mail. The action
// token is a bcrypt hash of the user ID, persisted on the user with a one
// hour expiry before the mail goes out.
func (m *Mailer) SendAccountEmail(user *models.User, emailType string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(fmt.Sprint(user.ID)), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("generate token: %w", err)
	}
	token := string(hashed)
	expiry := time.Now().Add(time.Hour)

	var updates map[string]interface{}
	if emailType == EmailTypeVerify {
		updates = map[string]interface{}{
			"verify_token":        token,
			"verify_token_expiry": expiry,
		}
	} else {
		updates = map[string]interface{}{
			"forgot_password_token":        token,
			"forgot_password_token_expiry": expiry,
		}
	}
	if err := m.db.Model(&models.User{}).Where("id = ?", user.ID).Updates(updates).Error; err != nil {
		return fmt.Errorf("store token: %w", err)
	}

	subject := "Verify your email"
	link := fmt.Sprintf("%s/auth/verify-email?token=%s", m.domain, url.QueryEscape(token))
	action := "verify your email"
	if emailType == EmailTypeReset {
		subject = "Reset your password"
		link = fmt.Sprintf("%s/auth/reset-password?token=%s", m.domain, url.QueryEscape(token))
		action = "reset your password"
	}

	body := fmt.Sprintf(`<p>Click <a href="%s">here</a> to %s</p>`, link, action)
	return m.send(user.Email, subject, body)
}

// SendOrderStatusEmail tells the customer their order's payment went through.
func (m *Mailer) SendOrderStatusEmail(to, orderNo, status string) error {
	subject := fmt.Sprintf("Order %s status updated", orderNo)
	body := fmt.Sprintf(
		`<p>The status of your order <strong>%s</strong> has been updated to <strong>%s</strong>.</p>`,
		orderNo, status,
	)
	return m.send(to, subject, body)
}

// SendContactEmail forwards a contact form submission to the operator inbox.
func (m *Mailer) SendContactEmail(name, email, subject, message string) error {
	body := fmt.Sprintf(
		`<p>Name: %s</p>
		 <p>Email: %s</p>
		 <p>Subject: %s</p>
		 <p>Message: %s</p>`,
		name, email, subject, message,
	)
	return m.send(m.from, "New contact form submission: "+subject, body)
}
