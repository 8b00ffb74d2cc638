package models

import "time"

type User struct {
	ID         uint64 `gorm:"primaryKey" json:"id"`
	FullName   string `gorm:"size:100;not null" json:"full_name"`
	Email      string `gorm:"uniqueIndex;size:100;not null" json:"email"`
	IsVerified bool   `gorm:"default:false" json:"is_verified"`

	// Email action tokens (bcrypt hash of the user ID, 1 hour validity)
	VerifyToken               string     `gorm:"size:255" json:"-"`
	VerifyTokenExpiry         *time.Time `json:"-"`
	ForgotPasswordToken       string     `gorm:"size:255" json:"-"`
	ForgotPasswordTokenExpiry *time.Time `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ContactFormInput struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

type ForgotPasswordInput struct {
	Email string `json:"email" binding:"required,email"`
}
