package model

import (
	"strings"
	"time"
)

const (
	MembershipActive    = "Active"
	MembershipInactive  = "Inactive"
	MembershipSuspended = "Suspended"
)

// DateLayout is the wire format of date_of_birth.
const DateLayout = "2006-01-02"

// User represents a registered user
type User struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	PasswordHash     string    `json:"-"` // Do not expose password hash in JSON responses
	PhoneNumber      string    `json:"phone_number"`
	Gender           string    `json:"gender"`
	DateOfBirth      time.Time `json:"date_of_birth"`
	MembershipStatus string    `json:"membership_status"`
	CreatedAt        time.Time `json:"created_at"`
}

// SignupRequest is the body of POST /api/users/signup
type SignupRequest struct {
	Name             string `json:"name" validate:"required"`
	Email            string `json:"email" validate:"required,email"`
	Password         string `json:"password" validate:"required"`
	PhoneNumber      string `json:"phone_number" validate:"required"`
	Gender           string `json:"gender" validate:"required"`
	DateOfBirth      string `json:"date_of_birth" validate:"required,datetime=2006-01-02"`
	MembershipStatus string `json:"membership_status" validate:"required,oneof=Active Inactive Suspended"`
}

// LoginRequest is the body of POST /api/users/login
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// NormalizeEmail trims and lowercases an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Normalize trims every field except the password and lowercases the email.
func (r *SignupRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = NormalizeEmail(r.Email)
	r.PhoneNumber = strings.TrimSpace(r.PhoneNumber)
	r.Gender = strings.TrimSpace(r.Gender)
	r.DateOfBirth = strings.TrimSpace(r.DateOfBirth)
	r.MembershipStatus = strings.TrimSpace(r.MembershipStatus)
}

// Validate checks field presence first, then formats (email, date, membership).
// Password strength is checked separately by the password policy.
func (r *SignupRequest) Validate() error {
	return validateStruct(r)
}

func (r *LoginRequest) Validate() error {
	return validateStruct(r)
}
