package dto

import (
	"time"

	"github.com/LUISFELIPE01010/secure-haven-agency/internal/domain"
)

// QuoteSubmissionRequest payload for the public quote form.
type QuoteSubmissionRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	HelpType  string `json:"help_type"`
	Language  string `json:"language"`
	Consent   bool   `json:"consent"`
}

// ContactSubmissionRequest payload for the public contact form.
type ContactSubmissionRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Message   string `json:"message"`
	Consent   bool   `json:"consent"`
}

// QuoteSubmissionResponse is the admin view of a stored quote request.
type QuoteSubmissionResponse struct {
	ID        string    `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	HelpType  string    `json:"help_type,omitempty"`
	Language  string    `json:"language"`
	CreatedAt time.Time `json:"created_at"`
}

// ContactSubmissionResponse is the admin view of a stored contact message.
type ContactSubmissionResponse struct {
	ID        string    `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// NewQuoteSubmissionResponse maps a domain record onto the wire shape.
func NewQuoteSubmissionResponse(sub *domain.QuoteSubmission) QuoteSubmissionResponse {
	return QuoteSubmissionResponse{
		ID:        sub.ID,
		FirstName: sub.FirstName,
		LastName:  sub.LastName,
		Email:     sub.Email,
		Phone:     sub.Phone,
		HelpType:  string(sub.HelpType),
		Language:  string(sub.Language),
		CreatedAt: sub.CreatedAt,
	}
}

// NewContactSubmissionResponse maps a domain record onto the wire shape.
func NewContactSubmissionResponse(sub *domain.ContactSubmission) ContactSubmissionResponse {
	return ContactSubmissionResponse{
		ID:        sub.ID,
		FirstName: sub.FirstName,
		LastName:  sub.LastName,
		Email:     sub.Email,
		Phone:     sub.Phone,
		Message:   sub.Message,
		CreatedAt: sub.CreatedAt,
	}
}
