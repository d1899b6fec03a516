package events

import (
	"time"

	"github.com/LUISFELIPE01010/secure-haven-agency/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventQuoteReceived     EventType = "quote_received"
	EventContactReceived   EventType = "contact_received"
	EventSubmissionDeleted EventType = "submission_deleted"
	EventAdminProvisioned  EventType = "admin_provisioned"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// QuoteReceivedPayload payload.
type QuoteReceivedPayload struct {
	SubmissionID string          `json:"submission_id"`
	Email        string          `json:"email"`
	HelpType     domain.HelpType `json:"help_type,omitempty"`
	Language     domain.Language `json:"language"`
}

// ContactReceivedPayload payload.
type ContactReceivedPayload struct {
	SubmissionID string `json:"submission_id"`
	Email        string `json:"email"`
}

// SubmissionDeletedPayload payload.
type SubmissionDeletedPayload struct {
	SubmissionID string `json:"submission_id"`
	Store        string `json:"store"`
	DeletedBy    string `json:"deleted_by"`
}

// AdminProvisionedPayload payload.
type AdminProvisionedPayload struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}
