package service

import (
	"context"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/LUISFELIPE01010/secure-haven-agency/internal/domain"
	"github.com/LUISFELIPE01010/secure-haven-agency/internal/events"
	"github.com/LUISFELIPE01010/secure-haven-agency/internal/repository"
	apperrors "github.com/LUISFELIPE01010/secure-haven-agency/pkg/util"
)

// Free-text messages are capped to keep abuse of the public endpoint bounded.
const maxMessageRunes = 4000

// QuoteInput carries a draft quote request from the public form.
type QuoteInput struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	HelpType  string
	Language  string
	Consent   bool
}

// ContactInput carries a draft contact message from the public form.
type ContactInput struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Message   string
	Consent   bool
}

// SubmissionService owns the lead-capture and admin-review workflow.
type SubmissionService struct {
	quotes     repository.QuoteRepository
	contacts   repository.ContactRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger
	clock      func() time.Time
}

// NewSubmissionService builds the service.
func NewSubmissionService(quotes repository.QuoteRepository, contacts repository.ContactRepository, dispatcher events.Dispatcher, logger *zap.Logger) *SubmissionService {
	return &SubmissionService{
		quotes:     quotes,
		contacts:   contacts,
		dispatcher: dispatcher,
		logger:     logger,
		clock:      time.Now,
	}
}

// WithClock overrides the time source. Test use only.
func (s *SubmissionService) WithClock(clock func() time.Time) *SubmissionService {
	s.clock = clock
	return s
}

// SubmitQuote validates and stores exactly one quote submission.
func (s *SubmissionService) SubmitQuote(ctx context.Context, input QuoteInput) (*domain.QuoteSubmission, error) {
	details := map[string]any{}
	requireField(details, "first_name", input.FirstName)
	requireField(details, "last_name", input.LastName)
	requireField(details, "email", input.Email)
	requireField(details, "phone", input.Phone)
	if !input.Consent {
		details["consent"] = "consent is required"
	}
	if input.Email != "" {
		if _, err := mail.ParseAddress(strings.TrimSpace(input.Email)); err != nil {
			details["email"] = "invalid email address"
		}
	}

	helpType, err := domain.ParseHelpType(input.HelpType)
	if err != nil {
		details["help_type"] = err.Error()
	}
	language, err := domain.ParseLanguage(input.Language)
	if err != nil {
		details["language"] = err.Error()
	}
	if len(details) > 0 {
		return nil, apperrors.NewValidationError("invalid quote submission", details)
	}

	sub := &domain.QuoteSubmission{
		FirstName: strings.TrimSpace(input.FirstName),
		LastName:  strings.TrimSpace(input.LastName),
		Email:     strings.TrimSpace(input.Email),
		Phone:     strings.TrimSpace(input.Phone),
		HelpType:  helpType,
		Language:  language,
		Consent:   input.Consent,
	}
	if err := s.quotes.Create(ctx, sub); err != nil {
		return nil, apperrors.MapError(err)
	}

	s.publish(ctx, events.EventQuoteReceived, events.QuoteReceivedPayload{
		SubmissionID: sub.ID,
		Email:        sub.Email,
		HelpType:     sub.HelpType,
		Language:     sub.Language,
	})
	return sub, nil
}

// SubmitContact validates and stores exactly one contact submission.
func (s *SubmissionService) SubmitContact(ctx context.Context, input ContactInput) (*domain.ContactSubmission, error) {
	details := map[string]any{}
	requireField(details, "first_name", input.FirstName)
	requireField(details, "last_name", input.LastName)
	requireField(details, "email", input.Email)
	requireField(details, "phone", input.Phone)
	requireField(details, "message", input.Message)
	if !input.Consent {
		details["consent"] = "consent is required"
	}
	if input.Email != "" {
		if _, err := mail.ParseAddress(strings.TrimSpace(input.Email)); err != nil {
			details["email"] = "invalid email address"
		}
	}
	if len([]rune(input.Message)) > maxMessageRunes {
		details["message"] = "message too long"
	}
	if len(details) > 0 {
		return nil, apperrors.NewValidationError("invalid contact submission", details)
	}

	sub := &domain.ContactSubmission{
		FirstName: strings.TrimSpace(input.FirstName),
		LastName:  strings.TrimSpace(input.LastName),
		Email:     strings.TrimSpace(input.Email),
		Phone:     strings.TrimSpace(input.Phone),
		Message:   strings.TrimSpace(input.Message),
		Consent:   input.Consent,
	}
	if err := s.contacts.Create(ctx, sub); err != nil {
		return nil, apperrors.MapError(err)
	}

	s.publish(ctx, events.EventContactReceived, events.ContactReceivedPayload{
		SubmissionID: sub.ID,
		Email:        sub.Email,
	})
	return sub, nil
}

// ListQuotes fetches all quote submissions newest first, then narrows them to
// the window using the clock at call time.
func (s *SubmissionService) ListQuotes(ctx context.Context, window domain.TimeWindow) ([]domain.QuoteSubmission, error) {
	all, err := s.quotes.ListNewestFirst(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	if window == domain.WindowAll {
		return all, nil
	}
	now := s.clock()
	filtered := make([]domain.QuoteSubmission, 0, len(all))
	for _, sub := range all {
		if window.Contains(now, sub.CreatedAt) {
			filtered = append(filtered, sub)
		}
	}
	return filtered, nil
}

// ListContacts fetches all contact submissions newest first, then narrows them
// to the window using the clock at call time.
func (s *SubmissionService) ListContacts(ctx context.Context, window domain.TimeWindow) ([]domain.ContactSubmission, error) {
	all, err := s.contacts.ListNewestFirst(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	if window == domain.WindowAll {
		return all, nil
	}
	now := s.clock()
	filtered := make([]domain.ContactSubmission, 0, len(all))
	for _, sub := range all {
		if window.Contains(now, sub.CreatedAt) {
			filtered = append(filtered, sub)
		}
	}
	return filtered, nil
}

// DeleteQuote removes a quote submission by identifier.
func (s *SubmissionService) DeleteQuote(ctx context.Context, id, deletedBy string) error {
	if err := s.quotes.Delete(ctx, id); err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewNotFound("quote submission", map[string]any{"id": id})
		}
		return apperrors.MapError(err)
	}
	s.publish(ctx, events.EventSubmissionDeleted, events.SubmissionDeletedPayload{
		SubmissionID: id,
		Store:        "quotes",
		DeletedBy:    deletedBy,
	})
	return nil
}

// DeleteContact removes a contact submission by identifier.
func (s *SubmissionService) DeleteContact(ctx context.Context, id, deletedBy string) error {
	if err := s.contacts.Delete(ctx, id); err != nil {
		if err == pgx.ErrNoRows {
			return apperrors.NewNotFound("contact submission", map[string]any{"id": id})
		}
		return apperrors.MapError(err)
	}
	s.publish(ctx, events.EventSubmissionDeleted, events.SubmissionDeletedPayload{
		SubmissionID: id,
		Store:        "contacts",
		DeletedBy:    deletedBy,
	})
	return nil
}

// ExportSnapshot fetches the full unfiltered sequences for export. The active
// browser window never applies here.
func (s *SubmissionService) ExportSnapshot(ctx context.Context) ([]domain.QuoteSubmission, []domain.ContactSubmission, error) {
	quotes, err := s.quotes.ListNewestFirst(ctx)
	if err != nil {
		return nil, nil, apperrors.MapError(err)
	}
	contacts, err := s.contacts.ListNewestFirst(ctx)
	if err != nil {
		return nil, nil, apperrors.MapError(err)
	}
	return quotes, contacts, nil
}

func (s *SubmissionService) publish(ctx context.Context, eventType events.EventType, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	event := events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Timestamp: s.clock(),
		Payload:   payload,
	}
	if err := s.dispatcher.Publish(ctx, event); err != nil {
		s.logger.Warn("event publish failed", zap.String("type", string(eventType)), zap.Error(err))
	}
}

func requireField(details map[string]any, name, value string) {
	if strings.TrimSpace(value) == "" {
		details[name] = name + " is required"
	}
}
