package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/LUISFELIPE01010/secure-haven-agency/internal/domain"
	"github.com/LUISFELIPE01010/secure-haven-agency/internal/events"
	"github.com/LUISFELIPE01010/secure-haven-agency/internal/repository"
	apperrors "github.com/LUISFELIPE01010/secure-haven-agency/pkg/util"
)

type fakeQuotes struct {
	items     []domain.QuoteSubmission
	createErr error
	listErr   error
	clock     func() time.Time
}

var _ repository.QuoteRepository = (*fakeQuotes)(nil)

func (f *fakeQuotes) Create(_ context.Context, sub *domain.QuoteSubmission) error {
	if f.createErr != nil {
		return f.createErr
	}
	sub.ID = fmt.Sprintf("q-%d", len(f.items)+1)
	sub.CreatedAt = f.clock()
	f.items = append([]domain.QuoteSubmission{*sub}, f.items...)
	return nil
}

func (f *fakeQuotes) ListNewestFirst(_ context.Context) ([]domain.QuoteSubmission, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]domain.QuoteSubmission(nil), f.items...), nil
}

func (f *fakeQuotes) Delete(_ context.Context, id string) error {
	for i, sub := range f.items {
		if sub.ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return pgx.ErrNoRows
}

type fakeContacts struct {
	items     []domain.ContactSubmission
	createErr error
	clock     func() time.Time
}

var _ repository.ContactRepository = (*fakeContacts)(nil)

func (f *fakeContacts) Create(_ context.Context, sub *domain.ContactSubmission) error {
	if f.createErr != nil {
		return f.createErr
	}
	sub.ID = fmt.Sprintf("c-%d", len(f.items)+1)
	sub.CreatedAt = f.clock()
	f.items = append([]domain.ContactSubmission{*sub}, f.items...)
	return nil
}

func (f *fakeContacts) ListNewestFirst(_ context.Context) ([]domain.ContactSubmission, error) {
	return append([]domain.ContactSubmission(nil), f.items...), nil
}

func (f *fakeContacts) Delete(_ context.Context, id string) error {
	for i, sub := range f.items {
		if sub.ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return pgx.ErrNoRows
}

type recordingDispatcher struct {
	published []events.Event
}

var _ events.Dispatcher = (*recordingDispatcher)(nil)

func (d *recordingDispatcher) Publish(_ context.Context, event events.Event) error {
	d.published = append(d.published, event)
	return nil
}

func (d *recordingDispatcher) Subscribe(events.EventType, events.EventHandler) {}

func fixedClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}

func newSubmissionFixture(now time.Time) (*SubmissionService, *fakeQuotes, *fakeContacts, *recordingDispatcher) {
	quotes := &fakeQuotes{clock: fixedClock(now)}
	contacts := &fakeContacts{clock: fixedClock(now)}
	dispatcher := &recordingDispatcher{}
	svc := NewSubmissionService(quotes, contacts, dispatcher, zap.NewNop()).WithClock(fixedClock(now))
	return svc, quotes, contacts, dispatcher
}

func validQuoteInput() QuoteInput {
	return QuoteInput{
		FirstName: "Ana",
		LastName:  "Silva",
		Email:     "ana@example.com",
		Phone:     "555-1234",
		HelpType:  "quote",
		Language:  "pt",
		Consent:   true,
	}
}

func TestSubmitQuote_StoresExactlyOneRecord(t *testing.T) {
	now := time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)
	svc, quotes, _, dispatcher := newSubmissionFixture(now)

	sub, err := svc.SubmitQuote(context.Background(), validQuoteInput())
	require.NoError(t, err)
	require.NotEmpty(t, sub.ID)
	require.Equal(t, domain.LanguagePortuguese, sub.Language)
	require.Equal(t, domain.HelpTypeQuote, sub.HelpType)
	require.Len(t, quotes.items, 1)

	require.Len(t, dispatcher.published, 1)
	require.Equal(t, events.EventQuoteReceived, dispatcher.published[0].Type)

	// The new record leads a subsequent descending fetch.
	listed, err := svc.ListQuotes(context.Background(), domain.WindowAll)
	require.NoError(t, err)
	require.Equal(t, sub.ID, listed[0].ID)
}

func TestSubmitQuote_ConsentRequired(t *testing.T) {
	svc, quotes, _, dispatcher := newSubmissionFixture(time.Now())

	input := validQuoteInput()
	input.Consent = false
	_, err := svc.SubmitQuote(context.Background(), input)
	require.Error(t, err)

	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	require.Equal(t, "VALIDATION_FAILED", domainErr.Code)

	// Nothing reached storage, nothing was announced.
	require.Empty(t, quotes.items)
	require.Empty(t, dispatcher.published)
}

func TestSubmitQuote_RequiredFields(t *testing.T) {
	svc, quotes, _, _ := newSubmissionFixture(time.Now())

	for _, mutate := range []func(*QuoteInput){
		func(in *QuoteInput) { in.FirstName = "" },
		func(in *QuoteInput) { in.LastName = "  " },
		func(in *QuoteInput) { in.Email = "" },
		func(in *QuoteInput) { in.Phone = "" },
		func(in *QuoteInput) { in.Email = "not-an-email" },
		func(in *QuoteInput) { in.HelpType = "complaint" },
		func(in *QuoteInput) { in.Language = "fr" },
	} {
		input := validQuoteInput()
		mutate(&input)
		_, err := svc.SubmitQuote(context.Background(), input)
		require.Error(t, err)
	}
	require.Empty(t, quotes.items)
}

func TestSubmitQuote_BackendFailureInsertsNothing(t *testing.T) {
	svc, quotes, _, dispatcher := newSubmissionFixture(time.Now())
	quotes.createErr = errors.New("connection refused")

	_, err := svc.SubmitQuote(context.Background(), validQuoteInput())
	require.Error(t, err)
	require.Empty(t, quotes.items)
	require.Empty(t, dispatcher.published)
}

func TestSubmitContact_MessageCap(t *testing.T) {
	svc, _, contacts, _ := newSubmissionFixture(time.Now())

	long := make([]rune, maxMessageRunes+1)
	for i := range long {
		long[i] = 'a'
	}
	_, err := svc.SubmitContact(context.Background(), ContactInput{
		FirstName: "Ana",
		LastName:  "Silva",
		Email:     "ana@example.com",
		Phone:     "555-1234",
		Message:   string(long),
		Consent:   true,
	})
	require.Error(t, err)
	require.Empty(t, contacts.items)
}

func TestListQuotes_WindowFiltering(t *testing.T) {
	now := time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)
	svc, quotes, _, _ := newSubmissionFixture(now)

	quotes.items = []domain.QuoteSubmission{
		{ID: "q-today", CreatedAt: now.Add(-2 * time.Hour)},
		{ID: "q-yesterday", CreatedAt: now.AddDate(0, 0, -1)},
		{ID: "q-two-weeks", CreatedAt: now.Add(-14 * 24 * time.Hour)},
		{ID: "q-old", CreatedAt: now.Add(-60 * 24 * time.Hour)},
	}

	all, err := svc.ListQuotes(context.Background(), domain.WindowAll)
	require.NoError(t, err)
	require.Len(t, all, 4)

	today, err := svc.ListQuotes(context.Background(), domain.WindowToday)
	require.NoError(t, err)
	require.Len(t, today, 1)
	require.Equal(t, "q-today", today[0].ID)

	week, err := svc.ListQuotes(context.Background(), domain.WindowThisWeek)
	require.NoError(t, err)
	require.Len(t, week, 2)

	month, err := svc.ListQuotes(context.Background(), domain.WindowThisMonth)
	require.NoError(t, err)
	require.Len(t, month, 3)
}

func TestListQuotes_EmptyWindowYieldsEmptySlice(t *testing.T) {
	now := time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)
	svc, quotes, _, _ := newSubmissionFixture(now)

	quotes.items = []domain.QuoteSubmission{
		{ID: "q-yesterday", CreatedAt: now.AddDate(0, 0, -1)},
	}

	today, err := svc.ListQuotes(context.Background(), domain.WindowToday)
	require.NoError(t, err)
	require.NotNil(t, today)
	require.Empty(t, today)
}

func TestDeleteQuote_ThenRefetchExcludesIt(t *testing.T) {
	now := time.Now()
	svc, quotes, _, dispatcher := newSubmissionFixture(now)
	quotes.items = []domain.QuoteSubmission{
		{ID: "q-1", CreatedAt: now},
		{ID: "q-2", CreatedAt: now.Add(-time.Hour)},
	}

	require.NoError(t, svc.DeleteQuote(context.Background(), "q-1", "admin-1"))

	listed, err := svc.ListQuotes(context.Background(), domain.WindowAll)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	for _, sub := range listed {
		require.NotEqual(t, "q-1", sub.ID)
	}

	require.Len(t, dispatcher.published, 1)
	require.Equal(t, events.EventSubmissionDeleted, dispatcher.published[0].Type)
}

func TestDeleteQuote_MissingIsNotFound(t *testing.T) {
	svc, _, _, _ := newSubmissionFixture(time.Now())

	err := svc.DeleteQuote(context.Background(), "nope", "admin-1")
	require.Error(t, err)

	var domainErr *apperrors.DomainError
	require.ErrorAs(t, err, &domainErr)
	require.Equal(t, "NOT_FOUND", domainErr.Code)
}

func TestExportSnapshot_IgnoresWindow(t *testing.T) {
	now := time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)
	svc, quotes, contacts, _ := newSubmissionFixture(now)

	quotes.items = []domain.QuoteSubmission{
		{ID: "q-1", CreatedAt: now.Add(-90 * 24 * time.Hour)},
	}
	contacts.items = []domain.ContactSubmission{
		{ID: "c-1", CreatedAt: now.Add(-90 * 24 * time.Hour)},
	}

	qs, cs, err := svc.ExportSnapshot(context.Background())
	require.NoError(t, err)
	require.Len(t, qs, 1)
	require.Len(t, cs, 1)
}
