package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/LUISFELIPE01010/secure-haven-agency/internal/domain"
)

func TestFilename(t *testing.T) {
	now := time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)
	require.Equal(t, "secure-haven-submissions-2025-03-15.xlsx", Filename(now))
}

func TestWriteWorkbook_TwoSheets(t *testing.T) {
	createdAt := time.Date(2025, time.March, 15, 9, 30, 0, 0, time.UTC)
	quotes := []domain.QuoteSubmission{
		{
			FirstName: "Ana",
			LastName:  "Silva",
			Email:     "ana@example.com",
			Phone:     "555-1234",
			HelpType:  domain.HelpTypeQuote,
			Language:  domain.LanguagePortuguese,
			CreatedAt: createdAt,
		},
		{
			FirstName: "Bea",
			LastName:  "Souza",
			Email:     "bea@example.com",
			Phone:     "555-5678",
			HelpType:  domain.HelpTypeUnset,
			Language:  domain.LanguageEnglish,
			CreatedAt: createdAt.Add(-time.Hour),
		},
	}
	contacts := []domain.ContactSubmission{
		{
			FirstName: "Caio",
			LastName:  "Lima",
			Email:     "caio@example.com",
			Phone:     "555-9999",
			Message:   "Please call me back",
			CreatedAt: createdAt,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteWorkbook(&buf, quotes, contacts))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	require.ElementsMatch(t, []string{QuoteSheet, ContactSheet}, f.GetSheetList())

	quoteRows, err := f.GetRows(QuoteSheet)
	require.NoError(t, err)
	require.Len(t, quoteRows, 3)
	require.Equal(t,
		[]string{"First Name", "Last Name", "Email", "Phone", "Help Type", "Language", "Date"},
		quoteRows[0])
	require.Equal(t,
		[]string{"Ana", "Silva", "ana@example.com", "555-1234", "quote", "pt", "2025-03-15 09:30"},
		quoteRows[1])

	// Unset help type exports as a dash.
	require.Equal(t, "-", quoteRows[2][4])

	contactRows, err := f.GetRows(ContactSheet)
	require.NoError(t, err)
	require.Len(t, contactRows, 2)
	require.Equal(t,
		[]string{"First Name", "Last Name", "Email", "Phone", "Message", "Date"},
		contactRows[0])
	require.Equal(t, "Please call me back", contactRows[1][4])
}

func TestWriteWorkbook_EmptySequences(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteWorkbook(&buf, nil, nil))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	quoteRows, err := f.GetRows(QuoteSheet)
	require.NoError(t, err)
	require.Len(t, quoteRows, 1)
}
