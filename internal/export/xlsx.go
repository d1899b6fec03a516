// Package export encodes already-fetched submission sequences into a
// two-sheet spreadsheet for download. It never touches storage.
package export

import (
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/LUISFELIPE01010/secure-haven-agency/internal/domain"
)

const (
	QuoteSheet   = "Quote Requests"
	ContactSheet = "Contact Messages"

	dateLayout = "2006-01-02 15:04"
)

// Filename embeds the current calendar date in the attachment name.
func Filename(now time.Time) string {
	return fmt.Sprintf("secure-haven-submissions-%s.xlsx", now.Format("2006-01-02"))
}

// BuildWorkbook assembles the two-sheet workbook from the full in-memory
// sequences. Callers own closing the returned file.
func BuildWorkbook(quotes []domain.QuoteSubmission, contacts []domain.ContactSubmission) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", QuoteSheet); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(ContactSheet); err != nil {
		return nil, err
	}

	quoteHeader := []interface{}{"First Name", "Last Name", "Email", "Phone", "Help Type", "Language", "Date"}
	if err := f.SetSheetRow(QuoteSheet, "A1", &quoteHeader); err != nil {
		return nil, err
	}
	for i, sub := range quotes {
		helpType := "-"
		if sub.HelpType != domain.HelpTypeUnset {
			helpType = string(sub.HelpType)
		}
		row := []interface{}{
			sub.FirstName,
			sub.LastName,
			sub.Email,
			sub.Phone,
			helpType,
			string(sub.Language),
			sub.CreatedAt.Format(dateLayout),
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(QuoteSheet, cell, &row); err != nil {
			return nil, err
		}
	}

	contactHeader := []interface{}{"First Name", "Last Name", "Email", "Phone", "Message", "Date"}
	if err := f.SetSheetRow(ContactSheet, "A1", &contactHeader); err != nil {
		return nil, err
	}
	for i, sub := range contacts {
		row := []interface{}{
			sub.FirstName,
			sub.LastName,
			sub.Email,
			sub.Phone,
			sub.Message,
			sub.CreatedAt.Format(dateLayout),
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(ContactSheet, cell, &row); err != nil {
			return nil, err
		}
	}

	return f, nil
}

// WriteWorkbook builds the workbook and streams it to w. Nothing is written
// when the build fails, so a broken export never leaves a partial file.
func WriteWorkbook(w io.Writer, quotes []domain.QuoteSubmission, contacts []domain.ContactSubmission) error {
	f, err := BuildWorkbook(quotes, contacts)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.Write(w)
}
