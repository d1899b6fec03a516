package handlers

import (
	"bytes"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/LUISFELIPE01010/secure-haven-agency/internal/api/dto"
	"github.com/LUISFELIPE01010/secure-haven-agency/internal/auth"
	"github.com/LUISFELIPE01010/secure-haven-agency/internal/domain"
	"github.com/LUISFELIPE01010/secure-haven-agency/internal/export"
	"github.com/LUISFELIPE01010/secure-haven-agency/internal/service"
	apperrors "github.com/LUISFELIPE01010/secure-haven-agency/pkg/util"
)

// AdminHandler exposes the submission browser and export endpoints. Every
// route behind it is already authenticated and role-checked by the guard.
type AdminHandler struct {
	submissions *service.SubmissionService
}

// NewAdminHandler constructs handler.
func NewAdminHandler(submissions *service.SubmissionService) *AdminHandler {
	return &AdminHandler{submissions: submissions}
}

// ListQuotes handles GET /api/admin/submissions/quotes?window=.
func (h *AdminHandler) ListQuotes(c *fiber.Ctx) error {
	window, err := domain.ParseTimeWindow(c.Query("window"))
	if err != nil {
		return apperrors.NewValidationError(err.Error(), nil)
	}

	quotes, err := h.submissions.ListQuotes(c.UserContext(), window)
	if err != nil {
		return err
	}

	items := make([]dto.QuoteSubmissionResponse, 0, len(quotes))
	for i := range quotes {
		items = append(items, dto.NewQuoteSubmissionResponse(&quotes[i]))
	}
	return c.JSON(fiber.Map{
		"data":   items,
		"count":  len(items),
		"window": string(window),
	})
}

// ListContacts handles GET /api/admin/submissions/contacts?window=.
func (h *AdminHandler) ListContacts(c *fiber.Ctx) error {
	window, err := domain.ParseTimeWindow(c.Query("window"))
	if err != nil {
		return apperrors.NewValidationError(err.Error(), nil)
	}

	contacts, err := h.submissions.ListContacts(c.UserContext(), window)
	if err != nil {
		return err
	}

	items := make([]dto.ContactSubmissionResponse, 0, len(contacts))
	for i := range contacts {
		items = append(items, dto.NewContactSubmissionResponse(&contacts[i]))
	}
	return c.JSON(fiber.Map{
		"data":   items,
		"count":  len(items),
		"window": string(window),
	})
}

// DeleteQuote handles DELETE /api/admin/submissions/quotes/:id.
func (h *AdminHandler) DeleteQuote(c *fiber.Ctx) error {
	principal, _ := auth.PrincipalFromContext(c)
	if err := h.submissions.DeleteQuote(c.UserContext(), c.Params("id"), principalID(principal)); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"deleted": c.Params("id")}})
}

// DeleteContact handles DELETE /api/admin/submissions/contacts/:id.
func (h *AdminHandler) DeleteContact(c *fiber.Ctx) error {
	principal, _ := auth.PrincipalFromContext(c)
	if err := h.submissions.DeleteContact(c.UserContext(), c.Params("id"), principalID(principal)); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"deleted": c.Params("id")}})
}

// Export handles GET /api/admin/submissions/export. The workbook is encoded
// fully in memory before any byte is sent, so a failed encode returns a clean
// error response instead of a truncated file.
func (h *AdminHandler) Export(c *fiber.Ctx) error {
	quotes, contacts, err := h.submissions.ExportSnapshot(c.UserContext())
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := export.WriteWorkbook(&buf, quotes, contacts); err != nil {
		return apperrors.NewInternalError(err)
	}

	filename := export.Filename(time.Now())
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(buf.Bytes())
}

func principalID(principal *auth.Principal) string {
	if principal == nil || principal.User == nil {
		return ""
	}
	return principal.User.ID
}
