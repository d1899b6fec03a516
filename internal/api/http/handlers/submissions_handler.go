package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/LUISFELIPE01010/secure-haven-agency/internal/api/dto"
	"github.com/LUISFELIPE01010/secure-haven-agency/internal/service"
	apperrors "github.com/LUISFELIPE01010/secure-haven-agency/pkg/util"
)

// SubmissionsHandler exposes the public lead-capture endpoints.
type SubmissionsHandler struct {
	submissions *service.SubmissionService
}

// NewSubmissionsHandler constructs handler.
func NewSubmissionsHandler(submissions *service.SubmissionService) *SubmissionsHandler {
	return &SubmissionsHandler{submissions: submissions}
}

// SubmitQuote handles POST /api/submissions/quote.
func (h *SubmissionsHandler) SubmitQuote(c *fiber.Ctx) error {
	var req dto.QuoteSubmissionRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	sub, err := h.submissions.SubmitQuote(c.UserContext(), service.QuoteInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		HelpType:  req.HelpType,
		Language:  req.Language,
		Consent:   req.Consent,
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"data": dto.NewQuoteSubmissionResponse(sub),
	})
}

// SubmitContact handles POST /api/submissions/contact.
func (h *SubmissionsHandler) SubmitContact(c *fiber.Ctx) error {
	var req dto.ContactSubmissionRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	sub, err := h.submissions.SubmitContact(c.UserContext(), service.ContactInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Message:   req.Message,
		Consent:   req.Consent,
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"data": dto.NewContactSubmissionResponse(sub),
	})
}
