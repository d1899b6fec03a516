package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/LUISFELIPE01010/secure-haven-agency/internal/domain"
	"github.com/LUISFELIPE01010/secure-haven-agency/internal/i18n"
	apperrors "github.com/LUISFELIPE01010/secure-haven-agency/pkg/util"
)

// PagesHandler serves localized copy for the public informational pages.
type PagesHandler struct {
	catalog     *i18n.Catalog
	defaultLang domain.Language
}

// NewPagesHandler constructs handler.
func NewPagesHandler(catalog *i18n.Catalog, defaultLang string) *PagesHandler {
	lang, err := domain.ParseLanguage(defaultLang)
	if err != nil {
		lang = domain.LanguageEnglish
	}
	return &PagesHandler{catalog: catalog, defaultLang: lang}
}

// List handles GET /api/pages.
func (h *PagesHandler) List(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": h.catalog.Slugs()})
}

// Get handles GET /api/pages/:slug?lang=.
func (h *PagesHandler) Get(c *fiber.Ctx) error {
	lang := h.defaultLang
	if raw := c.Query("lang"); raw != "" {
		parsed, err := domain.ParseLanguage(raw)
		if err != nil {
			return apperrors.NewValidationError(err.Error(), nil)
		}
		lang = parsed
	}

	content, ok := h.catalog.Page(lang, c.Params("slug"))
	if !ok {
		return apperrors.NewNotFound("page", map[string]any{"slug": c.Params("slug")})
	}
	return c.JSON(fiber.Map{
		"data":     content,
		"language": string(lang),
	})
}
