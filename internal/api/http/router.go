package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/LUISFELIPE01010/secure-haven-agency/internal/api/http/handlers"
	"github.com/LUISFELIPE01010/secure-haven-agency/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health      *handlers.HealthHandler
	Pages       *handlers.PagesHandler
	Submissions *handlers.SubmissionsHandler
	Auth        *handlers.AuthHandler
	Admin       *handlers.AdminHandler
	Guard       *auth.Guard
}

// RegisterRoutes wires HTTP routes. Public routes take unauthenticated form
// submissions; everything under /api/admin passes the guard first.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group("/api")

	api.Get("/pages", cfg.Pages.List)
	api.Get("/pages/:slug", cfg.Pages.Get)

	api.Post("/submissions/quote", cfg.Submissions.SubmitQuote)
	api.Post("/submissions/contact", cfg.Submissions.SubmitContact)

	authGroup := api.Group("/auth")
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Post("/logout", cfg.Guard.Authenticate, cfg.Auth.Logout)
	authGroup.Get("/session", cfg.Guard.Authenticate, cfg.Guard.RequireAdmin, cfg.Auth.Session)

	admin := api.Group("/admin", cfg.Guard.Authenticate, cfg.Guard.RequireAdmin)
	admin.Get("/submissions/quotes", cfg.Admin.ListQuotes)
	admin.Get("/submissions/contacts", cfg.Admin.ListContacts)
	admin.Delete("/submissions/quotes/:id", cfg.Admin.DeleteQuote)
	admin.Delete("/submissions/contacts/:id", cfg.Admin.DeleteContact)
	admin.Get("/submissions/export", cfg.Admin.Export)
}
