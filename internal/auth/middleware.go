package auth

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/LUISFELIPE01010/secure-haven-agency/internal/domain"
	"github.com/LUISFELIPE01010/secure-haven-agency/internal/repository"
	apperrors "github.com/LUISFELIPE01010/secure-haven-agency/pkg/util"
)

const principalKey = "auth_principal"

// Principal represents the authenticated admin caller.
type Principal struct {
	User      *domain.AdminUser
	Grant     *domain.RoleGrant
	SessionID string
}

// Guard validates bearer tokens, checks the live session, and verifies the
// admin role grant. Every failure path denies access: a missing or broken
// session is unauthenticated, a missing grant is forbidden, and any other
// grant-lookup failure is unauthenticated rather than falling through to
// admin content.
type Guard struct {
	tokens   *TokenManager
	sessions SessionStore
	admins   repository.AdminRepository
}

// NewGuard constructs the middleware.
func NewGuard(tokens *TokenManager, sessions SessionStore, admins repository.AdminRepository) *Guard {
	return &Guard{tokens: tokens, sessions: sessions, admins: admins}
}

// Authenticate resolves the bearer token to a live session and loads the user.
func (g *Guard) Authenticate(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return apperrors.NewUnauthenticated("missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return apperrors.NewUnauthenticated("invalid authorization header")
	}

	claims, err := g.tokens.ParseToken(parts[1])
	if err != nil {
		return apperrors.NewUnauthenticated("invalid token")
	}

	userID, err := g.sessions.Get(c.UserContext(), claims.SessionID)
	if err != nil || userID != claims.Subject {
		return apperrors.NewUnauthenticated("session expired")
	}

	user, err := g.admins.GetUserByID(c.UserContext(), userID)
	if err != nil {
		return apperrors.NewUnauthenticated("unknown user")
	}

	c.Locals(principalKey, &Principal{User: user, SessionID: claims.SessionID})
	return c.Next()
}

// RequireAdmin verifies the authenticated user holds the admin role grant.
func (g *Guard) RequireAdmin(c *fiber.Ctx) error {
	principal, ok := PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthenticated("authentication required")
	}

	grant, err := g.admins.GetRoleGrant(c.UserContext(), principal.User.ID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewForbidden("admin role required")
		}
		return apperrors.NewUnauthenticated("unable to verify role")
	}

	principal.Grant = grant
	return c.Next()
}

// PrincipalFromContext retrieves the authenticated entity.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*Principal)
	return principal, ok
}
