package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/LUISFELIPE01010/secure-haven-agency/internal/auth"
	"github.com/LUISFELIPE01010/secure-haven-agency/internal/config"
	"github.com/LUISFELIPE01010/secure-haven-agency/internal/domain"
	"github.com/LUISFELIPE01010/secure-haven-agency/internal/events"
	"github.com/LUISFELIPE01010/secure-haven-agency/internal/repository"
	apperrors "github.com/LUISFELIPE01010/secure-haven-agency/pkg/util"
)

// AuthService coordinates admin sign-in, sign-out and provisioning.
type AuthService struct {
	admins     repository.AdminRepository
	sessions   auth.SessionStore
	tokenMgr   *auth.TokenManager
	dispatcher events.Dispatcher
	logger     *zap.Logger
	bcryptCost int
}

// AuthDependencies encapsulates requirements for the auth service.
type AuthDependencies struct {
	AdminRepo    repository.AdminRepository
	SessionStore auth.SessionStore
	Dispatcher   events.Dispatcher
	Logger       *zap.Logger
}

// NewAuthService builds the service.
func NewAuthService(cfg config.AuthConfig, deps AuthDependencies) *AuthService {
	return &AuthService{
		admins:     deps.AdminRepo,
		sessions:   deps.SessionStore,
		tokenMgr:   auth.NewTokenManager(cfg.JWTSecret, cfg.SessionTTLMinutes),
		dispatcher: deps.Dispatcher,
		logger:     deps.Logger,
		bcryptCost: cfg.BcryptCost,
	}
}

// Login authenticates an admin user and opens a live session.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.AdminUser, string, time.Time, error) {
	user, err := s.admins.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, "", time.Time{}, apperrors.NewUnauthenticated("invalid credentials")
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, apperrors.NewUnauthenticated("invalid credentials")
	}

	sessionID := uuid.NewString()
	token, exp, err := s.tokenMgr.GenerateToken(user.ID, sessionID)
	if err != nil {
		return nil, "", time.Time{}, apperrors.NewInternalError(err)
	}
	if err := s.sessions.Put(ctx, sessionID, user.ID, s.tokenMgr.TTL()); err != nil {
		return nil, "", time.Time{}, apperrors.NewInternalError(err)
	}
	return user, token, exp, nil
}

// SignOut invalidates the live session behind the presented token.
func (s *AuthService) SignOut(ctx context.Context, sessionID string) error {
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return apperrors.NewInternalError(err)
	}
	return nil
}

// ProvisionAdmin creates the admin user when missing and guarantees its role
// grant exists. Safe to run repeatedly.
func (s *AuthService) ProvisionAdmin(ctx context.Context, email, password string) (*domain.AdminUser, error) {
	if email == "" || password == "" {
		return nil, apperrors.NewValidationError("email and password required", nil)
	}

	user, err := s.admins.GetUserByEmail(ctx, email)
	switch {
	case err == nil:
		// Existing user keeps its password; only the grant is reconciled.
	case errors.Is(err, pgx.ErrNoRows):
		hash, hashErr := auth.HashPassword(password, s.bcryptCost)
		if hashErr != nil {
			return nil, apperrors.NewInternalError(hashErr)
		}
		user = &domain.AdminUser{Email: email, PasswordHash: hash}
		if createErr := s.admins.CreateUser(ctx, user); createErr != nil {
			return nil, apperrors.MapError(createErr)
		}
	default:
		return nil, apperrors.MapError(err)
	}

	if err := s.admins.UpsertRoleGrant(ctx, user.ID, domain.RoleAdmin); err != nil {
		return nil, apperrors.MapError(err)
	}

	if s.dispatcher != nil {
		event := events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventAdminProvisioned,
			Timestamp: time.Now(),
			Payload:   events.AdminProvisionedPayload{UserID: user.ID, Email: user.Email},
		}
		if err := s.dispatcher.Publish(ctx, event); err != nil {
			s.logger.Warn("event publish failed", zap.Error(err))
		}
	}
	return user, nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
