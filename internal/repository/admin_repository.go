package repository

import (
	"context"

	"github.com/LUISFELIPE01010/secure-haven-agency/internal/domain"
)

// AdminRepository defines persistence access for admin users and role grants.
type AdminRepository interface {
	CreateUser(ctx context.Context, user *domain.AdminUser) error
	GetUserByID(ctx context.Context, id string) (*domain.AdminUser, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.AdminUser, error)
	UpsertRoleGrant(ctx context.Context, userID string, role domain.AdminRole) error
	GetRoleGrant(ctx context.Context, userID string) (*domain.RoleGrant, error)
}

type adminRepository struct {
	pool PgxPool
}

// NewAdminRepository returns a Postgres-backed implementation.
func NewAdminRepository(pool PgxPool) AdminRepository {
	return &adminRepository{pool: pool}
}

func (r *adminRepository) CreateUser(ctx context.Context, user *domain.AdminUser) error {
	const query = `
        INSERT INTO admin_users (email, password_hash)
        VALUES ($1, $2)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		user.Email,
		user.PasswordHash,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
}

func (r *adminRepository) GetUserByID(ctx context.Context, id string) (*domain.AdminUser, error) {
	const query = `
        SELECT id, email, password_hash, created_at, updated_at
        FROM admin_users WHERE id=$1`
	return r.fetchUser(ctx, query, id)
}

func (r *adminRepository) GetUserByEmail(ctx context.Context, email string) (*domain.AdminUser, error) {
	const query = `
        SELECT id, email, password_hash, created_at, updated_at
        FROM admin_users WHERE email=$1`
	return r.fetchUser(ctx, query, email)
}

func (r *adminRepository) fetchUser(ctx context.Context, query string, arg any) (*domain.AdminUser, error) {
	var user domain.AdminUser
	if err := r.pool.QueryRow(ctx, query, arg).Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.CreatedAt,
		&user.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *adminRepository) UpsertRoleGrant(ctx context.Context, userID string, role domain.AdminRole) error {
	const query = `
        INSERT INTO admin_roles (user_id, role)
        VALUES ($1, $2)
        ON CONFLICT (user_id, role) DO NOTHING`

	_, err := r.pool.Exec(ctx, query, userID, string(role))
	return err
}

func (r *adminRepository) GetRoleGrant(ctx context.Context, userID string) (*domain.RoleGrant, error) {
	const query = `
        SELECT id, user_id, role, created_at
        FROM admin_roles WHERE user_id=$1 AND role=$2`

	var grant domain.RoleGrant
	var role string
	if err := r.pool.QueryRow(ctx, query, userID, string(domain.RoleAdmin)).Scan(
		&grant.ID,
		&grant.UserID,
		&role,
		&grant.CreatedAt,
	); err != nil {
		return nil, err
	}
	grant.Role = domain.AdminRole(role)
	return &grant, nil
}
