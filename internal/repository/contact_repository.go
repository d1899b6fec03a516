package repository

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/LUISFELIPE01010/secure-haven-agency/internal/domain"
)

// ContactRepository encapsulates contact submission persistence.
type ContactRepository interface {
	Create(ctx context.Context, sub *domain.ContactSubmission) error
	ListNewestFirst(ctx context.Context) ([]domain.ContactSubmission, error)
	Delete(ctx context.Context, id string) error
}

type contactRepository struct {
	pool PgxPool
}

// NewContactRepository returns a Postgres-backed implementation.
func NewContactRepository(pool PgxPool) ContactRepository {
	return &contactRepository{pool: pool}
}

func (r *contactRepository) Create(ctx context.Context, sub *domain.ContactSubmission) error {
	const query = `
        INSERT INTO contact_submissions (first_name, last_name, email, phone, message, consent)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at`

	return r.pool.QueryRow(ctx, query,
		sub.FirstName,
		sub.LastName,
		sub.Email,
		sub.Phone,
		sub.Message,
		sub.Consent,
	).Scan(&sub.ID, &sub.CreatedAt)
}

func (r *contactRepository) ListNewestFirst(ctx context.Context) ([]domain.ContactSubmission, error) {
	const query = `
        SELECT id, first_name, last_name, email, phone, message, consent, created_at
        FROM contact_submissions
        ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.ContactSubmission
	for rows.Next() {
		var sub domain.ContactSubmission
		if err := rows.Scan(
			&sub.ID,
			&sub.FirstName,
			&sub.LastName,
			&sub.Email,
			&sub.Phone,
			&sub.Message,
			&sub.Consent,
			&sub.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, sub)
	}
	return result, rows.Err()
}

func (r *contactRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM contact_submissions WHERE id=$1`

	cmd, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
