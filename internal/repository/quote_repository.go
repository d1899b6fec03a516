package repository

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/LUISFELIPE01010/secure-haven-agency/internal/domain"
)

// QuoteRepository encapsulates quote submission persistence.
type QuoteRepository interface {
	Create(ctx context.Context, sub *domain.QuoteSubmission) error
	ListNewestFirst(ctx context.Context) ([]domain.QuoteSubmission, error)
	Delete(ctx context.Context, id string) error
}

type quoteRepository struct {
	pool PgxPool
}

// NewQuoteRepository returns a Postgres-backed implementation.
func NewQuoteRepository(pool PgxPool) QuoteRepository {
	return &quoteRepository{pool: pool}
}

func (r *quoteRepository) Create(ctx context.Context, sub *domain.QuoteSubmission) error {
	const query = `
        INSERT INTO quote_submissions (first_name, last_name, email, phone, help_type, language, consent)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id, created_at`

	var helpType *string
	if sub.HelpType != domain.HelpTypeUnset {
		value := string(sub.HelpType)
		helpType = &value
	}

	return r.pool.QueryRow(ctx, query,
		sub.FirstName,
		sub.LastName,
		sub.Email,
		sub.Phone,
		helpType,
		string(sub.Language),
		sub.Consent,
	).Scan(&sub.ID, &sub.CreatedAt)
}

func (r *quoteRepository) ListNewestFirst(ctx context.Context) ([]domain.QuoteSubmission, error) {
	const query = `
        SELECT id, first_name, last_name, email, phone, help_type, language, consent, created_at
        FROM quote_submissions
        ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.QuoteSubmission
	for rows.Next() {
		var sub domain.QuoteSubmission
		var helpType *string
		var language string
		if err := rows.Scan(
			&sub.ID,
			&sub.FirstName,
			&sub.LastName,
			&sub.Email,
			&sub.Phone,
			&helpType,
			&language,
			&sub.Consent,
			&sub.CreatedAt,
		); err != nil {
			return nil, err
		}
		if helpType != nil {
			sub.HelpType = domain.HelpType(*helpType)
		}
		sub.Language = domain.Language(language)
		result = append(result, sub)
	}
	return result, rows.Err()
}

func (r *quoteRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM quote_submissions WHERE id=$1`

	cmd, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
