package repository

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/require"

	"github.com/LUISFELIPE01010/secure-haven-agency/internal/domain"
)

func TestContactRepo_Create_OK(t *testing.T) {
	mock := newMockPool(t)
	defer mock.Close()
	r := NewContactRepository(mock)

	createdAt := time.Now()
	mock.ExpectQuery(`INSERT INTO contact_submissions`).
		WithArgs("Ana", "Silva", "ana@example.com", "555-1234", "hello", true).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow("c-1", createdAt))

	sub := &domain.ContactSubmission{
		FirstName: "Ana",
		LastName:  "Silva",
		Email:     "ana@example.com",
		Phone:     "555-1234",
		Message:   "hello",
		Consent:   true,
	}
	require.NoError(t, r.Create(context.Background(), sub))
	require.Equal(t, "c-1", sub.ID)
	require.Equal(t, createdAt, sub.CreatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestContactRepo_ListNewestFirst(t *testing.T) {
	mock := newMockPool(t)
	defer mock.Close()
	r := NewContactRepository(mock)

	now := time.Now()
	mock.ExpectQuery(`SELECT id, first_name, last_name, email, phone, message, consent, created_at`).
		WillReturnRows(pgxmock.
			NewRows([]string{"id", "first_name", "last_name", "email", "phone", "message", "consent", "created_at"}).
			AddRow("c-2", "Bea", "Souza", "bea@example.com", "555-2", "hi", true, now).
			AddRow("c-1", "Ana", "Silva", "ana@example.com", "555-1", "hello", true, now.Add(-time.Hour)))

	subs, err := r.ListNewestFirst(context.Background())
	require.NoError(t, err)
	require.Len(t, subs, 2)
	require.Equal(t, "c-2", subs[0].ID)
	require.Equal(t, "hi", subs[0].Message)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestContactRepo_Delete_Missing(t *testing.T) {
	mock := newMockPool(t)
	defer mock.Close()
	r := NewContactRepository(mock)

	mock.ExpectExec(`DELETE FROM contact_submissions WHERE id=\$1`).
		WithArgs("nope").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err := r.Delete(context.Background(), "nope")
	require.ErrorIs(t, err, pgx.ErrNoRows)
	require.NoError(t, mock.ExpectationsWereMet())
}
