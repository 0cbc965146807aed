package lending

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/dbpg"

	"github.com/aliskhannn/overdue-reminder/internal/model"
)

var (
	ErrLendingNotFound   = errors.New("lending not found")
	ErrLendingNotPending = errors.New("lending is no longer pending")
)

// Repository provides methods to interact with the lendings table.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new lending repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// FindOverdueByUser returns the user's pending or overdue lendings whose due date is before now,
// oldest first.
func (r *Repository) FindOverdueByUser(ctx context.Context, userID uuid.UUID, now time.Time) ([]model.Lending, error) {
	query := `
		SELECT id, user_id, amount, currency, borrower_name, borrower_contact, type, status,
		       expected_return_date, created_at, updated_at
		FROM lendings
		WHERE user_id = $1 AND status IN ('pending', 'overdue') AND expected_return_date < $2
		ORDER BY expected_return_date;
    `

	rows, err := r.db.QueryContext(ctx, query, userID, now)
	if err != nil {
		return nil, fmt.Errorf("failed to find overdue lendings: %w", err)
	}
	defer rows.Close()

	var lendings []model.Lending
	for rows.Next() {
		l, err := scanLending(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan lending: %w", err)
		}

		lendings = append(lendings, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate lendings: %w", err)
	}

	return lendings, nil
}

// FindByID retrieves a lending owned by the user.
func (r *Repository) FindByID(ctx context.Context, userID, id uuid.UUID) (model.Lending, error) {
	query := `
		SELECT id, user_id, amount, currency, borrower_name, borrower_contact, type, status,
		       expected_return_date, created_at, updated_at
		FROM lendings
		WHERE id = $1 AND user_id = $2;
    `

	l, err := scanLending(r.db.QueryRowContext(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Lending{}, ErrLendingNotFound
		}

		return model.Lending{}, fmt.Errorf("failed to get lending: %w", err)
	}

	return l, nil
}

// MarkOverdue moves a pending lending to overdue. A lending in any other status is left
// untouched and ErrLendingNotPending is returned.
func (r *Repository) MarkOverdue(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE lendings
		SET status = 'overdue', updated_at = NOW()
		WHERE id = $1 AND status = 'pending';
    `

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to mark lending overdue: %w", err)
	}

	rows, _ := res.RowsAffected()

	if rows == 0 {
		return ErrLendingNotPending
	}

	return nil
}

// CountRepaidByUser returns how many of the user's lendings were repaid.
func (r *Repository) CountRepaidByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM lendings
		WHERE user_id = $1 AND status = 'repaid';
    `

	var n int
	if err := r.db.QueryRowContext(ctx, query, userID).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count repaid lendings: %w", err)
	}

	return n, nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanLending(s scanner) (model.Lending, error) {
	var (
		l       model.Lending
		contact sql.NullString
	)

	err := s.Scan(
		&l.ID, &l.UserID, &l.Amount, &l.Currency, &l.BorrowerName, &contact, &l.Type, &l.Status,
		&l.ExpectedReturnDate, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		return model.Lending{}, err
	}

	l.BorrowerContact = contact.String

	return l, nil
}
