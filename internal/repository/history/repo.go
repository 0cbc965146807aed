package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"

	"github.com/aliskhannn/overdue-reminder/internal/model"
)

var (
	ErrHistoryNotFound   = errors.New("reminder history not found")
	ErrDuplicateReminder = errors.New("reminder already recorded for this tier")
)

// uniqueViolation is the Postgres error code raised by the partial unique index
// on (user_id, lending_id, tier) for sent and delivered rows.
const uniqueViolation = "23505"

// Repository provides methods to interact with the reminder_history table.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new reminder history repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// FindSent returns the sent or delivered entry for (user, lending, tier).
func (r *Repository) FindSent(ctx context.Context, userID, lendingID uuid.UUID, tier model.Tier) (model.ReminderHistory, error) {
	query := `
		SELECT id, user_id, lending_id, tier, days_overdue, template, status, channels, notification_id, created_at, updated_at
		FROM reminder_history
		WHERE user_id = $1 AND lending_id = $2 AND tier = $3 AND status IN ('sent', 'delivered')
		LIMIT 1;
    `

	h, err := scanHistory(r.db.QueryRowContext(ctx, query, userID, lendingID, tier.String()))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.ReminderHistory{}, ErrHistoryNotFound
		}

		return model.ReminderHistory{}, fmt.Errorf("failed to find sent reminder: %w", err)
	}

	return h, nil
}

// Insert stores a new history entry and returns its ID.
func (r *Repository) Insert(ctx context.Context, h model.ReminderHistory) (uuid.UUID, error) {
	query := `
		INSERT INTO reminder_history (
		    user_id, lending_id, tier, days_overdue, template, status, channels
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id;
    `

	channels, err := json.Marshal(h.Channels)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal channel results: %w", err)
	}

	err = r.db.QueryRowContext(
		ctx, query, h.UserID, h.LendingID, h.Tier.String(), h.DaysOverdue, h.Template, h.Status, channels,
	).Scan(&h.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return uuid.Nil, ErrDuplicateReminder
		}

		return uuid.Nil, fmt.Errorf("failed to insert reminder history: %w", err)
	}

	return h.ID, nil
}

// GetByID retrieves a history entry by its ID.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (model.ReminderHistory, error) {
	query := `
		SELECT id, user_id, lending_id, tier, days_overdue, template, status, channels, notification_id, created_at, updated_at
		FROM reminder_history
		WHERE id = $1;
    `

	h, err := scanHistory(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.ReminderHistory{}, ErrHistoryNotFound
		}

		return model.ReminderHistory{}, fmt.Errorf("failed to get reminder history: %w", err)
	}

	return h, nil
}

// Update saves the mutable fields of an entry: status, channel results and notification link.
func (r *Repository) Update(ctx context.Context, h model.ReminderHistory) error {
	query := `
		UPDATE reminder_history
		SET status = $1, channels = $2, notification_id = $3, updated_at = NOW()
		WHERE id = $4;
    `

	channels, err := json.Marshal(h.Channels)
	if err != nil {
		return fmt.Errorf("failed to marshal channel results: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, h.Status, channels, h.NotificationID, h.ID)
	if err != nil {
		return fmt.Errorf("failed to update reminder history: %w", err)
	}

	rows, _ := res.RowsAffected()

	if rows == 0 {
		return ErrHistoryNotFound
	}

	return nil
}

func scanHistory(row *sql.Row) (model.ReminderHistory, error) {
	var (
		h        model.ReminderHistory
		tier     string
		channels []byte
		notifID  uuid.NullUUID
	)

	err := row.Scan(
		&h.ID, &h.UserID, &h.LendingID, &tier, &h.DaysOverdue, &h.Template, &h.Status,
		&channels, &notifID, &h.CreatedAt, &h.UpdatedAt,
	)
	if err != nil {
		return model.ReminderHistory{}, err
	}

	if h.Tier, err = model.ParseTier(tier); err != nil {
		return model.ReminderHistory{}, err
	}

	if len(channels) > 0 {
		if err := json.Unmarshal(channels, &h.Channels); err != nil {
			return model.ReminderHistory{}, fmt.Errorf("unmarshal channel results: %w", err)
		}
	}

	if notifID.Valid {
		h.NotificationID = &notifID.UUID
	}

	return h, nil
}
