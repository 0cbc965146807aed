package preferences

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/dbpg"

	"github.com/aliskhannn/overdue-reminder/internal/model"
)

var ErrUserNotFound = errors.New("user not found")

// Repository provides methods to read users and their reminder settings.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new preferences repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// GetUser retrieves a user with contact details and raw reminder settings.
// A NULL settings column yields empty settings.
func (r *Repository) GetUser(ctx context.Context, id uuid.UUID) (model.User, error) {
	query := `
		SELECT id, name, email, phone, push_token, whatsapp, plan, reminder_settings
		FROM users
		WHERE id = $1;
    `

	var (
		u                          model.User
		phone, pushToken, whatsApp sql.NullString
		settings                   []byte
	)

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&u.ID, &u.Name, &u.Email, &phone, &pushToken, &whatsApp, &u.Plan, &settings,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, ErrUserNotFound
		}

		return model.User{}, fmt.Errorf("failed to get user: %w", err)
	}

	u.Phone = phone.String
	u.PushToken = pushToken.String
	u.WhatsApp = whatsApp.String

	if len(settings) > 0 {
		if err := json.Unmarshal(settings, &u.Settings); err != nil {
			return model.User{}, fmt.Errorf("failed to decode reminder settings: %w", err)
		}
	}

	return u, nil
}

// UpdateSettings replaces the stored reminder settings of a user.
func (r *Repository) UpdateSettings(ctx context.Context, id uuid.UUID, settings model.ReminderSettings) error {
	query := `
		UPDATE users
		SET reminder_settings = $1, updated_at = NOW()
		WHERE id = $2;
    `

	body, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to encode reminder settings: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, body, id)
	if err != nil {
		return fmt.Errorf("failed to update reminder settings: %w", err)
	}

	rows, _ := res.RowsAffected()

	if rows == 0 {
		return ErrUserNotFound
	}

	return nil
}

// ListEnabledUserIDs returns users that have not switched reminders off.
// Users without stored settings are enabled by default.
func (r *Repository) ListEnabledUserIDs(ctx context.Context) ([]uuid.UUID, error) {
	query := `
		SELECT id
		FROM users
		WHERE COALESCE((reminder_settings->>'enabled')::boolean, true)
		ORDER BY id;
    `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list enabled users: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan user id: %w", err)
		}

		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate users: %w", err)
	}

	return ids, nil
}
