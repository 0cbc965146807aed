package notification

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/dbpg"

	"github.com/aliskhannn/overdue-reminder/internal/model"
)

// Repository provides methods to interact with notifications table.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new notification repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// CreateNotification inserts a new notification into the database and returns its ID.
// An empty response is stored as pending.
func (r *Repository) CreateNotification(ctx context.Context, notification model.Notification) (uuid.UUID, error) {
	query := `
		INSERT INTO notifications (
		    user_id, type, title, message, related_id, severity, meta, response
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id;
    `

	if notification.Response == "" {
		notification.Response = model.ResponsePending
	}

	meta, err := json.Marshal(notification.Meta)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal notification meta: %w", err)
	}

	err = r.db.QueryRowContext(
		ctx, query,
		notification.UserID, notification.Type, notification.Title, notification.Message,
		notification.RelatedID, notification.Severity, meta, notification.Response,
	).Scan(&notification.ID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create notification: %w", err)
	}

	return notification.ID, nil
}

// ResponseStats counts the user's reminder notifications grouped by type and response.
func (r *Repository) ResponseStats(ctx context.Context, userID uuid.UUID) ([]model.ResponseStat, error) {
	query := `
		SELECT type, response, COUNT(*)
		FROM notifications
		WHERE user_id = $1 AND type LIKE 'lending_overdue_%'
		GROUP BY type, response
		ORDER BY type, response;
    `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get response stats: %w", err)
	}
	defer rows.Close()

	stats := make([]model.ResponseStat, 0)
	for rows.Next() {
		var s model.ResponseStat
		if err := rows.Scan(&s.Type, &s.Response, &s.Count); err != nil {
			return nil, err
		}

		stats = append(stats, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate response stats: %w", err)
	}

	return stats, nil
}
