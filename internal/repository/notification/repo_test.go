package notification

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/dbpg"

	"github.com/aliskhannn/overdue-reminder/internal/model"
)

func setupMockDB(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open mock db: %v", err)
	}

	wrappedDB := &dbpg.DB{Master: db}
	repo := NewRepository(wrappedDB)

	return repo, mock
}

func TestCreateNotification(t *testing.T) {
	repo, mock := setupMockDB(t)

	notificationID := uuid.New()
	n := model.Notification{
		UserID:    uuid.New(),
		Type:      model.TierSecond.NotificationType(),
		Title:     "Payment reminder",
		Message:   "Bob still owes you 3000.00 USD",
		RelatedID: uuid.New(),
		Severity:  model.TierSecond.Severity(),
		Meta: model.NotificationMeta{
			Amount:          decimal.NewFromInt(3000),
			DaysOverdue:     8,
			EscalationLevel: 2,
			ReminderTier:    model.TierSecond,
		},
	}

	mock.ExpectQuery(regexp.QuoteMeta(`
		INSERT INTO notifications (
		    user_id, type, title, message, related_id, severity, meta, response
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id;
    `)).
		WithArgs(n.UserID, "lending_overdue_second", n.Title, n.Message, n.RelatedID, model.SeverityMedium, sqlmock.AnyArg(), model.ResponsePending).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(notificationID.String()))

	id, err := repo.CreateNotification(context.Background(), n)
	assert.NoError(t, err)
	assert.Equal(t, notificationID, id)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateNotification_Error(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO notifications`)).
		WillReturnError(errors.New("relation does not exist"))

	id, err := repo.CreateNotification(context.Background(), model.Notification{})
	assert.Error(t, err)
	assert.Equal(t, uuid.Nil, id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResponseStats(t *testing.T) {
	repo, mock := setupMockDB(t)

	userID := uuid.New()
	query := regexp.QuoteMeta(`
		SELECT type, response, COUNT(*)
		FROM notifications
		WHERE user_id = $1 AND type LIKE 'lending_overdue_%'
		GROUP BY type, response
		ORDER BY type, response;
    `)

	rows := sqlmock.NewRows([]string{"type", "response", "count"}).
		AddRow("lending_overdue_first", model.ResponsePending, 4).
		AddRow("lending_overdue_first", model.ResponseRepaid, 2).
		AddRow("lending_overdue_final", model.ResponseIgnored, 1)

	mock.ExpectQuery(query).WithArgs(userID).WillReturnRows(rows)

	stats, err := repo.ResponseStats(context.Background(), userID)
	assert.NoError(t, err)
	assert.Len(t, stats, 3)
	assert.Equal(t, model.ResponseStat{Type: "lending_overdue_first", Response: "repaid", Count: 2}, stats[1])
	assert.NoError(t, mock.ExpectationsWereMet())

	mock.ExpectQuery(query).WithArgs(userID).
		WillReturnRows(sqlmock.NewRows([]string{"type", "response", "count"}))

	stats, err = repo.ResponseStats(context.Background(), userID)
	assert.NoError(t, err)
	assert.Empty(t, stats)
	assert.NoError(t, mock.ExpectationsWereMet())
}
