package preferences

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/dbpg"

	"github.com/aliskhannn/overdue-reminder/internal/model"
)

var userColumns = []string{"id", "name", "email", "phone", "push_token", "whatsapp", "plan", "reminder_settings"}

func setupMockDB(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open mock db: %v", err)
	}

	wrappedDB := &dbpg.DB{Master: db}
	repo := NewRepository(wrappedDB)

	return repo, mock
}

func TestGetUser(t *testing.T) {
	repo, mock := setupMockDB(t)

	id := uuid.New()
	settings := []byte(`{"enabled":false,"escalation":{"first":2,"second":8,"third":15,"final":40}}`)

	mock.ExpectQuery(regexp.QuoteMeta(`
		SELECT id, name, email, phone, push_token, whatsapp, plan, reminder_settings
		FROM users
		WHERE id = $1;
    `)).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow(id.String(), "Alice", "alice@example.com", "+15550002", nil, nil, "premium", settings))

	u, err := repo.GetUser(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Alice", u.Name)
	assert.Equal(t, model.PlanPremium, u.Plan)
	assert.Equal(t, "", u.PushToken)
	require.NotNil(t, u.Settings.Enabled)
	assert.False(t, *u.Settings.Enabled)
	require.NotNil(t, u.Settings.Escalation)
	assert.Equal(t, 40, u.Settings.Escalation.Final)
	assert.Nil(t, u.Settings.ContactWindow)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetUser_NullSettings(t *testing.T) {
	repo, mock := setupMockDB(t)

	id := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(`FROM users`)).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow(id.String(), "Bob", "bob@example.com", nil, nil, nil, "basic", nil))

	u, err := repo.GetUser(context.Background(), id)
	require.NoError(t, err)
	assert.True(t, u.Settings.IsEmpty())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetUser_NotFound(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM users`)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetUser(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateSettings(t *testing.T) {
	repo, mock := setupMockDB(t)

	id := uuid.New()
	query := regexp.QuoteMeta(`
		UPDATE users
		SET reminder_settings = $1, updated_at = NOW()
		WHERE id = $2;
    `)

	mock.ExpectExec(query).
		WithArgs([]byte(`{}`), id).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.UpdateSettings(context.Background(), id, model.ReminderSettings{}))
	assert.NoError(t, mock.ExpectationsWereMet())

	mock.ExpectExec(query).
		WithArgs(sqlmock.AnyArg(), id).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateSettings(context.Background(), id, model.DefaultSettings(model.PlanBasic))
	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListEnabledUserIDs(t *testing.T) {
	repo, mock := setupMockDB(t)

	a, b := uuid.New(), uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE COALESCE((reminder_settings->>'enabled')::boolean, true)`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(a.String()).AddRow(b.String()))

	ids, err := repo.ListEnabledUserIDs(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{a, b}, ids)
	assert.NoError(t, mock.ExpectationsWereMet())
}
