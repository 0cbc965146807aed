package reminder

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/retry"

	"github.com/aliskhannn/overdue-reminder/internal/api/dto"
	"github.com/aliskhannn/overdue-reminder/internal/config"
	"github.com/aliskhannn/overdue-reminder/internal/dispatch"
	mocks "github.com/aliskhannn/overdue-reminder/internal/mocks/api/handlers/reminder"
	"github.com/aliskhannn/overdue-reminder/internal/model"
	"github.com/aliskhannn/overdue-reminder/internal/rabbitmq/queue"
	"github.com/aliskhannn/overdue-reminder/internal/repository/lending"
	"github.com/aliskhannn/overdue-reminder/internal/repository/preferences"
)

func setupHandler(t *testing.T) (*Handler, *mocks.MockreminderService, *mocks.MockrunPublisher, *config.Config) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockreminderService(ctrl)
	mockPublisher := mocks.NewMockrunPublisher(ctrl)
	cfg := &config.Config{Retry: retry.Strategy{Attempts: 1}}
	handler := NewHandler(mockService, mockPublisher, validator.New(), cfg)
	return handler, mockService, mockPublisher, cfg
}

func newContext(method, target string, body []byte) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, bytes.NewReader(body))
	return c, w
}

func TestHandler_Run_Scheduled(t *testing.T) {
	handler, mockService, _, _ := setupHandler(t)

	c, w := newContext(http.MethodPost, "/api/reminders/run", nil)

	report := model.NewRunReport()
	report.SentByTier[model.TierFirst] = 2
	mockService.EXPECT().RunScheduled(gomock.Any()).Return(report, nil)

	handler.Run(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
	assert.Contains(t, w.Body.String(), `"first":2`)
}

func TestHandler_Run_User(t *testing.T) {
	handler, mockService, _, _ := setupHandler(t)
	userID := uuid.New()

	body, _ := json.Marshal(dto.RunRequest{UserID: userID.String()})
	c, w := newContext(http.MethodPost, "/api/reminders/run", body)

	mockService.EXPECT().ProcessUser(gomock.Any(), userID).Return(model.NewRunReport(), nil)

	handler.Run(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
}

func TestHandler_Run_Async(t *testing.T) {
	handler, _, mockPublisher, cfg := setupHandler(t)

	body, _ := json.Marshal(dto.RunRequest{Async: true})
	c, w := newContext(http.MethodPost, "/api/reminders/run", body)

	mockPublisher.EXPECT().Publish(gomock.Any(), cfg.Retry).DoAndReturn(
		func(msg queue.RunRequest, _ retry.Strategy) error {
			assert.True(t, msg.Scheduled())
			return nil
		},
	)

	handler.Run(c)

	assert.Equal(t, http.StatusAccepted, w.Result().StatusCode)
}

func TestHandler_Run_InvalidUserID(t *testing.T) {
	handler, _, _, _ := setupHandler(t)

	c, w := newContext(http.MethodPost, "/api/reminders/run", []byte(`{"user_id":"nope"}`))

	handler.Run(c)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestHandler_Run_NilUserID(t *testing.T) {
	handler, _, _, _ := setupHandler(t)

	body, _ := json.Marshal(dto.RunRequest{UserID: uuid.Nil.String()})
	c, w := newContext(http.MethodPost, "/api/reminders/run", body)

	handler.Run(c)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
	assert.Contains(t, w.Body.String(), "invalid user id")
}

func TestHandler_Process_UserNotFound(t *testing.T) {
	handler, mockService, _, _ := setupHandler(t)
	userID := uuid.New()

	c, w := newContext(http.MethodPost, "/api/reminders/users/"+userID.String()+"/process", nil)
	c.Params = gin.Params{{Key: "id", Value: userID.String()}}

	mockService.EXPECT().ProcessUser(gomock.Any(), userID).Return(model.RunReport{}, preferences.ErrUserNotFound)

	handler.Process(c)

	assert.Equal(t, http.StatusNotFound, w.Result().StatusCode)
}

func TestHandler_Process_InvalidID(t *testing.T) {
	handler, _, _, _ := setupHandler(t)

	c, w := newContext(http.MethodPost, "/api/reminders/users/abc/process", nil)
	c.Params = gin.Params{{Key: "id", Value: "abc"}}

	handler.Process(c)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestHandler_Schedule(t *testing.T) {
	handler, mockService, _, _ := setupHandler(t)
	userID, lendingID := uuid.New(), uuid.New()

	c, w := newContext(http.MethodGet, "/api/reminders/users/x/lendings/y/schedule", nil)
	c.Params = gin.Params{{Key: "id", Value: userID.String()}, {Key: "lendingId", Value: lendingID.String()}}

	mockService.EXPECT().Schedule(gomock.Any(), userID, lendingID).
		Return(model.LendingSchedule{LendingID: lendingID, DaysOverdue: 3}, nil)

	handler.Schedule(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
	assert.Contains(t, w.Body.String(), `"days_overdue":3`)
}

func TestHandler_Schedule_LendingNotFound(t *testing.T) {
	handler, mockService, _, _ := setupHandler(t)
	userID, lendingID := uuid.New(), uuid.New()

	c, w := newContext(http.MethodGet, "/", nil)
	c.Params = gin.Params{{Key: "id", Value: userID.String()}, {Key: "lendingId", Value: lendingID.String()}}

	mockService.EXPECT().Schedule(gomock.Any(), userID, lendingID).Return(model.LendingSchedule{}, lending.ErrLendingNotFound)

	handler.Schedule(c)

	assert.Equal(t, http.StatusNotFound, w.Result().StatusCode)
}

func TestHandler_Stats(t *testing.T) {
	handler, mockService, _, _ := setupHandler(t)
	userID := uuid.New()

	c, w := newContext(http.MethodGet, "/", nil)
	c.Params = gin.Params{{Key: "id", Value: userID.String()}}

	mockService.EXPECT().Stats(gomock.Any(), userID).Return([]model.ResponseStat{}, errors.New("db down"))

	handler.Stats(c)

	assert.Equal(t, http.StatusInternalServerError, w.Result().StatusCode)
}

func TestHandler_Delivery(t *testing.T) {
	handler, mockService, _, _ := setupHandler(t)
	historyID := uuid.New()
	at := time.Date(2025, 3, 15, 11, 0, 0, 0, time.UTC)

	body, _ := json.Marshal(dto.DeliveryRequest{Channel: "sms", DeliveredAt: &at})
	c, w := newContext(http.MethodPost, "/", body)
	c.Params = gin.Params{{Key: "id", Value: historyID.String()}}

	mockService.EXPECT().ConfirmDelivery(gomock.Any(), historyID, model.ChannelSMS, at).
		Return(model.ReminderHistory{ID: historyID, Status: model.HistoryDelivered}, nil)

	handler.Delivery(c)

	assert.Equal(t, http.StatusOK, w.Result().StatusCode)
}

func TestHandler_Delivery_UnknownChannel(t *testing.T) {
	handler, _, _, _ := setupHandler(t)

	c, w := newContext(http.MethodPost, "/", []byte(`{"channel":"pigeon"}`))
	c.Params = gin.Params{{Key: "id", Value: uuid.NewString()}}

	handler.Delivery(c)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestHandler_Delivery_ChannelNotSent(t *testing.T) {
	handler, mockService, _, _ := setupHandler(t)
	historyID := uuid.New()

	c, w := newContext(http.MethodPost, "/", []byte(`{"channel":"push"}`))
	c.Params = gin.Params{{Key: "id", Value: historyID.String()}}

	mockService.EXPECT().ConfirmDelivery(gomock.Any(), historyID, model.ChannelPush, gomock.Any()).
		Return(model.ReminderHistory{}, dispatch.ErrChannelNotSent)

	handler.Delivery(c)

	assert.Equal(t, http.StatusConflict, w.Result().StatusCode)
}
