package reminder

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/overdue-reminder/internal/api/dto"
	"github.com/aliskhannn/overdue-reminder/internal/api/respond"
	"github.com/aliskhannn/overdue-reminder/internal/config"
	"github.com/aliskhannn/overdue-reminder/internal/dispatch"
	"github.com/aliskhannn/overdue-reminder/internal/model"
	"github.com/aliskhannn/overdue-reminder/internal/rabbitmq/queue"
	"github.com/aliskhannn/overdue-reminder/internal/repository/history"
	"github.com/aliskhannn/overdue-reminder/internal/repository/lending"
	"github.com/aliskhannn/overdue-reminder/internal/repository/preferences"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/reminder/mock.go -package=mocks

type reminderService interface {
	RunScheduled(ctx context.Context) (model.RunReport, error)
	ProcessUser(ctx context.Context, userID uuid.UUID) (model.RunReport, error)
	Schedule(ctx context.Context, userID, lendingID uuid.UUID) (model.LendingSchedule, error)
	Stats(ctx context.Context, userID uuid.UUID) ([]model.ResponseStat, error)
	ConfirmDelivery(ctx context.Context, historyID uuid.UUID, ch model.Channel, at time.Time) (model.ReminderHistory, error)
}

type runPublisher interface {
	Publish(msg queue.RunRequest, strategy retry.Strategy) error
}

type Handler struct {
	service   reminderService
	publisher runPublisher
	validator *validator.Validate
	cfg       *config.Config
}

func NewHandler(
	s reminderService,
	p runPublisher,
	v *validator.Validate,
	cfg *config.Config,
) *Handler {
	return &Handler{service: s, publisher: p, validator: v, cfg: cfg}
}

// Run executes a reminder run. Without a user id every user is processed on
// schedule; async requests are queued and answered with 202.
func (h *Handler) Run(c *ginext.Context) {
	var req dto.RunRequest

	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		zlog.Logger.Error().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	if err := h.validator.Struct(req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to validate request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("validation error: %s", err.Error()))
		return
	}

	var userID *uuid.UUID
	if req.UserID != "" {
		id, err := uuid.Parse(req.UserID)
		if err != nil || id == uuid.Nil {
			zlog.Logger.Warn().Str("user_id", req.UserID).Msg("invalid user id")
			respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid user id"))
			return
		}
		userID = &id
	}

	if req.Async {
		msg := queue.NewRunRequest(userID)
		if err := h.publisher.Publish(msg, h.cfg.Retry); err != nil {
			zlog.Logger.Error().Err(err).Msg("failed to queue run request")
			respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
			return
		}

		respond.JSON(c.Writer, http.StatusAccepted, map[string]uuid.UUID{"run_id": msg.ID})
		return
	}

	var (
		report model.RunReport
		err    error
	)
	if userID == nil {
		report, err = h.service.RunScheduled(c.Request.Context())
	} else {
		report, err = h.service.ProcessUser(c.Request.Context(), *userID)
	}

	if err != nil {
		h.fail(c, err, "failed to run reminders")
		return
	}

	respond.OK(c.Writer, report)
}

// Process runs the pipeline for the user in the path.
func (h *Handler) Process(c *ginext.Context) {
	userID, ok := parseID(c, "id")
	if !ok {
		return
	}

	report, err := h.service.ProcessUser(c.Request.Context(), userID)
	if err != nil {
		h.fail(c, err, "failed to process user")
		return
	}

	respond.OK(c.Writer, report)
}

// Schedule returns the projected reminder plan of a lending.
func (h *Handler) Schedule(c *ginext.Context) {
	userID, ok := parseID(c, "id")
	if !ok {
		return
	}

	lendingID, ok := parseID(c, "lendingId")
	if !ok {
		return
	}

	s, err := h.service.Schedule(c.Request.Context(), userID, lendingID)
	if err != nil {
		h.fail(c, err, "failed to build schedule")
		return
	}

	respond.OK(c.Writer, s)
}

// Stats returns reminder response analytics of a user.
func (h *Handler) Stats(c *ginext.Context) {
	userID, ok := parseID(c, "id")
	if !ok {
		return
	}

	stats, err := h.service.Stats(c.Request.Context(), userID)
	if err != nil {
		h.fail(c, err, "failed to get response stats")
		return
	}

	respond.OK(c.Writer, stats)
}

// Delivery records a provider delivery receipt.
func (h *Handler) Delivery(c *ginext.Context) {
	historyID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req dto.DeliveryRequest

	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	if err := h.validator.Struct(req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to validate request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("validation error: %s", err.Error()))
		return
	}

	at := time.Now().UTC()
	if req.DeliveredAt != nil {
		at = req.DeliveredAt.UTC()
	}

	hist, err := h.service.ConfirmDelivery(c.Request.Context(), historyID, model.Channel(req.Channel), at)
	if err != nil {
		h.fail(c, err, "failed to confirm delivery")
		return
	}

	respond.OK(c.Writer, hist)
}

func (h *Handler) fail(c *ginext.Context, err error, msg string) {
	switch {
	case errors.Is(err, preferences.ErrUserNotFound):
		zlog.Logger.Warn().Err(err).Msg("user not found")
		respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("user not found"))
	case errors.Is(err, lending.ErrLendingNotFound):
		zlog.Logger.Warn().Err(err).Msg("lending not found")
		respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("lending not found"))
	case errors.Is(err, history.ErrHistoryNotFound):
		zlog.Logger.Warn().Err(err).Msg("reminder not found")
		respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("reminder not found"))
	case errors.Is(err, dispatch.ErrChannelNotSent):
		zlog.Logger.Warn().Err(err).Msg("channel was not sent")
		respond.Fail(c.Writer, http.StatusConflict, dispatch.ErrChannelNotSent)
	default:
		zlog.Logger.Error().Err(err).Msg(msg)
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
	}
}

func parseID(c *ginext.Context, param string) (uuid.UUID, bool) {
	idStr := c.Param(param)
	id, err := uuid.Parse(idStr)
	if err != nil {
		zlog.Logger.Error().Err(err).Interface("idStr", idStr).Msgf("failed to parse %s", param)
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid %s", param))
		return uuid.Nil, false
	}

	if id == uuid.Nil {
		zlog.Logger.Warn().Msgf("missing %s", param)
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("missing %s", param))
		return uuid.Nil, false
	}

	return id, true
}
