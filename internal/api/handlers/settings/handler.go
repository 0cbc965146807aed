package settings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/overdue-reminder/internal/api/respond"
	"github.com/aliskhannn/overdue-reminder/internal/config"
	"github.com/aliskhannn/overdue-reminder/internal/model"
	"github.com/aliskhannn/overdue-reminder/internal/repository/preferences"
	prefsvc "github.com/aliskhannn/overdue-reminder/internal/service/preferences"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/settings/mock.go -package=mocks

type settingsService interface {
	Get(ctx context.Context, strategy retry.Strategy, userID uuid.UUID) (model.Preferences, error)
	Update(ctx context.Context, strategy retry.Strategy, userID uuid.UUID, upd model.ReminderSettings) (model.Preferences, error)
	Reset(ctx context.Context, strategy retry.Strategy, userID uuid.UUID) (model.Preferences, error)
}

type Handler struct {
	service settingsService
	cfg     *config.Config
}

func NewHandler(s settingsService, cfg *config.Config) *Handler {
	return &Handler{service: s, cfg: cfg}
}

// Get returns the user's resolved reminder preferences.
func (h *Handler) Get(c *ginext.Context) {
	userID, ok := userIDParam(c)
	if !ok {
		return
	}

	prefs, err := h.service.Get(c.Request.Context(), h.cfg.Retry, userID)
	if err != nil {
		h.fail(c, userID, err, "failed to get reminder settings")
		return
	}

	respond.OK(c.Writer, prefs)
}

// Update applies a partial settings update.
func (h *Handler) Update(c *ginext.Context) {
	userID, ok := userIDParam(c)
	if !ok {
		return
	}

	var upd model.ReminderSettings

	if err := json.NewDecoder(c.Request.Body).Decode(&upd); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to decode request body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	prefs, err := h.service.Update(c.Request.Context(), h.cfg.Retry, userID, upd)
	if err != nil {
		h.fail(c, userID, err, "failed to update reminder settings")
		return
	}

	respond.OK(c.Writer, prefs)
}

// Reset restores the plan defaults.
func (h *Handler) Reset(c *ginext.Context) {
	userID, ok := userIDParam(c)
	if !ok {
		return
	}

	prefs, err := h.service.Reset(c.Request.Context(), h.cfg.Retry, userID)
	if err != nil {
		h.fail(c, userID, err, "failed to reset reminder settings")
		return
	}

	respond.OK(c.Writer, prefs)
}

func (h *Handler) fail(c *ginext.Context, userID uuid.UUID, err error, msg string) {
	switch {
	case errors.Is(err, prefsvc.ErrInvalidSettings):
		zlog.Logger.Warn().Err(err).Interface("user_id", userID).Msg("invalid reminder settings")
		respond.Fail(c.Writer, http.StatusBadRequest, err)
	case errors.Is(err, preferences.ErrUserNotFound):
		zlog.Logger.Warn().Err(err).Interface("user_id", userID).Msg("user not found")
		respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("user not found"))
	default:
		zlog.Logger.Error().Err(err).Interface("user_id", userID).Msg(msg)
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
	}
}

func userIDParam(c *ginext.Context) (uuid.UUID, bool) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil || id == uuid.Nil {
		zlog.Logger.Error().Err(err).Interface("idStr", idStr).Msg("failed to parse id")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid id"))
		return uuid.Nil, false
	}

	return id, true
}
