// Package dispatch renders a reminder and delivers it on every enabled channel.
//
// Channels are attempted concurrently and independently: a failing provider is
// recorded in the history entry and never stops its siblings. After all attempts
// one history row is written, then an in-app notification is created on a
// best-effort basis.
package dispatch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"
	"golang.org/x/sync/errgroup"

	"github.com/aliskhannn/overdue-reminder/internal/metrics"
	"github.com/aliskhannn/overdue-reminder/internal/model"
	"github.com/aliskhannn/overdue-reminder/internal/repository/history"
)

//go:generate mockgen -source=dispatcher.go -destination=../mocks/dispatch/mock.go -package=mocks

var (
	// ErrAlreadyRecorded means a concurrent run recorded the same tier first.
	ErrAlreadyRecorded = errors.New("reminder already recorded")
	// ErrChannelNotSent means a delivery confirmation arrived for a channel that did not send.
	ErrChannelNotSent = errors.New("channel was not sent for this reminder")
)

// DefaultChannelTimeout bounds a single provider call.
const DefaultChannelTimeout = 10 * time.Second

// Sender delivers rendered content to one address and returns the provider message id.
type Sender interface {
	Send(ctx context.Context, to string, content model.Content) (string, error)
}

// SenderFunc adapts a function to Sender.
type SenderFunc func(ctx context.Context, to string, content model.Content) (string, error)

func (f SenderFunc) Send(ctx context.Context, to string, content model.Content) (string, error) {
	return f(ctx, to, content)
}

type historyStore interface {
	Insert(ctx context.Context, h model.ReminderHistory) (uuid.UUID, error)
	GetByID(ctx context.Context, id uuid.UUID) (model.ReminderHistory, error)
	Update(ctx context.Context, h model.ReminderHistory) error
}

type notificationStore interface {
	CreateNotification(ctx context.Context, n model.Notification) (uuid.UUID, error)
}

// Dispatcher fans a reminder out to channel providers and records the outcome.
type Dispatcher struct {
	history       historyStore
	notifications notificationStore
	senders       map[model.Channel]Sender
	timeout       time.Duration
	strategy      retry.Strategy
	now           func() time.Time
}

// NewDispatcher creates a Dispatcher. Channels missing from senders are recorded as failed.
func NewDispatcher(
	h historyStore,
	n notificationStore,
	senders map[model.Channel]Sender,
	timeout time.Duration,
	strategy retry.Strategy,
) *Dispatcher {
	if timeout <= 0 {
		timeout = DefaultChannelTimeout
	}
	if strategy.Attempts < 1 {
		strategy.Attempts = 1
	}

	return &Dispatcher{
		history:       h,
		notifications: n,
		senders:       senders,
		timeout:       timeout,
		strategy:      strategy,
		now:           time.Now,
	}
}

// Dispatch sends the reminder on every enabled channel and stores one history entry.
// The entry is "sent" when at least one channel succeeded or no channel is enabled,
// "failed" otherwise. ErrAlreadyRecorded is returned when another run won the race.
func (d *Dispatcher) Dispatch(ctx context.Context, req model.DispatchRequest) (model.ReminderHistory, error) {
	content, err := Render(req)
	if err != nil {
		return model.ReminderHistory{}, fmt.Errorf("render reminder: %w", err)
	}

	channels := req.Preferences.Channels.EnabledChannels()
	results := make([]model.ChannelResult, len(channels))

	var g errgroup.Group
	for i, ch := range channels {
		i, ch := i, ch
		g.Go(func() error {
			results[i] = d.send(ctx, req.User, ch, content)
			return nil
		})
	}
	_ = g.Wait()

	h := model.ReminderHistory{
		UserID:      req.User.ID,
		LendingID:   req.Lending.ID,
		Tier:        req.Tier,
		DaysOverdue: req.DaysOverdue,
		Template:    req.Tier.Template(),
		Status:      model.HistorySent,
		Channels:    results,
	}
	if len(channels) > 0 && h.Succeeded() == 0 {
		h.Status = model.HistoryFailed
	}

	// Channels may already have delivered; a cancelled run must still record them.
	recordCtx := context.WithoutCancel(ctx)

	h.ID, err = d.history.Insert(recordCtx, h)
	if err != nil {
		if errors.Is(err, history.ErrDuplicateReminder) {
			return h, ErrAlreadyRecorded
		}

		return h, fmt.Errorf("record reminder: %w", err)
	}

	if h.Status != model.HistorySent {
		return h, nil
	}

	metrics.ReminderSent(req.Tier)
	d.mirror(recordCtx, req, content, &h)

	return h, nil
}

// ConfirmDelivery attaches a provider delivery receipt to a history entry and marks it delivered.
func (d *Dispatcher) ConfirmDelivery(ctx context.Context, historyID uuid.UUID, ch model.Channel, at time.Time) (model.ReminderHistory, error) {
	h, err := d.history.GetByID(ctx, historyID)
	if err != nil {
		return model.ReminderHistory{}, fmt.Errorf("get reminder history: %w", err)
	}

	found := false
	for i := range h.Channels {
		if h.Channels[i].Channel == ch && h.Channels[i].Success {
			delivered := at.UTC()
			h.Channels[i].DeliveredAt = &delivered
			found = true
		}
	}
	if !found {
		return model.ReminderHistory{}, ErrChannelNotSent
	}

	h.Status = model.HistoryDelivered
	if err := d.history.Update(ctx, h); err != nil {
		return model.ReminderHistory{}, fmt.Errorf("update reminder history: %w", err)
	}

	return h, nil
}

func (d *Dispatcher) send(ctx context.Context, u model.User, ch model.Channel, content model.Content) model.ChannelResult {
	res := model.ChannelResult{Channel: ch, SentAt: d.now().UTC()}

	sender, ok := d.senders[ch]
	if !ok || sender == nil {
		res.Error = "channel provider not configured"
		metrics.ChannelSend(ch, false)
		return res
	}

	to := u.Recipient(ch)
	if to == "" {
		res.Error = "no recipient address for channel"
		metrics.ChannelSend(ch, false)
		return res
	}

	var messageID string
	err := retry.Do(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}

		sendCtx, cancel := context.WithTimeout(ctx, d.timeout)
		defer cancel()

		id, err := sender.Send(sendCtx, to, content)
		if err != nil {
			return err
		}

		messageID = id
		return nil
	}, d.strategy)

	if err != nil {
		zlog.Logger.Error().Err(err).Str("channel", string(ch)).Str("user_id", u.ID.String()).Msg("failed to send reminder")
		res.Error = err.Error()
		metrics.ChannelSend(ch, false)
		return res
	}

	res.Success = true
	res.MessageID = messageID
	metrics.ChannelSend(ch, true)

	return res
}

// mirror creates the in-app notification and links it to the history entry.
// Both steps are best effort.
func (d *Dispatcher) mirror(ctx context.Context, req model.DispatchRequest, content model.Content, h *model.ReminderHistory) {
	n := model.Notification{
		UserID:    req.User.ID,
		Type:      req.Tier.NotificationType(),
		Title:     content.Subject,
		Message:   content.Short,
		RelatedID: req.Lending.ID,
		Severity:  req.Tier.Severity(),
		Meta: model.NotificationMeta{
			Amount:            req.Lending.Amount,
			DaysOverdue:       req.DaysOverdue,
			EscalationLevel:   req.Tier.EscalationLevel(),
			ReminderTier:      req.Tier,
			ReminderHistoryID: h.ID,
		},
		Response: model.ResponsePending,
	}

	id, err := d.notifications.CreateNotification(ctx, n)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("history_id", h.ID.String()).Msg("failed to create reminder notification")
		return
	}

	h.NotificationID = &id
	if err := d.history.Update(ctx, *h); err != nil {
		zlog.Logger.Error().Err(err).Str("history_id", h.ID.String()).Msg("failed to link notification to reminder history")
	}
}
