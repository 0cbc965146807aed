package model

import (
	"time"

	"github.com/google/uuid"
)

// Reminder history statuses.
const (
	HistorySent      = "sent"
	HistoryDelivered = "delivered"
	HistoryFailed    = "failed"
)

// ReminderHistory is one reminder attempt for a (user, lending, tier).
// At most one row per key may be in status sent or delivered.
type ReminderHistory struct {
	ID             uuid.UUID       `json:"id"`
	UserID         uuid.UUID       `json:"user_id"`
	LendingID      uuid.UUID       `json:"lending_id"`
	Tier           Tier            `json:"tier"`
	DaysOverdue    int             `json:"days_overdue"` // effective days overdue at send time
	Template       string          `json:"template"`
	Status         string          `json:"status"` // sent, delivered, failed
	Channels       []ChannelResult `json:"channels"`
	NotificationID *uuid.UUID      `json:"notification_id,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// Succeeded counts channels that accepted the message.
func (h ReminderHistory) Succeeded() int {
	n := 0
	for _, c := range h.Channels {
		if c.Success {
			n++
		}
	}

	return n
}

// ChannelResult is the outcome of one delivery attempt on one channel.
type ChannelResult struct {
	Channel     Channel    `json:"channel"`
	Success     bool       `json:"success"`
	MessageID   string     `json:"message_id,omitempty"`
	Error       string     `json:"error,omitempty"`
	SentAt      time.Time  `json:"sent_at"`
	DeliveredAt *time.Time `json:"delivered_at,omitempty"`
}

// Content is a rendered reminder.
type Content struct {
	Subject string // email subject and push title
	Body    string // full text for email
	Short   string // compact text for sms, push and whatsapp
}

// Adjustment is one itemized change applied to the base grace period.
type Adjustment struct {
	Kind   string `json:"kind"` // risk, loyalty, seasonal, weekend, amount
	Days   int    `json:"days"`
	Reason string `json:"reason"`
}

// GraceResult explains how the effective grace period was reached.
type GraceResult struct {
	Base        int          `json:"base"`
	Effective   int          `json:"effective"`
	Adjustments []Adjustment `json:"adjustments"`
}

// ScheduledReminder is the projected send time of one tier.
type ScheduledReminder struct {
	Tier   Tier      `json:"tier"`
	SendAt time.Time `json:"send_at"`
}

// DispatchRequest carries everything the dispatcher needs to render and send one reminder.
type DispatchRequest struct {
	User        User
	Preferences Preferences
	Lending     Lending
	Tier        Tier
	DaysOverdue int
	Grace       GraceResult
}

// LendingSchedule is the projected reminder plan of a lending.
type LendingSchedule struct {
	LendingID   uuid.UUID           `json:"lending_id"`
	DaysOverdue int                 `json:"days_overdue"`
	Grace       GraceResult         `json:"grace"`
	Reminders   []ScheduledReminder `json:"reminders"`
}
