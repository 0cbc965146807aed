package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Response values track how the user reacted to an in-app reminder.
const (
	ResponsePending   = "pending"
	ResponseViewed    = "viewed"
	ResponseRepaid    = "repaid"
	ResponseContacted = "contacted"
	ResponseDisputed  = "disputed"
	ResponseIgnored   = "ignored"
	ResponseEscalated = "escalated"
)

// Notification represents an in-app notification mirroring a sent reminder.
type Notification struct {
	ID        uuid.UUID        `json:"id"`         // unique identifier for the notification
	UserID    uuid.UUID        `json:"user_id"`    // owner of the inbox
	Type      string           `json:"type"`       // e.g. "lending_overdue_first"
	Title     string           `json:"title"`      // short headline
	Message   string           `json:"message"`    // body shown in the inbox
	RelatedID uuid.UUID        `json:"related_id"` // lending the reminder is about
	Severity  Severity         `json:"severity"`   // low, medium, high, critical
	Meta      NotificationMeta `json:"meta"`       // structured reminder details
	Response  string           `json:"response"`   // response tracking, see Response* constants
	CreatedAt time.Time        `json:"created_at"` // timestamp when the notification was created
}

// NotificationMeta carries the reminder details stored next to a notification.
type NotificationMeta struct {
	Amount            decimal.Decimal `json:"amount"`
	DaysOverdue       int             `json:"daysOverdue"`
	EscalationLevel   int             `json:"escalationLevel"`
	ReminderTier      Tier            `json:"reminderTier"`
	ReminderHistoryID uuid.UUID       `json:"reminderHistoryId"`
}

// ResponseStat is one row of the reminder effectiveness breakdown.
type ResponseStat struct {
	Type     string `json:"type"`
	Response string `json:"response"`
	Count    int    `json:"count"`
}
