package dto

import "time"

// DeliveryRequest is a provider delivery receipt for one channel of a reminder.
type DeliveryRequest struct {
	Channel     string     `json:"channel" validate:"required,oneof=email sms push whatsapp"`
	DeliveredAt *time.Time `json:"delivered_at"`
}
