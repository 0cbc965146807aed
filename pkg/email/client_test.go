package email

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/overdue-reminder/internal/model"
)

func TestClient_Message(t *testing.T) {
	c := NewClient("smtp.example.com", 587, "user", "pass", "reminders@example.com")

	msg := c.message("alice@example.com", "<id@smtp.example.com>", model.Content{
		Subject: "Friendly reminder",
		Body:    "Bob owes you 3000.00 USD",
	})

	assert.Equal(t, []string{"Friendly reminder"}, msg.GetHeader("Subject"))
	assert.Equal(t, []string{"alice@example.com"}, msg.GetHeader("To"))
	assert.Equal(t, []string{"<id@smtp.example.com>"}, msg.GetHeader("Message-ID"))

	var buf bytes.Buffer
	_, err := msg.WriteTo(&buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Bob owes you 3000.00 USD")
}

func TestClient_Send_CancelledContext(t *testing.T) {
	c := NewClient("smtp.example.com", 587, "", "", "reminders@example.com")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Send(ctx, "alice@example.com", model.Content{})
	assert.ErrorIs(t, err, context.Canceled)
}
