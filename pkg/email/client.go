// Package email sends reminders over SMTP.
package email

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gopkg.in/mail.v2"

	"github.com/aliskhannn/overdue-reminder/internal/model"
)

const defaultTimeout = 10 * time.Second

type Client struct {
	smtpHost string
	smtpPort int
	username string
	password string
	from     string
}

func NewClient(smtpHost string, smtpPort int, username, password, from string) *Client {
	return &Client{
		smtpHost: smtpHost,
		smtpPort: smtpPort,
		username: username,
		password: password,
		from:     from,
	}
}

// Send delivers content to the address and returns the generated Message-ID.
// The context deadline bounds the SMTP dial.
func (c *Client) Send(ctx context.Context, to string, content model.Content) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	id := fmt.Sprintf("<%s@%s>", uuid.NewString(), c.smtpHost)
	message := c.message(to, id, content)

	dialer := mail.NewDialer(c.smtpHost, c.smtpPort, c.username, c.password)
	dialer.Timeout = defaultTimeout
	if deadline, ok := ctx.Deadline(); ok {
		dialer.Timeout = time.Until(deadline)
	}

	if err := dialer.DialAndSend(message); err != nil {
		return "", fmt.Errorf("send email: %w", err)
	}

	return id, nil
}

func (c *Client) message(to, id string, content model.Content) *mail.Message {
	message := mail.NewMessage()

	message.SetHeader("From", c.from)
	message.SetHeader("To", to)
	message.SetHeader("Subject", content.Subject)
	message.SetHeader("Message-ID", id)

	message.SetBody("text/plain", content.Body)

	return message
}
