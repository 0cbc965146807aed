// Package push sends reminders as mobile push notifications.
package push

import (
	"context"
	"net/http"

	"github.com/aliskhannn/overdue-reminder/internal/model"
	"github.com/aliskhannn/overdue-reminder/pkg/httpapi"
)

// Client represents a push gateway client.
type Client struct {
	url    string
	token  string
	client *http.Client
}

// NewClient creates a new push Client.
func NewClient(url, token string) *Client {
	return &Client{
		url:    url,
		token:  token,
		client: &http.Client{},
	}
}

type notification struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

type sendRequest struct {
	Token        string       `json:"token"`
	Notification notification `json:"notification"`
}

// Send pushes the subject and short text to the device token.
func (c *Client) Send(ctx context.Context, to string, content model.Content) (string, error) {
	return httpapi.Post(ctx, c.client, c.url, c.token, sendRequest{
		Token:        to,
		Notification: notification{Title: content.Subject, Body: content.Short},
	})
}
