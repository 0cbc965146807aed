// Package sms sends short reminders through an HTTP SMS gateway.
package sms

import (
	"context"
	"net/http"

	"github.com/aliskhannn/overdue-reminder/internal/model"
	"github.com/aliskhannn/overdue-reminder/pkg/httpapi"
)

// Client represents an SMS gateway client.
type Client struct {
	url    string       // gateway endpoint
	token  string       // API token
	sender string       // sender id shown to the recipient
	client *http.Client // HTTP client used to make requests
}

// NewClient creates a new SMS Client.
func NewClient(url, token, sender string) *Client {
	return &Client{
		url:    url,
		token:  token,
		sender: sender,
		client: &http.Client{},
	}
}

type sendRequest struct {
	To   string `json:"to"`
	From string `json:"from,omitempty"`
	Text string `json:"text"`
}

// Send delivers the short text of content to the phone number.
func (c *Client) Send(ctx context.Context, to string, content model.Content) (string, error) {
	return httpapi.Post(ctx, c.client, c.url, c.token, sendRequest{
		To:   to,
		From: c.sender,
		Text: content.Short,
	})
}
