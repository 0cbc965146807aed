// Package whatsapp sends reminders through a WhatsApp business API.
package whatsapp

import (
	"context"
	"net/http"

	"github.com/aliskhannn/overdue-reminder/internal/model"
	"github.com/aliskhannn/overdue-reminder/pkg/httpapi"
)

type Client struct {
	url    string
	token  string
	sender string
	client *http.Client
}

func NewClient(url, token, sender string) *Client {
	return &Client{
		url:    url,
		token:  token,
		sender: sender,
		client: &http.Client{},
	}
}

type text struct {
	Body string `json:"body"`
}

type sendRequest struct {
	Product string `json:"messaging_product"`
	From    string `json:"from,omitempty"`
	To      string `json:"to"`
	Type    string `json:"type"`
	Text    text   `json:"text"`
}

// Send delivers the short text of content to the WhatsApp number.
func (c *Client) Send(ctx context.Context, to string, content model.Content) (string, error) {
	return httpapi.Post(ctx, c.client, c.url, c.token, sendRequest{
		Product: "whatsapp",
		From:    c.sender,
		To:      to,
		Type:    "text",
		Text:    text{Body: content.Short},
	})
}
