// Package httpapi posts JSON messages to provider HTTP APIs.
package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// response is the common provider answer; providers name the id differently.
type response struct {
	ID        string `json:"id"`
	MessageID string `json:"message_id"`
}

// Post sends payload to url with a bearer token and returns the provider message id.
// Any non-2xx status is an error.
func Post(ctx context.Context, client *http.Client, url, token string, payload interface{}) (string, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("provider API error: %s", resp.Status)
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	var r response
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &r); err != nil {
			return "", fmt.Errorf("decode response: %w", err)
		}
	}

	if r.ID != "" {
		return r.ID, nil
	}

	return r.MessageID, nil
}
