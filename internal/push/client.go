package push

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const defaultTimeout = 10 * time.Second

// Client delivers push notifications to customer devices through the
// messaging API configured at startup. Delivery is best effort; callers
// decide whether a failure matters.
type Client struct {
	url        string
	serverKey  string
	httpClient *http.Client
}

func NewClient(url, serverKey string) *Client {
	return &Client{
		url:        url,
		serverKey:  serverKey,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

type message struct {
	To           string       `json:"to"`
	Priority     string       `json:"priority"`
	Notification notification `json:"notification"`
}

type notification struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

type sendResponse struct {
	MessageID string `json:"message_id"`
	Error     string `json:"error,omitempty"`
}

// Send pushes a single message to the device identified by token and returns
// the messaging service's message ID.
func (c *Client) Send(ctx context.Context, token, title, body string) (string, error) {
	payload, err := json.Marshal(message{
		To:       token,
		Priority: "high",
		Notification: notification{
			Title: title,
			Body:  body,
		},
	})
	if err != nil {
		return "", fmt.Errorf("marshaling push message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("building push request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "key="+c.serverKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling push service: %w", err)
	}
	defer resp.Body.Close()

	var sendResp sendResponse
	if err := json.NewDecoder(resp.Body).Decode(&sendResp); err != nil {
		return "", fmt.Errorf("decoding push response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if sendResp.Error != "" {
			return "", fmt.Errorf("push service rejected message: %s", sendResp.Error)
		}
		return "", fmt.Errorf("push service returned status %d", resp.StatusCode)
	}
	return sendResp.MessageID, nil
}
