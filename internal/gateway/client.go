package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const (
	sandboxBaseURL    = "https://app.sandbox.midtrans.com/snap/v1"
	productionBaseURL = "https://app.midtrans.com/snap/v1"

	defaultTimeout = 15 * time.Second
)

type Config struct {
	ServerKey  string
	ClientKey  string
	Production bool

	// BaseURL overrides the environment-derived endpoint. Used in tests.
	BaseURL string
}

// Client talks to the gateway's Snap API over JSON/HTTP using the server key
// as basic-auth username.
type Client struct {
	cfg        Config
	baseURL    string
	httpClient *http.Client
}

func NewClient(cfg Config) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = sandboxBaseURL
		if cfg.Production {
			baseURL = productionBaseURL
		}
	}
	return &Client{
		cfg:        cfg,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

type TransactionDetails struct {
	OrderID     string  `json:"order_id"`
	GrossAmount float64 `json:"gross_amount"`
}

type CustomerDetails struct {
	FirstName string `json:"first_name"`
	Email     string `json:"email"`
}

type ChargeRequest struct {
	TransactionDetails TransactionDetails `json:"transaction_details"`
	CustomerDetails    CustomerDetails    `json:"customer_details"`
	CustomField1       string             `json:"custom_field1,omitempty"`
}

type ChargeResponse struct {
	Token       string `json:"token"`
	RedirectURL string `json:"redirect_url"`
}

type apiError struct {
	ErrorMessages []string `json:"error_messages"`
}

// CreateTransaction opens a payment intent with the gateway and returns the
// checkout token and redirect URL. Gateway-side rejections come back as an
// error carrying the gateway's message; nothing is retried here.
func (c *Client) CreateTransaction(ctx context.Context, charge *ChargeRequest) (*ChargeResponse, error) {
	payload, err := json.Marshal(charge)
	if err != nil {
		return nil, fmt.Errorf("marshaling charge request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/transactions", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("building charge request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.SetBasicAuth(c.cfg.ServerKey, "")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling gateway: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr apiError
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && len(apiErr.ErrorMessages) > 0 {
			return nil, fmt.Errorf("gateway rejected transaction: %s", strings.Join(apiErr.ErrorMessages, "; "))
		}
		return nil, fmt.Errorf("gateway returned status %d", resp.StatusCode)
	}

	var chargeResp ChargeResponse
	if err := json.NewDecoder(resp.Body).Decode(&chargeResp); err != nil {
		return nil, fmt.Errorf("decoding gateway response: %w", err)
	}
	return &chargeResp, nil
}
