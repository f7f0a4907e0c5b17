package dto

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/hirzany/pam-backend/internal/models"
)

type CreateTransactionRequest struct {
	BillID        json.Number `json:"billId" binding:"required"`
	Amount        float64     `json:"amount" binding:"required"`
	CustomerName  string      `json:"customerName" binding:"required"`
	CustomerEmail string      `json:"customerEmail"`
	DeviceToken   string      `json:"deviceToken"`
}

const defaultCustomerEmail = "customer@example.com"

func (r *CreateTransactionRequest) Sanitize() {
	r.CustomerName = strings.TrimSpace(r.CustomerName)
	r.CustomerEmail = strings.TrimSpace(r.CustomerEmail)
	if r.CustomerEmail == "" {
		r.CustomerEmail = defaultCustomerEmail
	}
}

func (r *CreateTransactionRequest) Validate() error {
	if r.BillID.String() == "" {
		return fmt.Errorf("%w: billId is required", models.ErrInvalidRequest)
	}
	if r.Amount <= 0 {
		return fmt.Errorf("%w: amount must be greater than zero", models.ErrInvalidRequest)
	}
	if r.CustomerName == "" {
		return fmt.Errorf("%w: customerName is required", models.ErrInvalidRequest)
	}
	return nil
}

type CreateTransactionResponse struct {
	Token       string `json:"token"`
	RedirectURL string `json:"redirect_url"`
}

type PushRequest struct {
	Token string `json:"token" binding:"required"`
	Title string `json:"title" binding:"required"`
	Body  string `json:"body" binding:"required"`
}

type PushResponse struct {
	Success   bool   `json:"success"`
	MessageID string `json:"messageId,omitempty"`
	Error     string `json:"error,omitempty"`
}
