package service

import (
	"context"
	"fmt"
	"time"

	"github.com/hirzany/pam-backend/internal/gateway"
	"github.com/hirzany/pam-backend/internal/metrics"
	"github.com/hirzany/pam-backend/internal/models/dto"
)

// GatewayClient issues payment intents with the upstream gateway.
type GatewayClient interface {
	CreateTransaction(ctx context.Context, charge *gateway.ChargeRequest) (*gateway.ChargeResponse, error)
}

// TransactionService creates payment intents. It writes no local state; the
// gateway owns the intent and echoes the order ID back on every later
// notification.
type TransactionService struct {
	Gateway     GatewayClient
	OrderPrefix string
}

func NewTransactionService(gw GatewayClient, orderPrefix string) *TransactionService {
	return &TransactionService{
		Gateway:     gw,
		OrderPrefix: orderPrefix,
	}
}

// CreateTransaction validates the request, derives a collision-free order ID
// from the bill ID and the current epoch millis, and opens the intent with
// the gateway. The device token rides along in the gateway's custom field so
// notifications can carry it back without any storage on our side.
func (s *TransactionService) CreateTransaction(ctx context.Context, req *dto.CreateTransactionRequest) (*dto.CreateTransactionResponse, error) {
	req.Sanitize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	orderID := fmt.Sprintf("%s-%s-%d", s.OrderPrefix, req.BillID.String(), time.Now().UnixMilli())

	charge := &gateway.ChargeRequest{
		TransactionDetails: gateway.TransactionDetails{
			OrderID:     orderID,
			GrossAmount: req.Amount,
		},
		CustomerDetails: gateway.CustomerDetails{
			FirstName: req.CustomerName,
			Email:     req.CustomerEmail,
		},
		CustomField1: req.DeviceToken,
	}

	resp, err := s.Gateway.CreateTransaction(ctx, charge)
	if err != nil {
		return nil, fmt.Errorf("creating gateway transaction: %w", err)
	}

	metrics.TransactionsCreatedTotal.Inc()

	return &dto.CreateTransactionResponse{
		Token:       resp.Token,
		RedirectURL: resp.RedirectURL,
	}, nil
}
