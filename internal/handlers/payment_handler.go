package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/hirzany/pam-backend/internal/models"
	"github.com/hirzany/pam-backend/internal/models/dto"
)

// TransactionService creates payment intents with the upstream gateway.
type TransactionService interface {
	CreateTransaction(ctx context.Context, req *dto.CreateTransactionRequest) (*dto.CreateTransactionResponse, error)
}

type PaymentHandler struct {
	Service TransactionService
}

func NewPaymentHandler(s TransactionService) *PaymentHandler {
	return &PaymentHandler{Service: s}
}

// POST /create-transaction
func (h *PaymentHandler) CreateTransaction(c *gin.Context) {
	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	resp, err := h.Service.CreateTransaction(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, models.ErrInvalidRequest) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logrus.Errorf("error creating transaction: %s", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}
