package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/hirzany/pam-backend/internal/handlers"
	"github.com/hirzany/pam-backend/internal/handlers/mocks"
	"github.com/hirzany/pam-backend/internal/models"
	"github.com/hirzany/pam-backend/internal/models/dto"
)

func paymentRouter(h *handlers.PaymentHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/create-transaction", h.CreateTransaction)
	return r
}

func TestCreateTransactionHandler_OK(t *testing.T) {
	mockService := mocks.NewMockTransactionService(t)
	router := paymentRouter(handlers.NewPaymentHandler(mockService))

	mockService.EXPECT().
		CreateTransaction(mock.Anything, mock.MatchedBy(func(req *dto.CreateTransactionRequest) bool {
			return req.BillID.String() == "42" && req.Amount == 15000
		})).
		Return(&dto.CreateTransactionResponse{Token: "snap-token", RedirectURL: "https://gateway.example/redirect"}, nil).
		Once()

	body := []byte(`{"billId":42,"amount":15000,"customerName":"Jane Customer"}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/create-transaction", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.CreateTransactionResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "snap-token", resp.Token)
	assert.Equal(t, "https://gateway.example/redirect", resp.RedirectURL)
}

func TestCreateTransactionHandler_InvalidBody(t *testing.T) {
	mockService := mocks.NewMockTransactionService(t)
	router := paymentRouter(handlers.NewPaymentHandler(mockService))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/create-transaction", bytes.NewReader([]byte(`not json`)))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "CreateTransaction", mock.Anything, mock.Anything)
}

func TestCreateTransactionHandler_ValidationError(t *testing.T) {
	mockService := mocks.NewMockTransactionService(t)
	router := paymentRouter(handlers.NewPaymentHandler(mockService))

	mockService.EXPECT().
		CreateTransaction(mock.Anything, mock.AnythingOfType("*dto.CreateTransactionRequest")).
		Return(nil, fmt.Errorf("%w: amount must be greater than zero", models.ErrInvalidRequest)).
		Once()

	body := []byte(`{"billId":42,"amount":-5,"customerName":"Jane Customer"}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/create-transaction", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateTransactionHandler_GatewayError(t *testing.T) {
	mockService := mocks.NewMockTransactionService(t)
	router := paymentRouter(handlers.NewPaymentHandler(mockService))

	mockService.EXPECT().
		CreateTransaction(mock.Anything, mock.AnythingOfType("*dto.CreateTransactionRequest")).
		Return(nil, errors.New("gateway rejected transaction: invalid server key")).
		Once()

	body := []byte(`{"billId":42,"amount":15000,"customerName":"Jane Customer"}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/create-transaction", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "invalid server key")
}
