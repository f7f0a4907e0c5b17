package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/hirzany/pam-backend/internal/models"
)

// NotificationService processes payment-status callbacks from the gateway.
type NotificationService interface {
	HandleNotification(ctx context.Context, n *models.GatewayNotification) error
}

type NotificationHandler struct {
	Service NotificationService
}

func NewNotificationHandler(s NotificationService) *NotificationHandler {
	return &NotificationHandler{Service: s}
}

// POST /notification-handler
//
// The gateway treats anything other than a 2xx as undelivered and keeps
// retrying, so only a structurally broken payload (400) or a failed
// signature check (403) may produce a non-success status here.
func (h *NotificationHandler) HandleNotification(c *gin.Context) {
	var n models.GatewayNotification
	if err := c.ShouldBindJSON(&n); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid notification payload"})
		return
	}

	if err := h.Service.HandleNotification(c.Request.Context(), &n); err != nil {
		if errors.Is(err, models.ErrInvalidSignature) {
			c.JSON(http.StatusForbidden, gin.H{"error": "invalid signature"})
			return
		}
		logrus.Errorf("notification processing error for order %s: %s", n.OrderID, err.Error())
	}

	c.String(http.StatusOK, "OK")
}
