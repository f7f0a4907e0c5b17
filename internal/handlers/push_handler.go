package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/hirzany/pam-backend/internal/models/dto"
)

// Pusher delivers a message to a device identified by its push token.
type Pusher interface {
	Send(ctx context.Context, token, title, body string) (string, error)
}

type PushHandler struct {
	Pusher Pusher
}

func NewPushHandler(p Pusher) *PushHandler {
	return &PushHandler{Pusher: p}
}

// POST /send-notification
func (h *PushHandler) SendNotification(c *gin.Context) {
	var req dto.PushRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "token, title and body are required"})
		return
	}

	messageID, err := h.Pusher.Send(c.Request.Context(), req.Token, req.Title, req.Body)
	if err != nil {
		logrus.Errorf("push send failed: %s", err.Error())
		c.JSON(http.StatusInternalServerError, dto.PushResponse{Success: false, Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.PushResponse{Success: true, MessageID: messageID})
}
