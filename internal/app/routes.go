package app

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	handlers "github.com/hirzany/pam-backend/internal/handlers"
)

func (a *App) RegisterRoutes(payment *handlers.PaymentHandler, notification *handlers.NotificationHandler, push *handlers.PushHandler) {
	a.Router.GET("/", handlers.Health)
	a.Router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	a.Router.POST("/create-transaction", payment.CreateTransaction)
	a.Router.POST("/notification-handler", notification.HandleNotification)
	a.Router.POST("/send-notification", push.SendNotification)
}
