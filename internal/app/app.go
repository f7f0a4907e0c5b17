package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/hirzany/pam-backend/config"
	"github.com/hirzany/pam-backend/internal/gateway"
	handlers "github.com/hirzany/pam-backend/internal/handlers"
	"github.com/hirzany/pam-backend/internal/metrics"
	"github.com/hirzany/pam-backend/internal/models"
	"github.com/hirzany/pam-backend/internal/publisher"
	"github.com/hirzany/pam-backend/internal/push"
	"github.com/hirzany/pam-backend/internal/repository/posgrest"
	"github.com/hirzany/pam-backend/internal/service"
)

type App struct {
	config        *config.Config
	Router        *gin.Engine
	notifications *service.NotificationService
}

func (a *App) Initialize(cfg *config.Config) {
	a.config = cfg
	db, err := cfg.DB.GormConnect()
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&models.PaymentOutcome{}); err != nil {
		log.Fatalf("failed to auto migrate: %v", err)
	}

	metrics.RegisterMetrics()

	ledger := posgrest.NewLedger(db)
	publishTopics := strings.Split(cfg.Kafka.PublishTopics, ",")
	eventPublisher := publisher.NewKafkaPublisher(cfg.Kafka.Brokers, publishTopics, cfg.Kafka.GetRetryConfig())

	gatewayClient := gateway.NewClient(gateway.Config{
		ServerKey:  cfg.Midtrans.ServerKey,
		ClientKey:  cfg.Midtrans.ClientKey,
		Production: cfg.Midtrans.Production,
	})
	pushClient := push.NewClient(cfg.Push.APIURL, cfg.Push.ServerKey)

	transactions := service.NewTransactionService(gatewayClient, cfg.APP.OrderPrefix)
	a.notifications = service.NewNotificationService(ledger, pushClient, eventPublisher, cfg.Midtrans.ServerKey)

	a.Router = gin.Default()
	a.Router.Use(gin.Recovery())
	a.RegisterRoutes(
		handlers.NewPaymentHandler(transactions),
		handlers.NewNotificationHandler(a.notifications),
		handlers.NewPushHandler(pushClient),
	)
}

// Run serves until SIGINT/SIGTERM, then drains the HTTP server and waits for
// in-flight push dispatches before returning.
func (a *App) Run() {
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", a.config.APP.PORT),
		Handler: a.Router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.Errorf("Error shutting down server: %s", err.Error())
	}

	a.notifications.Wait()
	logrus.Info("Payment service stopped")
}
