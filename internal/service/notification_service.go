package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/hirzany/pam-backend/internal/gateway"
	"github.com/hirzany/pam-backend/internal/metrics"
	"github.com/hirzany/pam-backend/internal/models"
)

// LedgerRepo records committed payment outcomes. CommitIfAbsent is the
// single atomic check-and-set that guards against the gateway's at-least-once
// delivery.
type LedgerRepo interface {
	CommitIfAbsent(ctx context.Context, orderID string, outcome models.Outcome) (*models.CommitResult, error)
}

// Pusher delivers a message to a customer device identified by its token.
type Pusher interface {
	Send(ctx context.Context, token, title, body string) (string, error)
}

// Publisher defines the interface for publishing events to Kafka topics.
type Publisher interface {
	Publish(ctx context.Context, topic string, message interface{}) error
}

const (
	pushTitle      = "Payment Successful"
	pushBodyFormat = "Your payment of %s for order %s has been received."

	dispatchTimeout = 10 * time.Second
)

// NotificationService processes payment-status callbacks from the gateway:
// verify signature, classify outcome, commit it exactly once, then fire the
// downstream side effects off the request path. Only a signature failure is
// surfaced to the caller; every other condition is absorbed so the gateway
// gets its acknowledgment and stops redelivering.
type NotificationService struct {
	Ledger    LedgerRepo
	Pusher    Pusher
	Publisher Publisher
	ServerKey string

	dispatches sync.WaitGroup
}

func NewNotificationService(ledger LedgerRepo, pusher Pusher, publisher Publisher, serverKey string) *NotificationService {
	return &NotificationService{
		Ledger:    ledger,
		Pusher:    pusher,
		Publisher: publisher,
		ServerKey: serverKey,
	}
}

// HandleNotification applies a single gateway callback. It returns
// models.ErrInvalidSignature when the payload fails authentication; any
// error after successful verification is logged and swallowed, because the
// acknowledgment must go out either way — the ledger kept its prior state,
// so a gateway redelivery stays safe.
func (s *NotificationService) HandleNotification(ctx context.Context, n *models.GatewayNotification) error {
	if !gateway.VerifySignature(n.OrderID, n.StatusCode, n.GrossAmount, n.SignatureKey, s.ServerKey) {
		metrics.SignatureFailuresTotal.Inc()
		logrus.Warnf("rejecting notification for order %s: signature mismatch", n.OrderID)
		return models.ErrInvalidSignature
	}

	outcome := models.ClassifyOutcome(n.TransactionStatus, n.FraudStatus)
	metrics.NotificationsTotal.WithLabelValues(string(outcome)).Inc()
	if outcome == models.OutcomeIgnored {
		logrus.Warnf("ignoring notification for order %s: transaction_status=%q fraud_status=%q",
			n.OrderID, n.TransactionStatus, n.FraudStatus)
		return nil
	}

	result, err := s.Ledger.CommitIfAbsent(ctx, n.OrderID, outcome)
	if err != nil {
		logrus.Errorf("ledger commit failed for order %s: %s", n.OrderID, err.Error())
		return nil
	}
	if !result.Committed {
		metrics.DuplicateDeliveriesTotal.Inc()
		logrus.Infof("duplicate notification for order %s (prior outcome %s)", n.OrderID, result.Prior)
		return nil
	}

	logrus.Infof("order %s committed outcome %s", n.OrderID, outcome)

	if outcome.Terminal() {
		s.dispatches.Add(1)
		go s.dispatch(n, outcome, uuid.New().String())
	}

	return nil
}

// dispatch runs detached from the request that committed the outcome, with
// its own deadline. Failures here feed logs and metrics only.
func (s *NotificationService) dispatch(n *models.GatewayNotification, outcome models.Outcome, traceID string) {
	defer s.dispatches.Done()

	ctx, cancel := context.WithTimeout(context.Background(), dispatchTimeout)
	defer cancel()

	event := models.PaymentStatusEvent{
		OrderID:     n.OrderID,
		Outcome:     string(outcome),
		GrossAmount: n.GrossAmount,
		TraceID:     traceID,
		ProcessedAt: time.Now().UTC(),
	}
	if err := s.Publisher.Publish(ctx, models.PaymentStatusEventTopic, event); err != nil {
		logrus.Errorf("publishing status event for order %s: %s", n.OrderID, err.Error())
		s.deadLetter(ctx, event)
	}

	if outcome != models.OutcomeSuccess {
		return
	}

	token := n.DeviceToken()
	if token == "" {
		logrus.Warnf("order %s has no device token, skipping push", n.OrderID)
		return
	}

	body := fmt.Sprintf(pushBodyFormat, n.GrossAmount, n.OrderID)
	messageID, err := s.Pusher.Send(ctx, token, pushTitle, body)
	if err != nil {
		metrics.PushDispatchesTotal.WithLabelValues("failed").Inc()
		logrus.Errorf("push dispatch failed for order %s: %s", n.OrderID, err.Error())
		return
	}
	metrics.PushDispatchesTotal.WithLabelValues("sent").Inc()
	logrus.Infof("push delivered for order %s message_id=%s trace_id=%s", n.OrderID, messageID, traceID)
}

// deadLetter routes a status event that could not be published to the DLQ
// topic. Losing the dead letter too is logged and dropped; the ledger commit
// already stands either way.
func (s *NotificationService) deadLetter(ctx context.Context, event models.PaymentStatusEvent) {
	value, err := json.Marshal(event)
	if err != nil {
		logrus.Errorf("marshaling dead letter for order %s: %s", event.OrderID, err.Error())
		return
	}

	msg := models.DLQMessage{
		OriginalTopic: models.PaymentStatusEventTopic,
		Key:           event.OrderID,
		Value:         string(value),
		Timestamp:     time.Now().UTC(),
	}
	if err := s.Publisher.Publish(ctx, models.PaymentsDLQTopic, msg); err != nil {
		logrus.Errorf("dead-lettering status event for order %s: %s", event.OrderID, err.Error())
	}
}

// Wait blocks until every in-flight dispatch has finished. Called on
// shutdown so detached side effects are not cut off mid-flight.
func (s *NotificationService) Wait() {
	s.dispatches.Wait()
}
