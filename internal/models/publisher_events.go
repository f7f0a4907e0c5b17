package models

import "time"

const (
	PaymentStatusEventTopic = "payments.status.changed"
	PaymentsDLQTopic        = "payments.dlq"
)

// PaymentStatusEvent is published once per committed terminal outcome so
// downstream consumers can react without polling the ledger.
type PaymentStatusEvent struct {
	OrderID     string    `json:"order_id"`
	Outcome     string    `json:"outcome"`
	GrossAmount string    `json:"gross_amount"`
	TraceID     string    `json:"trace_id"`
	ProcessedAt time.Time `json:"processed_at"`
}

// DLQMessage wraps a status event that could not be published after the
// publisher exhausted its retries, so it can be replayed from the dead
// letter topic later.
type DLQMessage struct {
	OriginalTopic string    `json:"original_topic"`
	Key           string    `json:"key"`
	Value         string    `json:"value"`
	Timestamp     time.Time `json:"timestamp"`
}
