package models

import "time"

// PaymentOutcome is the idempotency ledger row for a single order. At most
// one row exists per order ID; a pending row may be upgraded to a terminal
// outcome, a terminal row is never changed again.
type PaymentOutcome struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	OrderID     string    `gorm:"size:128;not null;uniqueIndex" json:"order_id"`
	Outcome     Outcome   `gorm:"size:16;not null" json:"outcome"`
	ProcessedAt time.Time `json:"processed_at"`
}

func (PaymentOutcome) TableName() string {
	return "payment_outcomes"
}

// CommitResult reports what the ledger did with a commit attempt. Committed
// false is not an error; it means the order already has an outcome and side
// effects must be skipped.
type CommitResult struct {
	Committed bool
	Prior     Outcome
}
