package posgrest

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/hirzany/pam-backend/internal/models"
)

// LedgerRepository is the gorm-backed idempotency ledger. Each order ID owns
// at most one row in payment_outcomes, enforced by a unique index.
type LedgerRepository struct {
	db *gorm.DB
}

func NewLedger(db *gorm.DB) *LedgerRepository {
	return &LedgerRepository{
		db,
	}
}

// CommitIfAbsent atomically records an outcome for an order. The rules are:
//   - no existing row: insert, committed
//   - existing PENDING row and a terminal outcome: upgrade, committed
//   - anything else: leave the row alone, not committed
//
// The read-check-write runs inside a transaction with the row locked, so
// concurrent deliveries for the same order serialize on the row. Two
// concurrent first deliveries race on the insert instead; the unique index
// fails the loser with a duplicate-key error and the attempt is replayed
// against the winner's row.
func (r *LedgerRepository) CommitIfAbsent(ctx context.Context, orderID string, outcome models.Outcome) (*models.CommitResult, error) {
	for attempt := 0; attempt < 2; attempt++ {
		result, err := r.tryCommit(ctx, orderID, outcome)
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return result, nil
	}
	return &models.CommitResult{Committed: false}, nil
}

func (r *LedgerRepository) tryCommit(ctx context.Context, orderID string, outcome models.Outcome) (*models.CommitResult, error) {
	result := &models.CommitResult{}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var record models.PaymentOutcome
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("order_id = ?", orderID).
			First(&record).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			record = models.PaymentOutcome{
				OrderID:     orderID,
				Outcome:     outcome,
				ProcessedAt: time.Now().UTC(),
			}
			if err := tx.Create(&record).Error; err != nil {
				return err
			}
			result.Committed = true
			return nil
		}
		if err != nil {
			return err
		}

		result.Prior = record.Outcome
		if record.Outcome == models.OutcomePending && outcome.Terminal() {
			updates := map[string]interface{}{
				"outcome":      outcome,
				"processed_at": time.Now().UTC(),
			}
			if err := tx.Model(&record).Updates(updates).Error; err != nil {
				return err
			}
			result.Committed = true
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
