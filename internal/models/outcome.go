package models

type Outcome string

const (
	OutcomeSuccess Outcome = "SUCCESS"
	OutcomeFailed  Outcome = "FAILED"
	OutcomePending Outcome = "PENDING"
	OutcomeIgnored Outcome = "IGNORED"
)

// Transaction and fraud status values reported by the gateway.
const (
	TransactionStatusCapture    = "capture"
	TransactionStatusSettlement = "settlement"
	TransactionStatusPending    = "pending"
	TransactionStatusDeny       = "deny"
	TransactionStatusCancel     = "cancel"
	TransactionStatusExpire     = "expire"
	TransactionStatusFailure    = "failure"

	FraudStatusAccept    = "accept"
	FraudStatusChallenge = "challenge"
)

// ClassifyOutcome maps the gateway's (transaction_status, fraud_status) pair
// to a single outcome. A captured or settled payment is only a success once
// the fraud check accepted it; anything the fraud check held back stays
// pending for manual review. Statuses this service does not recognize are
// classified as Ignored so the caller can acknowledge without recording
// anything.
func ClassifyOutcome(transactionStatus, fraudStatus string) Outcome {
	switch transactionStatus {
	case TransactionStatusCapture, TransactionStatusSettlement:
		if fraudStatus == FraudStatusAccept {
			return OutcomeSuccess
		}
		return OutcomePending
	case TransactionStatusPending:
		return OutcomePending
	case TransactionStatusDeny, TransactionStatusCancel, TransactionStatusExpire, TransactionStatusFailure:
		return OutcomeFailed
	default:
		return OutcomeIgnored
	}
}

// Terminal reports whether the outcome is final for an order. Terminal
// outcomes block any later write for the same order ID.
func (o Outcome) Terminal() bool {
	return o == OutcomeSuccess || o == OutcomeFailed
}
