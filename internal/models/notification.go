package models

// GatewayNotification is the untrusted payment-status callback the gateway
// posts to the notification handler. It is never persisted; only the outcome
// derived from it is. The signature fields must be verified over the exact
// wire strings, so the amount is kept as the gateway sent it.
type GatewayNotification struct {
	OrderID           string `json:"order_id" binding:"required"`
	StatusCode        string `json:"status_code" binding:"required"`
	GrossAmount       string `json:"gross_amount" binding:"required"`
	SignatureKey      string `json:"signature_key" binding:"required"`
	TransactionStatus string `json:"transaction_status" binding:"required"`
	FraudStatus       string `json:"fraud_status"`

	// CustomField1 carries the device push token handed to the gateway when
	// the intent was created and echoed back on every callback.
	CustomField1 string `json:"custom_field1"`
}

func (n *GatewayNotification) DeviceToken() string {
	return n.CustomField1
}
