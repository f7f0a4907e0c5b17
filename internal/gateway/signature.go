package gateway

import (
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
)

// Signature computes the gateway's notification digest: the hex SHA-512 of
// order_id + status_code + gross_amount + server key. The gross amount must
// be the exact wire string (e.g. "10000.00"); any formatting divergence
// produces a different digest.
func Signature(orderID, statusCode, grossAmount, serverKey string) string {
	sum := sha512.Sum512([]byte(orderID + statusCode + grossAmount + serverKey))
	return hex.EncodeToString(sum[:])
}

// VerifySignature reports whether the provided signature_key matches the
// digest recomputed from the notification fields. Missing fields and
// malformed input report false, never an error.
func VerifySignature(orderID, statusCode, grossAmount, provided, serverKey string) bool {
	if orderID == "" || statusCode == "" || grossAmount == "" || provided == "" {
		return false
	}
	want := Signature(orderID, statusCode, grossAmount, serverKey)
	return subtle.ConstantTimeCompare([]byte(want), []byte(provided)) == 1
}
