package models

import "errors"

var (
	// ErrInvalidSignature marks a notification whose signature did not match.
	// It is the only processing error the notification endpoint surfaces as a
	// non-2xx response.
	ErrInvalidSignature = errors.New("invalid notification signature")

	// ErrInvalidRequest marks a create-transaction request that failed
	// validation before reaching the gateway.
	ErrInvalidRequest = errors.New("invalid request")
)
