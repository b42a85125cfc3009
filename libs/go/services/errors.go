package services

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by the role store and the orchestrator.
var (
	ErrInsufficientFunds   = errors.New("insufficient funds in pool")
	ErrContractUnavailable = errors.New("contract unavailable")
	ErrWalletNotConnected  = errors.New("wallet not connected")
	ErrProviderUnavailable = errors.New("provider not available")
	ErrNotFound            = errors.New("not found")
	ErrSignerMismatch      = errors.New("wallet address does not match the signing key")
)

// ValidationError reports malformed caller input. It is returned before any
// state change or network call.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func newValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// IsValidationError reports whether err wraps a *ValidationError.
func IsValidationError(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}
