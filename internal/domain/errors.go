package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	ErrDuplicateReceipt     = errors.New("receipt already processed")
	ErrReceiptNotFound      = errors.New("receipt not found")
	ErrInsufficientBalance  = errors.New("insufficient bonus balance")
	ErrDebitCapExceeded     = errors.New("debit cap exceeded")
	ErrMissingParentReceipt = errors.New("parent receipt is required for a debit")
	ErrValidation           = errors.New("validation failed")
	ErrReceiptRefunded      = errors.New("receipt already fully refunded")
	ErrUserNotFound         = errors.New("user not found")
	ErrPhoneTaken           = errors.New("phone already registered")
)

// Reason codes returned to callers. They are part of the API contract.
const (
	CodeDuplicateReceipt     = "duplicate_receipt"
	CodeReceiptNotFound      = "receipt_not_found"
	CodeInsufficientBalance  = "insufficient_balance"
	CodeDebitCapExceeded     = "debit_cap_exceeded"
	CodeMissingParentReceipt = "missing_parent_receipt"
	CodeValidation           = "validation_error"
	CodeReceiptRefunded      = "receipt_refunded"
	CodeUserNotFound         = "user_not_found"
	CodeInternal             = "internal_error"
)

// CapExceededError reports how much can still be debited against a receipt.
type CapExceededError struct {
	ReceiptID  string
	MaxAllowed decimal.Decimal
}

func (e *CapExceededError) Error() string {
	return fmt.Sprintf("debit cap exceeded for receipt %s: at most %s can be debited", e.ReceiptID, e.MaxAllowed.String())
}

func (e *CapExceededError) Unwrap() error {
	return ErrDebitCapExceeded
}

func Validationf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

func CodeOf(err error) string {
	switch {
	case errors.Is(err, ErrDuplicateReceipt):
		return CodeDuplicateReceipt
	case errors.Is(err, ErrReceiptNotFound):
		return CodeReceiptNotFound
	case errors.Is(err, ErrInsufficientBalance):
		return CodeInsufficientBalance
	case errors.Is(err, ErrDebitCapExceeded):
		return CodeDebitCapExceeded
	case errors.Is(err, ErrMissingParentReceipt):
		return CodeMissingParentReceipt
	case errors.Is(err, ErrValidation):
		return CodeValidation
	case errors.Is(err, ErrReceiptRefunded):
		return CodeReceiptRefunded
	case errors.Is(err, ErrUserNotFound):
		return CodeUserNotFound
	default:
		return CodeInternal
	}
}
