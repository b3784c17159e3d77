package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreditRequestDTO struct {
	PurchaseAmount decimal.Decimal `json:"purchase_amount" validate:"gt=0" swaggertype:"string" example:"1000.00"`
	ReceiptID      string          `json:"receipt_id" validate:"required,max=128" example:"R-1"`
}

type CreditResponseDTO struct {
	EntryID     int64           `json:"entry_id" example:"1"`
	BonusAmount decimal.Decimal `json:"bonus_amount" swaggertype:"string" example:"50"`
	Balance     decimal.Decimal `json:"balance" swaggertype:"string" example:"50"`
	Duplicate   bool            `json:"duplicate"`
}

// DebitRequestDTO leaves parent_receipt_id optional so that a missing parent
// gets its own reason code.
type DebitRequestDTO struct {
	Amount          decimal.Decimal `json:"amount" validate:"gt=0" swaggertype:"string" example:"30"`
	ReceiptID       string          `json:"receipt_id" validate:"required,max=128" example:"DEBIT-1"`
	ParentReceiptID string          `json:"parent_receipt_id" validate:"max=128" example:"R-1"`
}

type DebitResponseDTO struct {
	Amount       decimal.Decimal `json:"amount" swaggertype:"string" example:"30"`
	Balance      decimal.Decimal `json:"balance" swaggertype:"string" example:"20"`
	CapRemaining decimal.Decimal `json:"cap_remaining" swaggertype:"string" example:"270"`
	Duplicate    bool            `json:"duplicate"`
}

type RefundRequestDTO struct {
	RefundReceiptID      string          `json:"refund_receipt_id" validate:"required,max=128" example:"REFUND-1"`
	ParentReceiptID      string          `json:"parent_receipt_id" validate:"required,max=128" example:"R-1"`
	RefundPurchaseAmount decimal.Decimal `json:"refund_purchase_amount" validate:"gt=0" swaggertype:"string" example:"500.00"`
}

type RefundResponseDTO struct {
	RefundEntryID       int64           `json:"refund_entry_id" example:"7"`
	ReversedAmount      decimal.Decimal `json:"reversed_amount" swaggertype:"string" example:"25"`
	ReturnedDebitAmount decimal.Decimal `json:"returned_debit_amount" swaggertype:"string" example:"15"`
	Balance             decimal.Decimal `json:"balance" swaggertype:"string" example:"40"`
	NetPurchaseAmount   decimal.Decimal `json:"net_purchase_amount" swaggertype:"string" example:"500.00"`
	Duplicate           bool            `json:"duplicate"`
}

type PromotionRequestDTO struct {
	Amount    decimal.Decimal `json:"amount" validate:"gt=0" swaggertype:"string" example:"100"`
	ExpiresAt *time.Time      `json:"expires_at,omitempty" example:"2030-01-01T00:00:00Z"`
}

type PromotionResponseDTO struct {
	EntryID   int64           `json:"entry_id" example:"9"`
	Amount    decimal.Decimal `json:"amount" swaggertype:"string" example:"100"`
	ExpiresAt *time.Time      `json:"expires_at,omitempty"`
	Balance   decimal.Decimal `json:"balance" swaggertype:"string" example:"140"`
}

type BalanceResponseDTO struct {
	Balance            decimal.Decimal `json:"balance" swaggertype:"string" example:"140"`
	RegularBalance     decimal.Decimal `json:"regular_balance" swaggertype:"string" example:"40"`
	PromotionalBalance decimal.Decimal `json:"promotional_balance" swaggertype:"string" example:"100"`
}
