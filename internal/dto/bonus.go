package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type BonusInfoResponseDTO struct {
	Balance            decimal.Decimal  `json:"balance" swaggertype:"string" example:"120"`
	RegularBalance     decimal.Decimal  `json:"regular_balance" swaggertype:"string" example:"100"`
	PromotionalBalance decimal.Decimal  `json:"promotional_balance" swaggertype:"string" example:"20"`
	Tier               string           `json:"tier" example:"silver"`
	CashbackPercent    decimal.Decimal  `json:"cashback_percent" swaggertype:"string" example:"10"`
	NetPurchaseAmount  decimal.Decimal  `json:"net_purchase_amount" swaggertype:"string" example:"12500.00"`
	NextTier           *string          `json:"next_tier" example:"gold"`
	NextTierMinAmount  *decimal.Decimal `json:"next_tier_min_amount" swaggertype:"string" example:"30000"`
	ProgressPercent    decimal.Decimal  `json:"progress_percent" swaggertype:"string" example:"12.5"`
}

type EntryDTO struct {
	ID              int64            `json:"id" example:"42"`
	Amount          decimal.Decimal  `json:"amount" swaggertype:"string" example:"-30"`
	PurchaseAmount  *decimal.Decimal `json:"purchase_amount,omitempty" swaggertype:"string" example:"1000.00"`
	Kind            string           `json:"kind" example:"regular"`
	Status          string           `json:"status" example:"show_and_calc"`
	ReceiptID       *string          `json:"receipt_id,omitempty" example:"DEBIT-1"`
	ParentReceiptID *string          `json:"parent_receipt_id,omitempty" example:"R-1"`
	ExpiresAt       *time.Time       `json:"expires_at,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
}

type HistoryResponseDTO struct {
	Entries []EntryDTO `json:"entries"`
	Total   int        `json:"total" example:"57"`
	Limit   int        `json:"limit" example:"20"`
	Offset  int        `json:"offset" example:"0"`
}

type TierDTO struct {
	Name              string          `json:"name" example:"bronze"`
	CashbackPercent   decimal.Decimal `json:"cashback_percent" swaggertype:"string" example:"5"`
	MinPurchaseAmount decimal.Decimal `json:"min_purchase_amount" swaggertype:"string" example:"0"`
}
