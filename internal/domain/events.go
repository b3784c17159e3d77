package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type EventType string

const (
	EventCredit    EventType = "credit"
	EventDebit     EventType = "debit"
	EventRefund    EventType = "refund"
	EventPromotion EventType = "promotion"
)

// Event is emitted after a ledger mutation has been committed.
type Event struct {
	ID                  uuid.UUID        `json:"id"`
	Type                EventType        `json:"type"`
	UserID              int              `json:"user_id"`
	Phone               string           `json:"phone"`
	Amount              decimal.Decimal  `json:"amount"`
	PurchaseAmount      *decimal.Decimal `json:"purchase_amount,omitempty"`
	ReturnedDebitAmount *decimal.Decimal `json:"returned_debit_amount,omitempty"`
	RemainingBonus      decimal.Decimal  `json:"remaining_bonus"`
	ReceiptID           string           `json:"receipt_id,omitempty"`
	OccurredAt          time.Time        `json:"occurred_at"`
}

func NewEvent(typ EventType, user *User, amount decimal.Decimal, at time.Time) Event {
	return Event{
		ID:             uuid.New(),
		Type:           typ,
		UserID:         user.ID,
		Phone:          user.Phone,
		Amount:         amount,
		RemainingBonus: user.BonusBalance,
		OccurredAt:     at,
	}
}
