package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	ID                int             `db:"id"`
	Phone             string          `db:"phone"`
	PasswordHash      string          `db:"password_hash"`
	BonusBalance      decimal.Decimal `db:"bonus_balance"`
	NetPurchaseAmount decimal.Decimal `db:"net_purchase_amount"`
	ProfileCompleted  bool            `db:"profile_completed"`
	CreatedAt         time.Time       `db:"created_at"`
}

type EntryKind string

const (
	KindRegular     EntryKind = "regular"
	KindPromotional EntryKind = "promotional"
	KindRefund      EntryKind = "refund"
)

type EntryStatus string

const (
	// StatusShowAndCalc counts toward the balance and shows in history.
	StatusShowAndCalc EntryStatus = "show_and_calc"
	// StatusCalcNotShow counts toward the balance but is hidden from history.
	StatusCalcNotShow EntryStatus = "calc_not_show"
	// StatusShowNotCalc shows in history but does not affect the balance.
	StatusShowNotCalc EntryStatus = "show_not_calc"
)

func (s EntryStatus) Counted() bool {
	return s == StatusShowAndCalc || s == StatusCalcNotShow
}

func (s EntryStatus) Visible() bool {
	return s == StatusShowAndCalc || s == StatusShowNotCalc
}

// Entry is a single line of a user's bonus ledger.
type Entry struct {
	ID              int64               `db:"id"`
	UserID          int                 `db:"user_id"`
	Amount          decimal.Decimal     `db:"amount"`
	PurchaseAmount  decimal.NullDecimal `db:"purchase_amount"`
	Kind            EntryKind           `db:"kind"`
	Status          EntryStatus         `db:"status"`
	ExpiresAt       *time.Time          `db:"expires_at"`
	ReceiptID       *string             `db:"receipt_id"`
	ParentReceiptID *string             `db:"parent_receipt_id"`
	CreatedAt       time.Time           `db:"created_at"`
	DeletedAt       *time.Time          `db:"deleted_at"`
}

// Expired reports whether a promotional entry is past its expiry at now.
func (e Entry) Expired(now time.Time) bool {
	return e.Kind == KindPromotional && e.ExpiresAt != nil && !e.ExpiresAt.After(now)
}

// BalanceSnapshot is the result of replaying a user's counted entries.
// Regular and Promotional are reported unclamped; Total is never negative.
type BalanceSnapshot struct {
	Total       decimal.Decimal
	Regular     decimal.Decimal
	Promotional decimal.Decimal
}

type BonusInfo struct {
	UserID            int
	Balance           BalanceSnapshot
	TierName          string
	CashbackPercent   decimal.Decimal
	NetPurchaseAmount decimal.Decimal
	NextTierName      *string
	NextTierMinAmount *decimal.Decimal
	ProgressPercent   decimal.Decimal
}

type CreditResult struct {
	Entry     Entry
	Duplicate bool
	Balance   decimal.Decimal
}

type DebitResult struct {
	Entries      []Entry
	Amount       decimal.Decimal
	Duplicate    bool
	Balance      decimal.Decimal
	CapRemaining decimal.Decimal
}

type RefundResult struct {
	RefundEntry         Entry
	ReturnedDebitAmount decimal.Decimal
	Duplicate           bool
	Balance             decimal.Decimal
	NetPurchaseAmount   decimal.Decimal
}

type PromotionResult struct {
	Entry   Entry
	Balance decimal.Decimal
}

type History struct {
	Entries []Entry
	Total   int
}
