package ledgerservice

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/bonusledger/internal/domain"
)

const debitRefundSuffix = "_DEBIT_REFUND"

// receiptState aggregates everything chained to one purchase receipt.
type receiptState struct {
	credit           domain.Entry
	purchase         decimal.Decimal
	refundedPurchase decimal.Decimal
	reversedCredit   decimal.Decimal
	debited          decimal.Decimal
	returnedDebit    decimal.Decimal
	lines            []domain.Entry
}

func newReceiptState(credit domain.Entry, lines []domain.Entry) receiptState {
	st := receiptState{
		credit:           credit,
		purchase:         credit.PurchaseAmount.Decimal,
		refundedPurchase: decimal.Zero,
		reversedCredit:   decimal.Zero,
		debited:          decimal.Zero,
		returnedDebit:    decimal.Zero,
		lines:            lines,
	}
	for _, e := range lines {
		switch {
		case e.Kind == domain.KindRefund:
			st.refundedPurchase = st.refundedPurchase.Add(e.PurchaseAmount.Decimal.Neg())
			st.reversedCredit = st.reversedCredit.Add(e.Amount.Neg())
		case e.Amount.IsNegative():
			st.debited = st.debited.Add(e.Amount.Neg())
		case e.Amount.IsPositive() && e.Kind == domain.KindRegular:
			st.returnedDebit = st.returnedDebit.Add(e.Amount)
		}
	}
	return st
}

// loadReceipt resolves the regular credit of a purchase receipt together
// with its debit and refund chain.
func (s *Service) loadReceipt(ctx context.Context, userID int, receiptID string) (receiptState, error) {
	credit, err := s.entries.FindCredit(ctx, userID, receiptID)
	if err != nil {
		return receiptState{}, err
	}
	if credit == nil {
		return receiptState{}, domain.ErrReceiptNotFound
	}
	lines, err := s.entries.ListByParent(ctx, userID, receiptID)
	if err != nil {
		return receiptState{}, err
	}
	return newReceiptState(*credit, lines), nil
}

// receiptTaken reports whether any operation already owns receiptID. The
// unique index does not cover promotional lines, so the check is explicit.
func (s *Service) receiptTaken(ctx context.Context, userID int, receiptID string) (bool, error) {
	credit, err := s.entries.FindCredit(ctx, userID, receiptID)
	if err != nil || credit != nil {
		return credit != nil, err
	}
	refund, err := s.entries.FindRefund(ctx, userID, receiptID)
	if err != nil || refund != nil {
		return refund != nil, err
	}
	lines, err := s.entries.FindDebitLines(ctx, userID, receiptID)
	return len(lines) > 0, err
}

// netDebited is what is still charged against the receipt after refunds
// returned part of it.
func (st receiptState) netDebited() decimal.Decimal {
	return decimal.Max(decimal.Zero, st.debited.Sub(st.returnedDebit))
}

func (st receiptState) remainingPurchase() decimal.Decimal {
	return decimal.Max(decimal.Zero, st.purchase.Sub(st.refundedPurchase))
}

func (st receiptState) unreversedCredit() decimal.Decimal {
	return decimal.Max(decimal.Zero, st.credit.Amount.Sub(st.reversedCredit))
}

func (st receiptState) fullyRefunded() bool {
	return !st.remainingPurchase().IsPositive()
}

// debitCap is the total that may ever be debited against the receipt; it
// stays tied to the original purchase amount.
func (st receiptState) debitCap(fraction decimal.Decimal) decimal.Decimal {
	return st.purchase.Mul(fraction)
}

// capRemaining counts every debit ever charged against the receipt, returned
// or not, and is floored to whole points so it can be debited as reported.
func (st receiptState) capRemaining(fraction decimal.Decimal) decimal.Decimal {
	return decimal.Max(decimal.Zero, st.debitCap(fraction).Sub(st.debited).Floor())
}

// companionFor returns the debit-return line written with a refund.
func (st receiptState) companionFor(refundReceiptID string) *domain.Entry {
	id := refundReceiptID + debitRefundSuffix
	for i := range st.lines {
		if r := st.lines[i].ReceiptID; r != nil && *r == id {
			return &st.lines[i]
		}
	}
	return nil
}
