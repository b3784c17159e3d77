package ledgerservice

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/bonusledger/internal/domain"
	"github.com/GlebRadaev/bonusledger/internal/metrics"
)

// RefundBonusByReceipt unwinds a purchase, fully or in part.
//
// The refunded amount is clamped to what is still refundable on the
// receipt. The credit is reversed in proportion to the original purchase
// and never beyond what is left of it; the final refund reverses the rest.
// Bonus debited against the receipt is returned in proportion to the
// purchase still outstanding, through a companion regular entry. Net
// purchase amount shrinks by the refunded amount and never goes below zero.
func (s *Service) RefundBonusByReceipt(ctx context.Context, userID int, refundReceiptID, parentReceiptID string, refundPurchaseAmount decimal.Decimal) (res *domain.RefundResult, err error) {
	defer func(start time.Time) { metrics.ObserveOperation("refund", start, err) }(time.Now())

	refundReceiptID = strings.TrimSpace(refundReceiptID)
	parentReceiptID = strings.TrimSpace(parentReceiptID)
	switch {
	case refundReceiptID == "":
		return nil, domain.Validationf("refund receipt id is required")
	case parentReceiptID == "":
		return nil, domain.Validationf("purchase receipt id is required")
	case refundReceiptID == parentReceiptID:
		return nil, domain.Validationf("refund receipt id must differ from the purchase receipt id")
	case !refundPurchaseAmount.IsPositive():
		return nil, domain.Validationf("refund amount must be positive")
	case !validMoney(refundPurchaseAmount):
		return nil, domain.Validationf("refund amount must have at most %d decimal places", moneyScale)
	}

	var (
		user    *domain.User
		created bool
	)
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		user, err = s.lockUser(ctx, userID)
		if err != nil {
			return err
		}

		previous, err := s.entries.FindRefund(ctx, userID, refundReceiptID)
		if err != nil {
			return err
		}
		if previous != nil {
			res, err = s.replayRefund(ctx, user, *previous, parentReceiptID)
			return err
		}

		taken, err := s.receiptTaken(ctx, userID, refundReceiptID)
		if err != nil {
			return err
		}
		if taken {
			return fmt.Errorf("%w: receipt id is used by another operation", domain.ErrDuplicateReceipt)
		}

		st, err := s.loadReceipt(ctx, userID, parentReceiptID)
		if err != nil {
			return err
		}
		outstanding := st.remainingPurchase()
		if !outstanding.IsPositive() {
			return domain.ErrReceiptRefunded
		}

		effective := decimal.Min(refundPurchaseAmount, outstanding)
		reversal := st.unreversedCredit()
		if effective.LessThan(outstanding) {
			fraction := decimal.Min(decimal.NewFromInt(1), effective.Div(st.purchase))
			reversal = decimal.Min(reversal, st.credit.Amount.Mul(fraction).Round(0))
		}

		refund := domain.Entry{
			UserID:          userID,
			Amount:          reversal.Neg(),
			PurchaseAmount:  decimal.NewNullDecimal(effective.Neg()),
			Kind:            domain.KindRefund,
			Status:          domain.StatusShowAndCalc,
			ReceiptID:       strPtr(refundReceiptID),
			ParentReceiptID: strPtr(parentReceiptID),
		}
		if err := s.entries.Create(ctx, &refund); err != nil {
			return err
		}

		netDebited := st.netDebited()
		returned := decimal.Min(netDebited, netDebited.Mul(effective).Div(outstanding).Round(0))
		if returned.IsPositive() {
			companion := domain.Entry{
				UserID:          userID,
				Amount:          returned,
				Kind:            domain.KindRegular,
				Status:          domain.StatusShowAndCalc,
				ReceiptID:       strPtr(refundReceiptID + debitRefundSuffix),
				ParentReceiptID: strPtr(parentReceiptID),
			}
			if err := s.entries.Create(ctx, &companion); err != nil {
				return err
			}
		}

		net := decimal.Max(decimal.Zero, user.NetPurchaseAmount.Sub(effective))
		snapshot, err := s.refresh(ctx, user, net)
		if err != nil {
			return err
		}
		res = &domain.RefundResult{
			RefundEntry:         refund,
			ReturnedDebitAmount: returned,
			Balance:             snapshot.Total,
			NetPurchaseAmount:   net,
		}
		created = true
		return nil
	})
	if err != nil {
		logFailure("failed to refund bonus", userID, err)
		return nil, err
	}

	if created {
		zap.L().Info("bonus refunded",
			zap.Int("user_id", userID),
			zap.String("receipt_id", refundReceiptID),
			zap.String("parent_receipt_id", parentReceiptID),
			zap.String("reversed", res.RefundEntry.Amount.String()),
			zap.String("returned_debit", res.ReturnedDebitAmount.String()),
		)
		event := domain.NewEvent(domain.EventRefund, user, res.RefundEntry.Amount, s.now())
		event.PurchaseAmount = decPtr(res.RefundEntry.PurchaseAmount.Decimal.Neg())
		event.ReturnedDebitAmount = decPtr(res.ReturnedDebitAmount)
		event.ReceiptID = refundReceiptID
		s.notify(ctx, event)
	}
	return res, nil
}

func (s *Service) replayRefund(ctx context.Context, user *domain.User, previous domain.Entry, parentReceiptID string) (*domain.RefundResult, error) {
	if p := previous.ParentReceiptID; p == nil || *p != parentReceiptID {
		return nil, fmt.Errorf("%w: refund receipt is bound to another purchase", domain.ErrDuplicateReceipt)
	}
	lines, err := s.entries.ListByParent(ctx, user.ID, parentReceiptID)
	if err != nil {
		return nil, err
	}
	st := receiptState{lines: lines}
	returned := decimal.Zero
	if companion := st.companionFor(*previous.ReceiptID); companion != nil {
		returned = companion.Amount
	}
	return &domain.RefundResult{
		RefundEntry:         previous,
		ReturnedDebitAmount: returned,
		Duplicate:           true,
		Balance:             user.BonusBalance,
		NetPurchaseAmount:   user.NetPurchaseAmount,
	}, nil
}
