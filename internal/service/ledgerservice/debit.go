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

// DebitBonus spends bonus points against a purchase receipt.
//
// Points are taken from unexpired promotional entries first, soonest expiry
// first with open-ended promotions last, and only then from the regular
// balance. A consumed promotion is retired; a partially consumed one is
// replaced by an entry holding the remainder. The debit is written as a
// counted regular line for the part paid from the regular balance and a
// history-only promotional line for the part paid from promotions.
func (s *Service) DebitBonus(ctx context.Context, userID int, amount decimal.Decimal, receiptID, parentReceiptID string) (res *domain.DebitResult, err error) {
	defer func(start time.Time) { metrics.ObserveOperation("debit", start, err) }(time.Now())

	receiptID = strings.TrimSpace(receiptID)
	parentReceiptID = strings.TrimSpace(parentReceiptID)
	switch {
	case parentReceiptID == "":
		return nil, domain.ErrMissingParentReceipt
	case receiptID == "":
		return nil, domain.Validationf("debit receipt id is required")
	case receiptID == parentReceiptID:
		return nil, domain.Validationf("debit receipt id must differ from the purchase receipt id")
	case !amount.IsPositive() || !wholePoints(amount):
		return nil, domain.Validationf("debit amount must be a positive whole number of points")
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

		previous, err := s.entries.FindDebitLines(ctx, userID, receiptID)
		if err != nil {
			return err
		}
		if len(previous) > 0 {
			res, err = s.replayDebit(ctx, user, previous, parentReceiptID)
			return err
		}

		taken, err := s.receiptTaken(ctx, userID, receiptID)
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
		if st.fullyRefunded() {
			return domain.ErrReceiptRefunded
		}
		allowed := st.capRemaining(s.capFraction)
		if amount.GreaterThan(allowed) {
			return &domain.CapExceededError{ReceiptID: parentReceiptID, MaxAllowed: allowed}
		}

		balance, err := s.liveBalance(ctx, userID)
		if err != nil {
			return err
		}
		if balance.Total.LessThan(amount) {
			return fmt.Errorf("%w: available %s, requested %s", domain.ErrInsufficientBalance, balance.Total, amount)
		}

		spent, err := s.spendPromotions(ctx, userID, amount)
		if err != nil {
			return err
		}

		var lines []domain.Entry
		if fromRegular := amount.Sub(spent); fromRegular.IsPositive() {
			line := domain.Entry{
				UserID:          userID,
				Amount:          fromRegular.Neg(),
				Kind:            domain.KindRegular,
				Status:          domain.StatusShowAndCalc,
				ReceiptID:       strPtr(receiptID),
				ParentReceiptID: strPtr(parentReceiptID),
			}
			if err := s.entries.Create(ctx, &line); err != nil {
				return err
			}
			lines = append(lines, line)
		}
		if spent.IsPositive() {
			line := domain.Entry{
				UserID:          userID,
				Amount:          spent.Neg(),
				Kind:            domain.KindPromotional,
				Status:          domain.StatusShowNotCalc,
				ReceiptID:       strPtr(receiptID),
				ParentReceiptID: strPtr(parentReceiptID),
			}
			if err := s.entries.Create(ctx, &line); err != nil {
				return err
			}
			lines = append(lines, line)
		}

		snapshot, err := s.refresh(ctx, user, user.NetPurchaseAmount)
		if err != nil {
			return err
		}
		res = &domain.DebitResult{
			Entries:      lines,
			Amount:       amount,
			Balance:      snapshot.Total,
			CapRemaining: allowed.Sub(amount),
		}
		created = true
		return nil
	})
	if err != nil {
		logFailure("failed to debit bonus", userID, err)
		return nil, err
	}

	if created {
		zap.L().Info("bonus debited",
			zap.Int("user_id", userID),
			zap.String("receipt_id", receiptID),
			zap.String("parent_receipt_id", parentReceiptID),
			zap.String("amount", amount.String()),
		)
		event := domain.NewEvent(domain.EventDebit, user, amount, s.now())
		event.ReceiptID = receiptID
		s.notify(ctx, event)
	}
	return res, nil
}

func (s *Service) replayDebit(ctx context.Context, user *domain.User, lines []domain.Entry, parentReceiptID string) (*domain.DebitResult, error) {
	if p := lines[0].ParentReceiptID; p == nil || *p != parentReceiptID {
		return nil, fmt.Errorf("%w: debit receipt is bound to another purchase", domain.ErrDuplicateReceipt)
	}
	st, err := s.loadReceipt(ctx, user.ID, parentReceiptID)
	if err != nil {
		return nil, err
	}
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Amount.Neg())
	}
	return &domain.DebitResult{
		Entries:      lines,
		Amount:       total,
		Duplicate:    true,
		Balance:      user.BonusBalance,
		CapRemaining: st.capRemaining(s.capFraction),
	}, nil
}

// spendPromotions depletes active promotions for up to amount points and
// returns how many points they covered.
func (s *Service) spendPromotions(ctx context.Context, userID int, amount decimal.Decimal) (decimal.Decimal, error) {
	now := s.now()
	promos, err := s.entries.ListActivePromotions(ctx, userID, now)
	if err != nil {
		return decimal.Zero, err
	}

	spent := decimal.Zero
	for _, p := range promos {
		left := amount.Sub(spent)
		if !left.IsPositive() {
			break
		}
		take := decimal.Min(p.Amount, left)

		if take.Equal(p.Amount) {
			if err := s.entries.Retire(ctx, p.ID, domain.StatusShowNotCalc, now); err != nil {
				return decimal.Zero, err
			}
		} else {
			if err := s.entries.Retire(ctx, p.ID, p.Status, now); err != nil {
				return decimal.Zero, err
			}
			rest := domain.Entry{
				UserID:    userID,
				Amount:    p.Amount.Sub(take),
				Kind:      domain.KindPromotional,
				Status:    p.Status,
				ExpiresAt: p.ExpiresAt,
			}
			if err := s.entries.Create(ctx, &rest); err != nil {
				return decimal.Zero, err
			}
		}
		spent = spent.Add(take)
	}
	return spent, nil
}
