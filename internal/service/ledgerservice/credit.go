package ledgerservice

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/bonusledger/internal/domain"
	"github.com/GlebRadaev/bonusledger/internal/metrics"
)

// CreditBonus accrues cashback for a purchase receipt. The cashback percent
// comes from the tier the user held before this purchase. Crediting the
// same receipt again returns the existing entry with Duplicate set.
func (s *Service) CreditBonus(ctx context.Context, userID int, purchaseAmount decimal.Decimal, receiptID string) (res *domain.CreditResult, err error) {
	defer func(start time.Time) { metrics.ObserveOperation("credit", start, err) }(time.Now())

	receiptID = strings.TrimSpace(receiptID)
	if receiptID == "" {
		return nil, domain.Validationf("receipt id is required")
	}
	if !purchaseAmount.IsPositive() {
		return nil, domain.Validationf("purchase amount must be positive")
	}
	if !validMoney(purchaseAmount) {
		return nil, domain.Validationf("purchase amount must have at most %d decimal places", moneyScale)
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

		existing, err := s.entries.FindCredit(ctx, userID, receiptID)
		if err != nil {
			return err
		}
		if existing != nil {
			res = &domain.CreditResult{Entry: *existing, Duplicate: true, Balance: user.BonusBalance}
			return nil
		}

		taken, err := s.receiptTaken(ctx, userID, receiptID)
		if err != nil {
			return err
		}
		if taken {
			return domain.ErrDuplicateReceipt
		}

		current := s.tiers.TierFor(user.NetPurchaseAmount)
		entry := domain.Entry{
			UserID:         userID,
			Amount:         current.Cashback(purchaseAmount),
			PurchaseAmount: decimal.NewNullDecimal(purchaseAmount),
			Kind:           domain.KindRegular,
			Status:         domain.StatusShowAndCalc,
			ReceiptID:      strPtr(receiptID),
		}
		if err := s.entries.Create(ctx, &entry); err != nil {
			return err
		}

		snapshot, err := s.refresh(ctx, user, user.NetPurchaseAmount.Add(purchaseAmount))
		if err != nil {
			return err
		}
		res = &domain.CreditResult{Entry: entry, Balance: snapshot.Total}
		created = true
		return nil
	})
	if errors.Is(err, domain.ErrDuplicateReceipt) {
		// A concurrent request inserted the same receipt first.
		return s.existingCredit(ctx, userID, receiptID)
	}
	if err != nil {
		logFailure("failed to credit bonus", userID, err)
		return nil, err
	}

	if created {
		zap.L().Info("bonus credited",
			zap.Int("user_id", userID),
			zap.String("receipt_id", receiptID),
			zap.String("amount", res.Entry.Amount.String()),
		)
		event := domain.NewEvent(domain.EventCredit, user, res.Entry.Amount, s.now())
		event.PurchaseAmount = decPtr(purchaseAmount)
		event.ReceiptID = receiptID
		s.notify(ctx, event)
	}
	return res, nil
}

func (s *Service) existingCredit(ctx context.Context, userID int, receiptID string) (*domain.CreditResult, error) {
	existing, err := s.entries.FindCredit(ctx, userID, receiptID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		// The receipt id belongs to a debit or refund line.
		return nil, domain.ErrDuplicateReceipt
	}
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return &domain.CreditResult{Entry: *existing, Duplicate: true, Balance: user.BonusBalance}, nil
}
