package ledgerservice

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/bonusledger/internal/domain"
	"github.com/GlebRadaev/bonusledger/internal/metrics"
)

// CreditPromotionalBonus grants points that do not depend on purchases and
// stop counting at expiresAt. A nil expiresAt never expires.
func (s *Service) CreditPromotionalBonus(ctx context.Context, userID int, amount decimal.Decimal, expiresAt *time.Time) (res *domain.PromotionResult, err error) {
	defer func(start time.Time) { metrics.ObserveOperation("promotion", start, err) }(time.Now())

	if !amount.IsPositive() || !wholePoints(amount) {
		return nil, domain.Validationf("promotional amount must be a positive whole number of points")
	}
	if expiresAt != nil && !expiresAt.After(s.now()) {
		return nil, domain.Validationf("promotion expiry must be in the future")
	}

	var user *domain.User
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		user, err = s.lockUser(ctx, userID)
		if err != nil {
			return err
		}

		entry := domain.Entry{
			UserID:    userID,
			Amount:    amount,
			Kind:      domain.KindPromotional,
			Status:    domain.StatusShowAndCalc,
			ExpiresAt: expiresAt,
		}
		if err := s.entries.Create(ctx, &entry); err != nil {
			return err
		}

		snapshot, err := s.refresh(ctx, user, user.NetPurchaseAmount)
		if err != nil {
			return err
		}
		res = &domain.PromotionResult{Entry: entry, Balance: snapshot.Total}
		return nil
	})
	if err != nil {
		logFailure("failed to credit promotional bonus", userID, err)
		return nil, err
	}

	zap.L().Info("promotional bonus credited", zap.Int("user_id", userID), zap.String("amount", amount.String()))
	s.notify(ctx, domain.NewEvent(domain.EventPromotion, user, amount, s.now()))
	return res, nil
}
