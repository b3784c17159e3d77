package ledgerservice

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/bonusledger/internal/domain"
	"github.com/GlebRadaev/bonusledger/internal/metrics"
)

// Summarize replays a user's entries into a balance. Only live counted
// entries contribute, and promotional entries only until they expire.
// Regular and Promotional are left unclamped; Total never drops below zero.
func Summarize(entries []domain.Entry, now time.Time) domain.BalanceSnapshot {
	regular, promotional := decimal.Zero, decimal.Zero
	for _, e := range entries {
		if e.DeletedAt != nil || !e.Status.Counted() {
			continue
		}
		if e.Kind == domain.KindPromotional {
			if e.Expired(now) {
				continue
			}
			promotional = promotional.Add(e.Amount)
			continue
		}
		regular = regular.Add(e.Amount)
	}
	return domain.BalanceSnapshot{
		Total:       decimal.Max(decimal.Zero, regular.Add(promotional)),
		Regular:     regular,
		Promotional: promotional,
	}
}

// Recalculate rebuilds the cached balance of one user from the ledger.
// Running it twice in a row is a no-op the second time.
func (s *Service) Recalculate(ctx context.Context, userID int) (snapshot domain.BalanceSnapshot, err error) {
	defer func(start time.Time) { metrics.ObserveOperation("recalculate", start, err) }(time.Now())

	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		user, err := s.lockUser(ctx, userID)
		if err != nil {
			return err
		}
		snapshot, err = s.refresh(ctx, user, user.NetPurchaseAmount)
		return err
	})
	if err != nil {
		logFailure("failed to recalculate balance", userID, err)
		return domain.BalanceSnapshot{}, err
	}
	return snapshot, nil
}

// RebuildAll recalculates every user with at most workers recalculations in
// flight and returns how many users were processed.
func (s *Service) RebuildAll(ctx context.Context, workers int) (int, error) {
	ids, err := s.users.ListIDs(ctx)
	if err != nil {
		zap.L().Error("failed to list users", zap.Error(err))
		return 0, err
	}
	if workers < 1 {
		workers = 1
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, id := range ids {
		id := id
		g.Go(func() error {
			if _, err := s.Recalculate(ctx, id); err != nil {
				return fmt.Errorf("user %d: %w", id, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}
	zap.L().Info("ledger rebuilt", zap.Int("users", len(ids)))
	return len(ids), nil
}

// GetBonusInfo is the read-only projection shown to customers.
func (s *Service) GetBonusInfo(ctx context.Context, userID int) (*domain.BonusInfo, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get user", zap.Int("user_id", userID), zap.Error(err))
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	snapshot, err := s.liveBalance(ctx, userID)
	if err != nil {
		zap.L().Error("failed to summarize balance", zap.Int("user_id", userID), zap.Error(err))
		return nil, err
	}

	current := s.tiers.TierFor(user.NetPurchaseAmount)
	info := &domain.BonusInfo{
		UserID:            user.ID,
		Balance:           snapshot,
		TierName:          current.Name,
		CashbackPercent:   current.CashbackPercent,
		NetPurchaseAmount: user.NetPurchaseAmount,
		NextTierMinAmount: current.NextTierMinAmount(),
		ProgressPercent:   current.ProgressToNextTier(user.NetPurchaseAmount),
	}
	if next := current.NextTier(); next != nil {
		info.NextTierName = strPtr(next.Name)
	}
	return info, nil
}
