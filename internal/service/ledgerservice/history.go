package ledgerservice

import (
	"context"

	"go.uber.org/zap"

	"github.com/GlebRadaev/bonusledger/internal/domain"
)

const (
	DefaultHistoryLimit = 20
	MaxHistoryLimit     = 100
)

// GetHistory pages through the entries a customer is shown, newest first.
// Retired entries and history-hidden lines are excluded.
func (s *Service) GetHistory(ctx context.Context, userID, limit, offset int) (*domain.History, error) {
	if limit == 0 {
		limit = DefaultHistoryLimit
	}
	if limit < 0 || limit > MaxHistoryLimit {
		return nil, domain.Validationf("limit must be between 1 and %d", MaxHistoryLimit)
	}
	if offset < 0 {
		return nil, domain.Validationf("offset must not be negative")
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		zap.L().Error("failed to get user", zap.Int("user_id", userID), zap.Error(err))
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	entries, err := s.entries.ListHistory(ctx, userID, limit, offset)
	if err != nil {
		zap.L().Error("failed to list history", zap.Int("user_id", userID), zap.Error(err))
		return nil, err
	}
	total, err := s.entries.CountHistory(ctx, userID)
	if err != nil {
		zap.L().Error("failed to count history", zap.Int("user_id", userID), zap.Error(err))
		return nil, err
	}
	return &domain.History{Entries: entries, Total: total}, nil
}
