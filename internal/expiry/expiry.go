// Package expiry keeps cached balances current when promotional bonuses
// run out without any ledger mutation.
package expiry

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/bonusledger/internal/domain"
	"github.com/GlebRadaev/bonusledger/internal/metrics"
	"github.com/GlebRadaev/bonusledger/pkg/workerpool"
)

//go:generate mockgen -source=expiry.go -destination=mock_expiry.go -package=expiry

const initialLookback = 24 * time.Hour

type EntryRepo interface {
	ListUsersWithExpiredPromotions(ctx context.Context, from, to time.Time) ([]int, error)
}

type Recalculator interface {
	Recalculate(ctx context.Context, userID int) (domain.BalanceSnapshot, error)
}

type Sweeper struct {
	entries  EntryRepo
	ledger   Recalculator
	pool     workerpool.WorkerPoolI
	interval time.Duration
	now      func() time.Time

	mu        sync.Mutex
	lastSweep time.Time
}

func New(entries EntryRepo, ledger Recalculator, interval time.Duration, workers int) *Sweeper {
	now := time.Now
	return &Sweeper{
		entries:   entries,
		ledger:    ledger,
		pool:      workerpool.New("expiry", workers, workers),
		interval:  interval,
		now:       now,
		lastSweep: now().Add(-initialLookback),
	}
}

func (s *Sweeper) Start(ctx context.Context) {
	zap.L().Info("promotion expiry sweeper started", zap.Duration("interval", s.interval))
	go s.run(ctx)
}

func (s *Sweeper) run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	defer s.pool.Close()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("context canceled, stopping expiry sweeper")
			return
		case <-ticker.C:
			if _, err := s.Sweep(ctx); err != nil {
				zap.L().Error("expiry sweep failed", zap.Error(err))
			}
		}
	}
}

// Sweep recalculates every user whose promotions expired since the last
// successful sweep. A failed sweep leaves the window open for the next one.
func (s *Sweeper) Sweep(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	to := s.now()
	users, err := s.entries.ListUsersWithExpiredPromotions(ctx, s.lastSweep, to)
	if err != nil {
		return 0, fmt.Errorf("can't list users with expired promotions: %w", err)
	}

	var (
		wg       sync.WaitGroup
		done     atomic.Int32
		failures atomic.Int32
		queueErr error
	)
	for _, userID := range users {
		userID := userID
		wg.Add(1)
		err := s.pool.AddTask(ctx, func() error {
			defer wg.Done()
			if _, err := s.ledger.Recalculate(ctx, userID); err != nil {
				failures.Add(1)
				return fmt.Errorf("recalculate user %d: %w", userID, err)
			}
			metrics.ExpiredPromotionUsers.Inc()
			done.Add(1)
			return nil
		})
		if err != nil {
			wg.Done()
			queueErr = err
			break
		}
	}
	wg.Wait()

	switch {
	case queueErr != nil:
		return int(done.Load()), fmt.Errorf("can't queue recalculation: %w", queueErr)
	case failures.Load() > 0:
		return int(done.Load()), fmt.Errorf("%d of %d recalculations failed", failures.Load(), len(users))
	}

	s.lastSweep = to
	if len(users) > 0 {
		zap.L().Info("expired promotions swept", zap.Int("users", len(users)))
	}
	return len(users), nil
}
