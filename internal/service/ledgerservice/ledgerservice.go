package ledgerservice

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/bonusledger/internal/domain"
	"github.com/GlebRadaev/bonusledger/internal/pg"
	"github.com/GlebRadaev/bonusledger/internal/tier"
)

type UserRepo interface {
	GetByID(ctx context.Context, userID int) (*domain.User, error)
	LockByID(ctx context.Context, userID int) (*domain.User, error)
	UpdateCachedTotals(ctx context.Context, userID int, bonusBalance, netPurchaseAmount decimal.Decimal) error
	ListIDs(ctx context.Context) ([]int, error)
}

type EntryRepo interface {
	Create(ctx context.Context, e *domain.Entry) error
	FindCredit(ctx context.Context, userID int, receiptID string) (*domain.Entry, error)
	FindDebitLines(ctx context.Context, userID int, receiptID string) ([]domain.Entry, error)
	FindRefund(ctx context.Context, userID int, receiptID string) (*domain.Entry, error)
	ListByParent(ctx context.Context, userID int, parentReceiptID string) ([]domain.Entry, error)
	ListCounted(ctx context.Context, userID int) ([]domain.Entry, error)
	ListActivePromotions(ctx context.Context, userID int, now time.Time) ([]domain.Entry, error)
	Retire(ctx context.Context, entryID int64, status domain.EntryStatus, at time.Time) error
	ListHistory(ctx context.Context, userID, limit, offset int) ([]domain.Entry, error)
	CountHistory(ctx context.Context, userID int) (int, error)
}

// DefaultCapFraction is the share of a purchase that may be paid with bonus.
var DefaultCapFraction = decimal.RequireFromString("0.30")

type Service struct {
	users       UserRepo
	entries     EntryRepo
	txManager   pg.TXManager
	tiers       *tier.Table
	notifier    Notifier
	capFraction decimal.Decimal
	now         func() time.Time
}

type Option func(*Service)

func WithCapFraction(fraction decimal.Decimal) Option {
	return func(s *Service) {
		s.capFraction = fraction
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func New(users UserRepo, entries EntryRepo, txManager pg.TXManager, tiers *tier.Table, notifier Notifier, opts ...Option) *Service {
	s := &Service{
		users:       users,
		entries:     entries,
		txManager:   txManager,
		tiers:       tiers,
		notifier:    notifier,
		capFraction: DefaultCapFraction,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) Tiers() []tier.Tier {
	return s.tiers.Tiers()
}

// lockUser takes the per-user row lock every balance-affecting operation
// serializes on.
func (s *Service) lockUser(ctx context.Context, userID int) (*domain.User, error) {
	user, err := s.users.LockByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

// refresh recomputes the balance from the stored entries and writes both
// cached totals back to the user row.
func (s *Service) refresh(ctx context.Context, user *domain.User, netPurchaseAmount decimal.Decimal) (domain.BalanceSnapshot, error) {
	snapshot, err := s.liveBalance(ctx, user.ID)
	if err != nil {
		return domain.BalanceSnapshot{}, err
	}
	if err := s.users.UpdateCachedTotals(ctx, user.ID, snapshot.Total, netPurchaseAmount); err != nil {
		return domain.BalanceSnapshot{}, err
	}
	user.BonusBalance = snapshot.Total
	user.NetPurchaseAmount = netPurchaseAmount
	return snapshot, nil
}

func (s *Service) liveBalance(ctx context.Context, userID int) (domain.BalanceSnapshot, error) {
	entries, err := s.entries.ListCounted(ctx, userID)
	if err != nil {
		return domain.BalanceSnapshot{}, err
	}
	return Summarize(entries, s.now()), nil
}

func (s *Service) notify(ctx context.Context, event domain.Event) {
	if s.notifier == nil {
		return
	}
	s.notifier.Notify(context.WithoutCancel(ctx), event)
}

func logFailure(msg string, userID int, err error) {
	switch domain.CodeOf(err) {
	case domain.CodeInternal:
		zap.L().Error(msg, zap.Int("user_id", userID), zap.Error(err))
	default:
		zap.L().Info(msg, zap.Int("user_id", userID), zap.Error(err))
	}
}

// moneyScale is the number of decimal places stored for purchase amounts.
const moneyScale = 2

func validMoney(amount decimal.Decimal) bool {
	return amount.Equal(amount.Truncate(moneyScale))
}

func wholePoints(amount decimal.Decimal) bool {
	return amount.Equal(amount.Truncate(0))
}

func strPtr(s string) *string {
	return &s
}

func decPtr(d decimal.Decimal) *decimal.Decimal {
	return &d
}
