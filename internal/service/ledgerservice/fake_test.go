package ledgerservice

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/bonusledger/internal/domain"
	"github.com/GlebRadaev/bonusledger/internal/pg"
)

var errInjected = errors.New("injected failure")

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

// fakeStore mirrors the SQL of the user and entry repositories in memory,
// including the partial unique index on (user_id, receipt_id).
type fakeStore struct {
	mu      sync.Mutex
	txMu    sync.Mutex
	clock   *fakeClock
	users   map[int]domain.User
	entries []domain.Entry
	nextID  int64

	creates        int
	failCreateOn   int
	hideCreditOnce bool
}

var (
	_ UserRepo     = (*fakeStore)(nil)
	_ EntryRepo    = (*fakeStore)(nil)
	_ pg.TXManager = (*fakeStore)(nil)
)

func newFakeStore(clock *fakeClock) *fakeStore {
	return &fakeStore{
		clock: clock,
		users: make(map[int]domain.User),
	}
}

func (f *fakeStore) addUser(id int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.users[id] = domain.User{
		ID:                id,
		Phone:             fmt.Sprintf("+7999%07d", id),
		BonusBalance:      decimal.Zero,
		NetPurchaseAmount: decimal.Zero,
		CreatedAt:         f.clock.Now(),
	}
}

func (f *fakeStore) user(id int) domain.User {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.users[id]
}

func (f *fakeStore) all(userID int) []domain.Entry {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.Entry
	for _, e := range f.entries {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out
}

func (f *fakeStore) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.entries)
}

// Begin serializes transactions and restores the previous state when fn
// fails.
func (f *fakeStore) Begin(ctx context.Context, fn pg.TransactionalFn) error {
	f.txMu.Lock()
	defer f.txMu.Unlock()

	f.mu.Lock()
	users := make(map[int]domain.User, len(f.users))
	for k, v := range f.users {
		users[k] = v
	}
	entries := append([]domain.Entry(nil), f.entries...)
	nextID := f.nextID
	f.mu.Unlock()

	if err := fn(ctx); err != nil {
		f.mu.Lock()
		f.users, f.entries, f.nextID = users, entries, nextID
		f.mu.Unlock()
		return err
	}
	return nil
}

func (f *fakeStore) GetByID(_ context.Context, userID int) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[userID]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (f *fakeStore) LockByID(ctx context.Context, userID int) (*domain.User, error) {
	return f.GetByID(ctx, userID)
}

func (f *fakeStore) UpdateCachedTotals(_ context.Context, userID int, bonusBalance, netPurchaseAmount decimal.Decimal) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[userID]
	if !ok {
		return domain.ErrUserNotFound
	}
	if bonusBalance.IsNegative() || netPurchaseAmount.IsNegative() {
		return errors.New("check constraint violated")
	}
	u.BonusBalance, u.NetPurchaseAmount = bonusBalance, netPurchaseAmount
	f.users[userID] = u
	return nil
}

func (f *fakeStore) ListIDs(_ context.Context) ([]int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	ids := make([]int, 0, len(f.users))
	for id := range f.users {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids, nil
}

func (f *fakeStore) Create(_ context.Context, e *domain.Entry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.creates++
	if f.failCreateOn > 0 && f.creates == f.failCreateOn {
		return errInjected
	}
	if e.Kind == domain.KindRefund && e.Amount.IsPositive() {
		return errors.New("check constraint violated")
	}
	if e.ReceiptID != nil && e.Kind != domain.KindPromotional {
		for _, x := range f.entries {
			if x.UserID == e.UserID && x.Kind != domain.KindPromotional && x.ReceiptID != nil && *x.ReceiptID == *e.ReceiptID {
				return domain.ErrDuplicateReceipt
			}
		}
	}
	f.nextID++
	e.ID = f.nextID
	e.CreatedAt = f.clock.Now()
	f.entries = append(f.entries, *e)
	return nil
}

func (f *fakeStore) filter(match func(e domain.Entry) bool) []domain.Entry {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.Entry
	for _, e := range f.entries {
		if e.DeletedAt == nil && match(e) {
			out = append(out, e)
		}
	}
	return out
}

func eq(p *string, s string) bool {
	return p != nil && *p == s
}

func (f *fakeStore) FindCredit(_ context.Context, userID int, receiptID string) (*domain.Entry, error) {
	f.mu.Lock()
	hide := f.hideCreditOnce
	f.hideCreditOnce = false
	f.mu.Unlock()
	if hide {
		return nil, nil
	}
	found := f.filter(func(e domain.Entry) bool {
		return e.UserID == userID && eq(e.ReceiptID, receiptID) && e.Kind == domain.KindRegular && e.ParentReceiptID == nil
	})
	if len(found) == 0 {
		return nil, nil
	}
	return &found[0], nil
}

func (f *fakeStore) FindDebitLines(_ context.Context, userID int, receiptID string) ([]domain.Entry, error) {
	return f.filter(func(e domain.Entry) bool {
		return e.UserID == userID && eq(e.ReceiptID, receiptID) && e.ParentReceiptID != nil &&
			e.Kind != domain.KindRefund && e.Amount.IsNegative()
	}), nil
}

func (f *fakeStore) FindRefund(_ context.Context, userID int, receiptID string) (*domain.Entry, error) {
	found := f.filter(func(e domain.Entry) bool {
		return e.UserID == userID && eq(e.ReceiptID, receiptID) && e.Kind == domain.KindRefund
	})
	if len(found) == 0 {
		return nil, nil
	}
	return &found[0], nil
}

func (f *fakeStore) ListByParent(_ context.Context, userID int, parentReceiptID string) ([]domain.Entry, error) {
	return f.filter(func(e domain.Entry) bool {
		return e.UserID == userID && eq(e.ParentReceiptID, parentReceiptID)
	}), nil
}

func (f *fakeStore) ListCounted(_ context.Context, userID int) ([]domain.Entry, error) {
	return f.filter(func(e domain.Entry) bool {
		return e.UserID == userID && e.Status.Counted()
	}), nil
}

func (f *fakeStore) ListActivePromotions(_ context.Context, userID int, now time.Time) ([]domain.Entry, error) {
	promos := f.filter(func(e domain.Entry) bool {
		return e.UserID == userID && e.Kind == domain.KindPromotional && e.Status.Counted() &&
			e.Amount.IsPositive() && (e.ExpiresAt == nil || e.ExpiresAt.After(now))
	})
	sort.SliceStable(promos, func(i, j int) bool {
		a, b := promos[i].ExpiresAt, promos[j].ExpiresAt
		switch {
		case a == nil && b == nil:
			return promos[i].ID < promos[j].ID
		case a == nil:
			return false
		case b == nil:
			return true
		case !a.Equal(*b):
			return a.Before(*b)
		default:
			return promos[i].ID < promos[j].ID
		}
	})
	return promos, nil
}

func (f *fakeStore) Retire(_ context.Context, entryID int64, status domain.EntryStatus, at time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.entries {
		if f.entries[i].ID == entryID && f.entries[i].DeletedAt == nil {
			deleted := at
			f.entries[i].Status = status
			f.entries[i].DeletedAt = &deleted
			return nil
		}
	}
	return errors.New("entry already retired")
}

func (f *fakeStore) visible(userID int) []domain.Entry {
	out := f.filter(func(e domain.Entry) bool {
		return e.UserID == userID && e.Status.Visible()
	})
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out
}

func (f *fakeStore) ListHistory(_ context.Context, userID, limit, offset int) ([]domain.Entry, error) {
	out := f.visible(userID)
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeStore) CountHistory(_ context.Context, userID int) (int, error) {
	return len(f.visible(userID)), nil
}
