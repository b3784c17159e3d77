package entryrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/GlebRadaev/bonusledger/internal/domain"
	"github.com/GlebRadaev/bonusledger/internal/pg"
)

const entryColumns = `id, user_id, amount, purchase_amount, kind, status, expires_at, receipt_id, parent_receipt_id, created_at, deleted_at`

const (
	countedStatuses = `('show_and_calc', 'calc_not_show')`
	visibleStatuses = `('show_and_calc', 'show_not_calc')`
)

var ErrAlreadyRetired = errors.New("entry already retired")

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanEntry(row pgx.Row) (domain.Entry, error) {
	var (
		e      domain.Entry
		kind   string
		status string
	)
	err := row.Scan(
		&e.ID,
		&e.UserID,
		&e.Amount,
		&e.PurchaseAmount,
		&kind,
		&status,
		&e.ExpiresAt,
		&e.ReceiptID,
		&e.ParentReceiptID,
		&e.CreatedAt,
		&e.DeletedAt,
	)
	e.Kind = domain.EntryKind(kind)
	e.Status = domain.EntryStatus(status)
	return e, err
}

func (repo *Repository) list(ctx context.Context, query string, args ...any) ([]domain.Entry, error) {
	rows, err := repo.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("failed to query entries", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var entries []domain.Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			zap.L().Error("failed to scan entry", zap.Error(err))
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("error iterating over entries", zap.Error(err))
		return nil, err
	}
	return entries, nil
}

func (repo *Repository) findOne(ctx context.Context, query string, args ...any) (*domain.Entry, error) {
	e, err := scanEntry(repo.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to find entry", zap.Error(err))
		return nil, err
	}
	return &e, nil
}

// Create inserts the entry and fills in its id and created_at. A second
// non-promotional line on the same receipt returns domain.ErrDuplicateReceipt.
func (repo *Repository) Create(ctx context.Context, e *domain.Entry) error {
	query := `
		INSERT INTO bonus_entries (user_id, amount, purchase_amount, kind, status, expires_at, receipt_id, parent_receipt_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`
	err := repo.db.QueryRow(ctx, query,
		e.UserID,
		e.Amount,
		e.PurchaseAmount,
		string(e.Kind),
		string(e.Status),
		e.ExpiresAt,
		e.ReceiptID,
		e.ParentReceiptID,
	).Scan(&e.ID, &e.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return domain.ErrDuplicateReceipt
		}
		zap.L().Error("failed to insert entry", zap.Int("user_id", e.UserID), zap.Error(err))
		return err
	}
	return nil
}

// FindCredit returns the accrual line of a purchase receipt, or nil.
func (repo *Repository) FindCredit(ctx context.Context, userID int, receiptID string) (*domain.Entry, error) {
	query := `SELECT ` + entryColumns + ` FROM bonus_entries
		WHERE user_id = $1 AND receipt_id = $2 AND kind = 'regular' AND parent_receipt_id IS NULL AND deleted_at IS NULL`
	return repo.findOne(ctx, query, userID, receiptID)
}

// FindDebitLines returns the lines written by one debit operation.
func (repo *Repository) FindDebitLines(ctx context.Context, userID int, receiptID string) ([]domain.Entry, error) {
	query := `SELECT ` + entryColumns + ` FROM bonus_entries
		WHERE user_id = $1 AND receipt_id = $2 AND parent_receipt_id IS NOT NULL AND kind <> 'refund' AND amount < 0 AND deleted_at IS NULL
		ORDER BY id`
	return repo.list(ctx, query, userID, receiptID)
}

func (repo *Repository) FindRefund(ctx context.Context, userID int, receiptID string) (*domain.Entry, error) {
	query := `SELECT ` + entryColumns + ` FROM bonus_entries
		WHERE user_id = $1 AND receipt_id = $2 AND kind = 'refund' AND deleted_at IS NULL`
	return repo.findOne(ctx, query, userID, receiptID)
}

// ListByParent returns every live entry referencing the given purchase receipt.
func (repo *Repository) ListByParent(ctx context.Context, userID int, parentReceiptID string) ([]domain.Entry, error) {
	query := `SELECT ` + entryColumns + ` FROM bonus_entries
		WHERE user_id = $1 AND parent_receipt_id = $2 AND deleted_at IS NULL
		ORDER BY id`
	return repo.list(ctx, query, userID, parentReceiptID)
}

func (repo *Repository) ListCounted(ctx context.Context, userID int) ([]domain.Entry, error) {
	query := `SELECT ` + entryColumns + ` FROM bonus_entries
		WHERE user_id = $1 AND deleted_at IS NULL AND status IN ` + countedStatuses + `
		ORDER BY id`
	return repo.list(ctx, query, userID)
}

// ListActivePromotions returns spendable promotional entries in depletion
// order: soonest expiry first, entries without expiry last.
func (repo *Repository) ListActivePromotions(ctx context.Context, userID int, now time.Time) ([]domain.Entry, error) {
	query := `SELECT ` + entryColumns + ` FROM bonus_entries
		WHERE user_id = $1 AND kind = 'promotional' AND deleted_at IS NULL AND status IN ` + countedStatuses + `
			AND amount > 0 AND (expires_at IS NULL OR expires_at > $2)
		ORDER BY expires_at ASC NULLS LAST, id ASC`
	return repo.list(ctx, query, userID, now)
}

// Retire soft-deletes an entry and sets its final status.
func (repo *Repository) Retire(ctx context.Context, entryID int64, status domain.EntryStatus, at time.Time) error {
	query := `UPDATE bonus_entries SET status = $1, deleted_at = $2 WHERE id = $3 AND deleted_at IS NULL`
	tag, err := repo.db.Exec(ctx, query, string(status), at, entryID)
	if err != nil {
		zap.L().Error("failed to retire entry", zap.Int64("entry_id", entryID), zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("entry %d: %w", entryID, ErrAlreadyRetired)
	}
	return nil
}

// ListHistory returns visible entries, newest first.
func (repo *Repository) ListHistory(ctx context.Context, userID, limit, offset int) ([]domain.Entry, error) {
	query := `SELECT ` + entryColumns + ` FROM bonus_entries
		WHERE user_id = $1 AND deleted_at IS NULL AND status IN ` + visibleStatuses + `
		ORDER BY id DESC
		LIMIT $2 OFFSET $3`
	return repo.list(ctx, query, userID, limit, offset)
}

func (repo *Repository) CountHistory(ctx context.Context, userID int) (int, error) {
	query := `SELECT COUNT(*) FROM bonus_entries
		WHERE user_id = $1 AND deleted_at IS NULL AND status IN ` + visibleStatuses
	var total int
	if err := repo.db.QueryRow(ctx, query, userID).Scan(&total); err != nil {
		zap.L().Error("failed to count history", zap.Int("user_id", userID), zap.Error(err))
		return 0, err
	}
	return total, nil
}

// ListUsersWithExpiredPromotions returns users owning a live promotional
// entry whose expiry falls in (from, to].
func (repo *Repository) ListUsersWithExpiredPromotions(ctx context.Context, from, to time.Time) ([]int, error) {
	query := `SELECT DISTINCT user_id FROM bonus_entries
		WHERE kind = 'promotional' AND deleted_at IS NULL AND expires_at > $1 AND expires_at <= $2
		ORDER BY user_id`
	rows, err := repo.db.Query(ctx, query, from, to)
	if err != nil {
		zap.L().Error("failed to list users with expired promotions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
