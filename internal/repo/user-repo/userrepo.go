package userrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/bonusledger/internal/domain"
	"github.com/GlebRadaev/bonusledger/internal/pg"
)

const userColumns = `id, phone, password_hash, bonus_balance, net_purchase_amount, profile_completed, created_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(
		&user.ID,
		&user.Phone,
		&user.PasswordHash,
		&user.BonusBalance,
		&user.NetPurchaseAmount,
		&user.ProfileCompleted,
		&user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) findOne(ctx context.Context, query string, args ...any) (*domain.User, error) {
	user, err := scanUser(repo.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (repo *Repository) FindByPhone(ctx context.Context, phone string) (*domain.User, error) {
	return repo.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE phone = $1`, phone)
}

func (repo *Repository) GetByID(ctx context.Context, userID int) (*domain.User, error) {
	return repo.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, userID)
}

// LockByID reads the user row with FOR UPDATE. It must run inside a
// transaction; balance-affecting operations on one user queue up here.
func (repo *Repository) LockByID(ctx context.Context, userID int) (*domain.User, error) {
	return repo.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1 FOR UPDATE`, userID)
}

func (repo *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (phone, password_hash)
		VALUES ($1, $2)
		RETURNING id, created_at
	`
	err := repo.db.QueryRow(ctx, query, user.Phone, user.PasswordHash).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, domain.ErrPhoneTaken
		}
		zap.L().Error("can't save user", zap.Error(err))
		return nil, err
	}
	user.BonusBalance = decimal.Zero
	user.NetPurchaseAmount = decimal.Zero
	return user, nil
}

func (repo *Repository) UpdateCachedTotals(ctx context.Context, userID int, bonusBalance, netPurchaseAmount decimal.Decimal) error {
	query := `
		UPDATE users
		SET bonus_balance = $1, net_purchase_amount = $2
		WHERE id = $3
	`
	tag, err := repo.db.Exec(ctx, query, bonusBalance, netPurchaseAmount, userID)
	if err != nil {
		zap.L().Error("failed to update cached totals", zap.Int("user_id", userID), zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (repo *Repository) ListIDs(ctx context.Context) ([]int, error) {
	rows, err := repo.db.Query(ctx, `SELECT id FROM users ORDER BY id`)
	if err != nil {
		zap.L().Error("can't list users", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			zap.L().Error("can't scan user id", zap.Error(err))
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
