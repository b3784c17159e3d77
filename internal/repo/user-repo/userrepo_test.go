package userrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GlebRadaev/bonusledger/internal/domain"
)

var columns = []string{"id", "phone", "password_hash", "bonus_balance", "net_purchase_amount", "profile_completed", "created_at"}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockDB.Close)
	return New(mockDB), mockDB
}

func TestRepository_FindByPhone(t *testing.T) {
	repo, mock := NewMock(t)
	createdAt := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	query := regexp.QuoteMeta("SELECT " + userColumns + " FROM users WHERE phone = $1")

	tests := []struct {
		name      string
		phone     string
		mockSetup func()
		expectErr bool
		result    *domain.User
	}{
		{
			name:  "User found",
			phone: "+79990000001",
			mockSetup: func() {
				rows := pgxmock.NewRows(columns).
					AddRow(1, "+79990000001", "hash", decimal.NewFromInt(50), decimal.NewFromInt(1000), false, createdAt)
				mock.ExpectQuery(query).WithArgs("+79990000001").WillReturnRows(rows)
			},
			result: &domain.User{
				ID:                1,
				Phone:             "+79990000001",
				PasswordHash:      "hash",
				BonusBalance:      decimal.NewFromInt(50),
				NetPurchaseAmount: decimal.NewFromInt(1000),
				CreatedAt:         createdAt,
			},
		},
		{
			name:  "User not found",
			phone: "+79990000002",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs("+79990000002").WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name:  "Database error",
			phone: "+79990000001",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs("+79990000001").WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByPhone(context.Background(), tt.phone)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_LockByID(t *testing.T) {
	repo, mock := NewMock(t)

	rows := pgxmock.NewRows(columns).
		AddRow(7, "+79990000007", "hash", decimal.NewFromInt(40), decimal.NewFromInt(1000), true, time.Now())
	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE id = $1 FOR UPDATE")).
		WithArgs(7).
		WillReturnRows(rows)

	user, err := repo.LockByID(context.Background(), 7)

	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, 7, user.ID)
	assert.True(t, user.ProfileCompleted)
	assert.True(t, decimal.NewFromInt(40).Equal(user.BonusBalance))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta("INSERT INTO users (phone, password_hash)")

	tests := []struct {
		name      string
		mockSetup func()
		expectErr error
		anyErr    bool
	}{
		{
			name: "Successful creation",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs("+79990000001", "hash").
					WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(1, time.Now()))
			},
		},
		{
			name: "Phone taken",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs("+79990000001", "hash").
					WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})
			},
			expectErr: domain.ErrPhoneTaken,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs("+79990000001", "hash").
					WillReturnError(errors.New("database error"))
			},
			anyErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			user, err := repo.Create(context.Background(), &domain.User{Phone: "+79990000001", PasswordHash: "hash"})
			switch {
			case tt.expectErr != nil:
				assert.ErrorIs(t, err, tt.expectErr)
				assert.Nil(t, user)
			case tt.anyErr:
				assert.Error(t, err)
			default:
				require.NoError(t, err)
				assert.Equal(t, 1, user.ID)
				assert.True(t, user.BonusBalance.IsZero())
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_UpdateCachedTotals(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta("UPDATE users SET bonus_balance = $1, net_purchase_amount = $2 WHERE id = $3")
	balance := decimal.NewFromInt(20)
	net := decimal.NewFromInt(500)

	t.Run("Updated", func(t *testing.T) {
		mock.ExpectExec(query).WithArgs(balance, net, 1).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		assert.NoError(t, repo.UpdateCachedTotals(context.Background(), 1, balance, net))
	})

	t.Run("Unknown user", func(t *testing.T) {
		mock.ExpectExec(query).WithArgs(balance, net, 2).WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		assert.ErrorIs(t, repo.UpdateCachedTotals(context.Background(), 2, balance, net), domain.ErrUserNotFound)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectExec(query).WithArgs(balance, net, 3).WillReturnError(errors.New("database error"))
		assert.Error(t, repo.UpdateCachedTotals(context.Background(), 3, balance, net))
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListIDs(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM users ORDER BY id")).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(1).AddRow(2).AddRow(5))

	ids, err := repo.ListIDs(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 5}, ids)
	assert.NoError(t, mock.ExpectationsWereMet())
}
