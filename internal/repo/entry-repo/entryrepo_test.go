package entryrepo

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

var columns = []string{"id", "user_id", "amount", "purchase_amount", "kind", "status", "expires_at", "receipt_id", "parent_receipt_id", "created_at", "deleted_at"}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mockDB.Close)
	return New(mockDB), mockDB
}

func strPtr(s string) *string { return &s }

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta("INSERT INTO bonus_entries (user_id, amount, purchase_amount, kind, status, expires_at, receipt_id, parent_receipt_id)")
	createdAt := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	newEntry := func() *domain.Entry {
		return &domain.Entry{
			UserID:         1,
			Amount:         decimal.NewFromInt(50),
			PurchaseAmount: decimal.NewNullDecimal(decimal.NewFromInt(1000)),
			Kind:           domain.KindRegular,
			Status:         domain.StatusShowAndCalc,
			ReceiptID:      strPtr("R1"),
		}
	}

	tests := []struct {
		name      string
		mockSetup func(e *domain.Entry)
		expectErr error
		anyErr    bool
	}{
		{
			name: "Inserted",
			mockSetup: func(e *domain.Entry) {
				mock.ExpectQuery(query).
					WithArgs(1, e.Amount, e.PurchaseAmount, "regular", "show_and_calc", e.ExpiresAt, e.ReceiptID, e.ParentReceiptID).
					WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(int64(11), createdAt))
			},
		},
		{
			name: "Duplicate receipt",
			mockSetup: func(e *domain.Entry) {
				mock.ExpectQuery(query).
					WithArgs(1, e.Amount, e.PurchaseAmount, "regular", "show_and_calc", e.ExpiresAt, e.ReceiptID, e.ParentReceiptID).
					WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})
			},
			expectErr: domain.ErrDuplicateReceipt,
		},
		{
			name: "Database error",
			mockSetup: func(e *domain.Entry) {
				mock.ExpectQuery(query).
					WithArgs(1, e.Amount, e.PurchaseAmount, "regular", "show_and_calc", e.ExpiresAt, e.ReceiptID, e.ParentReceiptID).
					WillReturnError(errors.New("database error"))
			},
			anyErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEntry()
			tt.mockSetup(e)

			err := repo.Create(context.Background(), e)

			switch {
			case tt.expectErr != nil:
				assert.ErrorIs(t, err, tt.expectErr)
			case tt.anyErr:
				assert.Error(t, err)
				assert.NotErrorIs(t, err, domain.ErrDuplicateReceipt)
			default:
				require.NoError(t, err)
				assert.Equal(t, int64(11), e.ID)
				assert.Equal(t, createdAt, e.CreatedAt)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_FindCredit(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta("AND receipt_id = $2 AND kind = 'regular' AND parent_receipt_id IS NULL")
	createdAt := time.Now()

	t.Run("Found", func(t *testing.T) {
		rows := pgxmock.NewRows(columns).AddRow(
			int64(3), 1, decimal.NewFromInt(50), decimal.NewNullDecimal(decimal.NewFromInt(1000)),
			"regular", "show_and_calc", nil, strPtr("R1"), nil, createdAt, nil,
		)
		mock.ExpectQuery(query).WithArgs(1, "R1").WillReturnRows(rows)

		e, err := repo.FindCredit(context.Background(), 1, "R1")

		require.NoError(t, err)
		require.NotNil(t, e)
		assert.Equal(t, int64(3), e.ID)
		assert.Equal(t, domain.KindRegular, e.Kind)
		assert.Equal(t, domain.StatusShowAndCalc, e.Status)
		assert.True(t, e.PurchaseAmount.Valid)
		assert.True(t, decimal.NewFromInt(1000).Equal(e.PurchaseAmount.Decimal))
		assert.Equal(t, "R1", *e.ReceiptID)
		assert.Nil(t, e.ParentReceiptID)
		assert.Nil(t, e.ExpiresAt)
	})

	t.Run("Missing", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(1, "R2").WillReturnError(pgx.ErrNoRows)

		e, err := repo.FindCredit(context.Background(), 1, "R2")

		assert.NoError(t, err)
		assert.Nil(t, e)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(1, "R3").WillReturnError(errors.New("database error"))

		e, err := repo.FindCredit(context.Background(), 1, "R3")

		assert.Error(t, err)
		assert.Nil(t, e)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListActivePromotions(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	soon := now.Add(time.Hour)

	rows := pgxmock.NewRows(columns).
		AddRow(int64(4), 1, decimal.NewFromInt(10), nil, "promotional", "show_and_calc", &soon, nil, nil, now, nil).
		AddRow(int64(2), 1, decimal.NewFromInt(5), nil, "promotional", "calc_not_show", nil, nil, nil, now, nil)
	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY expires_at ASC NULLS LAST, id ASC")).
		WithArgs(1, now).
		WillReturnRows(rows)

	promos, err := repo.ListActivePromotions(context.Background(), 1, now)

	require.NoError(t, err)
	require.Len(t, promos, 2)
	assert.Equal(t, int64(4), promos[0].ID)
	require.NotNil(t, promos[0].ExpiresAt)
	assert.Equal(t, soon, *promos[0].ExpiresAt)
	assert.False(t, promos[0].PurchaseAmount.Valid)
	assert.Equal(t, domain.StatusCalcNotShow, promos[1].Status)
	assert.Nil(t, promos[1].ExpiresAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListQueriesPropagateErrors(t *testing.T) {
	repo, mock := NewMock(t)
	ctx := context.Background()
	dbErr := errors.New("database error")

	mock.ExpectQuery(regexp.QuoteMeta("status IN ('show_and_calc', 'calc_not_show')")).
		WithArgs(1).
		WillReturnError(dbErr)
	_, err := repo.ListCounted(ctx, 1)
	assert.ErrorIs(t, err, dbErr)

	mock.ExpectQuery(regexp.QuoteMeta("parent_receipt_id IS NOT NULL AND kind <> 'refund' AND amount < 0")).
		WithArgs(1, "D1").
		WillReturnRows(pgxmock.NewRows(columns).
			AddRow(int64(1), 1, decimal.NewFromInt(-10), nil, "regular", "show_and_calc", nil, strPtr("D1"), strPtr("R1"), time.Now(), nil).
			RowError(0, dbErr))
	_, err = repo.FindDebitLines(ctx, 1, "D1")
	assert.Error(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListByParent(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	rows := pgxmock.NewRows(columns).
		AddRow(int64(1), 1, decimal.NewFromInt(50), decimal.NewNullDecimal(decimal.NewFromInt(1000)), "regular", "show_and_calc", nil, strPtr("R1"), nil, now, nil).
		AddRow(int64(2), 1, decimal.NewFromInt(-10), nil, "regular", "show_and_calc", nil, strPtr("D1"), strPtr("R1"), now, nil).
		AddRow(int64(3), 1, decimal.NewFromInt(-25), decimal.NewNullDecimal(decimal.NewFromInt(-500)), "refund", "show_and_calc", nil, strPtr("RF1"), strPtr("R1"), now, nil)
	mock.ExpectQuery(regexp.QuoteMeta("WHERE user_id = $1 AND parent_receipt_id = $2 AND deleted_at IS NULL")).
		WithArgs(1, "R1").
		WillReturnRows(rows)

	entries, err := repo.ListByParent(context.Background(), 1, "R1")

	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, domain.KindRefund, entries[2].Kind)
	assert.Equal(t, "R1", *entries[1].ParentReceiptID)
	assert.True(t, decimal.NewFromInt(-500).Equal(entries[2].PurchaseAmount.Decimal))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Retire(t *testing.T) {
	repo, mock := NewMock(t)
	query := regexp.QuoteMeta("UPDATE bonus_entries SET status = $1, deleted_at = $2 WHERE id = $3 AND deleted_at IS NULL")
	at := time.Now()

	tests := []struct {
		name      string
		mockSetup func()
		expectErr error
	}{
		{
			name: "Retired",
			mockSetup: func() {
				mock.ExpectExec(query).WithArgs("show_not_calc", at, int64(4)).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
		},
		{
			name: "Already retired",
			mockSetup: func() {
				mock.ExpectExec(query).WithArgs("show_not_calc", at, int64(4)).WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			expectErr: ErrAlreadyRetired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.Retire(context.Background(), 4, domain.StatusShowNotCalc, at)
			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_History(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	rows := pgxmock.NewRows(columns).
		AddRow(int64(9), 1, decimal.NewFromInt(-10), nil, "promotional", "show_not_calc", nil, strPtr("D1"), strPtr("R1"), now, nil)
	mock.ExpectQuery(regexp.QuoteMeta("status IN ('show_and_calc', 'show_not_calc') ORDER BY id DESC LIMIT $2 OFFSET $3")).
		WithArgs(1, 20, 0).
		WillReturnRows(rows)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM bonus_entries")).
		WithArgs(1).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(1))

	entries, err := repo.ListHistory(context.Background(), 1, 20, 0)
	require.NoError(t, err)
	total, err := repo.CountHistory(context.Background(), 1)
	require.NoError(t, err)

	assert.Len(t, entries, 1)
	assert.Equal(t, domain.StatusShowNotCalc, entries[0].Status)
	assert.Equal(t, 1, total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListUsersWithExpiredPromotions(t *testing.T) {
	repo, mock := NewMock(t)
	to := time.Now()
	from := to.Add(-time.Minute)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT DISTINCT user_id FROM bonus_entries")).
		WithArgs(from, to).
		WillReturnRows(pgxmock.NewRows([]string{"user_id"}).AddRow(3).AddRow(8))

	ids, err := repo.ListUsersWithExpiredPromotions(context.Background(), from, to)

	require.NoError(t, err)
	assert.Equal(t, []int{3, 8}, ids)
	assert.NoError(t, mock.ExpectationsWereMet())
}
