package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/bonusledger/internal/domain"
)

func run(t *testing.T, ledger Ledger, openErr error, args ...string) (string, string, error) {
	t.Helper()
	var gotDSN string
	open := func(_ context.Context, dsn string) (Ledger, func(), error) {
		gotDSN = dsn
		if openErr != nil {
			return nil, nil, openErr
		}
		return ledger, func() {}, nil
	}

	cmd := NewRootCmd(open, "postgres://default")
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), gotDSN, err
}

func TestRecalc(t *testing.T) {
	ctrl := gomock.NewController(t)
	ledger := NewMockLedger(ctrl)

	tests := []struct {
		name        string
		args        []string
		prepareMock func()
		openErr     error
		wantOut     string
		wantDSN     string
		wantErr     string
	}{
		{
			name: "Single user",
			args: []string{"recalc", "--user", "7"},
			prepareMock: func() {
				ledger.EXPECT().Recalculate(gomock.Any(), 7).Return(domain.BalanceSnapshot{
					Total:       decimal.NewFromInt(120),
					Regular:     decimal.NewFromInt(100),
					Promotional: decimal.NewFromInt(20),
				}, nil)
			},
			wantOut: "user 7: balance 120 (regular 100, promotional 20)\n",
			wantDSN: "postgres://default",
		},
		{
			name: "All users with custom dsn",
			args: []string{"recalc", "--all", "-w", "8", "-d", "postgres://other"},
			prepareMock: func() {
				ledger.EXPECT().RebuildAll(gomock.Any(), 8).Return(42, nil)
			},
			wantOut: "recalculated 42 users\n",
			wantDSN: "postgres://other",
		},
		{
			name:        "Neither flag",
			args:        []string{"recalc"},
			prepareMock: func() {},
			wantErr:     errUserOrAll.Error(),
		},
		{
			name:        "Both flags",
			args:        []string{"recalc", "--user", "1", "--all"},
			prepareMock: func() {},
			wantErr:     errUserOrAll.Error(),
		},
		{
			name:        "Database unavailable",
			args:        []string{"recalc", "--all"},
			prepareMock: func() {},
			openErr:     errors.New("connection refused"),
			wantErr:     "can't open ledger: connection refused",
		},
		{
			name: "Unknown user",
			args: []string{"recalc", "-u", "9"},
			prepareMock: func() {
				ledger.EXPECT().Recalculate(gomock.Any(), 9).Return(domain.BalanceSnapshot{}, domain.ErrUserNotFound)
			},
			wantErr: "recalculate user 9: user not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			out, dsn, err := run(t, ledger, tt.openErr, tt.args...)
			if tt.wantErr != "" {
				require.EqualError(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantOut, out)
			assert.Equal(t, tt.wantDSN, dsn)
		})
	}
}

func TestTiers(t *testing.T) {
	out, _, err := run(t, nil, nil, "tiers")
	require.NoError(t, err)
	assert.Contains(t, out, "bronze")
	assert.Contains(t, out, "gold")

	path := filepath.Join(t.TempDir(), "tiers.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[[tier]]
name = "basic"
min_purchase_amount = 0
cashback_percent = 3
`), 0o600))
	out, _, err = run(t, nil, nil, "tiers", "--file", path)
	require.NoError(t, err)
	assert.Contains(t, out, "basic")
	assert.NotContains(t, out, "gold")

	_, _, err = run(t, nil, nil, "tiers", "-f", filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
