package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/bonusledger/internal/pg"
	"github.com/GlebRadaev/bonusledger/internal/repo"
	"github.com/GlebRadaev/bonusledger/internal/service/ledgerservice"
	"github.com/GlebRadaev/bonusledger/internal/tier"
	pkgauth "github.com/GlebRadaev/bonusledger/pkg/auth"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repos := repo.New(nil, pg.NewMockTXManager(ctrl))
	tiers := tier.Default()

	services := New(repos, tiers, ledgerservice.NewMockNotifier(ctrl), pkgauth.NewMockJWTServiceInterface(ctrl),
		ledgerservice.WithCapFraction(decimal.RequireFromString("0.5")))

	assert.NotNil(t, services.AuthService)
	assert.NotNil(t, services.LedgerService)
	assert.Equal(t, tiers.Tiers(), services.LedgerService.Tiers())
}
