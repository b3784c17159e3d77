package service

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/GlebRadaev/bonusledger/internal/handlers/auth"
	"github.com/GlebRadaev/bonusledger/internal/handlers/bonus"
	"github.com/GlebRadaev/bonusledger/internal/handlers/pos"
	"github.com/GlebRadaev/bonusledger/internal/repo"
	"github.com/GlebRadaev/bonusledger/internal/service/authservice"
	"github.com/GlebRadaev/bonusledger/internal/service/ledgerservice"
	"github.com/GlebRadaev/bonusledger/internal/tier"
	pkgauth "github.com/GlebRadaev/bonusledger/pkg/auth"
)

// LedgerService is everything the customer and point-of-sale APIs need
// from the ledger.
type LedgerService interface {
	bonus.Service
	pos.Service
}

type Services struct {
	AuthService   auth.Service
	LedgerService LedgerService
}

func New(repo *repo.Repositories, tiers *tier.Table, notifier ledgerservice.Notifier, jwtService pkgauth.JWTServiceInterface, opts ...ledgerservice.Option) *Services {
	authService := authservice.New(repo.UserRepo, pkgauth.NewHashService(bcrypt.DefaultCost), jwtService, authservice.DefaultTokenTTL)
	ledgerService := ledgerservice.New(repo.UserRepo, repo.EntryRepo, repo.TXManager, tiers, notifier, opts...)

	return &Services{
		AuthService:   authService,
		LedgerService: ledgerService,
	}
}
