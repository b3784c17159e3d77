package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/caarlos0/env/v6"
	"github.com/rs/zerolog/log"

	"github.com/GlebRadaev/bonusledger/internal/cli"
	"github.com/GlebRadaev/bonusledger/internal/config"
	"github.com/GlebRadaev/bonusledger/internal/pg"
	"github.com/GlebRadaev/bonusledger/internal/repo"
	"github.com/GlebRadaev/bonusledger/internal/service/ledgerservice"
	"github.com/GlebRadaev/bonusledger/internal/tier"
	"github.com/GlebRadaev/bonusledger/pkg/logger"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg := &config.Config{}
	if err := env.Parse(cfg); err != nil {
		log.Fatal().Err(err).Msg("can't parse env")
	}
	if err := logger.InitLogger(cfg.LogLvl); err != nil {
		log.Fatal().Err(err).Msg("can't init logger")
	}

	if err := cli.NewRootCmd(openLedger, cfg.Database).ExecuteContext(ctx); err != nil {
		log.Error().Err(err).Msg("ledgerctl failed")
		os.Exit(1)
	}
}

// openLedger builds a ledger without a notifier: maintenance runs never
// publish events.
func openLedger(ctx context.Context, databaseURI string) (cli.Ledger, func(), error) {
	pool, err := pg.Connect(ctx, databaseURI)
	if err != nil {
		return nil, nil, err
	}
	repos := repo.New(pg.New(pool), pg.NewTXManager(pool))
	ledger := ledgerservice.New(repos.UserRepo, repos.EntryRepo, repos.TXManager, tier.Default(), nil)
	return ledger, pool.Close, nil
}
