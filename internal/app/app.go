package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/bonusledger/internal/config"
	"github.com/GlebRadaev/bonusledger/internal/expiry"
	"github.com/GlebRadaev/bonusledger/internal/handlers"
	"github.com/GlebRadaev/bonusledger/internal/notify"
	"github.com/GlebRadaev/bonusledger/internal/pg"
	"github.com/GlebRadaev/bonusledger/internal/repo"
	"github.com/GlebRadaev/bonusledger/internal/service"
	"github.com/GlebRadaev/bonusledger/internal/service/ledgerservice"
	"github.com/GlebRadaev/bonusledger/internal/tier"
	"github.com/GlebRadaev/bonusledger/pkg/auth"
	"github.com/GlebRadaev/bonusledger/pkg/clients"
	"github.com/GlebRadaev/bonusledger/pkg/logger"
)

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg      *config.Config
	api      *handlers.Handlers
	srv      *service.Services
	repo     *repo.Repositories
	notifier *notify.Dispatcher
	sweeper  *expiry.Sweeper

	errCh       chan error
	wg          sync.WaitGroup
	httpStopped chan struct{}
	ready       bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg := config.New()

	err := logger.InitLogger(cfg.LogLvl)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	pool, err := pg.Connect(ctx, cfg.Database)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	if err := pg.RunMigrations(pool); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		return fmt.Errorf("can't run migrations: %w", err)
	}
	txManager := pg.NewTXManager(pool)

	tiers, err := tier.Load(cfg.TiersFile)
	if err != nil {
		return fmt.Errorf("can't load tiers: %w", err)
	}
	if cfg.POSAPIKey == "" {
		zap.L().Warn("POS_API_KEY is empty, point-of-sale routes will reject every request")
	}

	conn := pg.New(pool)
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	a.cfg = cfg
	a.repo = repo.New(conn, txManager)
	a.notifier = notify.New(cfg.NotifyURL, clients.NewHTTPClient(), cfg.NotifyWorkers)
	a.srv = service.New(a.repo, tiers, a.notifier, jwtService,
		ledgerservice.WithCapFraction(decimal.NewFromFloat(cfg.DebitCapFraction)))
	a.api = handlers.New(a.srv, jwtService, cfg.POSAPIKey)
	a.sweeper = expiry.New(a.repo.EntryRepo, a.srv.LedgerService, cfg.ExpiryInterval, cfg.ExpiryWorkers)

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.sweeper.Start(ctx)
	a.closeOnDone(a.httpStopped, pool.Close)

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:              a.cfg.Address,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	a.httpStopped = make(chan struct{})
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		defer close(a.httpStopped)
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(sCtx); err != nil {
			zap.L().Error("http server shutdown failed", zap.Error(err))
		}
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

// closeOnDone drains pending notifications and releases the pool once the
// HTTP server has stopped, so events of in-flight requests still go out.
func (a *Application) closeOnDone(httpStopped <-chan struct{}, closePool func()) {
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-httpStopped
		a.notifier.Close()
		closePool()
	}()
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()

	return appErr
}
