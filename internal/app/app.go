package app

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/GlebRadaev/lwcoin/internal/config"
	"github.com/GlebRadaev/lwcoin/internal/handlers"
	"github.com/GlebRadaev/lwcoin/internal/pg"
	"github.com/GlebRadaev/lwcoin/internal/ratelimit"
	"github.com/GlebRadaev/lwcoin/internal/reconcile"
	"github.com/GlebRadaev/lwcoin/internal/repo"
	"github.com/GlebRadaev/lwcoin/internal/service"
	"github.com/GlebRadaev/lwcoin/pkg/clients"
	"github.com/GlebRadaev/lwcoin/pkg/logger"
)

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg     *config.Config
	api     *handlers.Handlers
	srv     *service.Services
	repo    *repo.Repositories
	ext     *reconcile.Service
	limiter ratelimit.Limiter

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg := config.New()

	err := logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	pool, err := getPgxpool(ctx, cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	if err := pg.RunMigrations(ctx, pool); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		return fmt.Errorf("can't run migrations: %w", err)
	}
	txManager := pg.NewTXManager(pool)
	client := clients.NewHTTPClient()

	conn := pg.New(pool)
	a.cfg = cfg
	a.repo = repo.New(conn, txManager)
	a.srv = service.New(a.repo, txManager, cfg, client)
	a.limiter = newLimiter(ctx, cfg)
	a.api = handlers.New(a.srv, cfg, a.limiter)
	if cfg.PaymentProviderAddress != "" {
		a.ext = reconcile.New(cfg, a.repo.PurchaseRepo, a.srv.PurchaseService, client)
	}

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.startReconciler(ctx)
	a.closeOnDone(ctx, pool)

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		return nil, err
	}
	return dbpool, nil
}

// newLimiter prefers Redis so that limits hold across instances and falls
// back to process memory when Redis is not configured or unreachable.
func newLimiter(ctx context.Context, cfg *config.Config) ratelimit.Limiter {
	if cfg.RedisAddress == "" {
		zap.L().Info("redis not configured, using in-memory rate limiter")
		return ratelimit.NewMemoryLimiter()
	}

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddress})
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		zap.L().Warn("redis unavailable, using in-memory rate limiter",
			zap.String("address", cfg.RedisAddress),
			zap.Error(err),
		)
		_ = rdb.Close()
		return ratelimit.NewMemoryLimiter()
	}
	zap.L().Info("using redis rate limiter", zap.String("address", cfg.RedisAddress))
	return ratelimit.NewRedisLimiter(rdb)
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:              a.cfg.Address,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(sCtx)
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

func (a *Application) startReconciler(ctx context.Context) {
	if a.ext == nil {
		zap.L().Info("payment provider not configured, reconciler disabled")
		return
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		a.ext.Start(ctx)
	}()
}

func (a *Application) closeOnDone(ctx context.Context, pool *pgxpool.Pool) {
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()
		if closer, ok := a.limiter.(interface{ Close() error }); ok {
			if err := closer.Close(); err != nil {
				zap.L().Warn("failed to close rate limiter", zap.Error(err))
			}
		}
		pool.Close()
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
