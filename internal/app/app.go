package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/grantboard/grantboard/internal/config"
	"github.com/grantboard/grantboard/internal/httpserver"
	"github.com/grantboard/grantboard/internal/httpserver/deps"
	"github.com/grantboard/grantboard/internal/index"
	"github.com/grantboard/grantboard/internal/logger"
	"github.com/grantboard/grantboard/internal/redis"
	"github.com/grantboard/grantboard/internal/scheduler"
	"github.com/grantboard/grantboard/internal/state"
	redisstore "github.com/grantboard/grantboard/internal/store/redis"
	"github.com/grantboard/grantboard/internal/version"
)

type App struct {
	cfg         *config.Config
	logger      logger.Logger
	server      *httpserver.Server
	redisClient *goredis.Client
	catalog     *index.Catalog
	userState   *state.State
	reloader    *scheduler.CatalogReloader
	notifier    *scheduler.DeadlineNotifier
}

func New() *App {
	cfg := config.Load()

	loggerClient := logger.New(cfg.LogLevel, cfg.PrettyLog)

	// Initialize Redis early - fail fast if unavailable
	loggerClient.Infof("Connecting to Redis at %s", cfg.RedisAddr)
	redisClient, err := redis.New(redis.ConnectOptions{
		Addr:           cfg.RedisAddr,
		User:           cfg.RedisUser,
		Password:       cfg.RedisPassword,
		RedisDB:        cfg.RedisDB,
		DialTimeout:    cfg.RedisDT,
		ReadTimeout:    cfg.RedisRT,
		WriteTimeout:   cfg.RedisWT,
		PoolSize:       cfg.RedisPoolSize,
		ConnectTimeout: cfg.RedisConnectTimeout,
		RetryInterval:  cfg.RedisRetryInterval,
		MaxWait:        cfg.RedisMaxWait,
		PingTimeout:    cfg.RedisPingTimeout,
		WarnThreshold:  cfg.RedisWarnThreshold,
	}, loggerClient)
	if err != nil {
		loggerClient.Errorf("Failed to connect to Redis: %v", err)
		os.Exit(1)
	}
	loggerClient.Info("Redis initialized successfully")

	// Initialize the grant catalog and user state
	catalog := index.NewCatalog()
	userState := state.New()

	// Initialize Redis store
	store := redisstore.NewStore(redisClient)

	// Rehydrate user state from Redis on startup
	syncer := scheduler.NewStateSyncer(store, userState, loggerClient)
	if err := syncer.Sync(context.Background()); err != nil {
		loggerClient.Warn("failed to restore state from redis on startup, using defaults",
			logger.Error(err))
	}

	// Create manual reload trigger channel
	reloadTrigger := make(chan struct{}, 1)

	// Initialize catalog reloader
	reloader := scheduler.NewCatalogReloader(
		cfg.CatalogFile,
		catalog,
		loggerClient,
		cfg.ReloadInterval,
		reloadTrigger,
	)

	// Initialize deadline notifier
	notifier := scheduler.NewDeadlineNotifier(
		catalog,
		userState,
		loggerClient,
		cfg.NotifyInterval,
	)

	// Dependencies passed to routes (extend as needed).
	d := deps.Deps{
		Logger:        loggerClient,
		StartTime:     time.Now(),
		Version:       version.Version,
		Commit:        version.Commit,
		BuildDate:     version.BuildDate,
		GoVersion:     version.GoVersion,
		TimeNow:       time.Now,
		AllowedHosts:  cfg.AllowedHosts,
		AllowedCIDRS:  cfg.AllowedCIDRS,
		TrustProxy:    cfg.TrustProxy,
		CatalogFile:   cfg.CatalogFile,
		RedisClient:   redisClient,
		Catalog:       catalog,
		State:         userState,
		Store:         store,
		Notifier:      notifier,
		PageSize:      cfg.PageSize,
		ReloadTrigger: reloadTrigger,
	}

	server := httpserver.New(cfg, loggerClient, d)

	return &App{
		cfg:         cfg,
		logger:      loggerClient,
		server:      server,
		redisClient: redisClient,
		catalog:     catalog,
		userState:   userState,
		reloader:    reloader,
		notifier:    notifier,
	}
}

func (a *App) Run() error {
	a.logger.Infof("🚀 Starting Grantboard v%s on %s", version.Version, a.cfg.ListenPort)
	a.logger.Infof("Grantboard %s (commit=%s, built=%s, go=%s)",
		version.Version, version.Commit, version.BuildDate, version.GoVersion)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Start catalog reloader (loads grants and starts periodic refresh)
	if err := a.reloader.Start(ctx); err != nil {
		return fmt.Errorf("failed to start catalog reloader: %w", err)
	}
	a.logger.Info("catalog reloader started",
		logger.Duration("interval", a.cfg.ReloadInterval))

	// Start deadline notifier
	if err := a.notifier.Start(ctx); err != nil {
		return fmt.Errorf("failed to start deadline notifier: %w", err)
	}
	a.logger.Info("deadline notifier started",
		logger.Duration("interval", a.cfg.NotifyInterval))

	errCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("⏳ Shutting down gracefully...")
	case err := <-errCh:
		return err
	}

	// Stop schedulers
	a.reloader.Stop()
	a.notifier.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.server.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.logger.Warnf("failed to close redis: %v", err)
		} else {
			a.logger.Info("✅ Redis closed cleanly")
		}
	}

	a.logger.Info("✅ Grantboard stopped cleanly")
	return nil
}
