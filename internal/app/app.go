package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/arcanum-obscurum/arcanum/internal/config"
	"github.com/arcanum-obscurum/arcanum/internal/domain"
	"github.com/arcanum-obscurum/arcanum/internal/httpserver"
	"github.com/arcanum-obscurum/arcanum/internal/httpserver/deps"
	"github.com/arcanum-obscurum/arcanum/internal/index"
	"github.com/arcanum-obscurum/arcanum/internal/logger"
	"github.com/arcanum-obscurum/arcanum/internal/notify"
	"github.com/arcanum-obscurum/arcanum/internal/redis"
	"github.com/arcanum-obscurum/arcanum/internal/scheduler"
	"github.com/arcanum-obscurum/arcanum/internal/sources/feed"
	"github.com/arcanum-obscurum/arcanum/internal/sources/threatfile"
	redisstore "github.com/arcanum-obscurum/arcanum/internal/store/redis"
	"github.com/arcanum-obscurum/arcanum/internal/version"
)

type App struct {
	cfg         *config.Config
	logger      logger.Logger
	server      *httpserver.Server
	redisClient *goredis.Client
	catalog     *index.Catalog
	poller      *scheduler.FeedPoller
}

func New() *App {
	cfg := config.Load()

	loggerClient := logger.New(cfg.LogLevel, cfg.PrettyLog)

	// Initialize Redis early - fail fast if unavailable
	redisClient, err := redis.New(redis.ConnectOptions{
		Addr:           cfg.RedisAddr,
		User:           cfg.RedisUser,
		Password:       cfg.RedisPassword,
		DB:             cfg.RedisDB,
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
		loggerClient.Error("failed to connect to redis", logger.Error(err))
		os.Exit(1)
	}
	loggerClient.Info("redis initialized successfully")

	store := redisstore.NewStore(redisClient)

	// Notifier loads any persisted watch preferences on startup.
	notifier := notify.New(context.Background(), store, loggerClient)

	catalog := index.NewCatalog()
	threatLevels := index.NewThreatLevels(loadThreatLevels(cfg, loggerClient))

	// Disaster feed is optional; without a URL the endpoints serve an
	// empty batch and manual refresh reports unavailable.
	events := index.NewEvents()
	var poller *scheduler.FeedPoller
	var feedTrigger chan struct{}
	if cfg.FeedURL != "" {
		feedTrigger = make(chan struct{}, 1)
		source := feed.NewSource(cfg.FeedURL, cfg.FeedTimeout)
		poller = scheduler.NewFeedPoller(source, events, loggerClient, cfg.FeedInterval, feedTrigger)
	} else {
		loggerClient.Info("feed url not configured, disaster feed disabled")
	}

	d := deps.Deps{
		Logger:       loggerClient,
		StartTime:    time.Now(),
		Version:      version.Version,
		Commit:       version.Commit,
		BuildDate:    version.BuildDate,
		GoVersion:    version.GoVersion,
		TimeNow:      time.Now,
		Catalog:      catalog,
		ThreatLevels: threatLevels,
		Events:       events,
		Notifier:     notifier,
		RedisClient:  redisClient,
		FeedTrigger:  feedTrigger,
		TrustProxy:   cfg.TrustProxy,
		CreateBurst:  cfg.CreateBurst,
		CreateRefill: cfg.CreateRefillPerMin,
	}

	server := httpserver.New(cfg, loggerClient, d)

	return &App{
		cfg:         cfg,
		logger:      loggerClient,
		server:      server,
		redisClient: redisClient,
		catalog:     catalog,
		poller:      poller,
	}
}

// loadThreatLevels returns the grade registry seed: the override file
// when configured and valid, otherwise the built-in definitions. A bad
// file is fatal rather than silently ignored.
func loadThreatLevels(cfg *config.Config, log logger.Logger) []domain.ThreatLevelDefinition {
	if cfg.ThreatFile == "" {
		return domain.SeedThreatLevels()
	}

	defs, err := threatfile.NewLoader(cfg.ThreatFile).Load()
	if err != nil {
		log.Fatal("failed to load threat level file",
			logger.String("file", cfg.ThreatFile),
			logger.Error(err))
	}
	log.Info("threat levels loaded from file",
		logger.String("file", cfg.ThreatFile))
	return defs
}

func (a *App) Run() error {
	a.logger.Info(fmt.Sprintf("🚀 Starting Arcanum v%s on %s", version.Version, a.cfg.ListenPort))
	a.logger.Info("build info",
		logger.String("version", version.Version),
		logger.String("commit", version.Commit),
		logger.String("built", version.BuildDate),
		logger.String("go", version.GoVersion))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if a.poller != nil {
		a.poller.Start(ctx)
		a.logger.Info("feed poller started",
			logger.Duration("interval", a.cfg.FeedInterval))
	}

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

	if a.poller != nil {
		a.poller.Stop()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.server.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.logger.Warn("failed to close redis", logger.Error(err))
		} else {
			a.logger.Info("✅ Redis closed cleanly")
		}
	}

	a.logger.Info("✅ Arcanum stopped cleanly")
	return nil
}
