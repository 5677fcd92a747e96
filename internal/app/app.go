package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
	bolt "go.etcd.io/bbolt"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/unhooked-app/craving-intervention/internal/config"
	"github.com/unhooked-app/craving-intervention/internal/server"
	"github.com/unhooked-app/craving-intervention/internal/settings"
	"github.com/unhooked-app/craving-intervention/pkg/blocklist"
	"github.com/unhooked-app/craving-intervention/pkg/enforcement"
	"github.com/unhooked-app/craving-intervention/pkg/ledger"
	"github.com/unhooked-app/craving-intervention/pkg/profile"
	"github.com/unhooked-app/craving-intervention/pkg/timer"
)

// App holds all application dependencies and manages the application lifecycle.
type App struct {
	cfg               *config.Config
	grpcServer        *server.GRPCServer
	metricsServer     *server.MetricsServer
	redisClient       *redis.Client
	boltDB            *bolt.DB
	timers            *timer.Service
	subscriber        *enforcement.Subscriber
	shutdownTelemetry func(context.Context) error
}

// New creates and initializes a new application instance.
//
// Components are initialized in dependency order: logging, Redis, tunables,
// the local blocklist mirror, the domain services (timer, enforcement,
// ledger), then servers and telemetry.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	setupLogging(cfg)
	logrus.Info("initializing application...")

	app := &App{cfg: cfg}

	if err := app.initRedis(ctx); err != nil {
		return nil, fmt.Errorf("failed to init Redis: %w", err)
	}

	tunables, err := loadSettings(cfg.SettingsPath)
	if err != nil {
		return nil, err
	}

	if err := app.initBolt(); err != nil {
		return nil, fmt.Errorf("failed to open blocklist mirror: %w", err)
	}

	// Remote profile store and the local mirror on top of it.
	profileStore := profile.NewRedisStore(app.redisClient, profile.RedisStoreConfig{})
	blocklistStore, err := blocklist.New(profileStore, app.boltDB)
	if err != nil {
		return nil, fmt.Errorf("failed to init blocklist mirror: %w", err)
	}

	app.timers = timer.NewService(profileStore, timer.WithTickInterval(tunables.TickInterval()))
	controller := enforcement.NewController(blocklistStore, app.timers)
	redirector := enforcement.NewRedisRedirector(app.redisClient)
	monitor := enforcement.NewMonitor(
		blocklistStore,
		redirector,
		tunables.Monitor.HostAppIDs,
		enforcement.WithCooldown(tunables.Cooldown()),
	)
	app.subscriber = enforcement.NewSubscriber(app.redisClient, monitor, tunables.Channels.ForegroundEvents)
	ledgerSvc := ledger.NewService(profileStore, app.timers)

	app.grpcServer = server.NewGRPCServer(cfg.GRPCPort, app.timers, controller, monitor, ledgerSvc, blocklistStore)
	if err := app.grpcServer.Setup(); err != nil {
		return nil, fmt.Errorf("failed to setup gRPC server: %w", err)
	}

	app.metricsServer = server.NewMetricsServer(cfg.MetricsPort, "/metrics")
	if err := app.metricsServer.Setup(); err != nil {
		return nil, fmt.Errorf("failed to setup metrics server: %w", err)
	}

	if cfg.OtelEnabled {
		shutdownTelemetry, err := server.SetupTelemetry(ctx, cfg.ServiceName, cfg.Environment, 0)
		if err != nil {
			return nil, fmt.Errorf("failed to setup telemetry: %w", err)
		}
		app.shutdownTelemetry = shutdownTelemetry
	} else {
		logrus.Info("telemetry disabled")
	}

	logrus.Info("application initialized successfully")

	return app, nil
}

// setupLogging configures the process-wide logger. When LOG_FILE is set,
// output is duplicated into a size-rotated file.
func setupLogging(cfg *config.Config) {
	logrus.SetFormatter(&logrus.JSONFormatter{})

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)

	if cfg.LogFile != "" {
		rotator := &lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    cfg.LogFileMaxSizeMB,
			MaxBackups: cfg.LogFileMaxBackups,
		}
		logrus.SetOutput(io.MultiWriter(os.Stdout, rotator))
	}
}

// loadSettings reads the behavior tunables, falling back to defaults when no
// file is deployed alongside the binary.
func loadSettings(path string) (*settings.Settings, error) {
	tunables, err := settings.Load(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logrus.Warnf("no settings file at %s, using defaults", path)
			return settings.Default(), nil
		}
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	logrus.Infof("loaded settings from %s", path)
	return tunables, nil
}

// initRedis initializes the Redis client.
func (a *App) initRedis(ctx context.Context) error {
	client := redis.NewClient(&redis.Options{
		Addr:         a.cfg.RedisHost + ":" + a.cfg.RedisPort,
		Password:     a.cfg.RedisPassword,
		DB:           0, // use default DB
		MaxRetries:   3,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = time.Duration(a.cfg.RedisRetryDelayMs) * time.Millisecond
	maxRetries := backoff.WithMaxRetries(b, uint64(a.cfg.RedisMaxRetries))

	err := backoff.Retry(
		func() error {
			_, err := client.Ping(ctx).Result()
			if err != nil {
				logrus.Warnf("Redis connection failed: %v, retrying...", err)
				return err
			}
			return nil
		},
		maxRetries,
	)

	if err != nil {
		return err
	}

	a.redisClient = client
	logrus.Info("Redis client initialized")
	return nil
}

// initBolt opens the durable local blocklist mirror.
func (a *App) initBolt() error {
	if dir := filepath.Dir(a.cfg.BlocklistMirrorPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	db, err := bolt.Open(a.cfg.BlocklistMirrorPath, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return err
	}

	a.boltDB = db
	logrus.Infof("blocklist mirror opened at %s", a.cfg.BlocklistMirrorPath)
	return nil
}
