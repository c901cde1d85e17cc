package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lgsmfleet/apierr"
	"lgsmfleet/hub/adapters/discord"
	"lgsmfleet/hub/adapters/myredis"
	"lgsmfleet/hub/adapters/spokehttp"
	"lgsmfleet/hub/adapters/sqlite"
	"lgsmfleet/hub/handlers"
	"lgsmfleet/hub/interfaces"
	"lgsmfleet/hub/service"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

func main() {
	// Initialize logger
	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	logger = log.WithPrefix(logger, "ts", log.DefaultTimestampUTC)
	logger = log.WithPrefix(logger, "caller", log.DefaultCaller)

	level.Info(logger).Log("msg", "Starting hub")

	// Load configuration
	config, err := LoadConfig()
	if err != nil {
		level.Error(logger).Log("msg", "Failed to load configuration", "err", err)
		os.Exit(1)
	}
	level.Info(logger).Log(
		"msg", "Configuration loaded",
		"port", config.HTTPPort,
		"store", config.Store,
		"heartbeat_interval", config.HeartbeatInterval,
		"heartbeat_timeout", config.HeartbeatTimeout,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var (
		spokes   interfaces.SpokeStore
		settings interfaces.SettingsStore
	)
	switch config.Store {
	case StoreRedis:
		redisClient, err := myredis.NewRedisUniversalClient(config.Redis.Addr)
		if err != nil {
			level.Error(logger).Log("msg", "Failed to create Redis client", "err", err)
			os.Exit(1)
		}
		defer redisClient.Close()

		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		err = redisClient.Ping(pingCtx).Err()
		cancel()
		if err != nil {
			level.Error(logger).Log("msg", "Failed to connect to Redis", "err", err)
			os.Exit(1)
		}
		level.Info(logger).Log("msg", "Connected to Redis")
		spokes = myredis.NewSpokeStore(redisClient)
		settings = myredis.NewSettingsStore(redisClient)
	default:
		db, err := sqlite.Open(ctx, config.DBPath)
		if err != nil {
			level.Error(logger).Log("msg", "Failed to open database", "path", config.DBPath, "err", err)
			os.Exit(1)
		}
		defer db.Close()
		level.Info(logger).Log("msg", "Opened database", "path", config.DBPath)
		spokes = sqlite.NewSpokeStore(db)
		settings = sqlite.NewSettingsStore(db)
	}

	if err := seedSettings(ctx, settings, config.Settings); err != nil {
		level.Error(logger).Log("msg", "Failed to seed settings", "err", err)
		os.Exit(1)
	}

	// Polls get their deadline from the monitor's per-call context.
	probe := spokehttp.NewStatusProbe(&http.Client{Timeout: config.HeartbeatTimeout})

	var monitor *service.Monitor
	{
		sink := service.NewMultiSink(
			service.NewLogSink(logger),
			discord.NewSink(settings, config.DiscordWebhook, &http.Client{}, logger),
		)
		monitor = service.NewMonitor(
			spokes, probe, sink,
			service.NewTimeProvider(func() time.Time { return time.Now().UTC() }),
			logger,
			service.WithInterval(config.HeartbeatInterval),
			service.WithPollTimeout(config.HeartbeatTimeout),
		)
	}

	// Create HTTP server (Echo)
	var e *echo.Echo
	{
		auth, err := handlers.NewKeyAuth(config.APIKey)
		if err != nil {
			level.Error(logger).Log("msg", "Failed to create key auth", "err", err)
			os.Exit(1)
		}
		e = echo.New()
		e.HideBanner = true
		apierr.RegisterErrorHandler(e, logger)
		e.Use(middleware.Recover())
		e.Use(middleware.CORS())
		e.Use(auth)
		handlers.RegisterHealthCheck(e)
		handlers.RegisterHandlers(e, handlers.NewHTTPServer(spokes, settings, probe, logger, handlers.WithProxyTimeout(config.HeartbeatTimeout)))
	}

	monitorDone := make(chan struct{})
	go func() {
		defer close(monitorDone)
		monitor.Run(ctx)
	}()

	// Start server in a goroutine
	go func() {
		addr := fmt.Sprintf(":%d", config.HTTPPort)
		level.Info(logger).Log("msg", "Starting HTTP server", "addr", addr)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			level.Error(logger).Log("msg", "HTTP server error", "err", err)
			stop()
		}
	}()

	// Wait for interrupt signal
	<-ctx.Done()
	level.Info(logger).Log("msg", "Shutting down server...")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		level.Error(logger).Log("msg", "Error during server shutdown", "err", err)
	}
	<-monitorDone

	level.Info(logger).Log("msg", "Server stopped")
}

// seedSettings writes configured settings that are not stored yet, so values
// changed through POST /settings survive restarts.
func seedSettings(ctx context.Context, store interfaces.SettingsStore, values map[string]string) error {
	missing := map[string]string{}
	for k, v := range values {
		_, err := store.Get(ctx, k)
		switch {
		case err == nil:
		case apierr.IsEntityNotFoundError(err):
			missing[k] = v
		default:
			return err
		}
	}
	return store.Put(ctx, missing)
}
