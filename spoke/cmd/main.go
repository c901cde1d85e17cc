package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lgsmfleet/apierr"
	"lgsmfleet/spoke/adapters/hoststat"
	"lgsmfleet/spoke/adapters/hubclient"
	"lgsmfleet/spoke/adapters/osusers"
	"lgsmfleet/spoke/adapters/privilege"
	"lgsmfleet/spoke/adapters/tmux"
	"lgsmfleet/spoke/domain"
	"lgsmfleet/spoke/handlers"
	"lgsmfleet/spoke/interfaces"
	"lgsmfleet/spoke/service"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

const telemetrySample = 500 * time.Millisecond

func main() {
	// Initialize logger
	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	logger = log.WithPrefix(logger, "ts", log.DefaultTimestampUTC)
	logger = log.WithPrefix(logger, "caller", log.DefaultCaller)

	level.Info(logger).Log("msg", "Starting spoke agent")

	// Load configuration
	config, err := LoadConfig()
	if err != nil {
		level.Error(logger).Log("msg", "Failed to load configuration", "err", err)
		os.Exit(1)
	}

	identity, err := osusers.CurrentIdentity()
	if err != nil {
		level.Error(logger).Log("msg", "Failed to resolve agent identity", "err", err)
		os.Exit(1)
	}
	level.Info(logger).Log(
		"msg", "Configuration loaded",
		"port", config.HTTPPort,
		"managed_users", config.Users.Users,
		"home_root", config.Users.HomeRoot,
		"identity", identity.Username,
		"root", identity.IsRoot(),
		"hub_url", config.Hub.URL,
	)

	var (
		users    interfaces.UserEnumerator
		selector interfaces.PrivilegeSelector
		owners   *service.OwnerResolver
	)
	{
		users = osusers.NewEnumerator(config.Users, nil, logger)
		selector = privilege.NewSelector(identity)
		owners = service.NewOwnerResolver(users)
	}

	var reconciler *service.Reconciler
	{
		reconciler = service.NewReconciler(
			users,
			service.NewScriptDiscoverer(config.Rules, logger),
			tmux.NewSessionLister(selector, logger),
			hoststat.NewProcessTable(),
			logger,
		)
	}

	var dispatcher *service.Dispatcher
	{
		actions := domain.NewActionSet(config.ExtraActions...)
		dispatcher = service.NewDispatcher(owners, selector, privilege.NewDetachedLauncher(logger), actions, logger)
	}

	// Create HTTPServer
	var httpServer handlers.ServerInterface
	{
		httpServer = handlers.NewHTTPServer(
			reconciler,
			hoststat.NewTelemetrySource("/", telemetrySample),
			dispatcher,
			service.NewLogReader(owners, selector, config.LogPatterns, logger),
			service.NewLogStreamer(owners, selector, config.LogPatterns, config.StreamGrace, logger),
			logger,
		)
	}

	// Create HTTP server (Echo)
	var e *echo.Echo
	{
		doc, err := handlers.LoadSwagger()
		if err != nil {
			level.Error(logger).Log("msg", "Failed to load OpenAPI document", "err", err)
			os.Exit(1)
		}
		validator, err := handlers.NewRequestValidator(doc, config.APIKey)
		if err != nil {
			level.Error(logger).Log("msg", "Failed to create request validator", "err", err)
			os.Exit(1)
		}

		e = echo.New()
		e.HideBanner = true
		apierr.RegisterErrorHandler(e, logger)
		e.Use(middleware.Recover())
		e.Use(middleware.CORS())
		e.Use(validator)
		handlers.RegisterHealthCheck(e)
		handlers.RegisterHandlers(e, httpServer)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Start server in a goroutine
	go func() {
		addr := fmt.Sprintf(":%d", config.HTTPPort)
		level.Info(logger).Log("msg", "Starting HTTP server", "addr", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			level.Error(logger).Log("msg", "HTTP server error", "err", err)
			stop()
		}
	}()

	if config.Hub.URL != "" {
		go registerWithHub(ctx, config, logger)
	}

	// Wait for interrupt signal
	<-ctx.Done()
	level.Info(logger).Log("msg", "Shutting down server...")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		level.Error(logger).Log("msg", "Error during server shutdown", "err", err)
	}

	level.Info(logger).Log("msg", "Server stopped")
}

func registerWithHub(ctx context.Context, config *SpokeConfig, logger log.Logger) {
	logger = log.With(logger, "component", "hub_registration")

	name := config.Hub.SpokeName
	if name == "" {
		name, _ = os.Hostname()
	}
	ip := config.Hub.AdvertiseIP
	if ip == "" {
		var err error
		if ip, err = outboundIP(config.Hub.URL); err != nil {
			level.Error(logger).Log("msg", "Cannot determine address to advertise; set ADVERTISE_IP", "err", err)
			return
		}
	}

	client := hubclient.NewClient(config.Hub.URL, config.Hub.APIKey, &http.Client{})
	reg := hubclient.Registration{Name: name, IP: ip, Port: config.HTTPPort, APIKey: config.APIKey}
	if err := client.RegisterWithRetry(ctx, reg, 5, 2*time.Second); err != nil {
		level.Error(logger).Log("msg", "Hub registration failed", "err", err)
		return
	}
	level.Info(logger).Log("msg", "Registered with hub", "name", name, "ip", ip)
}

// outboundIP returns the local address the kernel would use to reach the hub.
// No packet is sent.
func outboundIP(hubURL string) (string, error) {
	u, err := url.Parse(hubURL)
	if err != nil {
		return "", err
	}
	host := u.Host
	if u.Port() == "" {
		host = net.JoinHostPort(u.Hostname(), "80")
	}
	conn, err := net.Dial("udp", host)
	if err != nil {
		return "", err
	}
	defer conn.Close()
	return conn.LocalAddr().(*net.UDPAddr).IP.String(), nil
}
