// Package main is the weather example process. It advertises itself to the discovery registry under
// every configured version and calls the cat service through an endpoint resolved on first use.
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

	"apidiscovery/adapters"
	"apidiscovery/service"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"golang.org/x/sync/errgroup"
)

func main() {
	// Initialize logger
	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	logger = log.WithPrefix(logger, "ts", log.DefaultTimestampUTC)
	logger = log.WithPrefix(logger, "caller", log.DefaultCaller)

	config, err := LoadConfig()
	if err != nil {
		level.Error(logger).Log("msg", "Failed to load configuration", "err", err)
		os.Exit(1)
	}
	level.Info(logger).Log(
		"msg", "Configuration loaded",
		"service_port_http", config.HTTPPort,
		"name", config.Discovery.Name,
		"versions", fmt.Sprint(config.Discovery.SupportedVersions),
		"discovery_service_url", config.Discovery.ServiceURL,
		"discovery_self_url", config.Discovery.SelfURL,
		"registration_interval", config.RegistrationInterval,
	)

	resolver := adapters.DiscoveryHTTP(config.Discovery.ServiceURL, &http.Client{Timeout: 10 * time.Second}, config.DiscoveryTimeout)
	loop := service.NewRegistrationLoop(resolver, config.Discovery, config.RegistrationInterval, logger)
	binder := service.NewEndpointBinder(resolver, logger)

	var cats *service.CrudClient[Cat]
	if contract, ok := config.Dependency("cat"); ok {
		cats = service.NewCrudClient[Cat](binder.Client(contract, &http.Client{Timeout: 10 * time.Second}))
	} else {
		level.Info(logger).Log("msg", "No cat dependency declared, cats route disabled")
	}
	e := newEcho(cats, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return loop.Run(gctx)
	})
	g.Go(func() error {
		addr := fmt.Sprintf(":%d", config.HTTPPort)
		level.Info(logger).Log("msg", "Starting HTTP server", "addr", addr)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		level.Info(logger).Log("msg", "Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		level.Error(logger).Log("msg", "Weather service stopped with error", "err", err)
		os.Exit(1)
	}
	level.Info(logger).Log("msg", "Server stopped", "registration_loop", loop.State())
}
