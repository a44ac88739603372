// @title GLA Tools API
// @version 1.0
// @description Experience and boost crystal calculators.
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/osse101/gla-tools/internal/config"
	"github.com/osse101/gla-tools/internal/enhancement"
	"github.com/osse101/gla-tools/internal/handler"
	"github.com/osse101/gla-tools/internal/leveling"
	"github.com/osse101/gla-tools/internal/server"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Server exited", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	closer := initLogger(cfg)
	defer closer.Close()

	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		return fmt.Errorf("validate environment: %w", err)
	}
	for _, w := range warnings {
		slog.Warn("Configuration warning", "detail", w)
	}

	prices, err := config.LoadPrices(cfg.PricesFile)
	if err != nil {
		return fmt.Errorf("load prices: %w", err)
	}
	slog.Info("Default prices loaded", "file", cfg.PricesFile, "entries", len(prices))

	levelingService := leveling.NewService()
	enhancementService := enhancement.NewService(enhancement.Config{
		CacheSize: cfg.CacheSize,
		CacheTTL:  cfg.CacheTTL,
	})

	rulesLoaded := handler.HealthCheckFunc(func(ctx context.Context) error {
		if len(enhancementService.Rules(ctx)) == 0 {
			return errors.New("no upgrade rules")
		}
		return nil
	})

	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
	}, levelingService, enhancementService, prices, rulesLoaded)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return srv.Stop(shutdownCtx)
	})

	return g.Wait()
}
