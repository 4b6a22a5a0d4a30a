package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"

	"github.com/Checker-Finance/bin-lookup/internal/api"
	"github.com/Checker-Finance/bin-lookup/internal/cache"
	"github.com/Checker-Finance/bin-lookup/internal/lookup"
	"github.com/Checker-Finance/bin-lookup/internal/provider"
	"github.com/Checker-Finance/bin-lookup/pkg/config"
	"github.com/Checker-Finance/bin-lookup/pkg/logger"
	"github.com/Checker-Finance/bin-lookup/pkg/model"
	"github.com/Checker-Finance/bin-lookup/pkg/secrets"
	"github.com/Checker-Finance/bin-lookup/pkg/utils"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- Load configuration ---
	cfg := config.Load()

	logger.Init(cfg.ServiceName, cfg.Env, cfg.LogLevel)
	defer logger.Sync()
	logg := logger.S()
	logg.Info("starting [bin-lookup]...")

	// --- Fallback credential (env var, or AWS Secrets Manager when configured) ---
	apiKey := cfg.APINinjasKey
	if apiKey == "" && cfg.APINinjasKeySecretID != "" {
		awsProvider, err := secrets.NewAWSProvider(cfg.AWSRegion)
		if err != nil {
			logg.Fatalw("failed to create AWS Secrets Manager provider", "error", err)
		}
		resolveCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		key, err := secrets.ResolveAPIKey(resolveCtx, awsProvider, cfg.APINinjasKeySecretID)
		cancel()
		if err != nil {
			logg.Fatalw("failed to resolve fallback API key from AWS Secrets Manager",
				"secret_id", cfg.APINinjasKeySecretID, "error", err)
		}
		apiKey = key
	}

	// --- Shared lookup cache ---
	binCache := cache.New[model.IssuerRecord](cfg.CacheTTL)

	// --- Provider chain ---
	primary := provider.NewBinlistClient(
		logg.Desugar(),
		rate.NewLimiter(rate.Limit(cfg.ProviderRPS), cfg.ProviderBurst),
		cfg.BinlistBaseURL,
		cfg.ProviderTimeout,
	)

	var fallback provider.Client
	if apiKey != "" {
		fallback = provider.NewNinjasClient(
			logg.Desugar(),
			rate.NewLimiter(rate.Limit(cfg.ProviderRPS), cfg.ProviderBurst),
			cfg.APINinjasBaseURL,
			apiKey,
			cfg.ProviderTimeout,
		)
		logg.Infow("fallback provider enabled", "api_key", utils.MaskSecret(apiKey))
	} else {
		logg.Info("no fallback API key configured; fallback provider disabled")
	}

	// --- Orchestrator ---
	svc := lookup.New(logg.Desugar(), binCache, primary, fallback, cfg.MaxParallelLookups)

	// --- Fiber HTTP Server ---
	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	})

	handler := api.NewBinHandler(logg.Desugar(), svc)
	api.RegisterRoutes(app, handler, svc.FallbackConfigured())

	go func() {
		logg.Infof("HTTP API listening on :%d", cfg.Port)
		if err := app.Listen(fmt.Sprintf(":%d", cfg.Port)); err != nil {
			logg.Fatalw("fiber.listen_failed", "error", err)
		}
	}()

	logg.Infow("[bin-lookup] running",
		"env", cfg.Env,
		"cache_ttl", cfg.CacheTTL,
		"provider_timeout", cfg.ProviderTimeout,
		"fallback_configured", svc.FallbackConfigured())

	<-ctx.Done()
	logg.Info("shutting down [bin-lookup]...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		logg.Warnw("fiber.shutdown_failed", "error", err)
	}
}
