package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/LavaJover/shvark-price-collector/internal/app/background"
	"github.com/LavaJover/shvark-price-collector/internal/app/setup"
	"github.com/LavaJover/shvark-price-collector/internal/config"
	"github.com/LavaJover/shvark-price-collector/internal/domain"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}
	// Reading config
	cfg := config.MustLoad()

	deps, err := setup.InitializeDependencies(cfg)
	if err != nil {
		log.Fatalf("failed to initialize dependencies: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tasks := background.NewBackgroundTasks(cfg.Metrics.Addr, deps.Registry, deps.Log)
	tasks.StartAll(ctx)

	runErr := deps.Collector.Start(ctx)
	interrupted := ctx.Err() != nil
	stop()
	tasks.Wait()

	if runErr != nil && !interrupted {
		deps.Log.Error("Collector stopped", zap.Error(runErr))
	}
	if err := deps.Close(); err != nil {
		log.Printf("failed to release resources: %v", err)
	}

	if !interrupted && errors.Is(runErr, domain.ErrRateUnavailable) {
		os.Exit(1)
	}
}
