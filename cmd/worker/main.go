package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/prompt-pronto/prompt-pronto-backend/config"
	"github.com/prompt-pronto/prompt-pronto-backend/internal/bootstrap"
	"github.com/prompt-pronto/prompt-pronto-backend/internal/logging"
	"github.com/prompt-pronto/prompt-pronto-backend/internal/snapshot"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: worker snapshot|schedule")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if err := cfg.ValidateSnapshot(); err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := logging.New(cfg.App.Environment, cfg.App.LogLevel)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()
	src, err := bootstrap.OpenStorage(ctx, cfg.Storage.Driver, cfg.Storage.Backend)
	if err != nil {
		logger.Fatal("open store", zap.String("driver", cfg.Storage.Driver), zap.Error(err))
	}
	defer func() { _ = src.Close() }()

	dst, err := bootstrap.OpenStorage(ctx, cfg.Snapshot.Driver, cfg.Snapshot.Backend)
	if err != nil {
		logger.Fatal("open snapshot target", zap.String("driver", cfg.Snapshot.Driver), zap.Error(err))
	}
	defer func() { _ = dst.Close() }()

	runner := snapshot.NewRunner(src, dst, nil, logger)

	switch os.Args[1] {
	case "snapshot":
		if _, err := runner.Run(ctx); err != nil {
			os.Exit(1)
		}
	case "schedule":
		s, err := snapshot.NewScheduler(runner, cfg.Snapshot.Schedule, logger)
		if err != nil {
			logger.Fatal("schedule", zap.Error(err))
		}
		s.Start()

		stop := make(chan os.Signal, 1)
		signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
		<-stop
		s.Stop(ctx)
	default:
		log.Fatalf("unknown command: %s", os.Args[1])
	}
}
