package main

import (
	"context"
	"fmt"
	"os"

	"github.com/prompt-pronto/prompt-pronto-backend/config"
	"github.com/prompt-pronto/prompt-pronto-backend/internal/bootstrap"
	"github.com/prompt-pronto/prompt-pronto-backend/internal/cli"
	"github.com/prompt-pronto/prompt-pronto-backend/internal/logging"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Keep the terminal for command output; only warnings and up are logged.
	logger, err := logging.New(cfg.App.Environment, "warn")
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()
	services, err := bootstrap.NewServices(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	defer func() { _ = services.Close() }()

	root := cli.NewRootCmd(&cli.App{
		Generators:   services.Generators,
		Saver:        services.Saver,
		Projects:     services.Projects,
		ContactLists: services.ContactLists,
	})
	return root.ExecuteContext(ctx)
}
