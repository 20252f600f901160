package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/deployd-project/deployd/operations"
	"github.com/deployd-project/deployd/utils"
)

func main() {
	// Create structured logger
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	configDir := flag.String("config", ".", "Directory containing config.yaml.")
	healthCheck := flag.Bool("health-check", false, "Run a health check and exit.")
	flag.Parse()

	runner := operations.ExecRunner{}

	if *healthCheck {
		logger.Info("Performing health check...")

		out, err := runner.Run("git", []string{"version"}, "")
		if err != nil {
			logger.Error("Health check FAILED: git is not available", "error", err)
			os.Exit(1)
		}

		logger.Info("Health check PASSED.", "git", out)
		os.Exit(0)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("deployd starting...")

	config, err := utils.LoadConfig(*configDir)
	if err != nil {
		logger.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	syncer := operations.NewSyncer(config, runner, logger)
	if err := syncer.Run(ctx); err != nil {
		logger.Error("Failed to bootstrap repository", "error", err)
		os.Exit(1)
	}
}
