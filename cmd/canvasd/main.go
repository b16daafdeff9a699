package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/Brommah/contentfinal-sub002/internal/app"
	"github.com/Brommah/contentfinal-sub002/internal/config"
	"github.com/Brommah/contentfinal-sub002/internal/logging"
	"github.com/Brommah/contentfinal-sub002/internal/server"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	configPath := flag.String("config", "", "Path to config file (default: canvasync.yaml in the data dir)")
	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if err := run(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	v := config.New()
	cfg, err := config.LoadWith(v, configPath)
	if err != nil {
		return err
	}

	level := new(slog.LevelVar)
	logger, logCloser, err := logging.NewWithLevel(cfg.Log, os.Stderr, level)
	if err != nil {
		return err
	}
	defer func() { _ = logCloser.Close() }()
	slog.SetDefault(logger)

	// Уровень логирования меняется без перезапуска
	if config.Watch(v, func(next *config.Config, err error) {
		if err != nil {
			logger.Warn("Ignoring invalid config change", "error", err)
			return
		}
		if err := logging.SetLevel(level, next.Log.Level); err != nil {
			logger.Warn("Ignoring invalid log level", "error", err)
			return
		}
		logger.Info("Log level updated", "level", level.Level())
	}) {
		logger.Debug("Watching config file", "path", v.ConfigFileUsed())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to start: %w", err)
	}
	defer func() {
		if err := a.Close(); err != nil {
			logger.Error("Shutdown incomplete", "error", err)
		}
	}()

	logger.Info("canvasd starting",
		"version", Version,
		"address", cfg.Server.Address,
		"data_dir", cfg.DataDir,
		"workspace_id", cfg.Workspace.ID)

	srv := server.New(cfg.Server.Address, a.ServerDeps(Version))
	return srv.Run(ctx, cfg.Server.ShutdownTimeout)
}

func printVersion() {
	fmt.Printf("canvasd\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
