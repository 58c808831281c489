package main

import (
	"context"
	"log"
	"os"
	"syscall"
	"time"

	"github.com/HealsGoodAI/flexzo-corporate-website-sub000/internal/config"
	"github.com/HealsGoodAI/flexzo-corporate-website-sub000/internal/server"
	"github.com/HealsGoodAI/flexzo-corporate-website-sub000/pkg/logging"
	"github.com/HealsGoodAI/flexzo-corporate-website-sub000/pkg/shutdown"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := logging.New(cfg.LogLevel, cfg.Development)
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()
	app, cleanup, err := server.InitializeApp(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to initialize server", "err", err)
		os.Exit(1)
	}
	defer cleanup()

	if err := app.Warm(ctx); err != nil {
		// a failed load is not cached; requests retry it on demand
		logger.Warn("catalog warm-up failed", "err", err)
	}

	go shutdown.Graceful(
		[]os.Signal{os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT, syscall.SIGHUP},
		10*time.Second,
		logger,
		app.Server,
	)

	logger.Info("server initialized and starting",
		"addr", app.Server.Addr(),
		"dataset", cfg.Catalog.Source,
		"supplement", cfg.Catalog.Supplement,
	)

	if err := app.Server.Run(); err != nil {
		logger.Error("server exited with error", "err", err)
	} else {
		logger.Info("server stopped")
	}
}
