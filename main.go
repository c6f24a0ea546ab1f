package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	pgstore "github.com/apollotravel/apollo-migration/engine/infra/postgres"
	"github.com/apollotravel/apollo-migration/engine/infra/server"
	"github.com/apollotravel/apollo-migration/engine/migration/denorm"
	"github.com/apollotravel/apollo-migration/engine/migration/infra/postgres"
	"github.com/apollotravel/apollo-migration/engine/migration/rules"
	"github.com/apollotravel/apollo-migration/engine/migration/uc"
	"github.com/apollotravel/apollo-migration/pkg/config"
	"github.com/apollotravel/apollo-migration/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	log := logger.New(&logger.Config{
		Level: logger.LogLevel(cfg.Log.Level),
		JSON:  cfg.Log.JSON,
	})
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = logger.ContextWithLogger(ctx, log)

	if err := pgstore.ApplyMigrations(ctx, cfg.Database.DSN()); err != nil {
		return fmt.Errorf("applying migrations: %w", err)
	}
	store, err := pgstore.NewStore(ctx, cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer store.Close(ctx)

	repo := postgres.NewRepository(store.Pool())
	factory := uc.NewFactory(repo, rules.Default(), denorm.New(nil))
	srv := server.NewServer(ctx, &cfg.Server, factory)
	return srv.Run(ctx)
}
