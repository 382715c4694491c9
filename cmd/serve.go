package main

import (
	"context"
	"errors"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/patrykJ113/edicom-api/config"
	"github.com/patrykJ113/edicom-api/db"
	"github.com/patrykJ113/edicom-api/internal/auth/domain"
	"github.com/patrykJ113/edicom-api/internal/auth/handler"
	repo "github.com/patrykJ113/edicom-api/internal/auth/repository/postgres"
	"github.com/patrykJ113/edicom-api/internal/auth/service"
	"github.com/patrykJ113/edicom-api/internal/i18n"
	"github.com/patrykJ113/edicom-api/internal/logging"
	"github.com/patrykJ113/edicom-api/internal/metrics"
	"github.com/spf13/cobra"
)

const (
	migrateFlag     = "migrate"
	shutdownTimeout = 10 * time.Second
)

func NewServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE:  runServe,
	}
	cmd.Flags().Bool(migrateFlag, false, "apply pending migrations before serving")
	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg := config.MustLoad()
	log := logging.NewJSON(os.Stdout, cfg.LogLevel)
	logConfigWarnings(cmd.Context(), log, cfg)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if runMigrations, _ := cmd.Flags().GetBool(migrateFlag); runMigrations {
		if err := db.Migrate(ctx, cfg.DBURL); err != nil {
			return err
		}
		log.Info(ctx, "migrations applied")
	}

	pool, err := db.NewPostgresPool(ctx, cfg.DBURL)
	if err != nil {
		return err
	}
	defer pool.Close()

	app, err := buildApp(cfg, repo.NewPostgresRepository(pool), log)
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- listen(app, cfg)
	}()
	log.Info(ctx, "server started", "port", cfg.Port, "env", cfg.Env, "tls", cfg.TLSEnabled())

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info(context.Background(), "shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, net.ErrClosed) {
		return err
	}
	return nil
}

// buildApp assembles services and the HTTP layer on top of a user repository.
func buildApp(cfg *config.Config, users domain.UserRepository, log logging.Logger) (*fiber.App, error) {
	tokenService, err := service.NewTokenService(service.TokenConfig{
		AccessTokenSecret:  cfg.AccessTokenSecret,
		RefreshTokenSecret: cfg.RefreshTokenSecret,
		AccessTokenExpiry:  cfg.AccessTokenExpiry(),
		RefreshTokenExpiry: cfg.RefreshTokenExpiry(),
	})
	if err != nil {
		return nil, err
	}

	bundle, err := i18n.NewBundle()
	if err != nil {
		return nil, err
	}

	registry := metrics.NewRegistry()
	userService := service.NewUserService(users, tokenService, nil, cfg)
	authHandler := handler.NewAuthHandler(userService, bundle, log, metrics.NewMetrics(registry))

	return handler.NewApp(authHandler, handler.AppOptions{
		CORSAllowOrigins: cfg.CORSAllowOrigins,
		Gatherer:         registry,
		AccessLog:        os.Stdout,
	}), nil
}

func logConfigWarnings(ctx context.Context, log logging.Logger, cfg *config.Config) {
	for _, w := range cfg.Warnings {
		log.Warn(ctx, "config", "warning", w)
	}
}

func listen(app *fiber.App, cfg *config.Config) error {
	addr := ":" + cfg.Port
	if cfg.TLSEnabled() {
		return app.ListenTLS(addr, cfg.TLSCertFile, cfg.TLSKeyFile)
	}
	return app.Listen(addr)
}
