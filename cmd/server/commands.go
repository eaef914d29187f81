package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"propertyops-http-service/internal/app/routes"
	"propertyops-http-service/internal/domain/services"
	"propertyops-http-service/internal/domain/services/container"
	"propertyops-http-service/internal/infrastructure/config"
	"propertyops-http-service/internal/infrastructure/database"
	"propertyops-http-service/internal/infrastructure/metrics"
	Logger "propertyops-http-service/pkg/logger"
)

// ServeCmd migrates the database and runs the HTTP server until interrupted.
func ServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and web client",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, pool, err := bootstrap()
			if err != nil {
				return err
			}
			defer Logger.Close()
			defer pool.Close()

			if port, _ := cmd.Flags().GetString("port"); port != "" {
				cfg.ServerPort = port
			}
			if err := database.Migrate(pool.DB, cfg.DBMigrationMode); err != nil {
				return err
			}

			gin.SetMode(cfg.GinMode)
			serviceContainer := container.NewServiceContainer(pool, cfg, metrics.New())
			defer serviceContainer.Close()

			srv := &http.Server{
				Addr:              "0.0.0.0:" + cfg.ServerPort,
				Handler:           routes.SetupRouter(serviceContainer),
				ReadHeaderTimeout: 10 * time.Second,
			}

			printSystemInfo(pool)

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				Logger.Info("server listening on http://%s", srv.Addr)
				errCh <- srv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if !errors.Is(err, http.ErrServerClosed) {
					return fmt.Errorf("server: %w", err)
				}
				return nil
			case <-ctx.Done():
			}

			Logger.Info("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	}
	cmd.Flags().String("port", "", "listen port, overrides SERVER_PORT")
	return cmd
}

// MigrateCmd applies the schema without starting the server.
func MigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, pool, err := bootstrap()
			if err != nil {
				return err
			}
			defer pool.Close()

			mode, _ := cmd.Flags().GetString("mode")
			if mode == "" {
				mode = cfg.DBMigrationMode
			}
			return database.Migrate(pool.DB, mode)
		},
	}
	cmd.Flags().String("mode", "", "auto or drop, overrides DB_MIGRATION_MODE")
	return cmd
}

// SeedCmd replaces all data with the demo records.
func SeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Replace all records with demo data",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, pool, err := bootstrap()
			if err != nil {
				return err
			}
			defer pool.Close()

			if err := database.Migrate(pool.DB, database.MigrationAuto); err != nil {
				return err
			}

			counts, err := services.NewSeedService(pool.DB, cfg).Seed(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), counts.String())
			return nil
		},
	}
}

func bootstrap() (*config.Config, *database.ConnectionPool, error) {
	cfg := config.GetConfig()
	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid configuration: %w", err)
	}

	if err := Logger.SetupLogger(cfg.LogDir); err != nil {
		return nil, nil, fmt.Errorf("setup logger: %w", err)
	}

	pool, err := database.NewConnectionPool(cfg)
	if err != nil {
		return nil, nil, err
	}
	return cfg, pool, nil
}

func printSystemInfo(pool *database.ConnectionPool) {
	if stats, err := pool.Stats(); err == nil {
		Logger.Info("database pool: %+v", stats)
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	Logger.Info("cpus=%d goroutines=%d alloc=%dMiB sys=%dMiB",
		runtime.NumCPU(), runtime.NumGoroutine(), m.Alloc/1024/1024, m.Sys/1024/1024)
}
