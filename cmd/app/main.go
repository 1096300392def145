package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"attendance/cmd"
	"attendance/internal/adapters/out/postgres"
	"attendance/internal/pkg/logging"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const shutdownTimeout = 15 * time.Second

var configFile string

var rootCmd = &cobra.Command{
	Use:   "attendance",
	Short: "Job attendance and scheduling engine",
	Long: `attendance drives job assignments through their lifecycle, verifies
check-in scans, watches active workers against the job site geofence and
answers worker availability for new shifts.

Examples:
  attendance migrate          # apply pending schema migrations
  attendance serve            # run the HTTP API and resume tracking`,
	SilenceUsage: true,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API and the geofence monitors",
	RunE:  runServe,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations",
	RunE:  runMigrate,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "path to a config file (default ./attendance.yaml when present)")
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func bootstrap() (cmd.Config, *zap.Logger, *gorm.DB, error) {
	cfg, err := cmd.LoadConfig(configFile)
	if err != nil {
		return cmd.Config{}, nil, nil, err
	}

	logger, err := logging.NewLogger(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return cmd.Config{}, nil, nil, err
	}

	db, err := openDatabase(cfg)
	if err != nil {
		_ = logger.Sync()
		return cmd.Config{}, nil, nil, err
	}
	return cfg, logger, db, nil
}

func openDatabase(cfg cmd.Config) (*gorm.DB, error) {
	db, err := gorm.Open(gorm_postgres.Open(cfg.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("getting sql.DB: %w", err)
	}
	if cfg.DBMaxConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.DBMaxConns)
		sqlDB.SetMaxIdleConns(cfg.DBMaxConns / 2)
	}
	if err = sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("pinging database: %w", err)
	}
	return db, nil
}

func closeDatabase(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

func runMigrate(_ *cobra.Command, _ []string) error {
	_, logger, db, err := bootstrap()
	if err != nil {
		pterm.Error.Println(err)
		return err
	}
	defer func() { _ = logger.Sync() }()
	defer closeDatabase(db)

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	status, err := postgres.RunMigrations(sqlDB, logger)
	if err != nil {
		pterm.Error.Printf("Migration failed: %v\n", err)
		return err
	}

	switch {
	case status.Dirty:
		pterm.Warning.Printf("Schema version %d is dirty\n", status.Version)
	case status.Changed:
		pterm.Success.Printf("Schema migrated to version %d\n", status.Version)
	default:
		pterm.Info.Printf("Schema already at version %d\n", status.Version)
	}
	return nil
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, logger, db, err := bootstrap()
	if err != nil {
		pterm.Error.Println(err)
		return err
	}
	defer func() { _ = logger.Sync() }()
	defer closeDatabase(db)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := cmd.NewCompositionRoot(ctx, cfg, db, logger)
	if err != nil {
		logger.Error("composing application", zap.Error(err))
		return err
	}

	if err = app.ResumeTracking(ctx); err != nil {
		logger.Error("resuming geofence monitors", zap.Error(err))
	}

	e := app.CreateRouter()
	serveErr := make(chan error, 1)
	go func() {
		logger.Info("http server started", zap.String("port", cfg.HTTPPort))
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", cfg.HTTPPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err = <-serveErr:
		logger.Error("http server stopped", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if shutdownErr := e.Shutdown(shutdownCtx); shutdownErr != nil {
		logger.Error("http server shutdown", zap.Error(shutdownErr))
	}
	if closeErr := app.Close(shutdownCtx); closeErr != nil {
		logger.Error("stopping application", zap.Error(closeErr))
	}

	logger.Info("stopped")
	return err
}
