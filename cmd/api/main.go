package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/soapking/-bhoomitech-portal-service/internal/adapters/handlers/http/chi"
	projecthandler "github.com/soapking/-bhoomitech-portal-service/internal/adapters/handlers/http/chi/v1/project"
	"github.com/soapking/-bhoomitech-portal-service/internal/adapters/repository/postgres"
	"github.com/soapking/-bhoomitech-portal-service/internal/adapters/storage/minio"
	"github.com/soapking/-bhoomitech-portal-service/internal/config"
	"github.com/soapking/-bhoomitech-portal-service/internal/core/port"
	"github.com/soapking/-bhoomitech-portal-service/internal/core/service/cleanup"
	"github.com/soapking/-bhoomitech-portal-service/internal/core/service/project"
)

func main() {

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer stop()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := initDB(cfg.Database)
	if err != nil {
		logger.Error("failed to init database", "error", err)
		os.Exit(1)
	}
	defer func(db *sql.DB) {
		if err := db.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}(db)
	logger.Info("db connection established")

	//storage
	minioAdapter, err := minio.NewAdapter(ctx, cfg.Minio, cfg.Upload, logger)
	if err != nil {
		logger.Error("failed to init minio", "error", err)
		os.Exit(1)
	}

	//repositories
	unitOfWork := postgres.NewUnitOfWork(db)

	projectService := project.NewProjectService(unitOfWork, minioAdapter, logger)
	cleanupService := cleanup.NewCleanupService(cfg.Upload.StagingDir, logger)

	//http
	projectHandler := projecthandler.NewProjectHandlerV1(projectService, cfg.Upload, logger)

	router := chi.NewRouter(logger, projectHandler, cfg.Env.Env, cfg.Upload.MaxFileSize+(1<<20))
	server := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
		Handler: router,
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		logger.Info("starting server", "host", cfg.Server.Host, "port", cfg.Server.Port)
		servErr := server.ListenAndServe()
		if servErr != nil && !errors.Is(servErr, http.ErrServerClosed) {
			logger.Error("failed to start server", "error", servErr)
			stop()
		}
	}()

	// init staging sweep task
	wg.Add(1)
	go func() {
		defer wg.Done()
		initSweepTask(ctx, cleanupService, cfg.Upload, logger)
	}()

	//wait for context cancel
	<-ctx.Done()
	logger.Info("gracefully shutting down app")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("failed to shutdown server", "error", err)
	} else {
		logger.Info("server gracefully shutdown complete")
	}

	wg.Wait()
	logger.Info("app shutdown complete")

}

func initDB(cfg config.DatabaseConfig) (*sql.DB, error) {

	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host,
		cfg.Port,
		cfg.User,
		cfg.Password,
		cfg.Name,
		cfg.SSLMode,
	)
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenCons)
	db.SetMaxIdleConns(cfg.MaxIdleCons)
	db.SetConnMaxLifetime(cfg.ConMaxLifeTime)

	return db, nil
}

func initSweepTask(ctx context.Context, service port.CleanupService, cfg config.FileUploadConfig, logger *slog.Logger) {
	ticker := time.NewTicker(cfg.SweepEvery)
	defer ticker.Stop()

	logger.Info("staging sweep task initialized", "interval", cfg.SweepEvery)

	for {
		select {
		case <-ticker.C:
			logger.Info("staging sweep starting")
			err := service.SweepStagedFiles(ctx, time.Now().Add(-cfg.StagingTTL))
			if err != nil {
				logger.Error("failed to sweep staged files", "error", err)
			}
		case <-ctx.Done():
			logger.Info("staging sweep task stopped")
			return
		}
	}

}
