// Package server initializes and runs the boutique application server.
// It opens the database pools when a live store is configured, runs schema
// migrations, wires the facade services and serves the HTTP API until an OS
// signal asks it to stop.
package server

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

	"github.com/avigneron/boutique/internal/logging"
	"github.com/avigneron/boutique/internal/server/auth"
	"github.com/avigneron/boutique/internal/server/config"
	"github.com/avigneron/boutique/internal/server/filestore"
	"github.com/avigneron/boutique/internal/server/httpapi"
	"github.com/avigneron/boutique/internal/server/repositories/repomanager"
	"github.com/avigneron/boutique/internal/server/services"
)

type App struct {
	config  *config.Config
	logger  logging.Logger
	db      *sql.DB
	readDB  *sql.DB
	handler *httpapi.Server
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {

	sl := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(sl)

	deps := services.Deps{
		Repos:    repomanager.NewPostgresRepositoryManager(),
		Fallback: cfg.FallbackMode(),
		Logger:   logger,
	}

	if cfg.DataDir != "" {
		deps.Files = filestore.New(cfg.DataDir)
	}

	app := &App{config: cfg, logger: logger}

	if deps.Fallback {
		logger.Warn(ctx, "no database configured, serving demo data")
	} else {
		db, err := sql.Open("pgx", cfg.DatabaseDSN)
		if err != nil {
			return nil, fmt.Errorf("db init error: %w", err)
		}
		if err := deps.Repos.RunMigrations(ctx, db); err != nil {
			return nil, fmt.Errorf("migration error: %w", err)
		}
		deps.DB = db
		app.db = db

		if readDSN := cfg.ReadDSN(); readDSN != cfg.DatabaseDSN {
			readDB, err := sql.Open("pgx", readDSN)
			if err != nil {
				return nil, fmt.Errorf("read db init error: %w", err)
			}
			deps.ReadDB = readDB
			app.readDB = readDB
		}
	}

	gate := auth.NewGate(cfg, logger)

	app.handler = httpapi.NewServer(
		gate,
		services.NewProductService(deps),
		services.NewCategoryService(deps),
		services.NewSocialMediaService(deps),
		services.NewPageContentService(deps),
		services.NewShopConfigService(deps),
		services.NewUploadService(cfg, logger),
		logger,
	)

	return app, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {

	srv := &http.Server{
		Addr:    app.config.Addr,
		Handler: app.handler.Router(),
	}

	go func() {
		<-ctx.Done()
		app.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			app.logger.Error(ctx, "shutdown error", "error", err)
		}
	}()

	app.logger.Info(ctx, "Starting HTTP server", "address", app.config.Addr)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) closeDBs(ctx context.Context) {
	for _, db := range []*sql.DB{app.db, app.readDB} {
		if db == nil {
			continue
		}
		if err := db.Close(); err != nil {
			app.logger.Error(ctx, "db close error", "error", err)
		}
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	app.closeDBs(ctx)
}
