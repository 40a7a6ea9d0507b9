// Package server wires the backend: PostgreSQL storage and migrations, the
// account and candidate services, resume storage and the HTTP API.
package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/dmitrijs2005/candidatetracker/internal/candidate"
	"github.com/dmitrijs2005/candidatetracker/internal/logging"
	"github.com/dmitrijs2005/candidatetracker/internal/server/config"
	"github.com/dmitrijs2005/candidatetracker/internal/server/httpapi"
	"github.com/dmitrijs2005/candidatetracker/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/candidatetracker/internal/server/services"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

var (
	openDB = func(dsn string) (*sql.DB, error) {
		return sql.Open("pgx", dsn)
	}
	newRepoManager = repomanager.NewPostgresRepositoryManager
)

type App struct {
	config  *config.Config
	logger  logging.Logger
	zap     *zap.Logger
	db      *sql.DB
	handler *httpapi.Handler
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	zl := logging.NewZap(c.LogLevel, c.LogFormat)
	logger := logging.NewZapLogger(zl)

	db, err := openDB(c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := newRepoManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrations: %w", err)
	}

	us := services.NewUserService(db, rm, c)
	created, err := us.EnsureAdmin(ctx, c.AdminEmail, c.AdminPassword)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("seed admin: %w", err)
	}
	if created {
		logger.Info(ctx, "Default admin created", "email", c.AdminEmail)
	}

	cs := services.NewCandidateService(db, rm, candidate.NewValidator(), services.NewS3Storage(c), logger.With("component", "candidates"))

	return &App{
		config:  c,
		logger:  logger,
		zap:     zl,
		db:      db,
		handler: httpapi.NewHandler(us, cs),
	}, nil
}

// Run serves the API until ctx is cancelled, then shuts down gracefully.
func (app *App) Run(ctx context.Context) error {
	defer func() {
		_ = app.db.Close()
		_ = app.zap.Sync()
	}()

	srv := &http.Server{
		Addr:              app.config.ListenAddr,
		Handler:           httpapi.NewRouter(app.handler, app.config.CORSOrigins, app.zap),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return app.serve(ctx, srv)
}

func (app *App) serve(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		app.logger.Info(ctx, "Starting HTTP server", "addr", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	app.logger.Info(ctx, "Stopping HTTP server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
