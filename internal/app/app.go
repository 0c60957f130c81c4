package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/pressly/goose/v3"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"

	"github.com/mahmoud1053/EventHub/internal/config"
	"github.com/mahmoud1053/EventHub/internal/handler"
	"github.com/mahmoud1053/EventHub/internal/middleware"
	"github.com/mahmoud1053/EventHub/internal/repository/memory"
	"github.com/mahmoud1053/EventHub/internal/repository/postgres"
	"github.com/mahmoud1053/EventHub/internal/router"
	"github.com/mahmoud1053/EventHub/internal/seed"
	"github.com/mahmoud1053/EventHub/internal/service"
	"github.com/mahmoud1053/EventHub/internal/token"
)

const migrationsDir = "migrations"

type App struct {
	cfg        *config.Config
	log        logger.Logger
	db         *dbpg.DB
	stores     seed.Stores
	httpServer *http.Server
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"EventHub",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err = app.initStores(); err != nil {
		return nil, fmt.Errorf("init stores: %w", err)
	}

	if cfg.Storage.Seed {
		if err = seed.Run(context.Background(), app.stores, log); err != nil {
			return nil, fmt.Errorf("seed: %w", err)
		}
	}

	app.initServices()

	return app, nil
}

func (a *App) initStores() error {
	switch a.cfg.Storage.Engine {
	case "postgres":
		if err := a.runMigrations(); err != nil {
			return fmt.Errorf("migrations: %w", err)
		}
		if err := a.initDB(); err != nil {
			return fmt.Errorf("init db: %w", err)
		}
		a.stores = seed.Stores{
			Users:      postgres.NewUserRepository(a.db),
			Categories: postgres.NewCategoryRepository(a.db),
			Events:     postgres.NewEventRepository(a.db),
			Bookings:   postgres.NewBookingRepository(a.db),
		}
	default:
		events := memory.NewEventRepository()
		a.stores = seed.Stores{
			Users:      memory.NewUserRepository(),
			Categories: memory.NewCategoryRepository(),
			Events:     events,
			Bookings:   memory.NewBookingRepository(events),
		}
	}

	a.log.Info("storage engine ready",
		logger.String("engine", a.cfg.Storage.Engine),
	)

	return nil
}

func (a *App) initDB() error {
	db, err := dbpg.New(
		a.cfg.Postgres.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns: a.cfg.Postgres.MaxOpenConns,
			MaxIdleConns: a.cfg.Postgres.MaxIdleConns,
		},
	)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}

	if err := db.Master.PingContext(context.Background()); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}

	a.db = db
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return nil
}

func (a *App) initServices() {
	tokens := token.NewManager(a.cfg.Auth.JWTSecret, a.cfg.Auth.TokenTTL)

	authService := service.NewAuthService(a.stores.Users, tokens, a.log)
	catalogService := service.NewCatalogService(a.stores.Categories, a.stores.Events, a.log)
	bookingService := service.NewBookingService(a.stores.Bookings, a.stores.Events, a.log)

	h := handler.NewHandler(authService, catalogService, bookingService)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		tokens,
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	if a.db != nil {
		if err := a.db.Master.Close(); err != nil {
			return fmt.Errorf("close db: %w", err)
		}
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")
	}

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

func (a *App) runMigrations() error {
	db, err := sql.Open("postgres", a.cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	a.log.Info("migrations applied successfully")
	return nil
}
