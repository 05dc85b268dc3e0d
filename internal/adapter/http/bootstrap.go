package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"todos/internal/adapter/database/postgres"
	pgrepository "todos/internal/adapter/database/postgres/repository"
	"todos/internal/adapter/database/sqlite"
	sqliterepository "todos/internal/adapter/database/sqlite/repository"
	"todos/internal/adapter/http/routes"
	"todos/internal/adapter/telemetry"
	"todos/internal/core/port"
	"todos/pkg/config"
	"todos/pkg/logger"
)

// StartServer opens the configured store, wires the container and serves
// until the listener fails.
func StartServer(cfg *config.Config, tel *telemetry.Telemetry, log *logger.Logger) error {
	userRepo, todoRepo, closeDB, err := openRepositories(cfg)

	if err != nil {
		return err
	}

	defer closeDB()

	metrics := telemetry.NewAppMetrics(tel.PrometheusRegistry)
	container := NewContainer(userRepo, todoRepo, metrics)

	router := routes.SetupRouter(routes.HandlersConfig{
		AuthHandler: container.AuthHandler,
		TodoHandler: container.TodoHandler,
		AuthGuard:   container.AuthGuard,
	}, metrics, tel.PrometheusRegistry, log)

	slog.Info("Server starting", "port", cfg.Port, "driver", cfg.Driver)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}

	return nil
}

func openRepositories(cfg *config.Config) (port.UserRepository, port.TodoRepository, func(), error) {
	if cfg.Driver == config.DriverPostgres {
		db, err := postgres.NewDB(context.Background(), cfg)

		if err != nil {
			return nil, nil, nil, err
		}

		return pgrepository.NewUserRepository(db), pgrepository.NewTodoRepository(db), db.Close, nil
	}

	db, err := sqlite.NewDB(cfg)

	if err != nil {
		return nil, nil, nil, err
	}

	closeDB := func() {
		if err := db.Close(); err != nil {
			slog.Error("Error closing database", "error", err)
		}
	}

	return sqliterepository.NewUserRepository(db), sqliterepository.NewTodoRepository(db), closeDB, nil
}
