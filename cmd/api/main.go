package main

import (
	"context"
	"log"

	httpadapter "todos/internal/adapter/http"
	"todos/internal/adapter/telemetry"
	"todos/pkg/config"
	"todos/pkg/logger"
)

func main() {
	ctx := context.Background()

	cfg := config.Load()

	appLogger, err := logger.New(cfg.LogLevel)

	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}

	defer appLogger.Sync()

	tel, err := telemetry.Init(telemetry.Config{
		ServiceName:    "todos",
		ServiceVersion: "1.0.0",
	})

	if err != nil {
		log.Fatal("Failed to initialize telemetry:", err)
	}

	defer tel.Shutdown(ctx)

	if err := httpadapter.StartServer(cfg, tel, appLogger); err != nil {
		log.Fatal("Server failed:", err)
	}
}
