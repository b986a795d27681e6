package main

import (
	"context"
	"log"
	"time"

	"github.com/studytrack/studytrack-api/config"
	"github.com/studytrack/studytrack-api/database"
	applog "github.com/studytrack/studytrack-api/utils/logger"
)

// Runs AutoMigrate for every model and checks the connection afterwards.
func main() {
	if err := config.LoadENV(); err != nil {
		log.Fatalf("Failed to load environment variables: %v", err)
	}

	env, err := config.Get()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	lg, err := applog.New(env.GO_ENV)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer lg.Sync()

	store, err := database.StartGORM(env, lg)
	if err != nil {
		lg.Fatal("Failed to connect to database", "error", err)
	}
	defer store.Close()

	if err := store.Init(); err != nil {
		lg.Fatal("Failed to run migrations", "error", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := store.HealthCheck(ctx); err != nil {
		lg.Fatal("Database health check failed", "error", err)
	}

	tables, err := store.GetDB().Migrator().GetTables()
	if err != nil {
		lg.Fatal("Failed to list tables", "error", err)
	}
	lg.Info("Migrations completed", "driver", env.DB_DRIVER, "tables", tables)
}
