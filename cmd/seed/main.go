package main

import (
	"log"

	"github.com/studytrack/studytrack-api/config"
	"github.com/studytrack/studytrack-api/database"
	applog "github.com/studytrack/studytrack-api/utils/logger"
)

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

	if err := database.NewSeeder(store.GetDB(), lg).SeedAll(); err != nil {
		lg.Fatal("Seeding failed", "error", err)
	}

	lg.Info("Admin user is created from ADMIN_EMAIL and ADMIN_PASSWORD when both are set")
}
