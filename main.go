package main

import (
	"context"
	"log"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"cedralab/adapters/postgres"
	"cedralab/internal"
	"cedralab/internal/config"
	"cedralab/internal/errors"
	"cedralab/internal/migration"
	"cedralab/ui"
)

// initDatabase connects to Postgres and runs migrations. Returns nil when no
// DATABASE_URL is configured; the server then runs without persistence.
func initDatabase(appConfig *config.Config) (*sqlx.DB, error) {
	if appConfig.Database.URL == "" {
		return nil, nil
	}

	db, err := sqlx.Connect("postgres", appConfig.Database.URL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to database")
	}

	if err := db.Ping(); err != nil {
		return nil, errors.Wrap(err, "failed to ping database")
	}

	migrator := migration.NewRunner()
	if err := migrator.Run(context.Background(), db); err != nil {
		return nil, errors.Wrap(err, "database migration failed")
	}

	return db, nil
}

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := internal.NewDefaultLogger()

	db, err := initDatabase(appConfig)
	if err != nil {
		log.Fatal("Failed to initialize database:", err)
	}

	var reports *postgres.ReportRepository
	if db != nil {
		defer db.Close()
		reports = postgres.NewReportRepository(db)
		logger.Info("report persistence enabled")
	} else {
		logger.Warn("DATABASE_URL not set, reports will not be persisted")
	}

	app := ui.NewApp(appConfig.Analysis, reports, logger)
	if err := app.Start(appConfig.Server.Port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
